package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// FooterModel renders the bottom bar: status indicator and key hints.
type FooterModel struct {
	width  int
	done   bool
	paused bool
	failed bool
}

// NewFooterModel creates a new footer.
func NewFooterModel() FooterModel {
	return FooterModel{}
}

// SetWidth updates the available width.
func (f *FooterModel) SetWidth(w int) {
	f.width = w
}

// SetDone marks the search as finished.
func (f *FooterModel) SetDone(done bool) {
	f.done = done
}

// SetPaused marks the display as paused.
func (f *FooterModel) SetPaused(paused bool) {
	f.paused = paused
}

// SetError marks the search as failed.
func (f *FooterModel) SetError(failed bool) {
	f.failed = failed
}

// View renders the footer.
func (f FooterModel) View() string {
	var status string
	switch {
	case f.failed:
		status = statusErrorStyle.Render("● FAILED")
	case f.done:
		status = statusDoneStyle.Render("● DONE")
	case f.paused:
		status = statusPausedStyle.Render("● PAUSED")
	default:
		status = statusRunningStyle.Render("● SEARCHING")
	}

	hints := []struct{ key, desc string }{
		{"q", "quit"},
		{"space", "pause"},
		{"s", "stop"},
		{"r", "restart"},
		{"+/-", "speed"},
	}
	if f.done {
		hints = []struct{ key, desc string }{
			{"q", "quit"},
			{"←/→", "solutions"},
			{"r", "restart"},
		}
	}

	var b strings.Builder
	b.WriteString(status)
	for _, h := range hints {
		b.WriteString("  ")
		b.WriteString(footerKeyStyle.Render(h.key))
		b.WriteString(footerDescStyle.Render(" " + h.desc))
	}

	row := b.String()
	gap := f.width - lipgloss.Width(row)
	if gap > 0 {
		row += spaces(gap)
	}
	return row
}
