package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/agbru/nqueens/internal/format"
	"github.com/agbru/nqueens/internal/metrics"
	"github.com/agbru/nqueens/internal/orchestration"
)

// StatsModel displays search progress, runtime memory, and system metrics.
type StatsModel struct {
	stepsObserved uint64

	alloc        uint64
	heapSys      uint64
	numGC        uint32
	pauseTotalNs uint64
	numGoroutine int

	cpuPercent float64
	memPercent float64

	result     *orchestration.Result
	indicators metrics.Indicators
	speedLabel string

	width  int
	height int
}

// NewStatsModel creates a new stats panel.
func NewStatsModel() StatsModel {
	return StatsModel{speedLabel: "instant"}
}

// SetSize updates dimensions.
func (m *StatsModel) SetSize(w, h int) {
	m.width = w
	m.height = h
}

// AddStep counts one observed step update.
func (m *StatsModel) AddStep() {
	m.stepsObserved++
}

// SetSpeedLabel updates the displayed animation speed.
func (m *StatsModel) SetSpeedLabel(label string) {
	m.speedLabel = label
}

// UpdateMemStats updates memory statistics.
func (m *StatsModel) UpdateMemStats(msg MemStatsMsg) {
	m.alloc = msg.Alloc
	m.heapSys = msg.HeapSys
	m.numGC = msg.NumGC
	m.pauseTotalNs = msg.PauseTotalNs
	m.numGoroutine = msg.NumGoroutine
}

// UpdateSysStats updates the system-wide CPU and memory readings.
func (m *StatsModel) UpdateSysStats(cpuPercent, memPercent float64) {
	m.cpuPercent = cpuPercent
	m.memPercent = memPercent
}

// SetResult stores the finished run and derives its throughput indicators.
func (m *StatsModel) SetResult(result orchestration.Result) {
	m.result = &result
	m.indicators = metrics.ComputeIndicators(
		result.Stats.StatesExplored,
		uint64(result.Stats.SolutionsFound),
		result.Stats.Duration)
}

// Reset clears all run-scoped state.
func (m *StatsModel) Reset() {
	m.stepsObserved = 0
	m.result = nil
	m.indicators = metrics.Indicators{}
}

// View renders the stats panel.
func (m StatsModel) View() string {
	var rows strings.Builder

	heapStr := metricValueStyle.Render(format.FormatBytes(m.alloc) + " / " + format.FormatBytes(m.heapSys))
	gcPauseStr := metricValueStyle.Render(fmt.Sprintf("%d (%.1fms)", m.numGC, float64(m.pauseTotalNs)/1e6))
	pipe := metricLabelStyle.Render(" | ")
	topLine := fmt.Sprintf("  %s %s%s%s %s",
		metricLabelStyle.Render("Heap:"), heapStr,
		pipe,
		metricLabelStyle.Render("GC:"), gcPauseStr)
	rows.WriteString(topLine)

	colWidth := (m.width - 6) / 2

	leftCol := []string{
		formatMetricCol("Steps seen:", format.FormatCount(m.stepsObserved), colWidth),
		formatMetricCol("CPU:", fmt.Sprintf("%.1f%%", m.cpuPercent), colWidth),
	}
	rightCol := []string{
		formatMetricCol("Goroutines:", fmt.Sprintf("%d", m.numGoroutine), colWidth),
		formatMetricCol("Sys mem:", fmt.Sprintf("%.1f%%", m.memPercent), colWidth),
	}

	if m.result != nil {
		st := m.result.Stats
		leftCol = append(leftCol,
			formatMetricCol("Solutions:", format.FormatCount(uint64(st.SolutionsFound)), colWidth),
			formatMetricCol("Throughput:", metrics.FormatRate(m.indicators.StatesPerSecond), colWidth),
		)
		rightCol = append(rightCol,
			formatMetricCol("States:", format.FormatCount(st.StatesExplored), colWidth),
			formatMetricCol("Duration:", format.FormatExecutionDuration(st.Duration), colWidth),
		)
	} else {
		leftCol = append(leftCol,
			formatMetricCol("Speed:", m.speedLabel, colWidth),
		)
		rightCol = append(rightCol,
			formatMetricCol("", "", colWidth),
		)
	}

	for i := range leftCol {
		rows.WriteString("\n")
		rows.WriteString(leftCol[i])
		rows.WriteString(rightCol[i])
	}

	return panelStyle.
		Width(m.width - 2).
		Height(m.height - 2).
		Render(rows.String())
}

func formatMetricCol(label, value string, colWidth int) string {
	cell := fmt.Sprintf(" %s %s",
		metricLabelStyle.Render(fmt.Sprintf("%-12s", label)),
		metricValueStyle.Render(value))
	// Pad to fixed column width using lipgloss-aware width
	visible := lipgloss.Width(cell)
	if visible < colWidth {
		cell += strings.Repeat(" ", colWidth-visible)
	}
	return cell
}
