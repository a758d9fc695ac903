package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/agbru/nqueens/internal/ui"
)

func TestPresentStats(t *testing.T) {
	ui.SetTheme("none")
	defer ui.SetTheme("dark")

	var buf bytes.Buffer
	CLIResultPresenter{}.PresentStats(sampleResult(), &buf)

	out := buf.String()
	for _, want := range []string{
		"Board size:      4 x 4",
		"Solutions found: 2",
		"States explored: 60",
		"Workers used:    4",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("PresentStats() output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "subset") {
		t.Error("PresentStats() should not warn about a stop for a completed run")
	}
}

func TestPresentStats_StoppedWarns(t *testing.T) {
	ui.SetTheme("none")
	defer ui.SetTheme("dark")

	res := sampleResult()
	res.Stopped = true

	var buf bytes.Buffer
	CLIResultPresenter{}.PresentStats(res, &buf)

	if !strings.Contains(buf.String(), "subset") {
		t.Errorf("PresentStats() should note partial results on a stopped run:\n%s", buf.String())
	}
}

func TestPresentSolutions(t *testing.T) {
	ui.SetTheme("none")
	defer ui.SetTheme("dark")

	t.Run("disabled by default", func(t *testing.T) {
		var buf bytes.Buffer
		CLIResultPresenter{}.PresentSolutions(sampleResult(), &buf)
		if buf.Len() != 0 {
			t.Errorf("expected no output when ShowBoards is false, got %q", buf.String())
		}
	})

	t.Run("prints all boards", func(t *testing.T) {
		var buf bytes.Buffer
		CLIResultPresenter{ShowBoards: true}.PresentSolutions(sampleResult(), &buf)
		out := buf.String()
		if !strings.Contains(out, "Solution 1 of 2") || !strings.Contains(out, "Solution 2 of 2") {
			t.Errorf("expected both solutions, got:\n%s", out)
		}
	})

	t.Run("caps at MaxBoards", func(t *testing.T) {
		var buf bytes.Buffer
		CLIResultPresenter{ShowBoards: true, MaxBoards: 1}.PresentSolutions(sampleResult(), &buf)
		out := buf.String()
		if !strings.Contains(out, "Solution 1 of 2") {
			t.Errorf("expected first solution, got:\n%s", out)
		}
		if strings.Contains(out, "Solution 2 of 2") {
			t.Errorf("second solution should be capped, got:\n%s", out)
		}
		if !strings.Contains(out, "1 more solutions not shown") {
			t.Errorf("expected truncation note, got:\n%s", out)
		}
	})
}

func TestDisplayExecutionConfig(t *testing.T) {
	ui.SetTheme("none")
	defer ui.SetTheme("dark")

	var buf bytes.Buffer
	DisplayExecutionConfig(&buf, 8, 4, "exhaustive")

	out := buf.String()
	if !strings.Contains(out, "Solving 8-queens") || !strings.Contains(out, "4 worker(s)") {
		t.Errorf("unexpected execution config line: %q", out)
	}
}
