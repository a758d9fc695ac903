package metrics

import (
	"fmt"
	"time"
)

// Indicators holds derived performance figures for a completed search run.
// They are computed once after the run and displayed by the CLI and TUI.
type Indicators struct {
	StatesPerSecond    float64 // board states examined per second
	SolutionsPerSecond float64 // solutions recorded per second
	StatesPerSolution  float64 // average states examined per solution, 0 when none found
}

// ComputeIndicators derives throughput indicators from raw run figures.
// A non-positive duration yields zero rates to avoid division artifacts on
// very fast runs.
func ComputeIndicators(statesExplored, solutionsFound uint64, elapsed time.Duration) Indicators {
	var ind Indicators
	secs := elapsed.Seconds()
	if secs > 0 {
		ind.StatesPerSecond = float64(statesExplored) / secs
		ind.SolutionsPerSecond = float64(solutionsFound) / secs
	}
	if solutionsFound > 0 {
		ind.StatesPerSolution = float64(statesExplored) / float64(solutionsFound)
	}
	return ind
}

// FormatRate renders a per-second rate with a magnitude suffix
// (e.g. 1532000 -> "1.53M/s").
func FormatRate(rate float64) string {
	switch {
	case rate >= 1e9:
		return fmt.Sprintf("%.2fG/s", rate/1e9)
	case rate >= 1e6:
		return fmt.Sprintf("%.2fM/s", rate/1e6)
	case rate >= 1e3:
		return fmt.Sprintf("%.2fK/s", rate/1e3)
	default:
		return fmt.Sprintf("%.1f/s", rate)
	}
}
