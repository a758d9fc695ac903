package cli

import (
	"fmt"
	"io"
	"sync"

	"github.com/agbru/nqueens/internal/format"
	"github.com/agbru/nqueens/internal/metrics"
	"github.com/agbru/nqueens/internal/orchestration"
	"github.com/agbru/nqueens/internal/progress"
	"github.com/agbru/nqueens/internal/ui"
)

// CLIStepReporter implements orchestration.StepReporter for CLI output.
// It wraps the DisplayProgress function to provide a spinner with a live
// search summary while workers run.
type CLIStepReporter struct{}

// Verify that CLIStepReporter implements orchestration.StepReporter.
var _ orchestration.StepReporter = CLIStepReporter{}

// ReportSteps displays a spinner and search summary for an ongoing run.
func (CLIStepReporter) ReportSteps(wg *sync.WaitGroup, steps <-chan progress.StepUpdate, numWorkers int, out io.Writer) {
	DisplayProgress(wg, steps, numWorkers, out)
}

// CLIResultPresenter implements orchestration.ResultPresenter for CLI output.
// It provides formatted, colorized output for search results in the
// command-line interface.
type CLIResultPresenter struct {
	// ShowBoards enables printing of solution boards.
	ShowBoards bool
	// MaxBoards caps the number of boards printed. Zero means no cap.
	MaxBoards int
}

// Verify interface compliance.
var _ orchestration.ResultPresenter = CLIResultPresenter{}

// PresentStats displays the aggregated run statistics in a labeled block.
func (CLIResultPresenter) PresentStats(result orchestration.Result, out io.Writer) {
	st := result.Stats
	fmt.Fprintf(out, "\n%s--- Search Summary ---%s\n", ui.ColorBold(), ui.ColorReset())
	fmt.Fprintf(out, "  Board size:      %s%d x %d%s\n",
		ui.ColorPrimary(), st.BoardSize, st.BoardSize, ui.ColorReset())
	fmt.Fprintf(out, "  Solutions found: %s%s%s\n",
		ui.ColorSuccess(), format.FormatCount(uint64(st.SolutionsFound)), ui.ColorReset())
	fmt.Fprintf(out, "  States explored: %s%s%s\n",
		ui.ColorInfo(), format.FormatCount(st.StatesExplored), ui.ColorReset())
	fmt.Fprintf(out, "  Workers used:    %d\n", st.WorkersUsed)
	fmt.Fprintf(out, "  Duration:        %s%s%s\n",
		ui.ColorWarning(), format.FormatExecutionDuration(st.Duration), ui.ColorReset())

	ind := metrics.ComputeIndicators(st.StatesExplored, uint64(st.SolutionsFound), st.Duration)
	if ind.StatesPerSecond > 0 {
		fmt.Fprintf(out, "  Throughput:      %s states\n", metrics.FormatRate(ind.StatesPerSecond))
	}
	if result.Stopped {
		fmt.Fprintf(out, "  %sNote: search was stopped before completion; results are a subset.%s\n",
			ui.ColorWarning(), ui.ColorReset())
	}
}

// PresentSolutions prints solution boards, capped at MaxBoards when set.
// Nothing is printed unless ShowBoards is enabled.
func (p CLIResultPresenter) PresentSolutions(result orchestration.Result, out io.Writer) {
	if !p.ShowBoards || len(result.Solutions) == 0 {
		return
	}

	limit := len(result.Solutions)
	if p.MaxBoards > 0 && p.MaxBoards < limit {
		limit = p.MaxBoards
	}

	for i := 0; i < limit; i++ {
		fmt.Fprintf(out, "\n%sSolution %d of %d%s\n",
			ui.ColorUnderline(), i+1, len(result.Solutions), ui.ColorReset())
		fmt.Fprint(out, result.Solutions[i].String())
	}

	if limit < len(result.Solutions) {
		fmt.Fprintf(out, "\n%s... %d more solutions not shown (raise -max-boards to see them)%s\n",
			ui.ColorSecondary(), len(result.Solutions)-limit, ui.ColorReset())
	}
}

// DisplayExecutionConfig prints the run parameters before the search starts.
func DisplayExecutionConfig(out io.Writer, n, workers int, policy string) {
	fmt.Fprintf(out, "%sSolving %d-queens%s with %s%d worker(s)%s, termination policy %s%s%s\n",
		ui.ColorBold(), n, ui.ColorReset(),
		ui.ColorPrimary(), workers, ui.ColorReset(),
		ui.ColorInfo(), policy, ui.ColorReset())
}

// DisplayMemoryStats shows memory statistics after a search.
func DisplayMemoryStats(snap metrics.MemorySnapshot, out io.Writer) {
	fmt.Fprintf(out, "\nMemory Stats:\n")
	fmt.Fprintf(out, "  Heap in use:     %s\n", format.FormatBytes(snap.HeapAlloc))
	fmt.Fprintf(out, "  Heap from OS:    %s\n", format.FormatBytes(snap.HeapSys))
	fmt.Fprintf(out, "  GC cycles:       %d\n", snap.NumGC)
	if snap.PauseTotalNs > 0 {
		fmt.Fprintf(out, "  GC pause total:  %.2fms\n", float64(snap.PauseTotalNs)/1e6)
	} else {
		fmt.Fprintf(out, "  GC pause total:  0ms\n")
	}
}
