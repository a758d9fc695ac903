package app

import (
	"context"
	"fmt"
	"io"
	"os/signal"
	"syscall"

	"github.com/agbru/nqueens/internal/cli"
	apperrors "github.com/agbru/nqueens/internal/errors"
	"github.com/agbru/nqueens/internal/metrics"
	"github.com/agbru/nqueens/internal/orchestration"
	"github.com/agbru/nqueens/internal/partition"
	"github.com/agbru/nqueens/internal/ui"
)

// runSolve orchestrates the standard CLI solve command.
func (a *Application) runSolve(ctx context.Context, out io.Writer) int {
	// Setup lifecycle (timeout + signals)
	ctx, cancelTimeout := context.WithTimeout(ctx, a.Config.Timeout)
	defer cancelTimeout()
	ctx, stopSignals := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	workers, err := a.Config.Workers()
	if err != nil {
		fmt.Fprintf(a.ErrWriter, "Error: %v\n", err)
		return apperrors.ExitErrorConfig
	}
	termination, err := a.Config.Termination()
	if err != nil {
		fmt.Fprintf(a.ErrWriter, "Error: %v\n", err)
		return apperrors.ExitErrorConfig
	}

	// Skip verbose output in quiet mode
	if !a.Config.Quiet {
		workerCount := partition.WorkerCount(a.Config.N, workers, 0)
		cli.DisplayExecutionConfig(out, a.Config.N, workerCount, termination.String())
	}

	// Choose step reporter based on quiet mode
	var reporter orchestration.StepReporter
	progressOut := out
	if a.Config.Quiet {
		progressOut = io.Discard
		reporter = orchestration.NullStepReporter{}
	} else {
		reporter = cli.CLIStepReporter{}
	}

	engine := orchestration.NewEngine(a.Logger)
	opts := orchestration.Options{
		BoardSize:   a.Config.N,
		Workers:     workers,
		Termination: termination,
	}

	result, err := engine.SolveWithReporter(ctx, opts, reporter, progressOut)
	if err != nil {
		return a.handleSolveError(result, err, out)
	}

	outputCfg := cli.OutputConfig{
		OutputFile: a.Config.OutputFile,
		Quiet:      a.Config.Quiet,
		ShowBoards: a.Config.ShowBoards,
		MaxBoards:  a.Config.MaxBoards,
	}
	if err := cli.DisplayRunWithConfig(out, result, outputCfg); err != nil {
		fmt.Fprintf(a.ErrWriter, "Error saving solutions: %v\n", err)
		return apperrors.ExitErrorGeneric
	}

	if a.Config.Verbose {
		cli.DisplayMemoryStats(metrics.NewMemoryCollector().Snapshot(), out)
	}

	return apperrors.ExitSuccess
}

// handleSolveError reports a failed run. Partial results are still shown:
// a timeout or callback failure leaves valid solutions in the result.
func (a *Application) handleSolveError(result orchestration.Result, err error, out io.Writer) int {
	if apperrors.IsContextError(err) {
		fmt.Fprintf(out, "\n%sSearch interrupted: %v%s\n", ui.ColorWarning(), err, ui.ColorReset())
	} else {
		fmt.Fprintf(a.ErrWriter, "\n%sSearch failed: %v%s\n", ui.ColorError(), err, ui.ColorReset())
	}

	if !a.Config.Quiet && result.Stats.SolutionsFound > 0 {
		presenter := cli.CLIResultPresenter{ShowBoards: a.Config.ShowBoards, MaxBoards: a.Config.MaxBoards}
		presenter.PresentStats(result, out)
		presenter.PresentSolutions(result, out)
	}

	return apperrors.ExitCodeForError(err)
}
