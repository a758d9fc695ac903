package orchestration

import (
	"io"
	"sync"

	"github.com/agbru/nqueens/internal/progress"
)

// StepReporter defines the interface for displaying search progress.
// This interface decouples the orchestration layer from the presentation
// layer: the engine funnels step updates into a channel, and the reporter
// decides how to render them (spinner, TUI messages, nothing).
//
// Implementations run on their own goroutine and must drain the channel
// until it is closed.
type StepReporter interface {
	// ReportSteps consumes step updates until the channel is closed.
	//
	// Parameters:
	//   - wg: A WaitGroup to signal when reporting is complete.
	//   - steps: Channel receiving step updates from the workers.
	//   - numWorkers: The number of concurrent workers being tracked.
	//   - out: The writer for progress output.
	ReportSteps(wg *sync.WaitGroup, steps <-chan progress.StepUpdate, numWorkers int, out io.Writer)
}

// StepReporterFunc is a function adapter that implements StepReporter.
type StepReporterFunc func(wg *sync.WaitGroup, steps <-chan progress.StepUpdate, numWorkers int, out io.Writer)

// ReportSteps calls the underlying function.
func (f StepReporterFunc) ReportSteps(wg *sync.WaitGroup, steps <-chan progress.StepUpdate, numWorkers int, out io.Writer) {
	f(wg, steps, numWorkers, out)
}

// NullStepReporter is a no-op implementation of StepReporter.
// It drains the step channel without displaying anything.
// Useful for quiet mode or testing.
type NullStepReporter struct{}

// ReportSteps drains the channel without output.
func (NullStepReporter) ReportSteps(wg *sync.WaitGroup, steps <-chan progress.StepUpdate, _ int, _ io.Writer) {
	defer wg.Done()
	for range steps {
		// Drain channel silently
	}
}

// ResultPresenter defines the interface for presenting a finished run.
// This decouples orchestration from output formats (CLI text, TUI messages,
// JSON) without modifying the engine.
type ResultPresenter interface {
	// PresentStats displays the aggregated run statistics.
	PresentStats(result Result, out io.Writer)

	// PresentSolutions displays the solution list (possibly truncated by
	// the presenter's own configuration).
	PresentSolutions(result Result, out io.Writer)
}
