package cli

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/briandowns/spinner"

	"github.com/agbru/nqueens/internal/format"
	"github.com/agbru/nqueens/internal/progress"
)

const (
	// ProgressRefreshRate defines the refresh frequency of the spinner.
	// Optimized to 200ms to reduce terminal updates during fast searches.
	ProgressRefreshRate = 200 * time.Millisecond
)

// Spinner is an interface that abstracts the behavior of a terminal spinner.
// This allows for the decoupling of the `DisplayProgress` function from a
// specific spinner implementation, facilitating easier testing and maintenance.
// It defines the essential controls for a spinner: starting, stopping, and
// updating its status message.
type Spinner interface {
	// Start begins the spinner animation.
	Start()
	// Stop halts the spinner animation.
	Stop()
	// UpdateSuffix sets the text that is displayed after the spinner.
	//
	// Parameters:
	//   - suffix: The text string to display.
	UpdateSuffix(suffix string)
}

// realSpinner is a wrapper for the `spinner.Spinner` that implements the
// `Spinner` interface. This adapter allows the `spinner` library to be used
// within the application's CLI framework.
type realSpinner struct {
	s *spinner.Spinner
}

// Start begins the spinner animation.
func (rs *realSpinner) Start() {
	rs.s.Start()
}

// Stop halts the spinner animation.
func (rs *realSpinner) Stop() {
	rs.s.Stop()
}

// UpdateSuffix sets the text that is displayed after the spinner.
//
// Parameters:
//   - suffix: The string to display.
func (rs *realSpinner) UpdateSuffix(suffix string) {
	rs.s.Suffix = suffix
}

var newSpinner = func(options ...spinner.Option) Spinner {
	// Using the same interval as ProgressRefreshRate to synchronize
	s := spinner.New(spinner.CharSets[11], ProgressRefreshRate, options...)
	return &realSpinner{s}
}

// SearchState aggregates step updates from concurrent workers for display.
// It tracks the deepest row reached by each worker and the total number of
// updates observed, which together give a consolidated view of the search.
type SearchState struct {
	rows       []int
	numWorkers int
	observed   uint64
}

// NewSearchState creates a SearchState tracking the given number of workers.
func NewSearchState(numWorkers int) *SearchState {
	return &SearchState{
		rows:       make([]int, numWorkers),
		numWorkers: numWorkers,
	}
}

// Update records a step update from a worker. Updates with an out-of-range
// worker index are counted but otherwise ignored.
func (ss *SearchState) Update(workerIndex, row int) {
	ss.observed++
	if workerIndex >= 0 && workerIndex < len(ss.rows) {
		ss.rows[workerIndex] = row
	}
}

// Observed returns the total number of step updates recorded.
func (ss *SearchState) Observed() uint64 {
	return ss.observed
}

// DeepestRow returns the maximum row reached across all workers.
func (ss *SearchState) DeepestRow() int {
	deepest := 0
	for _, r := range ss.rows {
		if r > deepest {
			deepest = r
		}
	}
	return deepest
}

// DisplayProgress displays a spinner with a live summary of the search while
// workers explore the board. It consumes step updates until the channel is
// closed, then stops the spinner and signals the WaitGroup.
//
// Parameters:
//   - wg: A WaitGroup to signal when the display loop has finished.
//   - steps: Channel receiving step updates from the workers.
//   - numWorkers: The number of concurrent workers being tracked.
//   - out: The writer for spinner output.
func DisplayProgress(wg *sync.WaitGroup, steps <-chan progress.StepUpdate, numWorkers int, out io.Writer) {
	defer wg.Done()

	if numWorkers <= 0 {
		for range steps {
			// Drain channel, nothing to display
		}
		return
	}

	s := newSpinner(spinner.WithWriter(out))
	s.UpdateSuffix(fmt.Sprintf(" searching on %d workers...", numWorkers))
	s.Start()
	defer s.Stop()

	state := NewSearchState(numWorkers)
	ticker := time.NewTicker(ProgressRefreshRate)
	defer ticker.Stop()

	for {
		select {
		case upd, ok := <-steps:
			if !ok {
				return
			}
			state.Update(upd.WorkerIndex, upd.Row)
		case <-ticker.C:
			s.UpdateSuffix(fmt.Sprintf(" row %d | %s states | %d workers",
				state.DeepestRow(), format.FormatCount(state.Observed()), numWorkers))
		}
	}
}
