package search

import (
	"github.com/agbru/nqueens/internal/board"
	apperrors "github.com/agbru/nqueens/internal/errors"
	"github.com/agbru/nqueens/internal/partition"
	"github.com/agbru/nqueens/internal/progress"
)

// Worker explores every starting column of one partition by recursive
// backtracking. It owns its Board exclusively; the only shared state it
// touches is the Aggregator.
//
// The search logic is deliberately separated from any thread-of-control
// concern: Run is a plain blocking function, and the orchestrator decides
// on which goroutine it executes.
type Worker struct {
	index  int
	n      int
	part   partition.Partition
	policy TerminationPolicy
	agg    *Aggregator
	step   progress.StepFunc

	// branchSolved is set when a solution is recorded for the current
	// starting column and FirstPerBranch is active. It unwinds the current
	// descent without visiting further alternatives.
	branchSolved bool
}

// NewWorker creates a worker for one partition. step may be nil.
func NewWorker(index, n int, part partition.Partition, policy TerminationPolicy, agg *Aggregator, step progress.StepFunc) *Worker {
	return &Worker{
		index:  index,
		n:      n,
		part:   part,
		policy: policy,
		agg:    agg,
		step:   step,
	}
}

// Index returns the worker's position in the run's worker list.
func (w *Worker) Index() int { return w.index }

// Run searches every starting column in the worker's partition in ascending
// order. It returns nil on exhaustion or cooperative stop, and a
// CallbackError if the step callback failed. Run blocks until done; the
// caller provides the goroutine.
func (w *Worker) Run() error {
	for col := w.part.Lo; col < w.part.Hi; col++ {
		if w.agg.IsStopRequested() {
			return nil
		}

		b := board.New(w.n)
		b.Place(0, col)
		w.branchSolved = false

		if err := w.descend(b, 1); err != nil {
			return err
		}
	}
	return nil
}

// descend places a queen in the given row and recurses. Columns are tried in
// ascending order, which fixes the solution order for a given starting
// column. The stop flag is re-checked before each column attempt and before
// each recursive descent; once set, the search unwinds without completing
// the remaining columns.
func (w *Worker) descend(b *board.Board, row int) error {
	if row == w.n {
		w.recordSolution(b)
		return nil
	}

	for col := 0; col < w.n; col++ {
		if w.agg.IsStopRequested() || w.branchSolved {
			return nil
		}

		w.agg.IncrementExplored()
		if err := w.notifyStep(b, row); err != nil {
			return apperrors.CallbackError{WorkerIndex: w.index, Cause: err}
		}

		if !b.IsSafe(row, col) {
			continue
		}

		b.Place(row, col)
		if w.agg.IsStopRequested() {
			b.Remove(row)
			return nil
		}
		err := w.descend(b, row+1)
		b.Remove(row)
		if err != nil {
			return err
		}
	}
	return nil
}

// recordSolution freezes the complete board into the shared solution list.
// Under FirstPerBranch the current starting column is marked solved so the
// unwinding loop stops trying alternatives for it.
func (w *Worker) recordSolution(b *board.Board) {
	w.agg.AddSolution(b.ToSolution())
	if w.policy == FirstPerBranch {
		w.branchSolved = true
	}
}

// notifyStep invokes the optional external callback with a defensive board
// snapshot. The callback runs synchronously on the worker's goroutine.
func (w *Worker) notifyStep(b *board.Board, row int) error {
	if w.step == nil {
		return nil
	}
	return w.step(b.Snapshot(), row)
}
