package search

import (
	"sync"
	"sync/atomic"

	"github.com/agbru/nqueens/internal/board"
)

// Aggregator is the single structure shared by all workers of a run. It
// collects solutions, counts explored states, and carries the cooperative
// stop flag. All methods are safe for concurrent use from any number of
// workers without caller-side locking.
//
// The solution list is append-only under a mutex; the counter and the stop
// flag are atomics. Nothing is ever held across a blocking operation, so the
// aggregator cannot deadlock.
type Aggregator struct {
	mu        sync.Mutex
	solutions []board.Solution

	explored atomic.Uint64
	stop     atomic.Bool
}

// NewAggregator creates an empty aggregator for a fresh run.
func NewAggregator() *Aggregator {
	return &Aggregator{}
}

// AddSolution appends a solution to the shared list. Insertions from a single
// worker keep their relative order; no ordering is guaranteed across workers.
func (a *Aggregator) AddSolution(s board.Solution) {
	a.mu.Lock()
	a.solutions = append(a.solutions, s)
	a.mu.Unlock()
}

// Solutions returns a copy of the aggregated solution list in insertion
// order. Safe to call at any time, including while workers are running.
func (a *Aggregator) Solutions() []board.Solution {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := make([]board.Solution, len(a.solutions))
	copy(out, a.solutions)
	return out
}

// SolutionCount returns the number of solutions aggregated so far.
func (a *Aggregator) SolutionCount() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return len(a.solutions)
}

// IncrementExplored atomically increments the explored-state counter and
// returns the new total. The total equals the exact number of calls across
// all workers; increments are never lost under concurrency.
func (a *Aggregator) IncrementExplored() uint64 {
	return a.explored.Add(1)
}

// StatesExplored returns the current explored-state count.
func (a *Aggregator) StatesExplored() uint64 {
	return a.explored.Load()
}

// RequestStop sets the cooperative stop flag. Idempotent; once set, the flag
// stays set for the remainder of the run.
func (a *Aggregator) RequestStop() {
	a.stop.Store(true)
}

// IsStopRequested reports whether a stop has been requested. Non-blocking;
// workers poll this at their checkpoints.
func (a *Aggregator) IsStopRequested() bool {
	return a.stop.Load()
}
