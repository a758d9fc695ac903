// Package progress defines the step-reporting surface between the search
// core and its presentation layers. Workers emit one StepUpdate per explored
// node; observers decide what to do with it (forward to a channel, log it,
// or drop it).
package progress

import "github.com/rs/zerolog"

// StepUpdate describes a single explored node of the search.
type StepUpdate struct {
	// WorkerIndex identifies the worker that explored the node.
	WorkerIndex int
	// Board is a defensive snapshot of the worker's board at the moment the
	// node was entered (row→column, -1 for unoccupied rows).
	Board []int
	// Row is the row the worker is currently trying to fill.
	Row int
}

// StepFunc is the optional external step callback. It runs synchronously on
// the invoking worker's goroutine, so it must be fast and non-blocking; a
// slow callback stalls only its own worker. A non-nil error terminates the
// invoking worker and is surfaced to the caller.
type StepFunc func(boardSnapshot []int, row int) error

// StepObserver receives step updates from workers.
type StepObserver interface {
	// Notify is called once per explored node. Implementations must be safe
	// for concurrent use: multiple workers call Notify simultaneously.
	Notify(update StepUpdate)
}

// ChannelObserver forwards step updates to a channel, dropping updates when
// the channel is full rather than blocking the search.
type ChannelObserver struct {
	ch chan<- StepUpdate
}

// NewChannelObserver creates an observer forwarding to ch.
func NewChannelObserver(ch chan<- StepUpdate) *ChannelObserver {
	return &ChannelObserver{ch: ch}
}

// Notify sends the update without blocking. Updates that would block are
// discarded: the display layer only needs a recent state, not every state.
func (o *ChannelObserver) Notify(update StepUpdate) {
	select {
	case o.ch <- update:
	default:
	}
}

// LoggingObserver logs each explored node at trace level. Intended for
// debugging small boards; on large boards it produces enormous output.
type LoggingObserver struct {
	logger zerolog.Logger
}

// NewLoggingObserver creates an observer writing to the given logger.
func NewLoggingObserver(logger zerolog.Logger) *LoggingObserver {
	return &LoggingObserver{logger: logger}
}

// Notify logs the worker index and current row of the explored node.
func (o *LoggingObserver) Notify(update StepUpdate) {
	o.logger.Trace().
		Int("worker", update.WorkerIndex).
		Int("row", update.Row).
		Msg("state explored")
}

// NoOpObserver discards all updates.
type NoOpObserver struct{}

// NewNoOpObserver creates an observer that does nothing.
func NewNoOpObserver() *NoOpObserver { return &NoOpObserver{} }

// Notify discards the update.
func (*NoOpObserver) Notify(StepUpdate) {}
