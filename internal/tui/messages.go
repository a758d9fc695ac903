package tui

import (
	"time"

	"github.com/agbru/nqueens/internal/orchestration"
)

// StepMsg carries one worker step update into the UI loop.
type StepMsg struct {
	WorkerIndex int
	Board       []int
	Row         int
}

// StepsDoneMsg signals that the step channel has been fully drained.
type StepsDoneMsg struct{}

// SearchCompleteMsg carries the finished run back to the UI loop.
type SearchCompleteMsg struct {
	Result     orchestration.Result
	Err        error
	ExitCode   int
	Generation uint64
}

// TickMsg drives periodic sampling and elapsed-time refresh.
type TickMsg time.Time

// MemStatsMsg carries a runtime memory sample.
type MemStatsMsg struct {
	Alloc        uint64
	HeapSys      uint64
	NumGC        uint32
	PauseTotalNs uint64
	NumGoroutine int
}

// SysStatsMsg carries a system-wide CPU and memory sample.
type SysStatsMsg struct {
	CPUPercent float64
	MemPercent float64
}

// ContextCancelledMsg signals that the parent context was cancelled.
type ContextCancelledMsg struct {
	Err        error
	Generation uint64
}
