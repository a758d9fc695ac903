package tui

import (
	"io"
	"sync"
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/agbru/nqueens/internal/orchestration"
	"github.com/agbru/nqueens/internal/progress"
)

// programRef is a shared reference to the tea.Program.
// Because bubbletea copies the model on every Update, we need a pointer
// that survives copies so the bridge goroutines can send messages.
type programRef struct {
	mu      sync.RWMutex
	program *tea.Program
}

// SetProgram sets the tea.Program reference (thread-safe).
func (r *programRef) SetProgram(p *tea.Program) {
	r.mu.Lock()
	r.program = p
	r.mu.Unlock()
}

// Send sends a message to the bubbletea program (thread-safe).
func (r *programRef) Send(msg tea.Msg) {
	r.mu.RLock()
	p := r.program
	r.mu.RUnlock()
	if p != nil {
		p.Send(msg)
	}
}

// TUIStepReporter implements orchestration.StepReporter.
// It drains the step channel and forwards updates as bubbletea messages.
type TUIStepReporter struct {
	ref *programRef
}

// Verify interface compliance.
var _ orchestration.StepReporter = (*TUIStepReporter)(nil)

// ReportSteps drains the step channel and sends StepMsg to the TUI.
func (t *TUIStepReporter) ReportSteps(wg *sync.WaitGroup, steps <-chan progress.StepUpdate, _ int, _ io.Writer) {
	defer wg.Done()

	for update := range steps {
		t.ref.Send(StepMsg{
			WorkerIndex: update.WorkerIndex,
			Board:       update.Board,
			Row:         update.Row,
		})
	}
	t.ref.Send(StepsDoneMsg{})
}

// animationDelay is the shared per-step delay applied on the worker
// goroutines. The UI loop adjusts it while workers read it, hence atomic.
type animationDelay struct {
	nanos atomic.Int64
}

// Set stores a new delay.
func (d *animationDelay) Set(delay time.Duration) {
	d.nanos.Store(int64(delay))
}

// Get returns the current delay.
func (d *animationDelay) Get() time.Duration {
	return time.Duration(d.nanos.Load())
}

// speedSteps are the selectable animation delays, fastest first.
var speedSteps = []time.Duration{
	0,
	10 * time.Millisecond,
	50 * time.Millisecond,
	100 * time.Millisecond,
}

// Faster moves to the next smaller delay step.
func (d *animationDelay) Faster() {
	cur := d.Get()
	for i := 1; i < len(speedSteps); i++ {
		if speedSteps[i] >= cur {
			d.Set(speedSteps[i-1])
			return
		}
	}
	d.Set(speedSteps[len(speedSteps)-2])
}

// Slower moves to the next larger delay step.
func (d *animationDelay) Slower() {
	cur := d.Get()
	for i := len(speedSteps) - 2; i >= 0; i-- {
		if speedSteps[i] <= cur {
			d.Set(speedSteps[i+1])
			return
		}
	}
	d.Set(speedSteps[1])
}

// Label returns a display name for the current delay.
func (d *animationDelay) Label() string {
	switch d.Get() {
	case 0:
		return "instant"
	case 10 * time.Millisecond:
		return "fast"
	case 50 * time.Millisecond:
		return "medium"
	case 100 * time.Millisecond:
		return "slow"
	default:
		return d.Get().String()
	}
}

// stepDelayFunc builds the per-node callback that paces the search so the
// board animation is watchable. A zero delay makes it a no-op.
func stepDelayFunc(delay *animationDelay) progress.StepFunc {
	return func(_ []int, _ int) error {
		if d := delay.Get(); d > 0 {
			time.Sleep(d)
		}
		return nil
	}
}
