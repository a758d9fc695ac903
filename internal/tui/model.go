package tui

import (
	"context"
	"io"
	"runtime"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/agbru/nqueens/internal/config"
	apperrors "github.com/agbru/nqueens/internal/errors"
	"github.com/agbru/nqueens/internal/orchestration"
	"github.com/agbru/nqueens/internal/sysmon"
)

// Layout constants for the TUI dashboard.
const (
	headerHeight          = 1
	footerHeight          = 1
	minBodyHeight         = 4
	BoardPanelWidthPercent = 50
)

// ExecutionState holds the execution-related fields of a TUI session.
type ExecutionState struct {
	ctx        context.Context
	cancel     context.CancelFunc
	generation uint64
	done       bool
	exitCode   int
}

// LayoutManager holds terminal dimensions and provides layout calculations.
type LayoutManager struct {
	width  int
	height int
}

// bodyHeight returns the available height for the main body panels.
func (l LayoutManager) bodyHeight() int {
	h := l.height - headerHeight - footerHeight
	if h < minBodyHeight {
		h = minBodyHeight
	}
	return h
}

// boardWidth returns the width allocated to the board panel.
func (l LayoutManager) boardWidth() int {
	return l.width * BoardPanelWidthPercent / 100
}

// statsWidth returns the width allocated to the stats panel.
func (l LayoutManager) statsWidth() int {
	return l.width - l.boardWidth()
}

// Model is the root bubbletea model for the TUI dashboard.
type Model struct {
	header HeaderModel
	board  BoardModel
	stats  StatsModel
	footer FooterModel

	keymap KeyMap

	ExecutionState
	LayoutManager

	parentCtx context.Context
	config    config.AppConfig
	engine    *orchestration.Engine
	ref       *programRef
	delay     *animationDelay

	result      *orchestration.Result
	solutionIdx int
	paused      bool
}

// NewModel creates a new TUI model.
func NewModel(parentCtx context.Context, engine *orchestration.Engine, cfg config.AppConfig, version string) Model {
	ctx, cancel := context.WithCancel(parentCtx)

	delay := &animationDelay{}
	delay.Set(cfg.SpeedDelay())

	stats := NewStatsModel()
	stats.SetSpeedLabel(delay.Label())

	return Model{
		header: NewHeaderModel(version, cfg.N),
		board:  NewBoardModel(cfg.N),
		stats:  stats,
		footer: NewFooterModel(),
		keymap: DefaultKeyMap(),
		ExecutionState: ExecutionState{
			ctx:      ctx,
			cancel:   cancel,
			exitCode: apperrors.ExitSuccess,
		},
		parentCtx: parentCtx,
		config:    cfg,
		engine:    engine,
		ref:       &programRef{},
		delay:     delay,
	}
}

// Init returns the initial commands.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		tickCmd(),
		startSearchCmd(m.ref, m.ctx, m.engine, m.config, m.delay, m.generation),
		watchContextCmd(m.ctx, m.generation),
	)
}

// Update handles all incoming messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layoutPanels()
		return m, nil

	case StepMsg:
		if !m.paused && !m.done {
			m.board.SetStep(msg.Board, msg.Row, msg.WorkerIndex)
			m.stats.AddStep()
		}
		return m, nil

	case StepsDoneMsg:
		return m, nil

	case SearchCompleteMsg:
		if msg.Generation != m.generation {
			return m, nil // stale message from previous search
		}
		m.done = true
		m.exitCode = msg.ExitCode
		m.header.SetDone()
		m.footer.SetDone(true)
		if msg.Err != nil {
			m.footer.SetError(true)
			return m, nil
		}
		m.result = &msg.Result
		m.stats.SetResult(msg.Result)
		m.solutionIdx = 0
		if len(m.result.Solutions) > 0 {
			m.board.ShowSolution(m.result.Solutions[0], 0, len(m.result.Solutions))
		}
		return m, nil

	case TickMsg:
		if m.done {
			return m, nil
		}
		if !m.paused {
			return m, tea.Batch(sampleMemStatsCmd(), sampleSysStatsCmd(), tickCmd())
		}
		return m, tickCmd()

	case MemStatsMsg:
		m.stats.UpdateMemStats(msg)
		return m, nil

	case SysStatsMsg:
		m.stats.UpdateSysStats(msg.CPUPercent, msg.MemPercent)
		return m, nil

	case ContextCancelledMsg:
		if msg.Generation != m.generation {
			return m, nil // stale message from previous search
		}
		m.done = true
		m.header.SetDone()
		m.footer.SetDone(true)
		return m, tea.Quit
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keymap.Quit):
		if m.cancel != nil {
			m.cancel()
		}
		return m, tea.Quit

	case key.Matches(msg, m.keymap.Pause):
		if m.done {
			return m, nil
		}
		m.paused = !m.paused
		m.footer.SetPaused(m.paused)
		return m, nil

	case key.Matches(msg, m.keymap.Stop):
		if !m.done {
			m.engine.Stop()
		}
		return m, nil

	case key.Matches(msg, m.keymap.Faster):
		m.delay.Faster()
		m.stats.SetSpeedLabel(m.delay.Label())
		return m, nil

	case key.Matches(msg, m.keymap.Slower):
		m.delay.Slower()
		m.stats.SetSpeedLabel(m.delay.Label())
		return m, nil

	case key.Matches(msg, m.keymap.Prev):
		return m.navigateSolution(-1), nil

	case key.Matches(msg, m.keymap.Next):
		return m.navigateSolution(1), nil

	case key.Matches(msg, m.keymap.Reset):
		// Cancel the current search
		if m.cancel != nil {
			m.cancel()
		}

		// Create a new context for the restarted search
		m.generation++
		ctx, cancel := context.WithCancel(m.parentCtx)
		m.ctx = ctx
		m.cancel = cancel

		// Reset all UI components
		m.header.Reset()
		m.board.Reset()
		m.stats.Reset()
		m.stats.SetSpeedLabel(m.delay.Label())
		m.footer.SetDone(false)
		m.footer.SetError(false)
		m.footer.SetPaused(false)
		m.done = false
		m.paused = false
		m.result = nil
		m.solutionIdx = 0
		m.exitCode = apperrors.ExitSuccess

		// Restart search and watchers
		return m, tea.Batch(
			tickCmd(),
			startSearchCmd(m.ref, m.ctx, m.engine, m.config, m.delay, m.generation),
			watchContextCmd(m.ctx, m.generation),
		)
	}

	return m, nil
}

// navigateSolution moves the solution view by delta, wrapping at the ends.
func (m Model) navigateSolution(delta int) Model {
	if !m.done || m.result == nil || len(m.result.Solutions) == 0 {
		return m
	}
	total := len(m.result.Solutions)
	m.solutionIdx = (m.solutionIdx + delta + total) % total
	m.board.ShowSolution(m.result.Solutions[m.solutionIdx], m.solutionIdx, total)
	return m
}

// View renders the entire dashboard.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Initializing..."
	}

	header := m.header.View()
	footer := m.footer.View()

	boardPanel := m.board.View()
	statsPanel := m.stats.View()

	body := lipgloss.JoinHorizontal(lipgloss.Top, boardPanel, statsPanel)

	return lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
}

func (m *Model) layoutPanels() {
	m.header.SetWidth(m.width)
	m.footer.SetWidth(m.width)
	m.board.SetSize(m.boardWidth(), m.bodyHeight())
	m.stats.SetSize(m.statsWidth(), m.bodyHeight())
}

// Run is the public entry point for the TUI mode.
// It creates the bubbletea program, runs it, and returns the exit code.
func Run(ctx context.Context, engine *orchestration.Engine, cfg config.AppConfig, version string) int {
	// Rebuild styles from the current ui theme (set by app.Run via InitTheme).
	initTUIStyles()

	model := NewModel(ctx, engine, cfg, version)
	defer model.cancel()

	p := tea.NewProgram(model, tea.WithAltScreen())
	// Inject the program reference before running so bridge goroutines can Send.
	model.ref.SetProgram(p)

	finalModel, err := p.Run()
	if err != nil {
		return apperrors.ExitErrorGeneric
	}

	if m, ok := finalModel.(Model); ok {
		m.cancel()
		return m.exitCode
	}
	return apperrors.ExitSuccess
}

// startSearchCmd returns a tea.Cmd that launches the search run.
func startSearchCmd(ref *programRef, ctx context.Context, engine *orchestration.Engine, cfg config.AppConfig, delay *animationDelay, gen uint64) tea.Cmd {
	return func() tea.Msg {
		workers, _ := cfg.Workers()
		termination, _ := cfg.Termination()

		opts := orchestration.Options{
			BoardSize:   cfg.N,
			Workers:     workers,
			Termination: termination,
			Step:        stepDelayFunc(delay),
		}

		reporter := &TUIStepReporter{ref: ref}
		result, err := engine.SolveWithReporter(ctx, opts, reporter, io.Discard)

		exitCode := apperrors.ExitSuccess
		if err != nil {
			exitCode = apperrors.ExitCodeForError(err)
		}
		return SearchCompleteMsg{Result: result, Err: err, ExitCode: exitCode, Generation: gen}
	}
}

// tickCmd returns a command that sends a TickMsg after 500ms.
func tickCmd() tea.Cmd {
	return tea.Tick(500*time.Millisecond, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// sampleMemStatsCmd reads runtime memory stats and returns a MemStatsMsg.
func sampleMemStatsCmd() tea.Cmd {
	return func() tea.Msg {
		var ms runtime.MemStats
		runtime.ReadMemStats(&ms)
		return MemStatsMsg{
			Alloc:        ms.Alloc,
			HeapSys:      ms.HeapSys,
			NumGC:        ms.NumGC,
			PauseTotalNs: ms.PauseTotalNs,
			NumGoroutine: runtime.NumGoroutine(),
		}
	}
}

// sampleSysStatsCmd reads system-wide CPU and memory stats and returns a SysStatsMsg.
func sampleSysStatsCmd() tea.Cmd {
	return func() tea.Msg {
		s := sysmon.Sample()
		return SysStatsMsg{
			CPUPercent: s.CPUPercent,
			MemPercent: s.MemPercent,
		}
	}
}

// watchContextCmd waits for context cancellation and sends a message.
func watchContextCmd(ctx context.Context, gen uint64) tea.Cmd {
	return func() tea.Msg {
		<-ctx.Done()
		return ContextCancelledMsg{Err: ctx.Err(), Generation: gen}
	}
}
