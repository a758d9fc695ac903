package orchestration

import (
	"context"
	"io"
	"runtime"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"github.com/agbru/nqueens/internal/board"
	apperrors "github.com/agbru/nqueens/internal/errors"
	"github.com/agbru/nqueens/internal/logging"
	"github.com/agbru/nqueens/internal/partition"
	"github.com/agbru/nqueens/internal/progress"
	"github.com/agbru/nqueens/internal/search"
)

// tracerName identifies this package's traces.
const tracerName = "github.com/agbru/nqueens/internal/orchestration"

// StepBufferMultiplier defines the buffer size multiplier for the step
// channel feeding a StepReporter. A larger buffer reduces the likelihood of
// dropped updates when the UI is slow to consume them.
const StepBufferMultiplier = 16

// Options configures a single solve run.
type Options struct {
	// BoardSize is N, the board dimension and queen count. Must be >= 1.
	BoardSize int
	// Workers selects the worker-count policy (Auto or Maximal).
	Workers partition.WorkerCountPolicy
	// Termination selects the per-branch termination policy.
	Termination search.TerminationPolicy
	// Parallelism overrides the available parallelism used by the Auto
	// policy. Zero means runtime.NumCPU(). Primarily for reproducible tests.
	Parallelism int
	// Step is the optional external per-node callback. It runs synchronously
	// on the invoking worker's goroutine; an error terminates that worker
	// only.
	Step progress.StepFunc
	// Observer optionally receives every step update (in addition to Step).
	// Used by presentation layers that consume updates via a channel.
	Observer progress.StepObserver
}

// Stats is the statistics record of a finished (or stopped) run.
type Stats struct {
	// SolutionsFound is the number of aggregated solutions.
	SolutionsFound int
	// StatesExplored is the exact number of nodes visited across all workers.
	StatesExplored uint64
	// WorkersUsed is the number of workers actually spawned.
	WorkersUsed int
	// BoardSize is N.
	BoardSize int
	// Duration is the wall-clock time of the run.
	Duration time.Duration
}

// Result carries everything a finished run hands back to the caller.
type Result struct {
	// RunID uniquely identifies the run in logs and API responses.
	RunID string
	// Solutions is the aggregated solution list in insertion order.
	Solutions []board.Solution
	// Stats is the statistics record of the run.
	Stats Stats
	// Stopped reports whether the run ended by cooperative stop rather than
	// exhaustion.
	Stopped bool
}

// Engine orchestrates solve runs. It is safe for concurrent use: Stop may be
// called from any goroutine while a Solve is in flight. All run state is
// created fresh per Solve invocation; nothing persists across runs except
// the returned values.
type Engine struct {
	logger logging.Logger
	tracer trace.Tracer

	mu  sync.Mutex
	agg *search.Aggregator // aggregator of the in-flight run, nil otherwise
}

// NewEngine creates an engine logging through the given logger.
// A nil logger falls back to the no-op logger.
func NewEngine(logger logging.Logger) *Engine {
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	return &Engine{
		logger: logger,
		tracer: otel.Tracer(tracerName),
	}
}

// Solve runs the concurrent backtracking search described by opts and blocks
// until every worker has either exhausted its partition or observed the stop
// flag.
//
// Cancellation is cooperative: Stop, or cancellation of ctx, sets a shared
// flag that workers poll at their checkpoints. A stopped run is not an
// error — Solve returns the partial result set with Stopped=true and a nil
// error unless ctx itself ended, in which case ctx's error is returned
// alongside the partial result.
//
// A step-callback failure terminates only the worker that invoked it; the
// remaining workers finish normally and Solve returns their aggregated
// results together with the CallbackError.
func (e *Engine) Solve(ctx context.Context, opts Options) (Result, error) {
	if opts.BoardSize < 1 {
		return Result{}, apperrors.ValidationError{
			Field:   "n",
			Message: "board size must be at least 1",
		}
	}

	parallelism := opts.Parallelism
	if parallelism < 1 {
		parallelism = runtime.NumCPU()
	}
	partitions := partition.Plan(opts.BoardSize, opts.Workers, parallelism)

	runID := uuid.NewString()
	ctx, span := e.tracer.Start(ctx, "nqueens.solve", trace.WithAttributes(
		attribute.String("run.id", runID),
		attribute.Int("board.size", opts.BoardSize),
		attribute.Int("workers.count", len(partitions)),
		attribute.String("workers.policy", opts.Workers.String()),
		attribute.String("termination.policy", opts.Termination.String()),
	))
	defer span.End()

	e.logger.Info("solve started",
		logging.String("run_id", runID),
		logging.Int("n", opts.BoardSize),
		logging.Int("workers", len(partitions)),
		logging.String("worker_policy", opts.Workers.String()),
		logging.String("termination_policy", opts.Termination.String()),
	)

	agg := search.NewAggregator()
	e.setAggregator(agg)
	defer e.setAggregator(nil)

	// Propagate context cancellation into the cooperative stop flag. The
	// watcher exits when the run finishes.
	runDone := make(chan struct{})
	defer close(runDone)
	go func() {
		select {
		case <-ctx.Done():
			agg.RequestStop()
		case <-runDone:
		}
	}()

	start := time.Now()
	var g errgroup.Group
	for i, part := range partitions {
		worker := search.NewWorker(i, opts.BoardSize, part, opts.Termination, agg, e.composeStep(i, opts))
		workerCtx := ctx
		g.Go(func() error {
			_, workerSpan := e.tracer.Start(workerCtx, "nqueens.worker", trace.WithAttributes(
				attribute.Int("worker.index", worker.Index()),
			))
			defer workerSpan.End()
			return worker.Run()
		})
	}

	// Wait returns the first callback error, if any; remaining workers are
	// unaffected and have already finished by the time it returns.
	err := g.Wait()
	duration := time.Since(start)

	result := Result{
		RunID:     runID,
		Solutions: agg.Solutions(),
		Stats: Stats{
			SolutionsFound: agg.SolutionCount(),
			StatesExplored: agg.StatesExplored(),
			WorkersUsed:    len(partitions),
			BoardSize:      opts.BoardSize,
			Duration:       duration,
		},
		Stopped: agg.IsStopRequested(),
	}

	if err == nil {
		err = ctx.Err()
	}
	if err != nil {
		span.RecordError(err)
		e.logger.Error("solve finished with error",
			logging.String("run_id", runID),
			logging.Err(err),
			logging.Int("solutions", result.Stats.SolutionsFound),
			logging.Uint64("states_explored", result.Stats.StatesExplored),
		)
		return result, err
	}

	e.logger.Info("solve finished",
		logging.String("run_id", runID),
		logging.Int("solutions", result.Stats.SolutionsFound),
		logging.Uint64("states_explored", result.Stats.StatesExplored),
		logging.Int("workers", result.Stats.WorkersUsed),
		logging.Float64("seconds", duration.Seconds()),
	)
	return result, nil
}

// Stop requests cooperative cancellation of the in-flight run and returns
// immediately. Workers observe the flag at their next checkpoint, so a
// bounded amount of additional work may still occur; callers await the
// Solve return to observe the final, possibly partial, result set.
// Stop is a no-op when no run is in flight.
func (e *Engine) Stop() {
	e.mu.Lock()
	agg := e.agg
	e.mu.Unlock()
	if agg != nil {
		agg.RequestStop()
	}
}

// setAggregator publishes the in-flight run's aggregator for Stop.
func (e *Engine) setAggregator(agg *search.Aggregator) {
	e.mu.Lock()
	e.agg = agg
	e.mu.Unlock()
}

// composeStep builds the per-worker step function from the configured
// observer and external callback. Only the external callback can fail.
func (e *Engine) composeStep(workerIndex int, opts Options) progress.StepFunc {
	if opts.Observer == nil && opts.Step == nil {
		return nil
	}
	return func(snapshot []int, row int) error {
		if opts.Observer != nil {
			opts.Observer.Notify(progress.StepUpdate{
				WorkerIndex: workerIndex,
				Board:       snapshot,
				Row:         row,
			})
		}
		if opts.Step != nil {
			return opts.Step(snapshot, row)
		}
		return nil
	}
}

// SolveWithReporter runs Solve while funneling step updates to the given
// reporter through a buffered channel, mirroring the usual CLI/TUI wiring:
// the reporter goroutine drains the channel until all workers have finished.
// Any Observer already present in opts is replaced by the channel feeding
// the reporter.
func (e *Engine) SolveWithReporter(ctx context.Context, opts Options, reporter StepReporter, out io.Writer) (Result, error) {
	workers := partition.WorkerCount(opts.BoardSize, opts.Workers, opts.Parallelism)
	if workers < 1 {
		workers = 1
	}
	steps := make(chan progress.StepUpdate, workers*StepBufferMultiplier)

	var displayWg sync.WaitGroup
	displayWg.Add(1)
	go reporter.ReportSteps(&displayWg, steps, workers, out)

	opts.Observer = progress.NewChannelObserver(steps)
	result, err := e.Solve(ctx, opts)

	close(steps)
	displayWg.Wait()

	return result, err
}
