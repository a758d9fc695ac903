// Package app wires configuration, logging, and the run modes together.
// It owns the application lifecycle: parse flags, pick a mode (CLI solve,
// demo, TUI dashboard, or HTTP server), and translate errors to exit codes.
package app

import (
	"context"
	"errors"
	"flag"
	"io"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"

	"github.com/agbru/nqueens/internal/config"
	apperrors "github.com/agbru/nqueens/internal/errors"
	"github.com/agbru/nqueens/internal/logging"
	"github.com/agbru/nqueens/internal/orchestration"
	"github.com/agbru/nqueens/internal/server"
	"github.com/agbru/nqueens/internal/tui"
	"github.com/agbru/nqueens/internal/ui"
)

// Application represents the nqueens application instance.
type Application struct {
	Config    config.AppConfig
	Logger    logging.Logger
	ErrWriter io.Writer
}

// AppOption configures an Application during construction.
type AppOption func(*Application)

// WithLogger sets a custom logger for the application.
func WithLogger(l logging.Logger) AppOption {
	return func(a *Application) { a.Logger = l }
}

// New creates a new Application instance by parsing command-line arguments.
func New(args []string, errWriter io.Writer, opts ...AppOption) (*Application, error) {
	app := &Application{ErrWriter: errWriter}
	for _, opt := range opts {
		opt(app)
	}

	programName := "nqueens"
	var cmdArgs []string
	if len(args) > 0 {
		programName = args[0]
		cmdArgs = args[1:]
	}

	cfg, err := config.ParseConfig(programName, cmdArgs, errWriter)
	if err != nil {
		return nil, err
	}

	app.Config = cfg
	if app.Logger == nil {
		app.Logger = logging.NewZerologLogger(errWriter)
	}
	return app, nil
}

// Run executes the application based on the configured mode.
func (a *Application) Run(ctx context.Context, out io.Writer) int {
	switch {
	case a.Config.Verbose:
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	case a.Config.Quiet:
		zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
	ui.InitTheme(false)

	if a.Config.Demo {
		return a.runDemo(ctx, out)
	}

	if a.Config.ServeAddr != "" {
		return a.runServe(ctx)
	}

	if a.Config.TUI {
		return a.runTUI(ctx)
	}

	return a.runSolve(ctx, out)
}

// runTUI launches the interactive TUI dashboard.
func (a *Application) runTUI(ctx context.Context) int {
	ctx, cancelTimeout := context.WithTimeout(ctx, a.Config.Timeout)
	defer cancelTimeout()
	ctx, stopSignals := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	engine := orchestration.NewEngine(a.Logger)
	return tui.Run(ctx, engine, a.Config, Version)
}

// runServe starts the HTTP API server and blocks until shutdown.
func (a *Application) runServe(ctx context.Context) int {
	ctx, stopSignals := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	engine := orchestration.NewEngine(a.Logger)
	srv := server.NewServer(a.Config.ServeAddr, a.Logger, engine)

	if err := srv.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		a.Logger.Error("server terminated", logging.Err(err))
		return apperrors.ExitCodeForError(err)
	}
	return apperrors.ExitSuccess
}

// IsHelpError checks if the error is a help flag error (--help was used).
func IsHelpError(err error) bool {
	return errors.Is(err, flag.ErrHelp)
}
