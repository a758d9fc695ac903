// Package config defines the application configuration and its resolution
// chain: command-line flags take priority over NQUEENS_-prefixed environment
// variables, which take priority over defaults.
package config

import (
	"flag"
	"fmt"
	"io"
	"time"

	apperrors "github.com/agbru/nqueens/internal/errors"
	"github.com/agbru/nqueens/internal/partition"
	"github.com/agbru/nqueens/internal/search"
)

// EnvPrefix is the prefix for all environment variable overrides.
const EnvPrefix = "NQUEENS_"

// Default configuration values.
const (
	DefaultBoardSize = 8
	DefaultTimeout   = 5 * time.Minute
	DefaultMaxBoards = 3
	DefaultSpeed     = "fast"
)

// AppConfig holds the complete application configuration for a run.
type AppConfig struct {
	// N is the board size.
	N int
	// WorkerPolicy selects how many workers are spawned ("auto" or "max").
	WorkerPolicy string
	// TerminationPolicy selects per-branch termination ("exhaustive" or "first").
	TerminationPolicy string
	// Timeout bounds the total solve duration.
	Timeout time.Duration
	// Quiet suppresses progress display and non-essential output.
	Quiet bool
	// Verbose enables debug logging.
	Verbose bool
	// ShowBoards prints textual boards for the first MaxBoards solutions.
	ShowBoards bool
	// MaxBoards caps how many solution boards are printed.
	MaxBoards int
	// OutputFile is a path to save solutions and statistics (empty for none).
	OutputFile string
	// TUI launches the interactive dashboard instead of the plain CLI.
	TUI bool
	// Speed selects the TUI visualization speed (slow, medium, fast, instant).
	Speed string
	// Demo runs the scripted demonstration instead of a single solve.
	Demo bool
	// ServeAddr starts the HTTP API server on this address (empty for none).
	ServeAddr string
}

// Workers returns the parsed worker-count policy.
func (c AppConfig) Workers() (partition.WorkerCountPolicy, error) {
	return partition.ParseWorkerCountPolicy(c.WorkerPolicy)
}

// Termination returns the parsed termination policy.
func (c AppConfig) Termination() (search.TerminationPolicy, error) {
	return search.ParseTerminationPolicy(c.TerminationPolicy)
}

// defaultConfig returns the configuration before flags and env are applied.
func defaultConfig() AppConfig {
	return AppConfig{
		N:                 DefaultBoardSize,
		WorkerPolicy:      "auto",
		TerminationPolicy: "exhaustive",
		Timeout:           DefaultTimeout,
		MaxBoards:         DefaultMaxBoards,
		Speed:             DefaultSpeed,
	}
}

// ParseConfig parses command-line arguments into an AppConfig, applies
// environment variable overrides for flags not explicitly set, and validates
// the result.
//
// Parameters:
//   - programName: The name used in usage output.
//   - args: The command-line arguments (without the program name).
//   - errWriter: The writer for usage and error output.
//
// Returns:
//   - AppConfig: The resolved configuration.
//   - error: A ConfigError for invalid values, or flag.ErrHelp for --help.
func ParseConfig(programName string, args []string, errWriter io.Writer) (AppConfig, error) {
	cfg := defaultConfig()

	fs := flag.NewFlagSet(programName, flag.ContinueOnError)
	fs.SetOutput(errWriter)

	fs.IntVar(&cfg.N, "n", cfg.N, "board size (number of queens)")
	fs.StringVar(&cfg.WorkerPolicy, "workers", cfg.WorkerPolicy, "worker count policy: auto (N/processors) or max (one per starting column)")
	fs.StringVar(&cfg.TerminationPolicy, "policy", cfg.TerminationPolicy, "termination policy: exhaustive (all solutions) or first (first per starting column)")
	fs.DurationVar(&cfg.Timeout, "timeout", cfg.Timeout, "maximum solve duration")
	fs.BoolVar(&cfg.Quiet, "quiet", cfg.Quiet, "suppress progress display")
	fs.BoolVar(&cfg.Quiet, "q", cfg.Quiet, "suppress progress display (shorthand)")
	fs.BoolVar(&cfg.Verbose, "verbose", cfg.Verbose, "enable debug logging")
	fs.BoolVar(&cfg.Verbose, "v", cfg.Verbose, "enable debug logging (shorthand)")
	fs.BoolVar(&cfg.ShowBoards, "show-boards", cfg.ShowBoards, "print textual boards for the first solutions")
	fs.IntVar(&cfg.MaxBoards, "max-boards", cfg.MaxBoards, "maximum number of solution boards to print")
	fs.StringVar(&cfg.OutputFile, "output", cfg.OutputFile, "write solutions and statistics to this file")
	fs.StringVar(&cfg.OutputFile, "o", cfg.OutputFile, "write solutions and statistics to this file (shorthand)")
	fs.BoolVar(&cfg.TUI, "tui", cfg.TUI, "launch the interactive dashboard")
	fs.StringVar(&cfg.Speed, "speed", cfg.Speed, "TUI visualization speed: slow, medium, fast, instant")
	fs.BoolVar(&cfg.Demo, "demo", cfg.Demo, "run the scripted demonstration")
	fs.StringVar(&cfg.ServeAddr, "serve", cfg.ServeAddr, "serve the HTTP API on this address (e.g. :8080)")

	if err := fs.Parse(args); err != nil {
		return AppConfig{}, err
	}
	if fs.NArg() > 0 {
		return AppConfig{}, apperrors.NewConfigError("unexpected argument %q", fs.Arg(0))
	}

	applyEnvOverrides(&cfg, fs)

	if err := Validate(cfg); err != nil {
		return AppConfig{}, err
	}
	return cfg, nil
}

// Validate checks the configuration for invalid values. It fails fast,
// before any worker is spawned.
func Validate(cfg AppConfig) error {
	if cfg.N < 1 {
		return apperrors.NewConfigError("board size must be at least 1, got %d", cfg.N)
	}
	if _, err := cfg.Workers(); err != nil {
		return apperrors.NewConfigError("invalid -workers value: %v", err)
	}
	if _, err := cfg.Termination(); err != nil {
		return apperrors.NewConfigError("invalid -policy value: %v", err)
	}
	if cfg.Timeout <= 0 {
		return apperrors.NewConfigError("timeout must be positive, got %s", cfg.Timeout)
	}
	if cfg.MaxBoards < 0 {
		return apperrors.NewConfigError("max-boards must not be negative, got %d", cfg.MaxBoards)
	}
	switch cfg.Speed {
	case "slow", "medium", "fast", "instant":
	default:
		return apperrors.NewConfigError("invalid -speed value %q (want slow, medium, fast or instant)", cfg.Speed)
	}
	return nil
}

// SpeedDelay maps the visualization speed setting to the delay inserted
// between displayed steps.
func (c AppConfig) SpeedDelay() time.Duration {
	switch c.Speed {
	case "slow":
		return 100 * time.Millisecond
	case "medium":
		return 50 * time.Millisecond
	case "fast":
		return 10 * time.Millisecond
	default: // instant
		return 0
	}
}

// Describe returns a short human-readable summary of the run configuration.
func (c AppConfig) Describe() string {
	return fmt.Sprintf("%d-queens, workers=%s, policy=%s, timeout=%s",
		c.N, c.WorkerPolicy, c.TerminationPolicy, c.Timeout)
}
