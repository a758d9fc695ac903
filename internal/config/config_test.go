package config

import (
	"errors"
	"flag"
	"io"
	"testing"
	"time"

	apperrors "github.com/agbru/nqueens/internal/errors"
	"github.com/agbru/nqueens/internal/partition"
	"github.com/agbru/nqueens/internal/search"
)

// TestParseConfig_Defaults verifies default values with no flags.
func TestParseConfig_Defaults(t *testing.T) {
	cfg, err := ParseConfig("nqueens", nil, io.Discard)
	if err != nil {
		t.Fatalf("ParseConfig() error = %v", err)
	}

	if cfg.N != DefaultBoardSize {
		t.Errorf("N = %d, want %d", cfg.N, DefaultBoardSize)
	}
	if cfg.WorkerPolicy != "auto" {
		t.Errorf("WorkerPolicy = %q, want %q", cfg.WorkerPolicy, "auto")
	}
	if cfg.TerminationPolicy != "exhaustive" {
		t.Errorf("TerminationPolicy = %q, want %q", cfg.TerminationPolicy, "exhaustive")
	}
	if cfg.Timeout != DefaultTimeout {
		t.Errorf("Timeout = %s, want %s", cfg.Timeout, DefaultTimeout)
	}
	if cfg.MaxBoards != DefaultMaxBoards {
		t.Errorf("MaxBoards = %d, want %d", cfg.MaxBoards, DefaultMaxBoards)
	}
}

// TestParseConfig_Flags verifies explicit flag parsing.
func TestParseConfig_Flags(t *testing.T) {
	args := []string{
		"-n", "10",
		"-workers", "max",
		"-policy", "first",
		"-timeout", "30s",
		"-show-boards",
		"-max-boards", "5",
		"-o", "out.txt",
		"-q",
	}
	cfg, err := ParseConfig("nqueens", args, io.Discard)
	if err != nil {
		t.Fatalf("ParseConfig() error = %v", err)
	}

	if cfg.N != 10 {
		t.Errorf("N = %d, want 10", cfg.N)
	}
	if workers, _ := cfg.Workers(); workers != partition.Maximal {
		t.Errorf("Workers() = %v, want Maximal", workers)
	}
	if termination, _ := cfg.Termination(); termination != search.FirstPerBranch {
		t.Errorf("Termination() = %v, want FirstPerBranch", termination)
	}
	if cfg.Timeout != 30*time.Second {
		t.Errorf("Timeout = %s, want 30s", cfg.Timeout)
	}
	if !cfg.ShowBoards || cfg.MaxBoards != 5 {
		t.Errorf("ShowBoards = %v, MaxBoards = %d; want true, 5", cfg.ShowBoards, cfg.MaxBoards)
	}
	if cfg.OutputFile != "out.txt" {
		t.Errorf("OutputFile = %q, want %q", cfg.OutputFile, "out.txt")
	}
	if !cfg.Quiet {
		t.Error("Quiet = false, want true")
	}
}

// TestParseConfig_Invalid verifies fail-fast validation of bad values.
func TestParseConfig_Invalid(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "zero board size", args: []string{"-n", "0"}},
		{name: "negative board size", args: []string{"-n", "-4"}},
		{name: "unknown worker policy", args: []string{"-workers", "turbo"}},
		{name: "unknown termination policy", args: []string{"-policy", "sometimes"}},
		{name: "zero timeout", args: []string{"-timeout", "0s"}},
		{name: "negative max-boards", args: []string{"-max-boards", "-1"}},
		{name: "unknown speed", args: []string{"-speed", "ludicrous"}},
		{name: "stray positional argument", args: []string{"8"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseConfig("nqueens", tt.args, io.Discard)
			var configErr apperrors.ConfigError
			if !errors.As(err, &configErr) {
				t.Errorf("ParseConfig(%v) error = %v, want ConfigError", tt.args, err)
			}
		})
	}
}

// TestParseConfig_Help verifies that --help surfaces flag.ErrHelp.
func TestParseConfig_Help(t *testing.T) {
	_, err := ParseConfig("nqueens", []string{"--help"}, io.Discard)
	if !errors.Is(err, flag.ErrHelp) {
		t.Errorf("ParseConfig(--help) error = %v, want flag.ErrHelp", err)
	}
}

// TestEnvOverrides verifies the CLI > env > defaults priority chain.
func TestEnvOverrides(t *testing.T) {
	t.Run("env applies when flag unset", func(t *testing.T) {
		t.Setenv(EnvPrefix+"N", "12")
		t.Setenv(EnvPrefix+"WORKERS", "max")

		cfg, err := ParseConfig("nqueens", nil, io.Discard)
		if err != nil {
			t.Fatalf("ParseConfig() error = %v", err)
		}
		if cfg.N != 12 {
			t.Errorf("N = %d, want 12 from environment", cfg.N)
		}
		if cfg.WorkerPolicy != "max" {
			t.Errorf("WorkerPolicy = %q, want %q from environment", cfg.WorkerPolicy, "max")
		}
	})

	t.Run("explicit flag beats env", func(t *testing.T) {
		t.Setenv(EnvPrefix+"N", "12")

		cfg, err := ParseConfig("nqueens", []string{"-n", "6"}, io.Discard)
		if err != nil {
			t.Fatalf("ParseConfig() error = %v", err)
		}
		if cfg.N != 6 {
			t.Errorf("N = %d, want 6 from flag", cfg.N)
		}
	})

	t.Run("boolean env values", func(t *testing.T) {
		t.Setenv(EnvPrefix+"QUIET", "yes")
		t.Setenv(EnvPrefix+"SHOW_BOARDS", "1")

		cfg, err := ParseConfig("nqueens", nil, io.Discard)
		if err != nil {
			t.Fatalf("ParseConfig() error = %v", err)
		}
		if !cfg.Quiet {
			t.Error("Quiet = false, want true from NQUEENS_QUIET=yes")
		}
		if !cfg.ShowBoards {
			t.Error("ShowBoards = false, want true from NQUEENS_SHOW_BOARDS=1")
		}
	})

	t.Run("invalid env value is ignored", func(t *testing.T) {
		t.Setenv(EnvPrefix+"N", "not-a-number")

		cfg, err := ParseConfig("nqueens", nil, io.Discard)
		if err != nil {
			t.Fatalf("ParseConfig() error = %v", err)
		}
		if cfg.N != DefaultBoardSize {
			t.Errorf("N = %d, want default %d for unparsable env", cfg.N, DefaultBoardSize)
		}
	})
}

// TestSpeedDelay verifies the speed-to-delay mapping used by the TUI.
func TestSpeedDelay(t *testing.T) {
	tests := []struct {
		speed string
		want  time.Duration
	}{
		{speed: "slow", want: 100 * time.Millisecond},
		{speed: "medium", want: 50 * time.Millisecond},
		{speed: "fast", want: 10 * time.Millisecond},
		{speed: "instant", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.speed, func(t *testing.T) {
			cfg := AppConfig{Speed: tt.speed}
			if got := cfg.SpeedDelay(); got != tt.want {
				t.Errorf("SpeedDelay() = %s, want %s", got, tt.want)
			}
		})
	}
}
