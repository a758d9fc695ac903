package apperrors

import (
	"context"
	"errors"
	"fmt"
	"testing"
)

// TestNewConfigError verifies message formatting for configuration errors.
func TestNewConfigError(t *testing.T) {
	t.Parallel()
	err := NewConfigError("board size %d is below the minimum of %d", 0, 1)

	want := "board size 0 is below the minimum of 1"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}

	var configErr ConfigError
	if !errors.As(err, &configErr) {
		t.Error("NewConfigError result should unwrap to ConfigError")
	}
}

// TestValidationError verifies the field-qualified message format.
func TestValidationError(t *testing.T) {
	t.Parallel()
	err := ValidationError{Field: "n", Message: "must be at least 1"}

	want := `validation error for "n": must be at least 1`
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

// TestCallbackError verifies cause preservation and unwrapping.
func TestCallbackError(t *testing.T) {
	t.Parallel()
	cause := errors.New("display closed")
	err := CallbackError{WorkerIndex: 3, Cause: cause}

	if !errors.Is(err, cause) {
		t.Error("CallbackError should unwrap to its cause")
	}
	want := "step callback failed on worker 3: display closed"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

// TestWrapError verifies context wrapping and nil passthrough.
func TestWrapError(t *testing.T) {
	t.Parallel()

	t.Run("wraps with context", func(t *testing.T) {
		t.Parallel()
		cause := errors.New("boom")
		err := WrapError(cause, "solving %d-queens", 8)
		if err == nil {
			t.Fatal("WrapError returned nil for non-nil cause")
		}
		if !errors.Is(err, cause) {
			t.Error("wrapped error should match the cause via errors.Is")
		}
		want := "solving 8-queens: boom"
		if err.Error() != want {
			t.Errorf("Error() = %q, want %q", err.Error(), want)
		}
	})

	t.Run("nil passthrough", func(t *testing.T) {
		t.Parallel()
		if err := WrapError(nil, "context"); err != nil {
			t.Errorf("WrapError(nil, ...) = %v, want nil", err)
		}
	})
}

// TestIsContextError verifies detection of cancellation and deadline errors.
func TestIsContextError(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "canceled", err: context.Canceled, want: true},
		{name: "deadline exceeded", err: context.DeadlineExceeded, want: true},
		{name: "wrapped canceled", err: fmt.Errorf("solve: %w", context.Canceled), want: true},
		{name: "other error", err: errors.New("boom"), want: false},
		{name: "nil", err: nil, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := IsContextError(tt.err); got != tt.want {
				t.Errorf("IsContextError(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}

// TestExitCodeForError verifies the error-to-exit-code mapping.
func TestExitCodeForError(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "nil is success", err: nil, want: ExitSuccess},
		{name: "timeout", err: context.DeadlineExceeded, want: ExitErrorTimeout},
		{name: "canceled", err: context.Canceled, want: ExitErrorCanceled},
		{name: "wrapped timeout", err: fmt.Errorf("solve: %w", context.DeadlineExceeded), want: ExitErrorTimeout},
		{name: "callback failure", err: CallbackError{WorkerIndex: 1, Cause: errors.New("x")}, want: ExitErrorCallback},
		{name: "config error", err: ConfigError{Message: "bad flag"}, want: ExitErrorConfig},
		{name: "validation error", err: ValidationError{Field: "n", Message: "too small"}, want: ExitErrorConfig},
		{name: "generic", err: errors.New("boom"), want: ExitErrorGeneric},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := ExitCodeForError(tt.err); got != tt.want {
				t.Errorf("ExitCodeForError(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}
