package logging

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

// TestFieldHelpers tests the Field constructor functions.
func TestFieldHelpers(t *testing.T) {
	t.Run("String creates field with key and string value", func(t *testing.T) {
		f := String("key", "value")
		if f.Key != "key" {
			t.Errorf("String().Key = %q, want %q", f.Key, "key")
		}
		if f.Value != "value" {
			t.Errorf("String().Value = %q, want %q", f.Value, "value")
		}
	})

	t.Run("Int creates field with key and int value", func(t *testing.T) {
		f := Int("count", 42)
		if f.Key != "count" {
			t.Errorf("Int().Key = %q, want %q", f.Key, "count")
		}
		if f.Value != 42 {
			t.Errorf("Int().Value = %v, want %v", f.Value, 42)
		}
	})

	t.Run("Uint64 creates field with key and uint64 value", func(t *testing.T) {
		f := Uint64("states", 12345678901234567890)
		if f.Key != "states" {
			t.Errorf("Uint64().Key = %q, want %q", f.Key, "states")
		}
		if f.Value != uint64(12345678901234567890) {
			t.Errorf("Uint64().Value = %v, want %v", f.Value, uint64(12345678901234567890))
		}
	})

	t.Run("Float64 creates field with key and float64 value", func(t *testing.T) {
		f := Float64("seconds", 3.14159)
		if f.Key != "seconds" {
			t.Errorf("Float64().Key = %q, want %q", f.Key, "seconds")
		}
		if f.Value != 3.14159 {
			t.Errorf("Float64().Value = %v, want %v", f.Value, 3.14159)
		}
	})

	t.Run("Err creates field with error key", func(t *testing.T) {
		testErr := errors.New("test error")
		f := Err(testErr)
		if f.Key != "error" {
			t.Errorf("Err().Key = %q, want %q", f.Key, "error")
		}
		if f.Value != testErr {
			t.Errorf("Err().Value = %v, want %v", f.Value, testErr)
		}
	})
}

// TestZerologLogger tests the zerolog-backed implementation.
func TestZerologLogger(t *testing.T) {
	t.Run("Info writes structured JSON", func(t *testing.T) {
		var buf bytes.Buffer
		logger := NewZerologLogger(&buf)

		logger.Info("solve started", Int("n", 8), String("workers", "auto"))

		out := buf.String()
		if !strings.Contains(out, `"message":"solve started"`) {
			t.Errorf("output %q missing message", out)
		}
		if !strings.Contains(out, `"n":8`) {
			t.Errorf("output %q missing int field", out)
		}
		if !strings.Contains(out, `"workers":"auto"`) {
			t.Errorf("output %q missing string field", out)
		}
	})

	t.Run("Error includes error field", func(t *testing.T) {
		var buf bytes.Buffer
		logger := NewZerologLogger(&buf)

		logger.Error("solve failed", Err(errors.New("boom")))

		out := buf.String()
		if !strings.Contains(out, `"level":"error"`) {
			t.Errorf("output %q missing error level", out)
		}
		if !strings.Contains(out, `"error":"boom"`) {
			t.Errorf("output %q missing error field", out)
		}
	})

	t.Run("Uint64 and Float64 fields are rendered", func(t *testing.T) {
		var buf bytes.Buffer
		logger := NewZerologLogger(&buf)

		logger.Debug("run finished", Uint64("states", 2057), Float64("seconds", 0.5))

		out := buf.String()
		if !strings.Contains(out, `"states":2057`) {
			t.Errorf("output %q missing uint64 field", out)
		}
		if !strings.Contains(out, `"seconds":0.5`) {
			t.Errorf("output %q missing float64 field", out)
		}
	})
}

// TestNopLogger verifies the no-op logger accepts all levels silently.
func TestNopLogger(t *testing.T) {
	logger := NewNopLogger()
	logger.Debug("a")
	logger.Info("b", Int("n", 1))
	logger.Warn("c")
	logger.Error("d", Err(errors.New("x")))
}
