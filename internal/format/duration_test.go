package format

import (
	"testing"
	"time"
)

// TestFormatExecutionDuration verifies the unit selection per magnitude.
func TestFormatExecutionDuration(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		d    time.Duration
		want string
	}{
		{name: "microseconds", d: 250 * time.Microsecond, want: "250µs"},
		{name: "milliseconds", d: 42 * time.Millisecond, want: "42ms"},
		{name: "seconds", d: 2 * time.Second, want: "2s"},
		{name: "zero", d: 0, want: "0µs"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := FormatExecutionDuration(tt.d); got != tt.want {
				t.Errorf("FormatExecutionDuration(%s) = %q, want %q", tt.d, got, tt.want)
			}
		})
	}
}

// TestFormatCount verifies thousands separators.
func TestFormatCount(t *testing.T) {
	t.Parallel()
	tests := []struct {
		n    uint64
		want string
	}{
		{n: 0, want: "0"},
		{n: 999, want: "999"},
		{n: 1000, want: "1,000"},
		{n: 2057, want: "2,057"},
		{n: 1234567, want: "1,234,567"},
	}

	for _, tt := range tests {
		if got := FormatCount(tt.n); got != tt.want {
			t.Errorf("FormatCount(%d) = %q, want %q", tt.n, got, tt.want)
		}
	}
}
