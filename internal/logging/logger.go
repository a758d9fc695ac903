package logging

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

// Field represents a structured logging field as a key/value pair.
type Field struct {
	Key   string
	Value any
}

// String creates a string field.
func String(key, value string) Field { return Field{Key: key, Value: value} }

// Int creates an int field.
func Int(key string, value int) Field { return Field{Key: key, Value: value} }

// Uint64 creates a uint64 field.
func Uint64(key string, value uint64) Field { return Field{Key: key, Value: value} }

// Float64 creates a float64 field.
func Float64(key string, value float64) Field { return Field{Key: key, Value: value} }

// Err creates an error field under the conventional "error" key.
func Err(err error) Field { return Field{Key: "error", Value: err} }

// Logger is the minimal structured logging interface used across the
// application. Implementations must be safe for concurrent use.
type Logger interface {
	// Debug logs a message at debug level with optional fields.
	Debug(msg string, fields ...Field)
	// Info logs a message at info level with optional fields.
	Info(msg string, fields ...Field)
	// Warn logs a message at warn level with optional fields.
	Warn(msg string, fields ...Field)
	// Error logs a message at error level with optional fields.
	Error(msg string, fields ...Field)
}

// ZerologLogger implements Logger on top of a zerolog.Logger.
type ZerologLogger struct {
	logger zerolog.Logger
}

// NewZerologLogger creates a logger writing structured JSON to w.
func NewZerologLogger(w io.Writer) *ZerologLogger {
	return &ZerologLogger{
		logger: zerolog.New(w).With().Timestamp().Logger(),
	}
}

// NewDefaultLogger creates a logger writing to stderr.
func NewDefaultLogger() *ZerologLogger {
	return NewZerologLogger(os.Stderr)
}

// WrapZerolog adapts an existing zerolog.Logger.
func WrapZerolog(logger zerolog.Logger) *ZerologLogger {
	return &ZerologLogger{logger: logger}
}

// Debug logs a message at debug level.
func (l *ZerologLogger) Debug(msg string, fields ...Field) {
	l.emit(l.logger.Debug(), msg, fields)
}

// Info logs a message at info level.
func (l *ZerologLogger) Info(msg string, fields ...Field) {
	l.emit(l.logger.Info(), msg, fields)
}

// Warn logs a message at warn level.
func (l *ZerologLogger) Warn(msg string, fields ...Field) {
	l.emit(l.logger.Warn(), msg, fields)
}

// Error logs a message at error level.
func (l *ZerologLogger) Error(msg string, fields ...Field) {
	l.emit(l.logger.Error(), msg, fields)
}

// emit attaches the fields to the event and sends it.
func (l *ZerologLogger) emit(event *zerolog.Event, msg string, fields []Field) {
	for _, f := range fields {
		switch v := f.Value.(type) {
		case string:
			event = event.Str(f.Key, v)
		case int:
			event = event.Int(f.Key, v)
		case uint64:
			event = event.Uint64(f.Key, v)
		case float64:
			event = event.Float64(f.Key, v)
		case error:
			event = event.AnErr(f.Key, v)
		default:
			event = event.Interface(f.Key, v)
		}
	}
	event.Msg(msg)
}

// NopLogger discards all log output. Useful as a default and in tests.
type NopLogger struct{}

// NewNopLogger creates a logger that discards everything.
func NewNopLogger() *NopLogger { return &NopLogger{} }

// Debug discards the message.
func (*NopLogger) Debug(string, ...Field) {}

// Info discards the message.
func (*NopLogger) Info(string, ...Field) {}

// Warn discards the message.
func (*NopLogger) Warn(string, ...Field) {}

// Error discards the message.
func (*NopLogger) Error(string, ...Field) {}
