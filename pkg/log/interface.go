// Package log provides structured logging for descent's training and
// inference operations.
//
// The package defines a minimal, slog-compatible Logger interface together
// with a JSON slog backend, standard attribute keys for machine learning
// context (model name, data shape, epoch, loss), and a TestLogger that
// captures output for assertions. Errors created by pkg/errors carry
// cockroachdb stack traces; the handler in this package surfaces them as a
// "stacktrace" attribute.
package log

import (
	"context"
)

// Logger is a structured logging interface compatible with log/slog.
// Fields are alternating key/value pairs, as in slog.
type Logger interface {
	// Debug logs detailed diagnostic information.
	Debug(msg string, fields ...any)

	// Info logs general operational information.
	Info(msg string, fields ...any)

	// Warn logs potentially problematic situations that do not stop
	// execution.
	Warn(msg string, fields ...any)

	// Error logs error conditions. Pass the error under ErrAttrKey so the
	// handler can attach its stack trace.
	Error(msg string, fields ...any)

	// With returns a new Logger that includes the given fields in every
	// subsequent record.
	With(fields ...any) Logger

	// Enabled reports whether the logger emits records at the given level.
	Enabled(ctx context.Context, level Level) bool
}

// Level is a logging level. Values match slog.Level.
type Level int

// Standard logging levels, values are compatible with slog.Level.
const (
	LevelDebug Level = -4
	LevelInfo  Level = 0
	LevelWarn  Level = 4
	LevelError Level = 8
)

// String returns the string representation of the log level.
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}
