package hepvec

import (
	"context"
	"log/slog"
	"os"

	"github.com/hupe1980/hepvec/dispatch"
)

// Logger wraps slog.Logger with hepvec-specific context.
// This provides structured logging with consistent field names.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, uses default text handler to stderr.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
// level sets the minimum log level (e.g., slog.LevelDebug, slog.LevelInfo).
func NewJSONLogger(level slog.Level) *Logger {
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NoopLogger creates a Logger that discards all log output.
func NoopLogger() *Logger {
	return &Logger{
		Logger: slog.New(slog.DiscardHandler),
	}
}

// WithOp adds an operation name field to the logger.
func (l *Logger) WithOp(op string) *Logger {
	return &Logger{
		Logger: l.Logger.With("op", op),
	}
}

// WithBackend adds a backend field to the logger.
func (l *Logger) WithBackend(b dispatch.BackendID) *Logger {
	return &Logger{
		Logger: l.Logger.With("backend", b.String()),
	}
}

// WithClass adds a vector class field to the logger.
func (l *Logger) WithClass(c dispatch.Class) *Logger {
	return &Logger{
		Logger: l.Logger.With("class", c.String()),
	}
}

// LogDispatch logs a dispatched operation.
func (l *Logger) LogDispatch(ctx context.Context, e dispatch.Event) {
	if e.Err != nil {
		l.DebugContext(ctx, "dispatch failed",
			"op", e.Op,
			"backend", e.Backend.String(),
			"lib", e.Lib,
			"error", e.Err,
		)
	} else {
		l.DebugContext(ctx, "dispatch completed",
			"op", e.Op,
			"backend", e.Backend.String(),
			"duration", e.Duration,
		)
	}
}

// LogSave logs a save operation.
func (l *Logger) LogSave(ctx context.Context, name string, class dispatch.Class, err error) {
	if err != nil {
		l.ErrorContext(ctx, "save failed",
			"name", name,
			"class", class.String(),
			"error", err,
		)
	} else {
		l.InfoContext(ctx, "array saved",
			"name", name,
			"class", class.String(),
		)
	}
}

// LogLoad logs a load operation. class is the zero Class when err is set.
func (l *Logger) LogLoad(ctx context.Context, name string, class dispatch.Class, err error) {
	if err != nil {
		l.ErrorContext(ctx, "load failed",
			"name", name,
			"error", err,
		)
	} else {
		l.InfoContext(ctx, "array loaded",
			"name", name,
			"class", class.String(),
		)
	}
}
