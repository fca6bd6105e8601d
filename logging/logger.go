// Package logging defines the minimal structured logging contract used
// throughout agentblend plus adapters for backing it with slog or discarding
// output entirely. Library code depends only on the Logger interface so hosts
// can plug in whatever logging backend they already run.
package logging

import (
	"log/slog"
	"os"
)

// Logger is the logging interface consumed by every package in this module.
// The variadic args form alternating key/value pairs, matching the slog
// convention.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// SlogAdapter makes a *slog.Logger satisfy Logger.
type SlogAdapter struct {
	*slog.Logger
}

// Debug logs at debug level.
func (s *SlogAdapter) Debug(msg string, args ...any) { s.Logger.Debug(msg, args...) }

// Info logs at info level.
func (s *SlogAdapter) Info(msg string, args ...any) { s.Logger.Info(msg, args...) }

// Warn logs at warn level.
func (s *SlogAdapter) Warn(msg string, args ...any) { s.Logger.Warn(msg, args...) }

// Error logs at error level.
func (s *SlogAdapter) Error(msg string, args ...any) { s.Logger.Error(msg, args...) }

// NewSlogAdapter wraps an existing *slog.Logger.
func NewSlogAdapter(logger *slog.Logger) Logger {
	return &SlogAdapter{Logger: logger}
}

// NewDefaultSlogLogger returns a Logger backed by slog.Default().
func NewDefaultSlogLogger() Logger {
	return NewSlogAdapter(slog.Default())
}

// NewSlogLogger builds a stderr Logger from scratch. The format selects the
// slog handler: "text" for the text handler, anything else for JSON.
func NewSlogLogger(level slog.Level, format string) Logger {
	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	if format == "text" {
		handler = slog.NewTextHandler(os.Stderr, opts)
	} else {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	}

	return NewSlogAdapter(slog.New(handler))
}

// NoOpLogger discards every record. It is the default wherever no logger is
// supplied.
type NoOpLogger struct{}

// Debug discards the record.
func (NoOpLogger) Debug(string, ...any) {}

// Info discards the record.
func (NoOpLogger) Info(string, ...any) {}

// Warn discards the record.
func (NoOpLogger) Warn(string, ...any) {}

// Error discards the record.
func (NoOpLogger) Error(string, ...any) {}
