package utils

import (
	"io"
	"log/slog"
)

// Logger is the leveled key/value logger the game reports lifecycle events
// through. Args alternate keys and values as in log/slog.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// DefaultLogger writes slog text records tagged with the program name
type DefaultLogger struct {
	logger *slog.Logger
}

// NewDefaultLogger logs to w and drops records below level
func NewDefaultLogger(w io.Writer, level slog.Level) *DefaultLogger {
	logger := slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
	}))

	return &DefaultLogger{logger: logger}
}

const prefix = "[go-life] "

// Debug is for detail only shown with --verbose: config fallbacks, injections
func (d *DefaultLogger) Debug(msg string, args ...any) {
	d.logger.Debug(prefix+msg, args...)
}

// Info is for lifecycle events: start, restart, shutdown, final stats
func (d *DefaultLogger) Info(msg string, args ...any) {
	d.logger.Info(prefix+msg, args...)
}

// Warn is for problems the game works around, such as an unusable config file
func (d *DefaultLogger) Warn(msg string, args ...any) {
	d.logger.Warn(prefix+msg, args...)
}

// Error is for failures that end the run
func (d *DefaultLogger) Error(msg string, args ...any) {
	d.logger.Error(prefix+msg, args...)
}
