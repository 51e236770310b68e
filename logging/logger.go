// Package logging provides structured logging for the supervision root.
//
// Built on log/slog. The root's own records are part of the log
// pipeline it manages: stdout/stderr are dup2'd onto the log pipe
// during bring-up, so everything written here flows to cyclog like any
// other child's output, and follows wherever shutdown later repoints
// descriptor 2. Every record carries the root's mode (system or user),
// fixed at construction, since one host commonly runs one system root
// and several per-user roots logging into different pipelines.
package logging

import (
	"io"
	"log/slog"
	"os"
	"sync/atomic"

	"rootsv/platform"
)

// Config holds the logger configuration.
type Config struct {
	// Level is the minimum log level (debug, info, warn, error).
	Level slog.Level
	// Format is the output format ("text" or "json").
	Format string
	// Output is the log output destination; nil means stderr, which is
	// the log pipe once bring-up has installed it.
	Output io.Writer
	// Mode is attached to every record.
	Mode platform.Mode
}

// NewLogger creates a structured logger with the given configuration.
func NewLogger(cfg Config) *slog.Logger {
	out := cfg.Output
	if out == nil {
		out = os.Stderr
	}

	opts := &slog.HandlerOptions{Level: cfg.Level}
	var handler slog.Handler
	switch cfg.Format {
	case "json":
		handler = slog.NewJSONHandler(out, opts)
	default:
		handler = slog.NewTextHandler(out, opts)
	}

	return slog.New(handler).With(slog.String("mode", cfg.Mode.String()))
}

// defaultLogger holds the process-wide logger installed by SetDefault.
var defaultLogger atomic.Pointer[slog.Logger]

// SetDefault installs logger as the process-wide default.
func SetDefault(logger *slog.Logger) {
	defaultLogger.Store(logger)
}

// Default returns the logger installed by SetDefault, or slog's own
// default before any SetDefault call (early bring-up, tests).
func Default() *slog.Logger {
	if l := defaultLogger.Load(); l != nil {
		return l
	}
	return slog.Default()
}

// WithOperation returns a logger with the named bring-up or shutdown
// operation attached.
func WithOperation(logger *slog.Logger, op string) *slog.Logger {
	return logger.With(slog.String("operation", op))
}

// WithChild returns a logger identifying one child of the supervision
// root by its slot name and PID.
func WithChild(logger *slog.Logger, slot string, pid int) *slog.Logger {
	return logger.With(slog.String("slot", slot), slog.Int("pid", pid))
}

// WithEnded returns a logger carrying the reap outcome for the "ended"
// log line: the status classification and its exit code or signal
// number.
func WithEnded(logger *slog.Logger, status string, code int) *slog.Logger {
	return logger.With(slog.String("status", status), slog.Int("code", code))
}

// ParseLevel parses a log level string ("debug", "info", "warn",
// "error", case-insensitive, per slog's own text form). Unparseable
// values fall back to info: a bad --log flag must never keep a
// supervision root from starting.
func ParseLevel(level string) slog.Level {
	var l slog.Level
	if err := l.UnmarshalText([]byte(level)); err != nil {
		return slog.LevelInfo
	}
	return l
}
