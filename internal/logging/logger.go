// Package logging carries the run's operational detail: probe results,
// purge batch sizes, sub-step deletions. Log lines go to stderr so stdout
// stays reserved for the operator-facing output: the manifest, the
// confirmation prompt, and per-step progress.
package logging

import (
	"log/slog"
	"os"
	"strings"
)

// Init installs the process-wide logger at the given level. Unrecognized
// levels fall back to info.
func Init(level string) {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: parseLevel(level),
	})
	slog.SetDefault(slog.New(handler))
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Debug logs a debug message.
func Debug(msg string, args ...any) {
	slog.Default().Debug(msg, args...)
}

// Info logs an info message.
func Info(msg string, args ...any) {
	slog.Default().Info(msg, args...)
}

// Warn logs a warning message.
func Warn(msg string, args ...any) {
	slog.Default().Warn(msg, args...)
}

// Error logs an error message.
func Error(msg string, args ...any) {
	slog.Default().Error(msg, args...)
}
