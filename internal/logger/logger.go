// Package logger provides structured logging for the lenscout CLI.
// Messages go through log/slog to stderr. Warnings and errors are always
// shown; debug and info messages appear only when verbose mode is enabled
// via the --verbose flag.
package logger

import (
	"io"
	"log/slog"
	"os"
	"sync"
)

var (
	mu      sync.RWMutex
	verbose bool
	output  io.Writer = os.Stderr
	log               = newLogger(os.Stderr, false)
)

func newLogger(w io.Writer, v bool) *slog.Logger {
	level := slog.LevelWarn
	if v {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// SetVerbose enables or disables verbose logging.
func SetVerbose(v bool) {
	mu.Lock()
	defer mu.Unlock()
	verbose = v
	log = newLogger(output, verbose)
}

// IsVerbose returns true if verbose mode is enabled.
func IsVerbose() bool {
	mu.RLock()
	defer mu.RUnlock()
	return verbose
}

// SetOutput sets the output writer for logs.
// Defaults to os.Stderr. Useful for testing.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	output = w
	log = newLogger(output, verbose)
}

// Logger returns the current slog logger, for libraries that accept one.
func Logger() *slog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return log
}

// Debug logs a message with key/value attributes in verbose mode.
func Debug(msg string, args ...any) {
	Logger().Debug(msg, args...)
}

// Section marks the start of a pipeline stage in verbose mode.
func Section(name string) {
	Logger().Debug("=== "+name+" ===")
}

// Info logs an informational message in verbose mode.
func Info(msg string, args ...any) {
	Logger().Info(msg, args...)
}

// Warn logs a warning.
func Warn(msg string, args ...any) {
	Logger().Warn(msg, args...)
}

// Error logs an error.
func Error(msg string, args ...any) {
	Logger().Error(msg, args...)
}
