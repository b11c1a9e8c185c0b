// Package log provides the shared slog setup. The TUI writes to a file
// because stderr output would corrupt the alternate screen.
package log

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
)

// New returns a text-handler logger tagged with a component name.
func New(w io.Writer, level slog.Level, component string) *slog.Logger {
	h := slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
	return slog.New(h).With("component", component)
}

// Stderr returns a warn-level logger for CLI commands.
func Stderr(component string) *slog.Logger {
	return New(os.Stderr, slog.LevelWarn, component)
}

// Discard returns a logger that drops everything.
func Discard(component string) *slog.Logger {
	return New(io.Discard, slog.LevelError, component)
}

// ToFile opens (appending) a debug log file under dir and returns a
// logger writing to it. The caller owns closing the file.
func ToFile(dir, component string) (*slog.Logger, *os.File, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, nil, err
	}
	path := filepath.Join(dir, "nbntrack.log")
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, err
	}
	return New(f, slog.LevelDebug, component), f, nil
}
