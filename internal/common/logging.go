package common

import (
	"io"
	"log/slog"
)

// NewLogger returns the JSON logger every action writes to.
// Warnings and errors only, unless verbose is set.
func NewLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelInfo
	}
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))
}
