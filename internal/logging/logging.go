// Package logging initialises the application-wide structured logger.
package logging

import (
	"io"
	"log/slog"

	"github.com/TerrenceLGee/ExerciseTracker/internal/correlation"
)

// New builds a logger writing to out with the given level ("debug", "info",
// "warn", "error") and format ("text" or "json"), with correlation ids
// attached, and installs it as the default.
func New(out io.Writer, level, format string) *slog.Logger {
	var logLevel slog.Level
	switch level {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: logLevel}

	var handler slog.Handler
	if format == "json" {
		handler = slog.NewJSONHandler(out, opts)
	} else {
		handler = slog.NewTextHandler(out, opts)
	}

	logger := slog.New(correlation.NewHandler(handler))
	slog.SetDefault(logger)
	return logger
}
