// Package logging builds the application's slog logger.
package logging

import (
	"io"
	"log/slog"

	"github.com/charmbracelet/log"
)

const (
	FormatJSON = "json"
	FormatText = "text"
)

// New - returns a logger writing to w. Unknown levels mean info, unknown formats mean text.
func New(w io.Writer, level, format string) *slog.Logger {
	lvl := ParseLevel(level)

	if format == FormatJSON {
		return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: lvl}))
	}

	handler := log.NewWithOptions(w, log.Options{
		Level:           log.Level(lvl),
		ReportTimestamp: true,
		Prefix:          "tictactoe",
	})

	return slog.New(handler)
}

func ParseLevel(level string) slog.Level {
	switch level {
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
