package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// New creates a JSON slog.Logger writing to stdout at the given level
func New(level string) *slog.Logger {
	return NewWithFormat(level, "json", os.Stdout)
}

// NewWithFormat creates a logger with an explicit format ("json" or "text") and writer
func NewWithFormat(level, format string, w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: ParseLevel(level)}

	var handler slog.Handler
	if strings.EqualFold(format, "text") {
		handler = slog.NewTextHandler(w, opts)
	} else {
		handler = slog.NewJSONHandler(w, opts)
	}

	return slog.New(handler)
}

// ParseLevel maps a level name to slog.Level, defaulting to info
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
