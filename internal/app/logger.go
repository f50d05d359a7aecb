package app

import (
	"io"
	"log/slog"
	"strings"
)

// newLogger builds the application's own slog.Logger without touching the
// global one. Logs are text unless format is "json". An unrecognized level
// or format falls back to info/text and is reported by the new logger.
func newLogger(level, format string, w io.Writer) *slog.Logger {
	var lvl slog.Level
	badLevel := level != "" && lvl.UnmarshalText([]byte(level)) != nil
	if badLevel {
		lvl = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: lvl}

	var handler slog.Handler
	badFormat := false
	switch strings.ToLower(format) {
	case "json":
		handler = slog.NewJSONHandler(w, opts)
	case "", "text":
		handler = slog.NewTextHandler(w, opts)
	default:
		badFormat = true
		handler = slog.NewTextHandler(w, opts)
	}

	logger := slog.New(handler)
	if badLevel {
		logger.Warn("Unknown log level, using info.", "log_level", level)
	}
	if badFormat {
		logger.Warn("Unknown log format, using text.", "log_format", format)
	}
	return logger
}
