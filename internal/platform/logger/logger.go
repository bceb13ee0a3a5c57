package logger

import (
	"log/slog"
	"os"
	"strings"
)

// New initializes a new slog.Logger
// Log level can be debug, info, warn, error; format can be json or text.
func New(level, format string) *slog.Logger {
	var logLevel slog.Level

	switch strings.ToLower(level) {
	case "debug":
		logLevel = slog.LevelDebug
	case "info":
		logLevel = slog.LevelInfo
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo // Default to info
	}

	opts := &slog.HandlerOptions{
		Level: logLevel,
		// AddSource: true, // Uncomment to include source file and line number
	}

	var handler slog.Handler
	switch strings.ToLower(format) {
	case "json":
		handler = slog.NewJSONHandler(os.Stdout, opts)
	default:
		handler = slog.NewTextHandler(os.Stdout, opts)
	}

	return slog.New(handler)
}
