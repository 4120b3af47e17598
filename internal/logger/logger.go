package logger

import (
	"io"
	"log/slog"
	"maps"
	"slices"

	"github.com/tsuru/collections/internal/config"
)

const (
	logLevelDebug = "debug"
	logLevelInfo  = "info"
	logLevelWarn  = "warn"
	logLevelError = "error"
)

// NewLogger returns a JSON logger writing to w at the configured LOG_LEVEL.
// Keys of logContext are attached in sorted order.
func NewLogger(logContext map[string]string, w io.Writer) *slog.Logger {
	return newLogger(logContext, w, parseLevel(config.Spec.LogLevel))
}

func newLogger(logContext map[string]string, w io.Writer, level slog.Level) *slog.Logger {
	attrs := make([]slog.Attr, 0, len(logContext))
	for _, key := range slices.Sorted(maps.Keys(logContext)) {
		attrs = append(attrs, slog.String(key, logContext[key]))
	}
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}).WithAttrs(attrs))
}

func parseLevel(level string) slog.Level {
	switch level {
	case logLevelDebug:
		return slog.LevelDebug
	case logLevelInfo:
		return slog.LevelInfo
	case logLevelWarn:
		return slog.LevelWarn
	case logLevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
