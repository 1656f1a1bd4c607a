// Package logging builds slog loggers and carries them through a
// context.Context.
package logging

import (
	"context"
	"io"
	"log/slog"
	"strings"
)

// Formats accepted by New.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// key is an unexported type to prevent collisions with context keys from other packages.
type key struct{}

var loggerKey = key{}

// ParseLevel maps a level name to a slog.Level. Unknown names yield
// slog.LevelInfo and false.
func ParseLevel(levelStr string) (slog.Level, bool) {
	switch strings.ToLower(levelStr) {
	case "debug":
		return slog.LevelDebug, true
	case "info":
		return slog.LevelInfo, true
	case "warn":
		return slog.LevelWarn, true
	case "error":
		return slog.LevelError, true
	default:
		return slog.LevelInfo, false
	}
}

// ValidFormat reports whether formatStr names a supported handler.
func ValidFormat(formatStr string) bool {
	f := strings.ToLower(formatStr)
	return f == FormatText || f == FormatJSON
}

// New creates a logger writing to outW. It does not set the global logger.
func New(levelStr, formatStr string, outW io.Writer) *slog.Logger {
	level, _ := ParseLevel(levelStr)
	handlerOpts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	if strings.ToLower(formatStr) == FormatJSON {
		handler = slog.NewJSONHandler(outW, handlerOpts)
	} else {
		handler = slog.NewTextHandler(outW, handlerOpts)
	}
	return slog.New(handler)
}

// Discard returns a logger that drops every record.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError + 1}))
}

// WithLogger returns a new context with the provided logger embedded.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// FromContext extracts the logger from ctx, falling back to slog.Default.
func FromContext(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(loggerKey).(*slog.Logger); ok {
		return logger
	}
	return slog.Default()
}
