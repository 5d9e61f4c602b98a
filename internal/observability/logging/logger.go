package logging

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"
)

// Output formats accepted by New.
const (
	FormatJSON = "json"
	FormatText = "text"
)

// levelFromEnv reads LOG_LEVEL. Only "debug" lowers the level; anything else is info.
func levelFromEnv() slog.Level {
	if os.Getenv("LOG_LEVEL") == "debug" {
		return slog.LevelDebug
	}
	return slog.LevelInfo
}

// New creates a structured logger writing to w in the given format.
// Unknown formats fall back to JSON.
func New(w io.Writer, format string) *slog.Logger {
	logLevel := levelFromEnv()
	opts := &slog.HandlerOptions{
		Level: logLevel,
		// Add source code location for error and warn levels
		AddSource: logLevel <= slog.LevelWarn,
	}

	if strings.EqualFold(format, FormatText) {
		return slog.New(slog.NewTextHandler(w, opts))
	}
	return slog.New(slog.NewJSONHandler(w, opts))
}

// WithInvocationID stores the identifier of the current command invocation in ctx.
func WithInvocationID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, invocationIDContextKey, id)
}

// InvocationIDFromContext returns the invocation identifier, or "" if none is set.
func InvocationIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(invocationIDContextKey).(string)
	return id
}

// WithInvocation returns a new logger that includes the invocation ID from the context.
func WithInvocation(ctx context.Context, logger *slog.Logger) *slog.Logger {
	id := InvocationIDFromContext(ctx)
	if id == "" {
		return logger
	}
	return logger.With("invocation_id", id)
}

// WithFields returns a new logger with additional structured fields.
// Fields are provided as key-value pairs.
func WithFields(logger *slog.Logger, fields map[string]interface{}) *slog.Logger {
	args := make([]interface{}, 0, len(fields)*2)
	for k, v := range fields {
		args = append(args, k, v)
	}
	return logger.With(args...)
}

// FromContext retrieves the logger from the context, or returns the default logger if not found.
// This enables passing loggers through the application via context.
func FromContext(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(loggerContextKey).(*slog.Logger); ok {
		return logger
	}
	return slog.Default()
}

// WithLogger adds a logger to the context.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerContextKey, logger)
}

type contextKey string

const (
	loggerContextKey       contextKey = "logger"
	invocationIDContextKey contextKey = "invocation_id"
)
