// Package logging provides structured logging utilities with context propagation.
//
// This package wraps the standard library's log/slog package with helper functions
// for common logging patterns used throughout the application.
//
// Key features:
//   - JSON and text output formats
//   - Invocation ID propagation
//   - Context-aware logging
//   - Configurable log levels
//
// Example usage:
//
//	import "blogstore/internal/observability/logging"
//
//	func main() {
//	    logger := logging.New(os.Stderr, logging.FormatText)
//	    logger.Info("application started", slog.String("version", "1.0"))
//	}
//
//	func createAuthor(ctx context.Context) {
//	    logger := logging.WithInvocation(ctx, logging.FromContext(ctx))
//	    logger.Info("creating author")
//	}
package logging
