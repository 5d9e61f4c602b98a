// Package observability groups the logging, metrics and tracing support
// used by the blogstore use cases and CLI.
//
// Subpackages:
//   - logging: Structured logging utilities with slog
//   - metrics: Prometheus metrics registry and recorders
//   - tracing: OpenTelemetry spans around use case operations
package observability
