// Package metrics provides Prometheus metrics registry and recording utilities.
//
// This package centralizes all application metrics including:
//   - Validation failures by entity, field and code
//   - Entity writes by operation
//   - Database query metrics
//
// All metrics are automatically registered with the Prometheus default registry.
// blogctl can dump them in the text exposition format with -metrics-out.
//
// Example usage:
//
//	import "blogstore/internal/observability/metrics"
//
//	func createAuthor(ctx context.Context) error {
//	    defer metrics.TrackDBQuery("author_create")()
//	    // ... insert ...
//	    metrics.RecordWrite(metrics.EntityAuthor, metrics.OpCreate)
//	    return nil
//	}
package metrics
