// Package tracing provides OpenTelemetry tracing integration.
//
// Every use case operation runs inside one internal span. Spans go to
// whatever TracerProvider is registered with otel.SetTracerProvider; without
// one they are no-ops.
//
// Example usage:
//
//	import "blogstore/internal/observability/tracing"
//
//	func (s *Service) Create(ctx context.Context, in CreateInput) (_ *entity.Author, err error) {
//	    ctx, span := tracing.StartOperation(ctx, "author.Create")
//	    defer tracing.EndOperation(span, &err)
//	    // ... validate and persist ...
//	}
package tracing
