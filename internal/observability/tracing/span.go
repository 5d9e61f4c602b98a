package tracing

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// StartOperation starts an internal span for a use case operation such as
// "author.Create". attrs are set on the span at start.
func StartOperation(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	return GetTracer().Start(ctx, name,
		trace.WithSpanKind(trace.SpanKindInternal),
		trace.WithAttributes(attrs...),
	)
}

// EndOperation records err on span, if any, and ends it.
// Pass a pointer to the named error result so a deferred call sees the final value.
//
//	ctx, span := tracing.StartOperation(ctx, "post.Update")
//	defer tracing.EndOperation(span, &err)
func EndOperation(span trace.Span, errp *error) {
	if errp != nil && *errp != nil {
		span.RecordError(*errp)
		span.SetStatus(codes.Error, (*errp).Error())
	}
	span.End()
}
