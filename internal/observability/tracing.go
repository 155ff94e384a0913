package observability

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// Tracer is a thin wrapper to start spans without binding call sites to a
// concrete tracer provider.
type Tracer interface {
	Start(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span)
}

type otelTracer struct{ t trace.Tracer }

// NewTracer returns a Tracer backed by the globally registered provider.
// Without a configured SDK provider the spans are no-ops, which is the
// expected mode for the demo driver.
func NewTracer(name string) Tracer {
	if name == "" {
		name = "tienda"
	}
	return &otelTracer{t: otel.Tracer(name)}
}

func (t *otelTracer) Start(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	return t.t.Start(ctx, name, trace.WithAttributes(attrs...))
}

type nopTracer struct{}

func (nopTracer) Start(ctx context.Context, _ string, _ ...attribute.KeyValue) (context.Context, trace.Span) {
	return ctx, trace.SpanFromContext(ctx)
}

// NopTracer returns a tracer that simply propagates the existing span from
// the context.
func NopTracer() Tracer { return nopTracer{} }
