// Package telemetry implements the tracing adapter on top of OpenTelemetry.
package telemetry

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.trai.ch/tsconf/internal/core/ports"
)

var _ ports.Tracer = (*OTelTracer)(nil)

// OTelTracer implements ports.Tracer using the global OpenTelemetry provider.
// Span export is the embedding application's concern; without a configured
// SDK the spans are no-ops.
type OTelTracer struct {
	tracer trace.Tracer
}

// NewOTelTracer creates a tracer with the given instrumentation name.
func NewOTelTracer(name string) *OTelTracer {
	return &OTelTracer{tracer: otel.Tracer(name)}
}

// Start begins a new span and returns the derived context.
func (t *OTelTracer) Start(ctx context.Context, name string) (context.Context, ports.Span) {
	ctx, span := t.tracer.Start(ctx, name)
	return ctx, &otelSpan{span: span}
}

// otelSpan adapts trace.Span to ports.Span.
type otelSpan struct {
	span trace.Span
}

// End completes the span.
func (s *otelSpan) End() {
	s.span.End()
}

// RecordError attaches an error to the span.
func (s *otelSpan) RecordError(err error) {
	s.span.RecordError(err)
}

// SetAttribute attaches a key/value attribute to the span.
func (s *otelSpan) SetAttribute(key string, value any) {
	switch v := value.(type) {
	case string:
		s.span.SetAttributes(attribute.String(key, v))
	case bool:
		s.span.SetAttributes(attribute.Bool(key, v))
	case int:
		s.span.SetAttributes(attribute.Int(key, v))
	case int64:
		s.span.SetAttributes(attribute.Int64(key, v))
	case float64:
		s.span.SetAttributes(attribute.Float64(key, v))
	default:
		s.span.SetAttributes(attribute.String(key, fmt.Sprintf("%v", v)))
	}
}
