package telemetry

import (
	"context"

	"go.trai.ch/tsconf/internal/core/ports"
)

var _ ports.Tracer = (*NoopTracer)(nil)

// NoopTracer implements ports.Tracer without recording anything.
type NoopTracer struct{}

// NewNoop creates a tracer that discards all spans.
func NewNoop() *NoopTracer {
	return &NoopTracer{}
}

// Start returns the context unchanged and a span that does nothing.
func (t *NoopTracer) Start(ctx context.Context, _ string) (context.Context, ports.Span) {
	return ctx, noopSpan{}
}

type noopSpan struct{}

func (noopSpan) End()                     {}
func (noopSpan) RecordError(error)        {}
func (noopSpan) SetAttribute(string, any) {}
