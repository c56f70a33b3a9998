package ports

import "context"

// Tracer abstracts span creation so the orchestrator does not depend on a
// concrete telemetry backend.
//
//go:generate mockgen -source=tracer.go -destination=mocks/mock_tracer.go -package=mocks
type Tracer interface {
	// Start begins a new span and returns the derived context.
	Start(ctx context.Context, name string) (context.Context, Span)
}

// Span represents a single traced operation.
type Span interface {
	// End completes the span.
	End()

	// RecordError attaches an error to the span.
	RecordError(err error)

	// SetAttribute attaches a key/value attribute to the span.
	SetAttribute(key string, value any)
}
