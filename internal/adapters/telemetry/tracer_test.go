package telemetry_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/tsconf/internal/adapters/telemetry"
)

func TestOTelTracer_Start(t *testing.T) {
	t.Parallel()

	tracer := telemetry.NewOTelTracer("test")

	ctx, span := tracer.Start(context.Background(), "op")
	require.NotNil(t, ctx)
	require.NotNil(t, span)

	// Without a configured SDK these must be safe no-ops.
	span.SetAttribute("path", "/proj/tsconfig.json")
	span.SetAttribute("cache_hit", true)
	span.SetAttribute("diagnostics", 2)
	span.SetAttribute("weird", struct{ A int }{1})
	span.RecordError(errors.New("boom"))
	span.End()
}

func TestNoopTracer(t *testing.T) {
	t.Parallel()

	tracer := telemetry.NewNoop()

	ctx := context.Background()
	got, span := tracer.Start(ctx, "op")
	assert.Equal(t, ctx, got)

	span.SetAttribute("k", "v")
	span.RecordError(nil)
	span.End()
}
