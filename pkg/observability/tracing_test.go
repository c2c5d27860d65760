package observability

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTracer_Trace_RunsFunctionWithoutActiveSegment(t *testing.T) {
	// Arrange: no parent segment exists outside a sampled request.
	tracer := NewTracer("test")

	var called bool

	// Act
	err := tracer.Trace(context.Background(), "dynamodb.list_items", func(ctx context.Context) error {
		called = true
		return nil
	})

	// Assert
	require.NoError(t, err)
	assert.True(t, called)
}

func TestTracer_Trace_PropagatesFunctionError(t *testing.T) {
	tracer := NewTracer("test")

	err := tracer.Trace(context.Background(), "dynamodb.get_ordering", func(ctx context.Context) error {
		return assert.AnError
	})

	assert.ErrorIs(t, err, assert.AnError)
}

func TestTracer_AddAnnotation_NoSegmentIsNoOp(t *testing.T) {
	tracer := NewTracer("test")

	// Must not panic when the context carries no segment.
	tracer.AddAnnotation(context.Background(), "tenant_id", "tenant-1")
}
