package workflows

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	oteltrace "go.opentelemetry.io/otel/trace"

	"github.com/Apurer/pet-adoption-center/internal/domains/adoptions/ports"
)

func TestBuildApplicationWorkflowID(t *testing.T) {
	input := ports.ApplyInput{PetID: 7, AdopterID: 3}

	keyed := WithIdempotencyKey(context.Background(), "req-123")
	first := buildApplicationWorkflowID(keyed, input, "abc")
	assert.Equal(t, first, buildApplicationWorkflowID(keyed, input, "other-trace"))
	assert.True(t, strings.HasPrefix(first, "adoption-application-7-3-"))
	assert.NotContains(t, first, "req-123")

	assert.Equal(t, "adoption-application-7-3-abc", buildApplicationWorkflowID(context.Background(), input, "abc"))

	a := buildApplicationWorkflowID(context.Background(), input, "")
	b := buildApplicationWorkflowID(context.Background(), input, "")
	assert.NotEqual(t, a, b)
}

func TestWorkflowTraceID(t *testing.T) {
	assert.Empty(t, workflowTraceID(context.Background()))

	traceID, _ := oteltrace.TraceIDFromHex("4bf92f3577b34da6a3ce929d0e0e4736")
	spanID, _ := oteltrace.SpanIDFromHex("00f067aa0ba902b7")
	ctx := oteltrace.ContextWithSpanContext(context.Background(), oteltrace.NewSpanContext(oteltrace.SpanContextConfig{
		TraceID: traceID,
		SpanID:  spanID,
	}))
	assert.Equal(t, "4bf92f3577b34da6a3ce929d0e0e4736", workflowTraceID(ctx))
}
