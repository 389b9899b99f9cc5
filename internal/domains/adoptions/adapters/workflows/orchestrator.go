package workflows

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/google/uuid"
	oteltrace "go.opentelemetry.io/otel/trace"
	"go.temporal.io/api/enums/v1"
	"go.temporal.io/api/serviceerror"
	"go.temporal.io/sdk/client"

	"github.com/Apurer/pet-adoption-center/internal/domains/adoptions/domain"
	"github.com/Apurer/pet-adoption-center/internal/domains/adoptions/ports"
	adoptionactivities "github.com/Apurer/pet-adoption-center/internal/platform/temporal/activities/adoptions"
	adoptionworkflows "github.com/Apurer/pet-adoption-center/internal/platform/temporal/workflows/adoptions"
)

var (
	_ ports.ApplicationWorkflows = (*TemporalApplicationWorkflows)(nil)
	_ ports.ApplicationWorkflows = (*InlineApplicationWorkflows)(nil)
)

type idempotencyKey struct{}

// WithIdempotencyKey attaches a client-supplied key so retried requests map to one workflow.
func WithIdempotencyKey(ctx context.Context, key string) context.Context {
	if key == "" {
		return ctx
	}
	return context.WithValue(ctx, idempotencyKey{}, key)
}

// TemporalApplicationWorkflows starts adoption applications on a Temporal cluster.
type TemporalApplicationWorkflows struct {
	client    client.Client
	taskQueue string
}

func NewTemporalApplicationWorkflows(c client.Client) *TemporalApplicationWorkflows {
	return &TemporalApplicationWorkflows{client: c, taskQueue: adoptionworkflows.ApplicationTaskQueue}
}

// Apply runs the application workflow and waits for its result. Domain failures
// come back with their original kind.
func (o *TemporalApplicationWorkflows) Apply(ctx context.Context, input ports.ApplyInput) (*domain.View, error) {
	if o == nil || o.client == nil {
		return nil, errors.New("temporal adoption workflows not configured")
	}
	traceID := workflowTraceID(ctx)
	workflowID := buildApplicationWorkflowID(ctx, input, traceID)
	options := client.StartWorkflowOptions{
		ID:                    workflowID,
		TaskQueue:             o.taskQueue,
		WorkflowIDReusePolicy: enums.WORKFLOW_ID_REUSE_POLICY_ALLOW_DUPLICATE_FAILED_ONLY,
	}
	run, err := o.client.ExecuteWorkflow(
		ctx,
		options,
		adoptionworkflows.ApplicationWorkflow,
		adoptionworkflows.ApplicationWorkflowInput{Command: input, TraceID: traceID},
	)
	if err != nil {
		var alreadyStarted *serviceerror.WorkflowExecutionAlreadyStarted
		if !errors.As(err, &alreadyStarted) || !hasIdempotencyKey(ctx) {
			return nil, err
		}
		// A retried key joins the run that already owns the workflow ID.
		run = o.client.GetWorkflow(ctx, workflowID, alreadyStarted.RunId)
	}
	var view domain.View
	if err := run.Get(ctx, &view); err != nil {
		return nil, adoptionactivities.FromApplicationError(err)
	}
	return &view, nil
}

// InlineApplicationWorkflows calls the service directly when Temporal is unavailable.
type InlineApplicationWorkflows struct {
	service ports.Service
}

func NewInlineApplicationWorkflows(service ports.Service) *InlineApplicationWorkflows {
	return &InlineApplicationWorkflows{service: service}
}

func (o *InlineApplicationWorkflows) Apply(ctx context.Context, input ports.ApplyInput) (*domain.View, error) {
	if o == nil || o.service == nil {
		return nil, errors.New("inline adoption workflows not configured")
	}
	return o.service.Apply(ctx, input)
}

// buildApplicationWorkflowID prefers the idempotency key, then the trace ID, then a random ID.
func buildApplicationWorkflowID(ctx context.Context, input ports.ApplyInput, traceID string) string {
	prefix := fmt.Sprintf("adoption-application-%d-%d", input.PetID, input.AdopterID)
	if key := idempotencyKeyFrom(ctx); key != "" {
		sum := sha256.Sum256([]byte(key))
		return prefix + "-" + hex.EncodeToString(sum[:8])
	}
	if traceID != "" {
		return prefix + "-" + traceID
	}
	return prefix + "-" + uuid.NewString()
}

func idempotencyKeyFrom(ctx context.Context) string {
	key, _ := ctx.Value(idempotencyKey{}).(string)
	return key
}

func hasIdempotencyKey(ctx context.Context) bool {
	return idempotencyKeyFrom(ctx) != ""
}

func workflowTraceID(ctx context.Context) string {
	spanCtx := oteltrace.SpanContextFromContext(ctx)
	if !spanCtx.IsValid() {
		return ""
	}
	return spanCtx.TraceID().String()
}
