package adoptions

import (
	"go.temporal.io/sdk/workflow"

	"github.com/Apurer/pet-adoption-center/internal/domains/adoptions/domain"
	"github.com/Apurer/pet-adoption-center/internal/domains/adoptions/ports"
	"github.com/Apurer/pet-adoption-center/internal/platform/temporal/sequences"
)

const (
	// ApplicationWorkflowName is the public identifier for registering the workflow.
	ApplicationWorkflowName = "adoptions.workflows.Application"
	// ApplicationTaskQueue is the queue consumed by the worker processing adoption workflows.
	ApplicationTaskQueue = "ADOPTION_APPLICATIONS"
)

// ApplicationWorkflowInput captures the application and the trace it was started from.
type ApplicationWorkflowInput struct {
	Command ports.ApplyInput
	TraceID string
}

// ApplicationWorkflow files one adoption application.
func ApplicationWorkflow(ctx workflow.Context, input ApplicationWorkflowInput) (*domain.View, error) {
	logger := workflow.GetLogger(ctx)
	logger.Info("ApplicationWorkflow started", withTraceID(input.TraceID, "petId", input.Command.PetID)...)
	view, err := sequences.RunAdoptionApplicationSequence(ctx, input.Command)
	if err != nil {
		logger.Error("ApplicationWorkflow failed", withTraceID(input.TraceID, "petId", input.Command.PetID, "error", err)...)
		return nil, err
	}
	logger.Info("ApplicationWorkflow completed", withTraceID(input.TraceID, "adoptionId", view.Adoption.ID)...)
	return view, nil
}

func withTraceID(traceID string, keyvals ...interface{}) []interface{} {
	if traceID == "" {
		return keyvals
	}
	return append(keyvals, "traceId", traceID)
}
