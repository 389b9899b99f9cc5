package sequences

import (
	"time"

	"go.temporal.io/sdk/temporal"
	"go.temporal.io/sdk/workflow"

	"github.com/Apurer/pet-adoption-center/internal/domains/adoptions/domain"
	"github.com/Apurer/pet-adoption-center/internal/domains/adoptions/ports"
	adoptionactivities "github.com/Apurer/pet-adoption-center/internal/platform/temporal/activities/adoptions"
)

// RunAdoptionApplicationSequence files the application. The activity runs at most
// once so a rejected application surfaces immediately.
func RunAdoptionApplicationSequence(ctx workflow.Context, input ports.ApplyInput) (*domain.View, error) {
	logger := workflow.GetLogger(ctx)
	logger.Info("adoption application sequence started", "petId", input.PetID, "adopterId", input.AdopterID)
	options := workflow.ActivityOptions{
		StartToCloseTimeout: 30 * time.Second,
		RetryPolicy: &temporal.RetryPolicy{
			MaximumAttempts: 1,
		},
	}

	var view domain.View
	err := workflow.ExecuteActivity(workflow.WithActivityOptions(ctx, options), adoptionactivities.ApplyActivityName, input).Get(ctx, &view)
	if err != nil {
		logger.Error("adoption application sequence failed", "petId", input.PetID, "error", err)
		return nil, err
	}
	if view.Adoption != nil {
		logger.Info("adoption application sequence filed", "adoptionId", view.Adoption.ID)
	}
	return &view, nil
}
