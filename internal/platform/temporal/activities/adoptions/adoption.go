package adoptions

import (
	"context"
	"errors"

	"go.temporal.io/sdk/activity"
	"go.temporal.io/sdk/temporal"

	"github.com/Apurer/pet-adoption-center/internal/domains/adoptions/domain"
	"github.com/Apurer/pet-adoption-center/internal/domains/adoptions/ports"
	"github.com/Apurer/pet-adoption-center/internal/shared/errkind"
)

// ApplyActivityName files an adoption application through the unit of work.
const ApplyActivityName = "adoptions.activities.Apply"

// Activities groups activities that operate on the adoptions bounded context.
type Activities struct {
	service ports.Service
}

func NewActivities(service ports.Service) *Activities {
	return &Activities{service: service}
}

// Apply runs the Apply transition. Classified failures are returned as
// non-retryable application errors typed by their kind.
func (a *Activities) Apply(ctx context.Context, input ports.ApplyInput) (*domain.View, error) {
	logger := activity.GetLogger(ctx)
	if a == nil || a.service == nil {
		logger.Error("adoption apply activity not initialized", "petId", input.PetID)
		return nil, errors.New("adoption apply activity not initialized")
	}
	logger.Info("Apply activity started", "petId", input.PetID, "adopterId", input.AdopterID)
	view, err := a.service.Apply(ctx, input)
	if err != nil {
		logger.Error("Apply activity failed", "petId", input.PetID, "error", err)
		return nil, ToApplicationError(err)
	}
	logger.Info("Apply activity completed", "adoptionId", view.Adoption.ID)
	return view, nil
}

// ToApplicationError wraps err so its kind survives the Temporal boundary.
func ToApplicationError(err error) error {
	name := errkind.Name(err)
	if name == "" {
		name = errkind.Name(errkind.Store(err))
	}
	return temporal.NewNonRetryableApplicationError(errkind.Message(err), name, err)
}

// FromApplicationError restores the kind carried by an application error
// anywhere in err's chain.
func FromApplicationError(err error) error {
	var appErr *temporal.ApplicationError
	if errors.As(err, &appErr) && appErr.Type() != "" {
		return errkind.FromName(appErr.Type(), appErr.Message())
	}
	return err
}
