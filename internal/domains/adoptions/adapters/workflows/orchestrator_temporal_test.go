package workflows

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.temporal.io/api/serviceerror"
	"go.temporal.io/sdk/mocks"

	"github.com/Apurer/pet-adoption-center/internal/domains/adoptions/domain"
	"github.com/Apurer/pet-adoption-center/internal/domains/adoptions/ports"
	adoptionactivities "github.com/Apurer/pet-adoption-center/internal/platform/temporal/activities/adoptions"
	"github.com/Apurer/pet-adoption-center/internal/shared/errkind"
)

func runReturning(adoptionID int64) *mocks.WorkflowRun {
	run := &mocks.WorkflowRun{}
	run.On("Get", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			view := args.Get(1).(*domain.View)
			view.Adoption = &domain.Adoption{ID: adoptionID}
		}).
		Return(nil)
	return run
}

func TestTemporalApplyReturnsWorkflowResult(t *testing.T) {
	c := &mocks.Client{}
	c.On("ExecuteWorkflow", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(runReturning(7), nil)

	view, err := NewTemporalApplicationWorkflows(c).Apply(context.Background(), ports.ApplyInput{PetID: 1, AdopterID: 2})

	require.NoError(t, err)
	assert.Equal(t, int64(7), view.Adoption.ID)
	c.AssertNotCalled(t, "GetWorkflow", mock.Anything, mock.Anything, mock.Anything)
}

func TestTemporalApplyRetriedKeyJoinsExistingRun(t *testing.T) {
	input := ports.ApplyInput{PetID: 1, AdopterID: 2}
	ctx := WithIdempotencyKey(context.Background(), "retry-1")
	workflowID := buildApplicationWorkflowID(ctx, input, "")

	c := &mocks.Client{}
	c.On("ExecuteWorkflow", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(nil, serviceerror.NewWorkflowExecutionAlreadyStarted("already started", "req", "run-1"))
	c.On("GetWorkflow", mock.Anything, workflowID, "run-1").Return(runReturning(42))

	view, err := NewTemporalApplicationWorkflows(c).Apply(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, int64(42), view.Adoption.ID)
	c.AssertExpectations(t)
}

func TestTemporalApplyAlreadyStartedWithoutKeyFails(t *testing.T) {
	c := &mocks.Client{}
	c.On("ExecuteWorkflow", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(nil, serviceerror.NewWorkflowExecutionAlreadyStarted("already started", "req", "run-1"))

	_, err := NewTemporalApplicationWorkflows(c).Apply(context.Background(), ports.ApplyInput{PetID: 1, AdopterID: 2})

	var alreadyStarted *serviceerror.WorkflowExecutionAlreadyStarted
	assert.True(t, errors.As(err, &alreadyStarted))
	c.AssertNotCalled(t, "GetWorkflow", mock.Anything, mock.Anything, mock.Anything)
}

func TestTemporalApplyRestoresDomainErrorFromExistingRun(t *testing.T) {
	ctx := WithIdempotencyKey(context.Background(), "retry-2")
	failed := &mocks.WorkflowRun{}
	failed.On("Get", mock.Anything, mock.Anything).
		Return(adoptionactivities.ToApplicationError(errkind.Wrap(errkind.ErrInvalidTransition, errors.New("pet is not available"))))

	c := &mocks.Client{}
	c.On("ExecuteWorkflow", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(nil, serviceerror.NewWorkflowExecutionAlreadyStarted("already started", "req", "run-2"))
	c.On("GetWorkflow", mock.Anything, mock.Anything, "run-2").Return(failed)

	_, err := NewTemporalApplicationWorkflows(c).Apply(ctx, ports.ApplyInput{PetID: 1, AdopterID: 2})

	require.Error(t, err)
	assert.ErrorIs(t, err, errkind.ErrInvalidTransition)
}
