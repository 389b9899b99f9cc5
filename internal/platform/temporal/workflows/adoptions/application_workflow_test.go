package adoptions

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.temporal.io/sdk/activity"
	"go.temporal.io/sdk/testsuite"

	adoptionmemory "github.com/Apurer/pet-adoption-center/internal/domains/adoptions/adapters/memory"
	adoptionapp "github.com/Apurer/pet-adoption-center/internal/domains/adoptions/application"
	"github.com/Apurer/pet-adoption-center/internal/domains/adoptions/domain"
	"github.com/Apurer/pet-adoption-center/internal/domains/adoptions/ports"
	petmemory "github.com/Apurer/pet-adoption-center/internal/domains/pets/adapters/memory"
	petdomain "github.com/Apurer/pet-adoption-center/internal/domains/pets/domain"
	adoptionactivities "github.com/Apurer/pet-adoption-center/internal/platform/temporal/activities/adoptions"
	"github.com/Apurer/pet-adoption-center/internal/shared/errkind"
)

func newEnvironment(t *testing.T) (*testsuite.TestWorkflowEnvironment, int64) {
	t.Helper()
	pets := petmemory.NewRepository()
	pet, err := petdomain.NewPet("Rex", "Dog", time.Now())
	require.NoError(t, err)
	proj, err := pets.Save(context.Background(), pet)
	require.NoError(t, err)

	store := adoptionmemory.NewStore(pets)
	service := adoptionapp.NewService(store, store)

	var suite testsuite.WorkflowTestSuite
	env := suite.NewTestWorkflowEnvironment()
	env.RegisterWorkflow(ApplicationWorkflow)
	env.RegisterActivityWithOptions(adoptionactivities.NewActivities(service).Apply, activity.RegisterOptions{Name: adoptionactivities.ApplyActivityName})
	return env, proj.Entity.ID
}

func TestApplicationWorkflowFilesApplication(t *testing.T) {
	env, petID := newEnvironment(t)

	env.ExecuteWorkflow(ApplicationWorkflow, ApplicationWorkflowInput{
		Command: ports.ApplyInput{PetID: petID, AdopterID: 4, Fee: 90},
		TraceID: "trace-1",
	})

	require.True(t, env.IsWorkflowCompleted())
	require.NoError(t, env.GetWorkflowError())
	var view domain.View
	require.NoError(t, env.GetWorkflowResult(&view))
	require.NotNil(t, view.Adoption)
	assert.Equal(t, petID, view.Adoption.PetID)
	assert.Equal(t, domain.StatusApplied, view.Adoption.Status)
}

func TestApplicationWorkflowKeepsErrorKind(t *testing.T) {
	env, _ := newEnvironment(t)

	env.ExecuteWorkflow(ApplicationWorkflow, ApplicationWorkflowInput{
		Command: ports.ApplyInput{PetID: 404, AdopterID: 4},
	})

	require.True(t, env.IsWorkflowCompleted())
	err := env.GetWorkflowError()
	require.Error(t, err)
	restored := adoptionactivities.FromApplicationError(err)
	require.ErrorIs(t, restored, errkind.ErrNotFound)
	assert.Equal(t, "pet not found", errkind.Message(restored))
}
