//go:build pact
// +build pact

package provider_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync"
	"testing"

	pacttest "github.com/Apurer/pet-adoption-center/test/pact"

	"github.com/Apurer/pet-adoption-center/internal/app/api"
	adoptiondomain "github.com/Apurer/pet-adoption-center/internal/domains/adoptions/domain"
	petstypes "github.com/Apurer/pet-adoption-center/internal/domains/pets/application/types"
	"github.com/Apurer/pet-adoption-center/internal/shared/dates"

	"github.com/gin-gonic/gin"
	"github.com/pact-foundation/pact-go/v2/models"
	pactprovider "github.com/pact-foundation/pact-go/v2/provider"
	"github.com/stretchr/testify/require"
)

func TestAdoptionCenterProviderPact(t *testing.T) {
	gin.SetMode(gin.TestMode)

	app := newContractProviderApp(t)
	pactFile := filepath.ToSlash(pacttest.PactFile(t))
	if _, err := os.Stat(pactFile); errors.Is(err, os.ErrNotExist) {
		t.Fatalf("pact file not found at %s - run the pact consumer tests first", pactFile)
	} else {
		require.NoError(t, err)
	}

	reset := func(setup bool, _ models.ProviderState) (models.ProviderStateResponse, error) {
		app.reset(t)
		return nil, nil
	}
	stateHandlers := models.StateHandlers{
		pacttest.StateCatalogueEmpty: reset,
		pacttest.StatePolicyDefault:  reset,
		pacttest.StatePetExists: func(setup bool, _ models.ProviderState) (models.ProviderStateResponse, error) {
			app.reset(t)
			if setup {
				app.seedPet(t)
			}
			return nil, nil
		},
	}

	verifier := pactprovider.NewVerifier()
	err := verifier.VerifyProvider(t, pactprovider.VerifyRequest{
		ProviderBaseURL: app.server.URL,
		Provider:        pacttest.ProviderName,
		PactFiles:       []string{pactFile},
		StateHandlers:   stateHandlers,
		BeforeEach: func() error {
			app.reset(t)
			return nil
		},
	})
	require.NoError(t, err)
}

// contractProviderApp serves a fresh in-memory composition per provider state
// so seeded pets receive predictable ids.
type contractProviderApp struct {
	mu       sync.RWMutex
	services *api.Services
	engine   *gin.Engine
	server   *httptest.Server
}

func newContractProviderApp(t testing.TB) *contractProviderApp {
	t.Helper()
	app := &contractProviderApp{}
	app.reset(t)
	app.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		app.mu.RLock()
		engine := app.engine
		app.mu.RUnlock()
		engine.ServeHTTP(w, r)
	}))
	t.Cleanup(app.server.Close)
	return app
}

func (a *contractProviderApp) reset(t testing.TB) {
	t.Helper()
	cfg := api.Config{JWTSecret: "pact-secret", Policy: adoptiondomain.DefaultPolicy()}
	services, err := api.BuildServices(nil, cfg, nil)
	require.NoError(t, err)
	engine := api.NewEngine("pact-provider", services, nil, nil)

	a.mu.Lock()
	a.services = services
	a.engine = engine
	a.mu.Unlock()
}

func (a *contractProviderApp) seedPet(t testing.TB) {
	t.Helper()
	example := pacttest.ExamplePet
	arrived, err := dates.Parse(example.DateArrived)
	require.NoError(t, err)

	a.mu.RLock()
	pets := a.services.Pets
	a.mu.RUnlock()

	saved, err := pets.AddPet(context.Background(), petstypes.AddPetInput{PetMutationInput: petstypes.PetMutationInput{
		Name:        &example.Name,
		Species:     &example.Species,
		Breed:       &example.Breed,
		Age:         &example.Age,
		Gender:      &example.Gender,
		DateArrived: &arrived,
	}})
	require.NoError(t, err)
	require.Equal(t, pacttest.ExistingPetID, saved.Entity.ID)
}
