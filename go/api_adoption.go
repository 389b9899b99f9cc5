package adoptionserver

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	adoptionmapper "github.com/Apurer/pet-adoption-center/internal/domains/adoptions/adapters/http/mapper"
	adoptionworkflows "github.com/Apurer/pet-adoption-center/internal/domains/adoptions/adapters/workflows"
	"github.com/Apurer/pet-adoption-center/internal/domains/adoptions/domain"
	adoptionports "github.com/Apurer/pet-adoption-center/internal/domains/adoptions/ports"
)

// IdempotencyKeyHeader lets clients retry an application without filing it twice.
const IdempotencyKeyHeader = "Idempotency-Key"

// AdoptionAPI serves the adoption lifecycle.
type AdoptionAPI struct {
	service   adoptionports.Service
	workflows adoptionports.ApplicationWorkflows
}

func NewAdoptionAPI(service adoptionports.Service, workflows adoptionports.ApplicationWorkflows) AdoptionAPI {
	return AdoptionAPI{service: service, workflows: workflows}
}

// Get /api/adoptions
// List adoptions. Adopters only ever see their own.
func (api *AdoptionAPI) ListAdoptions(c *gin.Context) {
	var input adoptionports.ListInput
	if !bindQuery(c, "status", &input.Status) || !bindQuery(c, "adopter_id", &input.AdopterID) || !bindQuery(c, "pet_id", &input.PetID) {
		return
	}
	if !isAdmin(c) {
		input.AdopterID = claimsFrom(c).ID
	}
	views, err := api.service.List(c.Request.Context(), input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, adoptionmapper.FromViews(views))
}

// Get /api/adoptions/policy
// The adoption policy this deployment runs
func (api *AdoptionAPI) GetPolicy(c *gin.Context) {
	c.JSON(http.StatusOK, adoptionmapper.FromPolicy(api.service.Policy()))
}

// Get /api/adoptions/:id
// Find adoption by ID
func (api *AdoptionAPI) GetAdoption(c *gin.Context) {
	view, ok := api.owned(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, adoptionmapper.FromView(*view))
}

// Post /api/adoptions
// Apply to adopt an available pet
func (api *AdoptionAPI) Apply(c *gin.Context) {
	var payload adoptionmapper.ApplyRequest
	if !bindJSON(c, &payload) {
		return
	}
	adopterID, err := actingAdopter(c, payload.AdopterID)
	if err != nil {
		respondError(c, err)
		return
	}
	ctx := adoptionworkflows.WithIdempotencyKey(c.Request.Context(), strings.TrimSpace(c.GetHeader(IdempotencyKeyHeader)))
	view, err := api.apply(ctx, payload.ToInput(adopterID))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, adoptionmapper.FromView(*view))
}

func (api *AdoptionAPI) apply(ctx context.Context, input adoptionports.ApplyInput) (*domain.View, error) {
	if api.workflows != nil {
		return api.workflows.Apply(ctx, input)
	}
	return api.service.Apply(ctx, input)
}

// Put /api/adoptions/:id
// Edit the fee and notes of an adoption
func (api *AdoptionAPI) EditAdoption(c *gin.Context) {
	existing, ok := api.owned(c)
	if !ok {
		return
	}
	var payload adoptionmapper.EditRequest
	if !bindJSON(c, &payload) {
		return
	}
	view, err := api.service.Edit(c.Request.Context(), payload.ToInput(existing.Adoption.ID))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, adoptionmapper.FromView(*view))
}

// Delete /api/adoptions/:id
// Delete an adoption and release its pet
func (api *AdoptionAPI) DeleteAdoption(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := api.service.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	respondMessage(c, "Adoption deleted successfully")
}

// Put /api/adoptions/:id/cancel
// Cancel an open or approved application. The applicant may cancel their own.
func (api *AdoptionAPI) Cancel(c *gin.Context) {
	existing, ok := api.owned(c)
	if !ok {
		return
	}
	api.respondTransition(c, existing.Adoption.ID, api.service.Cancel)
}

// Put /api/adoptions/:id/approve
// Approve a pending application
func (api *AdoptionAPI) Approve(c *gin.Context) {
	api.transition(c, api.service.Approve)
}

// Put /api/adoptions/:id/deny
// Deny a pending application and release the pet
func (api *AdoptionAPI) Deny(c *gin.Context) {
	api.transition(c, api.service.Deny)
}

// Put /api/adoptions/:id/complete
// Complete an adoption: the pet is adopted and the contract signed
func (api *AdoptionAPI) Complete(c *gin.Context) {
	api.transition(c, api.service.Complete)
}

// Put /api/adoptions/:id/return
// Return a completed adoption and make the pet available again
func (api *AdoptionAPI) Return(c *gin.Context) {
	api.transition(c, api.service.Return)
}

type transitionFunc func(ctx context.Context, id int64) (*domain.View, error)

func (api *AdoptionAPI) transition(c *gin.Context, fn transitionFunc) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	api.respondTransition(c, id, fn)
}

func (api *AdoptionAPI) respondTransition(c *gin.Context, id int64, fn transitionFunc) {
	view, err := fn(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, adoptionmapper.FromView(*view))
}

// owned loads the adoption named by the path and checks the caller may see it.
func (api *AdoptionAPI) owned(c *gin.Context) (*domain.View, bool) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return nil, false
	}
	view, err := api.service.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return nil, false
	}
	if err := authorizeOwner(c, view.Adoption.AdopterID); err != nil {
		respondError(c, err)
		return nil, false
	}
	return view, true
}
