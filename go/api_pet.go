package adoptionserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	pethttpmapper "github.com/Apurer/pet-adoption-center/internal/domains/pets/adapters/http/mapper"
	petstypes "github.com/Apurer/pet-adoption-center/internal/domains/pets/application/types"
	petsports "github.com/Apurer/pet-adoption-center/internal/domains/pets/ports"
	vethttpmapper "github.com/Apurer/pet-adoption-center/internal/domains/veterinary/adapters/http/mapper"
	vetports "github.com/Apurer/pet-adoption-center/internal/domains/veterinary/ports"
)

// PetAPI wires HTTP transport with the pets bounded context and the vet history read.
type PetAPI struct {
	service petsports.Service
	vet     vetports.Service
}

// NewPetAPI creates a PetAPI backed by the provided services.
func NewPetAPI(service petsports.Service, vet vetports.Service) PetAPI {
	return PetAPI{service: service, vet: vet}
}

// Get /api/pets
// List pets filtered by species, status and a name or breed search
func (api *PetAPI) ListPets(c *gin.Context) {
	var input petstypes.ListPetsInput
	if !bindQuery(c, "species", &input.Species) || !bindQuery(c, "status", &input.Status) || !bindQuery(c, "search", &input.Search) {
		return
	}
	pets, err := api.service.List(c.Request.Context(), input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, pethttpmapper.FromProjections(pets))
}

// Get /api/pets/species
// Distinct species in the catalogue
func (api *PetAPI) ListSpecies(c *gin.Context) {
	species, err := api.service.Species(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, species)
}

// Get /api/pets/search-by-species/:species
// Available pets of one species
func (api *PetAPI) SearchBySpecies(c *gin.Context) {
	pets, err := api.service.AvailableBySpecies(c.Request.Context(), c.Param("species"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, pethttpmapper.FromProjections(pets))
}

// Get /api/pets/popular
// Most favorited available pets, ties included
func (api *PetAPI) Popular(c *gin.Context) {
	ranked, err := api.service.Popular(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, pethttpmapper.FromRanked(ranked))
}

// Get /api/pets/new-arrivals
// Most recently arrived available pets, ties included
func (api *PetAPI) NewArrivals(c *gin.Context) {
	pets, err := api.service.NewArrivals(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, pethttpmapper.FromDomainPets(pets))
}

// Get /api/pets/:id
// Find pet by ID
func (api *PetAPI) GetPet(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	pet, err := api.service.GetByID(c.Request.Context(), petstypes.PetIdentifier{ID: id})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, pethttpmapper.FromProjection(pet))
}

// Post /api/pets
// Add a pet to the catalogue
func (api *PetAPI) AddPet(c *gin.Context) {
	var payload pethttpmapper.MutationPet
	if !bindJSON(c, &payload) {
		return
	}
	mutation, err := pethttpmapper.ToMutationInput(payload)
	if err != nil {
		respondBadRequest(c, err)
		return
	}
	saved, err := api.service.AddPet(c.Request.Context(), petstypes.AddPetInput{PetMutationInput: mutation})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, pethttpmapper.FromProjection(saved))
}

// Put /api/pets/:id
// Update an existing pet
func (api *PetAPI) UpdatePet(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var payload pethttpmapper.MutationPet
	if !bindJSON(c, &payload) {
		return
	}
	mutation, err := pethttpmapper.ToMutationInput(payload)
	if err != nil {
		respondBadRequest(c, err)
		return
	}
	updated, err := api.service.UpdatePet(c.Request.Context(), petstypes.UpdatePetInput{ID: id, PetMutationInput: mutation})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, pethttpmapper.FromProjection(updated))
}

// Delete /api/pets/:id
// Deletes a pet and everything that references it
func (api *PetAPI) DeletePet(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := api.service.Delete(c.Request.Context(), petstypes.PetIdentifier{ID: id}); err != nil {
		respondError(c, err)
		return
	}
	respondMessage(c, "Pet deleted successfully")
}

// Get /api/pets/:id/vet-history
// Veterinary visits of a pet with their vaccinations
func (api *PetAPI) VetHistory(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if _, err := api.service.GetByID(c.Request.Context(), petstypes.PetIdentifier{ID: id}); err != nil {
		respondError(c, err)
		return
	}
	history, err := api.vet.PetHistory(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, vethttpmapper.FromVisitViews(history))
}
