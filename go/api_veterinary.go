package adoptionserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	vethttpmapper "github.com/Apurer/pet-adoption-center/internal/domains/veterinary/adapters/http/mapper"
	vetports "github.com/Apurer/pet-adoption-center/internal/domains/veterinary/ports"
)

// VeterinaryAPI serves vet visits and the vaccinations given on them.
type VeterinaryAPI struct {
	service vetports.Service
}

func NewVeterinaryAPI(service vetports.Service) VeterinaryAPI {
	return VeterinaryAPI{service: service}
}

// Get /api/vet-visits
// List visits, optionally for one pet or visit type
func (api *VeterinaryAPI) ListVisits(c *gin.Context) {
	var input vetports.ListVisitsInput
	if !bindQuery(c, "pet_id", &input.PetID) || !bindQuery(c, "visit_type", &input.VisitType) {
		return
	}
	views, err := api.service.ListVisits(c.Request.Context(), input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, vethttpmapper.FromVisitViews(views))
}

// Get /api/vet-visits/:id
// Find visit by ID
func (api *VeterinaryAPI) GetVisit(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	view, err := api.service.GetVisit(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, vethttpmapper.FromVisitView(*view))
}

// Get /api/vet-visits/:id/vaccinations
// Vaccinations given on a visit
func (api *VeterinaryAPI) VisitVaccinations(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	view, err := api.service.GetVisit(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	doses := vethttpmapper.FromVisitView(*view).Vaccinations
	if doses == nil {
		doses = []vethttpmapper.Vaccination{}
	}
	c.JSON(http.StatusOK, doses)
}

// Post /api/vet-visits
// Record a visit for a pet
func (api *VeterinaryAPI) CreateVisit(c *gin.Context) {
	var payload vethttpmapper.VisitRequest
	if !bindJSON(c, &payload) {
		return
	}
	input, err := payload.ToCreateInput()
	if err != nil {
		respondBadRequest(c, err)
		return
	}
	view, err := api.service.CreateVisit(c.Request.Context(), input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, vethttpmapper.FromVisitView(*view))
}

// Put /api/vet-visits/:id
// Update the recorded details of a visit
func (api *VeterinaryAPI) UpdateVisit(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var payload vethttpmapper.VisitRequest
	if !bindJSON(c, &payload) {
		return
	}
	input, err := payload.ToUpdateInput(id)
	if err != nil {
		respondBadRequest(c, err)
		return
	}
	view, err := api.service.UpdateVisit(c.Request.Context(), input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, vethttpmapper.FromVisitView(*view))
}

// Delete /api/vet-visits/:id
// Delete a visit together with its vaccinations
func (api *VeterinaryAPI) DeleteVisit(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := api.service.DeleteVisit(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	respondMessage(c, "Vet visit deleted successfully")
}

// Get /api/vaccinations
// List vaccinations, optionally for one pet or status
func (api *VeterinaryAPI) ListVaccinations(c *gin.Context) {
	var input vetports.ListVaccinationsInput
	if !bindQuery(c, "pet_id", &input.PetID) || !bindQuery(c, "status", &input.Status) {
		return
	}
	views, err := api.service.ListVaccinations(c.Request.Context(), input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, vethttpmapper.FromVaccinationViews(views))
}

// Get /api/vaccinations/status/overdue
// Vaccinations past their next due date
func (api *VeterinaryAPI) OverdueVaccinations(c *gin.Context) {
	views, err := api.service.Overdue(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, vethttpmapper.FromVaccinationViews(views))
}

// Get /api/vaccinations/:id
// Find vaccination by ID
func (api *VeterinaryAPI) GetVaccination(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	view, err := api.service.GetVaccination(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, vethttpmapper.FromVaccinationView(*view))
}

// Post /api/vaccinations
// Record a vaccination given on a visit
func (api *VeterinaryAPI) CreateVaccination(c *gin.Context) {
	var payload vethttpmapper.VaccinationRequest
	if !bindJSON(c, &payload) {
		return
	}
	input, err := payload.ToCreateInput()
	if err != nil {
		respondBadRequest(c, err)
		return
	}
	view, err := api.service.CreateVaccination(c.Request.Context(), input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, vethttpmapper.FromVaccinationView(*view))
}

// Put /api/vaccinations/:id
// Update a vaccination record
func (api *VeterinaryAPI) UpdateVaccination(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var payload vethttpmapper.VaccinationRequest
	if !bindJSON(c, &payload) {
		return
	}
	input, err := payload.ToUpdateInput(id)
	if err != nil {
		respondBadRequest(c, err)
		return
	}
	view, err := api.service.UpdateVaccination(c.Request.Context(), input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, vethttpmapper.FromVaccinationView(*view))
}

// Delete /api/vaccinations/:id
// Delete a vaccination record
func (api *VeterinaryAPI) DeleteVaccination(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := api.service.DeleteVaccination(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	respondMessage(c, "Vaccination deleted successfully")
}
