package adoptionserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	adoptermapper "github.com/Apurer/pet-adoption-center/internal/domains/adopters/adapters/http/mapper"
	adopterports "github.com/Apurer/pet-adoption-center/internal/domains/adopters/ports"
	adoptionmapper "github.com/Apurer/pet-adoption-center/internal/domains/adoptions/adapters/http/mapper"
	adoptionports "github.com/Apurer/pet-adoption-center/internal/domains/adoptions/ports"
	favoritemapper "github.com/Apurer/pet-adoption-center/internal/domains/favorites/adapters/http/mapper"
	favoriteports "github.com/Apurer/pet-adoption-center/internal/domains/favorites/ports"
)

// AdopterAPI serves adopter profiles and the records hanging off them.
type AdopterAPI struct {
	service   adopterports.Service
	adoptions adoptionports.Service
	favorites favoriteports.Service
}

func NewAdopterAPI(service adopterports.Service, adoptions adoptionports.Service, favorites favoriteports.Service) AdopterAPI {
	return AdopterAPI{service: service, adoptions: adoptions, favorites: favorites}
}

// Get /api/adopters
// List adopters with their adoption and favorite totals
func (api *AdopterAPI) ListAdopters(c *gin.Context) {
	list, err := api.service.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, adoptermapper.FromSummaries(list))
}

// Get /api/adopters/:id
// Find adopter by ID
func (api *AdopterAPI) GetAdopter(c *gin.Context) {
	id, ok := api.ownedID(c)
	if !ok {
		return
	}
	adopter, err := api.service.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, adoptermapper.FromDomain(adopter))
}

// Put /api/adopters/:id
// Update an adopter profile
func (api *AdopterAPI) UpdateAdopter(c *gin.Context) {
	id, ok := api.ownedID(c)
	if !ok {
		return
	}
	var payload adoptermapper.UpdateProfileRequest
	if !bindJSON(c, &payload) {
		return
	}
	updated, err := api.service.UpdateProfile(c.Request.Context(), adoptermapper.ToUpdateProfileInput(id, payload))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, adoptermapper.FromDomain(updated))
}

// Delete /api/adopters/:id
// Delete an adopter, releasing any pets they hold
func (api *AdopterAPI) DeleteAdopter(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := api.service.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	respondMessage(c, "Adopter deleted successfully")
}

// Get /api/adopters/:id/adoptions
// Adoptions filed by an adopter, newest first
func (api *AdopterAPI) ListAdoptions(c *gin.Context) {
	id, ok := api.ownedID(c)
	if !ok {
		return
	}
	views, err := api.adoptions.List(c.Request.Context(), adoptionports.ListInput{AdopterID: id})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, adoptionmapper.FromViews(views))
}

// Get /api/adopters/:id/favorites
// Favorites of an adopter, newest first
func (api *AdopterAPI) ListFavorites(c *gin.Context) {
	id, ok := api.ownedID(c)
	if !ok {
		return
	}
	views, err := api.favorites.List(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, favoritemapper.FromViews(views))
}

func (api *AdopterAPI) ownedID(c *gin.Context) (int64, bool) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return 0, false
	}
	if err := authorizeOwner(c, id); err != nil {
		respondError(c, err)
		return 0, false
	}
	return id, true
}
