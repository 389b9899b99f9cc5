package adoptionserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	favoritemapper "github.com/Apurer/pet-adoption-center/internal/domains/favorites/adapters/http/mapper"
	"github.com/Apurer/pet-adoption-center/internal/domains/favorites/domain"
	favoriteports "github.com/Apurer/pet-adoption-center/internal/domains/favorites/ports"
)

// FavoriteAPI serves adopter bookmarks on pets.
type FavoriteAPI struct {
	service favoriteports.Service
}

func NewFavoriteAPI(service favoriteports.Service) FavoriteAPI {
	return FavoriteAPI{service: service}
}

// Get /api/favorites
// Favorites of the calling adopter, or of adopter_id for admins
func (api *FavoriteAPI) ListFavorites(c *gin.Context) {
	var requested int64
	if !bindQuery(c, "adopter_id", &requested) {
		return
	}
	adopterID, err := actingAdopter(c, requested)
	if err != nil {
		respondError(c, err)
		return
	}
	views, err := api.service.List(c.Request.Context(), adopterID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, favoritemapper.FromViews(views))
}

// Get /api/favorites/:id
// Find favorite by ID
func (api *FavoriteAPI) GetFavorite(c *gin.Context) {
	view, ok := api.owned(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, favoritemapper.FromView(*view))
}

// Post /api/favorites
// Bookmark a pet
func (api *FavoriteAPI) AddFavorite(c *gin.Context) {
	var payload favoritemapper.AddRequest
	if !bindJSON(c, &payload) {
		return
	}
	adopterID, err := actingAdopter(c, payload.AdopterID)
	if err != nil {
		respondError(c, err)
		return
	}
	view, err := api.service.Add(c.Request.Context(), payload.ToInput(adopterID))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, favoritemapper.FromView(*view))
}

// Put /api/favorites/:id
// Replace the notes on a favorite
func (api *FavoriteAPI) UpdateNotes(c *gin.Context) {
	existing, ok := api.owned(c)
	if !ok {
		return
	}
	var payload favoritemapper.NotesRequest
	if !bindJSON(c, &payload) {
		return
	}
	view, err := api.service.UpdateNotes(c.Request.Context(), existing.Favorite.ID, payload.Notes)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, favoritemapper.FromView(*view))
}

// Delete /api/favorites/:id
// Remove a favorite
func (api *FavoriteAPI) DeleteFavorite(c *gin.Context) {
	existing, ok := api.owned(c)
	if !ok {
		return
	}
	if err := api.service.Remove(c.Request.Context(), existing.Favorite.ID); err != nil {
		respondError(c, err)
		return
	}
	respondMessage(c, "Removed from favorites")
}

// Delete /api/favorites/adopter/:adopterId/pet/:petId
// Remove the favorite an adopter holds on a pet
func (api *FavoriteAPI) DeleteByPair(c *gin.Context) {
	adopterID, petID, ok := api.pair(c)
	if !ok {
		return
	}
	if err := api.service.RemoveByPair(c.Request.Context(), adopterID, petID); err != nil {
		respondError(c, err)
		return
	}
	respondMessage(c, "Removed from favorites")
}

// Get /api/favorites/check/:adopterId/:petId
// Whether an adopter has favorited a pet
func (api *FavoriteAPI) CheckFavorite(c *gin.Context) {
	adopterID, petID, ok := api.pair(c)
	if !ok {
		return
	}
	result, err := api.service.Check(c.Request.Context(), adopterID, petID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, favoritemapper.FromCheck(result))
}

func (api *FavoriteAPI) pair(c *gin.Context) (adopterID, petID int64, ok bool) {
	if adopterID, ok = parseIDParam(c, "adopterId"); !ok {
		return 0, 0, false
	}
	if petID, ok = parseIDParam(c, "petId"); !ok {
		return 0, 0, false
	}
	if err := authorizeOwner(c, adopterID); err != nil {
		respondError(c, err)
		return 0, 0, false
	}
	return adopterID, petID, true
}

func (api *FavoriteAPI) owned(c *gin.Context) (*domain.View, bool) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return nil, false
	}
	view, err := api.service.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return nil, false
	}
	if err := authorizeOwner(c, view.Favorite.AdopterID); err != nil {
		respondError(c, err)
		return nil, false
	}
	return view, true
}
