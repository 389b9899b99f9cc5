package adoptionserver

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Access is the credential a route demands.
type Access int

const (
	AccessPublic Access = iota
	AccessToken
	AccessAdmin
)

// Route is the information for every URI.
type Route struct {
	// Name is the name of this Route.
	Name string
	// Method is the string for the HTTP method. ex) GET, POST etc..
	Method string
	// Pattern is the pattern of the URI, relative to /api.
	Pattern string
	// Access is the guard placed in front of the handler.
	Access Access
	// Mirrored routes are also served under /api/admin behind the admin guard.
	Mirrored bool
	// HandlerFunc is the handler function of this route.
	HandlerFunc gin.HandlerFunc
}

// NewRouterWithGinEngine adds the routes to an existing gin engine.
func NewRouterWithGinEngine(router *gin.Engine, handleFunctions ApiHandleFunctions) *gin.Engine {
	api := router.Group("/api")
	admin := api.Group("/admin")
	for _, route := range getRoutes(handleFunctions) {
		if route.HandlerFunc == nil {
			route.HandlerFunc = DefaultHandleFunc
		}
		api.Handle(route.Method, route.Pattern, handleFunctions.guard(route.Access), route.HandlerFunc)
		if route.Mirrored {
			admin.Handle(route.Method, route.Pattern, handleFunctions.guard(AccessAdmin), route.HandlerFunc)
		}
	}
	if handleFunctions.Metrics != nil {
		router.GET("/metrics", gin.WrapH(handleFunctions.Metrics))
	}
	return router
}

// DefaultHandleFunc is the default handler for routes without an implementation.
func DefaultHandleFunc(c *gin.Context) {
	c.String(http.StatusNotImplemented, "501 not implemented")
}

type ApiHandleFunctions struct {
	// Guard authenticates every route that is not public.
	Guard *Guard
	// Metrics, when set, is served at /metrics.
	Metrics http.Handler

	AdminAPI      AdminAPI
	AdminAuthAPI  AdminAuthAPI
	AdopterAPI    AdopterAPI
	AdoptionAPI   AdoptionAPI
	AuthAPI       AuthAPI
	FavoriteAPI   FavoriteAPI
	HealthAPI     HealthAPI
	PetAPI        PetAPI
	VeterinaryAPI VeterinaryAPI
}

func (h *ApiHandleFunctions) guard(access Access) gin.HandlerFunc {
	switch access {
	case AccessToken:
		return h.Guard.RequireToken()
	case AccessAdmin:
		return h.Guard.RequireAdmin()
	}
	return func(c *gin.Context) { c.Next() }
}

func getRoutes(handleFunctions ApiHandleFunctions) []Route {
	return []Route{
		{"Health", http.MethodGet, "/health", AccessPublic, false, handleFunctions.HealthAPI.Health},

		{"Register", http.MethodPost, "/auth/register", AccessPublic, false, handleFunctions.AuthAPI.Register},
		{"Login", http.MethodPost, "/auth/login", AccessPublic, false, handleFunctions.AuthAPI.Login},
		{"Me", http.MethodGet, "/auth/me", AccessToken, false, handleFunctions.AuthAPI.Me},
		{"Logout", http.MethodPost, "/auth/logout", AccessToken, false, handleFunctions.AuthAPI.Logout},

		{"AdminLogin", http.MethodPost, "/admin/auth/login", AccessPublic, false, handleFunctions.AdminAuthAPI.Login},
		{"AdminMe", http.MethodGet, "/admin/auth/me", AccessAdmin, false, handleFunctions.AdminAuthAPI.Me},
		{"AdminLogout", http.MethodPost, "/admin/auth/logout", AccessAdmin, false, handleFunctions.AdminAuthAPI.Logout},
		{"DashboardStats", http.MethodGet, "/admin/dashboard/stats", AccessAdmin, false, handleFunctions.AdminAPI.DashboardStats},
		{"DashboardActivity", http.MethodGet, "/admin/dashboard/activity", AccessAdmin, false, handleFunctions.AdminAPI.DashboardActivity},
		{"PendingApplications", http.MethodGet, "/admin/adoptions/pending-applications", AccessAdmin, false, handleFunctions.AdminAPI.PendingApplications},
		{"AdoptionReport", http.MethodGet, "/admin/adoptions/report", AccessAdmin, false, handleFunctions.AdminAPI.AdoptionReport},
		{"MonthlyStats", http.MethodGet, "/admin/reports/monthly-stats/:year/:month", AccessAdmin, false, handleFunctions.AdminAPI.MonthlyStats},
		{"ListUsers", http.MethodGet, "/admin/users", AccessAdmin, false, handleFunctions.AdminAPI.ListUsers},
		{"CreateUser", http.MethodPost, "/admin/users", AccessAdmin, false, handleFunctions.AdminAPI.CreateUser},
		{"ToggleUserActive", http.MethodPut, "/admin/users/:id/toggle-active", AccessAdmin, false, handleFunctions.AdminAPI.ToggleUserActive},

		{"ListPets", http.MethodGet, "/pets", AccessPublic, true, handleFunctions.PetAPI.ListPets},
		{"ListSpecies", http.MethodGet, "/pets/species", AccessPublic, true, handleFunctions.PetAPI.ListSpecies},
		{"SearchBySpecies", http.MethodGet, "/pets/search-by-species/:species", AccessPublic, false, handleFunctions.PetAPI.SearchBySpecies},
		{"PopularPets", http.MethodGet, "/pets/popular", AccessPublic, false, handleFunctions.PetAPI.Popular},
		{"NewArrivals", http.MethodGet, "/pets/new-arrivals", AccessPublic, false, handleFunctions.PetAPI.NewArrivals},
		{"GetPet", http.MethodGet, "/pets/:id", AccessPublic, true, handleFunctions.PetAPI.GetPet},
		{"VetHistory", http.MethodGet, "/pets/:id/vet-history", AccessToken, true, handleFunctions.PetAPI.VetHistory},
		{"AddPet", http.MethodPost, "/pets", AccessAdmin, true, handleFunctions.PetAPI.AddPet},
		{"UpdatePet", http.MethodPut, "/pets/:id", AccessAdmin, true, handleFunctions.PetAPI.UpdatePet},
		{"DeletePet", http.MethodDelete, "/pets/:id", AccessAdmin, true, handleFunctions.PetAPI.DeletePet},

		{"ListAdopters", http.MethodGet, "/adopters", AccessAdmin, true, handleFunctions.AdopterAPI.ListAdopters},
		{"GetAdopter", http.MethodGet, "/adopters/:id", AccessToken, true, handleFunctions.AdopterAPI.GetAdopter},
		{"UpdateAdopter", http.MethodPut, "/adopters/:id", AccessToken, true, handleFunctions.AdopterAPI.UpdateAdopter},
		{"DeleteAdopter", http.MethodDelete, "/adopters/:id", AccessAdmin, true, handleFunctions.AdopterAPI.DeleteAdopter},
		{"AdopterAdoptions", http.MethodGet, "/adopters/:id/adoptions", AccessToken, true, handleFunctions.AdopterAPI.ListAdoptions},
		{"AdopterFavorites", http.MethodGet, "/adopters/:id/favorites", AccessToken, true, handleFunctions.AdopterAPI.ListFavorites},

		{"ListAdoptions", http.MethodGet, "/adoptions", AccessToken, true, handleFunctions.AdoptionAPI.ListAdoptions},
		{"AdoptionPolicy", http.MethodGet, "/adoptions/policy", AccessPublic, false, handleFunctions.AdoptionAPI.GetPolicy},
		{"GetAdoption", http.MethodGet, "/adoptions/:id", AccessToken, true, handleFunctions.AdoptionAPI.GetAdoption},
		{"ApplyAdoption", http.MethodPost, "/adoptions", AccessToken, false, handleFunctions.AdoptionAPI.Apply},
		{"EditAdoption", http.MethodPut, "/adoptions/:id", AccessToken, true, handleFunctions.AdoptionAPI.EditAdoption},
		{"DeleteAdoption", http.MethodDelete, "/adoptions/:id", AccessAdmin, true, handleFunctions.AdoptionAPI.DeleteAdoption},
		{"ApproveAdoption", http.MethodPut, "/adoptions/:id/approve", AccessAdmin, true, handleFunctions.AdoptionAPI.Approve},
		{"DenyAdoption", http.MethodPut, "/adoptions/:id/deny", AccessAdmin, true, handleFunctions.AdoptionAPI.Deny},
		{"CompleteAdoption", http.MethodPut, "/adoptions/:id/complete", AccessAdmin, true, handleFunctions.AdoptionAPI.Complete},
		{"ReturnAdoption", http.MethodPut, "/adoptions/:id/return", AccessAdmin, true, handleFunctions.AdoptionAPI.Return},
		{"CancelAdoption", http.MethodPut, "/adoptions/:id/cancel", AccessToken, true, handleFunctions.AdoptionAPI.Cancel},

		{"ListFavorites", http.MethodGet, "/favorites", AccessToken, false, handleFunctions.FavoriteAPI.ListFavorites},
		{"CheckFavorite", http.MethodGet, "/favorites/check/:adopterId/:petId", AccessToken, false, handleFunctions.FavoriteAPI.CheckFavorite},
		{"GetFavorite", http.MethodGet, "/favorites/:id", AccessToken, false, handleFunctions.FavoriteAPI.GetFavorite},
		{"AddFavorite", http.MethodPost, "/favorites", AccessToken, false, handleFunctions.FavoriteAPI.AddFavorite},
		{"UpdateFavorite", http.MethodPut, "/favorites/:id", AccessToken, false, handleFunctions.FavoriteAPI.UpdateNotes},
		{"DeleteFavorite", http.MethodDelete, "/favorites/:id", AccessToken, false, handleFunctions.FavoriteAPI.DeleteFavorite},
		{"DeleteFavoriteByPair", http.MethodDelete, "/favorites/adopter/:adopterId/pet/:petId", AccessToken, false, handleFunctions.FavoriteAPI.DeleteByPair},

		{"ListVisits", http.MethodGet, "/vet-visits", AccessToken, true, handleFunctions.VeterinaryAPI.ListVisits},
		{"GetVisit", http.MethodGet, "/vet-visits/:id", AccessToken, true, handleFunctions.VeterinaryAPI.GetVisit},
		{"VisitVaccinations", http.MethodGet, "/vet-visits/:id/vaccinations", AccessToken, true, handleFunctions.VeterinaryAPI.VisitVaccinations},
		{"CreateVisit", http.MethodPost, "/vet-visits", AccessAdmin, true, handleFunctions.VeterinaryAPI.CreateVisit},
		{"UpdateVisit", http.MethodPut, "/vet-visits/:id", AccessAdmin, true, handleFunctions.VeterinaryAPI.UpdateVisit},
		{"DeleteVisit", http.MethodDelete, "/vet-visits/:id", AccessAdmin, true, handleFunctions.VeterinaryAPI.DeleteVisit},

		{"ListVaccinations", http.MethodGet, "/vaccinations", AccessToken, true, handleFunctions.VeterinaryAPI.ListVaccinations},
		{"OverdueVaccinations", http.MethodGet, "/vaccinations/status/overdue", AccessToken, true, handleFunctions.VeterinaryAPI.OverdueVaccinations},
		{"GetVaccination", http.MethodGet, "/vaccinations/:id", AccessToken, true, handleFunctions.VeterinaryAPI.GetVaccination},
		{"CreateVaccination", http.MethodPost, "/vaccinations", AccessAdmin, true, handleFunctions.VeterinaryAPI.CreateVaccination},
		{"UpdateVaccination", http.MethodPut, "/vaccinations/:id", AccessAdmin, true, handleFunctions.VeterinaryAPI.UpdateVaccination},
		{"DeleteVaccination", http.MethodDelete, "/vaccinations/:id", AccessAdmin, true, handleFunctions.VeterinaryAPI.DeleteVaccination},
	}
}
