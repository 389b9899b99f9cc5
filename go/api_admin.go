package adoptionserver

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	adminmapper "github.com/Apurer/pet-adoption-center/internal/domains/admins/adapters/http/mapper"
	adminports "github.com/Apurer/pet-adoption-center/internal/domains/admins/ports"
	adoptionmapper "github.com/Apurer/pet-adoption-center/internal/domains/adoptions/adapters/http/mapper"
	adoptionports "github.com/Apurer/pet-adoption-center/internal/domains/adoptions/ports"
	dashboardmapper "github.com/Apurer/pet-adoption-center/internal/domains/dashboard/adapters/http/mapper"
	dashboardports "github.com/Apurer/pet-adoption-center/internal/domains/dashboard/ports"
)

// AdminAPI serves the back office reads and staff account management.
type AdminAPI struct {
	admins    adminports.Service
	dashboard dashboardports.Service
	adoptions adoptionports.Service
}

func NewAdminAPI(admins adminports.Service, dashboard dashboardports.Service, adoptions adoptionports.Service) AdminAPI {
	return AdminAPI{admins: admins, dashboard: dashboard, adoptions: adoptions}
}

// Get /api/admin/dashboard/stats
// Totals per pet status, adoption status and vet record
func (api *AdminAPI) DashboardStats(c *gin.Context) {
	stats, err := api.dashboard.Stats(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dashboardmapper.FromStats(stats))
}

// Get /api/admin/dashboard/activity
// The most recent adoptions, pets and adopters
func (api *AdminAPI) DashboardActivity(c *gin.Context) {
	activity, err := api.dashboard.Activity(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dashboardmapper.FromActivity(activity))
}

// Get /api/admin/adoptions/pending-applications
// Open applications awaiting a decision, newest first
func (api *AdminAPI) PendingApplications(c *gin.Context) {
	views, err := api.adoptions.PendingApplications(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, adoptionmapper.FromViews(views))
}

// Get /api/admin/adoptions/report
// Every adoption joined with pet and adopter details
func (api *AdminAPI) AdoptionReport(c *gin.Context) {
	views, err := api.adoptions.Report(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, adoptionmapper.FromReport(views))
}

// Get /api/admin/reports/monthly-stats/:year/:month
// Status counts and fee totals for applications filed in a month
func (api *AdminAPI) MonthlyStats(c *gin.Context) {
	year, ok := parseIntParam(c, "year")
	if !ok {
		return
	}
	month, ok := parseIntParam(c, "month")
	if !ok {
		return
	}
	stats, err := api.adoptions.MonthlyStats(c.Request.Context(), year, month)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, adoptionmapper.FromMonthlyStats(stats))
}

func parseIntParam(c *gin.Context, name string) (int, bool) {
	n, err := strconv.Atoi(c.Param(name))
	if err != nil {
		respondBadRequest(c, fmt.Errorf("path parameter %s must be an integer", name))
		return 0, false
	}
	return n, true
}

// Get /api/admin/users
// List staff accounts
func (api *AdminAPI) ListUsers(c *gin.Context) {
	list, err := api.admins.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, adminmapper.FromDomainList(list))
}

// Post /api/admin/users
// Create a staff account. Super admins only.
func (api *AdminAPI) CreateUser(c *gin.Context) {
	var payload adminmapper.CreateRequest
	if !bindJSON(c, &payload) {
		return
	}
	created, err := api.admins.Create(c.Request.Context(), adminFrom(c), payload.ToInput())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, adminmapper.FromDomain(created))
}

// Put /api/admin/users/:id/toggle-active
// Activate or deactivate another staff account. Super admins only.
func (api *AdminAPI) ToggleUserActive(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	updated, err := api.admins.ToggleActive(c.Request.Context(), adminFrom(c), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, adminmapper.FromDomain(updated))
}
