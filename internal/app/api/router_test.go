package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	adoptionserver "github.com/Apurer/pet-adoption-center/go"
	adoptiondomain "github.com/Apurer/pet-adoption-center/internal/domains/adoptions/domain"
	platformobservability "github.com/Apurer/pet-adoption-center/internal/platform/observability"
)

const (
	adminEmail    = "director@shelter.test"
	adminPassword = "supersecret"
)

type harness struct {
	t      *testing.T
	engine *gin.Engine
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	gin.SetMode(gin.TestMode)
	cfg := Config{JWTSecret: "test-secret", Policy: adoptiondomain.DefaultPolicy()}
	services, err := BuildServices(nil, cfg, nil)
	require.NoError(t, err)
	seeded, err := services.Admins.EnsureBootstrap(context.Background(), adminEmail, adminPassword)
	require.NoError(t, err)
	require.True(t, seeded)
	engine := NewEngine("test", services, nil, platformobservability.NewHTTPMetrics("test"))
	return &harness{t: t, engine: engine}
}

func (h *harness) do(method, path, token string, body any) *httptest.ResponseRecorder {
	h.t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(h.t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	h.engine.ServeHTTP(rec, req)
	return rec
}

func (h *harness) decode(rec *httptest.ResponseRecorder, dest any) {
	h.t.Helper()
	require.NoError(h.t, json.Unmarshal(rec.Body.Bytes(), dest), rec.Body.String())
}

func (h *harness) adminToken() string {
	rec := h.do(http.MethodPost, "/api/admin/auth/login", "", gin.H{"email": adminEmail, "password": adminPassword})
	require.Equal(h.t, http.StatusOK, rec.Code, rec.Body.String())
	var body struct {
		Token string `json:"token"`
	}
	h.decode(rec, &body)
	return body.Token
}

func (h *harness) register(email string) (int64, string) {
	rec := h.do(http.MethodPost, "/api/auth/register", "", gin.H{
		"email":     email,
		"password":  "adopt-me",
		"fullName":  "Sam Rivera",
		"contactNo": "555-0100",
	})
	require.Equal(h.t, http.StatusCreated, rec.Code, rec.Body.String())
	var body struct {
		Token string `json:"token"`
		User  struct {
			ID int64 `json:"id"`
		} `json:"user"`
	}
	h.decode(rec, &body)
	return body.User.ID, body.Token
}

func (h *harness) createPet(token, name string) int64 {
	rec := h.do(http.MethodPost, "/api/pets", token, gin.H{"name": name, "species": "Dog", "age": 3})
	require.Equal(h.t, http.StatusCreated, rec.Code, rec.Body.String())
	var body struct {
		ID int64 `json:"id"`
	}
	h.decode(rec, &body)
	return body.ID
}

func (h *harness) petStatus(id int64) string {
	rec := h.do(http.MethodGet, fmt.Sprintf("/api/pets/%d", id), "", nil)
	require.Equal(h.t, http.StatusOK, rec.Code, rec.Body.String())
	var body struct {
		Status string `json:"status"`
	}
	h.decode(rec, &body)
	return body.Status
}

func TestHealthAndRequestID(t *testing.T) {
	h := newHarness(t)

	rec := h.do(http.MethodGet, "/api/health", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"OK","message":"Pet Adoption Center API is running"}`, rec.Body.String())
	assert.NotEmpty(t, rec.Header().Get(adoptionserver.RequestIDHeader))

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	req.Header.Set(adoptionserver.RequestIDHeader, "trace-me")
	rec = httptest.NewRecorder()
	h.engine.ServeHTTP(rec, req)
	assert.Equal(t, "trace-me", rec.Header().Get(adoptionserver.RequestIDHeader))
}

func TestMetricsEndpointCountsRequests(t *testing.T) {
	h := newHarness(t)
	h.do(http.MethodGet, "/api/health", "", nil)

	rec := h.do(http.MethodGet, "/metrics", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `route="/api/health"`)
}

func TestProtectedRoutesRequireTokens(t *testing.T) {
	h := newHarness(t)
	_, adopterToken := h.register("sam@example.com")

	tests := []struct {
		name   string
		method string
		path   string
		token  string
		want   int
	}{
		{"public pet list", http.MethodGet, "/api/pets", "", http.StatusOK},
		{"anonymous apply", http.MethodPost, "/api/adoptions", "", http.StatusUnauthorized},
		{"garbage token", http.MethodGet, "/api/auth/me", "not-a-jwt", http.StatusUnauthorized},
		{"adopter creates pet", http.MethodPost, "/api/pets", adopterToken, http.StatusForbidden},
		{"adopter lists adopters", http.MethodGet, "/api/adopters", adopterToken, http.StatusForbidden},
		{"adopter opens dashboard", http.MethodGet, "/api/admin/dashboard/stats", adopterToken, http.StatusForbidden},
		{"adopter uses admin mirror", http.MethodGet, "/api/admin/pets", adopterToken, http.StatusForbidden},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := h.do(tt.method, tt.path, tt.token, gin.H{})
			assert.Equal(t, tt.want, rec.Code, rec.Body.String())
		})
	}
}

func TestAdopterCannotReadAnotherProfile(t *testing.T) {
	h := newHarness(t)
	firstID, _ := h.register("first@example.com")
	_, secondToken := h.register("second@example.com")

	rec := h.do(http.MethodGet, fmt.Sprintf("/api/adopters/%d", firstID), secondToken, nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "application/problem+json", rec.Header().Get("Content-Type"))

	rec = h.do(http.MethodGet, fmt.Sprintf("/api/adopters/%d", firstID), h.adminToken(), nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAdoptionLifecycleOverHTTP(t *testing.T) {
	h := newHarness(t)
	admin := h.adminToken()
	petID := h.createPet(admin, "Biscuit")
	_, sam := h.register("sam@example.com")
	_, alex := h.register("alex@example.com")

	rec := h.do(http.MethodPost, "/api/adoptions", sam, gin.H{"petId": petID, "adoptionFee": 75})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var adoption struct {
		ID             int64  `json:"id"`
		Status         string `json:"status"`
		ApprovalStatus string `json:"approvalStatus"`
		PetName        string `json:"petName"`
	}
	h.decode(rec, &adoption)
	assert.Equal(t, "Applied", adoption.Status)
	assert.Equal(t, "Pending", adoption.ApprovalStatus)
	assert.Equal(t, "Biscuit", adoption.PetName)
	assert.Equal(t, "Reserved", h.petStatus(petID))

	rec = h.do(http.MethodPost, "/api/adoptions", alex, gin.H{"petId": petID})
	assert.Equal(t, http.StatusConflict, rec.Code, rec.Body.String())

	rec = h.do(http.MethodGet, fmt.Sprintf("/api/adoptions/%d", adoption.ID), alex, nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = h.do(http.MethodPut, fmt.Sprintf("/api/adoptions/%d/approve", adoption.ID), sam, nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = h.do(http.MethodPut, fmt.Sprintf("/api/admin/adoptions/%d/approve", adoption.ID), admin, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	rec = h.do(http.MethodPut, fmt.Sprintf("/api/adoptions/%d/complete", adoption.ID), admin, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	h.decode(rec, &adoption)
	assert.Equal(t, "Completed", adoption.Status)
	assert.Equal(t, "Adopted", h.petStatus(petID))

	rec = h.do(http.MethodPut, fmt.Sprintf("/api/adoptions/%d/cancel", adoption.ID), sam, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code, rec.Body.String())

	rec = h.do(http.MethodGet, "/api/admin/dashboard/stats", admin, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var stats struct {
		Pets struct {
			Adopted int `json:"adopted"`
		} `json:"pets"`
		Adoptions struct {
			Completed int `json:"completed"`
		} `json:"adoptions"`
	}
	h.decode(rec, &stats)
	assert.Equal(t, 1, stats.Pets.Adopted)
	assert.Equal(t, 1, stats.Adoptions.Completed)
}

func TestAdminReportsOverHTTP(t *testing.T) {
	h := newHarness(t)
	admin := h.adminToken()
	_, sam := h.register("sam@example.com")
	done := h.createPet(admin, "Biscuit")
	waiting := h.createPet(admin, "Pepper")

	rec := h.do(http.MethodPost, "/api/adoptions", sam, gin.H{"petId": done, "adoptionFee": 120})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var adoption struct {
		ID int64 `json:"id"`
	}
	h.decode(rec, &adoption)
	for _, action := range []string{"approve", "complete"} {
		rec = h.do(http.MethodPut, fmt.Sprintf("/api/adoptions/%d/%s", adoption.ID, action), admin, nil)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	}
	rec = h.do(http.MethodPost, "/api/adoptions", sam, gin.H{"petId": waiting, "adoptionFee": 40})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = h.do(http.MethodGet, "/api/admin/adoptions/pending-applications", admin, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var pending []struct {
		PetName string `json:"petName"`
	}
	h.decode(rec, &pending)
	require.Len(t, pending, 1)
	assert.Equal(t, "Pepper", pending[0].PetName)

	rec = h.do(http.MethodGet, "/api/admin/adoptions/report", admin, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var report []struct {
		AdoptionID int64  `json:"adoptionId"`
		PetName    string `json:"petName"`
		FullName   string `json:"fullName"`
		Status     string `json:"status"`
	}
	h.decode(rec, &report)
	require.Len(t, report, 2)
	assert.Equal(t, "Sam Rivera", report[0].FullName)

	now := time.Now().UTC()
	rec = h.do(http.MethodGet, fmt.Sprintf("/api/admin/reports/monthly-stats/%d/%d", now.Year(), int(now.Month())), admin, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var stats struct {
		TotalAdoptions int     `json:"totalAdoptions"`
		Completed      int     `json:"completed"`
		Pending        int     `json:"pending"`
		TotalRevenue   float64 `json:"totalRevenue"`
		AvgFee         float64 `json:"avgFee"`
	}
	h.decode(rec, &stats)
	assert.Equal(t, 2, stats.TotalAdoptions)
	assert.Equal(t, 1, stats.Completed)
	assert.Equal(t, 1, stats.Pending)
	assert.InDelta(t, 120.0, stats.TotalRevenue, 0.001)
	assert.InDelta(t, 120.0, stats.AvgFee, 0.001)

	rec = h.do(http.MethodGet, "/api/admin/reports/monthly-stats/2024/13", admin, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code, rec.Body.String())
	rec = h.do(http.MethodGet, "/api/admin/reports/monthly-stats/2024/june", admin, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code, rec.Body.String())

	for _, path := range []string{
		"/api/admin/adoptions/pending-applications",
		"/api/admin/adoptions/report",
		"/api/admin/reports/monthly-stats/2024/6",
	} {
		rec = h.do(http.MethodGet, path, sam, nil)
		assert.Equal(t, http.StatusForbidden, rec.Code, path)
	}
}

func TestFavoritesOverHTTP(t *testing.T) {
	h := newHarness(t)
	admin := h.adminToken()
	petID := h.createPet(admin, "Mochi")
	samID, sam := h.register("sam@example.com")

	rec := h.do(http.MethodPost, "/api/favorites", sam, gin.H{"petId": petID, "notes": "so fluffy"})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = h.do(http.MethodPost, "/api/favorites", sam, gin.H{"petId": petID})
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = h.do(http.MethodGet, fmt.Sprintf("/api/favorites/check/%d/%d", samID, petID), sam, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var check struct {
		IsFavorited bool `json:"isFavorited"`
	}
	h.decode(rec, &check)
	assert.True(t, check.IsFavorited)

	rec = h.do(http.MethodGet, "/api/pets/popular", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var popular []struct {
		ID            int64 `json:"id"`
		FavoriteCount int   `json:"favoriteCount"`
	}
	h.decode(rec, &popular)
	require.Len(t, popular, 1)
	assert.Equal(t, 1, popular[0].FavoriteCount)

	rec = h.do(http.MethodDelete, fmt.Sprintf("/api/favorites/adopter/%d/pet/%d", samID, petID), sam, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	rec = h.do(http.MethodDelete, fmt.Sprintf("/api/favorites/adopter/%d/pet/%d", samID, petID), sam, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestLogoutRevokesToken(t *testing.T) {
	h := newHarness(t)
	_, sam := h.register("sam@example.com")

	require.Equal(t, http.StatusOK, h.do(http.MethodGet, "/api/auth/me", sam, nil).Code)
	require.Equal(t, http.StatusOK, h.do(http.MethodPost, "/api/auth/logout", sam, nil).Code)

	rec := h.do(http.MethodGet, "/api/auth/me", sam, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
