package adoptionserver

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	adminmapper "github.com/Apurer/pet-adoption-center/internal/domains/admins/adapters/http/mapper"
	adminports "github.com/Apurer/pet-adoption-center/internal/domains/admins/ports"
	adoptermapper "github.com/Apurer/pet-adoption-center/internal/domains/adopters/adapters/http/mapper"
	adopterports "github.com/Apurer/pet-adoption-center/internal/domains/adopters/ports"
	"github.com/Apurer/pet-adoption-center/internal/platform/auth"
)

// Revoker blocks a token at logout.
type Revoker interface {
	Revoke(ctx context.Context, claims *auth.Claims) error
}

// AuthAPI serves adopter registration, login and session routes.
type AuthAPI struct {
	adopters adopterports.Service
	tokens   Revoker
}

func NewAuthAPI(adopters adopterports.Service, tokens Revoker) AuthAPI {
	return AuthAPI{adopters: adopters, tokens: tokens}
}

// Post /api/auth/register
// Register an adopter account
func (api *AuthAPI) Register(c *gin.Context) {
	var payload adoptermapper.RegisterRequest
	if !bindJSON(c, &payload) {
		return
	}
	session, err := api.adopters.Register(c.Request.Context(), adoptermapper.ToRegisterInput(payload))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, adoptermapper.FromSession("Registration successful", session))
}

// Post /api/auth/login
// Log an adopter in
func (api *AuthAPI) Login(c *gin.Context) {
	var payload adoptermapper.LoginRequest
	if !bindJSON(c, &payload) {
		return
	}
	session, err := api.adopters.Login(c.Request.Context(), payload.Email, payload.Password)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, adoptermapper.FromSession("Login successful", session))
}

// Get /api/auth/me
// Current adopter profile
func (api *AuthAPI) Me(c *gin.Context) {
	claims := claimsFrom(c)
	if claims == nil || claims.IsAdmin {
		respondError(c, errAdopterOnly)
		return
	}
	adopter, err := api.adopters.Get(c.Request.Context(), claims.ID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, adoptermapper.FromDomain(adopter))
}

// Post /api/auth/logout
// Revoke the presented token
func (api *AuthAPI) Logout(c *gin.Context) {
	logout(c, api.tokens)
}

// AdminAuthAPI serves staff login and session routes.
type AdminAuthAPI struct {
	admins adminports.Service
	tokens Revoker
}

func NewAdminAuthAPI(admins adminports.Service, tokens Revoker) AdminAuthAPI {
	return AdminAuthAPI{admins: admins, tokens: tokens}
}

// Post /api/admin/auth/login
// Log an admin in
func (api *AdminAuthAPI) Login(c *gin.Context) {
	var payload adoptermapper.LoginRequest
	if !bindJSON(c, &payload) {
		return
	}
	session, err := api.admins.Login(c.Request.Context(), payload.Email, payload.Password)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, adminmapper.FromSession(session))
}

// Get /api/admin/auth/me
// Current admin account
func (api *AdminAuthAPI) Me(c *gin.Context) {
	admin := adminFrom(c)
	if admin == nil {
		respondError(c, adminports.ErrNotAdmin)
		return
	}
	c.JSON(http.StatusOK, adminmapper.FromDomain(admin))
}

// Post /api/admin/auth/logout
// Revoke the presented admin token
func (api *AdminAuthAPI) Logout(c *gin.Context) {
	logout(c, api.tokens)
}

func logout(c *gin.Context, tokens Revoker) {
	if err := tokens.Revoke(c.Request.Context(), claimsFrom(c)); err != nil {
		respondError(c, err)
		return
	}
	respondMessage(c, "Logged out")
}
