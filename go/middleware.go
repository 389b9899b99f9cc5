package adoptionserver

import (
	"context"
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	admindomain "github.com/Apurer/pet-adoption-center/internal/domains/admins/domain"
	"github.com/Apurer/pet-adoption-center/internal/platform/auth"
	"github.com/Apurer/pet-adoption-center/internal/shared/errkind"
	apierrors "github.com/Apurer/pet-adoption-center/internal/shared/errors"
)

const (
	// RequestIDHeader carries the correlation id of a request and its response.
	RequestIDHeader = "X-Request-ID"

	requestIDKey = apierrors.RequestIDKey
	claimsKey    = "auth.claims"
	adminKey     = "auth.admin"

	maxRequestIDLength = 128
)

var (
	errOwnerOnly   = fmt.Errorf("%w: access denied", errkind.ErrForbidden)
	errAdopterOnly = fmt.Errorf("%w: adopter token required", errkind.ErrForbidden)
	errAdminOnly   = fmt.Errorf("%w: access denied, admin only", errkind.ErrForbidden)
)

// TokenParser verifies a raw bearer token.
type TokenParser interface {
	Parse(raw string) (*auth.Claims, error)
}

// RevocationChecker reports whether a token id was revoked at logout.
type RevocationChecker interface {
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

// AdminAuthorizer resolves admin claims to an active admin account.
type AdminAuthorizer interface {
	Authorize(ctx context.Context, claims *auth.Claims) (*admindomain.Admin, error)
}

// Guard authenticates bearer tokens for protected routes.
type Guard struct {
	tokens  TokenParser
	revoked RevocationChecker
	admins  AdminAuthorizer
}

func NewGuard(tokens TokenParser, revoked RevocationChecker, admins AdminAuthorizer) *Guard {
	return &Guard{tokens: tokens, revoked: revoked, admins: admins}
}

// RequireToken accepts any valid adopter or admin token. Admin tokens must
// still belong to an active admin.
func (g *Guard) RequireToken() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := g.authenticate(c)
		if err != nil {
			respondError(c, err)
			return
		}
		if claims.IsAdmin {
			admin, err := g.admins.Authorize(c.Request.Context(), claims)
			if err != nil {
				respondError(c, err)
				return
			}
			c.Set(adminKey, admin)
		}
		c.Set(claimsKey, claims)
		c.Next()
	}
}

// RequireAdmin accepts only tokens of active admins.
func (g *Guard) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := g.authenticate(c)
		if err != nil {
			respondError(c, err)
			return
		}
		if !claims.IsAdmin {
			respondError(c, errAdminOnly)
			return
		}
		admin, err := g.admins.Authorize(c.Request.Context(), claims)
		if err != nil {
			respondError(c, err)
			return
		}
		c.Set(claimsKey, claims)
		c.Set(adminKey, admin)
		c.Next()
	}
}

func (g *Guard) authenticate(c *gin.Context) (*auth.Claims, error) {
	raw, ok := auth.BearerToken(c.GetHeader("Authorization"))
	if !ok {
		return nil, errkind.Wrap(errkind.ErrAuth, auth.ErrMissingToken)
	}
	claims, err := g.tokens.Parse(raw)
	if err != nil {
		return nil, errkind.Wrap(errkind.ErrAuth, err)
	}
	revoked, err := g.revoked.IsRevoked(c.Request.Context(), claims.RegisteredClaims.ID)
	if err != nil {
		return nil, err
	}
	if revoked {
		return nil, errkind.Wrap(errkind.ErrAuth, auth.ErrRevokedToken)
	}
	return claims, nil
}

// RequestID propagates the caller's X-Request-ID or assigns a new one.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := strings.TrimSpace(c.GetHeader(RequestIDHeader))
		if id == "" || len(id) > maxRequestIDLength {
			id = uuid.NewString()
		}
		c.Set(requestIDKey, id)
		c.Header(RequestIDHeader, id)
		c.Next()
	}
}

func claimsFrom(c *gin.Context) *auth.Claims {
	if v, ok := c.Get(claimsKey); ok {
		if claims, ok := v.(*auth.Claims); ok {
			return claims
		}
	}
	return nil
}

func adminFrom(c *gin.Context) *admindomain.Admin {
	if v, ok := c.Get(adminKey); ok {
		if admin, ok := v.(*admindomain.Admin); ok {
			return admin
		}
	}
	return nil
}

func isAdmin(c *gin.Context) bool {
	return adminFrom(c) != nil
}

// authorizeOwner lets admins through and adopters only for their own records.
func authorizeOwner(c *gin.Context, adopterID int64) error {
	if isAdmin(c) {
		return nil
	}
	claims := claimsFrom(c)
	if claims == nil || claims.IsAdmin || claims.ID != adopterID {
		return errOwnerOnly
	}
	return nil
}

// actingAdopter picks the adopter a write is made for: the token's own id for
// adopters, or the requested id for admins.
func actingAdopter(c *gin.Context, requested int64) (int64, error) {
	if isAdmin(c) {
		if requested <= 0 {
			return 0, fmt.Errorf("%w: adopterId is required", errkind.ErrValidation)
		}
		return requested, nil
	}
	claims := claimsFrom(c)
	if claims == nil || claims.IsAdmin {
		return 0, errAdopterOnly
	}
	return claims.ID, nil
}
