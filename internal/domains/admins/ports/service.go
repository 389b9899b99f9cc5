package ports

import (
	"context"
	"time"

	"github.com/Apurer/pet-adoption-center/internal/domains/admins/domain"
	"github.com/Apurer/pet-adoption-center/internal/platform/auth"
)

// CreateInput describes a new staff account.
type CreateInput struct {
	Email    string
	Password string
	FullName string
	Role     string
}

// Session is a signed admin token together with its account.
type Session struct {
	Token     string
	TokenID   string
	ExpiresAt time.Time
	Admin     *domain.Admin
}

// Service exposes admin account use cases to adapters.
type Service interface {
	Login(ctx context.Context, email, password string) (*Session, error)
	Me(ctx context.Context, id int64) (*domain.Admin, error)
	// Authorize resolves token claims to an active admin or fails with a forbidden error.
	Authorize(ctx context.Context, claims *auth.Claims) (*domain.Admin, error)
	List(ctx context.Context) ([]*domain.Admin, error)
	Create(ctx context.Context, actor *domain.Admin, input CreateInput) (*domain.Admin, error)
	ToggleActive(ctx context.Context, actor *domain.Admin, id int64) (*domain.Admin, error)
	// EnsureBootstrap seeds a super admin when no admin exists. It reports whether one was created.
	EnsureBootstrap(ctx context.Context, email, password string) (bool, error)
}
