package ports

import (
	"context"
	"fmt"

	"github.com/Apurer/pet-adoption-center/internal/domains/admins/domain"
	"github.com/Apurer/pet-adoption-center/internal/platform/auth"
	"github.com/Apurer/pet-adoption-center/internal/shared/errkind"
)

var (
	ErrNotFound           = fmt.Errorf("admin %w", errkind.ErrNotFound)
	ErrDuplicateEmail     = fmt.Errorf("%w: email already exists", errkind.ErrConflict)
	ErrInvalidCredentials = fmt.Errorf("%w: invalid email or password", errkind.ErrAuth)
	ErrInactive           = fmt.Errorf("%w: admin account is inactive", errkind.ErrForbidden)
	ErrNotAdmin           = fmt.Errorf("%w: access denied, admin only", errkind.ErrForbidden)
	ErrSuperAdminOnly     = fmt.Errorf("%w: super admin access required", errkind.ErrForbidden)
)

type Repository interface {
	Create(ctx context.Context, admin *domain.Admin) (*domain.Admin, error)
	Update(ctx context.Context, id int64, mutate func(*domain.Admin) error) (*domain.Admin, error)
	GetByID(ctx context.Context, id int64) (*domain.Admin, error)
	GetByEmail(ctx context.Context, email string) (*domain.Admin, error)
	// List returns admins in creation order.
	List(ctx context.Context) ([]*domain.Admin, error)
	Count(ctx context.Context) (int64, error)
}

// PasswordHasher hashes and verifies plain-text passwords.
type PasswordHasher interface {
	Hash(plain string) (string, error)
	Compare(hash, plain string) bool
}

// TokenIssuer signs admin bearer tokens.
type TokenIssuer interface {
	IssueAdmin(id int64, email string) (auth.Token, error)
}
