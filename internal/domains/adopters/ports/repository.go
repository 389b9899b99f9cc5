package ports

import (
	"context"
	"fmt"

	"github.com/Apurer/pet-adoption-center/internal/domains/adopters/domain"
	"github.com/Apurer/pet-adoption-center/internal/shared/errkind"
)

var (
	ErrNotFound           = fmt.Errorf("adopter %w", errkind.ErrNotFound)
	ErrDuplicateEmail     = fmt.Errorf("%w: email already registered", errkind.ErrConflict)
	ErrInvalidCredentials = fmt.Errorf("%w: invalid email or password", errkind.ErrAuth)
)

type Repository interface {
	// Create inserts a new adopter and fails with ErrDuplicateEmail when the email is taken.
	Create(ctx context.Context, adopter *domain.Adopter) (*domain.Adopter, error)
	// Update applies mutate under a row lock; a changed email must stay unique.
	Update(ctx context.Context, id int64, mutate func(*domain.Adopter) error) (*domain.Adopter, error)
	GetByID(ctx context.Context, id int64) (*domain.Adopter, error)
	GetByEmail(ctx context.Context, email string) (*domain.Adopter, error)
	// List returns every adopter, newest first.
	List(ctx context.Context) ([]*domain.Adopter, error)
	Delete(ctx context.Context, id int64) error
}
