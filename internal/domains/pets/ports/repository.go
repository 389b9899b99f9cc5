package ports

import (
	"context"
	"fmt"

	"github.com/Apurer/pet-adoption-center/internal/domains/pets/domain"
	"github.com/Apurer/pet-adoption-center/internal/shared/errkind"
	"github.com/Apurer/pet-adoption-center/internal/shared/projection"
)

var ErrNotFound = fmt.Errorf("pet %w", errkind.ErrNotFound)

// Filter narrows List. Search matches name or breed, case-insensitively.
type Filter struct {
	Species string
	Status  domain.Status
	Search  string
}

type Repository interface {
	Save(ctx context.Context, pet *domain.Pet) (*projection.Projection[*domain.Pet], error)
	// Update loads the pet, applies mutate and persists the result atomically.
	Update(ctx context.Context, id int64, mutate func(*domain.Pet) error) (*projection.Projection[*domain.Pet], error)
	GetByID(ctx context.Context, id int64) (*projection.Projection[*domain.Pet], error)
	Delete(ctx context.Context, id int64) error
	// List returns matching pets, most recent arrival first.
	List(ctx context.Context, filter Filter) ([]*projection.Projection[*domain.Pet], error)
	Species(ctx context.Context) ([]string, error)
}

// FavoriteCounter reports how many adopters favorited each pet.
type FavoriteCounter interface {
	CountByPet(ctx context.Context) (map[int64]int, error)
}

// Dependent removes rows that reference a pet before the pet is deleted.
// Stores with foreign key cascades do not need one.
type Dependent interface {
	DeleteByPet(ctx context.Context, petID int64) error
}
