package ports

import (
	"context"

	"github.com/Apurer/pet-adoption-center/internal/domains/favorites/domain"
)

type AddInput struct {
	AdopterID int64
	PetID     int64
	Notes     string
}

// CheckResult answers whether an adopter has favorited a pet.
type CheckResult struct {
	Favorited bool
	Favorite  *domain.Favorite
}

// Service exposes favorite use cases to adapters.
type Service interface {
	List(ctx context.Context, adopterID int64) ([]domain.View, error)
	Get(ctx context.Context, id int64) (*domain.View, error)
	Add(ctx context.Context, input AddInput) (*domain.View, error)
	UpdateNotes(ctx context.Context, id int64, notes string) (*domain.View, error)
	Remove(ctx context.Context, id int64) error
	RemoveByPair(ctx context.Context, adopterID, petID int64) error
	Check(ctx context.Context, adopterID, petID int64) (*CheckResult, error)
	CountByPet(ctx context.Context) (map[int64]int, error)
	CountByAdopter(ctx context.Context) (map[int64]int, error)
	DeleteByPet(ctx context.Context, petID int64) error
	DeleteByAdopter(ctx context.Context, adopterID int64) error
}
