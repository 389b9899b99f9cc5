package ports

import (
	"context"
	"fmt"

	"github.com/Apurer/pet-adoption-center/internal/domains/favorites/domain"
	"github.com/Apurer/pet-adoption-center/internal/shared/errkind"
)

var (
	ErrNotFound        = fmt.Errorf("favorite %w", errkind.ErrNotFound)
	ErrDuplicate       = fmt.Errorf("%w: pet is already in favorites", errkind.ErrConflict)
	ErrPetNotFound     = fmt.Errorf("pet %w", errkind.ErrNotFound)
	ErrAdopterNotFound = fmt.Errorf("adopter %w", errkind.ErrNotFound)
)

type Repository interface {
	// Create inserts a favorite and fails with ErrDuplicate when the pair exists.
	Create(ctx context.Context, f *domain.Favorite) (*domain.Favorite, error)
	UpdateNotes(ctx context.Context, id int64, notes string) (*domain.Favorite, error)
	GetByID(ctx context.Context, id int64) (*domain.Favorite, error)
	GetByPair(ctx context.Context, adopterID, petID int64) (*domain.Favorite, error)
	// ListByAdopter returns the adopter's favorites, most recently added first.
	ListByAdopter(ctx context.Context, adopterID int64) ([]*domain.Favorite, error)
	Delete(ctx context.Context, id int64) error
	DeleteByPair(ctx context.Context, adopterID, petID int64) error
	DeleteByPet(ctx context.Context, petID int64) error
	DeleteByAdopter(ctx context.Context, adopterID int64) error
	CountByPet(ctx context.Context) (map[int64]int, error)
	CountByAdopter(ctx context.Context) (map[int64]int, error)
}

// PetDirectory resolves the pet shown beside a favorite.
type PetDirectory interface {
	PetSummary(ctx context.Context, id int64) (domain.PetSummary, error)
}

// AdopterDirectory confirms an adopter exists.
type AdopterDirectory interface {
	AdopterExists(ctx context.Context, id int64) error
}
