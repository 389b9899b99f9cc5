package ports

import (
	"context"

	pettypes "github.com/Apurer/pet-adoption-center/internal/domains/pets/application/types"
	"github.com/Apurer/pet-adoption-center/internal/domains/pets/domain"
)

// Service defines the pets use cases exposed to adapters (inbound/driving port).
type Service interface {
	AddPet(ctx context.Context, input pettypes.AddPetInput) (*pettypes.PetProjection, error)
	UpdatePet(ctx context.Context, input pettypes.UpdatePetInput) (*pettypes.PetProjection, error)
	GetByID(ctx context.Context, input pettypes.PetIdentifier) (*pettypes.PetProjection, error)
	Delete(ctx context.Context, input pettypes.PetIdentifier) error
	List(ctx context.Context, input pettypes.ListPetsInput) ([]*pettypes.PetProjection, error)
	Species(ctx context.Context) ([]string, error)
	AvailableBySpecies(ctx context.Context, species string) ([]*pettypes.PetProjection, error)
	Popular(ctx context.Context) ([]domain.RankedPet, error)
	NewArrivals(ctx context.Context) ([]*domain.Pet, error)
}
