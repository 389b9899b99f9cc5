package ports

import (
	"context"

	adopterports "github.com/Apurer/pet-adoption-center/internal/domains/adopters/ports"
	adoptiondomain "github.com/Apurer/pet-adoption-center/internal/domains/adoptions/domain"
	adoptionports "github.com/Apurer/pet-adoption-center/internal/domains/adoptions/ports"
	pettypes "github.com/Apurer/pet-adoption-center/internal/domains/pets/application/types"
	vetdomain "github.com/Apurer/pet-adoption-center/internal/domains/veterinary/domain"
)

// PetSource lists the catalogue. The pets service satisfies it.
type PetSource interface {
	List(ctx context.Context, input pettypes.ListPetsInput) ([]*pettypes.PetProjection, error)
}

// AdopterSource lists registered adopters. The adopters service satisfies it.
type AdopterSource interface {
	List(ctx context.Context) ([]adopterports.Summary, error)
}

// AdoptionSource lists adoptions newest first. The adoptions service satisfies it.
type AdoptionSource interface {
	List(ctx context.Context, input adoptionports.ListInput) ([]adoptiondomain.View, error)
}

// VeterinarySource totals visits and vaccinations. The veterinary service satisfies it.
type VeterinarySource interface {
	Counts(ctx context.Context) (vetdomain.Counts, error)
}
