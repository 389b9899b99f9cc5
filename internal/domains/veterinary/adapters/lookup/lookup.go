// Package lookup adapts the pets service to the veterinary pet directory.
package lookup

import (
	"context"

	pettypes "github.com/Apurer/pet-adoption-center/internal/domains/pets/application/types"
	petports "github.com/Apurer/pet-adoption-center/internal/domains/pets/ports"
	"github.com/Apurer/pet-adoption-center/internal/domains/veterinary/domain"
	"github.com/Apurer/pet-adoption-center/internal/domains/veterinary/ports"
)

var _ ports.PetDirectory = Pets{}

type Pets struct {
	Service petports.Service
}

func (p Pets) PetSummary(ctx context.Context, id int64) (domain.PetSummary, error) {
	proj, err := p.Service.GetByID(ctx, pettypes.PetIdentifier{ID: id})
	if err != nil {
		return domain.PetSummary{}, err
	}
	return domain.PetSummary{ID: proj.Entity.ID, Name: proj.Entity.Name, Species: proj.Entity.Species}, nil
}
