// Package lookup adapts the pets and adopters services to the directories
// adoption views are joined with.
package lookup

import (
	"context"

	adopterports "github.com/Apurer/pet-adoption-center/internal/domains/adopters/ports"
	"github.com/Apurer/pet-adoption-center/internal/domains/adoptions/domain"
	"github.com/Apurer/pet-adoption-center/internal/domains/adoptions/ports"
	pettypes "github.com/Apurer/pet-adoption-center/internal/domains/pets/application/types"
	petports "github.com/Apurer/pet-adoption-center/internal/domains/pets/ports"
)

var (
	_ ports.PetDirectory     = Pets{}
	_ ports.AdopterDirectory = Adopters{}
)

type Pets struct {
	Service petports.Service
}

func (p Pets) PetSummary(ctx context.Context, id int64) (domain.PetSummary, error) {
	proj, err := p.Service.GetByID(ctx, pettypes.PetIdentifier{ID: id})
	if err != nil {
		return domain.PetSummary{}, err
	}
	pet := proj.Entity
	return domain.PetSummary{
		ID:       pet.ID,
		Name:     pet.Name,
		Species:  pet.Species,
		Breed:    pet.Breed,
		PhotoURL: pet.PhotoURL,
	}, nil
}

type Adopters struct {
	Service adopterports.Service
}

func (a Adopters) AdopterSummary(ctx context.Context, id int64) (domain.AdopterSummary, error) {
	adopter, err := a.Service.Get(ctx, id)
	if err != nil {
		return domain.AdopterSummary{}, err
	}
	return domain.AdopterSummary{
		ID:              adopter.ID,
		FullName:        adopter.FullName,
		Email:           adopter.Email,
		ContactNo:       adopter.ContactNo,
		Address:         adopter.Address,
		HousingType:     string(adopter.HousingType),
		ExperienceLevel: string(adopter.ExperienceLevel),
	}, nil
}
