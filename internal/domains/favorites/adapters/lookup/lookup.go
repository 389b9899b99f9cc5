// Package lookup adapts the pets and adopters services to the favorites directories.
package lookup

import (
	"context"

	adopterports "github.com/Apurer/pet-adoption-center/internal/domains/adopters/ports"
	"github.com/Apurer/pet-adoption-center/internal/domains/favorites/domain"
	"github.com/Apurer/pet-adoption-center/internal/domains/favorites/ports"
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
		Age:      pet.Age,
		Gender:   string(pet.Gender),
		PhotoURL: pet.PhotoURL,
		Status:   string(pet.Status),
	}, nil
}

type Adopters struct {
	Service adopterports.Service
}

func (a Adopters) AdopterExists(ctx context.Context, id int64) error {
	_, err := a.Service.Get(ctx, id)
	return err
}
