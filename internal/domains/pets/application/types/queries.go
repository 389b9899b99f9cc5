package types

import (
	"github.com/Apurer/pet-adoption-center/internal/domains/pets/domain"
	"github.com/Apurer/pet-adoption-center/internal/shared/projection"
)

// PetProjection is a pet with its persistence timestamps.
type PetProjection = projection.Projection[*domain.Pet]

// ListPetsInput filters the catalogue. Empty fields do not filter.
type ListPetsInput struct {
	Species string
	Status  string
	Search  string
}

// PetIdentifier references a pet by its aggregate ID.
type PetIdentifier struct {
	ID int64
}
