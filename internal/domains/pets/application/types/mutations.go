package types

import "time"

// PetMutationInput carries the pet fields a caller may set. Nil fields are left untouched.
type PetMutationInput struct {
	Name           *string
	Species        *string
	Breed          *string
	Age            *int
	Gender         *string
	Color          *string
	DateArrived    *time.Time
	SpayedNeutered *bool
	Temperament    *string
	SpecialNeeds   *string
	PhotoURL       *string
	Status         *string
}

// AddPetInput captures the request to add a new pet into the catalogue.
type AddPetInput struct {
	PetMutationInput
}

// UpdatePetInput applies a partial update to an existing pet.
type UpdatePetInput struct {
	ID int64
	PetMutationInput
}
