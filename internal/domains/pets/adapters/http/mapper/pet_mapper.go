package mapper

import (
	"time"

	petstypes "github.com/Apurer/pet-adoption-center/internal/domains/pets/application/types"
	"github.com/Apurer/pet-adoption-center/internal/domains/pets/domain"
	"github.com/Apurer/pet-adoption-center/internal/shared/dates"
)

// MutationPet captures inbound payloads for create/update flows while preserving field presence.
type MutationPet struct {
	Name           *string `json:"name,omitempty"`
	Species        *string `json:"species,omitempty"`
	Breed          *string `json:"breed,omitempty"`
	Age            *int    `json:"age,omitempty"`
	Gender         *string `json:"gender,omitempty"`
	Color          *string `json:"color,omitempty"`
	DateArrived    *string `json:"dateArrived,omitempty"`
	SpayedNeutered *bool   `json:"spayedNeutered,omitempty"`
	Temperament    *string `json:"temperament,omitempty"`
	SpecialNeeds   *string `json:"specialNeeds,omitempty"`
	PhotoURL       *string `json:"photoUrl,omitempty"`
	Status         *string `json:"status,omitempty"`
}

// Pet is the HTTP representation of a pet.
type Pet struct {
	ID             int64      `json:"id"`
	Name           string     `json:"name"`
	Species        string     `json:"species"`
	Breed          string     `json:"breed,omitempty"`
	Age            int        `json:"age"`
	Gender         string     `json:"gender"`
	Color          string     `json:"color,omitempty"`
	DateArrived    string     `json:"dateArrived"`
	SpayedNeutered bool       `json:"spayedNeutered"`
	Temperament    string     `json:"temperament,omitempty"`
	SpecialNeeds   string     `json:"specialNeeds,omitempty"`
	PhotoURL       string     `json:"photoUrl,omitempty"`
	Status         string     `json:"status"`
	CreatedAt      *time.Time `json:"createdAt,omitempty"`
	UpdatedAt      *time.Time `json:"updatedAt,omitempty"`
}

// PopularPet is a pet on the popular list.
type PopularPet struct {
	Pet
	FavoriteCount int `json:"favoriteCount"`
	Rank          int `json:"petRank"`
}

// ToMutationInput converts a mutation payload into an application mutation input.
func ToMutationInput(model MutationPet) (petstypes.PetMutationInput, error) {
	arrived, err := dates.ParsePtr(model.DateArrived)
	if err != nil {
		return petstypes.PetMutationInput{}, err
	}
	return petstypes.PetMutationInput{
		Name:           model.Name,
		Species:        model.Species,
		Breed:          model.Breed,
		Age:            model.Age,
		Gender:         model.Gender,
		Color:          model.Color,
		DateArrived:    arrived,
		SpayedNeutered: model.SpayedNeutered,
		Temperament:    model.Temperament,
		SpecialNeeds:   model.SpecialNeeds,
		PhotoURL:       model.PhotoURL,
		Status:         model.Status,
	}, nil
}

// FromDomainPet maps a domain aggregate into a transport Pet.
func FromDomainPet(p *domain.Pet) Pet {
	return Pet{
		ID:             p.ID,
		Name:           p.Name,
		Species:        p.Species,
		Breed:          p.Breed,
		Age:            p.Age,
		Gender:         string(p.Gender),
		Color:          p.Color,
		DateArrived:    dates.Format(p.DateArrived),
		SpayedNeutered: p.SpayedNeutered,
		Temperament:    p.Temperament,
		SpecialNeeds:   p.SpecialNeeds,
		PhotoURL:       p.PhotoURL,
		Status:         string(p.Status),
	}
}

// FromProjection maps a pet projection including its timestamps.
func FromProjection(proj *petstypes.PetProjection) Pet {
	out := FromDomainPet(proj.Entity)
	created, updated := proj.Metadata.CreatedAt, proj.Metadata.UpdatedAt
	out.CreatedAt, out.UpdatedAt = &created, &updated
	return out
}

// FromProjections maps a list of projections.
func FromProjections(list []*petstypes.PetProjection) []Pet {
	out := make([]Pet, 0, len(list))
	for _, p := range list {
		out = append(out, FromProjection(p))
	}
	return out
}

// FromDomainPets maps plain pets.
func FromDomainPets(list []*domain.Pet) []Pet {
	out := make([]Pet, 0, len(list))
	for _, p := range list {
		out = append(out, FromDomainPet(p))
	}
	return out
}

// FromRanked maps the popular list.
func FromRanked(list []domain.RankedPet) []PopularPet {
	out := make([]PopularPet, 0, len(list))
	for _, r := range list {
		out = append(out, PopularPet{Pet: FromDomainPet(r.Pet), FavoriteCount: r.FavoriteCount, Rank: r.Rank})
	}
	return out
}
