package domain

import (
	"time"

	adoptiondomain "github.com/Apurer/pet-adoption-center/internal/domains/adoptions/domain"
	petdomain "github.com/Apurer/pet-adoption-center/internal/domains/pets/domain"
)

// RecentLimit caps every list in the activity feed.
const RecentLimit = 5

// RecentPet is a pet with the time it was added to the catalogue.
type RecentPet struct {
	Pet       *petdomain.Pet
	CreatedAt time.Time
}

// RecentAdopter is the public part of a newly registered adopter.
type RecentAdopter struct {
	ID        int64
	Email     string
	FullName  string
	CreatedAt time.Time
}

// Activity is the most recent adoptions, pets and adopters.
type Activity struct {
	Adoptions []adoptiondomain.View
	Pets      []RecentPet
	Adopters  []RecentAdopter
}

// Newest returns at most RecentLimit items of list, which must already be newest first.
func Newest[T any](list []T) []T {
	if len(list) > RecentLimit {
		list = list[:RecentLimit]
	}
	out := make([]T, len(list))
	copy(out, list)
	return out
}
