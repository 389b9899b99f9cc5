package domain

import (
	"errors"
	"strings"
	"time"
)

var (
	ErrMissingAdopter = errors.New("favorite requires an adopter")
	ErrMissingPet     = errors.New("favorite requires a pet")
)

// Favorite is an adopter's bookmark on a pet. One per adopter and pet.
type Favorite struct {
	ID        int64
	AdopterID int64
	PetID     int64
	Notes     string
	DateAdded time.Time
}

// NewFavorite builds a favorite added at the given instant.
func NewFavorite(adopterID, petID int64, notes string, added time.Time) (*Favorite, error) {
	if adopterID <= 0 {
		return nil, ErrMissingAdopter
	}
	if petID <= 0 {
		return nil, ErrMissingPet
	}
	f := &Favorite{AdopterID: adopterID, PetID: petID, DateAdded: added.UTC()}
	f.SetNotes(notes)
	return f, nil
}

func (f *Favorite) SetNotes(notes string) {
	f.Notes = strings.TrimSpace(notes)
}

// OwnedBy reports whether the favorite belongs to the adopter.
func (f *Favorite) OwnedBy(adopterID int64) bool {
	return f != nil && f.AdopterID == adopterID
}

func (f *Favorite) Clone() *Favorite {
	if f == nil {
		return nil
	}
	c := *f
	return &c
}

// PetSummary is the slice of a pet shown next to a favorite.
type PetSummary struct {
	ID       int64
	Name     string
	Species  string
	Breed    string
	Age      int
	Gender   string
	PhotoURL string
	Status   string
}

// View is a favorite joined with its pet.
type View struct {
	Favorite *Favorite
	Pet      PetSummary
}
