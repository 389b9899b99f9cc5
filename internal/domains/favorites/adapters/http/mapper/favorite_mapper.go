package mapper

import (
	"time"

	"github.com/Apurer/pet-adoption-center/internal/domains/favorites/domain"
	"github.com/Apurer/pet-adoption-center/internal/domains/favorites/ports"
)

// AddRequest bookmarks a pet. AdopterID is only read from admin callers.
type AddRequest struct {
	PetID     int64  `json:"petId"`
	AdopterID int64  `json:"adopterId,omitempty"`
	Notes     string `json:"notes,omitempty"`
}

type NotesRequest struct {
	Notes string `json:"notes"`
}

type Favorite struct {
	ID        int64     `json:"id"`
	AdopterID int64     `json:"adopterId"`
	PetID     int64     `json:"petId"`
	Notes     string    `json:"notes,omitempty"`
	DateAdded time.Time `json:"dateAdded"`

	PetName  string `json:"petName,omitempty"`
	Species  string `json:"species,omitempty"`
	Breed    string `json:"breed,omitempty"`
	Age      int    `json:"age,omitempty"`
	Gender   string `json:"gender,omitempty"`
	PhotoURL string `json:"photoUrl,omitempty"`
	Status   string `json:"status,omitempty"`
}

type CheckResponse struct {
	IsFavorited bool      `json:"isFavorited"`
	Favorite    *Favorite `json:"favorite"`
}

func (r AddRequest) ToInput(adopterID int64) ports.AddInput {
	return ports.AddInput{AdopterID: adopterID, PetID: r.PetID, Notes: r.Notes}
}

func fromFavorite(f *domain.Favorite) Favorite {
	return Favorite{
		ID:        f.ID,
		AdopterID: f.AdopterID,
		PetID:     f.PetID,
		Notes:     f.Notes,
		DateAdded: f.DateAdded,
	}
}

func FromView(v domain.View) Favorite {
	out := fromFavorite(v.Favorite)
	out.PetName = v.Pet.Name
	out.Species = v.Pet.Species
	out.Breed = v.Pet.Breed
	out.Age = v.Pet.Age
	out.Gender = v.Pet.Gender
	out.PhotoURL = v.Pet.PhotoURL
	out.Status = v.Pet.Status
	return out
}

func FromViews(views []domain.View) []Favorite {
	out := make([]Favorite, 0, len(views))
	for _, v := range views {
		out = append(out, FromView(v))
	}
	return out
}

func FromCheck(result *ports.CheckResult) CheckResponse {
	resp := CheckResponse{IsFavorited: result.Favorited}
	if result.Favorite != nil {
		f := fromFavorite(result.Favorite)
		resp.Favorite = &f
	}
	return resp
}
