package mapper

import (
	"time"

	"github.com/Apurer/pet-adoption-center/internal/domains/adoptions/domain"
	"github.com/Apurer/pet-adoption-center/internal/domains/adoptions/ports"
	"github.com/Apurer/pet-adoption-center/internal/shared/dates"
)

// ApplyRequest files an application. AdopterID is ignored for adopter tokens,
// which always apply on their own behalf.
type ApplyRequest struct {
	PetID     int64   `json:"petId"`
	AdopterID int64   `json:"adopterId,omitempty"`
	Fee       float64 `json:"adoptionFee"`
	Notes     string  `json:"notes,omitempty"`
}

type EditRequest struct {
	Fee   *float64 `json:"adoptionFee,omitempty"`
	Notes *string  `json:"notes,omitempty"`
}

type Adoption struct {
	ID              int64     `json:"id"`
	PetID           int64     `json:"petId"`
	AdopterID       int64     `json:"adopterId"`
	ApplicationDate time.Time `json:"applicationDate"`
	AdoptionDate    *string   `json:"adoptionDate,omitempty"`
	Fee             float64   `json:"adoptionFee"`
	ContractSigned  bool      `json:"contractSigned"`
	Notes           string    `json:"notes,omitempty"`
	Status          string    `json:"status"`
	ApprovalStatus  string    `json:"approvalStatus,omitempty"`

	PetName      string `json:"petName,omitempty"`
	Species      string `json:"species,omitempty"`
	Breed        string `json:"breed,omitempty"`
	PhotoURL     string `json:"photoUrl,omitempty"`
	AdopterName  string `json:"adopterName,omitempty"`
	AdopterEmail string `json:"adopterEmail,omitempty"`
	ContactNo    string `json:"contactNo,omitempty"`
	Address      string `json:"address,omitempty"`
}

// PolicyResponse reports the active adoption variant.
type PolicyResponse struct {
	Variant     string `json:"variant"`
	AllowReturn bool   `json:"allowReturn"`
}

func (r ApplyRequest) ToInput(adopterID int64) ports.ApplyInput {
	return ports.ApplyInput{PetID: r.PetID, AdopterID: adopterID, Fee: r.Fee, Notes: r.Notes}
}

func (r EditRequest) ToInput(id int64) ports.EditInput {
	return ports.EditInput{ID: id, Fee: r.Fee, Notes: r.Notes}
}

func FromView(v domain.View) Adoption {
	a := v.Adoption
	return Adoption{
		ID:              a.ID,
		PetID:           a.PetID,
		AdopterID:       a.AdopterID,
		ApplicationDate: a.ApplicationDate,
		AdoptionDate:    dates.FormatPtr(a.AdoptionDate),
		Fee:             a.Fee,
		ContractSigned:  a.ContractSigned,
		Notes:           a.Notes,
		Status:          string(a.Status),
		ApprovalStatus:  string(a.ApprovalStatus),
		PetName:         v.Pet.Name,
		Species:         v.Pet.Species,
		Breed:           v.Pet.Breed,
		PhotoURL:        v.Pet.PhotoURL,
		AdopterName:     v.Adopter.FullName,
		AdopterEmail:    v.Adopter.Email,
		ContactNo:       v.Adopter.ContactNo,
		Address:         v.Adopter.Address,
	}
}

func FromViews(views []domain.View) []Adoption {
	out := make([]Adoption, 0, len(views))
	for _, v := range views {
		out = append(out, FromView(v))
	}
	return out
}

func FromPolicy(p domain.Policy) PolicyResponse {
	return PolicyResponse{Variant: string(p.Variant), AllowReturn: p.Variant == domain.VariantSimple || p.AllowReturn}
}
