package mapper

import (
	"time"

	"github.com/Apurer/pet-adoption-center/internal/domains/adopters/domain"
	"github.com/Apurer/pet-adoption-center/internal/domains/adopters/ports"
)

// RegisterRequest is the adopter registration payload.
type RegisterRequest struct {
	Email           string `json:"email"`
	Password        string `json:"password"`
	FullName        string `json:"fullName"`
	ContactNo       string `json:"contactNo"`
	Address         string `json:"address,omitempty"`
	HousingType     string `json:"housingType,omitempty"`
	ExperienceLevel string `json:"experienceLevel,omitempty"`
	HasOtherPets    *bool  `json:"hasOtherPets,omitempty"`
	HasChildren     *bool  `json:"hasChildren,omitempty"`
}

// LoginRequest is shared by the adopter and admin login endpoints.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UpdateProfileRequest is a partial profile edit.
type UpdateProfileRequest struct {
	Email           *string `json:"email,omitempty"`
	FullName        *string `json:"fullName,omitempty"`
	ContactNo       *string `json:"contactNo,omitempty"`
	Address         *string `json:"address,omitempty"`
	HousingType     *string `json:"housingType,omitempty"`
	ExperienceLevel *string `json:"experienceLevel,omitempty"`
	HasOtherPets    *bool   `json:"hasOtherPets,omitempty"`
	HasChildren     *bool   `json:"hasChildren,omitempty"`
	CurrentPassword string  `json:"currentPassword,omitempty"`
	NewPassword     string  `json:"newPassword,omitempty"`
}

// Adopter is the public profile. The password hash is never serialized.
type Adopter struct {
	ID              int64     `json:"id"`
	Email           string    `json:"email"`
	FullName        string    `json:"fullName"`
	ContactNo       string    `json:"contactNo"`
	Address         string    `json:"address,omitempty"`
	HousingType     string    `json:"housingType"`
	ExperienceLevel string    `json:"experienceLevel"`
	HasOtherPets    bool      `json:"hasOtherPets"`
	HasChildren     bool      `json:"hasChildren"`
	CreatedAt       time.Time `json:"createdAt"`
}

// AdopterSummary adds activity totals to the profile for staff listings.
type AdopterSummary struct {
	Adopter
	AdoptionCount  int `json:"adoptionCount"`
	FavoritesCount int `json:"favoritesCount"`
}

// AuthResponse is returned by register and login.
type AuthResponse struct {
	Message   string    `json:"message"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
	User      Adopter   `json:"user"`
}

func ToRegisterInput(req RegisterRequest) ports.RegisterInput {
	return ports.RegisterInput{
		Email:           req.Email,
		Password:        req.Password,
		FullName:        req.FullName,
		ContactNo:       req.ContactNo,
		Address:         req.Address,
		HousingType:     req.HousingType,
		ExperienceLevel: req.ExperienceLevel,
		HasOtherPets:    req.HasOtherPets,
		HasChildren:     req.HasChildren,
	}
}

func ToUpdateProfileInput(id int64, req UpdateProfileRequest) ports.UpdateProfileInput {
	return ports.UpdateProfileInput{
		ID:              id,
		Email:           req.Email,
		FullName:        req.FullName,
		ContactNo:       req.ContactNo,
		Address:         req.Address,
		HousingType:     req.HousingType,
		ExperienceLevel: req.ExperienceLevel,
		HasOtherPets:    req.HasOtherPets,
		HasChildren:     req.HasChildren,
		CurrentPassword: req.CurrentPassword,
		NewPassword:     req.NewPassword,
	}
}

func FromDomain(a *domain.Adopter) Adopter {
	return Adopter{
		ID:              a.ID,
		Email:           a.Email,
		FullName:        a.FullName,
		ContactNo:       a.ContactNo,
		Address:         a.Address,
		HousingType:     string(a.HousingType),
		ExperienceLevel: string(a.ExperienceLevel),
		HasOtherPets:    a.HasOtherPets,
		HasChildren:     a.HasChildren,
		CreatedAt:       a.CreatedAt,
	}
}

func FromSummaries(list []ports.Summary) []AdopterSummary {
	out := make([]AdopterSummary, 0, len(list))
	for _, s := range list {
		out = append(out, AdopterSummary{
			Adopter:        FromDomain(s.Adopter),
			AdoptionCount:  s.AdoptionCount,
			FavoritesCount: s.FavoritesCount,
		})
	}
	return out
}

func FromSession(message string, session *ports.Session) AuthResponse {
	return AuthResponse{
		Message:   message,
		Token:     session.Token,
		ExpiresAt: session.ExpiresAt,
		User:      FromDomain(session.Adopter),
	}
}
