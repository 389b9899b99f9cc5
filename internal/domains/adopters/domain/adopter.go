package domain

import (
	"errors"
	"net/mail"
	"strings"
	"time"
)

// HousingType is where the adopter lives.
type HousingType string

const (
	HousingHouse     HousingType = "House"
	HousingApartment HousingType = "Apartment"
	HousingCondo     HousingType = "Condo"
	HousingFarm      HousingType = "Farm"
)

// ExperienceLevel is the adopter's prior pet ownership.
type ExperienceLevel string

const (
	ExperienceFirstTime   ExperienceLevel = "First-time"
	ExperienceExperienced ExperienceLevel = "Experienced"
)

// MinPasswordLength is the shortest password accepted at registration or rotation.
const MinPasswordLength = 6

var (
	ErrInvalidEmail      = errors.New("a valid email is required")
	ErrEmptyFullName     = errors.New("full name is required")
	ErrEmptyContact      = errors.New("contact number is required")
	ErrWeakPassword      = errors.New("password must be at least 6 characters")
	ErrInvalidHousing    = errors.New("housing type must be House, Apartment, Condo, or Farm")
	ErrInvalidExperience = errors.New("experience level must be First-time or Experienced")
)

// Adopter is a registered member of the public who may favorite pets and apply to adopt.
type Adopter struct {
	ID              int64
	Email           string
	PasswordHash    string
	FullName        string
	ContactNo       string
	Address         string
	HousingType     HousingType
	ExperienceLevel ExperienceLevel
	HasOtherPets    bool
	HasChildren     bool
	CreatedAt       time.Time
}

// NewAdopter builds an adopter with the registration defaults applied.
func NewAdopter(email, fullName, contactNo string) (*Adopter, error) {
	a := &Adopter{HousingType: HousingHouse, ExperienceLevel: ExperienceFirstTime}
	if err := a.SetEmail(email); err != nil {
		return nil, err
	}
	if err := a.SetFullName(fullName); err != nil {
		return nil, err
	}
	if err := a.SetContactNo(contactNo); err != nil {
		return nil, err
	}
	return a, nil
}

// NormalizeEmail lower-cases and trims an address for lookups.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// SetEmail validates and stores a normalized address.
func (a *Adopter) SetEmail(email string) error {
	email = NormalizeEmail(email)
	if email == "" {
		return ErrInvalidEmail
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return ErrInvalidEmail
	}
	a.Email = email
	return nil
}

func (a *Adopter) SetFullName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyFullName
	}
	a.FullName = name
	return nil
}

func (a *Adopter) SetContactNo(contact string) error {
	contact = strings.TrimSpace(contact)
	if contact == "" {
		return ErrEmptyContact
	}
	a.ContactNo = contact
	return nil
}

// SetHousing parses a housing type; blank keeps the current value.
func (a *Adopter) SetHousing(raw string) error {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	for _, h := range []HousingType{HousingHouse, HousingApartment, HousingCondo, HousingFarm} {
		if strings.EqualFold(raw, string(h)) {
			a.HousingType = h
			return nil
		}
	}
	return ErrInvalidHousing
}

// SetExperience parses an experience level; blank keeps the current value.
func (a *Adopter) SetExperience(raw string) error {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	for _, e := range []ExperienceLevel{ExperienceFirstTime, ExperienceExperienced} {
		if strings.EqualFold(raw, string(e)) {
			a.ExperienceLevel = e
			return nil
		}
	}
	return ErrInvalidExperience
}

// ValidatePassword enforces the minimum length on a plain-text password.
func ValidatePassword(plain string) error {
	if len(plain) < MinPasswordLength {
		return ErrWeakPassword
	}
	return nil
}

// Validate re-applies the invariants before persistence.
func (a *Adopter) Validate() error {
	if err := a.SetEmail(a.Email); err != nil {
		return err
	}
	if err := a.SetFullName(a.FullName); err != nil {
		return err
	}
	if a.HousingType == "" {
		a.HousingType = HousingHouse
	}
	if a.ExperienceLevel == "" {
		a.ExperienceLevel = ExperienceFirstTime
	}
	if err := a.SetHousing(string(a.HousingType)); err != nil {
		return err
	}
	return a.SetExperience(string(a.ExperienceLevel))
}

// Clone returns a copy that shares no mutable state with a.
func (a *Adopter) Clone() *Adopter {
	if a == nil {
		return nil
	}
	c := *a
	return &c
}
