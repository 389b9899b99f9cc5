package domain

import (
	"errors"
	"strings"
	"time"

	"github.com/Apurer/pet-adoption-center/internal/shared/dates"
)

// Status is the availability of a pet in the shelter.
type Status string

const (
	StatusAvailable   Status = "Available"
	StatusReserved    Status = "Reserved"
	StatusMedicalHold Status = "Medical Hold"
	StatusAdopted     Status = "Adopted"
)

// Statuses lists every status a pet may hold.
var Statuses = []Status{StatusAvailable, StatusReserved, StatusMedicalHold, StatusAdopted}

// Valid reports whether s is one of the four pet statuses.
func (s Status) Valid() bool {
	switch s {
	case StatusAvailable, StatusReserved, StatusMedicalHold, StatusAdopted:
		return true
	}
	return false
}

// ManagedByAdoption reports whether s is only reachable through the adoption lifecycle.
func (s Status) ManagedByAdoption() bool {
	return s == StatusReserved || s == StatusAdopted
}

// ParseStatus matches raw case-insensitively against the known statuses.
func ParseStatus(raw string) (Status, error) {
	raw = strings.TrimSpace(raw)
	for _, s := range Statuses {
		if strings.EqualFold(raw, string(s)) {
			return s, nil
		}
	}
	return "", ErrInvalidStatus
}

// Gender is the recorded sex of a pet.
type Gender string

const (
	GenderMale    Gender = "Male"
	GenderFemale  Gender = "Female"
	GenderUnknown Gender = "Unknown"
)

// Pet is the aggregate for a shelter animal.
type Pet struct {
	ID             int64
	Name           string
	Species        string
	Breed          string
	Age            int
	Gender         Gender
	Color          string
	DateArrived    time.Time
	SpayedNeutered bool
	Temperament    string
	SpecialNeeds   string
	PhotoURL       string
	Status         Status
}

var (
	ErrEmptyName              = errors.New("pet name is required")
	ErrEmptySpecies           = errors.New("pet species is required")
	ErrInvalidAge             = errors.New("pet age must be zero or greater")
	ErrInvalidGender          = errors.New("pet gender must be Male, Female, or Unknown")
	ErrInvalidStatus          = errors.New("pet status must be Available, Reserved, Medical Hold, or Adopted")
	ErrArrivalImmutable       = errors.New("pet arrival date cannot change once set")
	ErrStatusManagedElsewhere = errors.New("pet statuses Reserved and Adopted are set by the adoption lifecycle")
)

// NewPet builds an Available pet that arrived on the given day.
func NewPet(name, species string, arrived time.Time) (*Pet, error) {
	p := &Pet{Status: StatusAvailable, Gender: GenderUnknown}
	if err := p.Rename(name); err != nil {
		return nil, err
	}
	if err := p.SetSpecies(species); err != nil {
		return nil, err
	}
	if arrived.IsZero() {
		arrived = time.Now()
	}
	if err := p.SetArrival(arrived); err != nil {
		return nil, err
	}
	return p, nil
}

// Rename sets the display name.
func (p *Pet) Rename(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyName
	}
	p.Name = name
	return nil
}

// SetSpecies sets the species.
func (p *Pet) SetSpecies(species string) error {
	species = strings.TrimSpace(species)
	if species == "" {
		return ErrEmptySpecies
	}
	p.Species = species
	return nil
}

// SetAge records the age in years.
func (p *Pet) SetAge(age int) error {
	if age < 0 {
		return ErrInvalidAge
	}
	p.Age = age
	return nil
}

// SetGender records the sex; blank means Unknown.
func (p *Pet) SetGender(raw string) error {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		p.Gender = GenderUnknown
		return nil
	}
	for _, g := range []Gender{GenderMale, GenderFemale, GenderUnknown} {
		if strings.EqualFold(raw, string(g)) {
			p.Gender = g
			return nil
		}
	}
	return ErrInvalidGender
}

// SetArrival records the arrival day. Once set it may only be re-set to the same day.
func (p *Pet) SetArrival(day time.Time) error {
	day = dates.Day(day)
	if day.IsZero() {
		return nil
	}
	if !p.DateArrived.IsZero() && !dates.SameDay(p.DateArrived, day) {
		return ErrArrivalImmutable
	}
	p.DateArrived = day
	return nil
}

// UpdateDescription replaces the free-form descriptive attributes.
func (p *Pet) UpdateDescription(breed, color, temperament, specialNeeds, photoURL string) {
	p.Breed = strings.TrimSpace(breed)
	p.Color = strings.TrimSpace(color)
	p.Temperament = strings.TrimSpace(temperament)
	p.SpecialNeeds = strings.TrimSpace(specialNeeds)
	p.PhotoURL = strings.TrimSpace(photoURL)
}

// ChangeStatusManually applies a direct staff edit. Staff may move a pet
// between Available and Medical Hold; Reserved and Adopted are entered and
// left only through adoption transitions.
func (p *Pet) ChangeStatusManually(to Status) error {
	if !to.Valid() {
		return ErrInvalidStatus
	}
	if to == p.Status {
		return nil
	}
	if to.ManagedByAdoption() || p.Status.ManagedByAdoption() {
		return ErrStatusManagedElsewhere
	}
	p.Status = to
	return nil
}

// Validate re-applies the invariants before persistence.
func (p *Pet) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return ErrEmptyName
	}
	if strings.TrimSpace(p.Species) == "" {
		return ErrEmptySpecies
	}
	if p.Age < 0 {
		return ErrInvalidAge
	}
	if !p.Status.Valid() {
		return ErrInvalidStatus
	}
	return nil
}

// Clone returns a copy that shares no mutable state with p.
func (p *Pet) Clone() *Pet {
	if p == nil {
		return nil
	}
	c := *p
	return &c
}
