package domain

import (
	"errors"
	"strings"
	"time"

	"github.com/Apurer/pet-adoption-center/internal/shared/dates"
)

// VisitType classifies a veterinary visit.
type VisitType string

const (
	VisitCheckup     VisitType = "Checkup"
	VisitVaccination VisitType = "Vaccination"
	VisitSurgery     VisitType = "Surgery"
	VisitTreatment   VisitType = "Treatment"
	VisitEmergency   VisitType = "Emergency"
)

var VisitTypes = []VisitType{VisitCheckup, VisitVaccination, VisitSurgery, VisitTreatment, VisitEmergency}

var (
	ErrMissingPet          = errors.New("visit requires a pet")
	ErrMissingVisitDate    = errors.New("visit date is required")
	ErrEmptyVeterinarian   = errors.New("veterinarian is required")
	ErrInvalidVisitType    = errors.New("visit type must be Checkup, Vaccination, Surgery, Treatment, or Emergency")
	ErrInvalidVitals       = errors.New("weight and temperature must be greater than zero")
	ErrNegativeCost        = errors.New("cost must be zero or greater")
	ErrNextVisitBeforeDate = errors.New("next visit date must not precede the visit date")
)

// ParseVisitType matches raw case-insensitively against the known visit types.
func ParseVisitType(raw string) (VisitType, error) {
	raw = strings.TrimSpace(raw)
	for _, v := range VisitTypes {
		if strings.EqualFold(raw, string(v)) {
			return v, nil
		}
	}
	return "", ErrInvalidVisitType
}

// Visit is one trip of a pet to the veterinarian.
type Visit struct {
	ID            int64
	PetID         int64
	VisitDate     time.Time
	Veterinarian  string
	VisitType     VisitType
	WeightKg      *float64
	TemperatureC  *float64
	Diagnosis     string
	Notes         string
	ProcedureCost float64
	NextVisitDate *time.Time
}

func NewVisit(petID int64, date time.Time, veterinarian string, visitType VisitType) (*Visit, error) {
	v := &Visit{PetID: petID, VisitDate: dates.Day(date), Veterinarian: strings.TrimSpace(veterinarian), VisitType: visitType}
	if err := v.Validate(); err != nil {
		return nil, err
	}
	return v, nil
}

// Validate checks the visit invariants.
func (v *Visit) Validate() error {
	switch {
	case v.PetID <= 0:
		return ErrMissingPet
	case v.VisitDate.IsZero():
		return ErrMissingVisitDate
	case strings.TrimSpace(v.Veterinarian) == "":
		return ErrEmptyVeterinarian
	case v.ProcedureCost < 0:
		return ErrNegativeCost
	}
	if _, err := ParseVisitType(string(v.VisitType)); err != nil {
		return err
	}
	if (v.WeightKg != nil && *v.WeightKg <= 0) || (v.TemperatureC != nil && *v.TemperatureC <= 0) {
		return ErrInvalidVitals
	}
	if v.NextVisitDate != nil && v.NextVisitDate.Before(v.VisitDate) {
		return ErrNextVisitBeforeDate
	}
	return nil
}

func (v *Visit) Clone() *Visit {
	if v == nil {
		return nil
	}
	c := *v
	c.WeightKg = cloneFloat(v.WeightKg)
	c.TemperatureC = cloneFloat(v.TemperatureC)
	c.NextVisitDate = cloneTime(v.NextVisitDate)
	return &c
}

func cloneFloat(f *float64) *float64 {
	if f == nil {
		return nil
	}
	c := *f
	return &c
}

func cloneTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	c := *t
	return &c
}
