package domain

import (
	"errors"
	"strings"
	"time"

	"github.com/Apurer/pet-adoption-center/internal/shared/dates"
)

// VaccinationStatus tracks whether a dose was given, is planned, or was missed.
type VaccinationStatus string

const (
	VaccinationCompleted VaccinationStatus = "Completed"
	VaccinationScheduled VaccinationStatus = "Scheduled"
	VaccinationOverdue   VaccinationStatus = "Overdue"
)

var VaccinationStatuses = []VaccinationStatus{VaccinationCompleted, VaccinationScheduled, VaccinationOverdue}

var (
	ErrMissingVisit             = errors.New("vaccination requires a visit")
	ErrEmptyVaccineName         = errors.New("vaccine name is required")
	ErrMissingAdministeredDate  = errors.New("date administered is required")
	ErrInvalidVaccinationStatus = errors.New("vaccination status must be Completed, Scheduled, or Overdue")
	ErrDueBeforeAdministered    = errors.New("next due date must not precede the date administered")
)

// ParseVaccinationStatus matches raw case-insensitively. Blank means Completed.
func ParseVaccinationStatus(raw string) (VaccinationStatus, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return VaccinationCompleted, nil
	}
	for _, s := range VaccinationStatuses {
		if strings.EqualFold(raw, string(s)) {
			return s, nil
		}
	}
	return "", ErrInvalidVaccinationStatus
}

// Vaccination is a dose recorded during a visit.
type Vaccination struct {
	ID               int64
	VisitID          int64
	VaccineName      string
	DateAdministered time.Time
	AdministeredBy   string
	Manufacturer     string
	NextDueDate      *time.Time
	Site             string
	Reaction         string
	Cost             float64
	Status           VaccinationStatus
}

func NewVaccination(visitID int64, vaccine string, administered time.Time) (*Vaccination, error) {
	v := &Vaccination{
		VisitID:          visitID,
		VaccineName:      strings.TrimSpace(vaccine),
		DateAdministered: dates.Day(administered),
		Status:           VaccinationCompleted,
	}
	if err := v.Validate(); err != nil {
		return nil, err
	}
	return v, nil
}

func (v *Vaccination) Validate() error {
	switch {
	case v.VisitID <= 0:
		return ErrMissingVisit
	case strings.TrimSpace(v.VaccineName) == "":
		return ErrEmptyVaccineName
	case v.DateAdministered.IsZero():
		return ErrMissingAdministeredDate
	case v.Cost < 0:
		return ErrNegativeCost
	}
	if _, err := ParseVaccinationStatus(string(v.Status)); err != nil {
		return err
	}
	if v.NextDueDate != nil && v.NextDueDate.Before(v.DateAdministered) {
		return ErrDueBeforeAdministered
	}
	return nil
}

// IsOverdue reports whether the next dose was due before today and the
// vaccination is not marked Completed.
func (v *Vaccination) IsOverdue(now time.Time) bool {
	if v.NextDueDate == nil || v.Status == VaccinationCompleted {
		return false
	}
	return dates.Day(*v.NextDueDate).Before(dates.Day(now))
}

func (v *Vaccination) Clone() *Vaccination {
	if v == nil {
		return nil
	}
	c := *v
	c.NextDueDate = cloneTime(v.NextDueDate)
	return &c
}
