package domain

import (
	"errors"
	"strings"
	"time"
)

// Status is the lifecycle state of an adoption.
type Status string

const (
	StatusPending   Status = "Pending"
	StatusApplied   Status = "Applied"
	StatusCompleted Status = "Completed"
	StatusCancelled Status = "Cancelled"
	StatusReturned  Status = "Returned"
)

// ApprovalStatus is the staff decision on an application under the approval policy.
type ApprovalStatus string

const (
	ApprovalPending  ApprovalStatus = "Pending"
	ApprovalApproved ApprovalStatus = "Approved"
	ApprovalDenied   ApprovalStatus = "Denied"
)

var (
	ErrPetUnavailable    = errors.New("pet is not available for adoption")
	ErrInvalidTransition = errors.New("adoption transition not allowed")
	ErrNegativeFee       = errors.New("adoption fee must be zero or greater")
	ErrInvalidStatus     = errors.New("unknown adoption status")
	ErrInvalidPolicy     = errors.New("adoption policy must be approval or simple")
)

// Adoption links one adopter to one pet.
type Adoption struct {
	ID              int64
	PetID           int64
	AdopterID       int64
	ApplicationDate time.Time
	AdoptionDate    *time.Time
	Fee             float64
	ContractSigned  bool
	Notes           string
	Status          Status
	ApprovalStatus  ApprovalStatus
}

// Open reports whether the application still awaits completion or cancellation.
func (a *Adoption) Open() bool {
	return a.Status == StatusPending || a.Status == StatusApplied
}

// HoldsPet reports whether the adoption keeps its pet out of the Available pool.
func (a *Adoption) HoldsPet() bool {
	return a.Open() || a.Status == StatusCompleted
}

// SetNotes replaces the free-text notes. Notes are editable in every state.
func (a *Adoption) SetNotes(notes string) {
	a.Notes = strings.TrimSpace(notes)
}

func (a *Adoption) Clone() *Adoption {
	if a == nil {
		return nil
	}
	c := *a
	if a.AdoptionDate != nil {
		d := *a.AdoptionDate
		c.AdoptionDate = &d
	}
	return &c
}

// ParseStatus matches raw case-insensitively against every lifecycle status.
func ParseStatus(raw string) (Status, error) {
	for _, s := range []Status{StatusPending, StatusApplied, StatusCompleted, StatusCancelled, StatusReturned} {
		if strings.EqualFold(strings.TrimSpace(raw), string(s)) {
			return s, nil
		}
	}
	return "", ErrInvalidStatus
}
