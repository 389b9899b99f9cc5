package domain

import (
	"fmt"
	"time"

	petdomain "github.com/Apurer/pet-adoption-center/internal/domains/pets/domain"
	"github.com/Apurer/pet-adoption-center/internal/shared/dates"
)

// Machine computes adoption transitions and the pet status each one implies.
// It performs no I/O; callers persist both results in one transaction.
type Machine struct {
	policy Policy
	now    func() time.Time
}

func NewMachine(policy Policy, now func() time.Time) Machine {
	if policy.Variant == "" {
		policy = DefaultPolicy()
	}
	if now == nil {
		now = time.Now
	}
	return Machine{policy: policy, now: now}
}

func (m Machine) Policy() Policy { return m.policy }

// Apply opens an application for an Available pet and reserves it.
func (m Machine) Apply(pet petdomain.Status, petID, adopterID int64, fee float64, notes string) (*Adoption, petdomain.Status, error) {
	if g := CanApply(pet); !g.Allowed {
		return nil, pet, fmt.Errorf("%w: %s", ErrPetUnavailable, g.Reason)
	}
	if fee < 0 {
		return nil, pet, ErrNegativeFee
	}
	a := &Adoption{
		PetID:           petID,
		AdopterID:       adopterID,
		ApplicationDate: m.now().UTC(),
		Fee:             fee,
		Status:          m.policy.OpenStatus(),
	}
	if m.policy.approval() {
		a.ApprovalStatus = ApprovalPending
	}
	a.SetNotes(notes)
	return a, petdomain.StatusReserved, nil
}

// Approve records a positive decision. The pet stays Reserved.
func (m Machine) Approve(a *Adoption) error {
	if err := check(CanDecide(m.policy, a)); err != nil {
		return err
	}
	a.ApprovalStatus = ApprovalApproved
	return nil
}

// Deny rejects the application and releases the pet.
func (m Machine) Deny(a *Adoption) (petdomain.Status, error) {
	if err := check(CanDecide(m.policy, a)); err != nil {
		return "", err
	}
	a.ApprovalStatus = ApprovalDenied
	a.Status = StatusCancelled
	return petdomain.StatusAvailable, nil
}

// Complete finalises the adoption, stamps the date and contract, and marks the pet Adopted.
func (m Machine) Complete(a *Adoption) (petdomain.Status, error) {
	if err := check(CanComplete(m.policy, a)); err != nil {
		return "", err
	}
	today := dates.Day(m.now())
	a.Status = StatusCompleted
	a.AdoptionDate = &today
	a.ContractSigned = true
	return petdomain.StatusAdopted, nil
}

// Cancel withdraws an open application and releases the pet.
func (m Machine) Cancel(a *Adoption) (petdomain.Status, error) {
	if err := check(CanCancel(a)); err != nil {
		return "", err
	}
	a.Status = StatusCancelled
	return petdomain.StatusAvailable, nil
}

// Return brings a completed adoption back and makes the pet Available again.
func (m Machine) Return(a *Adoption) (petdomain.Status, error) {
	if err := check(CanReturn(m.policy, a)); err != nil {
		return "", err
	}
	a.Status = StatusReturned
	return petdomain.StatusAvailable, nil
}

// EditFee changes the fee while the application is undecided.
func (m Machine) EditFee(a *Adoption, fee float64) error {
	if fee < 0 {
		return ErrNegativeFee
	}
	if a.Fee == fee {
		return nil
	}
	if err := check(CanEditFee(m.policy, a)); err != nil {
		return err
	}
	a.Fee = fee
	return nil
}

// Release reports the pet status to write when a is deleted. otherHolders
// counts the remaining adoptions that still hold the same pet.
func (m Machine) Release(a *Adoption, otherHolders int) (petdomain.Status, bool) {
	if a.HoldsPet() && otherHolders == 0 {
		return petdomain.StatusAvailable, true
	}
	return "", false
}

func check(g GuardResult) error {
	if g.Allowed {
		return nil
	}
	return fmt.Errorf("%w: %s", ErrInvalidTransition, g.Reason)
}
