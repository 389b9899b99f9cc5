package domain

import (
	"fmt"

	petdomain "github.com/Apurer/pet-adoption-center/internal/domains/pets/domain"
)

// GuardResult represents the outcome of a transition precondition.
type GuardResult struct {
	Allowed bool
	Reason  string
}

func allow() GuardResult { return GuardResult{Allowed: true} }

func deny(format string, args ...any) GuardResult {
	return GuardResult{Reason: fmt.Sprintf(format, args...)}
}

// CanApply requires the pet to be Available.
func CanApply(pet petdomain.Status) GuardResult {
	if pet != petdomain.StatusAvailable {
		return deny("pet is %s", pet)
	}
	return allow()
}

// CanDecide covers both Approve and Deny: the application must await a decision.
func CanDecide(p Policy, a *Adoption) GuardResult {
	if !p.approval() {
		return deny("the simple adoption policy has no approval step")
	}
	if a.ApprovalStatus != ApprovalPending {
		return deny("approval is already %s", a.ApprovalStatus)
	}
	if !a.Open() {
		return deny("adoption is %s", a.Status)
	}
	return allow()
}

// CanComplete requires an open application, approved when the policy demands it.
func CanComplete(p Policy, a *Adoption) GuardResult {
	if !a.Open() {
		return deny("adoption is %s", a.Status)
	}
	if p.approval() && a.ApprovalStatus != ApprovalApproved {
		return deny("adoption must be approved before completion, approval is %s", a.ApprovalStatus)
	}
	return allow()
}

// CanCancel requires an open application.
func CanCancel(a *Adoption) GuardResult {
	if !a.Open() {
		return deny("adoption is %s", a.Status)
	}
	return allow()
}

// CanReturn requires a completed adoption and a policy that accepts returns.
func CanReturn(p Policy, a *Adoption) GuardResult {
	if !p.returnsAllowed() {
		return deny("returns are disabled for the approval policy")
	}
	if a.Status != StatusCompleted {
		return deny("only completed adoptions can be returned, adoption is %s", a.Status)
	}
	return allow()
}

// CanEditFee allows fee edits until a decision is made.
func CanEditFee(p Policy, a *Adoption) GuardResult {
	if !a.Open() {
		return deny("fee is locked once the adoption is %s", a.Status)
	}
	if p.approval() && a.ApprovalStatus != ApprovalPending {
		return deny("fee is locked once approval is %s", a.ApprovalStatus)
	}
	return allow()
}
