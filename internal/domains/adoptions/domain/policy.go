package domain

import "strings"

// Variant selects which adoption schema the machine drives.
type Variant string

const (
	// VariantApproval splits the lifecycle Status from a staff ApprovalStatus.
	VariantApproval Variant = "approval"
	// VariantSimple uses a single Status with no approval step.
	VariantSimple Variant = "simple"
)

// Policy is the deployment-time configuration of the adoption machine.
type Policy struct {
	Variant Variant
	// AllowReturn enables Completed -> Returned under the approval variant.
	// The simple variant always allows returns.
	AllowReturn bool
}

// DefaultPolicy is the approval variant with returns enabled.
func DefaultPolicy() Policy {
	return Policy{Variant: VariantApproval, AllowReturn: true}
}

// ParseVariant accepts "approval" or "simple"; blank selects approval.
func ParseVariant(raw string) (Variant, error) {
	switch Variant(strings.ToLower(strings.TrimSpace(raw))) {
	case "", VariantApproval:
		return VariantApproval, nil
	case VariantSimple:
		return VariantSimple, nil
	}
	return "", ErrInvalidPolicy
}

func (p Policy) approval() bool { return p.Variant != VariantSimple }

func (p Policy) returnsAllowed() bool { return !p.approval() || p.AllowReturn }

// OpenStatus is the Status a fresh application starts in.
func (p Policy) OpenStatus() Status {
	if p.approval() {
		return StatusApplied
	}
	return StatusPending
}
