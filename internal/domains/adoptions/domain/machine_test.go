package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	petdomain "github.com/Apurer/pet-adoption-center/internal/domains/pets/domain"
)

var fixedNow = time.Date(2024, 6, 3, 15, 30, 0, 0, time.UTC)

func approvalMachine() Machine {
	return NewMachine(DefaultPolicy(), func() time.Time { return fixedNow })
}

func simpleMachine() Machine {
	return NewMachine(Policy{Variant: VariantSimple}, func() time.Time { return fixedNow })
}

func apply(t *testing.T, m Machine) *Adoption {
	t.Helper()
	a, pet, err := m.Apply(petdomain.StatusAvailable, 7, 3, 120, " loves cats ")
	require.NoError(t, err)
	assert.Equal(t, petdomain.StatusReserved, pet)
	return a
}

func TestApplyOpensApplication(t *testing.T) {
	a := apply(t, approvalMachine())
	assert.Equal(t, StatusApplied, a.Status)
	assert.Equal(t, ApprovalPending, a.ApprovalStatus)
	assert.Equal(t, fixedNow, a.ApplicationDate)
	assert.Equal(t, "loves cats", a.Notes)
	assert.Nil(t, a.AdoptionDate)
	assert.False(t, a.ContractSigned)

	s := apply(t, simpleMachine())
	assert.Equal(t, StatusPending, s.Status)
	assert.Empty(t, s.ApprovalStatus)
}

func TestApplyRequiresAvailablePet(t *testing.T) {
	for _, status := range []petdomain.Status{petdomain.StatusReserved, petdomain.StatusAdopted, petdomain.StatusMedicalHold} {
		t.Run(string(status), func(t *testing.T) {
			a, pet, err := approvalMachine().Apply(status, 1, 1, 0, "")
			require.ErrorIs(t, err, ErrPetUnavailable)
			assert.Nil(t, a)
			assert.Equal(t, status, pet)
		})
	}

	_, _, err := approvalMachine().Apply(petdomain.StatusAvailable, 1, 1, -5, "")
	require.ErrorIs(t, err, ErrNegativeFee)
}

func TestApprovalLifecycle(t *testing.T) {
	m := approvalMachine()
	a := apply(t, m)

	_, err := m.Complete(a)
	require.ErrorIs(t, err, ErrInvalidTransition, "completion needs approval first")

	require.NoError(t, m.Approve(a))
	assert.Equal(t, ApprovalApproved, a.ApprovalStatus)
	require.ErrorIs(t, m.Approve(a), ErrInvalidTransition)
	require.ErrorIs(t, m.EditFee(a, 99), ErrInvalidTransition)

	pet, err := m.Complete(a)
	require.NoError(t, err)
	assert.Equal(t, petdomain.StatusAdopted, pet)
	assert.Equal(t, StatusCompleted, a.Status)
	require.NotNil(t, a.AdoptionDate)
	assert.Equal(t, time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC), *a.AdoptionDate)
	assert.True(t, a.ContractSigned)

	_, err = m.Complete(a)
	require.ErrorIs(t, err, ErrInvalidTransition)
	_, err = m.Cancel(a)
	require.ErrorIs(t, err, ErrInvalidTransition)

	pet, err = m.Return(a)
	require.NoError(t, err)
	assert.Equal(t, petdomain.StatusAvailable, pet)
	assert.Equal(t, StatusReturned, a.Status)
}

func TestDenyReleasesPet(t *testing.T) {
	m := approvalMachine()
	a := apply(t, m)

	pet, err := m.Deny(a)
	require.NoError(t, err)
	assert.Equal(t, petdomain.StatusAvailable, pet)
	assert.Equal(t, ApprovalDenied, a.ApprovalStatus)
	assert.Equal(t, StatusCancelled, a.Status)

	_, err = m.Deny(a)
	require.ErrorIs(t, err, ErrInvalidTransition)
	require.ErrorIs(t, m.Approve(a), ErrInvalidTransition)
}

func TestReturnsCanBeDisabledForApproval(t *testing.T) {
	m := NewMachine(Policy{Variant: VariantApproval, AllowReturn: false}, func() time.Time { return fixedNow })
	a := apply(t, m)
	require.NoError(t, m.Approve(a))
	_, err := m.Complete(a)
	require.NoError(t, err)

	_, err = m.Return(a)
	require.ErrorIs(t, err, ErrInvalidTransition)
	assert.Equal(t, StatusCompleted, a.Status)
}

func TestSimpleLifecycle(t *testing.T) {
	m := simpleMachine()
	a := apply(t, m)

	require.ErrorIs(t, m.Approve(a), ErrInvalidTransition)
	_, err := m.Deny(a)
	require.ErrorIs(t, err, ErrInvalidTransition)

	require.NoError(t, m.EditFee(a, 80))
	assert.Equal(t, 80.0, a.Fee)

	pet, err := m.Complete(a)
	require.NoError(t, err)
	assert.Equal(t, petdomain.StatusAdopted, pet)
	assert.True(t, a.ContractSigned)

	require.ErrorIs(t, m.EditFee(a, 10), ErrInvalidTransition)
	require.NoError(t, m.EditFee(a, 80), "unchanged fee is not an edit")

	pet, err = m.Return(a)
	require.NoError(t, err)
	assert.Equal(t, petdomain.StatusAvailable, pet)

	_, err = m.Return(a)
	require.ErrorIs(t, err, ErrInvalidTransition)
}

func TestCancel(t *testing.T) {
	for name, m := range map[string]Machine{"approval": approvalMachine(), "simple": simpleMachine()} {
		t.Run(name, func(t *testing.T) {
			a := apply(t, m)
			pet, err := m.Cancel(a)
			require.NoError(t, err)
			assert.Equal(t, petdomain.StatusAvailable, pet)
			assert.Equal(t, StatusCancelled, a.Status)

			_, err = m.Cancel(a)
			require.ErrorIs(t, err, ErrInvalidTransition)
		})
	}
}

func TestRelease(t *testing.T) {
	m := approvalMachine()
	cases := []struct {
		name   string
		status Status
		others int
		want   bool
	}{
		{name: "open application", status: StatusApplied, want: true},
		{name: "completed adoption", status: StatusCompleted, want: true},
		{name: "cancelled adoption", status: StatusCancelled, want: false},
		{name: "returned adoption", status: StatusReturned, want: false},
		{name: "another holder remains", status: StatusApplied, others: 1, want: false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			pet, release := m.Release(&Adoption{Status: tc.status}, tc.others)
			assert.Equal(t, tc.want, release)
			if tc.want {
				assert.Equal(t, petdomain.StatusAvailable, pet)
			}
		})
	}
}

// Every reachable sequence of actions leaves the pet in one of its four statuses
// and never Available while an adoption still holds it.
func TestPetStatusStaysConsistent(t *testing.T) {
	actions := []string{"approve", "deny", "complete", "cancel", "return"}
	for _, m := range []Machine{approvalMachine(), simpleMachine()} {
		var walk func(a *Adoption, pet petdomain.Status, depth int)
		walk = func(a *Adoption, pet petdomain.Status, depth int) {
			require.True(t, pet.Valid())
			if a.HoldsPet() {
				assert.NotEqual(t, petdomain.StatusAvailable, pet)
			} else {
				assert.Equal(t, petdomain.StatusAvailable, pet)
			}
			if depth == 0 {
				return
			}
			for _, action := range actions {
				next := a.Clone()
				nextPet, err := step(m, action, next, pet)
				if err != nil {
					require.ErrorIs(t, err, ErrInvalidTransition)
					assert.Equal(t, *a, *next, "failed %s must not mutate", action)
					continue
				}
				walk(next, nextPet, depth-1)
			}
		}
		walk(apply(t, m), petdomain.StatusReserved, 4)
	}
}

func step(m Machine, action string, a *Adoption, pet petdomain.Status) (petdomain.Status, error) {
	switch action {
	case "approve":
		return pet, m.Approve(a)
	case "deny":
		return m.Deny(a)
	case "complete":
		return m.Complete(a)
	case "cancel":
		return m.Cancel(a)
	default:
		return m.Return(a)
	}
}

func TestParseVariant(t *testing.T) {
	v, err := ParseVariant("")
	require.NoError(t, err)
	assert.Equal(t, VariantApproval, v)
	v, err = ParseVariant("SIMPLE")
	require.NoError(t, err)
	assert.Equal(t, VariantSimple, v)
	_, err = ParseVariant("strict")
	require.ErrorIs(t, err, ErrInvalidPolicy)
}
