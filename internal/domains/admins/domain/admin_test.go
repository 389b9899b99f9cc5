package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRole(t *testing.T) {
	cases := []struct {
		raw     string
		want    Role
		wantErr error
	}{
		{raw: "", want: RoleAdmin},
		{raw: "Super_Admin", want: RoleSuperAdmin},
		{raw: " staff ", want: RoleStaff},
		{raw: "owner", wantErr: ErrInvalidRole},
	}
	for _, tc := range cases {
		t.Run(tc.raw, func(t *testing.T) {
			got, err := ParseRole(tc.raw)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestNewAdmin(t *testing.T) {
	admin, err := NewAdmin(" Boss@Shelter.org ", "Head Keeper", RoleSuperAdmin)
	require.NoError(t, err)
	assert.Equal(t, "boss@shelter.org", admin.Email)
	assert.True(t, admin.IsActive)
	assert.True(t, admin.IsSuperAdmin())

	_, err = NewAdmin("not-an-email", "X", RoleAdmin)
	require.ErrorIs(t, err, ErrInvalidEmail)

	_, err = NewAdmin("a@b.org", "  ", RoleAdmin)
	require.ErrorIs(t, err, ErrEmptyFullName)
}

func TestToggleActive(t *testing.T) {
	admin := &Admin{ID: 2, IsActive: true}

	require.ErrorIs(t, admin.ToggleActive(2), ErrSelfDeactivation)
	assert.True(t, admin.IsActive)

	require.NoError(t, admin.ToggleActive(1))
	assert.False(t, admin.IsActive)
	require.NoError(t, admin.ToggleActive(1))
	assert.True(t, admin.IsActive)
}
