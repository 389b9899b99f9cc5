package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFavorite(t *testing.T) {
	added := time.Date(2024, 6, 1, 9, 30, 0, 0, time.FixedZone("EST", -5*3600))

	f, err := NewFavorite(3, 7, "  likes walks ", added)
	require.NoError(t, err)
	assert.Equal(t, int64(3), f.AdopterID)
	assert.Equal(t, int64(7), f.PetID)
	assert.Equal(t, "likes walks", f.Notes)
	assert.Equal(t, time.UTC, f.DateAdded.Location())
	assert.True(t, f.OwnedBy(3))
	assert.False(t, f.OwnedBy(4))

	_, err = NewFavorite(0, 7, "", added)
	assert.ErrorIs(t, err, ErrMissingAdopter)
	_, err = NewFavorite(3, 0, "", added)
	assert.ErrorIs(t, err, ErrMissingPet)
}

func TestCloneIsIndependent(t *testing.T) {
	f, err := NewFavorite(1, 2, "a", time.Now())
	require.NoError(t, err)
	c := f.Clone()
	c.SetNotes("b")
	assert.Equal(t, "a", f.Notes)
	assert.Nil(t, (*Favorite)(nil).Clone())
}
