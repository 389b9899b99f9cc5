package dates

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	d, err := Parse("2024-05-06")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 5, 6, 0, 0, 0, 0, time.UTC), d)

	d, err = Parse("2024-05-06T23:10:00Z")
	require.NoError(t, err)
	assert.Equal(t, "2024-05-06", Format(d))

	d, err = Parse("")
	require.NoError(t, err)
	assert.True(t, d.IsZero())

	_, err = Parse("06/05/2024")
	require.Error(t, err)
}

func TestSameDay(t *testing.T) {
	a := time.Date(2024, 1, 2, 1, 0, 0, 0, time.UTC)
	b := time.Date(2024, 1, 2, 22, 0, 0, 0, time.UTC)
	assert.True(t, SameDay(a, b))
	assert.False(t, SameDay(a, b.Add(3*time.Hour)))
}
