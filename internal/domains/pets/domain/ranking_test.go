package domain

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(d int) time.Time {
	return time.Date(2024, 3, d, 0, 0, 0, 0, time.UTC)
}

func petWith(id int64, name string, status Status, arrived time.Time) *Pet {
	return &Pet{ID: id, Name: name, Species: "Dog", Status: status, DateArrived: arrived}
}

func TestPopularKeepsTiesAtBoundary(t *testing.T) {
	counts := []int{5, 5, 4, 3, 3, 3, 2, 1, 1, 1, 1}
	pets := make([]*Pet, 0, len(counts))
	favorites := map[int64]int{}
	for i, n := range counts {
		id := int64(i + 1)
		pets = append(pets, petWith(id, fmt.Sprintf("Pet %02d", id), StatusAvailable, day(1)))
		favorites[id] = n
	}

	got := Popular(pets, favorites, PopularDistinctCounts)

	// Five distinct counts are fewer than ten, so the boundary falls to the minimum.
	require.Len(t, got, 11)
	assert.Equal(t, 5, got[0].FavoriteCount)
	assert.Equal(t, 1, got[0].Rank)
	assert.Equal(t, "Pet 01", got[0].Pet.Name)
	assert.Equal(t, "Pet 02", got[1].Pet.Name)
	assert.Equal(t, 2, got[2].Rank)
	assert.Equal(t, 3, got[3].Rank)
	assert.Equal(t, 4, got[6].Rank)
	assert.Equal(t, 1, got[len(got)-1].FavoriteCount)
	assert.Equal(t, 5, got[len(got)-1].Rank)
}

func TestPopularCutsAtTenthDistinctCount(t *testing.T) {
	// Counts 12 down to 1 give twelve distinct values; the tenth is 3.
	var pets []*Pet
	favorites := map[int64]int{}
	for n := 12; n >= 1; n-- {
		id := int64(13 - n)
		pets = append(pets, petWith(id, fmt.Sprintf("Count %02d", n), StatusAvailable, day(1)))
		favorites[id] = n
	}
	pets = append(pets, petWith(100, "Also Three", StatusAvailable, day(1)))
	favorites[100] = 3

	got := Popular(pets, favorites, PopularDistinctCounts)

	require.Len(t, got, 11)
	last := got[len(got)-1]
	assert.Equal(t, 3, last.FavoriteCount)
	assert.Equal(t, 10, last.Rank)
	assert.Equal(t, "Also Three", got[len(got)-2].Pet.Name)
	for _, r := range got {
		assert.GreaterOrEqual(t, r.FavoriteCount, 3)
	}
}

func TestPopularIgnoresUnavailableAndUnfavoritedPets(t *testing.T) {
	pets := []*Pet{
		petWith(1, "Adopted", StatusAdopted, day(1)),
		petWith(2, "Reserved", StatusReserved, day(1)),
		petWith(3, "Nobody", StatusAvailable, day(1)),
		petWith(4, "Liked", StatusAvailable, day(1)),
	}
	favorites := map[int64]int{1: 9, 2: 7, 4: 1}

	got := Popular(pets, favorites, PopularDistinctCounts)
	require.Len(t, got, 1)
	assert.Equal(t, int64(4), got[0].Pet.ID)
	assert.Equal(t, 1, got[0].Rank)

	assert.Empty(t, Popular(nil, nil, PopularDistinctCounts))
}

func TestNewArrivalsIncludesTiesOnFifthDay(t *testing.T) {
	pets := []*Pet{
		petWith(1, "A", StatusAvailable, day(10)),
		petWith(2, "B", StatusAvailable, day(9)),
		petWith(3, "C", StatusAvailable, day(8)),
		petWith(4, "D", StatusAvailable, day(7)),
		petWith(5, "Zed", StatusAvailable, day(6)),
		petWith(6, "Eve", StatusAvailable, day(6)),
		petWith(7, "Max", StatusAvailable, day(6)),
		petWith(8, "Old", StatusAvailable, day(1)),
		petWith(9, "Gone", StatusAdopted, day(11)),
	}

	got := NewArrivals(pets, NewArrivalDistinctDays)

	require.Len(t, got, 7)
	names := make([]string, 0, len(got))
	for _, p := range got {
		names = append(names, p.Name)
	}
	assert.Equal(t, []string{"A", "B", "C", "D", "Eve", "Max", "Zed"}, names)
}

func TestNewArrivalsWithFewDistinctDays(t *testing.T) {
	pets := []*Pet{
		petWith(1, "A", StatusAvailable, day(2)),
		petWith(2, "B", StatusAvailable, day(1)),
		petWith(3, "C", StatusMedicalHold, day(3)),
	}
	got := NewArrivals(pets, NewArrivalDistinctDays)
	require.Len(t, got, 2)
	assert.Equal(t, "A", got[0].Name)

	assert.Empty(t, NewArrivals([]*Pet{petWith(1, "X", StatusReserved, day(1))}, NewArrivalDistinctDays))
}
