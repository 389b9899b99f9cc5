//go:build integration
// +build integration

// To enable gopls support for this file, add the following to your VSCode settings.json:
// "gopls": {
//   "buildFlags": ["-tags=integration"]
// }

package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Apurer/pet-adoption-center/internal/domains/pets/domain"
	"github.com/Apurer/pet-adoption-center/internal/domains/pets/ports"
	"github.com/Apurer/pet-adoption-center/internal/platform/postgres/pgtest"
)

func newPet(t *testing.T, name, species string, arrived time.Time) *domain.Pet {
	t.Helper()
	pet, err := domain.NewPet(name, species, arrived)
	require.NoError(t, err)
	return pet
}

func TestPostgresRepository_SaveAndGetByID(t *testing.T) {
	db := pgtest.Start(t)

	repo := NewRepository(db)
	ctx := context.Background()

	pet := newPet(t, "Buddy", "Dog", time.Date(2024, 4, 2, 0, 0, 0, 0, time.UTC))
	pet.UpdateDescription("Labrador", "Black", "Friendly", "", "http://example.com/buddy.jpg")
	require.NoError(t, pet.SetAge(4))

	saved, err := repo.Save(ctx, pet)
	require.NoError(t, err)
	assert.NotZero(t, saved.Entity.ID)
	assert.False(t, saved.Metadata.CreatedAt.IsZero())

	retrieved, err := repo.GetByID(ctx, saved.Entity.ID)
	require.NoError(t, err)
	assert.Equal(t, "Buddy", retrieved.Entity.Name)
	assert.Equal(t, "Labrador", retrieved.Entity.Breed)
	assert.Equal(t, 4, retrieved.Entity.Age)
	assert.Equal(t, domain.StatusAvailable, retrieved.Entity.Status)
	assert.True(t, retrieved.Entity.DateArrived.Equal(pet.DateArrived))
}

func TestPostgresRepository_ListFiltersAndSpecies(t *testing.T) {
	db := pgtest.Start(t)

	repo := NewRepository(db)
	ctx := context.Background()
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	dog := newPet(t, "Rex", "Dog", base)
	cat := newPet(t, "Whiskers", "Cat", base.AddDate(0, 0, 3))
	held := newPet(t, "Shadow", "Cat", base.AddDate(0, 0, 1))
	held.UpdateDescription("Siamese", "", "", "", "")
	require.NoError(t, held.ChangeStatusManually(domain.StatusMedicalHold))
	for _, p := range []*domain.Pet{dog, cat, held} {
		_, err := repo.Save(ctx, p)
		require.NoError(t, err)
	}

	all, err := repo.List(ctx, ports.Filter{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "Whiskers", all[0].Entity.Name)

	cats, err := repo.List(ctx, ports.Filter{Species: "cat", Status: domain.StatusAvailable})
	require.NoError(t, err)
	require.Len(t, cats, 1)
	assert.Equal(t, "Whiskers", cats[0].Entity.Name)

	found, err := repo.List(ctx, ports.Filter{Search: "SIAM"})
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "Shadow", found[0].Entity.Name)

	species, err := repo.Species(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Cat", "Dog"}, species)
}

func TestPostgresRepository_UpdateAndDelete(t *testing.T) {
	db := pgtest.Start(t)

	repo := NewRepository(db)
	ctx := context.Background()

	saved, err := repo.Save(ctx, newPet(t, "Original", "Dog", time.Now()))
	require.NoError(t, err)
	id := saved.Entity.ID

	time.Sleep(10 * time.Millisecond)
	updated, err := repo.Update(ctx, id, func(p *domain.Pet) error {
		return p.Rename("Renamed")
	})
	require.NoError(t, err)
	assert.Equal(t, "Renamed", updated.Entity.Name)
	assert.Equal(t, saved.Metadata.CreatedAt.Unix(), updated.Metadata.CreatedAt.Unix())

	_, err = repo.Update(ctx, id, func(p *domain.Pet) error {
		return p.ChangeStatusManually(domain.StatusAdopted)
	})
	require.ErrorIs(t, err, domain.ErrStatusManagedElsewhere)

	require.NoError(t, repo.Delete(ctx, id))
	_, err = repo.GetByID(ctx, id)
	assert.ErrorIs(t, err, ports.ErrNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, id), ports.ErrNotFound)
}
