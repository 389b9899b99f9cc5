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

	adopterpostgres "github.com/Apurer/pet-adoption-center/internal/domains/adopters/adapters/persistence/postgres"
	adopterdomain "github.com/Apurer/pet-adoption-center/internal/domains/adopters/domain"
	"github.com/Apurer/pet-adoption-center/internal/domains/favorites/domain"
	"github.com/Apurer/pet-adoption-center/internal/domains/favorites/ports"
	petpostgres "github.com/Apurer/pet-adoption-center/internal/domains/pets/adapters/persistence/postgres"
	petdomain "github.com/Apurer/pet-adoption-center/internal/domains/pets/domain"
	"github.com/Apurer/pet-adoption-center/internal/platform/postgres/pgtest"
)

func TestPostgresRepository_UniquePairAndCascade(t *testing.T) {
	db := pgtest.Start(t)
	ctx := context.Background()

	pet, err := petdomain.NewPet("Rex", "Dog", time.Now())
	require.NoError(t, err)
	pets := petpostgres.NewRepository(db)
	savedPet, err := pets.Save(ctx, pet)
	require.NoError(t, err)
	petID := savedPet.Entity.ID

	adopter, err := adopterdomain.NewAdopter("fav@example.com", "Fav Adopter", "555-0101")
	require.NoError(t, err)
	adopter.PasswordHash = "hash"
	savedAdopter, err := adopterpostgres.NewRepository(db).Create(ctx, adopter)
	require.NoError(t, err)

	repo := NewRepository(db)
	f, err := domain.NewFavorite(savedAdopter.ID, petID, "cute", time.Now())
	require.NoError(t, err)
	created, err := repo.Create(ctx, f)
	require.NoError(t, err)
	assert.NotZero(t, created.ID)

	_, err = repo.Create(ctx, f)
	require.ErrorIs(t, err, ports.ErrDuplicate)

	updated, err := repo.UpdateNotes(ctx, created.ID, "very cute")
	require.NoError(t, err)
	assert.Equal(t, "very cute", updated.Notes)

	counts, err := repo.CountByPet(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, counts[petID])

	require.NoError(t, pets.Delete(ctx, petID))
	_, err = repo.GetByID(ctx, created.ID)
	assert.ErrorIs(t, err, ports.ErrNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, created.ID), ports.ErrNotFound)
}
