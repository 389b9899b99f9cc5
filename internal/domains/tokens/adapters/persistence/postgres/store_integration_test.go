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

	"github.com/Apurer/pet-adoption-center/internal/domains/tokens/domain"
	"github.com/Apurer/pet-adoption-center/internal/platform/postgres/pgtest"
)

func TestPostgresStore_RevokeAndPurge(t *testing.T) {
	store := NewStore(pgtest.Start(t))
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Second)

	soon, err := domain.NewRevocation("jti-soon", "adopter:1", now.Add(time.Minute))
	require.NoError(t, err)
	later, err := domain.NewRevocation("jti-later", "admin:1", now.Add(8*time.Hour))
	require.NoError(t, err)

	require.NoError(t, store.Revoke(ctx, soon))
	require.NoError(t, store.Revoke(ctx, soon))
	require.NoError(t, store.Revoke(ctx, later))

	revoked, err := store.IsRevoked(ctx, "jti-soon")
	require.NoError(t, err)
	assert.True(t, revoked)

	revoked, err = store.IsRevoked(ctx, "jti-missing")
	require.NoError(t, err)
	assert.False(t, revoked)

	purged, err := store.PurgeExpired(ctx, now.Add(time.Hour))
	require.NoError(t, err)
	assert.Equal(t, int64(1), purged)

	revoked, err = store.IsRevoked(ctx, "jti-soon")
	require.NoError(t, err)
	assert.False(t, revoked)
	revoked, err = store.IsRevoked(ctx, "jti-later")
	require.NoError(t, err)
	assert.True(t, revoked)
}
