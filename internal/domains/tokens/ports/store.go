package ports

import (
	"context"
	"time"

	"github.com/Apurer/pet-adoption-center/internal/domains/tokens/domain"
)

// Store persists revoked token identifiers.
type Store interface {
	// Revoke records the revocation. Revoking the same token twice is not an error.
	Revoke(ctx context.Context, rev *domain.Revocation) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
	// PurgeExpired deletes revocations whose tokens expired at or before now.
	PurgeExpired(ctx context.Context, now time.Time) (int64, error)
}
