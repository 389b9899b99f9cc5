package ports

import (
	"context"

	"github.com/Apurer/pet-adoption-center/internal/platform/auth"
)

// Service exposes token revocation use cases to adapters.
type Service interface {
	// Revoke blocks the token described by claims until it expires.
	Revoke(ctx context.Context, claims *auth.Claims) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
	PurgeExpired(ctx context.Context) (int64, error)
}
