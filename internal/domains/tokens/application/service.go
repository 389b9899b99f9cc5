package application

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Apurer/pet-adoption-center/internal/domains/tokens/domain"
	"github.com/Apurer/pet-adoption-center/internal/domains/tokens/ports"
	"github.com/Apurer/pet-adoption-center/internal/platform/auth"
	"github.com/Apurer/pet-adoption-center/internal/shared/errkind"
)

// Service records logouts and answers revocation checks for the auth middleware.
type Service struct {
	store ports.Store
	now   func() time.Time
}

type Option func(*Service)

// WithClock overrides the clock used to skip and purge expired tokens.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

func NewService(store ports.Store, opts ...Option) *Service {
	s := &Service{store: store, now: time.Now}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s
}

// Revoke stores the token id until its expiry. Tokens that already expired need no record.
func (s *Service) Revoke(ctx context.Context, claims *auth.Claims) error {
	if claims == nil {
		return errkind.Wrap(errkind.ErrAuth, auth.ErrMissingToken)
	}
	var expires time.Time
	if claims.ExpiresAt != nil {
		expires = claims.ExpiresAt.Time
	}
	rev, err := domain.NewRevocation(claims.RegisteredClaims.ID, subject(claims), expires)
	if err != nil {
		return mapError(err)
	}
	if rev.Expired(s.now()) {
		return nil
	}
	return mapError(s.store.Revoke(ctx, rev))
}

func (s *Service) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	tokenID = strings.TrimSpace(tokenID)
	if tokenID == "" {
		return false, nil
	}
	revoked, err := s.store.IsRevoked(ctx, tokenID)
	if err != nil {
		return false, mapError(err)
	}
	return revoked, nil
}

func (s *Service) PurgeExpired(ctx context.Context) (int64, error) {
	n, err := s.store.PurgeExpired(ctx, s.now())
	if err != nil {
		return 0, mapError(err)
	}
	return n, nil
}

func subject(claims *auth.Claims) string {
	if claims.IsAdmin {
		return fmt.Sprintf("admin:%d", claims.ID)
	}
	return fmt.Sprintf("adopter:%d", claims.ID)
}

var _ ports.Service = (*Service)(nil)
