package memory

import (
	"context"
	"sync"
	"time"

	"github.com/Apurer/pet-adoption-center/internal/domains/tokens/domain"
	"github.com/Apurer/pet-adoption-center/internal/domains/tokens/ports"
)

// Store keeps revocations in process memory, keyed by token id.
type Store struct {
	revoked sync.Map
}

func NewStore() *Store {
	return &Store{}
}

func (s *Store) Revoke(_ context.Context, rev *domain.Revocation) error {
	s.revoked.LoadOrStore(rev.TokenID, *rev)
	return nil
}

func (s *Store) IsRevoked(_ context.Context, tokenID string) (bool, error) {
	_, ok := s.revoked.Load(tokenID)
	return ok, nil
}

func (s *Store) PurgeExpired(_ context.Context, now time.Time) (int64, error) {
	var purged int64
	s.revoked.Range(func(key, value any) bool {
		rev := value.(domain.Revocation)
		if rev.Expired(now) {
			s.revoked.Delete(key)
			purged++
		}
		return true
	})
	return purged, nil
}

var _ ports.Store = (*Store)(nil)
