package memory

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/Apurer/pet-adoption-center/internal/domains/adopters/domain"
	"github.com/Apurer/pet-adoption-center/internal/domains/adopters/ports"
)

var _ ports.Repository = (*Repository)(nil)

// Repository is an in-memory adopter store keyed by ID with an email index.
type Repository struct {
	mu      sync.RWMutex
	byID    map[int64]*domain.Adopter
	byEmail map[string]int64
	nextID  int64
	now     func() time.Time
}

func NewRepository() *Repository {
	return &Repository{
		byID:    map[int64]*domain.Adopter{},
		byEmail: map[string]int64{},
		now:     time.Now,
	}
}

// WithClock overrides the clock used for CreatedAt.
func (r *Repository) WithClock(now func() time.Time) {
	if now != nil {
		r.now = now
	}
}

func (r *Repository) Create(_ context.Context, adopter *domain.Adopter) (*domain.Adopter, error) {
	if adopter == nil {
		return nil, errors.New("adopter is nil")
	}
	clone := adopter.Clone()
	if err := clone.Validate(); err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, taken := r.byEmail[clone.Email]; taken {
		return nil, ports.ErrDuplicateEmail
	}
	r.nextID++
	clone.ID = r.nextID
	clone.CreatedAt = r.now()
	r.byID[clone.ID] = clone
	r.byEmail[clone.Email] = clone.ID
	return clone.Clone(), nil
}

func (r *Repository) Update(_ context.Context, id int64, mutate func(*domain.Adopter) error) (*domain.Adopter, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	current, ok := r.byID[id]
	if !ok {
		return nil, ports.ErrNotFound
	}
	working := current.Clone()
	if err := mutate(working); err != nil {
		return nil, err
	}
	if err := working.Validate(); err != nil {
		return nil, err
	}
	working.ID, working.CreatedAt = current.ID, current.CreatedAt
	if working.Email != current.Email {
		if _, taken := r.byEmail[working.Email]; taken {
			return nil, ports.ErrDuplicateEmail
		}
		delete(r.byEmail, current.Email)
		r.byEmail[working.Email] = id
	}
	r.byID[id] = working
	return working.Clone(), nil
}

func (r *Repository) GetByID(_ context.Context, id int64) (*domain.Adopter, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	adopter, ok := r.byID[id]
	if !ok {
		return nil, ports.ErrNotFound
	}
	return adopter.Clone(), nil
}

func (r *Repository) GetByEmail(_ context.Context, email string) (*domain.Adopter, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	id, ok := r.byEmail[domain.NormalizeEmail(email)]
	if !ok {
		return nil, ports.ErrNotFound
	}
	return r.byID[id].Clone(), nil
}

func (r *Repository) List(_ context.Context) ([]*domain.Adopter, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	list := make([]*domain.Adopter, 0, len(r.byID))
	for _, a := range r.byID {
		list = append(list, a.Clone())
	}
	sort.Slice(list, func(i, j int) bool {
		if !list[i].CreatedAt.Equal(list[j].CreatedAt) {
			return list[i].CreatedAt.After(list[j].CreatedAt)
		}
		return list[i].ID > list[j].ID
	})
	return list, nil
}

func (r *Repository) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	adopter, ok := r.byID[id]
	if !ok {
		return ports.ErrNotFound
	}
	delete(r.byEmail, adopter.Email)
	delete(r.byID, id)
	return nil
}
