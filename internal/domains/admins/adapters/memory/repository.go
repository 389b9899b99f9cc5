package memory

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/Apurer/pet-adoption-center/internal/domains/admins/domain"
	"github.com/Apurer/pet-adoption-center/internal/domains/admins/ports"
)

var _ ports.Repository = (*Repository)(nil)

// Repository keeps admins in insertion order; the table stays small.
type Repository struct {
	mu     sync.RWMutex
	admins []*domain.Admin
	nextID int64
	now    func() time.Time
}

func NewRepository() *Repository {
	return &Repository{now: time.Now}
}

func (r *Repository) Create(_ context.Context, admin *domain.Admin) (*domain.Admin, error) {
	if admin == nil {
		return nil, errors.New("admin is nil")
	}
	clone := admin.Clone()
	if err := clone.Validate(); err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.indexOfEmail(clone.Email) >= 0 {
		return nil, ports.ErrDuplicateEmail
	}
	r.nextID++
	clone.ID = r.nextID
	clone.CreatedAt = r.now()
	r.admins = append(r.admins, clone)
	return clone.Clone(), nil
}

func (r *Repository) Update(_ context.Context, id int64, mutate func(*domain.Admin) error) (*domain.Admin, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	idx := r.indexOfID(id)
	if idx < 0 {
		return nil, ports.ErrNotFound
	}
	working := r.admins[idx].Clone()
	if err := mutate(working); err != nil {
		return nil, err
	}
	if err := working.Validate(); err != nil {
		return nil, err
	}
	if other := r.indexOfEmail(working.Email); other >= 0 && other != idx {
		return nil, ports.ErrDuplicateEmail
	}
	working.ID, working.CreatedAt = r.admins[idx].ID, r.admins[idx].CreatedAt
	r.admins[idx] = working
	return working.Clone(), nil
}

func (r *Repository) GetByID(_ context.Context, id int64) (*domain.Admin, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if idx := r.indexOfID(id); idx >= 0 {
		return r.admins[idx].Clone(), nil
	}
	return nil, ports.ErrNotFound
}

func (r *Repository) GetByEmail(_ context.Context, email string) (*domain.Admin, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if idx := r.indexOfEmail(domain.NormalizeEmail(email)); idx >= 0 {
		return r.admins[idx].Clone(), nil
	}
	return nil, ports.ErrNotFound
}

func (r *Repository) List(_ context.Context) ([]*domain.Admin, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*domain.Admin, 0, len(r.admins))
	for _, a := range r.admins {
		out = append(out, a.Clone())
	}
	return out, nil
}

func (r *Repository) Count(_ context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.admins)), nil
}

func (r *Repository) indexOfID(id int64) int {
	for i, a := range r.admins {
		if a.ID == id {
			return i
		}
	}
	return -1
}

func (r *Repository) indexOfEmail(email string) int {
	for i, a := range r.admins {
		if a.Email == email {
			return i
		}
	}
	return -1
}
