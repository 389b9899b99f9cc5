package memory

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"

	"github.com/Apurer/pet-adoption-center/internal/domains/favorites/domain"
	"github.com/Apurer/pet-adoption-center/internal/domains/favorites/ports"
)

var _ ports.Repository = (*Repository)(nil)

type pair struct{ adopterID, petID int64 }

// Repository keeps favorites in memory with an index on the adopter and pet pair.
type Repository struct {
	mu     sync.RWMutex
	byID   map[int64]*domain.Favorite
	byPair map[pair]int64
	nextID int64
}

func NewRepository() *Repository {
	return &Repository{
		byID:   map[int64]*domain.Favorite{},
		byPair: map[pair]int64{},
	}
}

func (r *Repository) Create(_ context.Context, f *domain.Favorite) (*domain.Favorite, error) {
	if f == nil {
		return nil, errors.New("favorite is nil")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	key := pair{f.AdopterID, f.PetID}
	if _, taken := r.byPair[key]; taken {
		return nil, ports.ErrDuplicate
	}
	clone := f.Clone()
	r.nextID++
	clone.ID = r.nextID
	r.byID[clone.ID] = clone
	r.byPair[key] = clone.ID
	return clone.Clone(), nil
}

func (r *Repository) UpdateNotes(_ context.Context, id int64, notes string) (*domain.Favorite, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	f, ok := r.byID[id]
	if !ok {
		return nil, ports.ErrNotFound
	}
	f.Notes = strings.TrimSpace(notes)
	return f.Clone(), nil
}

func (r *Repository) GetByID(_ context.Context, id int64) (*domain.Favorite, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	f, ok := r.byID[id]
	if !ok {
		return nil, ports.ErrNotFound
	}
	return f.Clone(), nil
}

func (r *Repository) GetByPair(_ context.Context, adopterID, petID int64) (*domain.Favorite, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	id, ok := r.byPair[pair{adopterID, petID}]
	if !ok {
		return nil, ports.ErrNotFound
	}
	return r.byID[id].Clone(), nil
}

func (r *Repository) ListByAdopter(_ context.Context, adopterID int64) ([]*domain.Favorite, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	list := []*domain.Favorite{}
	for _, f := range r.byID {
		if f.AdopterID == adopterID {
			list = append(list, f.Clone())
		}
	}
	sort.Slice(list, func(i, j int) bool {
		if !list[i].DateAdded.Equal(list[j].DateAdded) {
			return list[i].DateAdded.After(list[j].DateAdded)
		}
		return list[i].ID > list[j].ID
	})
	return list, nil
}

func (r *Repository) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	f, ok := r.byID[id]
	if !ok {
		return ports.ErrNotFound
	}
	r.remove(f)
	return nil
}

func (r *Repository) DeleteByPair(_ context.Context, adopterID, petID int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	id, ok := r.byPair[pair{adopterID, petID}]
	if !ok {
		return ports.ErrNotFound
	}
	r.remove(r.byID[id])
	return nil
}

func (r *Repository) DeleteByPet(_ context.Context, petID int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, f := range r.byID {
		if f.PetID == petID {
			r.remove(f)
		}
	}
	return nil
}

func (r *Repository) DeleteByAdopter(_ context.Context, adopterID int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, f := range r.byID {
		if f.AdopterID == adopterID {
			r.remove(f)
		}
	}
	return nil
}

func (r *Repository) CountByPet(_ context.Context) (map[int64]int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	counts := map[int64]int{}
	for _, f := range r.byID {
		counts[f.PetID]++
	}
	return counts, nil
}

func (r *Repository) CountByAdopter(_ context.Context) (map[int64]int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	counts := map[int64]int{}
	for _, f := range r.byID {
		counts[f.AdopterID]++
	}
	return counts, nil
}

// remove expects the write lock to be held.
func (r *Repository) remove(f *domain.Favorite) {
	delete(r.byID, f.ID)
	delete(r.byPair, pair{f.AdopterID, f.PetID})
}
