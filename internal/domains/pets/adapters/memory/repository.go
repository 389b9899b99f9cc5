package memory

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/Apurer/pet-adoption-center/internal/domains/pets/domain"
	"github.com/Apurer/pet-adoption-center/internal/domains/pets/ports"
	"github.com/Apurer/pet-adoption-center/internal/shared/projection"
)

var _ ports.Repository = (*Repository)(nil)

// Repository is an in-memory implementation used for demos/tests.
type Repository struct {
	mu     sync.RWMutex
	pets   map[int64]*storedPet
	nextID int64
	now    func() time.Time
}

type storedPet struct {
	pet      *domain.Pet
	metadata projection.Metadata
}

// NewRepository constructs an empty in-memory store.
func NewRepository() *Repository {
	return &Repository{
		pets: map[int64]*storedPet{},
		now:  time.Now,
	}
}

// WithClock overrides the clock used for metadata timestamps.
func (r *Repository) WithClock(now func() time.Time) {
	if now == nil {
		return
	}
	r.mu.Lock()
	r.now = now
	r.mu.Unlock()
}

// Save inserts a pet, assigning an ID when it has none, or replaces an existing one.
func (r *Repository) Save(_ context.Context, pet *domain.Pet) (*projection.Projection[*domain.Pet], error) {
	if pet == nil {
		return nil, errors.New("cannot save nil pet")
	}
	if err := pet.Validate(); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	clone := pet.Clone()
	if clone.ID == 0 {
		r.nextID++
		clone.ID = r.nextID
	} else if clone.ID > r.nextID {
		r.nextID = clone.ID
	}
	timestamp := r.now()
	metadata := projection.Metadata{CreatedAt: timestamp, UpdatedAt: timestamp}
	if entry, ok := r.pets[clone.ID]; ok {
		metadata.CreatedAt = entry.metadata.CreatedAt
	}
	stored := &storedPet{pet: clone, metadata: metadata}
	r.pets[clone.ID] = stored
	return projectionCopy(stored), nil
}

// Update applies mutate to a copy of the stored pet and keeps it only when mutate succeeds.
func (r *Repository) Update(_ context.Context, id int64, mutate func(*domain.Pet) error) (*projection.Projection[*domain.Pet], error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	entry, ok := r.pets[id]
	if !ok {
		return nil, ports.ErrNotFound
	}
	working := entry.pet.Clone()
	if err := mutate(working); err != nil {
		return nil, err
	}
	if err := working.Validate(); err != nil {
		return nil, err
	}
	working.ID = id
	entry.pet = working
	entry.metadata.UpdatedAt = r.now()
	return projectionCopy(entry), nil
}

// GetByID fetches a pet if present.
func (r *Repository) GetByID(_ context.Context, id int64) (*projection.Projection[*domain.Pet], error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	entry, ok := r.pets[id]
	if !ok {
		return nil, ports.ErrNotFound
	}
	return projectionCopy(entry), nil
}

// Delete removes a pet.
func (r *Repository) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.pets[id]; !ok {
		return ports.ErrNotFound
	}
	delete(r.pets, id)
	return nil
}

// List returns pets matching filter, most recent arrival first.
func (r *Repository) List(_ context.Context, filter ports.Filter) ([]*projection.Projection[*domain.Pet], error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	search := strings.ToLower(filter.Search)
	list := make([]*projection.Projection[*domain.Pet], 0, len(r.pets))
	for _, entry := range r.pets {
		p := entry.pet
		if filter.Species != "" && !strings.EqualFold(p.Species, filter.Species) {
			continue
		}
		if filter.Status != "" && p.Status != filter.Status {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(p.Name), search) &&
			!strings.Contains(strings.ToLower(p.Breed), search) {
			continue
		}
		list = append(list, projectionCopy(entry))
	}
	sort.Slice(list, func(i, j int) bool {
		a, b := list[i].Entity, list[j].Entity
		if !a.DateArrived.Equal(b.DateArrived) {
			return a.DateArrived.After(b.DateArrived)
		}
		return a.ID > b.ID
	})
	return list, nil
}

// Species returns every distinct species, sorted.
func (r *Repository) Species(_ context.Context) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	seen := map[string]struct{}{}
	species := []string{}
	for _, entry := range r.pets {
		if _, ok := seen[entry.pet.Species]; ok {
			continue
		}
		seen[entry.pet.Species] = struct{}{}
		species = append(species, entry.pet.Species)
	}
	sort.Strings(species)
	return species, nil
}

// PetStatus reports the current status of a pet.
func (r *Repository) PetStatus(_ context.Context, id int64) (domain.Status, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	entry, ok := r.pets[id]
	if !ok {
		return "", ports.ErrNotFound
	}
	return entry.pet.Status, nil
}

// SetPetStatus overwrites a pet's status. It is the write path for adoption transitions.
func (r *Repository) SetPetStatus(_ context.Context, id int64, status domain.Status) error {
	if !status.Valid() {
		return domain.ErrInvalidStatus
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	entry, ok := r.pets[id]
	if !ok {
		return ports.ErrNotFound
	}
	working := entry.pet.Clone()
	working.Status = status
	entry.pet = working
	entry.metadata.UpdatedAt = r.now()
	return nil
}

func projectionCopy(entry *storedPet) *projection.Projection[*domain.Pet] {
	return projection.New(entry.pet.Clone(), entry.metadata.CreatedAt, entry.metadata.UpdatedAt)
}
