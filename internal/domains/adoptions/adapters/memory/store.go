package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/Apurer/pet-adoption-center/internal/domains/adoptions/domain"
	"github.com/Apurer/pet-adoption-center/internal/domains/adoptions/ports"
	petdomain "github.com/Apurer/pet-adoption-center/internal/domains/pets/domain"
)

var (
	_ ports.Repository = (*Store)(nil)
	_ ports.UnitOfWork = (*Store)(nil)
)

// PetStatuses is the pet status table the store coordinates with.
type PetStatuses interface {
	PetStatus(ctx context.Context, id int64) (petdomain.Status, error)
	SetPetStatus(ctx context.Context, id int64, status petdomain.Status) error
}

type storedAdoption struct {
	adoption  *domain.Adoption
	createdAt time.Time
}

// Store keeps adoptions in memory. Do holds one mutex for the whole unit of
// work and applies staged writes only when the callback succeeds.
type Store struct {
	mu        sync.Mutex
	adoptions map[int64]storedAdoption
	nextID    int64
	pets      PetStatuses
	now       func() time.Time
}

func NewStore(pets PetStatuses) *Store {
	return &Store{adoptions: map[int64]storedAdoption{}, pets: pets, now: time.Now}
}

func (s *Store) Do(ctx context.Context, fn func(tx ports.Tx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	tx := &memTx{
		store:     s,
		adoptions: make(map[int64]storedAdoption, len(s.adoptions)),
		nextID:    s.nextID,
		petWrites: map[int64]petdomain.Status{},
	}
	for id, entry := range s.adoptions {
		tx.adoptions[id] = entry
	}
	if err := fn(tx); err != nil {
		return err
	}
	for id, status := range tx.petWrites {
		if err := s.pets.SetPetStatus(ctx, id, status); err != nil {
			return err
		}
	}
	s.adoptions = tx.adoptions
	s.nextID = tx.nextID
	return nil
}

func (s *Store) GetByID(_ context.Context, id int64) (*domain.Adoption, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	entry, ok := s.adoptions[id]
	if !ok {
		return nil, ports.ErrNotFound
	}
	return entry.adoption.Clone(), nil
}

func (s *Store) List(_ context.Context, filter ports.Filter) ([]*domain.Adoption, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	entries := make([]storedAdoption, 0, len(s.adoptions))
	for _, entry := range s.adoptions {
		a := entry.adoption
		if filter.Status != "" && a.Status != filter.Status {
			continue
		}
		if filter.ApprovalStatus != "" && a.ApprovalStatus != filter.ApprovalStatus {
			continue
		}
		if filter.AdopterID != 0 && a.AdopterID != filter.AdopterID {
			continue
		}
		if filter.PetID != 0 && a.PetID != filter.PetID {
			continue
		}
		entries = append(entries, entry)
	}
	sort.Slice(entries, func(i, j int) bool {
		if !entries[i].createdAt.Equal(entries[j].createdAt) {
			return entries[i].createdAt.After(entries[j].createdAt)
		}
		return entries[i].adoption.ID > entries[j].adoption.ID
	})
	out := make([]*domain.Adoption, 0, len(entries))
	for _, entry := range entries {
		out = append(out, entry.adoption.Clone())
	}
	return out, nil
}

func (s *Store) CountByAdopter(_ context.Context) (map[int64]int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	counts := map[int64]int{}
	for _, entry := range s.adoptions {
		counts[entry.adoption.AdopterID]++
	}
	return counts, nil
}

func (s *Store) MonthlyStats(_ context.Context, from, to time.Time) (domain.MonthlyStats, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	stats := domain.MonthlyStats{Year: from.Year(), Month: from.Month()}
	for _, entry := range s.adoptions {
		applied := entry.adoption.ApplicationDate
		if applied.Before(from) || !applied.Before(to) {
			continue
		}
		stats.Add(entry.adoption)
	}
	stats.Finish()
	return stats, nil
}

// DeleteByPet drops a deleted pet's adoptions.
func (s *Store) DeleteByPet(_ context.Context, petID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, entry := range s.adoptions {
		if entry.adoption.PetID == petID {
			delete(s.adoptions, id)
		}
	}
	return nil
}

type memTx struct {
	store     *Store
	adoptions map[int64]storedAdoption
	nextID    int64
	petWrites map[int64]petdomain.Status
}

func (t *memTx) PetStatus(ctx context.Context, petID int64) (petdomain.Status, error) {
	if status, ok := t.petWrites[petID]; ok {
		return status, nil
	}
	return t.store.pets.PetStatus(ctx, petID)
}

func (t *memTx) SetPetStatus(ctx context.Context, petID int64, status petdomain.Status) error {
	if !status.Valid() {
		return petdomain.ErrInvalidStatus
	}
	if _, err := t.PetStatus(ctx, petID); err != nil {
		return err
	}
	t.petWrites[petID] = status
	return nil
}

func (t *memTx) Get(_ context.Context, id int64) (*domain.Adoption, error) {
	entry, ok := t.adoptions[id]
	if !ok {
		return nil, ports.ErrNotFound
	}
	return entry.adoption.Clone(), nil
}

func (t *memTx) Create(_ context.Context, a *domain.Adoption) (*domain.Adoption, error) {
	t.nextID++
	clone := a.Clone()
	clone.ID = t.nextID
	t.adoptions[clone.ID] = storedAdoption{adoption: clone, createdAt: t.store.now()}
	return clone.Clone(), nil
}

func (t *memTx) Save(_ context.Context, a *domain.Adoption) error {
	entry, ok := t.adoptions[a.ID]
	if !ok {
		return ports.ErrNotFound
	}
	entry.adoption = a.Clone()
	t.adoptions[a.ID] = entry
	return nil
}

func (t *memTx) Delete(_ context.Context, id int64) error {
	delete(t.adoptions, id)
	return nil
}

func (t *memTx) OtherHolders(_ context.Context, petID, excludeID int64) (int, error) {
	n := 0
	for id, entry := range t.adoptions {
		if id != excludeID && entry.adoption.PetID == petID && entry.adoption.HoldsPet() {
			n++
		}
	}
	return n, nil
}

func (t *memTx) ByAdopter(_ context.Context, adopterID int64) ([]*domain.Adoption, error) {
	var out []*domain.Adoption
	for _, entry := range t.adoptions {
		if entry.adoption.AdopterID == adopterID {
			out = append(out, entry.adoption.Clone())
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}
