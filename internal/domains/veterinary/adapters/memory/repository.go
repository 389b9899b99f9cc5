package memory

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/Apurer/pet-adoption-center/internal/domains/veterinary/domain"
	"github.com/Apurer/pet-adoption-center/internal/domains/veterinary/ports"
)

var _ ports.Repository = (*Repository)(nil)

// Repository keeps visits and vaccinations in memory behind one lock so the
// visit cascade is atomic.
type Repository struct {
	mu           sync.RWMutex
	visits       map[int64]*domain.Visit
	vaccinations map[int64]*domain.Vaccination
	nextVisit    int64
	nextDose     int64
}

func NewRepository() *Repository {
	return &Repository{
		visits:       map[int64]*domain.Visit{},
		vaccinations: map[int64]*domain.Vaccination{},
	}
}

func (r *Repository) CreateVisit(_ context.Context, v *domain.Visit) (*domain.Visit, error) {
	if v == nil {
		return nil, errors.New("visit is nil")
	}
	if err := v.Validate(); err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	clone := v.Clone()
	r.nextVisit++
	clone.ID = r.nextVisit
	r.visits[clone.ID] = clone
	return clone.Clone(), nil
}

func (r *Repository) UpdateVisit(_ context.Context, id int64, mutate func(*domain.Visit) error) (*domain.Visit, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	current, ok := r.visits[id]
	if !ok {
		return nil, ports.ErrVisitNotFound
	}
	working := current.Clone()
	if err := mutate(working); err != nil {
		return nil, err
	}
	working.ID, working.PetID = id, current.PetID
	r.visits[id] = working
	return working.Clone(), nil
}

func (r *Repository) GetVisit(_ context.Context, id int64) (*domain.Visit, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	v, ok := r.visits[id]
	if !ok {
		return nil, ports.ErrVisitNotFound
	}
	return v.Clone(), nil
}

func (r *Repository) ListVisits(_ context.Context, filter ports.VisitFilter) ([]*domain.Visit, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	list := []*domain.Visit{}
	for _, v := range r.visits {
		if filter.PetID != 0 && v.PetID != filter.PetID {
			continue
		}
		if filter.VisitType != "" && v.VisitType != filter.VisitType {
			continue
		}
		list = append(list, v.Clone())
	}
	sort.Slice(list, func(i, j int) bool {
		if !list[i].VisitDate.Equal(list[j].VisitDate) {
			return list[i].VisitDate.After(list[j].VisitDate)
		}
		return list[i].ID > list[j].ID
	})
	return list, nil
}

func (r *Repository) DeleteVisit(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.visits[id]; !ok {
		return ports.ErrVisitNotFound
	}
	r.dropVisit(id)
	return nil
}

func (r *Repository) DeleteByPet(_ context.Context, petID int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, v := range r.visits {
		if v.PetID == petID {
			r.dropVisit(id)
		}
	}
	return nil
}

func (r *Repository) CountVisits(_ context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.visits), nil
}

func (r *Repository) CreateVaccination(_ context.Context, v *domain.Vaccination) (*domain.Vaccination, error) {
	if v == nil {
		return nil, errors.New("vaccination is nil")
	}
	if err := v.Validate(); err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.visits[v.VisitID]; !ok {
		return nil, ports.ErrVisitNotFound
	}
	clone := v.Clone()
	r.nextDose++
	clone.ID = r.nextDose
	r.vaccinations[clone.ID] = clone
	return clone.Clone(), nil
}

func (r *Repository) UpdateVaccination(_ context.Context, id int64, mutate func(*domain.Vaccination) error) (*domain.Vaccination, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	current, ok := r.vaccinations[id]
	if !ok {
		return nil, ports.ErrVaccinationNotFound
	}
	working := current.Clone()
	if err := mutate(working); err != nil {
		return nil, err
	}
	working.ID, working.VisitID = id, current.VisitID
	r.vaccinations[id] = working
	return working.Clone(), nil
}

func (r *Repository) GetVaccination(_ context.Context, id int64) (*domain.Vaccination, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	v, ok := r.vaccinations[id]
	if !ok {
		return nil, ports.ErrVaccinationNotFound
	}
	return v.Clone(), nil
}

func (r *Repository) ListVaccinations(_ context.Context, filter ports.VaccinationFilter) ([]*domain.Vaccination, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	list := []*domain.Vaccination{}
	for _, v := range r.vaccinations {
		if !r.matches(v, filter) {
			continue
		}
		list = append(list, v.Clone())
	}
	sort.Slice(list, func(i, j int) bool {
		if !list[i].DateAdministered.Equal(list[j].DateAdministered) {
			return list[i].DateAdministered.After(list[j].DateAdministered)
		}
		return list[i].ID > list[j].ID
	})
	return list, nil
}

func (r *Repository) DeleteVaccination(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.vaccinations[id]; !ok {
		return ports.ErrVaccinationNotFound
	}
	delete(r.vaccinations, id)
	return nil
}

func (r *Repository) CountVaccinations(_ context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.vaccinations), nil
}

// matches expects the read lock to be held.
func (r *Repository) matches(v *domain.Vaccination, f ports.VaccinationFilter) bool {
	if f.VisitID != 0 && v.VisitID != f.VisitID {
		return false
	}
	if f.Status != "" && v.Status != f.Status {
		return false
	}
	if f.Outstanding && v.Status == domain.VaccinationCompleted {
		return false
	}
	if !f.DueBefore.IsZero() && (v.NextDueDate == nil || !v.NextDueDate.Before(f.DueBefore)) {
		return false
	}
	if f.PetID != 0 {
		visit, ok := r.visits[v.VisitID]
		if !ok || visit.PetID != f.PetID {
			return false
		}
	}
	return true
}

// dropVisit expects the write lock to be held.
func (r *Repository) dropVisit(id int64) {
	delete(r.visits, id)
	for doseID, dose := range r.vaccinations {
		if dose.VisitID == id {
			delete(r.vaccinations, doseID)
		}
	}
}
