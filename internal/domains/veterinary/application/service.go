package application

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"github.com/Apurer/pet-adoption-center/internal/domains/veterinary/domain"
	"github.com/Apurer/pet-adoption-center/internal/domains/veterinary/ports"
	"github.com/Apurer/pet-adoption-center/internal/shared/dates"
	"github.com/Apurer/pet-adoption-center/internal/shared/errkind"
)

// Service manages veterinary visits and the vaccinations given on them.
type Service struct {
	repo ports.Repository
	pets ports.PetDirectory
	now  func() time.Time
}

type Option func(*Service)

// WithPetDirectory supplies the lookup that validates and names pets.
func WithPetDirectory(pets ports.PetDirectory) Option {
	return func(s *Service) { s.pets = pets }
}

// WithClock overrides the clock used to decide what is overdue.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

func NewService(repo ports.Repository, opts ...Option) *Service {
	s := &Service{repo: repo, now: time.Now}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s
}

func (s *Service) ListVisits(ctx context.Context, input ports.ListVisitsInput) ([]domain.VisitView, error) {
	filter := ports.VisitFilter{PetID: input.PetID}
	if strings.TrimSpace(input.VisitType) != "" {
		vt, err := domain.ParseVisitType(input.VisitType)
		if err != nil {
			return nil, mapError(err)
		}
		filter.VisitType = vt
	}
	visits, err := s.repo.ListVisits(ctx, filter)
	if err != nil {
		return nil, mapError(err)
	}
	names := newPetNames(s.pets)
	out := make([]domain.VisitView, 0, len(visits))
	for _, v := range visits {
		pet, err := names.lookup(ctx, v.PetID)
		if err != nil {
			return nil, err
		}
		out = append(out, domain.VisitView{Visit: v, Pet: pet})
	}
	return out, nil
}

// GetVisit loads a visit with its pet and vaccinations.
func (s *Service) GetVisit(ctx context.Context, id int64) (*domain.VisitView, error) {
	v, err := s.repo.GetVisit(ctx, id)
	if err != nil {
		return nil, mapError(err)
	}
	return s.visitView(ctx, v)
}

// CreateVisit records a visit for an existing pet.
func (s *Service) CreateVisit(ctx context.Context, input ports.CreateVisitInput) (*domain.VisitView, error) {
	if input.PetID <= 0 {
		return nil, mapError(domain.ErrMissingPet)
	}
	if s.pets != nil {
		if _, err := s.pets.PetSummary(ctx, input.PetID); err != nil {
			return nil, mapError(notFoundAs(err, ports.ErrPetNotFound))
		}
	}
	visit := &domain.Visit{PetID: input.PetID}
	if err := applyVisitFields(visit, input.VisitFields); err != nil {
		return nil, mapError(err)
	}
	if err := visit.Validate(); err != nil {
		return nil, mapError(err)
	}
	saved, err := s.repo.CreateVisit(ctx, visit)
	if err != nil {
		return nil, mapError(err)
	}
	return s.visitView(ctx, saved)
}

func (s *Service) UpdateVisit(ctx context.Context, input ports.UpdateVisitInput) (*domain.VisitView, error) {
	saved, err := s.repo.UpdateVisit(ctx, input.ID, func(v *domain.Visit) error {
		if err := applyVisitFields(v, input.VisitFields); err != nil {
			return err
		}
		return v.Validate()
	})
	if err != nil {
		return nil, mapError(err)
	}
	return s.visitView(ctx, saved)
}

// DeleteVisit removes a visit and its vaccinations.
func (s *Service) DeleteVisit(ctx context.Context, id int64) error {
	return mapError(s.repo.DeleteVisit(ctx, id))
}

func (s *Service) ListVaccinations(ctx context.Context, input ports.ListVaccinationsInput) ([]domain.VaccinationView, error) {
	filter := ports.VaccinationFilter{PetID: input.PetID}
	if strings.TrimSpace(input.Status) != "" {
		status, err := domain.ParseVaccinationStatus(input.Status)
		if err != nil {
			return nil, mapError(err)
		}
		filter.Status = status
	}
	return s.vaccinationViews(ctx, filter)
}

func (s *Service) GetVaccination(ctx context.Context, id int64) (*domain.VaccinationView, error) {
	v, err := s.repo.GetVaccination(ctx, id)
	if err != nil {
		return nil, mapError(err)
	}
	return s.vaccinationView(ctx, v, newPetNames(s.pets))
}

// CreateVaccination records a dose against an existing visit. Status defaults to Completed.
func (s *Service) CreateVaccination(ctx context.Context, input ports.CreateVaccinationInput) (*domain.VaccinationView, error) {
	if input.VisitID <= 0 {
		return nil, mapError(domain.ErrMissingVisit)
	}
	if _, err := s.repo.GetVisit(ctx, input.VisitID); err != nil {
		return nil, mapError(err)
	}
	v := &domain.Vaccination{VisitID: input.VisitID, Status: domain.VaccinationCompleted}
	if err := applyVaccinationFields(v, input.VaccinationFields); err != nil {
		return nil, mapError(err)
	}
	if err := v.Validate(); err != nil {
		return nil, mapError(err)
	}
	saved, err := s.repo.CreateVaccination(ctx, v)
	if err != nil {
		return nil, mapError(err)
	}
	return s.vaccinationView(ctx, saved, newPetNames(s.pets))
}

func (s *Service) UpdateVaccination(ctx context.Context, input ports.UpdateVaccinationInput) (*domain.VaccinationView, error) {
	saved, err := s.repo.UpdateVaccination(ctx, input.ID, func(v *domain.Vaccination) error {
		if err := applyVaccinationFields(v, input.VaccinationFields); err != nil {
			return err
		}
		return v.Validate()
	})
	if err != nil {
		return nil, mapError(err)
	}
	return s.vaccinationView(ctx, saved, newPetNames(s.pets))
}

func (s *Service) DeleteVaccination(ctx context.Context, id int64) error {
	return mapError(s.repo.DeleteVaccination(ctx, id))
}

// Overdue lists vaccinations whose next dose was due before today and that
// are not marked Completed, earliest due date first.
func (s *Service) Overdue(ctx context.Context) ([]domain.VaccinationView, error) {
	now := s.now()
	views, err := s.vaccinationViews(ctx, ports.VaccinationFilter{Outstanding: true, DueBefore: dates.Day(now)})
	if err != nil {
		return nil, err
	}
	out := views[:0]
	for _, v := range views {
		if v.Vaccination.IsOverdue(now) {
			out = append(out, v)
		}
	}
	sortByDue(out)
	return out, nil
}

// PetHistory lists a pet's visits, newest first, each with its vaccinations.
func (s *Service) PetHistory(ctx context.Context, petID int64) ([]domain.VisitView, error) {
	names := newPetNames(s.pets)
	pet, err := names.lookup(ctx, petID)
	if err != nil {
		return nil, err
	}
	visits, err := s.repo.ListVisits(ctx, ports.VisitFilter{PetID: petID})
	if err != nil {
		return nil, mapError(err)
	}
	doses, err := s.repo.ListVaccinations(ctx, ports.VaccinationFilter{PetID: petID})
	if err != nil {
		return nil, mapError(err)
	}
	byVisit := map[int64][]*domain.Vaccination{}
	for _, d := range doses {
		byVisit[d.VisitID] = append(byVisit[d.VisitID], d)
	}
	out := make([]domain.VisitView, 0, len(visits))
	for _, v := range visits {
		out = append(out, domain.VisitView{Visit: v, Pet: pet, Vaccinations: nonNil(byVisit[v.ID])})
	}
	return out, nil
}

func (s *Service) Counts(ctx context.Context) (domain.Counts, error) {
	var counts domain.Counts
	var err error
	if counts.Visits, err = s.repo.CountVisits(ctx); err != nil {
		return domain.Counts{}, mapError(err)
	}
	if counts.Vaccinations, err = s.repo.CountVaccinations(ctx); err != nil {
		return domain.Counts{}, mapError(err)
	}
	overdue, err := s.Overdue(ctx)
	if err != nil {
		return domain.Counts{}, err
	}
	counts.Overdue = len(overdue)
	return counts, nil
}

func (s *Service) DeleteByPet(ctx context.Context, petID int64) error {
	return mapError(s.repo.DeleteByPet(ctx, petID))
}

func (s *Service) visitView(ctx context.Context, v *domain.Visit) (*domain.VisitView, error) {
	pet, err := newPetNames(s.pets).lookup(ctx, v.PetID)
	if err != nil {
		return nil, err
	}
	doses, err := s.repo.ListVaccinations(ctx, ports.VaccinationFilter{VisitID: v.ID})
	if err != nil {
		return nil, mapError(err)
	}
	return &domain.VisitView{Visit: v, Pet: pet, Vaccinations: nonNil(doses)}, nil
}

func (s *Service) vaccinationViews(ctx context.Context, filter ports.VaccinationFilter) ([]domain.VaccinationView, error) {
	doses, err := s.repo.ListVaccinations(ctx, filter)
	if err != nil {
		return nil, mapError(err)
	}
	names := newPetNames(s.pets)
	out := make([]domain.VaccinationView, 0, len(doses))
	for _, d := range doses {
		view, err := s.vaccinationView(ctx, d, names)
		if err != nil {
			return nil, err
		}
		out = append(out, *view)
	}
	return out, nil
}

func (s *Service) vaccinationView(ctx context.Context, v *domain.Vaccination, names *petNames) (*domain.VaccinationView, error) {
	visit, err := names.visit(ctx, s.repo, v.VisitID)
	if err != nil {
		return nil, err
	}
	view := &domain.VaccinationView{Vaccination: v, Visit: visit}
	if visit != nil {
		if view.Pet, err = names.lookup(ctx, visit.PetID); err != nil {
			return nil, err
		}
	}
	return view, nil
}

// petNames memoises pet and visit lookups for one call.
type petNames struct {
	pets   ports.PetDirectory
	cache  map[int64]domain.PetSummary
	visits map[int64]*domain.Visit
}

func newPetNames(pets ports.PetDirectory) *petNames {
	return &petNames{pets: pets, cache: map[int64]domain.PetSummary{}, visits: map[int64]*domain.Visit{}}
}

func (n *petNames) lookup(ctx context.Context, id int64) (domain.PetSummary, error) {
	if cached, ok := n.cache[id]; ok {
		return cached, nil
	}
	summary := domain.PetSummary{ID: id}
	if n.pets != nil {
		found, err := n.pets.PetSummary(ctx, id)
		switch {
		case err == nil:
			summary = found
		case !errors.Is(err, errkind.ErrNotFound):
			return summary, mapError(err)
		}
	}
	n.cache[id] = summary
	return summary, nil
}

func (n *petNames) visit(ctx context.Context, repo ports.Repository, id int64) (*domain.Visit, error) {
	if cached, ok := n.visits[id]; ok {
		return cached, nil
	}
	v, err := repo.GetVisit(ctx, id)
	if err != nil && !errors.Is(err, ports.ErrVisitNotFound) {
		return nil, mapError(err)
	}
	n.visits[id] = v
	return v, nil
}

func applyVisitFields(v *domain.Visit, f ports.VisitFields) error {
	if f.VisitDate != nil {
		v.VisitDate = dates.Day(*f.VisitDate)
	}
	if f.Veterinarian != nil {
		v.Veterinarian = strings.TrimSpace(*f.Veterinarian)
	}
	if f.VisitType != nil {
		vt, err := domain.ParseVisitType(*f.VisitType)
		if err != nil {
			return err
		}
		v.VisitType = vt
	}
	if f.WeightKg != nil {
		w := *f.WeightKg
		v.WeightKg = &w
	}
	if f.TemperatureC != nil {
		t := *f.TemperatureC
		v.TemperatureC = &t
	}
	if f.Diagnosis != nil {
		v.Diagnosis = strings.TrimSpace(*f.Diagnosis)
	}
	if f.Notes != nil {
		v.Notes = strings.TrimSpace(*f.Notes)
	}
	if f.ProcedureCost != nil {
		v.ProcedureCost = *f.ProcedureCost
	}
	if f.NextVisitDate != nil {
		v.NextVisitDate = dayPtr(*f.NextVisitDate)
	}
	return nil
}

func applyVaccinationFields(v *domain.Vaccination, f ports.VaccinationFields) error {
	if f.VaccineName != nil {
		v.VaccineName = strings.TrimSpace(*f.VaccineName)
	}
	if f.DateAdministered != nil {
		v.DateAdministered = dates.Day(*f.DateAdministered)
	}
	if f.AdministeredBy != nil {
		v.AdministeredBy = strings.TrimSpace(*f.AdministeredBy)
	}
	if f.Manufacturer != nil {
		v.Manufacturer = strings.TrimSpace(*f.Manufacturer)
	}
	if f.NextDueDate != nil {
		v.NextDueDate = dayPtr(*f.NextDueDate)
	}
	if f.Site != nil {
		v.Site = strings.TrimSpace(*f.Site)
	}
	if f.Reaction != nil {
		v.Reaction = strings.TrimSpace(*f.Reaction)
	}
	if f.Cost != nil {
		v.Cost = *f.Cost
	}
	if f.Status != nil {
		status, err := domain.ParseVaccinationStatus(*f.Status)
		if err != nil {
			return err
		}
		v.Status = status
	}
	return nil
}

// dayPtr truncates t to its day; the zero time clears the field.
func dayPtr(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	d := dates.Day(t)
	return &d
}

func sortByDue(views []domain.VaccinationView) {
	sort.SliceStable(views, func(i, j int) bool {
		return views[i].Vaccination.NextDueDate.Before(*views[j].Vaccination.NextDueDate)
	})
}

func nonNil(list []*domain.Vaccination) []*domain.Vaccination {
	if list == nil {
		return []*domain.Vaccination{}
	}
	return list
}

func notFoundAs(err, sentinel error) error {
	if errors.Is(err, errkind.ErrNotFound) {
		return sentinel
	}
	return err
}

var _ ports.Service = (*Service)(nil)
