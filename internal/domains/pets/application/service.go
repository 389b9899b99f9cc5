package application

import (
	"context"
	"strings"
	"time"

	pettypes "github.com/Apurer/pet-adoption-center/internal/domains/pets/application/types"
	"github.com/Apurer/pet-adoption-center/internal/domains/pets/domain"
	"github.com/Apurer/pet-adoption-center/internal/domains/pets/ports"
	"github.com/Apurer/pet-adoption-center/internal/shared/errkind"
	"github.com/Apurer/pet-adoption-center/internal/shared/projection"
)

// Service orchestrates the pets bounded context use cases.
type Service struct {
	repo       ports.Repository
	favorites  ports.FavoriteCounter
	dependents []ports.Dependent
	now        func() time.Time
}

type Option func(*Service)

// WithFavoriteCounter supplies the favorite counts used by Popular.
func WithFavoriteCounter(counter ports.FavoriteCounter) Option {
	return func(s *Service) { s.favorites = counter }
}

// WithDependents registers stores that must drop a pet's rows before it is deleted.
func WithDependents(deps ...ports.Dependent) Option {
	return func(s *Service) { s.dependents = append(s.dependents, deps...) }
}

// WithClock overrides the clock used to default arrival dates.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

// NewService wires the pets service with its dependencies.
func NewService(repo ports.Repository, opts ...Option) *Service {
	s := &Service{repo: repo, now: time.Now}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s
}

// AddPet persists a new pet. New pets start Available or on Medical Hold.
func (s *Service) AddPet(ctx context.Context, input pettypes.AddPetInput) (*pettypes.PetProjection, error) {
	name, species := "", ""
	if input.Name != nil {
		name = *input.Name
	}
	if input.Species != nil {
		species = *input.Species
	}
	arrived := s.now()
	if input.DateArrived != nil && !input.DateArrived.IsZero() {
		arrived = *input.DateArrived
	}
	pet, err := domain.NewPet(name, species, arrived)
	if err != nil {
		return nil, mapError(err)
	}
	if input.Status != nil && strings.TrimSpace(*input.Status) != "" {
		status, err := domain.ParseStatus(*input.Status)
		if err != nil {
			return nil, mapError(err)
		}
		if status.ManagedByAdoption() {
			return nil, errkind.Wrap(errkind.ErrValidation, domain.ErrStatusManagedElsewhere)
		}
		pet.Status = status
	}
	partial := input.PetMutationInput
	partial.Name, partial.Species, partial.DateArrived, partial.Status = nil, nil, nil, nil
	if err := applyPartialMutation(pet, partial); err != nil {
		return nil, mapError(err)
	}
	saved, err := s.repo.Save(ctx, pet)
	if err != nil {
		return nil, mapError(err)
	}
	return saved, nil
}

// UpdatePet applies a partial update. The arrival date is fixed once set and
// only staff moves between Available and Medical Hold are accepted.
func (s *Service) UpdatePet(ctx context.Context, input pettypes.UpdatePetInput) (*pettypes.PetProjection, error) {
	saved, err := s.repo.Update(ctx, input.ID, func(pet *domain.Pet) error {
		return applyPartialMutation(pet, input.PetMutationInput)
	})
	if err != nil {
		return nil, mapError(err)
	}
	return saved, nil
}

// GetByID loads a single pet.
func (s *Service) GetByID(ctx context.Context, input pettypes.PetIdentifier) (*pettypes.PetProjection, error) {
	proj, err := s.repo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, mapError(err)
	}
	return proj, nil
}

// Delete removes a pet together with its adoptions, favorites and visits.
func (s *Service) Delete(ctx context.Context, input pettypes.PetIdentifier) error {
	if _, err := s.repo.GetByID(ctx, input.ID); err != nil {
		return mapError(err)
	}
	for _, dep := range s.dependents {
		if err := dep.DeleteByPet(ctx, input.ID); err != nil {
			return mapError(err)
		}
	}
	if err := s.repo.Delete(ctx, input.ID); err != nil {
		return mapError(err)
	}
	return nil
}

// List returns pets matching the filter, most recent arrival first.
func (s *Service) List(ctx context.Context, input pettypes.ListPetsInput) ([]*pettypes.PetProjection, error) {
	filter := ports.Filter{
		Species: strings.TrimSpace(input.Species),
		Search:  strings.TrimSpace(input.Search),
	}
	if strings.TrimSpace(input.Status) != "" {
		status, err := domain.ParseStatus(input.Status)
		if err != nil {
			return nil, mapError(err)
		}
		filter.Status = status
	}
	result, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, mapError(err)
	}
	return result, nil
}

// Species lists the distinct species in the catalogue, sorted.
func (s *Service) Species(ctx context.Context) ([]string, error) {
	result, err := s.repo.Species(ctx)
	if err != nil {
		return nil, mapError(err)
	}
	return result, nil
}

// AvailableBySpecies lists Available pets of one species.
func (s *Service) AvailableBySpecies(ctx context.Context, species string) ([]*pettypes.PetProjection, error) {
	species = strings.TrimSpace(species)
	if species == "" {
		return nil, mapError(domain.ErrEmptySpecies)
	}
	return s.List(ctx, pettypes.ListPetsInput{Species: species, Status: string(domain.StatusAvailable)})
}

// Popular ranks Available pets by favorite count with boundary ties kept.
func (s *Service) Popular(ctx context.Context) ([]domain.RankedPet, error) {
	available, err := s.available(ctx)
	if err != nil {
		return nil, err
	}
	counts := map[int64]int{}
	if s.favorites != nil {
		if counts, err = s.favorites.CountByPet(ctx); err != nil {
			return nil, mapError(err)
		}
	}
	return domain.Popular(available, counts, domain.PopularDistinctCounts), nil
}

// NewArrivals lists the most recently arrived Available pets with boundary ties kept.
func (s *Service) NewArrivals(ctx context.Context) ([]*domain.Pet, error) {
	available, err := s.available(ctx)
	if err != nil {
		return nil, err
	}
	return domain.NewArrivals(available, domain.NewArrivalDistinctDays), nil
}

func (s *Service) available(ctx context.Context) ([]*domain.Pet, error) {
	list, err := s.repo.List(ctx, ports.Filter{Status: domain.StatusAvailable})
	if err != nil {
		return nil, mapError(err)
	}
	return projection.Entities(list), nil
}

func applyPartialMutation(target *domain.Pet, input pettypes.PetMutationInput) error {
	if input.Name != nil {
		if err := target.Rename(*input.Name); err != nil {
			return err
		}
	}
	if input.Species != nil {
		if err := target.SetSpecies(*input.Species); err != nil {
			return err
		}
	}
	if input.Age != nil {
		if err := target.SetAge(*input.Age); err != nil {
			return err
		}
	}
	if input.Gender != nil {
		if err := target.SetGender(*input.Gender); err != nil {
			return err
		}
	}
	if input.DateArrived != nil {
		if err := target.SetArrival(*input.DateArrived); err != nil {
			return err
		}
	}
	if input.SpayedNeutered != nil {
		target.SpayedNeutered = *input.SpayedNeutered
	}
	target.UpdateDescription(
		pick(input.Breed, target.Breed),
		pick(input.Color, target.Color),
		pick(input.Temperament, target.Temperament),
		pick(input.SpecialNeeds, target.SpecialNeeds),
		pick(input.PhotoURL, target.PhotoURL),
	)
	if input.Status != nil && strings.TrimSpace(*input.Status) != "" {
		status, err := domain.ParseStatus(*input.Status)
		if err != nil {
			return err
		}
		if err := target.ChangeStatusManually(status); err != nil {
			return err
		}
	}
	return nil
}

func pick(v *string, current string) string {
	if v == nil {
		return current
	}
	return *v
}

var _ ports.Service = (*Service)(nil)
