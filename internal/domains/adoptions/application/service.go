package application

import (
	"context"
	"errors"
	"time"

	"github.com/Apurer/pet-adoption-center/internal/domains/adoptions/domain"
	"github.com/Apurer/pet-adoption-center/internal/domains/adoptions/ports"
	petdomain "github.com/Apurer/pet-adoption-center/internal/domains/pets/domain"
	"github.com/Apurer/pet-adoption-center/internal/shared/errkind"
)

// Service drives the adoption lifecycle. Every transition that touches a pet
// runs its pet and adoption writes inside one unit of work.
type Service struct {
	repo     ports.Repository
	uow      ports.UnitOfWork
	pets     ports.PetDirectory
	adopters ports.AdopterDirectory
	policy   domain.Policy
	now      func() time.Time
	machine  domain.Machine
}

type Option func(*Service)

// WithPolicy selects the adoption variant.
func WithPolicy(p domain.Policy) Option {
	return func(s *Service) { s.policy = p }
}

// WithClock overrides the machine clock.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// WithDirectories supplies the lookups used to enrich views and validate adopters.
func WithDirectories(pets ports.PetDirectory, adopters ports.AdopterDirectory) Option {
	return func(s *Service) {
		s.pets = pets
		s.adopters = adopters
	}
}

func NewService(repo ports.Repository, uow ports.UnitOfWork, opts ...Option) *Service {
	s := &Service{repo: repo, uow: uow, policy: domain.DefaultPolicy()}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	s.machine = domain.NewMachine(s.policy, s.now)
	return s
}

func (s *Service) Policy() domain.Policy { return s.machine.Policy() }

func (s *Service) List(ctx context.Context, input ports.ListInput) ([]domain.View, error) {
	filter := ports.Filter{AdopterID: input.AdopterID, PetID: input.PetID}
	if input.Status != "" {
		status, err := domain.ParseStatus(input.Status)
		if err != nil {
			return nil, mapError(err)
		}
		filter.Status = status
	}
	return s.views(ctx, filter, nil)
}

// PendingApplications lists the open applications staff still has to decide on.
func (s *Service) PendingApplications(ctx context.Context) ([]domain.View, error) {
	policy := s.Policy()
	return s.views(ctx, ports.Filter{Status: policy.OpenStatus()}, policy.AwaitingDecision)
}

func (s *Service) Report(ctx context.Context) ([]domain.View, error) {
	return s.views(ctx, ports.Filter{}, nil)
}

// MonthlyStats tallies the applications filed in year/month.
func (s *Service) MonthlyStats(ctx context.Context, year, month int) (domain.MonthlyStats, error) {
	from, to, err := domain.MonthRange(year, month)
	if err != nil {
		return domain.MonthlyStats{}, mapError(err)
	}
	stats, err := s.repo.MonthlyStats(ctx, from, to)
	if err != nil {
		return domain.MonthlyStats{}, mapError(err)
	}
	return stats, nil
}

// views lists filter matches accepted by keep (all when nil), joined with
// their pet and adopter.
func (s *Service) views(ctx context.Context, filter ports.Filter, keep func(*domain.Adoption) bool) ([]domain.View, error) {
	list, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, mapError(err)
	}
	resolver := newResolver(s.pets, s.adopters)
	views := make([]domain.View, 0, len(list))
	for _, a := range list {
		if keep != nil && !keep(a) {
			continue
		}
		v, err := resolver.view(ctx, a)
		if err != nil {
			return nil, mapError(err)
		}
		views = append(views, v)
	}
	return views, nil
}

func (s *Service) Get(ctx context.Context, id int64) (*domain.View, error) {
	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, mapError(err)
	}
	return s.view(ctx, a)
}

// Apply files an application and reserves the pet. Concurrent applications for
// one pet serialize on the pet row, so only the first sees it Available.
func (s *Service) Apply(ctx context.Context, input ports.ApplyInput) (*domain.View, error) {
	if s.adopters != nil {
		if _, err := s.adopters.AdopterSummary(ctx, input.AdopterID); err != nil {
			return nil, mapError(err)
		}
	}
	var created *domain.Adoption
	err := s.uow.Do(ctx, func(tx ports.Tx) error {
		status, err := tx.PetStatus(ctx, input.PetID)
		if err != nil {
			return err
		}
		adoption, next, err := s.machine.Apply(status, input.PetID, input.AdopterID, input.Fee, input.Notes)
		if err != nil {
			return err
		}
		saved, err := tx.Create(ctx, adoption)
		if err != nil {
			return err
		}
		if err := tx.SetPetStatus(ctx, input.PetID, next); err != nil {
			return err
		}
		created = saved
		return nil
	})
	if err != nil {
		return nil, mapError(err)
	}
	return s.view(ctx, created)
}

func (s *Service) Approve(ctx context.Context, id int64) (*domain.View, error) {
	return s.transition(ctx, id, func(a *domain.Adoption) (petdomain.Status, error) {
		return "", s.machine.Approve(a)
	})
}

func (s *Service) Deny(ctx context.Context, id int64) (*domain.View, error) {
	return s.transition(ctx, id, s.machine.Deny)
}

func (s *Service) Complete(ctx context.Context, id int64) (*domain.View, error) {
	return s.transition(ctx, id, s.machine.Complete)
}

func (s *Service) Cancel(ctx context.Context, id int64) (*domain.View, error) {
	return s.transition(ctx, id, s.machine.Cancel)
}

func (s *Service) Return(ctx context.Context, id int64) (*domain.View, error) {
	return s.transition(ctx, id, s.machine.Return)
}

// Edit changes the fee while the application is undecided and the notes at any time.
func (s *Service) Edit(ctx context.Context, input ports.EditInput) (*domain.View, error) {
	var updated *domain.Adoption
	err := s.uow.Do(ctx, func(tx ports.Tx) error {
		a, err := tx.Get(ctx, input.ID)
		if err != nil {
			return err
		}
		if input.Fee != nil {
			if err := s.machine.EditFee(a, *input.Fee); err != nil {
				return err
			}
		}
		if input.Notes != nil {
			a.SetNotes(*input.Notes)
		}
		if err := tx.Save(ctx, a); err != nil {
			return err
		}
		updated = a
		return nil
	})
	if err != nil {
		return nil, mapError(err)
	}
	return s.view(ctx, updated)
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	err := s.uow.Do(ctx, func(tx ports.Tx) error {
		a, err := tx.Get(ctx, id)
		if err != nil {
			if errors.Is(err, errkind.ErrNotFound) {
				return nil
			}
			return err
		}
		if err := tx.Delete(ctx, id); err != nil {
			return err
		}
		others, err := tx.OtherHolders(ctx, a.PetID, a.ID)
		if err != nil {
			return err
		}
		if status, ok := s.machine.Release(a, others); ok {
			return s.setPet(ctx, tx, a.PetID, status)
		}
		return nil
	})
	return mapError(err)
}

func (s *Service) ReleaseForAdopter(ctx context.Context, adopterID int64) error {
	err := s.uow.Do(ctx, func(tx ports.Tx) error {
		list, err := tx.ByAdopter(ctx, adopterID)
		if err != nil {
			return err
		}
		held := map[int64]*domain.Adoption{}
		for _, a := range list {
			if err := tx.Delete(ctx, a.ID); err != nil {
				return err
			}
			if a.HoldsPet() {
				held[a.PetID] = a
			}
		}
		for petID, a := range held {
			others, err := tx.OtherHolders(ctx, petID, 0)
			if err != nil {
				return err
			}
			if status, ok := s.machine.Release(a, others); ok {
				if err := s.setPet(ctx, tx, petID, status); err != nil {
					return err
				}
			}
		}
		return nil
	})
	return mapError(err)
}

func (s *Service) CountByAdopter(ctx context.Context) (map[int64]int, error) {
	counts, err := s.repo.CountByAdopter(ctx)
	if err != nil {
		return nil, mapError(err)
	}
	return counts, nil
}

// transition loads and locks the adoption and its pet, applies step and writes both.
func (s *Service) transition(ctx context.Context, id int64, step func(*domain.Adoption) (petdomain.Status, error)) (*domain.View, error) {
	var updated *domain.Adoption
	err := s.uow.Do(ctx, func(tx ports.Tx) error {
		a, err := tx.Get(ctx, id)
		if err != nil {
			return err
		}
		if _, err := tx.PetStatus(ctx, a.PetID); err != nil {
			return err
		}
		next, err := step(a)
		if err != nil {
			return err
		}
		if err := tx.Save(ctx, a); err != nil {
			return err
		}
		if next != "" {
			if err := tx.SetPetStatus(ctx, a.PetID, next); err != nil {
				return err
			}
		}
		updated = a
		return nil
	})
	if err != nil {
		return nil, mapError(err)
	}
	return s.view(ctx, updated)
}

// setPet writes a release, skipping pets that were deleted meanwhile.
func (s *Service) setPet(ctx context.Context, tx ports.Tx, petID int64, status petdomain.Status) error {
	if _, err := tx.PetStatus(ctx, petID); err != nil {
		if errors.Is(err, errkind.ErrNotFound) {
			return nil
		}
		return err
	}
	return tx.SetPetStatus(ctx, petID, status)
}

func (s *Service) view(ctx context.Context, a *domain.Adoption) (*domain.View, error) {
	v, err := newResolver(s.pets, s.adopters).view(ctx, a)
	if err != nil {
		return nil, mapError(err)
	}
	return &v, nil
}

var _ ports.Service = (*Service)(nil)
