package application

import (
	"context"
	"errors"
	"time"

	"github.com/Apurer/pet-adoption-center/internal/domains/favorites/domain"
	"github.com/Apurer/pet-adoption-center/internal/domains/favorites/ports"
	"github.com/Apurer/pet-adoption-center/internal/shared/errkind"
)

// Service manages adopter favorites and guards the one-per-pair rule.
type Service struct {
	repo     ports.Repository
	pets     ports.PetDirectory
	adopters ports.AdopterDirectory
	now      func() time.Time
}

type Option func(*Service)

// WithDirectories supplies the pet and adopter lookups used by Add and views.
func WithDirectories(pets ports.PetDirectory, adopters ports.AdopterDirectory) Option {
	return func(s *Service) {
		s.pets = pets
		s.adopters = adopters
	}
}

// WithClock overrides the clock used for DateAdded.
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

// List returns an adopter's favorites with their pets, most recently added first.
func (s *Service) List(ctx context.Context, adopterID int64) ([]domain.View, error) {
	list, err := s.repo.ListByAdopter(ctx, adopterID)
	if err != nil {
		return nil, mapError(err)
	}
	views := make([]domain.View, 0, len(list))
	for _, f := range list {
		v, err := s.view(ctx, f)
		if err != nil {
			return nil, err
		}
		views = append(views, *v)
	}
	return views, nil
}

func (s *Service) Get(ctx context.Context, id int64) (*domain.View, error) {
	f, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, mapError(err)
	}
	return s.view(ctx, f)
}

// Add bookmarks a pet. A second add for the same pair is a Conflict.
func (s *Service) Add(ctx context.Context, input ports.AddInput) (*domain.View, error) {
	f, err := domain.NewFavorite(input.AdopterID, input.PetID, input.Notes, s.now())
	if err != nil {
		return nil, mapError(err)
	}
	if s.adopters != nil {
		if err := s.adopters.AdopterExists(ctx, input.AdopterID); err != nil {
			return nil, mapError(notFoundAs(err, ports.ErrAdopterNotFound))
		}
	}
	if s.pets != nil {
		if _, err := s.pets.PetSummary(ctx, input.PetID); err != nil {
			return nil, mapError(notFoundAs(err, ports.ErrPetNotFound))
		}
	}
	saved, err := s.repo.Create(ctx, f)
	if err != nil {
		return nil, mapError(err)
	}
	return s.view(ctx, saved)
}

func (s *Service) UpdateNotes(ctx context.Context, id int64, notes string) (*domain.View, error) {
	f, err := s.repo.UpdateNotes(ctx, id, notes)
	if err != nil {
		return nil, mapError(err)
	}
	return s.view(ctx, f)
}

// Remove deletes a favorite by ID. A missing favorite is NotFound.
func (s *Service) Remove(ctx context.Context, id int64) error {
	return mapError(s.repo.Delete(ctx, id))
}

// RemoveByPair deletes the adopter's favorite on a pet. A missing pair is NotFound.
func (s *Service) RemoveByPair(ctx context.Context, adopterID, petID int64) error {
	return mapError(s.repo.DeleteByPair(ctx, adopterID, petID))
}

func (s *Service) Check(ctx context.Context, adopterID, petID int64) (*ports.CheckResult, error) {
	f, err := s.repo.GetByPair(ctx, adopterID, petID)
	if errors.Is(err, ports.ErrNotFound) {
		return &ports.CheckResult{}, nil
	}
	if err != nil {
		return nil, mapError(err)
	}
	return &ports.CheckResult{Favorited: true, Favorite: f}, nil
}

func (s *Service) CountByPet(ctx context.Context) (map[int64]int, error) {
	counts, err := s.repo.CountByPet(ctx)
	if err != nil {
		return nil, mapError(err)
	}
	return counts, nil
}

func (s *Service) CountByAdopter(ctx context.Context) (map[int64]int, error) {
	counts, err := s.repo.CountByAdopter(ctx)
	if err != nil {
		return nil, mapError(err)
	}
	return counts, nil
}

func (s *Service) DeleteByPet(ctx context.Context, petID int64) error {
	return mapError(s.repo.DeleteByPet(ctx, petID))
}

func (s *Service) DeleteByAdopter(ctx context.Context, adopterID int64) error {
	return mapError(s.repo.DeleteByAdopter(ctx, adopterID))
}

func (s *Service) view(ctx context.Context, f *domain.Favorite) (*domain.View, error) {
	summary := domain.PetSummary{ID: f.PetID}
	if s.pets != nil {
		found, err := s.pets.PetSummary(ctx, f.PetID)
		switch {
		case err == nil:
			summary = found
		case !errors.Is(err, errkind.ErrNotFound):
			return nil, mapError(err)
		}
	}
	return &domain.View{Favorite: f, Pet: summary}, nil
}

// notFoundAs replaces a lookup's NotFound with the favorites sentinel.
func notFoundAs(err, sentinel error) error {
	if errors.Is(err, errkind.ErrNotFound) {
		return sentinel
	}
	return err
}

var _ ports.Service = (*Service)(nil)
