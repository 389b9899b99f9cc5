package observability

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"

	"github.com/Apurer/pet-adoption-center/internal/domains/favorites/domain"
	"github.com/Apurer/pet-adoption-center/internal/domains/favorites/ports"
	"github.com/Apurer/pet-adoption-center/internal/shared/instrument"
)

const tracerName = "github.com/Apurer/pet-adoption-center/internal/domains/favorites/adapters/observability/service"

// Service decorates the favorites port with tracing, logging, and metrics.
type Service struct {
	inner   ports.Service
	kit     instrument.Kit
	added   instrument.Counter
	removed instrument.Counter
}

func New(inner ports.Service, opts ...instrument.Option) ports.Service {
	kit := instrument.New(tracerName, opts...)
	return &Service{
		inner:   inner,
		kit:     kit,
		added:   kit.Counter("favorites.service.added", "Number of favorites added"),
		removed: kit.Counter("favorites.service.removed", "Number of favorites removed"),
	}
}

func (s *Service) List(ctx context.Context, adopterID int64) ([]domain.View, error) {
	ctx, span := s.kit.Start(ctx, "FavoritesService.List", attribute.Int64("adopter.id", adopterID))
	defer span.End()

	list, err := s.inner.List(ctx, adopterID)
	if err != nil {
		return nil, s.kit.Fail(ctx, span, err, "failed to list favorites", slog.Int64("adopter.id", adopterID))
	}
	span.SetAttributes(attribute.Int("favorite.result.count", len(list)))
	return list, nil
}

func (s *Service) Get(ctx context.Context, id int64) (*domain.View, error) {
	ctx, span := s.kit.Start(ctx, "FavoritesService.Get", attribute.Int64("favorite.id", id))
	defer span.End()

	view, err := s.inner.Get(ctx, id)
	if err != nil {
		return nil, s.kit.Fail(ctx, span, err, "failed to load favorite", slog.Int64("favorite.id", id))
	}
	return view, nil
}

func (s *Service) Add(ctx context.Context, input ports.AddInput) (*domain.View, error) {
	ctx, span := s.kit.Start(ctx, "FavoritesService.Add",
		attribute.Int64("adopter.id", input.AdopterID),
		attribute.Int64("pet.id", input.PetID),
	)
	defer span.End()

	view, err := s.inner.Add(ctx, input)
	if err != nil {
		return nil, s.kit.Fail(ctx, span, err, "failed to add favorite",
			slog.Int64("adopter.id", input.AdopterID), slog.Int64("pet.id", input.PetID))
	}
	s.added.Inc(ctx)
	s.kit.Info(ctx, "favorite added", slog.Int64("favorite.id", view.Favorite.ID), slog.Int64("pet.id", input.PetID))
	return view, nil
}

func (s *Service) UpdateNotes(ctx context.Context, id int64, notes string) (*domain.View, error) {
	ctx, span := s.kit.Start(ctx, "FavoritesService.UpdateNotes", attribute.Int64("favorite.id", id))
	defer span.End()

	view, err := s.inner.UpdateNotes(ctx, id, notes)
	if err != nil {
		return nil, s.kit.Fail(ctx, span, err, "failed to update favorite notes", slog.Int64("favorite.id", id))
	}
	return view, nil
}

func (s *Service) Remove(ctx context.Context, id int64) error {
	ctx, span := s.kit.Start(ctx, "FavoritesService.Remove", attribute.Int64("favorite.id", id))
	defer span.End()

	if err := s.inner.Remove(ctx, id); err != nil {
		return s.kit.Fail(ctx, span, err, "failed to remove favorite", slog.Int64("favorite.id", id))
	}
	s.removed.Inc(ctx)
	s.kit.Info(ctx, "favorite removed", slog.Int64("favorite.id", id))
	return nil
}

func (s *Service) RemoveByPair(ctx context.Context, adopterID, petID int64) error {
	ctx, span := s.kit.Start(ctx, "FavoritesService.RemoveByPair",
		attribute.Int64("adopter.id", adopterID),
		attribute.Int64("pet.id", petID),
	)
	defer span.End()

	if err := s.inner.RemoveByPair(ctx, adopterID, petID); err != nil {
		return s.kit.Fail(ctx, span, err, "failed to remove favorite",
			slog.Int64("adopter.id", adopterID), slog.Int64("pet.id", petID))
	}
	s.removed.Inc(ctx)
	return nil
}

func (s *Service) Check(ctx context.Context, adopterID, petID int64) (*ports.CheckResult, error) {
	ctx, span := s.kit.Start(ctx, "FavoritesService.Check",
		attribute.Int64("adopter.id", adopterID),
		attribute.Int64("pet.id", petID),
	)
	defer span.End()

	result, err := s.inner.Check(ctx, adopterID, petID)
	if err != nil {
		return nil, s.kit.Fail(ctx, span, err, "failed to check favorite")
	}
	span.SetAttributes(attribute.Bool("favorite.exists", result.Favorited))
	return result, nil
}

func (s *Service) CountByPet(ctx context.Context) (map[int64]int, error) {
	ctx, span := s.kit.Start(ctx, "FavoritesService.CountByPet")
	defer span.End()

	counts, err := s.inner.CountByPet(ctx)
	if err != nil {
		return nil, s.kit.Fail(ctx, span, err, "failed to count favorites by pet")
	}
	return counts, nil
}

func (s *Service) CountByAdopter(ctx context.Context) (map[int64]int, error) {
	ctx, span := s.kit.Start(ctx, "FavoritesService.CountByAdopter")
	defer span.End()

	counts, err := s.inner.CountByAdopter(ctx)
	if err != nil {
		return nil, s.kit.Fail(ctx, span, err, "failed to count favorites by adopter")
	}
	return counts, nil
}

func (s *Service) DeleteByPet(ctx context.Context, petID int64) error {
	ctx, span := s.kit.Start(ctx, "FavoritesService.DeleteByPet", attribute.Int64("pet.id", petID))
	defer span.End()

	if err := s.inner.DeleteByPet(ctx, petID); err != nil {
		return s.kit.Fail(ctx, span, err, "failed to drop favorites of pet", slog.Int64("pet.id", petID))
	}
	return nil
}

func (s *Service) DeleteByAdopter(ctx context.Context, adopterID int64) error {
	ctx, span := s.kit.Start(ctx, "FavoritesService.DeleteByAdopter", attribute.Int64("adopter.id", adopterID))
	defer span.End()

	if err := s.inner.DeleteByAdopter(ctx, adopterID); err != nil {
		return s.kit.Fail(ctx, span, err, "failed to drop favorites of adopter", slog.Int64("adopter.id", adopterID))
	}
	return nil
}

var _ ports.Service = (*Service)(nil)
