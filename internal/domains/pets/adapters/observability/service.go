package observability

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"

	pettypes "github.com/Apurer/pet-adoption-center/internal/domains/pets/application/types"
	"github.com/Apurer/pet-adoption-center/internal/domains/pets/domain"
	"github.com/Apurer/pet-adoption-center/internal/domains/pets/ports"
	"github.com/Apurer/pet-adoption-center/internal/shared/instrument"
)

const tracerName = "github.com/Apurer/pet-adoption-center/internal/domains/pets/adapters/observability/service"

// Service decorates a pets application port with tracing, logging, and metrics.
type Service struct {
	inner   ports.Service
	kit     instrument.Kit
	created instrument.Counter
	updated instrument.Counter
	deleted instrument.Counter
}

// New wires a decorator around the core service.
func New(inner ports.Service, opts ...instrument.Option) ports.Service {
	kit := instrument.New(tracerName, opts...)
	return &Service{
		inner:   inner,
		kit:     kit,
		created: kit.Counter("pets.service.created", "Number of pets created"),
		updated: kit.Counter("pets.service.updated", "Number of pets updated"),
		deleted: kit.Counter("pets.service.deleted", "Number of pets deleted"),
	}
}

// AddPet persists a new pet with instrumentation.
func (s *Service) AddPet(ctx context.Context, input pettypes.AddPetInput) (*pettypes.PetProjection, error) {
	ctx, span := s.kit.Start(ctx, "PetsService.AddPet")
	defer span.End()

	result, err := s.inner.AddPet(ctx, input)
	if err != nil {
		return nil, s.kit.Fail(ctx, span, err, "failed to add pet")
	}
	if result != nil && result.Entity != nil {
		span.SetAttributes(attribute.Int64("pet.id", result.Entity.ID))
		s.created.Inc(ctx, attribute.String("pet.status", string(result.Entity.Status)))
		s.kit.Info(ctx, "pet added", slog.Int64("pet.id", result.Entity.ID), slog.String("species", result.Entity.Species))
	}
	return result, nil
}

// UpdatePet applies a partial update with instrumentation.
func (s *Service) UpdatePet(ctx context.Context, input pettypes.UpdatePetInput) (*pettypes.PetProjection, error) {
	ctx, span := s.kit.Start(ctx, "PetsService.UpdatePet", attribute.Int64("pet.id", input.ID))
	defer span.End()

	result, err := s.inner.UpdatePet(ctx, input)
	if err != nil {
		return nil, s.kit.Fail(ctx, span, err, "failed to update pet", slog.Int64("pet.id", input.ID))
	}
	if result != nil && result.Entity != nil {
		s.updated.Inc(ctx, attribute.String("pet.status", string(result.Entity.Status)))
		s.kit.Info(ctx, "pet updated", slog.Int64("pet.id", result.Entity.ID), slog.String("status", string(result.Entity.Status)))
	}
	return result, nil
}

// GetByID loads a single pet.
func (s *Service) GetByID(ctx context.Context, input pettypes.PetIdentifier) (*pettypes.PetProjection, error) {
	ctx, span := s.kit.Start(ctx, "PetsService.GetByID", attribute.Int64("pet.id", input.ID))
	defer span.End()

	result, err := s.inner.GetByID(ctx, input)
	if err != nil {
		return nil, s.kit.Fail(ctx, span, err, "failed to load pet", slog.Int64("pet.id", input.ID))
	}
	return result, nil
}

// Delete removes a pet and its dependent records.
func (s *Service) Delete(ctx context.Context, input pettypes.PetIdentifier) error {
	ctx, span := s.kit.Start(ctx, "PetsService.Delete", attribute.Int64("pet.id", input.ID))
	defer span.End()

	if err := s.inner.Delete(ctx, input); err != nil {
		return s.kit.Fail(ctx, span, err, "failed to delete pet", slog.Int64("pet.id", input.ID))
	}
	s.deleted.Inc(ctx)
	s.kit.Info(ctx, "pet deleted", slog.Int64("pet.id", input.ID))
	return nil
}

// List returns the filtered catalogue.
func (s *Service) List(ctx context.Context, input pettypes.ListPetsInput) ([]*pettypes.PetProjection, error) {
	ctx, span := s.kit.Start(ctx, "PetsService.List",
		attribute.String("pet.filter.species", input.Species),
		attribute.String("pet.filter.status", input.Status),
	)
	defer span.End()

	result, err := s.inner.List(ctx, input)
	if err != nil {
		return nil, s.kit.Fail(ctx, span, err, "failed to list pets")
	}
	span.SetAttributes(attribute.Int("pet.result.count", len(result)))
	return result, nil
}

func (s *Service) Species(ctx context.Context) ([]string, error) {
	ctx, span := s.kit.Start(ctx, "PetsService.Species")
	defer span.End()

	result, err := s.inner.Species(ctx)
	if err != nil {
		return nil, s.kit.Fail(ctx, span, err, "failed to list species")
	}
	return result, nil
}

func (s *Service) AvailableBySpecies(ctx context.Context, species string) ([]*pettypes.PetProjection, error) {
	ctx, span := s.kit.Start(ctx, "PetsService.AvailableBySpecies", attribute.String("pet.species", species))
	defer span.End()

	result, err := s.inner.AvailableBySpecies(ctx, species)
	if err != nil {
		return nil, s.kit.Fail(ctx, span, err, "failed to list pets by species", slog.String("species", species))
	}
	span.SetAttributes(attribute.Int("pet.result.count", len(result)))
	return result, nil
}

// Popular ranks pets by favorites.
func (s *Service) Popular(ctx context.Context) ([]domain.RankedPet, error) {
	ctx, span := s.kit.Start(ctx, "PetsService.Popular")
	defer span.End()

	result, err := s.inner.Popular(ctx)
	if err != nil {
		return nil, s.kit.Fail(ctx, span, err, "failed to rank popular pets")
	}
	span.SetAttributes(attribute.Int("pet.result.count", len(result)))
	return result, nil
}

// NewArrivals lists the newest Available pets.
func (s *Service) NewArrivals(ctx context.Context) ([]*domain.Pet, error) {
	ctx, span := s.kit.Start(ctx, "PetsService.NewArrivals")
	defer span.End()

	result, err := s.inner.NewArrivals(ctx)
	if err != nil {
		return nil, s.kit.Fail(ctx, span, err, "failed to list new arrivals")
	}
	span.SetAttributes(attribute.Int("pet.result.count", len(result)))
	return result, nil
}

var _ ports.Service = (*Service)(nil)
