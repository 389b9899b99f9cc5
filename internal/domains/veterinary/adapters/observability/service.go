package observability

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"

	"github.com/Apurer/pet-adoption-center/internal/domains/veterinary/domain"
	"github.com/Apurer/pet-adoption-center/internal/domains/veterinary/ports"
	"github.com/Apurer/pet-adoption-center/internal/shared/instrument"
)

const tracerName = "github.com/Apurer/pet-adoption-center/internal/domains/veterinary/adapters/observability/service"

// Service decorates the veterinary port with tracing, logging, and metrics.
type Service struct {
	inner        ports.Service
	kit          instrument.Kit
	visits       instrument.Counter
	vaccinations instrument.Counter
}

func New(inner ports.Service, opts ...instrument.Option) ports.Service {
	kit := instrument.New(tracerName, opts...)
	return &Service{
		inner:        inner,
		kit:          kit,
		visits:       kit.Counter("veterinary.service.visits_recorded", "Number of veterinary visits recorded"),
		vaccinations: kit.Counter("veterinary.service.vaccinations_recorded", "Number of vaccinations recorded"),
	}
}

func (s *Service) ListVisits(ctx context.Context, input ports.ListVisitsInput) ([]domain.VisitView, error) {
	ctx, span := s.kit.Start(ctx, "VeterinaryService.ListVisits",
		attribute.Int64("pet.id", input.PetID),
		attribute.String("visit.type", input.VisitType),
	)
	defer span.End()

	list, err := s.inner.ListVisits(ctx, input)
	if err != nil {
		return nil, s.kit.Fail(ctx, span, err, "failed to list visits")
	}
	span.SetAttributes(attribute.Int("visit.result.count", len(list)))
	return list, nil
}

func (s *Service) GetVisit(ctx context.Context, id int64) (*domain.VisitView, error) {
	ctx, span := s.kit.Start(ctx, "VeterinaryService.GetVisit", attribute.Int64("visit.id", id))
	defer span.End()

	view, err := s.inner.GetVisit(ctx, id)
	if err != nil {
		return nil, s.kit.Fail(ctx, span, err, "failed to load visit", slog.Int64("visit.id", id))
	}
	return view, nil
}

func (s *Service) CreateVisit(ctx context.Context, input ports.CreateVisitInput) (*domain.VisitView, error) {
	ctx, span := s.kit.Start(ctx, "VeterinaryService.CreateVisit", attribute.Int64("pet.id", input.PetID))
	defer span.End()

	view, err := s.inner.CreateVisit(ctx, input)
	if err != nil {
		return nil, s.kit.Fail(ctx, span, err, "failed to record visit", slog.Int64("pet.id", input.PetID))
	}
	s.visits.Inc(ctx, attribute.String("visit.type", string(view.Visit.VisitType)))
	s.kit.Info(ctx, "visit recorded", slog.Int64("visit.id", view.Visit.ID), slog.Int64("pet.id", input.PetID))
	return view, nil
}

func (s *Service) UpdateVisit(ctx context.Context, input ports.UpdateVisitInput) (*domain.VisitView, error) {
	ctx, span := s.kit.Start(ctx, "VeterinaryService.UpdateVisit", attribute.Int64("visit.id", input.ID))
	defer span.End()

	view, err := s.inner.UpdateVisit(ctx, input)
	if err != nil {
		return nil, s.kit.Fail(ctx, span, err, "failed to update visit", slog.Int64("visit.id", input.ID))
	}
	return view, nil
}

func (s *Service) DeleteVisit(ctx context.Context, id int64) error {
	ctx, span := s.kit.Start(ctx, "VeterinaryService.DeleteVisit", attribute.Int64("visit.id", id))
	defer span.End()

	if err := s.inner.DeleteVisit(ctx, id); err != nil {
		return s.kit.Fail(ctx, span, err, "failed to delete visit", slog.Int64("visit.id", id))
	}
	s.kit.Info(ctx, "visit deleted", slog.Int64("visit.id", id))
	return nil
}

func (s *Service) ListVaccinations(ctx context.Context, input ports.ListVaccinationsInput) ([]domain.VaccinationView, error) {
	ctx, span := s.kit.Start(ctx, "VeterinaryService.ListVaccinations",
		attribute.Int64("pet.id", input.PetID),
		attribute.String("vaccination.status", input.Status),
	)
	defer span.End()

	list, err := s.inner.ListVaccinations(ctx, input)
	if err != nil {
		return nil, s.kit.Fail(ctx, span, err, "failed to list vaccinations")
	}
	span.SetAttributes(attribute.Int("vaccination.result.count", len(list)))
	return list, nil
}

func (s *Service) GetVaccination(ctx context.Context, id int64) (*domain.VaccinationView, error) {
	ctx, span := s.kit.Start(ctx, "VeterinaryService.GetVaccination", attribute.Int64("vaccination.id", id))
	defer span.End()

	view, err := s.inner.GetVaccination(ctx, id)
	if err != nil {
		return nil, s.kit.Fail(ctx, span, err, "failed to load vaccination", slog.Int64("vaccination.id", id))
	}
	return view, nil
}

func (s *Service) CreateVaccination(ctx context.Context, input ports.CreateVaccinationInput) (*domain.VaccinationView, error) {
	ctx, span := s.kit.Start(ctx, "VeterinaryService.CreateVaccination", attribute.Int64("visit.id", input.VisitID))
	defer span.End()

	view, err := s.inner.CreateVaccination(ctx, input)
	if err != nil {
		return nil, s.kit.Fail(ctx, span, err, "failed to record vaccination", slog.Int64("visit.id", input.VisitID))
	}
	s.vaccinations.Inc(ctx, attribute.String("vaccination.status", string(view.Vaccination.Status)))
	s.kit.Info(ctx, "vaccination recorded", slog.Int64("vaccination.id", view.Vaccination.ID), slog.Int64("visit.id", input.VisitID))
	return view, nil
}

func (s *Service) UpdateVaccination(ctx context.Context, input ports.UpdateVaccinationInput) (*domain.VaccinationView, error) {
	ctx, span := s.kit.Start(ctx, "VeterinaryService.UpdateVaccination", attribute.Int64("vaccination.id", input.ID))
	defer span.End()

	view, err := s.inner.UpdateVaccination(ctx, input)
	if err != nil {
		return nil, s.kit.Fail(ctx, span, err, "failed to update vaccination", slog.Int64("vaccination.id", input.ID))
	}
	return view, nil
}

func (s *Service) DeleteVaccination(ctx context.Context, id int64) error {
	ctx, span := s.kit.Start(ctx, "VeterinaryService.DeleteVaccination", attribute.Int64("vaccination.id", id))
	defer span.End()

	if err := s.inner.DeleteVaccination(ctx, id); err != nil {
		return s.kit.Fail(ctx, span, err, "failed to delete vaccination", slog.Int64("vaccination.id", id))
	}
	return nil
}

func (s *Service) Overdue(ctx context.Context) ([]domain.VaccinationView, error) {
	ctx, span := s.kit.Start(ctx, "VeterinaryService.Overdue")
	defer span.End()

	list, err := s.inner.Overdue(ctx)
	if err != nil {
		return nil, s.kit.Fail(ctx, span, err, "failed to list overdue vaccinations")
	}
	span.SetAttributes(attribute.Int("vaccination.overdue.count", len(list)))
	return list, nil
}

func (s *Service) PetHistory(ctx context.Context, petID int64) ([]domain.VisitView, error) {
	ctx, span := s.kit.Start(ctx, "VeterinaryService.PetHistory", attribute.Int64("pet.id", petID))
	defer span.End()

	list, err := s.inner.PetHistory(ctx, petID)
	if err != nil {
		return nil, s.kit.Fail(ctx, span, err, "failed to load pet history", slog.Int64("pet.id", petID))
	}
	span.SetAttributes(attribute.Int("visit.result.count", len(list)))
	return list, nil
}

func (s *Service) Counts(ctx context.Context) (domain.Counts, error) {
	ctx, span := s.kit.Start(ctx, "VeterinaryService.Counts")
	defer span.End()

	counts, err := s.inner.Counts(ctx)
	if err != nil {
		return domain.Counts{}, s.kit.Fail(ctx, span, err, "failed to count veterinary records")
	}
	return counts, nil
}

func (s *Service) DeleteByPet(ctx context.Context, petID int64) error {
	ctx, span := s.kit.Start(ctx, "VeterinaryService.DeleteByPet", attribute.Int64("pet.id", petID))
	defer span.End()

	if err := s.inner.DeleteByPet(ctx, petID); err != nil {
		return s.kit.Fail(ctx, span, err, "failed to drop visits of pet", slog.Int64("pet.id", petID))
	}
	return nil
}

var _ ports.Service = (*Service)(nil)
