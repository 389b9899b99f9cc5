package observability

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"

	"github.com/Apurer/pet-adoption-center/internal/domains/adoptions/domain"
	"github.com/Apurer/pet-adoption-center/internal/domains/adoptions/ports"
	"github.com/Apurer/pet-adoption-center/internal/shared/instrument"
)

const tracerName = "github.com/Apurer/pet-adoption-center/internal/domains/adoptions/adapters/observability/service"

// Service decorates the adoptions port with tracing, logging, and metrics.
type Service struct {
	inner       ports.Service
	kit         instrument.Kit
	applied     instrument.Counter
	transitions instrument.Counter
	deleted     instrument.Counter
}

func New(inner ports.Service, opts ...instrument.Option) ports.Service {
	kit := instrument.New(tracerName, opts...)
	return &Service{
		inner:       inner,
		kit:         kit,
		applied:     kit.Counter("adoptions.service.applied", "Number of adoption applications filed"),
		transitions: kit.Counter("adoptions.service.transitions", "Number of adoption state transitions by action"),
		deleted:     kit.Counter("adoptions.service.deleted", "Number of adoptions deleted"),
	}
}

func (s *Service) Policy() domain.Policy { return s.inner.Policy() }

func (s *Service) List(ctx context.Context, input ports.ListInput) ([]domain.View, error) {
	ctx, span := s.kit.Start(ctx, "AdoptionsService.List",
		attribute.String("adoption.filter.status", input.Status),
		attribute.Int64("adoption.filter.adopter_id", input.AdopterID),
		attribute.Int64("adoption.filter.pet_id", input.PetID),
	)
	defer span.End()

	views, err := s.inner.List(ctx, input)
	if err != nil {
		return nil, s.kit.Fail(ctx, span, err, "failed to list adoptions")
	}
	span.SetAttributes(attribute.Int("adoption.result.count", len(views)))
	return views, nil
}

func (s *Service) Get(ctx context.Context, id int64) (*domain.View, error) {
	ctx, span := s.kit.Start(ctx, "AdoptionsService.Get", attribute.Int64("adoption.id", id))
	defer span.End()

	view, err := s.inner.Get(ctx, id)
	if err != nil {
		return nil, s.kit.Fail(ctx, span, err, "failed to load adoption", slog.Int64("adoption.id", id))
	}
	return view, nil
}

func (s *Service) Apply(ctx context.Context, input ports.ApplyInput) (*domain.View, error) {
	ctx, span := s.kit.Start(ctx, "AdoptionsService.Apply",
		attribute.Int64("pet.id", input.PetID),
		attribute.Int64("adopter.id", input.AdopterID),
		attribute.String("adoption.policy", string(s.inner.Policy().Variant)),
	)
	defer span.End()

	view, err := s.inner.Apply(ctx, input)
	if err != nil {
		return nil, s.kit.Fail(ctx, span, err, "adoption application rejected",
			slog.Int64("pet.id", input.PetID), slog.Int64("adopter.id", input.AdopterID))
	}
	s.applied.Inc(ctx)
	span.SetAttributes(attribute.Int64("adoption.id", view.Adoption.ID))
	s.kit.Info(ctx, "adoption application filed",
		slog.Int64("adoption.id", view.Adoption.ID),
		slog.Int64("pet.id", input.PetID),
		slog.Int64("adopter.id", input.AdopterID),
	)
	return view, nil
}

func (s *Service) Approve(ctx context.Context, id int64) (*domain.View, error) {
	return s.transition(ctx, "approve", id, s.inner.Approve)
}

func (s *Service) Deny(ctx context.Context, id int64) (*domain.View, error) {
	return s.transition(ctx, "deny", id, s.inner.Deny)
}

func (s *Service) Complete(ctx context.Context, id int64) (*domain.View, error) {
	return s.transition(ctx, "complete", id, s.inner.Complete)
}

func (s *Service) Cancel(ctx context.Context, id int64) (*domain.View, error) {
	return s.transition(ctx, "cancel", id, s.inner.Cancel)
}

func (s *Service) Return(ctx context.Context, id int64) (*domain.View, error) {
	return s.transition(ctx, "return", id, s.inner.Return)
}

func (s *Service) Edit(ctx context.Context, input ports.EditInput) (*domain.View, error) {
	ctx, span := s.kit.Start(ctx, "AdoptionsService.Edit",
		attribute.Int64("adoption.id", input.ID),
		attribute.Bool("adoption.fee_changed", input.Fee != nil),
	)
	defer span.End()

	view, err := s.inner.Edit(ctx, input)
	if err != nil {
		return nil, s.kit.Fail(ctx, span, err, "failed to edit adoption", slog.Int64("adoption.id", input.ID))
	}
	return view, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	ctx, span := s.kit.Start(ctx, "AdoptionsService.Delete", attribute.Int64("adoption.id", id))
	defer span.End()

	if err := s.inner.Delete(ctx, id); err != nil {
		return s.kit.Fail(ctx, span, err, "failed to delete adoption", slog.Int64("adoption.id", id))
	}
	s.deleted.Inc(ctx)
	s.kit.Info(ctx, "adoption deleted", slog.Int64("adoption.id", id))
	return nil
}

func (s *Service) ReleaseForAdopter(ctx context.Context, adopterID int64) error {
	ctx, span := s.kit.Start(ctx, "AdoptionsService.ReleaseForAdopter", attribute.Int64("adopter.id", adopterID))
	defer span.End()

	if err := s.inner.ReleaseForAdopter(ctx, adopterID); err != nil {
		return s.kit.Fail(ctx, span, err, "failed to release adopter adoptions", slog.Int64("adopter.id", adopterID))
	}
	s.kit.Info(ctx, "adopter adoptions released", slog.Int64("adopter.id", adopterID))
	return nil
}

func (s *Service) CountByAdopter(ctx context.Context) (map[int64]int, error) {
	ctx, span := s.kit.Start(ctx, "AdoptionsService.CountByAdopter")
	defer span.End()

	counts, err := s.inner.CountByAdopter(ctx)
	if err != nil {
		return nil, s.kit.Fail(ctx, span, err, "failed to count adoptions")
	}
	return counts, nil
}

func (s *Service) PendingApplications(ctx context.Context) ([]domain.View, error) {
	ctx, span := s.kit.Start(ctx, "AdoptionsService.PendingApplications")
	defer span.End()

	views, err := s.inner.PendingApplications(ctx)
	if err != nil {
		return nil, s.kit.Fail(ctx, span, err, "failed to list pending applications")
	}
	span.SetAttributes(attribute.Int("adoption.result.count", len(views)))
	return views, nil
}

func (s *Service) Report(ctx context.Context) ([]domain.View, error) {
	ctx, span := s.kit.Start(ctx, "AdoptionsService.Report")
	defer span.End()

	views, err := s.inner.Report(ctx)
	if err != nil {
		return nil, s.kit.Fail(ctx, span, err, "failed to build adoption report")
	}
	span.SetAttributes(attribute.Int("adoption.result.count", len(views)))
	return views, nil
}

func (s *Service) MonthlyStats(ctx context.Context, year, month int) (domain.MonthlyStats, error) {
	ctx, span := s.kit.Start(ctx, "AdoptionsService.MonthlyStats",
		attribute.Int("report.year", year),
		attribute.Int("report.month", month),
	)
	defer span.End()

	stats, err := s.inner.MonthlyStats(ctx, year, month)
	if err != nil {
		return domain.MonthlyStats{}, s.kit.Fail(ctx, span, err, "failed to compute monthly stats",
			slog.Int("report.year", year), slog.Int("report.month", month))
	}
	span.SetAttributes(attribute.Int("report.total", stats.Total))
	return stats, nil
}

func (s *Service) transition(ctx context.Context, action string, id int64, next func(context.Context, int64) (*domain.View, error)) (*domain.View, error) {
	ctx, span := s.kit.Start(ctx, "AdoptionsService.Transition",
		attribute.String("adoption.action", action),
		attribute.Int64("adoption.id", id),
	)
	defer span.End()

	view, err := next(ctx, id)
	if err != nil {
		s.transitions.Inc(ctx, attribute.String("action", action), attribute.Bool("success", false))
		return nil, s.kit.Fail(ctx, span, err, "adoption transition rejected",
			slog.String("adoption.action", action), slog.Int64("adoption.id", id))
	}
	s.transitions.Inc(ctx, attribute.String("action", action), attribute.Bool("success", true))
	span.SetAttributes(attribute.String("adoption.status", string(view.Adoption.Status)))
	s.kit.Info(ctx, "adoption transitioned",
		slog.String("adoption.action", action),
		slog.Int64("adoption.id", id),
		slog.String("adoption.status", string(view.Adoption.Status)),
	)
	return view, nil
}

var _ ports.Service = (*Service)(nil)
