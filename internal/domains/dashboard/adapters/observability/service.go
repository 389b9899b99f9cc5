package observability

import (
	"context"

	"go.opentelemetry.io/otel/attribute"

	"github.com/Apurer/pet-adoption-center/internal/domains/dashboard/domain"
	"github.com/Apurer/pet-adoption-center/internal/domains/dashboard/ports"
	"github.com/Apurer/pet-adoption-center/internal/shared/instrument"
)

const tracerName = "github.com/Apurer/pet-adoption-center/internal/domains/dashboard/adapters/observability/service"

// Service decorates the dashboard port with tracing and error logging.
type Service struct {
	inner ports.Service
	kit   instrument.Kit
}

func New(inner ports.Service, opts ...instrument.Option) ports.Service {
	return &Service{inner: inner, kit: instrument.New(tracerName, opts...)}
}

func (s *Service) Stats(ctx context.Context) (*domain.Stats, error) {
	ctx, span := s.kit.Start(ctx, "DashboardService.Stats")
	defer span.End()

	stats, err := s.inner.Stats(ctx)
	if err != nil {
		return nil, s.kit.Fail(ctx, span, err, "failed to compute dashboard stats")
	}
	span.SetAttributes(
		attribute.Int("dashboard.pets.total", stats.Pets.Total),
		attribute.Int("dashboard.adoptions.pending", stats.Adoptions.Pending),
	)
	return stats, nil
}

func (s *Service) Activity(ctx context.Context) (*domain.Activity, error) {
	ctx, span := s.kit.Start(ctx, "DashboardService.Activity")
	defer span.End()

	activity, err := s.inner.Activity(ctx)
	if err != nil {
		return nil, s.kit.Fail(ctx, span, err, "failed to load dashboard activity")
	}
	return activity, nil
}

var _ ports.Service = (*Service)(nil)
