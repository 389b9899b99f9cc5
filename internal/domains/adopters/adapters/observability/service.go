package observability

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"

	"github.com/Apurer/pet-adoption-center/internal/domains/adopters/domain"
	"github.com/Apurer/pet-adoption-center/internal/domains/adopters/ports"
	"github.com/Apurer/pet-adoption-center/internal/shared/instrument"
)

const tracerName = "github.com/Apurer/pet-adoption-center/internal/domains/adopters/adapters/observability/service"

// Service decorates the adopters port with tracing, logging, and metrics.
// Emails and passwords never reach spans or logs.
type Service struct {
	inner      ports.Service
	kit        instrument.Kit
	registered instrument.Counter
	logins     instrument.Counter
	deleted    instrument.Counter
}

func New(inner ports.Service, opts ...instrument.Option) ports.Service {
	kit := instrument.New(tracerName, opts...)
	return &Service{
		inner:      inner,
		kit:        kit,
		registered: kit.Counter("adopters.service.registered", "Number of adopter registrations"),
		logins:     kit.Counter("adopters.service.logins", "Number of adopter login attempts"),
		deleted:    kit.Counter("adopters.service.deleted", "Number of adopters deleted"),
	}
}

func (s *Service) Register(ctx context.Context, input ports.RegisterInput) (*ports.Session, error) {
	ctx, span := s.kit.Start(ctx, "AdoptersService.Register")
	defer span.End()

	session, err := s.inner.Register(ctx, input)
	if err != nil {
		return nil, s.kit.Fail(ctx, span, err, "adopter registration failed")
	}
	s.registered.Inc(ctx)
	span.SetAttributes(attribute.Int64("adopter.id", session.Adopter.ID))
	s.kit.Info(ctx, "adopter registered", slog.Int64("adopter.id", session.Adopter.ID))
	return session, nil
}

func (s *Service) Login(ctx context.Context, email, password string) (*ports.Session, error) {
	ctx, span := s.kit.Start(ctx, "AdoptersService.Login")
	defer span.End()

	session, err := s.inner.Login(ctx, email, password)
	if err != nil {
		s.logins.Inc(ctx, attribute.Bool("success", false))
		return nil, s.kit.Fail(ctx, span, err, "adopter login failed")
	}
	s.logins.Inc(ctx, attribute.Bool("success", true))
	span.SetAttributes(attribute.Int64("adopter.id", session.Adopter.ID))
	return session, nil
}

func (s *Service) Get(ctx context.Context, id int64) (*domain.Adopter, error) {
	ctx, span := s.kit.Start(ctx, "AdoptersService.Get", attribute.Int64("adopter.id", id))
	defer span.End()

	adopter, err := s.inner.Get(ctx, id)
	if err != nil {
		return nil, s.kit.Fail(ctx, span, err, "failed to load adopter", slog.Int64("adopter.id", id))
	}
	return adopter, nil
}

func (s *Service) List(ctx context.Context) ([]ports.Summary, error) {
	ctx, span := s.kit.Start(ctx, "AdoptersService.List")
	defer span.End()

	list, err := s.inner.List(ctx)
	if err != nil {
		return nil, s.kit.Fail(ctx, span, err, "failed to list adopters")
	}
	span.SetAttributes(attribute.Int("adopter.result.count", len(list)))
	return list, nil
}

func (s *Service) UpdateProfile(ctx context.Context, input ports.UpdateProfileInput) (*domain.Adopter, error) {
	ctx, span := s.kit.Start(ctx, "AdoptersService.UpdateProfile",
		attribute.Int64("adopter.id", input.ID),
		attribute.Bool("adopter.password_rotated", input.NewPassword != ""),
	)
	defer span.End()

	adopter, err := s.inner.UpdateProfile(ctx, input)
	if err != nil {
		return nil, s.kit.Fail(ctx, span, err, "failed to update adopter", slog.Int64("adopter.id", input.ID))
	}
	s.kit.Info(ctx, "adopter updated", slog.Int64("adopter.id", input.ID))
	return adopter, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	ctx, span := s.kit.Start(ctx, "AdoptersService.Delete", attribute.Int64("adopter.id", id))
	defer span.End()

	if err := s.inner.Delete(ctx, id); err != nil {
		return s.kit.Fail(ctx, span, err, "failed to delete adopter", slog.Int64("adopter.id", id))
	}
	s.deleted.Inc(ctx)
	s.kit.Info(ctx, "adopter deleted", slog.Int64("adopter.id", id))
	return nil
}

var _ ports.Service = (*Service)(nil)
