package observability

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"

	"github.com/Apurer/pet-adoption-center/internal/domains/admins/domain"
	"github.com/Apurer/pet-adoption-center/internal/domains/admins/ports"
	"github.com/Apurer/pet-adoption-center/internal/platform/auth"
	"github.com/Apurer/pet-adoption-center/internal/shared/instrument"
)

const tracerName = "github.com/Apurer/pet-adoption-center/internal/domains/admins/adapters/observability/service"

// Service decorates the admins port with tracing, logging, and metrics.
type Service struct {
	inner   ports.Service
	kit     instrument.Kit
	logins  instrument.Counter
	created instrument.Counter
	toggled instrument.Counter
}

func New(inner ports.Service, opts ...instrument.Option) ports.Service {
	kit := instrument.New(tracerName, opts...)
	return &Service{
		inner:   inner,
		kit:     kit,
		logins:  kit.Counter("admins.service.logins", "Number of admin login attempts"),
		created: kit.Counter("admins.service.created", "Number of admin accounts created"),
		toggled: kit.Counter("admins.service.toggled", "Number of admin activation changes"),
	}
}

func (s *Service) Login(ctx context.Context, email, password string) (*ports.Session, error) {
	ctx, span := s.kit.Start(ctx, "AdminsService.Login")
	defer span.End()

	session, err := s.inner.Login(ctx, email, password)
	if err != nil {
		s.logins.Inc(ctx, attribute.Bool("success", false))
		return nil, s.kit.Fail(ctx, span, err, "admin login failed")
	}
	s.logins.Inc(ctx, attribute.Bool("success", true))
	span.SetAttributes(attribute.Int64("admin.id", session.Admin.ID))
	s.kit.Info(ctx, "admin logged in", slog.Int64("admin.id", session.Admin.ID))
	return session, nil
}

func (s *Service) Me(ctx context.Context, id int64) (*domain.Admin, error) {
	ctx, span := s.kit.Start(ctx, "AdminsService.Me", attribute.Int64("admin.id", id))
	defer span.End()

	admin, err := s.inner.Me(ctx, id)
	if err != nil {
		return nil, s.kit.Fail(ctx, span, err, "failed to load admin", slog.Int64("admin.id", id))
	}
	return admin, nil
}

func (s *Service) Authorize(ctx context.Context, claims *auth.Claims) (*domain.Admin, error) {
	ctx, span := s.kit.Start(ctx, "AdminsService.Authorize")
	defer span.End()

	admin, err := s.inner.Authorize(ctx, claims)
	if err != nil {
		return nil, s.kit.Fail(ctx, span, err, "admin authorization rejected")
	}
	span.SetAttributes(attribute.Int64("admin.id", admin.ID), attribute.String("admin.role", string(admin.Role)))
	return admin, nil
}

func (s *Service) List(ctx context.Context) ([]*domain.Admin, error) {
	ctx, span := s.kit.Start(ctx, "AdminsService.List")
	defer span.End()

	list, err := s.inner.List(ctx)
	if err != nil {
		return nil, s.kit.Fail(ctx, span, err, "failed to list admins")
	}
	span.SetAttributes(attribute.Int("admin.result.count", len(list)))
	return list, nil
}

func (s *Service) Create(ctx context.Context, actor *domain.Admin, input ports.CreateInput) (*domain.Admin, error) {
	ctx, span := s.kit.Start(ctx, "AdminsService.Create", attribute.String("admin.role", input.Role))
	defer span.End()

	admin, err := s.inner.Create(ctx, actor, input)
	if err != nil {
		return nil, s.kit.Fail(ctx, span, err, "failed to create admin")
	}
	s.created.Inc(ctx)
	s.kit.Info(ctx, "admin created", slog.Int64("admin.id", admin.ID), slog.String("admin.role", string(admin.Role)))
	return admin, nil
}

func (s *Service) ToggleActive(ctx context.Context, actor *domain.Admin, id int64) (*domain.Admin, error) {
	ctx, span := s.kit.Start(ctx, "AdminsService.ToggleActive", attribute.Int64("admin.id", id))
	defer span.End()

	admin, err := s.inner.ToggleActive(ctx, actor, id)
	if err != nil {
		return nil, s.kit.Fail(ctx, span, err, "failed to toggle admin", slog.Int64("admin.id", id))
	}
	s.toggled.Inc(ctx, attribute.Bool("active", admin.IsActive))
	s.kit.Info(ctx, "admin activation changed", slog.Int64("admin.id", id), slog.Bool("admin.active", admin.IsActive))
	return admin, nil
}

func (s *Service) EnsureBootstrap(ctx context.Context, email, password string) (bool, error) {
	ctx, span := s.kit.Start(ctx, "AdminsService.EnsureBootstrap")
	defer span.End()

	created, err := s.inner.EnsureBootstrap(ctx, email, password)
	if err != nil {
		return false, s.kit.Fail(ctx, span, err, "admin bootstrap failed")
	}
	if created {
		s.kit.Info(ctx, "bootstrap super admin created")
	}
	return created, nil
}

var _ ports.Service = (*Service)(nil)
