package observability

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"

	"github.com/Apurer/pet-adoption-center/internal/domains/tokens/ports"
	"github.com/Apurer/pet-adoption-center/internal/platform/auth"
	"github.com/Apurer/pet-adoption-center/internal/shared/instrument"
)

const tracerName = "github.com/Apurer/pet-adoption-center/internal/domains/tokens/adapters/observability/service"

// Service decorates the tokens port with tracing, logging, and metrics.
type Service struct {
	inner   ports.Service
	kit     instrument.Kit
	revoked instrument.Counter
	purged  instrument.Counter
}

func New(inner ports.Service, opts ...instrument.Option) ports.Service {
	kit := instrument.New(tracerName, opts...)
	return &Service{
		inner:   inner,
		kit:     kit,
		revoked: kit.Counter("tokens.service.revoked", "Number of tokens revoked at logout"),
		purged:  kit.Counter("tokens.service.purge_runs", "Number of revocation purge runs"),
	}
}

func (s *Service) Revoke(ctx context.Context, claims *auth.Claims) error {
	ctx, span := s.kit.Start(ctx, "TokensService.Revoke")
	defer span.End()

	if err := s.inner.Revoke(ctx, claims); err != nil {
		return s.kit.Fail(ctx, span, err, "failed to revoke token")
	}
	s.revoked.Inc(ctx, attribute.Bool("admin", claims.IsAdmin))
	s.kit.Info(ctx, "token revoked", slog.Int64("principal.id", claims.ID), slog.Bool("principal.admin", claims.IsAdmin))
	return nil
}

// IsRevoked runs on every authenticated request, so it only traces failures.
func (s *Service) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	revoked, err := s.inner.IsRevoked(ctx, tokenID)
	if err != nil {
		ctx, span := s.kit.Start(ctx, "TokensService.IsRevoked")
		defer span.End()
		return false, s.kit.Fail(ctx, span, err, "revocation lookup failed")
	}
	return revoked, nil
}

func (s *Service) PurgeExpired(ctx context.Context) (int64, error) {
	ctx, span := s.kit.Start(ctx, "TokensService.PurgeExpired")
	defer span.End()

	n, err := s.inner.PurgeExpired(ctx)
	if err != nil {
		return 0, s.kit.Fail(ctx, span, err, "revocation purge failed")
	}
	s.purged.Inc(ctx)
	span.SetAttributes(attribute.Int64("tokens.purged", n))
	s.kit.Info(ctx, "expired revocations purged", slog.Int64("tokens.purged", n))
	return n, nil
}

var _ ports.Service = (*Service)(nil)
