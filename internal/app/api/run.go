package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	adoptionsworkflows "github.com/Apurer/pet-adoption-center/internal/domains/adoptions/adapters/workflows"
	adoptionsports "github.com/Apurer/pet-adoption-center/internal/domains/adoptions/ports"
	"github.com/Apurer/pet-adoption-center/internal/platform/migrations"
	platformobservability "github.com/Apurer/pet-adoption-center/internal/platform/observability"
	platformpostgres "github.com/Apurer/pet-adoption-center/internal/platform/postgres"
)

const serviceName = "pet-adoption-center-api"

// Run boots the adoption center HTTP API with observability, stores, and workflows wired.
func Run(ctx context.Context) error {
	cfg, err := LoadConfig()
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	instruments, shutdown, err := platformobservability.Init(ctx, serviceName, cfg.Environment)
	if err != nil {
		return fmt.Errorf("failed to initialize observability: %w", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdown(shutdownCtx); err != nil {
			instruments.Logger.Error("failed to shutdown observability", slog.String("error", err.Error()))
		}
	}()
	logger := instruments.Logger

	db, cleanupDB := platformpostgres.Open(ctx, cfg.PostgresDSN, cfg.PostgresOptions(), logger)
	defer cleanupDB()
	if err := migrations.Run(db); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}

	services, err := BuildServices(db, cfg, instruments)
	if err != nil {
		return err
	}
	seeded, err := services.Admins.EnsureBootstrap(ctx, cfg.BootstrapAdminEmail, cfg.BootstrapAdminPassword)
	if err != nil {
		return fmt.Errorf("failed to seed bootstrap admin: %w", err)
	}
	if seeded {
		logger.Info("bootstrap super admin created", slog.String("email", cfg.BootstrapAdminEmail))
	}

	var applications adoptionsports.ApplicationWorkflows = adoptionsworkflows.NewInlineApplicationWorkflows(services.Adoptions)
	if temporalClient, err := DialTemporal(cfg, instruments, "temporal-client"); err != nil {
		logger.Warn("Temporal workflows unavailable, running adoption applications inline", slog.String("error", err.Error()))
	} else {
		defer temporalClient.Close()
		applications = adoptionsworkflows.NewTemporalApplicationWorkflows(temporalClient)
		logger.Info("Temporal workflows enabled", slog.String("namespace", cfg.TemporalNamespace))
	}

	engine := NewEngine(serviceName, services, applications, platformobservability.NewHTTPMetrics("adoption_center"))
	addr := ":" + cfg.Port
	logger.Info("adoption center API listening",
		slog.String("addr", addr),
		slog.String("policy", string(cfg.Policy.Variant)),
		slog.Bool("postgres", db != nil),
	)
	server := &http.Server{Addr: addr, Handler: engine, ReadHeaderTimeout: 10 * time.Second}
	errCh := make(chan error, 1)
	go func() { errCh <- server.ListenAndServe() }()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		logger.Error("adoption center API exited", slog.String("addr", addr), slog.String("error", err.Error()))
		return err
	case <-ctx.Done():
	}
	logger.Info("adoption center API shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}
