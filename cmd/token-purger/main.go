package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Apurer/pet-adoption-center/internal/app/api"
	tokenspostgres "github.com/Apurer/pet-adoption-center/internal/domains/tokens/adapters/persistence/postgres"
	tokensapp "github.com/Apurer/pet-adoption-center/internal/domains/tokens/application"
	platformobservability "github.com/Apurer/pet-adoption-center/internal/platform/observability"
	platformpostgres "github.com/Apurer/pet-adoption-center/internal/platform/postgres"
)

// With TOKEN_PURGE_INTERVAL_MINUTES set the purger keeps running on that
// cadence; otherwise it purges once and exits.
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := api.LoadConfig()
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}
	logger := platformobservability.NewLogger(os.Stdout)
	connectCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	db, cleanup := platformpostgres.Open(connectCtx, cfg.PostgresDSN, cfg.PostgresOptions(), logger)
	cancel()
	defer cleanup()
	if db == nil {
		log.Fatal("POSTGRES_DSN not set or connection failed; cannot purge token revocations")
	}

	service := tokensapp.NewService(tokenspostgres.NewStore(db))
	purge := func() {
		removed, err := service.PurgeExpired(ctx)
		if err != nil {
			logger.Error("token revocation purge failed", slog.String("error", err.Error()))
			return
		}
		logger.Info("token revocation purge completed", slog.Int64("removed", removed))
	}

	purge()
	if cfg.TokenPurgeIntervalMinute <= 0 {
		return
	}
	ticker := time.NewTicker(time.Duration(cfg.TokenPurgeIntervalMinute) * time.Minute)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			purge()
		}
	}
}
