package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"go.temporal.io/sdk/activity"
	"go.temporal.io/sdk/worker"
	"go.temporal.io/sdk/workflow"

	"github.com/Apurer/pet-adoption-center/internal/app/api"
	"github.com/Apurer/pet-adoption-center/internal/platform/migrations"
	platformobservability "github.com/Apurer/pet-adoption-center/internal/platform/observability"
	platformpostgres "github.com/Apurer/pet-adoption-center/internal/platform/postgres"
	adoptionactivities "github.com/Apurer/pet-adoption-center/internal/platform/temporal/activities/adoptions"
	adoptionworkflows "github.com/Apurer/pet-adoption-center/internal/platform/temporal/workflows/adoptions"
)

func main() {
	ctx := context.Background()
	const serviceName = "pet-adoption-center-worker"
	cfg, err := api.LoadConfig()
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}
	instruments, shutdown, err := platformobservability.Init(ctx, serviceName, cfg.Environment)
	if err != nil {
		log.Fatalf("failed to initialize observability: %v", err)
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
	if db == nil {
		logger.Warn("worker running against in-memory stores; applications will not be visible to the API")
	}
	if err := migrations.Run(db); err != nil {
		logger.Error("failed to migrate schema", slog.String("error", err.Error()))
		os.Exit(1)
	}
	services, err := api.BuildServices(db, cfg, instruments)
	if err != nil {
		logger.Error("failed to build services", slog.String("error", err.Error()))
		os.Exit(1)
	}
	activities := adoptionactivities.NewActivities(services.Adoptions)

	temporalClient, err := api.DialTemporal(cfg, instruments, "temporal-worker")
	if err != nil {
		logger.Error("failed to create Temporal client", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer temporalClient.Close()

	w := worker.New(temporalClient, adoptionworkflows.ApplicationTaskQueue, worker.Options{})
	w.RegisterWorkflowWithOptions(adoptionworkflows.ApplicationWorkflow, workflow.RegisterOptions{Name: adoptionworkflows.ApplicationWorkflowName})
	w.RegisterActivityWithOptions(activities.Apply, activity.RegisterOptions{Name: adoptionactivities.ApplyActivityName})

	logger.Info("worker listening", slog.String("taskQueue", adoptionworkflows.ApplicationTaskQueue), slog.String("namespace", cfg.TemporalNamespace))
	if err := w.Run(worker.InterruptCh()); err != nil {
		logger.Error("Temporal worker exited with error", slog.String("error", err.Error()))
		return
	}
	logger.Info("Temporal worker stopped")
}
