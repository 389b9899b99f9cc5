// Package ctl implements adoptionctl, the operator CLI for the adoption center.
package ctl

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"github.com/Apurer/pet-adoption-center/internal/app/api"
	platformobservability "github.com/Apurer/pet-adoption-center/internal/platform/observability"
	platformpostgres "github.com/Apurer/pet-adoption-center/internal/platform/postgres"
)

// ErrNoDatabase is returned by commands that need POSTGRES_DSN.
var ErrNoDatabase = errors.New("POSTGRES_DSN not set or connection failed")

var (
	okMark   = color.New(color.FgGreen).Sprint("✓")
	skipMark = color.New(color.FgYellow).Sprint("-")
)

// NewRootCmd assembles the adoptionctl command tree.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "adoptionctl",
		Short: "Operate a pet adoption center deployment",
		Long: `adoptionctl runs maintenance tasks against the adoption center database:
schema migrations, bootstrap admin accounts, token revocation cleanup, and
inspection of the configured adoption policy.`,
		SilenceUsage: true,
	}
	root.AddCommand(MigrateCmd())
	root.AddCommand(AdminCmd())
	root.AddCommand(TokensCmd())
	root.AddCommand(PolicyCmd())
	return root
}

type env struct {
	cfg      api.Config
	db       *gorm.DB
	services *api.Services
	cleanup  func()
}

// openEnv loads configuration and connects the stores. Commands that change
// data pass requireDB, since the in-memory stores vanish with the process.
func openEnv(ctx context.Context, requireDB bool, logOut io.Writer) (*env, error) {
	cfg, err := api.LoadConfig()
	if err != nil {
		return nil, err
	}
	logger := platformobservability.NewLogger(logOut)
	db, cleanup := platformpostgres.Open(ctx, cfg.PostgresDSN, cfg.PostgresOptions(), logger)
	if db == nil && requireDB {
		cleanup()
		return nil, ErrNoDatabase
	}
	services, err := api.BuildServices(db, cfg, &platformobservability.Instruments{Logger: logger.With(slog.String("component", "adoptionctl"))})
	if err != nil {
		cleanup()
		return nil, err
	}
	return &env{cfg: cfg, db: db, services: services, cleanup: cleanup}, nil
}
