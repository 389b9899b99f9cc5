package api

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"go.temporal.io/sdk/client"

	adoptiondomain "github.com/Apurer/pet-adoption-center/internal/domains/adoptions/domain"
	platformpostgres "github.com/Apurer/pet-adoption-center/internal/platform/postgres"
)

// localJWTSecret signs tokens when a local process runs without JWT_SECRET.
const localJWTSecret = "pet-adoption-center-local-secret"

// Config carries environment-driven settings for the API process.
type Config struct {
	Environment              string
	Port                     string
	PostgresDSN              string
	PostgresDriver           string
	JWTSecret                string
	Policy                   adoptiondomain.Policy
	TemporalAddress          string
	TemporalNamespace        string
	TemporalDisabled         bool
	TokenPurgeIntervalMinute int
	BootstrapAdminEmail      string
	BootstrapAdminPassword   string
}

// LoadConfig reads an optional .env file, then environment variables, applies
// defaults, and validates basic constraints.
func LoadConfig() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}
	cfg := Config{
		Environment:            envDefault("ENVIRONMENT", "local"),
		Port:                   envDefault("PORT", "8080"),
		PostgresDSN:            strings.TrimSpace(os.Getenv("POSTGRES_DSN")),
		PostgresDriver:         strings.ToLower(envDefault("POSTGRES_DRIVER", platformpostgres.DriverPGX)),
		JWTSecret:              strings.TrimSpace(os.Getenv("JWT_SECRET")),
		TemporalAddress:        envDefault("TEMPORAL_ADDRESS", client.DefaultHostPort),
		TemporalNamespace:      envDefault("TEMPORAL_NAMESPACE", client.DefaultNamespace),
		TemporalDisabled:       isTruthy(os.Getenv("TEMPORAL_DISABLED")),
		BootstrapAdminEmail:    strings.TrimSpace(os.Getenv("BOOTSTRAP_ADMIN_EMAIL")),
		BootstrapAdminPassword: os.Getenv("BOOTSTRAP_ADMIN_PASSWORD"),
	}
	switch cfg.PostgresDriver {
	case platformpostgres.DriverPGX, platformpostgres.DriverPQ:
	default:
		return Config{}, fmt.Errorf("POSTGRES_DRIVER must be %q or %q", platformpostgres.DriverPGX, platformpostgres.DriverPQ)
	}
	if cfg.JWTSecret == "" {
		if !cfg.Local() {
			return Config{}, errors.New("JWT_SECRET is required outside the local environment")
		}
		cfg.JWTSecret = localJWTSecret
	}

	variant, err := adoptiondomain.ParseVariant(os.Getenv("ADOPTION_POLICY"))
	if err != nil {
		return Config{}, fmt.Errorf("ADOPTION_POLICY: %w", err)
	}
	cfg.Policy = adoptiondomain.Policy{Variant: variant, AllowReturn: true}
	if raw := strings.TrimSpace(os.Getenv("ADOPTION_APPROVAL_RETURNS")); raw != "" {
		cfg.Policy.AllowReturn = isTruthy(raw)
	}

	if raw := strings.TrimSpace(os.Getenv("TOKEN_PURGE_INTERVAL_MINUTES")); raw != "" {
		minutes, err := strconv.Atoi(raw)
		if err != nil || minutes <= 0 {
			return Config{}, fmt.Errorf("TOKEN_PURGE_INTERVAL_MINUTES must be a positive integer")
		}
		cfg.TokenPurgeIntervalMinute = minutes
	}
	return cfg, nil
}

// Local reports whether the process runs in the developer environment.
func (c Config) Local() bool {
	return strings.EqualFold(c.Environment, "local")
}

// PostgresOptions selects the gorm driver for the configured DSN.
func (c Config) PostgresOptions() platformpostgres.Options {
	return platformpostgres.Options{Driver: c.PostgresDriver}
}

func envDefault(key, fallback string) string {
	if val := strings.TrimSpace(os.Getenv(key)); val != "" {
		return val
	}
	return fallback
}

func isTruthy(value string) bool {
	value = strings.TrimSpace(strings.ToLower(value))
	return value == "1" || value == "true" || value == "yes"
}
