package api

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	adoptiondomain "github.com/Apurer/pet-adoption-center/internal/domains/adoptions/domain"
	platformpostgres "github.com/Apurer/pet-adoption-center/internal/platform/postgres"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"ENVIRONMENT", "PORT", "POSTGRES_DSN", "POSTGRES_DRIVER", "JWT_SECRET",
		"ADOPTION_POLICY", "ADOPTION_APPROVAL_RETURNS",
		"TEMPORAL_ADDRESS", "TEMPORAL_NAMESPACE", "TEMPORAL_DISABLED",
		"TOKEN_PURGE_INTERVAL_MINUTES", "BOOTSTRAP_ADMIN_EMAIL", "BOOTSTRAP_ADMIN_PASSWORD",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Port)
	assert.True(t, cfg.Local())
	assert.Equal(t, platformpostgres.DriverPGX, cfg.PostgresDriver)
	assert.Equal(t, localJWTSecret, cfg.JWTSecret)
	assert.Equal(t, adoptiondomain.DefaultPolicy(), cfg.Policy)
	assert.False(t, cfg.TemporalDisabled)
	assert.Zero(t, cfg.TokenPurgeIntervalMinute)
}

func TestLoadConfigOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("ENVIRONMENT", "production")
	t.Setenv("PORT", "9090")
	t.Setenv("POSTGRES_DRIVER", "PQ")
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("ADOPTION_POLICY", "simple")
	t.Setenv("TEMPORAL_DISABLED", "yes")
	t.Setenv("TOKEN_PURGE_INTERVAL_MINUTES", "15")
	t.Setenv("BOOTSTRAP_ADMIN_EMAIL", " root@shelter.test ")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.False(t, cfg.Local())
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, platformpostgres.DriverPQ, cfg.PostgresOptions().Driver)
	assert.Equal(t, "s3cret", cfg.JWTSecret)
	assert.Equal(t, adoptiondomain.VariantSimple, cfg.Policy.Variant)
	assert.True(t, cfg.TemporalDisabled)
	assert.Equal(t, 15, cfg.TokenPurgeIntervalMinute)
	assert.Equal(t, "root@shelter.test", cfg.BootstrapAdminEmail)
}

func TestLoadConfigApprovalReturnsSwitch(t *testing.T) {
	clearEnv(t)
	t.Setenv("ADOPTION_APPROVAL_RETURNS", "false")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, adoptiondomain.VariantApproval, cfg.Policy.Variant)
	assert.False(t, cfg.Policy.AllowReturn)
}

func TestLoadConfigRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"secret required outside local", map[string]string{"ENVIRONMENT": "staging"}},
		{"unknown driver", map[string]string{"POSTGRES_DRIVER": "mysql"}},
		{"unknown policy", map[string]string{"ADOPTION_POLICY": "lottery"}},
		{"non numeric purge interval", map[string]string{"TOKEN_PURGE_INTERVAL_MINUTES": "soon"}},
		{"negative purge interval", map[string]string{"TOKEN_PURGE_INTERVAL_MINUTES": "-5"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := LoadConfig()
			assert.Error(t, err)
		})
	}
}
