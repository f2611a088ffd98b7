package config_test

import (
	"testing"

	"comercio/internal/config"

	"github.com/stretchr/testify/assert"
)

func setBaseEnv(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("GO_ENV", "dev")
	t.Setenv("POSTGRES_USER", "comercio")
	t.Setenv("POSTGRES_PASSWORD", "secret")
	t.Setenv("POSTGRES_DB", "comercio")
	t.Setenv("POSTGRES_HOST", "localhost")
	t.Setenv("POSTGRES_PORT", "5432")
}

func TestLoad_OK(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("METRICS_ENABLED", "true")

	cfg, err := config.Load()
	assert.NoError(t, err)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, 5432, cfg.PostgresPort)
	assert.Equal(t, "disable", cfg.PostgresSSLMode)
	assert.True(t, cfg.MetricsEnabled)
}

func TestLoad_MissingPort(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("PORT", "")

	_, err := config.Load()
	assert.ErrorContains(t, err, "PORT is required")
}

// DATABASE_URLがあれば個別のPOSTGRES_*は不要
func TestLoad_DatabaseURLSkipsPostgresVars(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("GO_ENV", "dev")
	t.Setenv("DATABASE_URL", "postgres://u:p@localhost:5432/comercio")
	t.Setenv("POSTGRES_USER", "")
	t.Setenv("POSTGRES_PORT", "")

	cfg, err := config.Load()
	assert.NoError(t, err)
	assert.Equal(t, "postgres://u:p@localhost:5432/comercio", cfg.DatabaseURL)
}

func TestLoad_BadPostgresPort(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("POSTGRES_PORT", "abc")

	_, err := config.Load()
	assert.ErrorContains(t, err, "POSTGRES_PORT must be number")
}
