package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("APP_ENV", "")
	t.Setenv("DB_DRIVER", "")
	t.Setenv("DB_DSN", "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, EnvDevelopment, cfg.Env)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "postgres", cfg.DBDriver)
	assert.Equal(t, 60, cfg.RateLimitMax)
	assert.Equal(t, 4*1024*1024, cfg.BodyLimitBytes())
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("APP_ENV", "Local")
	t.Setenv("PORT", "9090")
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("DB_DSN", "file:cinevault.db")
	t.Setenv("RATE_LIMIT_MAX", "0")

	cfg, err := Load()
	require.NoError(t, err)
	assert.True(t, cfg.IsLocal())
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "sqlite", cfg.DBDriver)
	assert.Equal(t, "file:cinevault.db", cfg.DSN())
	assert.Equal(t, 0, cfg.RateLimitMax)
}

func TestLoadRejectsUnknownDriver(t *testing.T) {
	t.Setenv("APP_ENV", "")
	t.Setenv("DB_DRIVER", "oracle")

	_, err := Load()
	assert.ErrorContains(t, err, "DB_DRIVER")
}

func TestDSNFromParts(t *testing.T) {
	cfg := Config{DBHost: "db", DBPort: 5432, DBUser: "cv", DBPassword: "pw", DBName: "cinevault"}
	assert.Equal(t, "host=db user=cv password=pw dbname=cinevault port=5432 sslmode=disable TimeZone=UTC", cfg.DSN())
}
