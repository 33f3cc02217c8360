package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setDBEnv(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("DB_NAME", "mentors")
	t.Setenv("DB_USER", "bot")
	t.Setenv("DB_PASSWORD", "")
	t.Setenv("DB_HOST", "")
	t.Setenv("DB_PORT", "")
	t.Setenv("DB_SSLMODE", "")
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("ENVIRONMENT", "")
}

func TestLoadDefaults(t *testing.T) {
	setDBEnv(t)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "localhost", cfg.DBHost)
	assert.Equal(t, 5432, cfg.DBPort)
	assert.Equal(t, "disable", cfg.DBSSLMode)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, "host=localhost port=5432 user=bot dbname=mentors sslmode=disable", cfg.DSN())
}

func TestLoadExplicit(t *testing.T) {
	setDBEnv(t)
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_PORT", "6432")
	t.Setenv("DB_PASSWORD", "it's secret")
	t.Setenv("LOG_LEVEL", "DEBUG")
	t.Setenv("ENVIRONMENT", "Production")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "production", cfg.Environment)
	assert.Equal(t, `host=db.internal port=6432 user=bot dbname=mentors sslmode=disable password='it\'s secret'`, cfg.DSN())
}

func TestLoadDatabaseURLOverrides(t *testing.T) {
	setDBEnv(t)
	t.Setenv("DB_NAME", "")
	t.Setenv("DB_USER", "")
	t.Setenv("DATABASE_URL", "postgres://bot@localhost/mentors")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "postgres://bot@localhost/mentors", cfg.DSN())
}

func TestLoadErrors(t *testing.T) {
	setDBEnv(t)
	t.Setenv("DB_NAME", "")
	_, err := Load()
	assert.EqualError(t, err, "DB_NAME is not set")

	setDBEnv(t)
	t.Setenv("DB_USER", "")
	_, err = Load()
	assert.EqualError(t, err, "DB_USER is not set")

	setDBEnv(t)
	t.Setenv("DB_PORT", "postgres")
	_, err = Load()
	assert.EqualError(t, err, `invalid DB_PORT "postgres"`)
}
