package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("DB_DRIVER", "")
	t.Setenv("JWT_SECRET_KEY", "")
	t.Cleanup(func() { AppConfig = Default() })

	LoadConfig()

	def := Default()
	assert.Equal(t, def.Port, AppConfig.Port)
	assert.Equal(t, "sqlite", AppConfig.DBDriver)
	assert.Equal(t, def.JWTKey, AppConfig.JWTKey)
	assert.Equal(t, 24*time.Hour, AppConfig.TokenTTL)
	assert.Equal(t, "@every 30s", AppConfig.HealthCheckSpec)
}

func TestLoadConfigFromEnvironment(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("API_PREFIX", "/api/")
	t.Setenv("DB_DRIVER", "Postgres")
	t.Setenv("DB_MAX_OPEN_CONNS", "25")
	t.Setenv("DB_QUERY_TIMEOUT", "3s")
	t.Setenv("SEED_ON_START", "true")
	t.Setenv("TOKEN_TTL", "1h")
	t.Setenv("LOG_JSON", "1")
	t.Cleanup(func() { AppConfig = Default() })

	LoadConfig()

	assert.Equal(t, "8080", AppConfig.Port)
	assert.Equal(t, "/api", AppConfig.APIPrefix)
	assert.Equal(t, "postgres", AppConfig.DBDriver)
	assert.Equal(t, 25, AppConfig.DBMaxOpenConns)
	assert.Equal(t, 3*time.Second, AppConfig.DBQueryTimeout)
	assert.True(t, AppConfig.SeedOnStart)
	assert.Equal(t, time.Hour, AppConfig.TokenTTL)
	assert.True(t, AppConfig.LogJSON)
}

func TestInvalidValuesFallBack(t *testing.T) {
	t.Setenv("DB_MAX_OPEN_CONNS", "many")
	t.Setenv("DB_QUERY_TIMEOUT", "soon")
	t.Setenv("SEED_ON_START", "maybe")
	t.Cleanup(func() { AppConfig = Default() })

	LoadConfig()

	def := Default()
	assert.Equal(t, def.DBMaxOpenConns, AppConfig.DBMaxOpenConns)
	assert.Equal(t, def.DBQueryTimeout, AppConfig.DBQueryTimeout)
	assert.False(t, AppConfig.SeedOnStart)
}
