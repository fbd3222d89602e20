package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfigRefusesProductionWithoutSecret(t *testing.T) {
	t.Setenv("ENV", "production")
	t.Setenv("SESSION_SECRET", "")
	t.Setenv("APP_SECRET", "")
	t.Setenv("JWT_SECRET", "")

	cfg, err := LoadConfig()
	assert.Nil(t, cfg)
	assert.Error(t, err)
}

func TestLoadConfigAllowsMissingSecretOutsideProduction(t *testing.T) {
	t.Setenv("ENV", "development")
	t.Setenv("SESSION_SECRET", "")
	t.Setenv("APP_SECRET", "")
	t.Setenv("JWT_SECRET", "")

	cfg, err := LoadConfig()
	assert.NoError(t, err)
	assert.Empty(t, cfg.SessionSecret)
	assert.False(t, cfg.IsProduction())
}

func TestLoadConfigSecretNamePriority(t *testing.T) {
	t.Setenv("SESSION_SECRET", "first")
	t.Setenv("APP_SECRET", "second")
	t.Setenv("JWT_SECRET", "third")

	cfg, err := LoadConfig()
	assert.NoError(t, err)
	assert.Equal(t, "first", cfg.SessionSecret)
}

func TestLoadConfigFallsBackThroughSecretNames(t *testing.T) {
	t.Setenv("ENV", "production")
	t.Setenv("SESSION_SECRET", "")
	t.Setenv("APP_SECRET", "")
	t.Setenv("JWT_SECRET", "legacy")

	cfg, err := LoadConfig()
	assert.NoError(t, err)
	assert.Equal(t, "legacy", cfg.SessionSecret)
}
