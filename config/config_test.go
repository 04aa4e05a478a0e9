package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "3000", cfg.Port)
	assert.Equal(t, StoreMongo, cfg.Store)
	assert.Equal(t, "clinicDB", cfg.MongoDatabase)
	assert.Equal(t, []string{"*"}, cfg.CORSOrigins)
	assert.Equal(t, 24, cfg.SessionTTLHours)
	assert.True(t, cfg.JobsEnabled)
	assert.NotEmpty(t, cfg.SessionSecret)
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("STORE", "memory")
	t.Setenv("CORS_ORIGINS", "http://a.test, http://b.test")
	t.Setenv("JOBS_ENABLED", "false")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, StoreMemory, cfg.Store)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.CORSOrigins)
	assert.False(t, cfg.JobsEnabled)
}

func TestLoad_RejectsUnknownStore(t *testing.T) {
	t.Setenv("STORE", "sqlite")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoad_ProductionNeedsSecret(t *testing.T) {
	t.Setenv("ENV", "production")
	t.Setenv("SESSION_SECRET", "")

	_, err := Load()
	assert.Error(t, err)
}
