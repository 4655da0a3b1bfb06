package config_test

import (
	"testing"

	"github.com/equilease/lease-service/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig_Defaults(t *testing.T) {
	cfg, err := config.NewConfig()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, config.BackendFile, cfg.StoreBackend)
	assert.Equal(t, "data/deals.json", cfg.DealsFile)
	assert.Equal(t, "0 8 * * *", cfg.DigestSchedule)
	assert.False(t, cfg.EmailEnabled())
}

func TestNewConfig_Overrides(t *testing.T) {
	t.Setenv("PORT", "9999")
	t.Setenv("STORE_BACKEND", config.BackendPostgres)
	t.Setenv("SMTP_HOST", "smtp.example.com")

	cfg, err := config.NewConfig()
	require.NoError(t, err)
	assert.Equal(t, "9999", cfg.Port)
	assert.Equal(t, config.BackendPostgres, cfg.StoreBackend)
	assert.True(t, cfg.EmailEnabled())
}

func TestNewConfig_RejectsUnknownBackend(t *testing.T) {
	t.Setenv("STORE_BACKEND", "redis")

	_, err := config.NewConfig()
	assert.Error(t, err)
}
