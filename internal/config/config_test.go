package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadRequiresBackendBaseURL(t *testing.T) {
	t.Setenv("BACKEND_BASE_URL", "")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "BACKEND_BASE_URL")
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("BACKEND_BASE_URL", "http://localhost:3000/api")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, "http://localhost:3000/api", cfg.Backend.BaseURL)
	assert.Equal(t, 30*time.Second, cfg.Backend.Timeout)
	assert.Equal(t, 5*time.Second, cfg.Checkout.SuccessTTL)
	assert.Equal(t, 30*time.Minute, cfg.Checkout.SessionTTL)
	assert.Equal(t, "disable", cfg.Database.SSLMode)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("BACKEND_BASE_URL", "http://backend:3000/api")
	t.Setenv("PORT", "9090")
	t.Setenv("CHECKOUT_SUCCESS_TTL", "10s")
	t.Setenv("CHECKOUT_SESSION_TTL", "1h")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, 10*time.Second, cfg.Checkout.SuccessTTL)
	assert.Equal(t, time.Hour, cfg.Checkout.SessionTTL)
}

func TestLoadRejectsBadDurations(t *testing.T) {
	t.Setenv("BACKEND_BASE_URL", "http://localhost:3000/api")
	t.Setenv("CHECKOUT_SUCCESS_TTL", "not-a-duration")

	_, err := Load()
	assert.Error(t, err)
}
