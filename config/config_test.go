package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "4200", cfg.Server.Port)
	assert.Equal(t, "uploads", cfg.Staging.Dir)
	assert.Equal(t, 5, cfg.RateLimit.Requests)
	assert.Equal(t, time.Second, cfg.RateLimit.Window)
	assert.False(t, cfg.App.StrictTransitions)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9999")
	t.Setenv("UPLOAD_DIR", "/tmp/staged")
	t.Setenv("RATE_LIMIT", "20")
	t.Setenv("RATE_WINDOW", "2s")
	t.Setenv("STATUS_STRICT_TRANSITIONS", "true")
	t.Setenv("REDIS_ADDR", "localhost:6379")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9999", cfg.Server.Port)
	assert.Equal(t, "/tmp/staged", cfg.Staging.Dir)
	assert.Equal(t, 20, cfg.RateLimit.Requests)
	assert.Equal(t, 2*time.Second, cfg.RateLimit.Window)
	assert.True(t, cfg.App.StrictTransitions)
	assert.Equal(t, "localhost:6379", cfg.Store.Addr)
}

func TestValidate(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	cfg.RateLimit.Requests = 0
	assert.Error(t, cfg.Validate())
}
