package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("SESSION_TTL", "")
	t.Setenv("LLM_PROVIDER", "none")

	cfg := Load()

	assert.Equal(t, "english", cfg.App.DefaultLanguage)
	assert.Equal(t, "memory", cfg.Session.Store)
	assert.Equal(t, time.Hour, cfg.Session.TTL)
	assert.Equal(t, time.Minute, cfg.Session.LockTTL)
	assert.Equal(t, 30*time.Second, cfg.Session.LockWait)
	assert.Equal(t, 20*time.Second, cfg.Llm.Timeout)
	assert.Equal(t, 1, cfg.Llm.MaxAttempts)
	assert.Equal(t, "none", cfg.Llm.Provider)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("SESSION_TTL", "30m")
	t.Setenv("LLM_MAX_ATTEMPTS", "3")
	t.Setenv("OTEL_ENABLED", "true")
	t.Setenv("SESSION_CLEANUP_INTERVAL", "not-a-duration")

	cfg := Load()

	assert.Equal(t, 30*time.Minute, cfg.Session.TTL)
	assert.Equal(t, 3, cfg.Llm.MaxAttempts)
	assert.True(t, cfg.Tracing.Enabled)
	assert.Equal(t, 10*time.Minute, cfg.Session.CleanupInterval)
}
