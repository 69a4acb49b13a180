package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "secret")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, BackendDynamoDB, cfg.Storage.Backend)
	assert.Equal(t, "demo-", cfg.Storage.DemoOrgPrefix)
	assert.Equal(t, "work_orders", cfg.DynamoDB.Table)
	assert.Equal(t, 5*time.Second, cfg.DynamoDB.Timeout)
	assert.Equal(t, 24*time.Hour, cfg.Redis.IdempotencyTTL)
	assert.True(t, cfg.Auth.Enabled)
	assert.Empty(t, cfg.Redis.Addr)
}

func TestLoadConfig_Env(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("STORAGE_BACKEND", " Memory ")
	t.Setenv("AUTH_ENABLED", "false")
	t.Setenv("REMOTE_TIMEOUT", "750ms")
	t.Setenv("REDIS_ADDR", "localhost:6379")
	t.Setenv("REDIS_DB", "2")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, BackendMemory, cfg.Storage.Backend)
	assert.False(t, cfg.Auth.Enabled)
	assert.Equal(t, 750*time.Millisecond, cfg.DynamoDB.Timeout)
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr)
	assert.Equal(t, 2, cfg.Redis.DB)
}

func TestLoadConfig_Invalid(t *testing.T) {
	t.Run("auth without secret", func(t *testing.T) {
		t.Setenv("AUTH_ENABLED", "true")
		t.Setenv("JWT_SECRET", "")
		_, err := LoadConfig()
		assert.Error(t, err)
	})

	t.Run("unknown backend", func(t *testing.T) {
		t.Setenv("AUTH_ENABLED", "false")
		t.Setenv("STORAGE_BACKEND", "postgres")
		_, err := LoadConfig()
		assert.Error(t, err)
	})
}
