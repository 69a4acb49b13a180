package idempotency

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func getRedisClient(t *testing.T) *redis.Client {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		addr = "localhost:6379"
	}

	client := redis.NewClient(&redis.Options{Addr: addr})
	if err := client.Ping(context.Background()).Err(); err != nil {
		t.Skipf("Redis not available: %v", err)
	}
	return client
}

func TestRedisGuard_Acquire(t *testing.T) {
	client := getRedisClient(t)
	defer client.Close()

	ctx := context.Background()
	key := "test:idempotency:" + uuid.NewString()
	defer client.Del(ctx, key)

	guard := NewRedisGuard(client, time.Minute)

	first, err := guard.Acquire(ctx, key)
	require.NoError(t, err)
	assert.True(t, first)

	again, err := guard.Acquire(ctx, key)
	require.NoError(t, err)
	assert.False(t, again)

	ttl := client.TTL(ctx, key).Val()
	assert.True(t, ttl > 0 && ttl <= time.Minute)

	require.NoError(t, guard.Release(ctx, key))
	retry, err := guard.Acquire(ctx, key)
	require.NoError(t, err)
	assert.True(t, retry)
}

func TestMemoryGuard_Acquire(t *testing.T) {
	guard := NewMemoryGuard(time.Minute)
	now := time.Date(2024, 12, 27, 9, 0, 0, 0, time.UTC)
	guard.now = func() time.Time { return now }
	ctx := context.Background()

	ok, err := guard.Acquire(ctx, "k1")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, _ = guard.Acquire(ctx, "k1")
	assert.False(t, ok)

	ok, _ = guard.Acquire(ctx, "k2")
	assert.True(t, ok)

	now = now.Add(time.Minute)
	ok, _ = guard.Acquire(ctx, "k1")
	assert.True(t, ok, "expired key should be accepted again")
}

func TestMemoryGuard_Release(t *testing.T) {
	guard := NewMemoryGuard(time.Minute)
	ctx := context.Background()

	ok, err := guard.Acquire(ctx, "k1")
	require.NoError(t, err)
	assert.True(t, ok)

	require.NoError(t, guard.Release(ctx, "k1"))
	require.NoError(t, guard.Release(ctx, "never-seen"))

	ok, err = guard.Acquire(ctx, "k1")
	require.NoError(t, err)
	assert.True(t, ok)
}
