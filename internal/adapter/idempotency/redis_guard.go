package idempotency

import (
	"context"
	"time"

	"mass_oss/internal/usecase/interfaces"

	"github.com/redis/go-redis/v9"
)

const DefaultTTL = 24 * time.Hour

// RedisGuard records idempotency keys with SETNX so a retried create is
// recognised across every API instance sharing the Redis.
type RedisGuard struct {
	client *redis.Client
	ttl    time.Duration
}

var _ interfaces.IIdempotencyGuard = (*RedisGuard)(nil)

func NewRedisGuard(client *redis.Client, ttl time.Duration) *RedisGuard {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &RedisGuard{client: client, ttl: ttl}
}

func (g *RedisGuard) Acquire(ctx context.Context, key string) (bool, error) {
	ok, err := g.client.SetNX(ctx, key, 1, g.ttl).Result()
	if err != nil {
		return false, err
	}

	return ok, nil
}

// Release forgets key so a create that never reached the store can be retried.
func (g *RedisGuard) Release(ctx context.Context, key string) error {
	return g.client.Del(ctx, key).Err()
}
