package cache

import (
	"context"

	"lojinha_pricing/internal/usecase/interfaces"

	"github.com/redis/go-redis/v9"
)

// RedisCache keeps rate table snapshots in Redis so a restarted process
// can survive a dead config endpoint with the last-known-good table.
type RedisCache struct {
	client *redis.Client
}

var _ interfaces.ICacheRepository = (*RedisCache)(nil)

func NewRedisCache(addr string) *RedisCache {
	return &RedisCache{
		client: redis.NewClient(&redis.Options{Addr: addr}),
	}
}

func (r *RedisCache) Get(ctx context.Context, key string) (string, bool) {
	val, err := r.client.Get(ctx, key).Result()
	if err != nil {
		return "", false
	}
	return val, true
}

func (r *RedisCache) Set(ctx context.Context, key string, value string) error {
	// Snapshots have no TTL: last-known-good stays until replaced.
	return r.client.Set(ctx, key, value, 0).Err()
}
