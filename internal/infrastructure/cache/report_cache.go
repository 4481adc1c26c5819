package cache

import (
	"context"
	"time"

	"freelanceflow/internal/usecase/interfaces"

	"github.com/go-redis/redis/v8"
)

// RedisReportCache implements the report read-through cache on Redis.
type RedisReportCache struct {
	client *redis.Client
}

var _ interfaces.IReportCache = (*RedisReportCache)(nil)

func NewRedisReportCache(client *redis.Client) *RedisReportCache {
	return &RedisReportCache{client: client}
}

func (c *RedisReportCache) Get(ctx context.Context, key string) ([]byte, error) {
	b, err := c.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return b, nil
}

func (c *RedisReportCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return c.client.Set(ctx, key, value, ttl).Err()
}
