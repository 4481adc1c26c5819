package cache

import (
	"context"
	"log"
	"time"

	appconfig "freelanceflow/internal/infrastructure/config"

	"github.com/go-redis/redis/v8"
)

// Client is the shared Redis client for report caching and event publishing.
var Client *redis.Client

// InitRedis connects the shared client. Redis is optional: when REDIS_ADDR is
// empty the caller is expected to skip cache/notification wiring.
func InitRedis() {
	Client = redis.NewClient(&redis.Options{
		Addr:     appconfig.AppConfig.RedisAddr,
		Password: appconfig.AppConfig.RedisPassword,
		DB:       appconfig.AppConfig.RedisCacheDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := Client.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
}

func GetClient() *redis.Client {
	if Client == nil {
		InitRedis()
	}
	return Client
}
