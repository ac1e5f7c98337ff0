package database

import (
	"context"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
)

var Rdx *redis.Client = redisInstance()

func redisInstance() *redis.Client {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		addr = "localhost:6379"
	}
	return redis.NewClient(&redis.Options{Addr: addr})
}

func CacheGet(ctx context.Context, key string) (string, error) {
	return Rdx.Get(ctx, key).Result()
}

func CacheSet(ctx context.Context, key string, value string, ttl time.Duration) error {
	return Rdx.Set(ctx, key, value, ttl).Err()
}

func CacheDel(ctx context.Context, keys ...string) {
	Rdx.Del(ctx, keys...)
}
