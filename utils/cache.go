package utils

import (
	"context"
	"time"

	"eventra/config"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

var (
	// CacheClient is the generic cache client.
	CacheClient *redis.Client
	// AuthCacheClient is the dedicated client for authorization caching.
	AuthCacheClient *redis.Client
)

// newRedisClient connects to the given logical DB. It returns nil when the
// server cannot be reached so callers fall back to uncached behaviour.
func newRedisClient(db int, name string) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       db,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		GetLogger().Warn("Redis unavailable, continuing without it",
			zap.String("client", name), zap.String("addr", config.AppConfig.RedisAddr), zap.Error(err))
		_ = client.Close()
		return nil
	}
	return client
}

// InitRedis initializes the cache and auth cache clients.
func InitRedis() {
	CacheClient = newRedisClient(config.AppConfig.RedisCacheDB, "cache")
	AuthCacheClient = newRedisClient(config.AppConfig.RedisAuthDB, "auth")
}

// GetCacheClient returns the generic cache client (may be nil).
func GetCacheClient() *redis.Client {
	return CacheClient
}

// GetAuthCacheClient returns the Redis client for authorization caching (may be nil).
func GetAuthCacheClient() *redis.Client {
	return AuthCacheClient
}

// CloseRedis closes every initialized client.
func CloseRedis() {
	for _, c := range []*redis.Client{CacheClient, AuthCacheClient} {
		if c != nil {
			_ = c.Close()
		}
	}
}
