package cache

import (
	"context"
	"strings"

	"cuponera-backend/internal/pkg/config"

	"github.com/redis/go-redis/v9"
)

// NewRedisClient returns nil when caching is disabled.
func NewRedisClient(cfg config.RedisConfig) *redis.Client {
	if !cfg.Enabled {
		return nil
	}
	addr := strings.TrimSpace(cfg.Addr)
	if addr == "" {
		addr = "127.0.0.1:6379"
	}
	return redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
}

func Ping(ctx context.Context, client *redis.Client) error {
	if client == nil {
		return nil
	}
	return client.Ping(ctx).Err()
}
