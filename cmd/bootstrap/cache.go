package bootstrap

import (
	"context"
	"log/slog"

	"cuponera-backend/internal/infra/cache"
	"cuponera-backend/internal/pkg/config"
	"cuponera-backend/internal/usecase/shared"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var CacheModule = fx.Module("cache",
	fx.Provide(
		NewRedis,
		NewCouponDetailCache,
	),
)

// NewRedis returns a nil client when caching is disabled. An unreachable
// server is logged and the cache degrades to read-through misses.
func NewRedis(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) *redis.Client {
	client := cache.NewRedisClient(cfg.Redis)
	if client == nil {
		return nil
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := cache.Ping(ctx, client); err != nil {
				logger.Warn("redis is not reachable", "addr", cfg.Redis.Addr, "error", err.Error())
			}
			return nil
		},
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})

	return client
}

func NewCouponDetailCache(client *redis.Client, cfg config.Config) shared.CouponDetailCache {
	return cache.NewCouponDetailCache(client, cfg.Redis)
}
