package cache

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"cuponera-backend/internal/pkg/config"
	"cuponera-backend/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/singleflight"
)

const defaultCouponDetailTTL = 30 * time.Second

// CouponDetailCache stores serialized coupon details in Redis.
// Concurrent misses for the same coupon share a single load.
type CouponDetailCache struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
	group  singleflight.Group
}

// NewCouponDetailCache falls back to a pass-through cache when client is nil.
func NewCouponDetailCache(client *redis.Client, cfg config.RedisConfig) shared.CouponDetailCache {
	if client == nil {
		return NoopCouponDetailCache{}
	}
	ttl := cfg.CouponDetailTTL
	if ttl <= 0 {
		ttl = defaultCouponDetailTTL
	}
	prefix := strings.TrimSpace(cfg.Prefix)
	if prefix == "" {
		prefix = "cuponera"
	}
	return &CouponDetailCache{client: client, prefix: prefix, ttl: ttl}
}

func (c *CouponDetailCache) GetOrLoad(ctx context.Context, couponID uuid.UUID, load func(ctx context.Context) ([]byte, error)) ([]byte, error) {
	key := c.key(couponID)
	val, err := c.client.Get(ctx, key).Bytes()
	if err == nil {
		return val, nil
	}
	if !errors.Is(err, redis.Nil) {
		slog.Warn("coupon detail cache read failed", "coupon_id", couponID, "error", err.Error())
	}

	v, err, _ := c.group.Do(key, func() (any, error) {
		payload, err := load(ctx)
		if err != nil {
			return nil, err
		}
		if err := c.client.Set(ctx, key, payload, c.ttl).Err(); err != nil {
			slog.Warn("coupon detail cache write failed", "coupon_id", couponID, "error", err.Error())
		}
		return payload, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]byte), nil
}

func (c *CouponDetailCache) Invalidate(ctx context.Context, couponID uuid.UUID) error {
	return c.client.Del(ctx, c.key(couponID)).Err()
}

func (c *CouponDetailCache) key(couponID uuid.UUID) string {
	return fmt.Sprintf("%s:coupon:detail:%s", c.prefix, couponID)
}

// NoopCouponDetailCache always loads.
type NoopCouponDetailCache struct{}

func (NoopCouponDetailCache) GetOrLoad(ctx context.Context, _ uuid.UUID, load func(ctx context.Context) ([]byte, error)) ([]byte, error) {
	return load(ctx)
}

func (NoopCouponDetailCache) Invalidate(context.Context, uuid.UUID) error { return nil }
