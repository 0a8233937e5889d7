// Package ratelimit provides advisory fixed-window throttling backed by Redis.
package ratelimit

import (
	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/spec-kit/complaint-service/internal/config"
	apperrors "github.com/spec-kit/complaint-service/pkg/util"
)

const keyPrefix = "ratelimit:"

// Limiter counts requests per caller IP in a fixed window. It fails open
// when Redis is unavailable: throttling is advisory, not a correctness
// mechanism.
type Limiter struct {
	client *redis.Client
	cfg    config.RateLimitConfig
	logger *zap.Logger
}

// NewLimiter constructs a limiter.
func NewLimiter(client *redis.Client, cfg config.RateLimitConfig, logger *zap.Logger) *Limiter {
	return &Limiter{client: client, cfg: cfg, logger: logger}
}

// Middleware applies the limit uniformly ahead of all routes.
func (l *Limiter) Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if l == nil || !l.cfg.Enabled || l.client == nil {
			return c.Next()
		}

		key := keyPrefix + c.IP()
		ctx := c.UserContext()

		count, err := l.client.Incr(ctx, key).Result()
		if err != nil {
			l.logger.Warn("rate limiter unavailable", zap.Error(err))
			return c.Next()
		}
		if count == 1 {
			if err := l.client.Expire(ctx, key, l.cfg.Window()).Err(); err != nil {
				l.logger.Warn("rate limiter expire failed", zap.Error(err))
			}
		}
		if count > int64(l.cfg.Requests) {
			return apperrors.NewTooManyRequests("too many requests, try again later")
		}
		return c.Next()
	}
}
