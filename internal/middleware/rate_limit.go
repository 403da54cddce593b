package middleware

import (
	"fmt"
	"net/http"
	"time"

	"event-booking-api/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type RateLimitConfig struct {
	// Requests allowed per window, per client IP.
	Limit int
	// Window length of the fixed window counter.
	Window time.Duration
	// Key prefix so several deployments can share one Redis.
	KeyPrefix string
}

func DefaultRateLimitConfig() RateLimitConfig {
	return RateLimitConfig{
		Limit:     100,
		Window:    time.Second,
		KeyPrefix: "ratelimit",
	}
}

// RateLimit is a fixed-window limiter backed by Redis INCR+EXPIRE, shared
// across instances. Redis being down fails open: the request goes through.
func RateLimit(client *redis.Client, config RateLimitConfig) gin.HandlerFunc {
	log := logger.WithComponent("middleware")

	return func(c *gin.Context) {
		key := fmt.Sprintf("%s:%s", config.KeyPrefix, c.ClientIP())

		count, err := client.Incr(c, key).Result()
		if err != nil {
			log.Warn("Rate limiter unavailable, allowing request", zap.Error(err))
			c.Next()
			return
		}
		if count == 1 {
			if err := client.Expire(c, key, config.Window).Err(); err != nil {
				log.Warn("Failed to set rate limit window", zap.Error(err))
			}
		}

		if count > int64(config.Limit) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error": "Too many requests",
			})
			return
		}

		c.Next()
	}
}
