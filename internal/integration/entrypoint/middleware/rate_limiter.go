package middleware

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	domainerror "github.com/rental-ledger/backend/internal/domain/error"
	"github.com/rental-ledger/backend/internal/integration/entrypoint/dto"
)

// RateLimiter enforces a fixed-window request budget per client, counted in
// Redis so that every API instance shares the same budget.
type RateLimiter struct {
	client      redis.Cmdable
	scope       string
	maxRequests int
	window      time.Duration
	now         func() time.Time
}

// NewRateLimiter creates a limiter allowing maxRequests per window for each
// client. A nil client disables limiting.
func NewRateLimiter(client redis.Cmdable, scope string, maxRequests int, window time.Duration) *RateLimiter {
	return &RateLimiter{
		client:      client,
		scope:       scope,
		maxRequests: maxRequests,
		window:      window,
		now:         time.Now,
	}
}

// Middleware returns a Gin middleware handler that enforces rate limiting.
func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if rl.client == nil || rl.maxRequests <= 0 {
			c.Next()
			return
		}

		clientKey := c.ClientIP()
		if subject, ok := GetSubjectFromContext(c); ok {
			clientKey = subject
		}

		allowed, retryAfter, err := rl.allow(c.Request.Context(), clientKey)
		if err != nil {
			// Fail open when Redis is unreachable.
			slog.Warn("Rate limiter unavailable, allowing request", "scope", rl.scope, "error", err)
			c.Next()
			return
		}

		if !allowed {
			c.Header("Retry-After", strconv.Itoa(int(retryAfter.Seconds())+1))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, dto.ErrorResponse{
				Error: "Too many requests. Please try again later.",
				Code:  string(domainerror.ErrCodeRateLimited),
			})
			return
		}

		c.Next()
	}
}

// allow counts a request for key in the current window.
func (rl *RateLimiter) allow(ctx context.Context, key string) (bool, time.Duration, error) {
	now := rl.now()
	windowStart := now.Truncate(rl.window)
	redisKey := fmt.Sprintf("ratelimit:%s:%s:%d", rl.scope, key, windowStart.Unix())

	pipe := rl.client.TxPipeline()
	incr := pipe.Incr(ctx, redisKey)
	pipe.Expire(ctx, redisKey, rl.window)
	if _, err := pipe.Exec(ctx); err != nil {
		return false, 0, err
	}

	retryAfter := windowStart.Add(rl.window).Sub(now)
	return incr.Val() <= int64(rl.maxRequests), retryAfter, nil
}
