package middleware

import (
	"math"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/feral-file/ff-tipping-ledger/internal/logger"
	"github.com/feral-file/ff-tipping-ledger/internal/ratelimit"
)

// RateLimit rejects clients that exceed their token bucket with 429.
// Buckets are keyed by client IP.
func RateLimit(l ratelimit.Limiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.ClientIP()
		ok, retryAfter := l.Allow(key)
		if ok {
			c.Next()
			return
		}

		seconds := int(math.Ceil(retryAfter.Seconds()))
		if seconds < 1 {
			seconds = 1
		}
		logger.WarnCtx(c.Request.Context(), "Rate limit exceeded",
			zap.String("client_ip", key),
			zap.String("path", c.Request.URL.Path),
			zap.Duration("retry_after", retryAfter),
		)
		c.Header("Retry-After", strconv.Itoa(seconds))
		c.AbortWithStatusJSON(http.StatusTooManyRequests,
			errorBody("rate_limited", "Too many requests", ""))
	}
}
