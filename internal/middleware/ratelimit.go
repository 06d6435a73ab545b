package middleware

import (
	"context"  // Context for Redis operations
	"net/http" // HTTP status codes
	"strconv"  // Window slot formatting
	"time"     // Window arithmetic

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
	"github.com/sirupsen/logrus"   // Logging library
)

// INCR + PEXPIRE in one round trip so the first hit in a window atomically
// starts the window's expiry
var fixedWindowScript = redis.NewScript(`
local count = redis.call("INCR", KEYS[1])
if count == 1 then
  redis.call("PEXPIRE", KEYS[1], ARGV[1])
end
return count
`)

// RateLimitMiddleware limits each client IP to limit requests per fixed
// window, counted in Redis. On Redis failure it fails closed.
func RateLimitMiddleware(rdb *redis.Client, limit int, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		windowMs := window.Milliseconds()
		slot := time.Now().UnixMilli() / windowMs // Current window slot
		key := "ratelimit:" + c.ClientIP() + ":" + strconv.FormatInt(slot, 10)
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()
		count, err := fixedWindowScript.Run(ctx, rdb, []string{key}, windowMs).Int64()
		if err != nil {
			// Fail closed: an unreachable counter means no quota can be granted
			logrus.WithField("error", err.Error()).Warn("Rate limiter unavailable")
			c.AbortWithStatusJSON(http.StatusServiceUnavailable, gin.H{"message": "Service unavailable"})
			return
		}
		// Over quota for this window
		if count > int64(limit) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"message": "Too many requests"})
			return
		}
		c.Next() // Within quota, proceed
	}
}
