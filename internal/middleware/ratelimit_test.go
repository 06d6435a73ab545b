package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"blockauth/internal/middleware"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
)

func buildLimitedRouter(rdb *redis.Client, limit int) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/ping",
		middleware.RateLimitMiddleware(rdb, limit, time.Minute),
		func(c *gin.Context) { c.String(http.StatusOK, "pong") })
	return r
}

func hit(r *gin.Engine) int {
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w.Code
}

// Requests within the window quota pass, the next one is rejected.
func TestRateLimitOverQuota(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	r := buildLimitedRouter(rdb, 2)

	assert.Equal(t, http.StatusOK, hit(r))
	assert.Equal(t, http.StatusOK, hit(r))
	assert.Equal(t, http.StatusTooManyRequests, hit(r))
}

// With Redis gone the limiter fails closed.
func TestRateLimitFailsClosed(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	r := buildLimitedRouter(rdb, 2)
	mr.Close()

	assert.Equal(t, http.StatusServiceUnavailable, hit(r))
}
