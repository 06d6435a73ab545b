package api

import (
	"net/http" // HTTP status codes

	"blockauth/internal/config"     // Configuration
	"blockauth/internal/domain"     // Role constants
	"blockauth/internal/middleware" // Auth, role and rate-limit middleware
	"blockauth/internal/store"      // Store abstraction

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
)

// NewRouter assembles the HTTP API over the given store and Redis client.
// Tests pass the in-memory store and a miniredis-backed client.
func NewRouter(st store.Store, rdb *redis.Client, cfg *config.Config) *gin.Engine {
	r := gin.Default() // Gin router instance

	// Liveness route
	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "BlockAuth Backend API is running")
	})

	// All API routes share the per-IP rate limit
	apiGroup := r.Group("/api", middleware.RateLimitMiddleware(rdb, cfg.RateLimit, cfg.RateWindow))

	// Public auth routes
	apiGroup.POST("/users/register", RegisterHandler(st)) // Registration endpoint
	apiGroup.POST("/users/login", LoginHandler(st, cfg))  // Login endpoint

	// Product routes: registration is manufacturer-only, lookup is public
	apiGroup.POST("/products/register",
		middleware.JWTAuthMiddleware(cfg.JWTSecret),
		middleware.RequireRole(domain.RoleManufacturer),
		RegisterProductHandler(st))
	apiGroup.GET("/products/:id", GetProductHandler(st, rdb))

	// Sale routes: recording is retailer-only, history is public
	apiGroup.POST("/sales/record",
		middleware.JWTAuthMiddleware(cfg.JWTSecret),
		middleware.RequireRole(domain.RoleRetailer),
		RecordSaleHandler(st, rdb))
	apiGroup.GET("/sales/history/:productId", SalesHistoryHandler(st, rdb))

	return r
}
