package api

import (
	"context"  // Context for Redis operations
	"net/http" // HTTP status codes
	"strconv"  // Path parameter parsing
	"time"     // Cache TTL

	"blockauth/internal/domain"     // Importing domain models
	"blockauth/internal/middleware" // Context keys
	"blockauth/internal/store"      // Store abstraction
	"blockauth/internal/utils"      // Utility functions

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
	"github.com/sirupsen/logrus"   // Logging library
)

// RegisterProductRequest is the body for product registration
type RegisterProductRequest struct {
	Name         string `json:"name" binding:"required"`          // Product name must be provided
	SerialNumber string `json:"serial_number" binding:"required"` // Serial number must be provided
}

// ProductResponse is a product with its manufacturer resolved to public fields
type ProductResponse struct {
	ID           uint              `json:"id"`            // System-assigned identifier
	Name         string            `json:"name"`          // Product name
	SerialNumber string            `json:"serial_number"` // Unique serial
	Manufacturer domain.PublicUser `json:"manufacturer"`  // Owning manufacturer, public fields only
	LedgerHash   string            `json:"ledger_hash"`   // Decorative chain-style hash
	CreatedAt    time.Time         `json:"created_at"`    // Registration timestamp
}

// productToResponse maps a product with a resolved manufacturer
func productToResponse(p *domain.Product) ProductResponse {
	return ProductResponse{
		ID:           p.ID,                    // System-assigned identifier
		Name:         p.Name,                  // Product name
		SerialNumber: p.SerialNumber,          // Unique serial
		Manufacturer: p.Manufacturer.Public(), // Name and email only
		LedgerHash:   p.LedgerHash,            // Decorative hash
		CreatedAt:    p.CreatedAt,             // Registration timestamp
	}
}

// RegisterProductHandler registers a product owned by the authenticated
// manufacturer. The owner always comes from the verified token, never the body.
func RegisterProductHandler(st store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		callerID, exists := c.Get(middleware.CtxUserID) // Get caller ID from context
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
			return
		}
		var req RegisterProductRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Name and serial number are required"})
			return
		}
		product := domain.Product{
			Name:           req.Name,              // Product name
			SerialNumber:   req.SerialNumber,      // Unique serial
			ManufacturerID: callerID.(uint),       // Owner from the verified token
			LedgerHash:     utils.NewLedgerHash(), // Decorative hash
		}
		// The store's unique index on serial_number decides conflicts
		if err := st.CreateProduct(&product); err != nil {
			if err == store.ErrSerialTaken {
				c.JSON(http.StatusConflict, gin.H{"message": "Product with this serial number already exists"})
				return
			}
			logrus.WithFields(logrus.Fields{
				"serial_number": req.SerialNumber, // Attempted serial
				"error":         err.Error(),      // Error message
			}).Error("Product registration failed")
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
			return
		}
		// Log successful registration
		logrus.WithFields(logrus.Fields{
			"product_id":      product.ID,           // New product ID
			"serial_number":   product.SerialNumber, // Registered serial
			"manufacturer_id": callerID,             // Owning manufacturer
		}).Info("Product registered")
		// Re-read so the manufacturer reference is resolved in the response
		created, err := st.ProductByID(product.ID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
			return
		}
		c.JSON(http.StatusCreated, gin.H{"message": "Product registered successfully", "product": productToResponse(created)})
	}
}

// GetProductHandler returns a product by ID with its manufacturer resolved,
// serving from the Redis cache when possible
func GetProductHandler(st store.Store, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id")) // Parse product ID from path
		if err != nil || id <= 0 {
			// Malformed IDs can never match a product
			c.JSON(http.StatusNotFound, gin.H{"message": "Product not found"})
			return
		}
		ctx := context.Background()                 // Context for Redis operations
		cacheKey := utils.ProductCacheKey(uint(id)) // Cache key for this product
		var cached ProductResponse                  // Holder for the cached response
		// Serve from cache when present
		if found, err := utils.GetCache(ctx, rdb, cacheKey, &cached); err == nil && found {
			c.JSON(http.StatusOK, cached)
			return
		}
		product, err := st.ProductByID(uint(id)) // Fetch from the store
		if err != nil {
			if err == store.ErrNotFound {
				c.JSON(http.StatusNotFound, gin.H{"message": "Product not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
			return
		}
		resp := productToResponse(product)
		// Products are immutable, so a short TTL is only about bounding memory
		_ = utils.SetCache(ctx, rdb, cacheKey, resp, 60*time.Second)
		c.JSON(http.StatusOK, resp)
	}
}
