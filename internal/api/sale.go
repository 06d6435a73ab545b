package api

import (
	"context"  // Context for Redis operations
	"net/http" // HTTP status codes
	"strconv"  // Path parameter parsing
	"time"     // Sale date and cache TTL

	"blockauth/internal/domain"     // Importing domain models
	"blockauth/internal/middleware" // Context keys
	"blockauth/internal/store"      // Store abstraction
	"blockauth/internal/utils"      // Utility functions

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
	"github.com/sirupsen/logrus"   // Logging library
)

// RecordSaleRequest is the body for recording a sale
type RecordSaleRequest struct {
	ProductID uint   `json:"product_id" binding:"required"` // Sold product must be referenced
	Customer  string `json:"customer" binding:"required"`   // Buyer name or email must be provided
}

// SaleResponse is a sale with its retailer resolved to public fields
type SaleResponse struct {
	ID         uint              `json:"id"`          // Sale identifier
	ProductID  uint              `json:"product_id"`  // Sold product
	Retailer   domain.PublicUser `json:"retailer"`    // Recording retailer, public fields only
	Customer   string            `json:"customer"`    // Buyer name or email
	Date       time.Time         `json:"date"`        // Sale date
	LedgerHash string            `json:"ledger_hash"` // Decorative chain-style hash
}

// saleToResponse maps a sale with a resolved retailer
func saleToResponse(s domain.Sale) SaleResponse {
	return SaleResponse{
		ID:         s.ID,                // Sale identifier
		ProductID:  s.ProductID,         // Sold product
		Retailer:   s.Retailer.Public(), // Name and email only
		Customer:   s.Customer,          // Buyer
		Date:       s.Date,              // Sale date
		LedgerHash: s.LedgerHash,        // Decorative hash
	}
}

// RecordSaleHandler records a sale against an existing product. The retailer
// always comes from the verified token, never the body. Duplicate
// submissions create duplicate sale records; only product serials are unique.
func RecordSaleHandler(st store.Store, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		callerID, exists := c.Get(middleware.CtxUserID) // Get caller ID from context
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
			return
		}
		var req RecordSaleRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Product ID and customer are required"})
			return
		}
		sale := domain.Sale{
			ProductID:  req.ProductID,         // Sold product
			RetailerID: callerID.(uint),       // Retailer from the verified token
			Customer:   req.Customer,          // Buyer
			Date:       time.Now(),            // Defaults to record-creation time
			LedgerHash: utils.NewLedgerHash(), // Decorative hash
		}
		// The store verifies the product reference before inserting
		if err := st.CreateSale(&sale); err != nil {
			if err == store.ErrNotFound {
				c.JSON(http.StatusNotFound, gin.H{"message": "Product not found"})
				return
			}
			logrus.WithFields(logrus.Fields{
				"product_id":  req.ProductID, // Referenced product
				"retailer_id": callerID,      // Recording retailer
				"error":       err.Error(),   // Error message
			}).Error("Sale recording failed")
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
			return
		}
		// Log successful sale
		logrus.WithFields(logrus.Fields{
			"sale_id":     sale.ID,       // New sale ID
			"product_id":  req.ProductID, // Sold product
			"retailer_id": callerID,      // Recording retailer
		}).Info("Sale recorded")
		// Resolve the retailer for the response
		if retailer, err := st.UserByID(callerID.(uint)); err == nil {
			sale.Retailer = *retailer
		}
		// Invalidate the cached history for this product
		_ = utils.DeleteCache(context.Background(), rdb, utils.HistoryCacheKey(req.ProductID))
		c.JSON(http.StatusCreated, gin.H{"message": "Sale recorded successfully", "sale": saleToResponse(sale)})
	}
}

// SalesHistoryHandler returns all sales for a product, most recent first,
// serving from the Redis cache when possible. A product with no sales (or an
// unknown product) yields an empty array, not an error.
func SalesHistoryHandler(st store.Store, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("productId")) // Parse product ID from path
		if err != nil || id <= 0 {
			// Malformed IDs have no sales; an empty history is still a 200
			c.JSON(http.StatusOK, []SaleResponse{})
			return
		}
		ctx := context.Background()                 // Context for Redis operations
		cacheKey := utils.HistoryCacheKey(uint(id)) // Cache key for this product's history
		var cached []SaleResponse                   // Holder for the cached response
		// Serve from cache when present
		if found, err := utils.GetCache(ctx, rdb, cacheKey, &cached); err == nil && found {
			c.JSON(http.StatusOK, cached)
			return
		}
		sales, err := st.SalesByProduct(uint(id)) // Fetch from the store, date descending
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
			return
		}
		resp := make([]SaleResponse, 0, len(sales))
		for _, sale := range sales {
			resp = append(resp, saleToResponse(sale)) // Resolve each retailer
		}
		// Cached until the next sale for this product invalidates the key
		_ = utils.SetCache(ctx, rdb, cacheKey, resp, 60*time.Second)
		c.JSON(http.StatusOK, resp)
	}
}
