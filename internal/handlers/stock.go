package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/leafx/procurement-service/internal/pricing"
)

// StockHandler handles stock and price resolution endpoints
type StockHandler struct {
	resolver *pricing.Resolver
}

// NewStockHandler creates a new stock handler
func NewStockHandler(r *pricing.Resolver) *StockHandler {
	return &StockHandler{resolver: r}
}

// StockResponse represents the stock check result
type StockResponse struct {
	Success bool               `json:"success"`
	Stock   pricing.StockCheck `json:"stock"`
}

// CheckStock resolves availability and tiered pricing for one SKU.
// GET /api/procurement/stock?sku=&qty=
func (h *StockHandler) CheckStock(c *gin.Context) {
	sku := c.Query("sku")
	if sku == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "sku is required",
		})
		return
	}

	qty := 1
	if raw := c.Query("qty"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"error":   "qty must be a positive integer",
			})
			return
		}
		qty = parsed
	}

	check, err := h.resolver.CheckStockAndPrice(sku, qty)
	if err != nil {
		if errors.Is(err, pricing.ErrProductNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"success": false,
				"error":   "Product not found",
			})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, StockResponse{
		Success: true,
		Stock:   check,
	})
}
