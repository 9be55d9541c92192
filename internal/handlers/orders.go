package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/leafx/procurement-service/internal/matcher"
	"github.com/leafx/procurement-service/internal/order"
)

// OrdersHandler handles purchase order assembly endpoints
type OrdersHandler struct {
	assembler *order.Assembler
}

// NewOrdersHandler creates a new orders handler
func NewOrdersHandler(a *order.Assembler) *OrdersHandler {
	return &OrdersHandler{assembler: a}
}

// CreateOrderRequest represents the order assembly request
type CreateOrderRequest struct {
	Items []order.SelectedItem `json:"items" binding:"required"`
}

// CreateOrderResponse represents the assembled purchase order
type CreateOrderResponse struct {
	Success bool                `json:"success"`
	Order   order.PurchaseOrder `json:"order"`
}

// CreateOrder assembles a purchase order from the selected alternatives.
// Selections whose SKU is not in the catalog are dropped; the returned
// order carries only the resolvable lines.
// POST /api/procurement/orders
func (h *OrdersHandler) CreateOrder(c *gin.Context) {
	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "items is required",
		})
		return
	}

	po, err := h.assembler.CreateOrder(req.Items)
	if err != nil {
		var invalid matcher.ErrInvalidInput
		if errors.As(err, &invalid) {
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"error":   invalid.Error(),
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "Order assembly failed: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, CreateOrderResponse{
		Success: true,
		Order:   po,
	})
}
