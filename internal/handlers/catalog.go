package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/leafx/procurement-service/internal/catalog"
)

// CatalogHandler handles catalog browsing endpoints
type CatalogHandler struct {
	snapshot *catalog.Snapshot
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(snapshot *catalog.Snapshot) *CatalogHandler {
	return &CatalogHandler{snapshot: snapshot}
}

// ListProducts returns catalog products, optionally filtered by category.
// GET /api/catalog/products?category=
func (h *CatalogHandler) ListProducts(c *gin.Context) {
	category := c.Query("category")
	if category == "" {
		c.JSON(http.StatusOK, gin.H{
			"success":  true,
			"products": h.snapshot.Products(),
		})
		return
	}

	if !catalog.IsValidCategory(category) {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Unknown category: " + category,
		})
		return
	}

	matched := h.snapshot.ProductsByCategory(category)
	products := make([]catalog.Product, 0, len(matched))
	for _, p := range matched {
		products = append(products, *p)
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"products": products,
	})
}

// ListCategories returns the valid catalog categories.
// GET /api/catalog/categories
func (h *CatalogHandler) ListCategories(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"categories": catalog.ValidCategories(),
	})
}
