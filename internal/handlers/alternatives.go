package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/leafx/procurement-service/internal/extractor"
	"github.com/leafx/procurement-service/internal/matcher"
)

// AlternativesHandler handles sustainable-alternative matching endpoints
type AlternativesHandler struct {
	matcher *matcher.Matcher
}

// NewAlternativesHandler creates a new alternatives handler
func NewAlternativesHandler(m *matcher.Matcher) *AlternativesHandler {
	return &AlternativesHandler{matcher: m}
}

// AlternativesRequest represents the matching request
type AlternativesRequest struct {
	LineItems []extractor.LineItem `json:"line_items" binding:"required"`
}

// AlternativesResponse represents the matching result
type AlternativesResponse struct {
	Success bool                        `json:"success"`
	Results []matcher.AlternativeResult `json:"results"`
}

// FindAlternatives matches line items to sustainable alternatives.
// POST /api/procurement/alternatives
func (h *AlternativesHandler) FindAlternatives(c *gin.Context) {
	var req AlternativesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "line_items is required",
		})
		return
	}

	results, err := h.matcher.FindAlternatives(req.LineItems)
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
			"error":   "Matching failed: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, AlternativesResponse{
		Success: true,
		Results: results,
	})
}
