package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/leafx/procurement-service/internal/order"
	"github.com/leafx/procurement-service/internal/storage"
)

// QuotesHandler handles quote generation and archive endpoints
type QuotesHandler struct {
	archive   storage.Archive
	urlPrefix string
}

// NewQuotesHandler creates a new quotes handler
func NewQuotesHandler(archive storage.Archive, urlPrefix string) *QuotesHandler {
	return &QuotesHandler{archive: archive, urlPrefix: urlPrefix}
}

// GenerateQuoteRequest represents the quote generation request
type GenerateQuoteRequest struct {
	POID  string              `json:"po_id" binding:"required"`
	Order order.PurchaseOrder `json:"order" binding:"required"`
}

// GenerateQuoteResponse represents the generated quote
type GenerateQuoteResponse struct {
	Success bool        `json:"success"`
	Quote   order.Quote `json:"quote"`
}

// GenerateQuote renders a quote for an assembled order and archives the
// quote document. The quote's file_url points at the archived artifact.
// POST /api/procurement/quotes
func (h *QuotesHandler) GenerateQuote(c *gin.Context) {
	var req GenerateQuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "po_id and order are required",
		})
		return
	}

	key := req.POID + ".json"
	quote := order.EmitQuote(req.POID, req.Order, h.urlPrefix+"/"+key)

	doc, err := json.MarshalIndent(quote, "", "  ")
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "Failed to render quote document",
		})
		return
	}

	info, err := h.archive.Put(c.Request.Context(), key, doc, &storage.Metadata{
		ContentType: "application/json",
		POID:        req.POID,
		GeneratedAt: quote.GeneratedAt,
	})
	if err != nil {
		log.Error().Str("component", "handlers").Str("po_id", req.POID).Err(err).Msg("Failed to archive quote")
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "Failed to archive quote document",
		})
		return
	}

	log.Info().
		Str("component", "handlers").
		Str("po_id", req.POID).
		Str("key", info.Key).
		Str("checksum", info.Checksum).
		Msg("Quote generated")

	c.JSON(http.StatusOK, GenerateQuoteResponse{
		Success: true,
		Quote:   quote,
	})
}

// ListQuotes lists archived quote documents.
// GET /api/quotes
func (h *QuotesHandler) ListQuotes(c *gin.Context) {
	infos, err := h.archive.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "Failed to list quotes",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"quotes":  infos,
	})
}

// GetQuote serves an archived quote document by key.
// GET /api/quotes/:key
func (h *QuotesHandler) GetQuote(c *gin.Context) {
	key := c.Param("key")

	exists, err := h.archive.Exists(c.Request.Context(), key)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   err.Error(),
		})
		return
	}
	if !exists {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error":   "Quote not found",
		})
		return
	}

	doc, err := h.archive.Get(c.Request.Context(), key)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "Failed to read quote",
		})
		return
	}

	c.Data(http.StatusOK, "application/json", doc)
}
