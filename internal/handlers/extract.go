package handlers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/leafx/procurement-service/internal/docparse"
	"github.com/leafx/procurement-service/internal/extractor"
)

// maxUploadBytes bounds uploaded procurement documents.
const maxUploadBytes = 10 << 20

// ExtractHandler handles line-item extraction HTTP endpoints
type ExtractHandler struct {
	extractor *extractor.Extractor
}

// NewExtractHandler creates a new extraction handler
func NewExtractHandler(ex *extractor.Extractor) *ExtractHandler {
	return &ExtractHandler{extractor: ex}
}

// ExtractRequest represents a plain-text extraction request
type ExtractRequest struct {
	Text     string `json:"text" binding:"required"`
	Filename string `json:"filename"`
}

// ExtractResponse represents the extraction result
type ExtractResponse struct {
	Success       bool                 `json:"success"`
	LineItems     []extractor.LineItem `json:"line_items"`
	ExtractedFrom string               `json:"extracted_from"`
}

// Extract extracts line items from document text or an uploaded file.
// Accepts either JSON {text, filename} or a multipart upload under the
// "document" field. Extraction never fails, so the response is always 200.
// POST /api/procurement/extract
func (h *ExtractHandler) Extract(c *gin.Context) {
	text, filename, ok := h.readDocument(c)
	if !ok {
		return
	}

	result := h.extractor.Extract(text)

	log.Info().
		Str("component", "handlers").
		Str("filename", filename).
		Int("items", len(result.LineItems)).
		Str("source", result.ExtractedFrom).
		Msg("Extracted line items")

	c.JSON(http.StatusOK, ExtractResponse{
		Success:       true,
		LineItems:     result.LineItems,
		ExtractedFrom: result.ExtractedFrom,
	})
}

// readDocument resolves the request body to plain text. Multipart uploads
// are converted via docparse; JSON bodies carry text directly.
func (h *ExtractHandler) readDocument(c *gin.Context) (text, filename string, ok bool) {
	if file, err := c.FormFile("document"); err == nil {
		if file.Size > maxUploadBytes {
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{
				"success": false,
				"error":   "Document exceeds maximum size",
			})
			return "", "", false
		}

		f, err := file.Open()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"error":   "Failed to read uploaded document",
			})
			return "", "", false
		}
		defer f.Close()

		content, err := io.ReadAll(io.LimitReader(f, maxUploadBytes))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"error":   "Failed to read uploaded document",
			})
			return "", "", false
		}

		return docparse.ToText(content, file.Filename), file.Filename, true
	}

	var req ExtractRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Request must include text or a document upload",
		})
		return "", "", false
	}

	return docparse.ToText([]byte(req.Text), req.Filename), req.Filename, true
}
