package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/leafx/procurement-service/internal/catalog"
)

// HealthResponse represents the health check response
type HealthResponse struct {
	Status   string `json:"status"`
	Catalog  string `json:"catalog"`
	Products int    `json:"products"`
}

// HealthCheck reports service health. The service is degraded when the
// catalog failed to load; the pipeline cannot match or price without it.
func HealthCheck(snapshot *catalog.Snapshot) gin.HandlerFunc {
	return func(c *gin.Context) {
		response := HealthResponse{Status: "ok"}

		if snapshot == nil || len(snapshot.Products()) == 0 {
			response.Catalog = "not loaded"
			c.JSON(http.StatusServiceUnavailable, response)
			return
		}

		response.Catalog = "loaded"
		response.Products = len(snapshot.Products())
		c.JSON(http.StatusOK, response)
	}
}
