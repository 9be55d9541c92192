package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func rateLimitedRouter(cfg RateLimiterConfig) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(RateLimitMiddleware(cfg))
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
	return router
}

// TestRateLimitMiddleware allows burst-sized traffic then rejects.
func TestRateLimitMiddleware(t *testing.T) {
	router := rateLimitedRouter(RateLimiterConfig{RequestsPerSecond: 1, BurstSize: 3})

	var rejected int
	for i := 0; i < 5; i++ {
		req, _ := http.NewRequest("GET", "/ping", nil)
		req.Header.Set("X-Forwarded-For", "203.0.113.7")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		if w.Code == http.StatusTooManyRequests {
			rejected++
		}
	}

	assert.Equal(t, 2, rejected)
}

// TestRateLimitPerIP tracks each client independently.
func TestRateLimitPerIP(t *testing.T) {
	router := rateLimitedRouter(RateLimiterConfig{RequestsPerSecond: 1, BurstSize: 1})

	for _, ip := range []string{"203.0.113.1", "203.0.113.2", "203.0.113.3"} {
		req, _ := http.NewRequest("GET", "/ping", nil)
		req.Header.Set("X-Forwarded-For", ip)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code, "first request from %s", ip)
	}
}
