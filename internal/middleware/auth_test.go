package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func authRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(APIKeyMiddleware())
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
	return router
}

// TestAPIKeyMiddleware tests accept and reject paths.
func TestAPIKeyMiddleware(t *testing.T) {
	t.Setenv("INTERNAL_API_KEY", "test-secret")
	router := authRouter()

	req, _ := http.NewRequest("GET", "/ping", nil)
	req.Header.Set("X-Internal-API-Key", "test-secret")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	req, _ = http.NewRequest("GET", "/ping", nil)
	req.Header.Set("X-Internal-API-Key", "wrong")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	req, _ = http.NewRequest("GET", "/ping", nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

// TestAPIKeyMiddlewareFailsClosed verifies a missing key rejects everything.
func TestAPIKeyMiddlewareFailsClosed(t *testing.T) {
	t.Setenv("INTERNAL_API_KEY", "")
	router := authRouter()

	req, _ := http.NewRequest("GET", "/ping", nil)
	req.Header.Set("X-Internal-API-Key", "anything")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
