package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAPIKeyRouter(secret string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(APIKey(secret))
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
	return router
}

func TestAPIKeyAllowsMatchingSecret(t *testing.T) {
	router := newAPIKeyRouter("s3cret")

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(APIKeyHeader, "s3cret")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAPIKeyRejectsMissingHeader(t *testing.T) {
	router := newAPIKeyRouter("s3cret")

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Invalid or missing API key", body["error"])
}

func TestAPIKeyRejectsWrongSecret(t *testing.T) {
	router := newAPIKeyRouter("s3cret")

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(APIKeyHeader, "wrong")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
