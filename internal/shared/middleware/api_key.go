package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"bookcatalog-backend/internal/shared/apperror"
	"bookcatalog-backend/internal/shared/messages"
)

// APIKeyHeader is the shared-secret header every API request must carry.
const APIKeyHeader = "api-key"

// APIKey short-circuits requests whose api-key header is missing or does
// not match the configured secret: 401 with a fixed JSON error body,
// before any domain code runs.
func APIKey(expected string) gin.HandlerFunc {
	return func(c *gin.Context) {
		provided := c.GetHeader(APIKeyHeader)

		if provided == "" || subtle.ConstantTimeCompare([]byte(provided), []byte(expected)) != 1 {
			log.Error().
				Str("request_id", c.GetString("request_id")).
				Str("path", c.Request.URL.Path).
				Msg("Invalid or missing API key")

			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": messages.Format(messages.DefaultLocale, apperror.ReasonInvalidAPIKey),
			})
			return
		}

		c.Next()
	}
}
