package middleware

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"bookcatalog-backend/internal/shared/apperror"
	"bookcatalog-backend/internal/shared/response"
)

// Recovery turns panics into the technical error wire shape. Anything that
// reaches this point is by definition unclassified, so it gets the generic
// 500 treatment.
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				log.Error().
					Str("request_id", c.GetString("request_id")).
					Interface("panic", r).
					Msg("Panic recovered")

				response.Problem(c, apperror.Technical(fmt.Errorf("panic: %v", r)))
			}
		}()

		c.Next()
	}
}
