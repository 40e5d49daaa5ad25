package http

import (
	"crypto/subtle"
	"net/http"

	"github.com/Mhany156/telegram-bot/internal/pkg/logging"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	SecretHeader    = "X-Bot-Secret"
	RequestIdHeader = "X-Request-Id"
)

// NewSecretAuthMiddleware gates update delivery behind the shared secret the
// messaging bridge is configured with. An empty secret disables the check
// (local development).
func NewSecretAuthMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if secret == "" {
			c.Next()
			return
		}

		provided := c.GetHeader(SecretHeader)
		if subtle.ConstantTimeCompare([]byte(provided), []byte(secret)) != 1 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"errors": "invalid bot secret"})
			return
		}

		c.Next()
	}
}

func NewRequestIdMiddleware(logger logging.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		requestId := uuid.NewString()
		c.Writer.Header().Set(RequestIdHeader, requestId)

		c.Next()

		logger.Info("handled request",
			"request_id", requestId,
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
		)
	}
}
