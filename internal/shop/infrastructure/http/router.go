package http

import (
	"net/http"

	"github.com/Mhany156/telegram-bot/internal/pkg/logging"
	"github.com/gin-gonic/gin"
)

func NewRouter(handler *UpdateHandler, botSecret string, logger logging.Logger) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), NewRequestIdMiddleware(logger))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("/api", NewSecretAuthMiddleware(botSecret))
	{
		api.POST("/updates", handler.HandleUpdate)
	}

	return router
}
