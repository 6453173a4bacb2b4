package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"marketing-ai-hub/backend/internal/features/config/application"
)

// AppConfigHandler holds the config service.
type AppConfigHandler struct {
	configService application.ConfigService
}

// NewAppConfigHandler creates a new AppConfigHandler.
func NewAppConfigHandler(configService application.ConfigService) *AppConfigHandler {
	return &AppConfigHandler{configService: configService}
}

// GetAppConfigHandler handles fetching the public application configuration.
func (h *AppConfigHandler) GetAppConfigHandler(c *gin.Context) {
	c.JSON(http.StatusOK, h.configService.AppConfig())
}
