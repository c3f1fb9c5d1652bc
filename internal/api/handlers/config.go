package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jroosing/cfdns/internal/api/models"
)

// GetConfig godoc
// @Summary Get current configuration
// @Description Returns the effective proxy configuration (the API token is never returned)
// @Tags system
// @Produce json
// @Success 200 {object} models.ConfigResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /config [get]
func (h *Handler) GetConfig(c *gin.Context) {
	if h.cfg == nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Message: "config unavailable"})
		return
	}

	resp := models.ConfigResponse{
		Server: models.ServerConfigResponse{
			Host: h.cfg.Server.Host,
			Port: h.cfg.Server.Port,
		},
		Cloudflare: models.CloudflareConfigResponse{
			BaseURL:         h.cfg.Cloudflare.BaseURL,
			Timeout:         h.cfg.Cloudflare.Timeout.String(),
			PerPage:         h.cfg.Cloudflare.PerPage,
			TokenConfigured: h.cfg.Cloudflare.TokenConfigured(),
		},
		AllowedOrigins: h.cfg.CORS.AllowedOrigins,
		UIDir:          h.cfg.UI.Dir,
		LogLevel:       h.cfg.Logging.Level,
	}

	c.JSON(http.StatusOK, resp)
}
