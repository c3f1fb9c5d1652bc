package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ListZones godoc
// @Summary List zones
// @Description Returns every zone visible to the configured Cloudflare token, passed through verbatim
// @Tags zones
// @Produce json
// @Success 200 {array} models.Zone
// @Failure 500 {object} models.ErrorResponse
// @Router /zones [get]
func (h *Handler) ListZones(c *gin.Context) {
	result, err := h.gateway.ListZones(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}
	respondRaw(c, http.StatusOK, result)
}
