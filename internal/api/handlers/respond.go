package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jroosing/cfdns/internal/api/models"
	"github.com/jroosing/cfdns/internal/provider"
)

const msgUnexpected = "Unexpected server error. Please try again later."

// respondError maps a gateway failure to the proxy's error contract:
// provider rejections keep their status and message, everything else is a 500.
func (h *Handler) respondError(c *gin.Context, err error) {
	h.logger.Error("cloudflare proxy error",
		"method", c.Request.Method,
		"route", c.FullPath(),
		"outcome", provider.OutcomeOf(err),
		"err", err,
	)

	var upErr *provider.UpstreamError
	if errors.As(err, &upErr) {
		c.JSON(upErr.Status, models.ErrorResponse{
			Message: upErr.Message,
			Data:    upErr.RawBody,
		})
		return
	}

	c.JSON(http.StatusInternalServerError, models.ErrorResponse{
		Message: msgUnexpected,
		Details: err.Error(),
	})
}

// respondRaw writes an already-encoded JSON payload.
func respondRaw(c *gin.Context, status int, payload json.RawMessage) {
	c.Data(status, "application/json; charset=utf-8", payload)
}

// readJSONBody returns the request body when it is JSON. An empty body is
// treated as an empty object. A body that cannot be read or parsed is an
// unexpected failure like any other; the 500 response is already written.
func (h *Handler) readJSONBody(c *gin.Context) (json.RawMessage, bool) {
	body, err := c.GetRawData()
	if err != nil {
		h.respondError(c, fmt.Errorf("read request body: %w", err))
		return nil, false
	}
	body = bytes.TrimSpace(body)
	if len(body) == 0 {
		return json.RawMessage(`{}`), true
	}
	var probe any
	if err := json.Unmarshal(body, &probe); err != nil {
		h.respondError(c, fmt.Errorf("parse request body: %w", err))
		return nil, false
	}
	return json.RawMessage(body), true
}
