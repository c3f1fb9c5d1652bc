package api

import (
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-contrib/static"
	"github.com/gin-gonic/gin"
)

// MountSPA serves a built browser UI from dir. Unknown non-API paths fall
// back to index.html so client-side routes survive a reload.
func MountSPA(r *gin.Engine, dir string, logger *slog.Logger) {
	if _, err := os.Stat(dir); err != nil {
		if logger != nil {
			logger.Warn("ui directory unavailable, not serving UI", "dir", dir, "err", err)
		}
		return
	}

	r.Use(static.Serve("/", static.LocalFile(dir, false)))

	index := filepath.Join(dir, "index.html")
	r.NoRoute(func(c *gin.Context) {
		// Only serve index.html for non-API routes
		if strings.HasPrefix(c.Request.URL.Path, APIPrefix) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Not found."})
			return
		}
		if _, err := os.Stat(index); err != nil {
			if logger != nil {
				logger.Error("failed to open index.html", "error", err)
			}
			c.Status(http.StatusNotFound)
			return
		}
		c.File(index)
	})
}
