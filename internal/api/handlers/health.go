package handlers

import (
	"net/http"
	"runtime"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jroosing/cfdns/internal/api/models"
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"
)

// Health godoc
// @Summary Health check
// @Description Returns proxy health status; does not contact the DNS provider
// @Tags system
// @Produce json
// @Success 200 {object} models.StatusResponse
// @Router /health [get]
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, models.StatusResponse{Status: "ok"})
}

// Stats godoc
// @Summary Server statistics
// @Description Returns runtime statistics including uptime, goroutines, and host CPU/memory usage
// @Tags system
// @Produce json
// @Success 200 {object} models.ServerStatsResponse
// @Router /stats [get]
func (h *Handler) Stats(c *gin.Context) {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	uptime := time.Since(h.startTime)

	resp := models.ServerStatsResponse{
		Uptime:        uptime.Round(time.Second).String(),
		UptimeSeconds: int64(uptime.Seconds()),
		StartTime:     h.startTime,
		GoRoutines:    runtime.NumGoroutine(),
		MemoryAllocMB: float64(m.Alloc) / 1024 / 1024,
		CPU: models.CPUStats{
			NumCPU: runtime.NumCPU(),
		},
	}

	ctx := c.Request.Context()
	if pct, err := cpu.PercentWithContext(ctx, 0, false); err == nil && len(pct) > 0 {
		resp.CPU.UsedPercent = pct[0]
		resp.CPU.IdlePercent = 100 - pct[0]
	} else if err != nil {
		h.logger.Debug("cpu stats unavailable", "err", err)
	}

	if vm, err := mem.VirtualMemoryWithContext(ctx); err == nil {
		resp.Memory = models.MemoryStats{
			TotalMB:     float64(vm.Total) / 1024 / 1024,
			FreeMB:      float64(vm.Available) / 1024 / 1024,
			UsedMB:      float64(vm.Used) / 1024 / 1024,
			UsedPercent: vm.UsedPercent,
		}
	} else {
		h.logger.Debug("memory stats unavailable", "err", err)
	}

	c.JSON(http.StatusOK, resp)
}
