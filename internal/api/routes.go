package api

import (
	"github.com/gin-gonic/gin"
	"github.com/jroosing/cfdns/internal/api/handlers"
	"github.com/jroosing/cfdns/internal/api/middleware"
	"github.com/jroosing/cfdns/internal/metrics"
	"github.com/jroosing/cfdns/internal/ratelimit"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/jroosing/cfdns/internal/api/docs" // swagger docs
)

// APIPrefix is the path prefix of every proxy endpoint.
const APIPrefix = "/api"

// RegisterRoutes mounts every endpoint. m and limiter may be nil.
func RegisterRoutes(r *gin.Engine, h *handlers.Handler, m *metrics.Metrics, limiter *ratelimit.Limiter) {
	// Swagger UI at /swagger/*
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	if m != nil {
		r.GET("/metrics", gin.WrapH(m.Handler()))
	}

	api := r.Group(APIPrefix)
	api.GET("/health", h.Health)
	api.GET("/stats", h.Stats)
	api.GET("/config", h.GetConfig)

	// Endpoints that reach Cloudflare are rate limited; health never is.
	proxied := api.Group("")
	if limiter != nil {
		proxied.Use(middleware.RateLimit(limiter))
	}
	proxied.GET("/zones", h.ListZones)

	records := proxied.Group("/zones/:zoneId/dns_records")
	records.GET("", h.ListRecords)
	records.POST("", h.CreateRecord)
	records.PUT("/:recordId", h.UpdateRecord)
	records.DELETE("/:recordId", h.DeleteRecord)
}
