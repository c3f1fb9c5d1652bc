// Package api provides the HTTP surface of the Cloudflare DNS proxy.
// It exposes health, statistics, configuration, and the zone and record
// proxy endpoints via a Gin-based HTTP server, plus Prometheus metrics,
// Swagger docs, and an optional static UI.
package api

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jroosing/cfdns/internal/api/handlers"
	"github.com/jroosing/cfdns/internal/api/middleware"
	"github.com/jroosing/cfdns/internal/config"
	"github.com/jroosing/cfdns/internal/metrics"
	"github.com/jroosing/cfdns/internal/ratelimit"
)

// Server is the proxy's HTTP server.
//
// Security note: the proxy attaches its own Cloudflare credential to every
// forwarded call and does not authenticate callers. Do not expose it to
// untrusted networks.
type Server struct {
	cfg        *config.Config
	logger     *slog.Logger
	engine     *gin.Engine
	httpServer *http.Server
}

// New builds the server. logger and m may be nil.
func New(cfg *config.Config, gateway handlers.Gateway, logger *slog.Logger, m *metrics.Metrics) *Server {
	if cfg == nil {
		panic("api.New: cfg is nil")
	}

	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestID())
	engine.Use(middleware.SlogRequestLogger(logger))
	engine.Use(middleware.Metrics(m))
	engine.Use(middleware.CORS(cfg.CORS.AllowedOrigins))

	var limiter *ratelimit.Limiter
	if cfg.RateLimit.Enabled() {
		limiter = ratelimit.New(RateLimitSettings(cfg.RateLimit))
	}

	h := handlers.New(cfg, gateway, logger)
	RegisterRoutes(engine, h, m, limiter)

	if cfg.UI.Dir != "" {
		MountSPA(engine, cfg.UI.Dir, logger)
	}

	addr := net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port))
	httpServer := &http.Server{
		Addr:              addr,
		Handler:           engine,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	return &Server{cfg: cfg, logger: logger, engine: engine, httpServer: httpServer}
}

// RateLimitSettings converts the configured limits.
func RateLimitSettings(rl config.RateLimitConfig) ratelimit.Settings {
	return ratelimit.Settings{
		Cleanup:      time.Duration(rl.CleanupSeconds * float64(time.Second)),
		MaxIPEntries: rl.MaxIPEntries,
		GlobalRate:   rl.GlobalRPS,
		GlobalBurst:  rl.GlobalBurst,
		IPRate:       rl.IPRPS,
		IPBurst:      rl.IPBurst,
	}
}

func (s *Server) Addr() string {
	if s.httpServer == nil {
		return ""
	}
	return s.httpServer.Addr
}

func (s *Server) Engine() *gin.Engine {
	return s.engine
}

func (s *Server) ListenAndServe() error {
	return s.httpServer.ListenAndServe()
}

// Serve accepts connections on l until Shutdown is called.
func (s *Server) Serve(l net.Listener) error {
	return s.httpServer.Serve(l)
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
