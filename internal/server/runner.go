// Package server wires configuration, the Cloudflare gateway and the HTTP
// API together and runs them until shutdown.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jroosing/cfdns/internal/api"
	"github.com/jroosing/cfdns/internal/config"
	"github.com/jroosing/cfdns/internal/metrics"
	"github.com/jroosing/cfdns/internal/provider"
)

// ShutdownTimeout bounds graceful shutdown once a stop is requested.
const ShutdownTimeout = 10 * time.Second

// Runner orchestrates proxy startup and shutdown.
type Runner struct {
	logger  *slog.Logger
	metrics *metrics.Metrics
}

// NewRunner creates a new runner with the given logger.
func NewRunner(logger *slog.Logger) *Runner {
	if logger == nil {
		logger = slog.Default()
	}
	return &Runner{logger: logger, metrics: metrics.New()}
}

// Metrics returns the registry shared by the gateway and the HTTP layer.
func (r *Runner) Metrics() *metrics.Metrics {
	return r.metrics
}

// Run starts the proxy and blocks until SIGINT/SIGTERM.
//
// Server lifecycle:
//  1. Build the Cloudflare gateway with the configured credential
//  2. Build the HTTP API around it
//  3. Listen on server.host:server.port
//  4. Wait for shutdown signal
//  5. Drain in-flight requests with a timeout
func (r *Runner) Run(cfg *config.Config) error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()
	return r.RunWithContext(ctx, cfg)
}

// RunWithContext listens on the configured address and serves until ctx is canceled.
func (r *Runner) RunWithContext(ctx context.Context, cfg *config.Config) error {
	addr := net.JoinHostPort(cfg.Server.Host, fmt.Sprint(cfg.Server.Port))
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", addr, err)
	}
	return r.Serve(ctx, cfg, ln)
}

// Serve runs the proxy on ln until ctx is canceled or the server fails.
// ln is closed on return.
func (r *Runner) Serve(ctx context.Context, cfg *config.Config, ln net.Listener) error {
	gateway := provider.New(provider.Config{
		BaseURL:  cfg.Cloudflare.BaseURL,
		APIToken: cfg.Cloudflare.APIToken,
		Timeout:  cfg.Cloudflare.Timeout,
		PerPage:  cfg.Cloudflare.PerPage,
	}, r.logger, r.metrics)

	srv := api.New(cfg, gateway, r.logger, r.metrics)
	r.logStartup(cfg, ln.Addr().String())

	errCh := make(chan error, 1)
	go func() { errCh <- srv.Serve(ln) }()

	select {
	case <-ctx.Done():
		// shutdown requested
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}

	r.logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (r *Runner) logStartup(cfg *config.Config, addr string) {
	r.logger.Info("cloudflare dns proxy listening",
		"addr", addr,
		"upstream", cfg.Cloudflare.BaseURL,
		"timeout", cfg.Cloudflare.Timeout.String(),
		"allowed_origins", cfg.CORS.AllowedOrigins,
		"ui_dir", cfg.UI.Dir,
	)
	if cfg.RateLimit.Enabled() {
		r.logger.Info("rate limits", "effective", api.RateLimitSettings(cfg.RateLimit).String())
	}
	if !cfg.Cloudflare.TokenConfigured() {
		r.logger.Warn("CLOUDFLARE_API_TOKEN is not set; Cloudflare requests will fail until it is configured")
	}
}
