// Package handlers implements the REST API endpoint handlers for the DNS proxy.
//
// REST API Endpoints:
//
// System:
//   - GET /api/health - Health check status (never contacts the provider)
//   - GET /api/stats - Runtime statistics (uptime, goroutines, host CPU and memory)
//   - GET /api/config - Effective configuration (API token redacted)
//
// Zones and records (proxied to Cloudflare):
//   - GET /api/zones - List zones
//   - GET /api/zones/:zoneId/dns_records - List records of a zone
//   - POST /api/zones/:zoneId/dns_records - Create a record
//   - PUT /api/zones/:zoneId/dns_records/:recordId - Update a record
//   - DELETE /api/zones/:zoneId/dns_records/:recordId - Delete a record
//
// The proxy holds a single Cloudflare credential and does not authenticate
// its callers. Bind it to a trusted interface.
//
// @title Cloudflare DNS Proxy API
// @version 1.0
// @description Stateless proxy that exposes Cloudflare zone and DNS record management to browser clients.
//
// @license.name MIT
// @license.url https://opensource.org/licenses/MIT
//
// @host localhost:4000
// @BasePath /api
package handlers

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"time"

	"github.com/jroosing/cfdns/internal/config"
)

// Gateway is the upstream provider as seen by the handlers.
// *provider.Client satisfies it.
type Gateway interface {
	ListZones(ctx context.Context) (json.RawMessage, error)
	ListRecords(ctx context.Context, zoneID string) (json.RawMessage, error)
	CreateRecord(ctx context.Context, zoneID string, fields json.RawMessage) (json.RawMessage, error)
	UpdateRecord(ctx context.Context, zoneID, recordID string, fields json.RawMessage) (json.RawMessage, error)
	DeleteRecord(ctx context.Context, zoneID, recordID string) (json.RawMessage, error)
}

// Handler contains dependencies for API handlers. It holds no per-request
// state and is safe for concurrent use.
type Handler struct {
	cfg       *config.Config
	gateway   Gateway
	logger    *slog.Logger
	startTime time.Time
}

// New creates a new Handler. logger may be nil.
func New(cfg *config.Config, gateway Gateway, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Handler{
		cfg:       cfg,
		gateway:   gateway,
		logger:    logger,
		startTime: time.Now(),
	}
}
