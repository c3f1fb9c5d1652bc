// Package provider is the gateway to the Cloudflare v4 REST API.
//
// Every operation is a single authenticated attempt bounded by a fixed
// timeout. Successful calls return the envelope's result as raw JSON so
// provider-specific fields pass through untouched; failures come back as
// *UpstreamError (the provider answered) or *TransportError (it did not).
// Retries, if wanted, belong to the caller.
package provider

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/jroosing/cfdns/internal/metrics"
)

const (
	DefaultBaseURL = "https://api.cloudflare.com/client/v4"
	DefaultTimeout = 15 * time.Second

	// maxBodyBytes caps how much of a provider response we buffer.
	maxBodyBytes = 8 << 20
)

// Operation names, also used as metric labels.
const (
	OpListZones    = "list_zones"
	OpListRecords  = "list_records"
	OpCreateRecord = "create_record"
	OpUpdateRecord = "update_record"
	OpDeleteRecord = "delete_record"
)

// Config holds the process-wide gateway settings, injected once at startup.
type Config struct {
	BaseURL  string
	APIToken string
	Timeout  time.Duration
	// PerPage is sent as per_page on list calls when positive.
	PerPage int
}

// Client talks to Cloudflare. It is immutable after New and safe for
// concurrent use.
type Client struct {
	baseURL    string
	token      string
	perPage    int
	httpClient *http.Client
	logger     *slog.Logger
	metrics    *metrics.Metrics
}

// New creates a gateway client. logger and m may be nil.
func New(cfg Config, logger *slog.Logger, m *metrics.Metrics) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Client{
		baseURL: cfg.BaseURL,
		token:   cfg.APIToken,
		perPage: cfg.PerPage,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		logger:  logger,
		metrics: m,
	}
}

// ListZones returns every zone visible to the token.
func (c *Client) ListZones(ctx context.Context) (json.RawMessage, error) {
	return c.do(ctx, OpListZones, http.MethodGet, "/zones", c.listQuery(), nil)
}

// ListRecords returns the DNS records of one zone.
func (c *Client) ListRecords(ctx context.Context, zoneID string) (json.RawMessage, error) {
	return c.do(ctx, OpListRecords, http.MethodGet, recordsPath(zoneID), c.listQuery(), nil)
}

// CreateRecord creates a record from the given JSON fields.
func (c *Client) CreateRecord(ctx context.Context, zoneID string, fields json.RawMessage) (json.RawMessage, error) {
	return c.do(ctx, OpCreateRecord, http.MethodPost, recordsPath(zoneID), nil, fields)
}

// UpdateRecord overwrites a record with the given JSON fields.
func (c *Client) UpdateRecord(ctx context.Context, zoneID, recordID string, fields json.RawMessage) (json.RawMessage, error) {
	return c.do(ctx, OpUpdateRecord, http.MethodPut, recordPath(zoneID, recordID), nil, fields)
}

// DeleteRecord removes a record.
func (c *Client) DeleteRecord(ctx context.Context, zoneID, recordID string) (json.RawMessage, error) {
	return c.do(ctx, OpDeleteRecord, http.MethodDelete, recordPath(zoneID, recordID), nil, nil)
}

func recordsPath(zoneID string) string {
	return "/zones/" + url.PathEscape(zoneID) + "/dns_records"
}

func recordPath(zoneID, recordID string) string {
	return recordsPath(zoneID) + "/" + url.PathEscape(recordID)
}

func (c *Client) listQuery() url.Values {
	if c.perPage <= 0 {
		return nil
	}
	return url.Values{"per_page": []string{strconv.Itoa(c.perPage)}}
}

func (c *Client) do(ctx context.Context, op, method, path string, query url.Values, body []byte) (json.RawMessage, error) {
	start := time.Now()
	result, err := c.roundTrip(ctx, method, path, query, body)
	elapsed := time.Since(start)

	outcome := OutcomeOf(err)
	c.metrics.ObserveUpstream(op, string(outcome), elapsed)

	if err != nil {
		c.logger.Warn("cloudflare request failed",
			"op", op,
			"method", method,
			"path", path,
			"outcome", outcome,
			"latency_ms", elapsed.Milliseconds(),
			"err", err,
		)
		return nil, err
	}
	c.logger.Debug("cloudflare request",
		"op", op,
		"method", method,
		"path", path,
		"latency_ms", elapsed.Milliseconds(),
	)
	return result, nil
}

func (c *Client) roundTrip(ctx context.Context, method, path string, query url.Values, body []byte) (json.RawMessage, error) {
	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &TransportError{Message: err.Error(), Err: err}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, &TransportError{Message: fmt.Sprintf("read response: %v", err), Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &UpstreamError{
			Status:  resp.StatusCode,
			Message: errorMessage(respBody),
			RawBody: rawBody(respBody),
		}
	}

	// The HTTP status decides success; the envelope's success flag is not
	// consulted.
	return unwrapResult(respBody), nil
}
