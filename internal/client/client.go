// Package client is a typed HTTP client for the DNS proxy's REST API.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/jroosing/cfdns/internal/api/models"
)

const (
	// DefaultTimeout bounds each proxy call.
	DefaultTimeout = 30 * time.Second

	// MaxResponseBytes caps how much of a proxy response is read.
	MaxResponseBytes = 8 << 20
)

// APIError is a non-2xx answer from the proxy.
type APIError struct {
	Status  int
	Message string
	Details string
}

func (e *APIError) Error() string {
	return e.Message
}

// Client talks to one proxy instance. It is safe for concurrent use.
type Client struct {
	baseURL string
	http    *http.Client
}

// New creates a client for the proxy at baseURL, e.g. "http://localhost:4000".
// A zero timeout selects DefaultTimeout.
func New(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

func (c *Client) ListZones(ctx context.Context) ([]models.Zone, error) {
	var zones []models.Zone
	if err := c.do(ctx, http.MethodGet, "/api/zones", nil, &zones); err != nil {
		return nil, err
	}
	return zones, nil
}

func (c *Client) ListRecords(ctx context.Context, zoneID string) ([]models.DNSRecord, error) {
	var records []models.DNSRecord
	if err := c.do(ctx, http.MethodGet, recordsPath(zoneID), nil, &records); err != nil {
		return nil, err
	}
	return records, nil
}

func (c *Client) CreateRecord(ctx context.Context, zoneID string, fields models.RecordFields) (models.DNSRecord, error) {
	var rec models.DNSRecord
	err := c.do(ctx, http.MethodPost, recordsPath(zoneID), fields, &rec)
	return rec, err
}

func (c *Client) UpdateRecord(ctx context.Context, zoneID, recordID string, fields models.RecordFields) (models.DNSRecord, error) {
	var rec models.DNSRecord
	err := c.do(ctx, http.MethodPut, recordPath(zoneID, recordID), fields, &rec)
	return rec, err
}

func (c *Client) DeleteRecord(ctx context.Context, zoneID, recordID string) error {
	return c.do(ctx, http.MethodDelete, recordPath(zoneID, recordID), nil, nil)
}

func recordsPath(zoneID string) string {
	return "/api/zones/" + url.PathEscape(zoneID) + "/dns_records"
}

func recordPath(zoneID, recordID string) string {
	return recordsPath(zoneID) + "/" + url.PathEscape(recordID)
}

func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, MaxResponseBytes))
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeError(resp.StatusCode, data)
	}

	if out == nil || len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func decodeError(status int, data []byte) *APIError {
	apiErr := &APIError{Status: status}
	var body models.ErrorResponse
	if err := json.Unmarshal(data, &body); err == nil {
		apiErr.Message = body.Message
		apiErr.Details = body.Details
	}
	if apiErr.Message == "" {
		apiErr.Message = http.StatusText(status)
	}
	return apiErr
}
