package config

import (
	"strings"
	"time"
)

// DefaultCloudflareBaseURL is the Cloudflare API v4 endpoint.
const DefaultCloudflareBaseURL = "https://api.cloudflare.com/client/v4"

// ServerConfig contains listener settings for the proxy.
type ServerConfig struct {
	Host string `yaml:"host" json:"host"`
	Port int    `yaml:"port" json:"port"`
}

// CloudflareConfig contains the upstream provider settings.
//
// Note: APIToken is a secret and must never be returned by API endpoints.
type CloudflareConfig struct {
	BaseURL    string        `yaml:"base_url" json:"base_url"`
	APIToken   string        `yaml:"api_token" json:"-"`
	Timeout    time.Duration `yaml:"-" json:"-"`
	TimeoutRaw string        `yaml:"timeout" json:"timeout"` // e.g. "15s"
	PerPage    int           `yaml:"per_page" json:"per_page"`
}

// TokenConfigured reports whether an upstream credential is present.
func (c CloudflareConfig) TokenConfigured() bool {
	return strings.TrimSpace(c.APIToken) != ""
}

// CORSConfig lists browser origins allowed to call the proxy.
type CORSConfig struct {
	AllowedOrigins []string `yaml:"allowed_origins" json:"allowed_origins"`
}

// UIConfig points at a prebuilt browser bundle served at "/".
// Empty Dir disables static serving.
type UIConfig struct {
	Dir string `yaml:"dir" json:"dir,omitempty"`
}

// RateLimitConfig bounds how fast callers may drive the proxy, protecting
// the account's Cloudflare API quota. A zero rate or burst disables a level.
type RateLimitConfig struct {
	CleanupSeconds float64 `yaml:"cleanup_seconds" json:"cleanup_seconds"`
	MaxIPEntries   int     `yaml:"max_ip_entries" json:"max_ip_entries"`
	GlobalRPS      float64 `yaml:"global_rps" json:"global_rps"`
	GlobalBurst    int     `yaml:"global_burst" json:"global_burst"`
	IPRPS          float64 `yaml:"ip_rps" json:"ip_rps"`
	IPBurst        int     `yaml:"ip_burst" json:"ip_burst"`
}

// Enabled reports whether any level limits traffic.
func (c RateLimitConfig) Enabled() bool {
	return (c.GlobalRPS > 0 && c.GlobalBurst > 0) || (c.IPRPS > 0 && c.IPBurst > 0)
}

// LoggingConfig contains logging settings.
type LoggingConfig struct {
	Level            string            `yaml:"level" json:"level"`
	Structured       bool              `yaml:"structured" json:"structured"`
	StructuredFormat string            `yaml:"structured_format" json:"structured_format"`
	IncludePID       bool              `yaml:"include_pid" json:"include_pid"`
	ExtraFields      map[string]string `yaml:"extra_fields" json:"extra_fields,omitempty"`
}

// Config is the root configuration structure.
type Config struct {
	Server     ServerConfig     `yaml:"server" json:"server"`
	Cloudflare CloudflareConfig `yaml:"cloudflare" json:"cloudflare"`
	CORS       CORSConfig       `yaml:"cors" json:"cors"`
	UI         UIConfig         `yaml:"ui" json:"ui"`
	RateLimit  RateLimitConfig  `yaml:"rate_limit" json:"rate_limit"`
	Logging    LoggingConfig    `yaml:"logging" json:"logging"`
}
