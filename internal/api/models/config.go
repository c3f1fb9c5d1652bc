package models

// CloudflareConfigResponse is a redacted view of the upstream settings.
type CloudflareConfigResponse struct {
	BaseURL         string `json:"base_url"`
	Timeout         string `json:"timeout"`
	PerPage         int    `json:"per_page"`
	TokenConfigured bool   `json:"token_configured"`
}

// ServerConfigResponse is the listener part of the configuration.
type ServerConfigResponse struct {
	Host string `json:"host"`
	Port int    `json:"port"`
}

// ConfigResponse is the API response for GET /config.
type ConfigResponse struct {
	Server         ServerConfigResponse     `json:"server"`
	Cloudflare     CloudflareConfigResponse `json:"cloudflare"`
	AllowedOrigins []string                 `json:"allowed_origins"`
	UIDir          string                   `json:"ui_dir,omitempty"`
	LogLevel       string                   `json:"log_level"`
}
