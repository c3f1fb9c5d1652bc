// Package config provides configuration loading and validation for the
// Cloudflare DNS proxy.
//
// Values are layered: built-in defaults, then an optional YAML file, then a
// .env file in the working directory, then process environment variables.
// Command-line flags are applied by the caller after Load returns.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"go.yaml.in/yaml/v3"
)

// EnvConfigPath names the environment variable consulted when no -config flag is given.
const EnvConfigPath = "CFDNS_CONFIG"

// DefaultAllowedOrigins matches a local browser dev server.
var DefaultAllowedOrigins = []string{"http://localhost:5173", "http://127.0.0.1:5173"}

// Default returns a configuration with every field at its default.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Host: "0.0.0.0",
			Port: 4000,
		},
		Cloudflare: CloudflareConfig{
			BaseURL:    DefaultCloudflareBaseURL,
			TimeoutRaw: "15s",
		},
		CORS: CORSConfig{
			AllowedOrigins: append([]string(nil), DefaultAllowedOrigins...),
		},
		RateLimit: RateLimitConfig{
			CleanupSeconds: 60,
			MaxIPEntries:   10000,
		},
		Logging: LoggingConfig{
			Level:            "INFO",
			StructuredFormat: "json",
		},
	}
}

// ResolveConfigPath returns the flag value when set, otherwise $CFDNS_CONFIG.
func ResolveConfigPath(flagValue string) string {
	if p := strings.TrimSpace(flagValue); p != "" {
		return p
	}
	return strings.TrimSpace(os.Getenv(EnvConfigPath))
}

// Load builds the configuration. An empty path skips the YAML file.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	// A missing .env is normal outside development.
	_ = godotenv.Load()
	applyEnv(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v, ok := lookupEnv("CLOUDFLARE_API_TOKEN"); ok {
		cfg.Cloudflare.APIToken = v
	}
	if v, ok := lookupEnv("CLOUDFLARE_API_BASE_URL"); ok {
		cfg.Cloudflare.BaseURL = v
	}
	if v, ok := lookupEnv("CLOUDFLARE_TIMEOUT"); ok {
		cfg.Cloudflare.TimeoutRaw = v
	}
	if v, ok := lookupEnv("HOST"); ok {
		cfg.Server.Host = v
	}
	if v, ok := lookupEnv("PORT"); ok {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Server.Port = n
		}
	}
	if v, ok := lookupEnv("CLIENT_ORIGIN"); ok {
		cfg.CORS.AllowedOrigins = SplitList(v)
	}
	if v, ok := lookupEnv("UI_DIR"); ok {
		cfg.UI.Dir = v
	}
	if v, ok := lookupEnv("LOG_LEVEL"); ok {
		cfg.Logging.Level = v
	}
}

func lookupEnv(key string) (string, bool) {
	v, ok := os.LookupEnv(key)
	if !ok {
		return "", false
	}
	v = strings.TrimSpace(v)
	return v, v != ""
}

// SplitList splits a comma separated list, dropping empty entries.
func SplitList(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// Validate validates and normalizes the configuration.
func (cfg *Config) Validate() error {
	if cfg.Server.Port <= 0 || cfg.Server.Port > 65535 {
		return errors.New("server.port must be 1..65535")
	}
	if cfg.Server.Host == "" {
		cfg.Server.Host = "0.0.0.0"
	}

	cfg.Cloudflare.BaseURL = strings.TrimRight(strings.TrimSpace(cfg.Cloudflare.BaseURL), "/")
	if cfg.Cloudflare.BaseURL == "" {
		cfg.Cloudflare.BaseURL = DefaultCloudflareBaseURL
	}
	if cfg.Cloudflare.TimeoutRaw == "" {
		cfg.Cloudflare.TimeoutRaw = "15s"
	}
	timeout, err := time.ParseDuration(cfg.Cloudflare.TimeoutRaw)
	if err != nil || timeout <= 0 {
		return fmt.Errorf("cloudflare.timeout must be a positive duration, got %q", cfg.Cloudflare.TimeoutRaw)
	}
	cfg.Cloudflare.Timeout = timeout
	if cfg.Cloudflare.PerPage < 0 {
		return errors.New("cloudflare.per_page must not be negative")
	}

	if len(cfg.CORS.AllowedOrigins) == 0 {
		cfg.CORS.AllowedOrigins = append([]string(nil), DefaultAllowedOrigins...)
	}

	rl := &cfg.RateLimit
	if rl.GlobalRPS < 0 || rl.IPRPS < 0 || rl.GlobalBurst < 0 || rl.IPBurst < 0 {
		return errors.New("rate_limit values must not be negative")
	}
	if rl.CleanupSeconds <= 0 {
		rl.CleanupSeconds = 60
	}
	if rl.MaxIPEntries <= 0 {
		rl.MaxIPEntries = 10000
	}

	// Normalize logging
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "INFO"
	}
	cfg.Logging.Level = strings.ToUpper(cfg.Logging.Level)
	if cfg.Logging.StructuredFormat == "" {
		cfg.Logging.StructuredFormat = "json"
	}
	if cfg.Logging.ExtraFields == nil {
		cfg.Logging.ExtraFields = map[string]string{}
	}

	return nil
}
