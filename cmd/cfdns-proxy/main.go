package main

import (
	"fmt"
	"os"

	"github.com/jroosing/cfdns/internal/config"
	"github.com/jroosing/cfdns/internal/logging"
	"github.com/jroosing/cfdns/internal/server"
	flag "github.com/spf13/pflag"
)

func main() {
	var (
		configPath = flag.StringP("config", "c", "", "Path to YAML configuration file (or set CFDNS_CONFIG)")
		host       = flag.String("host", "", "Override bind host")
		port       = flag.IntP("port", "p", 0, "Override bind port")
		uiDir      = flag.String("ui-dir", "", "Serve a built browser UI from this directory")
		origins    = flag.StringSlice("allowed-origin", nil, "Allowed CORS origin (repeatable)")
		jsonLogs   = flag.Bool("json-logs", false, "Enable JSON structured logging")
		debug      = flag.Bool("debug", false, "Enable debug logging")
	)
	flag.Parse()

	cfg, err := config.Load(config.ResolveConfigPath(*configPath))
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	if *host != "" {
		cfg.Server.Host = *host
	}
	if *port != 0 {
		cfg.Server.Port = *port
	}
	if *uiDir != "" {
		cfg.UI.Dir = *uiDir
	}
	if len(*origins) > 0 {
		cfg.CORS.AllowedOrigins = *origins
	}
	if *jsonLogs {
		cfg.Logging.Structured = true
		cfg.Logging.StructuredFormat = "json"
	}
	if *debug {
		cfg.Logging.Level = "DEBUG"
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "invalid configuration: %v\n", err)
		os.Exit(1)
	}

	logger := logging.Configure(logging.Config{
		Level:            cfg.Logging.Level,
		Structured:       cfg.Logging.Structured,
		StructuredFormat: cfg.Logging.StructuredFormat,
		IncludePID:       cfg.Logging.IncludePID,
		ExtraFields:      cfg.Logging.ExtraFields,
	})

	runner := server.NewRunner(logger)
	if err := runner.Run(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "server exited with error: %v\n", err)
		os.Exit(1)
	}
}
