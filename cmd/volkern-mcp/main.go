package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"

	"github.com/prometheus/common/promslog"

	"github.com/mark3labs/mcp-go/server"

	"github.com/volkernhq/volkern-mcp/pkg/config"
	"github.com/volkernhq/volkern-mcp/pkg/mcp"
	"github.com/volkernhq/volkern-mcp/pkg/tools"
	"github.com/volkernhq/volkern-mcp/pkg/volkern"
)

func main() {
	// Parse command line flags
	var listen = flag.String("listen", "", "Listen address for HTTP mode (e.g., :9100, 127.0.0.1:8080)")
	var configPath = flag.String("config", "", "Path to a TOML configuration file")
	var insecure = flag.Bool("insecure", false, "Skip TLS certificate verification")
	var logLevel = flag.String("log-level", "", "Log level: debug, info, warn, error")
	var logFormat = flag.String("log-format", "", "Log format: logfmt or json")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Flags take precedence over the config file and environment
	if *listen != "" {
		cfg.Listen = *listen
	}
	if *insecure {
		cfg.Insecure = true
	}
	if *logLevel != "" {
		cfg.LogLevel = *logLevel
	}
	if *logFormat != "" {
		cfg.LogFormat = *logFormat
	}

	// Configure slog with specified log level
	configureLogging(cfg.LogLevel, cfg.LogFormat)

	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	client := volkern.NewClient(cfg)
	dispatcher := tools.NewDispatcher(client)

	// Create MCP server
	mcpServer, err := mcp.NewMCPServer(dispatcher)
	if err != nil {
		log.Fatalf("Failed to create MCP server: %v", err)
	}

	slog.Info("Starting server", "APIURL", cfg.APIURL, "Listen", cfg.Listen)

	// Choose server mode based on flags
	if cfg.Listen != "" {
		// HTTP mode
		ctx := context.Background()
		if err := mcp.Serve(ctx, mcpServer, cfg.Listen); err != nil {
			log.Fatalf("HTTP server failed: %v", err)
		}
	} else {
		// Start server on stdio (default mode)
		stdioServer := server.NewStdioServer(mcpServer)
		if err := stdioServer.Listen(context.Background(), os.Stdin, os.Stdout); err != nil {
			log.Fatalf("Server failed: %v", err)
		}
	}
}

// configureLogging sets up the slog logger with the specified log level and format
func configureLogging(levelStr, formatStr string) {
	level := promslog.NewLevel()
	err := level.Set(levelStr)
	if err != nil {
		log.Fatal(err.Error())
	}

	format := promslog.NewFormat()
	err = format.Set(formatStr)
	if err != nil {
		log.Fatal(err.Error())
	}

	logger := promslog.New(&promslog.Config{
		Level:  level,
		Format: format,
		Style:  promslog.GoKitStyle,
	})
	slog.SetDefault(logger)
}
