package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	mcpserver "github.com/First008/searchsizer/internal/mcp"
	"github.com/First008/searchsizer/internal/server"
	"github.com/rs/zerolog"
)

func main() {
	// Parse command line flags
	port := flag.Int("port", 8080, "HTTP listen port")
	flag.Parse()

	// Setup logging
	logger := setupLogger()

	// Check mode (HTTP or MCP stdio)
	mode := os.Getenv("MODE")
	if mode == "" {
		mode = "http" // Default to HTTP
	}

	logger.Info().
		Str("mode", mode).
		Msg("Starting searchsizer")

	switch mode {
	case "mcp":
		// MCP stdio mode for assistant integration
		startMCP(logger)

	case "http":
		// HTTP API mode
		startHTTP(*port, logger)

	default:
		logger.Fatal().Str("mode", mode).Msg("Unknown mode. Use 'http' or 'mcp'")
	}
}

// startHTTP starts the estimator behind the HTTP API
func startHTTP(port int, logger zerolog.Logger) {
	srv := server.New(port, logger)
	if err := srv.Start(); err != nil {
		logger.Fatal().Err(err).Msg("Server failed")
	}
}

// startMCP starts the estimator as an MCP stdio server
func startMCP(logger zerolog.Logger) {
	printBanner()

	mcpServer, err := mcpserver.New(logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to create MCP server")
	}

	ctx := context.Background()
	if err := mcpServer.ServeStdio(ctx); err != nil {
		logger.Fatal().Err(err).Msg("MCP server failed")
	}
}

// printBanner writes the startup banner to stderr; stdout belongs to the
// MCP stdio transport.
func printBanner() {
	fmt.Fprintln(os.Stderr, "\n🛠️  Hardware Sizing Calculator Server is running!")
	fmt.Fprintln(os.Stderr, "\nProvide the model with a detailed scenario to get a hardware estimate.")
	fmt.Fprintln(os.Stderr, "\nExample queries you can ask:")
	fmt.Fprintln(os.Stderr, "- 'Calculate hardware needs for 1M documents with 1536-dim vectors and some string fields.'")
	fmt.Fprintln(os.Stderr, "- 'I have 10 million documents, each with 5 embedded comments. What sizing do I need for high QPS?'")
	fmt.Fprintln(os.Stderr, "- 'Give me a hardware estimate for a lexical-only setup with 50M documents and heavy autocomplete usage.'")
}

// setupLogger configures zerolog
func setupLogger() zerolog.Logger {
	// Pretty console output on stderr
	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
	}

	return zerolog.New(output).
		With().
		Timestamp().
		Logger()
}
