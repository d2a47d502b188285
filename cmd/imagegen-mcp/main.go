// Command imagegen-mcp is an MCP server that exposes image generation,
// editing, and variation tools over stdio.
//
// Usage:
//
//	go run ./cmd/imagegen-mcp
//
// Configuration for Claude Desktop (~/Library/Application Support/Claude/claude_desktop_config.json):
//
//	{
//	    "mcpServers": {
//	        "imagegen": {
//	            "command": "imagegen-mcp",
//	            "env": {
//	                "OPENAI_API_KEY": "...",
//	                "GEMINI_API_KEY": "..."
//	            }
//	        }
//	    }
//	}
//
// Backends are registered unconditionally; availability is re-checked per
// request from the environment, so a key added later is picked up without a
// restart when the process environment changes.
package main

import (
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	imagegen "github.com/AIGeekSquad/image-generator-sub000"
	"github.com/AIGeekSquad/image-generator-sub000/mcp"
	"github.com/AIGeekSquad/image-generator-sub000/provider/google"
	"github.com/AIGeekSquad/image-generator-sub000/provider/openai"
	"github.com/AIGeekSquad/image-generator-sub000/selection"
)

func main() {
	// Best effort; the process environment is authoritative.
	_ = godotenv.Load()

	// stdout carries the MCP protocol; all diagnostics go to stderr.
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
		With().Timestamp().Logger()
	if os.Getenv("IMAGEGEN_DEBUG") != "" {
		logger = logger.Level(zerolog.DebugLevel)
	} else {
		logger = logger.Level(zerolog.InfoLevel)
	}

	httpClient := &http.Client{Timeout: 120 * time.Second}
	registry := selection.NewRegistry(
		openai.NewFactory(openai.WithFactoryHTTPClient(httpClient)),
		google.NewFactory(google.WithFactoryHTTPClient(httpClient)),
	)

	service := mcp.NewService(registry,
		mcp.WithEnvironment(imagegen.OSEnvironment()),
		mcp.WithLogger(logger),
	)

	if err := mcp.ServeStdio(service,
		mcp.WithName("imagegen-mcp"),
		mcp.WithVersion("1.0.0"),
	); err != nil {
		logger.Fatal().Err(err).Msg("mcp server exited")
	}
}
