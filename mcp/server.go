package mcp

import (
	"github.com/mark3labs/mcp-go/server"
)

// ServerOption configures a Server.
type ServerOption func(*serverConfig)

type serverConfig struct {
	name    string
	version string
}

// WithName sets the server name reported to MCP clients.
func WithName(name string) ServerOption {
	return func(c *serverConfig) {
		c.name = name
	}
}

// WithVersion sets the server version reported to MCP clients.
func WithVersion(version string) ServerOption {
	return func(c *serverConfig) {
		c.version = version
	}
}

// NewServer creates an MCP server exposing the service's image tools.
func NewServer(service *Service, opts ...ServerOption) *server.MCPServer {
	cfg := &serverConfig{
		name:    "imagegen-mcp",
		version: "1.0.0",
	}
	for _, opt := range opts {
		opt(cfg)
	}

	s := server.NewMCPServer(
		cfg.name,
		cfg.version,
		server.WithToolCapabilities(true),
	)

	tools := Tools()
	s.AddTool(tools[0], service.HandleGenerate)
	s.AddTool(tools[1], service.HandleEdit)
	s.AddTool(tools[2], service.HandleVariation)

	return s
}

// ServeStdio starts an MCP server that communicates over stdin/stdout.
// This is the standard transport for MCP servers invoked as subprocesses.
func ServeStdio(service *Service, opts ...ServerOption) error {
	return server.ServeStdio(NewServer(service, opts...))
}
