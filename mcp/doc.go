// Package mcp exposes the image pipeline as MCP (Model Context Protocol)
// tools: generate_image, edit_image, and create_image_variation.
//
// Each tool call runs the same path: the raw argument map is parsed and
// validated, a backend is selected by capability scoring with fallback, and
// the backend's operation result is mapped to MCP contents. Validation
// failures surface as tool errors listing every violation.
//
// Serve over stdio for subprocess-based MCP clients:
//
//	registry := selection.NewRegistry(openai.NewFactory(), google.NewFactory())
//	service := mcp.NewService(registry)
//	if err := mcp.ServeStdio(service); err != nil {
//	    log.Fatal(err)
//	}
package mcp
