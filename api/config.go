// Package api provides the rizz web server: the translation form, static
// assets, health and metrics endpoints, and the optional MCP endpoint.
package api

// Config is the API server configuration.
type Config struct {
	// StaticDir is served under /static and holds robots.txt and ads.txt
	StaticDir string

	// EnableMCP mounts the MCP translate tool at /mcp
	EnableMCP bool
}
