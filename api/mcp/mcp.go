// Package mcp provides an MCP (Model Context Protocol) server exposing the
// rizz translation pipeline as a tool.
package mcp

import (
	"context"
	"errors"
	"net/http"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"go.uber.org/zap"

	"github.com/papercomputeco/rizz/pkg/utils"
)

// Translator runs the translation pipeline for a single request.
type Translator interface {
	Translate(ctx context.Context, input string, contextText *string) (string, error)
}

type Config struct {
	// Translator backs the translate tool
	Translator Translator

	// Logger is the configured zap logger
	Logger *zap.Logger
}

type Server struct {
	config    Config
	mcpServer *mcp.Server
	handler   *mcp.StreamableHTTPHandler
}

// NewServer creates a new MCP server with the translate tool.
func NewServer(c Config) (*Server, error) {
	if c.Translator == nil {
		return nil, errors.New("translator is required")
	}
	if c.Logger == nil {
		return nil, errors.New("logger is required")
	}

	s := &Server{
		config: c,
	}

	mcpServer := mcp.NewServer(
		&mcp.Implementation{
			Name:    "rizz",
			Version: utils.Version,
		},
		&mcp.ServerOptions{},
	)

	mcp.AddTool(mcpServer, &mcp.Tool{
		Name:        translateToolName,
		Description: translateDescription,
	}, s.handleTranslate)

	s.mcpServer = mcpServer

	// Create a streamable HTTP net/http handler for stateless operations
	s.handler = mcp.NewStreamableHTTPHandler(
		func(_ *http.Request) *mcp.Server {
			return mcpServer
		},
		&mcp.StreamableHTTPOptions{
			Stateless: true,
		},
	)

	return s, nil
}

// Handler returns the HTTP handler for the MCP server.
func (s *Server) Handler() http.Handler {
	return s.handler
}

// MCPServer returns the underlying MCP server, e.g. for in-memory transports.
func (s *Server) MCPServer() *mcp.Server {
	return s.mcpServer
}
