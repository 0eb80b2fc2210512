// Package toolserver wraps the MCP server machinery behind a small
// registry surface so services can attach their tools without caring
// about the transport they end up served over.
package toolserver

import (
	"log/slog"
	"net/http"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// Registry is what a service sees at registration time. Registration
// happens once at server construction, there is no global registry.
type Registry interface {
	AddTool(tool mcp.Tool, handler server.ToolHandlerFunc)
}

type Server struct {
	mcp *server.MCPServer
}

func New(name, version string) *Server {
	return &Server{
		mcp: server.NewMCPServer(
			name,
			version,
			server.WithToolCapabilities(false),
			server.WithRecovery(),
		),
	}
}

func (s *Server) AddTool(tool mcp.Tool, handler server.ToolHandlerFunc) {
	s.mcp.AddTool(tool, handler)
}

// ServeStdio blocks until stdin closes. All logging must already be
// pointed at stderr, stdout carries the protocol.
func (s *Server) ServeStdio() error {
	slog.Info("serving tools over stdio")
	return server.ServeStdio(s.mcp)
}

// StreamableHandler exposes the streamable HTTP transport for mounting
// onto a mux.
func (s *Server) StreamableHandler() http.Handler {
	return server.NewStreamableHTTPServer(s.mcp)
}
