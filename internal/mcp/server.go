package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/server"

	"github.com/docfinder/docfinder-mcp/internal/lookup"
	"github.com/docfinder/docfinder-mcp/internal/model"
)

const (
	// ServerName is the MCP server name.
	ServerName = "docfinder-mcp"
	// ServerVersion is the current server version.
	ServerVersion = "1.0.0"
)

// Server wraps the MCP server with the lookup engine and the object model
// it resolves against. There is no ambient global state: the composed
// server is constructed once per process and handed to a transport.
type Server struct {
	mcp    *server.MCPServer
	model  model.Model
	engine *lookup.Engine
}

// NewServer creates an MCP server over the given object model with default
// lookup options.
func NewServer(m model.Model) *Server {
	return NewServerWithOptions(m, lookup.Options{})
}

// NewServerWithOptions creates an MCP server with explicit lookup options.
func NewServerWithOptions(m model.Model, opts lookup.Options) *Server {
	s := &Server{
		mcp:    server.NewMCPServer(ServerName, ServerVersion),
		model:  m,
		engine: lookup.NewWithOptions(m, opts),
	}
	s.registerTools()
	return s
}

// ServeStdio serves the MCP protocol on stdin/stdout and blocks until the
// client disconnects.
func (s *Server) ServeStdio(ctx context.Context) error {
	return server.ServeStdio(s.mcp)
}

// ServeSSE serves the MCP protocol over Server-Sent Events on addr
// ("host:port") and blocks.
func (s *Server) ServeSSE(ctx context.Context, addr string) error {
	return server.NewSSEServer(s.mcp).Start(addr)
}

// ServeStreamableHTTP serves the MCP protocol over streamable HTTP on addr
// with the given endpoint path and blocks.
func (s *Server) ServeStreamableHTTP(ctx context.Context, addr, path string) error {
	httpServer := server.NewStreamableHTTPServer(s.mcp, server.WithEndpointPath(path))
	return httpServer.Start(addr)
}

// registerTools registers all MCP tools.
func (s *Server) registerTools() {
	s.mcp.AddTool(listComponentsTool(), s.handleListComponents)
	s.mcp.AddTool(searchAPITool(), s.handleSearchAPI)
	s.mcp.AddTool(lookupAPITool(), s.handleLookupAPI)
	s.mcp.AddTool(verifyAPITool(), s.handleVerifyAPI)
	s.mcp.AddTool(libraryVersionTool(), s.handleLibraryVersion)
	s.mcp.AddTool(debugComponentsTool(), s.handleDebugComponents)
}
