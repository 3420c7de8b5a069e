// ABOUTME: MCP server setup for the performance metrics store.
// ABOUTME: Wraps MCP server with storage Repository and target table.
package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/scurfo/perfdash/internal/storage"
	"github.com/scurfo/perfdash/internal/targets"
)

// Server wraps the MCP server with storage access and the target table.
type Server struct {
	mcpServer *mcp.Server
	repo      storage.Repository
	targets   targets.Table
}

// NewServer creates a new MCP server with the given storage and targets.
func NewServer(repo storage.Repository, table targets.Table) (*Server, error) {
	mcpServer := mcp.NewServer(
		&mcp.Implementation{
			Name:    "perfdash",
			Version: "1.0.0",
		},
		nil,
	)

	s := &Server{
		mcpServer: mcpServer,
		repo:      repo,
		targets:   table,
	}

	s.registerTools()
	s.registerResources()

	return s, nil
}

// Serve starts the MCP server using stdio transport.
func (s *Server) Serve(ctx context.Context) error {
	return s.mcpServer.Run(ctx, &mcp.StdioTransport{})
}
