// ABOUTME: MCP server for edjs integration with AI agents.
// ABOUTME: Provides tools for document and block-tag management.

package mcp

import (
	"context"
	"database/sql"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type Server struct {
	server *mcp.Server
	db     *sql.DB
}

func NewServer(db *sql.DB) *Server {
	s := &Server{db: db}

	s.server = mcp.NewServer(
		&mcp.Implementation{
			Name:    "edjs",
			Version: "1.0.0",
		},
		&mcp.ServerOptions{
			HasTools: true,
		},
	)

	s.registerTools()

	return s
}

func (s *Server) Serve(ctx context.Context) error {
	return s.server.Run(ctx, &mcp.StdioTransport{})
}
