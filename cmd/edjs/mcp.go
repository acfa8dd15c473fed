// ABOUTME: MCP command for serving documents to AI agents.
// ABOUTME: Runs the MCP server over stdio.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/deathau/editorjs-playground/internal/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Run the MCP server",
	Long:  `Serve documents over the Model Context Protocol on stdio, for use by AI agents.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		server := mcp.NewServer(dbConn)
		if err := server.Serve(cmd.Context()); err != nil {
			return fmt.Errorf("MCP server failed: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
