// ABOUTME: CLI command for starting MCP server.
// ABOUTME: Runs stdio-based MCP server for AI assistant integration.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/scurfo/perfdash/internal/mcp"
	"github.com/spf13/cobra"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start MCP server",
	Long: `Start the Model Context Protocol (MCP) server for AI assistant integration.

The server communicates via stdin/stdout. Add it to an MCP client config:

  {
    "mcpServers": {
      "perfdash": {
        "command": "perfdash",
        "args": ["mcp"]
      }
    }
  }

AVAILABLE TOOLS:

  list_athletes    List athletes with recorded sessions
  list_sessions    List sessions, optionally by athlete
  get_report       Compute the derived-metrics report for a session
  get_targets      Show the clinical target table
  delete_session   Delete a session by ID

AVAILABLE RESOURCES:

  perfdash://targets   Clinical target table
  perfdash://summary   Latest report for every athlete`,
	RunE: func(cmd *cobra.Command, args []string) error {
		server, err := mcp.NewServer(repo, targetTable)
		if err != nil {
			return err
		}

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		// Handle shutdown signals
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		go func() {
			<-sigChan
			cancel()
		}()

		return server.Serve(ctx)
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
