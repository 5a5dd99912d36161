package main

import (
	"context"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"

	"leafcare/internal/logging"
	mcpserver "leafcare/internal/mcp"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MCP server over stdio",
	Long: `Starts an MCP server over stdin/stdout exposing identify_plant,
identify_image, diagnose_plant, list_catalog and plant_history.

The server monitors its parent process. When the client disconnects or
restarts, the server shuts itself down.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func runServe(cmd *cobra.Command, _ []string) error {
	app, err := openApp(false)
	if err != nil {
		return err
	}
	defer app.Close()

	srv := mcpserver.NewServer(app.Service, version)

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	mcpserver.WatchParent(ctx, cancel)

	logging.New("mcp").Info("starting leafcare MCP server over stdio (parent watchdog active)",
		"entries", len(app.Entries), "store", app.Store != nil)
	return srv.MCPServer.Run(ctx, &sdkmcp.StdioTransport{})
}
