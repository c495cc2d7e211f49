package cmd

import (
	"github.com/spf13/cobra"

	"marios/internal/app"
)

var serveMobile bool

func newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the window manager headless behind the MCP control server",
		Long: `Starts the window manager without a terminal UI and exposes it through
the MCP control server (SSE transport). Agents can list, open, focus, drag
and close windows, press shortcuts and resize the viewport. Notifications
are written to the log.

The server listens on mcp.host:mcp.port from the configuration
(default localhost:8090) until interrupted with Ctrl+C.`,
		Args: cobra.NoArgs,
		RunE: runServe,
	}
	cmd.Flags().BoolVar(&serveMobile, "mobile", false, "Start in mobile mode")
	return cmd
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg := app.NewConfig(app.ModeServe, debug, configPath)
	cfg.ForceMobile = serveMobile
	cfg.Output = cmd.OutOrStdout()
	return runApplication(cmd, cfg)
}
