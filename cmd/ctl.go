package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"marios/internal/agent"
	"marios/internal/cli"
	"marios/internal/mcpserver"
)

var (
	ctlEndpoint string
	ctlTimeout  time.Duration
	ctlOutput   string
	ctlNoColor  bool
	ctlREPL     bool
)

func newCtlCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ctl [tool] [key=value...]",
		Short: "Call a control tool on a running desktop",
		Long: `Connects to the MCP control server of 'marios serve' or 'marios boot --mcp'
and calls one tool. Without a tool name the available tools are listed.
With --repl an interactive shell is started instead.

Examples:
  marios ctl get_state
  marios ctl open_window id=about
  marios ctl resize_viewport width=60 height=30

By default the endpoint is built from mcp.host and mcp.port of the loaded
configuration. Use --endpoint to override it.`,
		RunE: runCtl,
	}
	cmd.Flags().StringVar(&ctlEndpoint, "endpoint", "", "Control server SSE endpoint (default: from config)")
	cmd.Flags().DurationVar(&ctlTimeout, "timeout", 10*time.Second, "Timeout for the call")
	cmd.Flags().StringVarP(&ctlOutput, "output", "o", string(cli.OutputFormatTable), "Output format (table, json, yaml)")
	cmd.Flags().BoolVar(&ctlNoColor, "no-color", false, "Disable colored output")
	cmd.Flags().BoolVar(&ctlREPL, "repl", false, "Start an interactive shell")
	return cmd
}

func runCtl(cmd *cobra.Command, args []string) error {
	format, err := cli.ParseOutputFormat(ctlOutput)
	if err != nil {
		return err
	}
	endpoint, err := ctlEndpointURL()
	if err != nil {
		return err
	}

	var toolArgs map[string]interface{}
	if len(args) > 1 {
		toolArgs, err = mcpserver.ParseArgs(args[1:])
		if err != nil {
			return err
		}
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	out := cmd.OutOrStdout()
	options := cli.PrinterOptions{Format: format, NoColor: ctlNoColor}

	if ctlREPL {
		ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
		defer stop()
		client, err := dialControl(ctx, endpoint)
		if err != nil {
			return err
		}
		defer client.Close()
		return agent.NewREPL(client, out, options).Run(ctx)
	}

	ctx, cancel := context.WithTimeout(ctx, ctlTimeout)
	defer cancel()

	client, err := dialControl(ctx, endpoint)
	if err != nil {
		return err
	}
	defer client.Close()

	if len(args) == 0 {
		tools, err := client.ListTools(ctx)
		if err != nil {
			return err
		}
		for _, name := range tools {
			fmt.Fprintln(out, name)
		}
		return nil
	}

	result, err := client.Call(ctx, args[0], toolArgs)
	if err != nil {
		return err
	}
	return cli.NewPrinter(out, options).PrintToolResult(result)
}

func dialControl(ctx context.Context, endpoint string) (*mcpserver.Client, error) {
	client, err := mcpserver.Dial(ctx, endpoint, rootCmd.Version)
	if err != nil {
		return nil, fmt.Errorf("is the desktop running with --mcp? %w", err)
	}
	return client, nil
}

func ctlEndpointURL() (string, error) {
	if ctlEndpoint != "" {
		return ctlEndpoint, nil
	}
	cfg, err := loadConfig()
	if err != nil {
		return "", err
	}
	return mcpserver.Endpoint(cfg.MCP), nil
}
