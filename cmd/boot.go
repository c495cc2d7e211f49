package cmd

import (
	"github.com/spf13/cobra"

	"marios/internal/app"
)

var (
	bootMobile bool
	bootSkip   bool
	bootMCP    bool
)

func newBootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "boot",
		Aliases: []string{"desktop"},
		Short:   "Boot the desktop",
		Long: `Boots the interactive desktop in the alternate screen.

Windows open from the taskbar (click, or press 1-9), move by dragging the
title bar, and close, minimize or maximize with the title bar buttons.
Alt+Tab cycles focus. Press ? on the desktop for every shortcut.

With --mcp the MCP control server runs alongside the desktop, so agents
and 'marios ctl' can drive the windows you are looking at.`,
		Args: cobra.NoArgs,
		RunE: runBoot,
	}
	addBootFlags(cmd)
	return cmd
}

func addBootFlags(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&bootMobile, "mobile", false, "Use the mobile layout regardless of terminal width")
	cmd.Flags().BoolVar(&bootSkip, "no-boot", false, "Skip the boot screen")
	cmd.Flags().BoolVar(&bootMCP, "mcp", false, "Start the MCP control server alongside the desktop")
}

func runBoot(cmd *cobra.Command, args []string) error {
	cfg := app.NewConfig(app.ModeDesktop, debug, configPath)
	cfg.ForceMobile = bootMobile
	cfg.NoBoot = bootSkip
	cfg.MCP = bootMCP
	return runApplication(cmd, cfg)
}
