package cmd

import (
	"github.com/spf13/cobra"

	"marios/internal/cli"
)

var (
	windowsOutput  string
	windowsNoColor bool
)

func newWindowsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "windows",
		Short: "List the configured windows",
		Long: `Lists the windows of the loaded configuration with their launchers,
start positions and sizes. The default window is marked with *.`,
		Args: cobra.NoArgs,
		RunE: runWindows,
	}
	cmd.Flags().StringVarP(&windowsOutput, "output", "o", string(cli.OutputFormatTable), "Output format (table, json, yaml)")
	cmd.Flags().BoolVar(&windowsNoColor, "no-color", false, "Disable colored output")
	return cmd
}

func runWindows(cmd *cobra.Command, args []string) error {
	format, err := cli.ParseOutputFormat(windowsOutput)
	if err != nil {
		return err
	}
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	p := cli.NewPrinter(cmd.OutOrStdout(), cli.PrinterOptions{Format: format, NoColor: windowsNoColor})
	return p.PrintDefinitions(cfg.Windows, cfg.Desktop.DefaultWindow)
}
