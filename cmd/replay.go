package cmd

import (
	"github.com/spf13/cobra"

	"marios/internal/app"
	"marios/internal/cli"
)

var (
	replayOutput  string
	replayNoColor bool
)

func newReplayCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "replay <script.yaml>",
		Short: "Replay scripted input against a headless window manager",
		Long: `Plays a YAML script of input events (launcher clicks, key presses,
pointer drags, resizes) against a fresh window manager and prints the state
after every step, followed by the final desktop state.

Scripts can contain expectations; the command fails at the first one that
does not hold. Example:

  name: open about and cycle
  steps:
    - click: about
    - key: alt+tab
    - expect: {active: terminal-main}`,
		Args: cobra.ExactArgs(1),
		RunE: runReplay,
	}
	cmd.Flags().StringVarP(&replayOutput, "output", "o", string(cli.OutputFormatTable), "Final state format (table, json, yaml)")
	cmd.Flags().BoolVar(&replayNoColor, "no-color", false, "Disable colored output")
	return cmd
}

func runReplay(cmd *cobra.Command, args []string) error {
	format, err := cli.ParseOutputFormat(replayOutput)
	if err != nil {
		return err
	}
	cfg := app.NewConfig(app.ModeReplay, debug, configPath)
	cfg.ScriptPath = args[0]
	cfg.Format = format
	cfg.NoColor = replayNoColor
	cfg.Output = cmd.OutOrStdout()
	return runApplication(cmd, cfg)
}
