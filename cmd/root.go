package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"marios/internal/app"
	"marios/internal/config"
)

var (
	// configPath overrides the layered configuration lookup.
	configPath string
	// debug enables verbose logging across the application.
	debug bool
)

// rootCmd represents the base command when called without any subcommands.
// Without a subcommand it boots the desktop.
var rootCmd = &cobra.Command{
	Use:   "marios",
	Short: "A hacker OS desktop for your terminal",
	Long: `marios is a portfolio desktop that lives in the terminal: draggable
windows with title bar buttons, a taskbar of launchers, a system monitor
and a contact form. Narrow terminals switch to a mobile layout that shows
one fullscreen app at a time.

The window manager can also run headless behind an MCP control server
(marios serve) or replay scripted input (marios replay).`,
	Args: cobra.NoArgs,
	// SilenceUsage is set to true to prevent printing usage message on errors
	// handled by us (e.g. invalid configuration)
	SilenceUsage: true,
	RunE:         runBoot,
}

// SetVersion sets the version for the root command
func SetVersion(v string) {
	rootCmd.Version = v // Set cobra's version field as well
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	// Set up version template
	rootCmd.SetVersionTemplate(`{{printf "marios version %s\n" .Version}}`)

	err := rootCmd.Execute()
	if err != nil {
		// Cobra prints the error, we just exit non-zero
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Configuration file (default: layered ~/.config/marios and ./.marios)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging")
	addBootFlags(rootCmd)

	rootCmd.AddCommand(newBootCmd())
	rootCmd.AddCommand(newServeCmd())
	rootCmd.AddCommand(newReplayCmd())
	rootCmd.AddCommand(newWindowsCmd())
	rootCmd.AddCommand(newCtlCmd())
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newSelfUpdateCmd())
}

// runApplication bootstraps the application in the given mode and runs it
// until it finishes or the command context is cancelled.
func runApplication(cmd *cobra.Command, cfg *app.Config) error {
	cfg.Version = cmd.Root().Version
	application, err := app.NewApplication(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	return application.Run(ctx)
}

// loadConfig loads the configuration the same way the application does.
func loadConfig() (config.MariosConfig, error) {
	if configPath != "" {
		return config.LoadConfigFromPath(configPath)
	}
	return config.LoadConfig()
}
