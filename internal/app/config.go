package app

import (
	"io"
	"os"

	"marios/internal/cli"
	"marios/internal/config"
)

// Mode selects what the application runs.
type Mode int

const (
	// ModeDesktop runs the interactive terminal desktop.
	ModeDesktop Mode = iota
	// ModeServe runs the window manager headless behind the MCP server.
	ModeServe
	// ModeReplay plays an input script against a headless window manager.
	ModeReplay
)

var modeNames = map[Mode]string{
	ModeDesktop: "desktop",
	ModeServe:   "serve",
	ModeReplay:  "replay",
}

// String returns the name of the mode.
func (m Mode) String() string {
	if name, ok := modeNames[m]; ok {
		return name
	}
	return "unknown"
}

// Config holds the application configuration
type Config struct {
	Mode Mode

	// Debug settings
	Debug bool

	// ConfigPath overrides the layered configuration lookup.
	ConfigPath string

	// Command line overrides of the loaded configuration
	ForceMobile bool
	NoBoot      bool
	MCP         bool

	// ScriptPath is the script played in ModeReplay.
	ScriptPath string

	// Format and NoColor control how replay results are printed.
	Format  cli.OutputFormat
	NoColor bool

	Version string

	// Output receives CLI logs and replay results. Defaults to os.Stdout.
	Output io.Writer

	// Loaded desktop configuration
	MariosConfig *config.MariosConfig
}

// NewConfig creates a new application configuration
func NewConfig(mode Mode, debug bool, configPath string) *Config {
	return &Config{
		Mode:       mode,
		Debug:      debug,
		ConfigPath: configPath,
		Output:     os.Stdout,
	}
}

// applyOverrides folds the command line flags into the loaded configuration.
func (c *Config) applyOverrides() {
	if c.MariosConfig == nil {
		return
	}
	if c.ForceMobile {
		c.MariosConfig.Desktop.ForceMobile = config.Bool(true)
	}
	if c.NoBoot {
		c.MariosConfig.Boot.Skip = config.Bool(true)
	}
	if c.MCP || c.Mode == ModeServe {
		c.MariosConfig.MCP.Enabled = config.Bool(true)
	}
}

func (c *Config) output() io.Writer {
	if c.Output == nil {
		return os.Stdout
	}
	return c.Output
}
