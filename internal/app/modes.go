package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"marios/internal/cli"
	"marios/internal/mcpserver"
	"marios/internal/notify"
	"marios/internal/script"
	"marios/internal/tui/controller"
	"marios/internal/tui/model"
	"marios/internal/wm"
	"marios/pkg/logging"
)

const shutdownTimeout = 5 * time.Second

// runDesktopMode runs the interactive terminal desktop, with the MCP control
// server attached when enabled.
func runDesktopMode(ctx context.Context, config *Config, services *Services) error {
	logging.Info("CLI", "Starting desktop...")

	// Switch logging to channel-based system for TUI integration
	logLevel := logging.LevelInfo
	if config.Debug {
		logLevel = logging.LevelDebug
	}
	logChan := logging.InitForTUI(logLevel)
	defer logging.CloseTUIChannel()

	opts, err := config.MariosConfig.ManagerOptions()
	if err != nil {
		return err
	}
	m, err := model.InitializeModel(model.Config{
		Desktop:    *config.MariosConfig,
		Options:    opts,
		Bus:        services.Bus,
		Contact:    services.Contact,
		LogChannel: logChan,
		DebugMode:  config.Debug,
	})
	if err != nil {
		logging.Error("TUI-Lifecycle", err, "Error creating desktop")
		return err
	}

	p := controller.NewProgram(m)

	if config.MariosConfig.MCP.IsEnabled() {
		srv := mcpserver.NewServer(p, config.MariosConfig.MCP, config.Version)
		if err := srv.Start(ctx); err != nil {
			return err
		}
		defer stopServer(srv)
	}

	// Run the desktop until the user exits
	if err := p.Run(ctx); err != nil {
		logging.Error("TUI-Lifecycle", err, "Error running desktop")
		return err
	}
	logging.Info("TUI-Lifecycle", "Desktop exited.")
	return nil
}

// runServeMode keeps a headless window manager running behind the MCP
// server until interrupted.
func runServeMode(ctx context.Context, config *Config, services *Services) error {
	logging.Info("CLI", "Running headless window manager.")

	mgr, err := newHeadlessManager(config, services.Bus, nil)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	loop := mcpserver.NewLoop(mgr)
	go loop.Run(ctx)

	srv := mcpserver.NewServer(loop, config.MariosConfig.MCP, config.Version)
	if err := srv.Start(ctx); err != nil {
		return err
	}
	logging.Info("CLI", "Control server ready at %s. Press Ctrl+C to stop.", srv.Endpoint())

	<-ctx.Done()

	logging.Info("CLI", "--- Shutting down ---")
	stopServer(srv)
	return nil
}

// runReplayMode plays a script against a headless window manager and prints
// every step followed by the final state.
func runReplayMode(ctx context.Context, config *Config, services *Services) error {
	s, err := script.Load(config.ScriptPath)
	if err != nil {
		return err
	}

	mgr, err := newHeadlessManager(config, services.Bus, &s)
	if err != nil {
		return err
	}

	out := config.output()
	player := script.NewPlayer(mgr, func(i int, step script.Step, snap wm.Snapshot) {
		active := snap.Active
		if active == "" {
			active = "-"
		}
		fmt.Fprintf(out, "%3d  %-28s active=%s mode=%s\n", i+1, step, active, snap.Mode)
	})

	final, runErr := player.Run(ctx, s)
	printer := cli.NewPrinter(out, cli.PrinterOptions{Format: config.Format, NoColor: config.NoColor})
	if err := printer.PrintSnapshot(final); err != nil {
		return err
	}
	return runErr
}

// newHeadlessManager builds a window manager without a terminal. The
// viewport is the default terminal size unless the script sets one.
func newHeadlessManager(config *Config, bus notify.Bus, s *script.Script) (*wm.Manager, error) {
	opts, err := config.MariosConfig.ManagerOptions()
	if err != nil {
		return nil, err
	}
	opts.Viewport = wm.Size{W: model.DefaultViewportWidth, H: model.DefaultViewportHeight}
	if s != nil {
		opts = s.Apply(opts)
	}
	opts.Notifier = notify.WindowManagerNotifier(bus)

	mgr, err := wm.NewManager(opts, config.MariosConfig.WindowSpecs())
	if err != nil {
		return nil, fmt.Errorf("failed to create window manager: %w", err)
	}
	return mgr, nil
}

func stopServer(srv *mcpserver.Server) {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Stop(ctx); err != nil {
		logging.Warn("CLI", "Failed to stop control server: %v", err)
	}
}
