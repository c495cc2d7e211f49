package app

import (
	"context"
	"fmt"

	"marios/internal/config"
	"marios/pkg/logging"
)

// Application is the main application structure that bootstraps and runs marios
type Application struct {
	config   *Config
	services *Services
}

// NewApplication loads the configuration and creates the shared services.
func NewApplication(cfg *Config) (*Application, error) {
	// Configure logging based on debug flag
	appLogLevel := logging.LevelInfo
	if cfg.Debug {
		appLogLevel = logging.LevelDebug
	}

	// Initialize logging for CLI output (replaced for the desktop)
	logging.InitForCLI(appLogLevel, cfg.output())

	var mariosCfg config.MariosConfig
	var err error

	if cfg.ConfigPath != "" {
		mariosCfg, err = config.LoadConfigFromPath(cfg.ConfigPath)
		if err != nil {
			logging.Error("Bootstrap", err, "Failed to load configuration from path: %s", cfg.ConfigPath)
			return nil, fmt.Errorf("failed to load configuration from path %s: %w", cfg.ConfigPath, err)
		}
		logging.Info("Bootstrap", "Loaded configuration from custom path: %s", cfg.ConfigPath)
	} else {
		mariosCfg, err = config.LoadConfig()
		if err != nil {
			logging.Error("Bootstrap", err, "Failed to load configuration")
			return nil, fmt.Errorf("failed to load configuration: %w", err)
		}
		logging.Debug("Bootstrap", "Loaded configuration using layered approach")
	}

	cfg.MariosConfig = &mariosCfg
	cfg.applyOverrides()
	if err := config.Validate(mariosCfg); err != nil {
		return nil, err
	}

	services, err := InitializeServices(cfg)
	if err != nil {
		logging.Error("Bootstrap", err, "Failed to initialize services")
		return nil, fmt.Errorf("failed to initialize services: %w", err)
	}

	return &Application{
		config:   cfg,
		services: services,
	}, nil
}

// Run executes the application in the configured mode
func (a *Application) Run(ctx context.Context) error {
	defer a.services.Close()

	switch a.config.Mode {
	case ModeServe:
		return runServeMode(ctx, a.config, a.services)
	case ModeReplay:
		return runReplayMode(ctx, a.config, a.services)
	default:
		return runDesktopMode(ctx, a.config, a.services)
	}
}
