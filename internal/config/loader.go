package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"marios/pkg/logging"
)

// For mocking in tests
var osUserHomeDir = os.UserHomeDir
var osGetwd = os.Getwd

const (
	userConfigDir    = ".config/marios"
	projectConfigDir = ".marios"
	configFileName   = "config.yaml"
)

// LoadConfig loads the marios configuration by layering default, user, and
// project settings.
func LoadConfig() (MariosConfig, error) {
	config := GetDefaultConfig()

	userConfigPath, err := getUserConfigPath()
	if err != nil {
		// User config is optional.
		logging.Warn("Config", "Could not determine user config path: %v", err)
	} else if config, err = overlayIfExists(config, userConfigPath); err != nil {
		return MariosConfig{}, fmt.Errorf("error loading user config from %s: %w", userConfigPath, err)
	}

	projectConfigPath, err := getProjectConfigPath()
	if err != nil {
		logging.Warn("Config", "Could not determine project config path: %v", err)
	} else if config, err = overlayIfExists(config, projectConfigPath); err != nil {
		return MariosConfig{}, fmt.Errorf("error loading project config from %s: %w", projectConfigPath, err)
	}

	if err := Validate(config); err != nil {
		return MariosConfig{}, err
	}
	return config, nil
}

// LoadConfigFromPath layers a single explicit file over the defaults. The
// user and project files are not consulted.
func LoadConfigFromPath(path string) (MariosConfig, error) {
	overlay, err := loadConfigFromFile(path)
	if err != nil {
		return MariosConfig{}, fmt.Errorf("error loading config from %s: %w", path, err)
	}
	config := mergeConfigs(GetDefaultConfig(), overlay)
	if err := Validate(config); err != nil {
		return MariosConfig{}, err
	}
	return config, nil
}

func overlayIfExists(base MariosConfig, path string) (MariosConfig, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return base, nil
	}
	overlay, err := loadConfigFromFile(path)
	if err != nil {
		return base, err
	}
	logging.Debug("Config", "Applied configuration from %s", path)
	return mergeConfigs(base, overlay), nil
}

var getUserConfigPath = func() (string, error) {
	homeDir, err := osUserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, userConfigDir, configFileName), nil
}

var getProjectConfigPath = func() (string, error) {
	wd, err := osGetwd()
	if err != nil {
		return "", err
	}
	return filepath.Join(wd, projectConfigDir, configFileName), nil
}

// loadConfigFromFile loads a MariosConfig from a YAML file.
func loadConfigFromFile(filePath string) (MariosConfig, error) {
	var config MariosConfig
	data, err := os.ReadFile(filePath)
	if err != nil {
		return MariosConfig{}, err
	}
	if err := yaml.Unmarshal(data, &config); err != nil {
		return MariosConfig{}, err
	}
	return config, nil
}

// mergeConfigs merges 'overlay' config into 'base' config. Scalars override
// when set, booleans whenever the overlay names them (so false switches a
// flag off); windows are matched by id and replaced in place, new ones are
// appended.
func mergeConfigs(base, overlay MariosConfig) MariosConfig {
	merged := base

	d, o := &merged.Desktop, overlay.Desktop
	if o.DefaultWindow != "" {
		d.DefaultWindow = o.DefaultWindow
	}
	if o.MobileBreakpoint != 0 {
		d.MobileBreakpoint = o.MobileBreakpoint
	}
	if o.StatusBarHeight != 0 {
		d.StatusBarHeight = o.StatusBarHeight
	}
	if o.TaskbarHeight != 0 {
		d.TaskbarHeight = o.TaskbarHeight
	}
	if o.ZBaseline != 0 {
		d.ZBaseline = o.ZBaseline
	}
	if o.ForceMobile != nil {
		d.ForceMobile = o.ForceMobile
	}
	if o.Strict != nil {
		d.Strict = o.Strict
	}

	merged.Windows = append([]WindowDefinition(nil), base.Windows...)
	index := make(map[string]int, len(merged.Windows))
	for i, w := range merged.Windows {
		index[w.ID] = i
	}
	for _, w := range overlay.Windows {
		if i, ok := index[w.ID]; ok {
			merged.Windows[i] = w
			continue
		}
		index[w.ID] = len(merged.Windows)
		merged.Windows = append(merged.Windows, w)
	}

	if len(overlay.Keys.Cycle) > 0 {
		merged.Keys.Cycle = overlay.Keys.Cycle
	}
	if len(overlay.Keys.Minimize) > 0 {
		merged.Keys.Minimize = overlay.Keys.Minimize
	}

	if overlay.Boot.Skip != nil {
		merged.Boot.Skip = overlay.Boot.Skip
	}
	if overlay.Boot.Duration != 0 {
		merged.Boot.Duration = overlay.Boot.Duration
	}

	c, oc := &merged.Contact, overlay.Contact
	if oc.Endpoint != "" {
		c.Endpoint = oc.Endpoint
	}
	if oc.AccessKey != "" {
		c.AccessKey = oc.AccessKey
	}
	if oc.Email != "" {
		c.Email = oc.Email
	}
	if oc.Timeout != 0 {
		c.Timeout = oc.Timeout
	}
	if oc.Retries != 0 {
		c.Retries = oc.Retries
	}

	if overlay.MCP.Enabled != nil {
		merged.MCP.Enabled = overlay.MCP.Enabled
	}
	if overlay.MCP.Host != "" {
		merged.MCP.Host = overlay.MCP.Host
	}
	if overlay.MCP.Port != 0 {
		merged.MCP.Port = overlay.MCP.Port
	}

	if overlay.Updates.Repository != "" {
		merged.Updates.Repository = overlay.Updates.Repository
	}

	return merged
}

// GetUserConfigDir returns the user configuration directory path
func GetUserConfigDir() (string, error) {
	homeDir, err := osUserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, userConfigDir), nil
}
