package app

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"marios/internal/config"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestModeString(t *testing.T) {
	assert.Equal(t, "desktop", ModeDesktop.String())
	assert.Equal(t, "serve", ModeServe.String())
	assert.Equal(t, "replay", ModeReplay.String())
	assert.Equal(t, "unknown", Mode(42).String())
}

func TestConfig_ApplyOverrides(t *testing.T) {
	tests := []struct {
		name        string
		cfg         Config
		wantMobile  bool
		wantSkip    bool
		wantEnabled bool
	}{
		{name: "no overrides"},
		{name: "force mobile", cfg: Config{ForceMobile: true}, wantMobile: true},
		{name: "skip boot", cfg: Config{NoBoot: true}, wantSkip: true},
		{name: "mcp flag", cfg: Config{MCP: true}, wantEnabled: true},
		{name: "serve always enables mcp", cfg: Config{Mode: ModeServe}, wantEnabled: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mc := config.GetDefaultConfig()
			cfg := tt.cfg
			cfg.MariosConfig = &mc
			cfg.applyOverrides()
			assert.Equal(t, tt.wantMobile, mc.Desktop.IsForceMobile())
			assert.Equal(t, tt.wantSkip, mc.Boot.Skipped())
			assert.Equal(t, tt.wantEnabled, mc.MCP.IsEnabled())
		})
	}
}

func TestNewApplication_ConfigErrors(t *testing.T) {
	dir := t.TempDir()

	cfg := NewConfig(ModeReplay, false, filepath.Join(dir, "missing.yaml"))
	cfg.Output = &bytes.Buffer{}
	_, err := NewApplication(cfg)
	assert.Error(t, err)

	bad := writeFile(t, dir, "bad.yaml", "desktop:\n  defaultWindow: nowhere\n")
	cfg = NewConfig(ModeReplay, false, bad)
	cfg.Output = &bytes.Buffer{}
	_, err = NewApplication(cfg)
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestRun_Replay(t *testing.T) {
	dir := t.TempDir()
	cfgPath := writeFile(t, dir, "config.yaml", "boot:\n  skip: true\n")
	scriptPath := writeFile(t, dir, "demo.yaml", `
name: demo
steps:
  - click: about
  - key: alt+tab
  - expect: {active: terminal-main}
`)

	var out bytes.Buffer
	cfg := NewConfig(ModeReplay, false, cfgPath)
	cfg.ScriptPath = scriptPath
	cfg.Output = &out
	cfg.NoColor = true

	application, err := NewApplication(cfg)
	require.NoError(t, err)
	require.NoError(t, application.Run(context.Background()))

	text := out.String()
	assert.Contains(t, text, "click about")
	assert.Contains(t, text, "active=about")
	assert.Contains(t, text, "active=terminal-main")
	assert.Contains(t, text, "VISIBILITY")
}

func TestRun_ReplayFailingExpectation(t *testing.T) {
	dir := t.TempDir()
	cfgPath := writeFile(t, dir, "config.yaml", "boot:\n  skip: true\n")
	scriptPath := writeFile(t, dir, "fail.yaml", `
steps:
  - expect: {active: about}
`)

	var out bytes.Buffer
	cfg := NewConfig(ModeReplay, false, cfgPath)
	cfg.ScriptPath = scriptPath
	cfg.Output = &out
	cfg.NoColor = true

	application, err := NewApplication(cfg)
	require.NoError(t, err)
	err = application.Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "active window")
	// The final state is still printed.
	assert.Contains(t, out.String(), "terminal-main")
}
