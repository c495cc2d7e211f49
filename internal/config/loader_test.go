package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"marios/internal/wm"
)

// mockConfigPaths points the user and project layers at files inside dir.
func mockConfigPaths(t *testing.T, dir string) (userPath, projectPath string) {
	t.Helper()
	originalGetUserConfigPath := getUserConfigPath
	originalGetProjectConfigPath := getProjectConfigPath
	t.Cleanup(func() {
		getUserConfigPath = originalGetUserConfigPath
		getProjectConfigPath = originalGetProjectConfigPath
	})

	userPath = filepath.Join(dir, "user", configFileName)
	projectPath = filepath.Join(dir, "project", configFileName)
	getUserConfigPath = func() (string, error) { return userPath, nil }
	getProjectConfigPath = func() (string, error) { return projectPath, nil }
	return userPath, projectPath
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestLoadConfig_DefaultOnly(t *testing.T) {
	mockConfigPaths(t, t.TempDir())

	loaded, err := LoadConfig()
	require.NoError(t, err)

	expected := GetDefaultConfig()
	assert.Equal(t, expected.Desktop, loaded.Desktop)
	assert.Equal(t, expected.Windows, loaded.Windows)
	assert.Equal(t, "terminal-main", loaded.Desktop.DefaultWindow)
}

func TestLoadConfig_UserOverride(t *testing.T) {
	userPath, _ := mockConfigPaths(t, t.TempDir())
	writeFile(t, userPath, `
desktop:
  defaultWindow: about
  strict: true
boot:
  skip: true
  duration: 2s
mcp:
  enabled: true
  port: 9999
`)

	loaded, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "about", loaded.Desktop.DefaultWindow)
	assert.True(t, loaded.Desktop.IsStrict())
	assert.Equal(t, 72, loaded.Desktop.MobileBreakpoint, "unset fields keep their defaults")
	assert.True(t, loaded.Boot.Skipped())
	assert.Equal(t, 2*time.Second, loaded.Boot.Duration)
	assert.True(t, loaded.MCP.IsEnabled())
	assert.Equal(t, 9999, loaded.MCP.Port)
	assert.Equal(t, DefaultMCPHost, loaded.MCP.Host)
}

func TestLoadConfig_ProjectOverridesUser(t *testing.T) {
	userPath, projectPath := mockConfigPaths(t, t.TempDir())
	writeFile(t, userPath, `
desktop:
  mobileBreakpoint: 60
contact:
  email: user@example.com
`)
	writeFile(t, projectPath, `
desktop:
  mobileBreakpoint: 90
keys:
  cycle: ["ctrl+n"]
`)

	loaded, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, 90, loaded.Desktop.MobileBreakpoint)
	assert.Equal(t, "user@example.com", loaded.Contact.Email)
	assert.Equal(t, []string{"ctrl+n"}, loaded.Keys.Cycle)
	assert.Equal(t, []string{"ctrl+m", "f9"}, loaded.Keys.Minimize)
}

func TestLoadConfig_ProjectSwitchesFlagsOff(t *testing.T) {
	userPath, projectPath := mockConfigPaths(t, t.TempDir())
	writeFile(t, userPath, `
desktop:
  forceMobile: true
  strict: true
boot:
  skip: true
mcp:
  enabled: true
`)
	writeFile(t, projectPath, `
desktop:
  forceMobile: false
  strict: false
boot:
  skip: false
mcp:
  enabled: false
`)

	loaded, err := LoadConfig()
	require.NoError(t, err)
	assert.False(t, loaded.Desktop.IsForceMobile())
	assert.False(t, loaded.Desktop.IsStrict())
	assert.False(t, loaded.Boot.Skipped())
	assert.False(t, loaded.MCP.IsEnabled())

	opts, err := loaded.ManagerOptions()
	require.NoError(t, err)
	assert.False(t, opts.Hints.ForceMobile)
	assert.False(t, opts.Strict)
}

func TestLoadConfig_UnsetFlagsKeepLowerLayer(t *testing.T) {
	userPath, projectPath := mockConfigPaths(t, t.TempDir())
	writeFile(t, userPath, "mcp:\n  enabled: true\n")
	writeFile(t, projectPath, "mcp:\n  port: 9100\n")

	loaded, err := LoadConfig()
	require.NoError(t, err)
	assert.True(t, loaded.MCP.IsEnabled())
	assert.Equal(t, 9100, loaded.MCP.Port)
}

func TestLoadConfig_WindowsMergeByID(t *testing.T) {
	_, projectPath := mockConfigPaths(t, t.TempDir())
	writeFile(t, projectPath, `
windows:
  - id: about
    title: whoami
    x: 1
    y: 2
    width: 30
    height: 10
  - id: blog
    title: blog.md
    launcher: posts
    x: 5
    y: 5
    width: 40
    height: 12
`)

	loaded, err := LoadConfig()
	require.NoError(t, err)

	var ids []string
	for _, w := range loaded.Windows {
		ids = append(ids, w.ID)
	}
	assert.Equal(t, []string{"terminal-main", "about", "projects", "skills", "contact", "blog"}, ids)

	about, ok := loaded.Window("about")
	require.True(t, ok)
	assert.Equal(t, "whoami", about.Title)
	assert.Equal(t, 30, about.Width)

	blog, ok := loaded.Window("blog")
	require.True(t, ok)
	assert.Equal(t, "posts", blog.LauncherID())
}

func TestLoadConfig_InvalidYAML(t *testing.T) {
	userPath, _ := mockConfigPaths(t, t.TempDir())
	writeFile(t, userPath, "desktop: [not, a, map")

	_, err := LoadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error loading user config")
}

func TestLoadConfig_UnresolvablePathsAreSkipped(t *testing.T) {
	originalGetUserConfigPath := getUserConfigPath
	originalGetProjectConfigPath := getProjectConfigPath
	defer func() {
		getUserConfigPath = originalGetUserConfigPath
		getProjectConfigPath = originalGetProjectConfigPath
	}()
	getUserConfigPath = func() (string, error) { return "", os.ErrNotExist }
	getProjectConfigPath = func() (string, error) { return "", os.ErrPermission }

	loaded, err := LoadConfig()
	require.NoError(t, err)
	assert.Len(t, loaded.Windows, len(GetDefaultConfig().Windows))
}

func TestLoadConfigFromPath(t *testing.T) {
	dir := t.TempDir()
	userPath, _ := mockConfigPaths(t, dir)
	writeFile(t, userPath, "desktop:\n  defaultWindow: skills\n")

	explicit := filepath.Join(dir, "explicit.yaml")
	writeFile(t, explicit, "desktop:\n  forceMobile: true\n")

	loaded, err := LoadConfigFromPath(explicit)
	require.NoError(t, err)
	assert.True(t, loaded.Desktop.IsForceMobile())
	assert.Equal(t, "terminal-main", loaded.Desktop.DefaultWindow, "user layer is not consulted")

	_, err = LoadConfigFromPath(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}

func TestGetUserConfigDir(t *testing.T) {
	originalOsUserHomeDir := osUserHomeDir
	defer func() { osUserHomeDir = originalOsUserHomeDir }()
	osUserHomeDir = func() (string, error) { return "/home/mari", nil }

	dir, err := GetUserConfigDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/home/mari", ".config", "marios"), dir)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *MariosConfig)
		wantErr string
	}{
		{"defaults", func(c *MariosConfig) {}, ""},
		{"no windows", func(c *MariosConfig) { c.Windows = nil }, "no windows"},
		{"missing id", func(c *MariosConfig) { c.Windows[1].ID = "" }, "has no id"},
		{"duplicate id", func(c *MariosConfig) { c.Windows[1].ID = "terminal-main" }, "duplicate window id"},
		{"duplicate launcher", func(c *MariosConfig) { c.Windows[1].Launcher = "terminal" }, "launcher \"terminal\""},
		{"zero size", func(c *MariosConfig) { c.Windows[2].Width = 0 }, "positive size"},
		{"unnamed tab", func(c *MariosConfig) { c.Windows[2].Tabs[0].Name = "" }, "has no name"},
		{"unknown default", func(c *MariosConfig) { c.Desktop.DefaultWindow = "ghost" }, "default window"},
		{"negative bar", func(c *MariosConfig) { c.Desktop.TaskbarHeight = -1 }, "negative"},
		{"bad shortcut", func(c *MariosConfig) { c.Keys.Cycle = []string{"super+tab"} }, "cycle shortcut"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := GetDefaultConfig()
			tt.mutate(&c)
			err := Validate(c)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidConfig)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestWindowSpecsAndOptions(t *testing.T) {
	c := GetDefaultConfig()
	specs := c.WindowSpecs()
	require.Len(t, specs, len(c.Windows))
	assert.Equal(t, wm.WindowSpec{
		Definition: wm.Definition{ID: "terminal-main", Title: "mari@terminal: ~", Geometry: wm.Point{X: 4, Y: 3}, Size: wm.Size{W: 64, H: 20}},
		Launcher:   "terminal",
	}, specs[0])
	assert.Equal(t, "about", specs[1].Launcher)

	opts, err := c.ManagerOptions()
	require.NoError(t, err)
	assert.Equal(t, "terminal-main", opts.DefaultWindow)
	assert.Equal(t, 72, opts.Breakpoint)
	assert.Len(t, opts.Shortcuts.Cycle, 2)

	// The defaults build a working window manager.
	opts.Viewport = wm.Size{W: 120, H: 40}
	m, err := wm.NewManager(opts, specs)
	require.NoError(t, err)
	assert.Equal(t, wm.Desktop, m.Mode())
}
