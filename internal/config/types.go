package config

import (
	"time"
)

// MariosConfig is the top-level configuration structure for marios.
type MariosConfig struct {
	Desktop DesktopSettings    `yaml:"desktop"`
	Windows []WindowDefinition `yaml:"windows"`
	Keys    KeySettings        `yaml:"keys"`
	Boot    BootSettings       `yaml:"boot"`
	Contact ContactSettings    `yaml:"contact"`
	MCP     MCPSettings        `yaml:"mcp"`
	Updates UpdateSettings     `yaml:"updates"`
}

// DesktopSettings control the window manager itself.
type DesktopSettings struct {
	DefaultWindow    string `yaml:"defaultWindow,omitempty"`    // Window shown and focused at startup on desktop
	MobileBreakpoint int    `yaml:"mobileBreakpoint,omitempty"` // Widest terminal (in cells) that counts as mobile
	StatusBarHeight  int    `yaml:"statusBarHeight,omitempty"`  // Rows reserved at the top; windows cannot be dragged under it
	TaskbarHeight    int    `yaml:"taskbarHeight,omitempty"`    // Rows reserved at the bottom
	ZBaseline        int    `yaml:"zBaseline,omitempty"`        // Initial z-order of every window
	ForceMobile      *bool  `yaml:"forceMobile,omitempty"`      // Treat the terminal as a handheld regardless of width
	Strict           *bool  `yaml:"strict,omitempty"`           // Fail on unknown window/launcher ids instead of logging
}

// IsForceMobile reports whether mobile mode is forced. Unset means false.
func (d DesktopSettings) IsForceMobile() bool { return isSet(d.ForceMobile) }

// IsStrict reports whether unknown ids are errors. Unset means false.
func (d DesktopSettings) IsStrict() bool { return isSet(d.Strict) }

// WindowDefinition describes one window of the fixed window set.
type WindowDefinition struct {
	ID       string `yaml:"id"`
	Title    string `yaml:"title,omitempty"`
	Icon     string `yaml:"icon,omitempty"`     // Optional: glyph shown on the launcher
	Launcher string `yaml:"launcher,omitempty"` // Defaults to the window id
	X        int    `yaml:"x"`
	Y        int    `yaml:"y"`
	Width    int    `yaml:"width"`
	Height   int    `yaml:"height"`
	Content  string `yaml:"content,omitempty"`
	// Prompt is shown below the content with the animated typist, e.g. "mari@marios:~$".
	Prompt string `yaml:"prompt,omitempty"`
	// Tabs split the window body into switchable panes (the projects window).
	Tabs []TabDefinition `yaml:"tabs,omitempty"`
	// Form marks the window that hosts the contact form.
	Form bool `yaml:"form,omitempty"`
}

// TabDefinition is one pane of a tabbed window.
type TabDefinition struct {
	Name    string `yaml:"name"`
	Content string `yaml:"content"`
}

// KeySettings lists the key combinations for the window manager shortcuts,
// e.g. "alt+tab".
type KeySettings struct {
	Cycle    []string `yaml:"cycle,omitempty"`
	Minimize []string `yaml:"minimize,omitempty"`
}

// BootSettings control the boot screen shown before the desktop.
type BootSettings struct {
	Skip     *bool         `yaml:"skip,omitempty"`
	Duration time.Duration `yaml:"duration,omitempty"`
}

// Skipped reports whether the boot screen is skipped. Unset means false.
func (b BootSettings) Skipped() bool { return isSet(b.Skip) }

// ContactSettings configure the contact form submission.
type ContactSettings struct {
	Endpoint  string        `yaml:"endpoint,omitempty"`
	AccessKey string        `yaml:"accessKey,omitempty"`
	Email     string        `yaml:"email,omitempty"` // Shown in the contact window and copied with "y"
	Timeout   time.Duration `yaml:"timeout,omitempty"`
	Retries   int           `yaml:"retries,omitempty"`
}

// MCPSettings configure the MCP control server.
type MCPSettings struct {
	Enabled *bool  `yaml:"enabled,omitempty"`
	Host    string `yaml:"host,omitempty"`
	Port    int    `yaml:"port,omitempty"`
}

// IsEnabled reports whether the control server runs. Unset means false.
func (m MCPSettings) IsEnabled() bool { return isSet(m.Enabled) }

// UpdateSettings configure self-update.
type UpdateSettings struct {
	Repository string `yaml:"repository,omitempty"` // GitHub "owner/repo" slug
}

// Window returns the definition with the given id.
func (c MariosConfig) Window(id string) (WindowDefinition, bool) {
	for _, w := range c.Windows {
		if w.ID == id {
			return w, true
		}
	}
	return WindowDefinition{}, false
}

// LauncherID returns the launcher bound to the window.
func (w WindowDefinition) LauncherID() string {
	if w.Launcher != "" {
		return w.Launcher
	}
	return w.ID
}

// Bool returns a pointer to v, for setting optional flags in code.
func Bool(v bool) *bool {
	return &v
}

func isSet(b *bool) bool {
	return b != nil && *b
}
