package model

import (
	"context"
	"math/rand"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"

	"marios/internal/ambient"
	"marios/internal/config"
	"marios/internal/contact"
	"marios/internal/notify"
	"marios/internal/wm"
	"marios/pkg/logging"
)

// AppMode represents the current mode of the application
type AppMode int

const (
	ModeBooting AppMode = iota
	ModeDesktop
	ModeHelpOverlay
	ModeLogOverlay
	ModeQuitting
)

// String provides a human-readable representation of the AppMode.
func (m AppMode) String() string {
	switch m {
	case ModeBooting:
		return "Booting"
	case ModeDesktop:
		return "Desktop"
	case ModeHelpOverlay:
		return "HelpOverlay"
	case ModeLogOverlay:
		return "LogOverlay"
	case ModeQuitting:
		return "Quitting"
	default:
		return "Unknown"
	}
}

// Constants for UI
const (
	MaxActivityLogLines = 1000
	// The viewport assumed until the terminal reports its size.
	DefaultViewportWidth  = 120
	DefaultViewportHeight = 40
)

// KeyMap defines all the key bindings for the application
type KeyMap struct {
	Quit          key.Binding
	Help          key.Binding
	ToggleLog     key.Binding
	ToggleMonitor key.Binding
	ToggleDark    key.Binding
	ToggleDebug   key.Binding
	Esc           key.Binding
	Enter         key.Binding
	Copy          key.Binding
	CloseWindow   key.Binding
	Maximize      key.Binding
	NextTab       key.Binding
	PrevTab       key.Binding
	NextField     key.Binding
	PrevField     key.Binding
	Launch        key.Binding
	ScrollUp      key.Binding
	ScrollDown    key.Binding
}

// ContactSubmitter sends a contact form message.
type ContactSubmitter interface {
	Submit(ctx context.Context, m contact.Message) error
}

// Model represents the state of the desktop TUI.
type Model struct {
	// Terminal dimensions
	Width  int
	Height int

	// Global application state
	CurrentAppMode  AppMode
	LastAppMode     AppMode
	DebugMode       bool
	ColorMode       string
	QuittingMessage string

	Config config.MariosConfig

	// Window manager and its projections
	WM        *wm.Manager
	Launchers []wm.LauncherState

	// Collaborators
	Bus           notify.Bus
	Contact       ContactSubmitter
	Notifications *notify.Subscription
	Toasts        *notify.Tray

	// Cosmetic state. Nothing here touches the window manager.
	Monitor      *ambient.Monitor
	Events       *ambient.EventSource
	Typist       *ambient.Typist
	Rand         *rand.Rand
	Now          func() time.Time
	StartedAt    time.Time
	BootStarted  time.Time
	BootDuration time.Duration

	// Window content state
	Tabs map[string]int
	Form *ContactForm
	body map[string]cachedBody

	// UI State & Output
	ActivityLog      []string
	ActivityLogDirty bool
	LogViewport      viewport.Model
	Spinner          spinner.Model
	Keys             KeyMap
	Help             help.Model
	LogChannel       <-chan logging.LogEntry
}

type cachedBody struct {
	width int
	lines []string
}

// Render implements wm.Renderer. Any change to a window drops its cached
// body so the next frame lays it out again.
func (m *Model) Render(w wm.Window) {
	m.InvalidateContent(w.ID)
}

// InvalidateContent drops the cached body of a window.
func (m *Model) InvalidateContent(id string) {
	delete(m.body, id)
}

// CachedBody returns the body lines of a window laid out for width.
func (m *Model) CachedBody(id string, width int) ([]string, bool) {
	c, ok := m.body[id]
	if !ok || c.width != width {
		return nil, false
	}
	return c.lines, true
}

// StoreBody caches the body lines of a window laid out for width.
func (m *Model) StoreBody(id string, width int, lines []string) {
	if m.body == nil {
		m.body = make(map[string]cachedBody)
	}
	m.body[id] = cachedBody{width: width, lines: lines}
}

// SetLaunchers records the launcher projection pushed by the window manager.
func (m *Model) SetLaunchers(states []wm.LauncherState) {
	m.Launchers = states
}

// Snapshot returns the current window manager state.
func (m *Model) Snapshot() wm.Snapshot {
	return m.WM.Snapshot()
}

// Definition returns the configuration of a window.
func (m *Model) Definition(id string) (config.WindowDefinition, bool) {
	return m.Config.Window(id)
}

// ActiveWindow returns the id of the focused window, if any.
func (m *Model) ActiveWindow() (string, bool) {
	id, err := m.WM.FocusController().Active()
	return id, err == nil
}

// SelectedTab returns the selected tab index of a tabbed window.
func (m *Model) SelectedTab(id string) int {
	return m.Tabs[id]
}

// SwitchTab moves the tab selection of a tabbed window by delta, wrapping
// around. It returns the newly selected tab name.
func (m *Model) SwitchTab(id string, delta int) (string, bool) {
	def, ok := m.Definition(id)
	if !ok || len(def.Tabs) == 0 {
		return "", false
	}
	n := len(def.Tabs)
	next := ((m.Tabs[id]+delta)%n + n) % n
	m.Tabs[id] = next
	m.InvalidateContent(id)
	return def.Tabs[next].Name, true
}

// Publish sends a notification from the desktop itself.
func (m *Model) Publish(level wm.Level, message string, d time.Duration) {
	if m.Bus == nil {
		return
	}
	m.Bus.Publish(notify.New(notify.SourceDesktop, level, message, d))
}

// BootProgress returns the visible boot log and progress in [0,1].
func (m *Model) BootProgress() ([]string, float64) {
	return ambient.BootLog(m.Now().Sub(m.BootStarted), m.BootDuration)
}
