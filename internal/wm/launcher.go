package wm

import "fmt"

// LauncherState is the derived visual state of one launcher icon.
type LauncherState struct {
	Launcher string `json:"launcher"`
	Window   string `json:"window"`
	// Active is set when the window is focused or is the mobile fullscreen window.
	Active bool `json:"active"`
	// Dimmed is set when the window is hidden or minimized.
	Dimmed bool `json:"dimmed"`
}

// LauncherBinding maps taskbar/home-screen launchers to windows. The mapping
// is fixed once startup completes; launcher visuals are always projected from
// the registry and never stored.
type LauncherBinding struct {
	reg      *Registry
	focus    *FocusController
	viewport *ViewportModeController

	order    []string
	bindings map[string]string
}

// NewLauncherBinding creates an empty binding table.
func NewLauncherBinding(reg *Registry, focus *FocusController, viewport *ViewportModeController) *LauncherBinding {
	return &LauncherBinding{
		reg:      reg,
		focus:    focus,
		viewport: viewport,
		bindings: make(map[string]string),
	}
}

// Bind associates a launcher with a registered window.
func (b *LauncherBinding) Bind(launcher, window string) error {
	if _, exists := b.bindings[launcher]; exists {
		return fmt.Errorf("bind %q: %w", launcher, ErrDuplicateLauncher)
	}
	if !b.reg.Has(window) {
		return fmt.Errorf("bind %q -> %q: %w", launcher, window, ErrUnknownWindow)
	}
	b.bindings[launcher] = window
	b.order = append(b.order, launcher)
	return nil
}

// Window resolves a launcher to its window id.
func (b *LauncherBinding) Window(launcher string) (string, error) {
	id, ok := b.bindings[launcher]
	if !ok {
		return "", fmt.Errorf("launcher %q: %w", launcher, ErrUnknownLauncher)
	}
	return id, nil
}

// LauncherFor returns the first launcher bound to window.
func (b *LauncherBinding) LauncherFor(window string) (string, bool) {
	for _, launcher := range b.order {
		if b.bindings[launcher] == window {
			return launcher, true
		}
	}
	return "", false
}

// Launchers returns the launcher ids in binding order.
func (b *LauncherBinding) Launchers() []string {
	out := make([]string, len(b.order))
	copy(out, b.order)
	return out
}

// Project computes the visual state of every launcher from current window
// state.
func (b *LauncherBinding) Project() []LauncherState {
	fullscreen, _ := b.viewport.Fullscreen()
	states := make([]LauncherState, 0, len(b.order))
	for _, launcher := range b.order {
		id := b.bindings[launcher]
		w, err := b.reg.Get(id)
		if err != nil {
			continue
		}
		states = append(states, LauncherState{
			Launcher: launcher,
			Window:   id,
			Active:   b.focus.IsActive(id) || (fullscreen != "" && fullscreen == id),
			Dimmed:   w.Visibility == Hidden || w.Visibility == Minimized,
		})
	}
	return states
}

// State returns the projected state of one launcher.
func (b *LauncherBinding) State(launcher string) (LauncherState, error) {
	if _, err := b.Window(launcher); err != nil {
		return LauncherState{}, err
	}
	for _, s := range b.Project() {
		if s.Launcher == launcher {
			return s, nil
		}
	}
	return LauncherState{}, fmt.Errorf("launcher %q: %w", launcher, ErrUnknownLauncher)
}
