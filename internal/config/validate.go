package config

import (
	"errors"
	"fmt"

	"marios/internal/wm"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid configuration")

// Validate checks the window set and shortcuts before a window manager is
// built from them.
func Validate(c MariosConfig) error {
	if len(c.Windows) == 0 {
		return fmt.Errorf("%w: no windows configured", ErrInvalidConfig)
	}

	ids := make(map[string]bool, len(c.Windows))
	launchers := make(map[string]string, len(c.Windows))
	for i, w := range c.Windows {
		if w.ID == "" {
			return fmt.Errorf("%w: window %d has no id", ErrInvalidConfig, i)
		}
		if ids[w.ID] {
			return fmt.Errorf("%w: duplicate window id %q", ErrInvalidConfig, w.ID)
		}
		ids[w.ID] = true

		if owner, taken := launchers[w.LauncherID()]; taken {
			return fmt.Errorf("%w: launcher %q is bound to both %q and %q", ErrInvalidConfig, w.LauncherID(), owner, w.ID)
		}
		launchers[w.LauncherID()] = w.ID

		if w.Width <= 0 || w.Height <= 0 {
			return fmt.Errorf("%w: window %q needs a positive size, got %dx%d", ErrInvalidConfig, w.ID, w.Width, w.Height)
		}
		for j, tab := range w.Tabs {
			if tab.Name == "" {
				return fmt.Errorf("%w: window %q tab %d has no name", ErrInvalidConfig, w.ID, j)
			}
		}
	}

	if c.Desktop.DefaultWindow != "" && !ids[c.Desktop.DefaultWindow] {
		return fmt.Errorf("%w: default window %q is not configured", ErrInvalidConfig, c.Desktop.DefaultWindow)
	}
	if c.Desktop.StatusBarHeight < 0 || c.Desktop.TaskbarHeight < 0 {
		return fmt.Errorf("%w: bar heights must not be negative", ErrInvalidConfig)
	}
	if _, err := c.Shortcuts(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}

// WindowSpecs converts the configured windows into window manager specs.
func (c MariosConfig) WindowSpecs() []wm.WindowSpec {
	specs := make([]wm.WindowSpec, 0, len(c.Windows))
	for _, w := range c.Windows {
		specs = append(specs, wm.WindowSpec{
			Definition: wm.Definition{
				ID:       w.ID,
				Title:    w.Title,
				Geometry: wm.Point{X: w.X, Y: w.Y},
				Size:     wm.Size{W: w.Width, H: w.Height},
			},
			Launcher: w.LauncherID(),
		})
	}
	return specs
}

// Shortcuts parses the configured key combinations.
func (c MariosConfig) Shortcuts() (wm.Shortcuts, error) {
	return wm.ParseShortcuts(c.Keys.Cycle, c.Keys.Minimize)
}

// ManagerOptions maps the desktop settings onto window manager options.
// Viewport and the sinks are left for the caller.
func (c MariosConfig) ManagerOptions() (wm.Options, error) {
	shortcuts, err := c.Shortcuts()
	if err != nil {
		return wm.Options{}, err
	}
	return wm.Options{
		Breakpoint:      c.Desktop.MobileBreakpoint,
		Hints:           wm.DeviceHints{ForceMobile: c.Desktop.IsForceMobile()},
		StatusBarHeight: c.Desktop.StatusBarHeight,
		TaskbarHeight:   c.Desktop.TaskbarHeight,
		ZBaseline:       c.Desktop.ZBaseline,
		DefaultWindow:   c.Desktop.DefaultWindow,
		Strict:          c.Desktop.IsStrict(),
		Shortcuts:       shortcuts,
	}, nil
}
