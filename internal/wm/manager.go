package wm

import (
	"errors"
	"fmt"
	"time"

	"marios/pkg/logging"
)

const subsystem = "WM"

// DefaultNotifyDuration is how long window lifecycle notifications stay up.
const DefaultNotifyDuration = time.Second

// Options configures a Manager.
type Options struct {
	// Viewport is the initial viewport size in cells.
	Viewport Size
	// Breakpoint is the widest viewport that counts as mobile.
	Breakpoint int
	// Hints are device signals that can force mobile mode.
	Hints DeviceHints
	// StatusBarHeight is the fixed top bar windows cannot be dragged under.
	StatusBarHeight int
	// TaskbarHeight is reserved at the bottom for fullscreen windows.
	TaskbarHeight int
	// ZBaseline is the initial z-order of every window.
	ZBaseline int
	// DefaultWindow starts visible and focused in desktop mode.
	DefaultWindow string
	// Strict makes unknown window/launcher ids fail loudly instead of being
	// logged and ignored.
	Strict bool
	// Shortcuts default to DefaultShortcuts when empty.
	Shortcuts Shortcuts
	// NotifyDuration defaults to DefaultNotifyDuration.
	NotifyDuration time.Duration

	Renderer  Renderer
	Notifier  Notifier
	Launchers LauncherSink
}

// WindowSpec describes one window and the launcher bound to it.
type WindowSpec struct {
	Definition
	// Launcher defaults to the window id.
	Launcher string
}

// Manager is the window manager context object. It owns the registry and the
// controllers, consumes input events and exposes the user-level operations.
// It is not safe for concurrent use; all calls must come from the UI thread.
type Manager struct {
	opts Options

	reg       *Registry
	focus     *FocusController
	capture   *PointerCapture
	drag      *DragController
	viewport  *ViewportModeController
	launchers *LauncherBinding

	notifier Notifier
	sink     LauncherSink
}

// NewManager registers the fixed window set and applies the startup rules:
// every window starts hidden except the default window, which is shown and
// focused in desktop mode only.
func NewManager(opts Options, specs []WindowSpec) (*Manager, error) {
	if opts.ZBaseline == 0 {
		opts.ZBaseline = DefaultZBaseline
	}
	if opts.NotifyDuration == 0 {
		opts.NotifyDuration = DefaultNotifyDuration
	}
	if len(opts.Shortcuts.Cycle) == 0 && len(opts.Shortcuts.Minimize) == 0 {
		opts.Shortcuts = DefaultShortcuts()
	}

	m := &Manager{
		opts:     opts,
		notifier: opts.Notifier,
		sink:     opts.Launchers,
		capture:  NewPointerCapture(),
	}
	if m.notifier == nil {
		m.notifier = nopNotifier{}
	}
	if m.sink == nil {
		m.sink = nopLauncherSink{}
	}

	m.reg = NewRegistry(opts.ZBaseline, opts.Renderer)
	m.focus = NewFocusController(m.reg)
	m.viewport = NewViewportModeController(m.reg, m.focus, opts.Breakpoint, opts.Hints, opts.Viewport)
	m.viewport.OnModeChange = m.modeChanged
	m.drag = NewDragController(m.reg, m.focus, m.capture, func() (Size, int) {
		return m.viewport.Size(), opts.StatusBarHeight
	})
	m.launchers = NewLauncherBinding(m.reg, m.focus, m.viewport)

	desktop := m.viewport.Mode() == Desktop
	for _, spec := range specs {
		visible := desktop && spec.ID == opts.DefaultWindow
		if err := m.reg.Register(spec.Definition, visible); err != nil {
			return nil, err
		}
		launcher := spec.Launcher
		if launcher == "" {
			launcher = spec.ID
		}
		if err := m.launchers.Bind(launcher, spec.ID); err != nil {
			return nil, err
		}
	}

	if opts.DefaultWindow != "" && !m.reg.Has(opts.DefaultWindow) {
		return nil, fmt.Errorf("default window %q: %w", opts.DefaultWindow, ErrUnknownWindow)
	}
	if desktop && opts.DefaultWindow != "" {
		if err := m.focus.Focus(opts.DefaultWindow); err != nil {
			return nil, err
		}
	}

	logging.Debug(subsystem, "Registered %d windows in %s mode", m.reg.Len(), m.viewport.Mode())
	m.refresh()
	return m, nil
}

// Registry returns the window registry.
func (m *Manager) Registry() *Registry { return m.reg }

// FocusController returns the focus controller.
func (m *Manager) FocusController() *FocusController { return m.focus }

// DragController returns the drag controller.
func (m *Manager) DragController() *DragController { return m.drag }

// Viewport returns the viewport mode controller.
func (m *Manager) Viewport() *ViewportModeController { return m.viewport }

// LauncherBinding returns the launcher binding.
func (m *Manager) LauncherBinding() *LauncherBinding { return m.launchers }

// Capture returns the desktop-wide pointer capture.
func (m *Manager) Capture() *PointerCapture { return m.capture }

// Mode returns the current presentation mode.
func (m *Manager) Mode() ViewMode { return m.viewport.Mode() }

// Layout returns the frame layout for the current viewport.
func (m *Manager) Layout() Layout {
	return Layout{
		Viewport:      m.viewport.Size(),
		MinTop:        m.opts.StatusBarHeight,
		BottomReserve: m.opts.TaskbarHeight,
	}
}

// Stack returns the drawable windows, back to front.
func (m *Manager) Stack() []Window {
	fullscreen, _ := m.viewport.Fullscreen()
	return Stacking(m.reg.All(), m.viewport.Mode(), fullscreen)
}

// HitTest returns the window element under p.
func (m *Manager) HitTest(p Point) Target {
	return HitTest(m.Layout(), m.Stack(), p)
}

// Open shows a window according to the presentation mode.
func (m *Manager) Open(id string, origin *Point) error {
	return m.apply("open", func() error { return m.open(id, origin) })
}

func (m *Manager) open(id string, origin *Point) error {
	if err := m.viewport.OpenInCurrentMode(id, origin); err != nil {
		return err
	}
	m.notify(LevelSuccess, "%s opened", id)
	return nil
}

// Close hides a window. Closing an already closed window is a no-op.
func (m *Manager) Close(id string) error {
	return m.apply("close", func() error { return m.close(id) })
}

func (m *Manager) close(id string) error {
	w, err := m.reg.Get(id)
	if err != nil {
		return fmt.Errorf("close: %w", err)
	}
	m.drag.Cancel(id)

	if fullscreen, ok := m.viewport.Fullscreen(); ok && fullscreen == id {
		if err := m.viewport.CloseFullscreen(id); err != nil {
			return err
		}
	} else {
		if w.Mode == MobileFullscreen {
			if err := m.reg.SetMode(id, Normal); err != nil {
				return err
			}
		}
		if err := m.reg.SetVisibility(id, Hidden); err != nil {
			return err
		}
		m.focus.Clear(id)
	}

	if w.Visibility != Hidden {
		m.notify(LevelWarning, "%s closed", id)
	}
	return nil
}

// Minimize parks a visible window in the taskbar.
func (m *Manager) Minimize(id string) error {
	return m.apply("minimize", func() error { return m.minimize(id) })
}

func (m *Manager) minimize(id string) error {
	w, err := m.reg.Get(id)
	if err != nil {
		return fmt.Errorf("minimize: %w", err)
	}
	if w.Visibility != Visible {
		return nil
	}
	m.drag.Cancel(id)

	if fullscreen, ok := m.viewport.Fullscreen(); ok && fullscreen == id {
		if err := m.viewport.leaveFullscreen(id, Minimized); err != nil {
			return err
		}
	} else {
		if err := m.reg.SetVisibility(id, Minimized); err != nil {
			return err
		}
		m.focus.Clear(id)
	}

	m.notify(LevelInfo, "%s minimized", id)
	return nil
}

// MinimizeActive minimizes the active window. Without an active window it
// does nothing.
func (m *Manager) MinimizeActive() error {
	return m.apply("minimize-active", func() error {
		id, err := m.focus.Active()
		if err != nil {
			return err
		}
		return m.minimize(id)
	})
}

// ToggleMaximize switches a desktop window between Normal and Maximized.
// Restoring moves the window back to its original geometry. Mobile mode
// ignores the request.
func (m *Manager) ToggleMaximize(id string) error {
	return m.apply("maximize", func() error {
		w, err := m.reg.Get(id)
		if err != nil {
			return fmt.Errorf("maximize: %w", err)
		}
		if m.viewport.Mode() != Desktop {
			return nil
		}

		switch w.Mode {
		case Maximized:
			if err := m.reg.SetMode(id, Normal); err != nil {
				return err
			}
			if err := m.reg.SetGeometry(id, w.Original); err != nil {
				return err
			}
		case Normal:
			m.drag.Cancel(id)
			if err := m.reg.SetMode(id, Maximized); err != nil {
				return err
			}
		}

		if w.Visibility == Visible {
			return m.focus.Focus(id)
		}
		return nil
	})
}

// Focus makes a visible window active and frontmost.
func (m *Manager) Focus(id string) error {
	return m.apply("focus", func() error { return m.focus.Focus(id) })
}

// Cycle focuses the next visible window.
func (m *Manager) Cycle() error {
	return m.apply("cycle", m.focus.Cycle)
}

// Tap handles a launcher activation.
//
// Desktop: a hidden or minimized window opens, the active window closes, any
// other window is focused. Mobile: the fullscreen window's launcher closes it,
// any other launcher switches the fullscreen window.
func (m *Manager) Tap(launcher string, origin *Point) error {
	return m.apply("tap", func() error {
		id, err := m.launchers.Window(launcher)
		if err != nil {
			return err
		}
		w, err := m.reg.Get(id)
		if err != nil {
			return err
		}

		if m.viewport.Mode() == Mobile {
			if fullscreen, ok := m.viewport.Fullscreen(); ok && fullscreen == id {
				return m.viewport.CloseFullscreen(id)
			}
			return m.open(id, origin)
		}

		switch {
		case w.Visibility != Visible:
			return m.open(id, origin)
		case m.focus.IsActive(id):
			return m.close(id)
		default:
			return m.focus.Focus(id)
		}
	})
}

// Control applies a title bar button.
func (m *Manager) Control(id string, c Control) error {
	switch c {
	case ControlMinimize:
		return m.Minimize(id)
	case ControlMaximize:
		return m.ToggleMaximize(id)
	case ControlClose:
		return m.Close(id)
	default:
		return fmt.Errorf("unknown control %d", c)
	}
}

// Dispatch consumes one input event. It reports whether the window manager
// handled the event.
func (m *Manager) Dispatch(ev Event) (bool, error) {
	switch e := ev.(type) {
	case PointerDown:
		switch e.Target.Kind {
		case TargetHeader:
			return true, m.apply("drag", func() error {
				if m.viewport.Mode() == Mobile {
					return m.focus.Focus(e.Target.Window)
				}
				return m.drag.Begin(e.Target.Window, e.Position)
			})
		case TargetBody, TargetControl:
			return true, m.Focus(e.Target.Window)
		}
		return false, nil

	case PointerMove:
		if m.capture.Len() == 0 {
			return false, nil
		}
		m.capture.Move(e.Position)
		m.refresh()
		return true, nil

	case PointerUp:
		captured := m.capture.Len() > 0
		m.capture.Up()
		m.refresh()
		return captured, nil

	case Click:
		switch e.Target.Kind {
		case TargetControl:
			return true, m.Control(e.Target.Window, e.Target.Control)
		case TargetLauncher:
			return true, m.Tap(e.Target.Launcher, e.Origin)
		}
		return false, nil

	case KeyDown:
		switch {
		case matches(m.opts.Shortcuts.Cycle, e):
			return true, m.Cycle()
		case matches(m.opts.Shortcuts.Minimize, e):
			return true, m.MinimizeActive()
		}
		return false, nil

	case Resize:
		return true, m.apply("resize", func() error {
			_, err := m.viewport.Resize(Size{W: e.Width, H: e.Height})
			return err
		})

	case OrientationChange:
		return true, m.apply("orientation", func() error {
			_, err := m.viewport.OrientationChange()
			return err
		})
	}
	return false, fmt.Errorf("unsupported event %T", ev)
}

func (m *Manager) modeChanged(from, to ViewMode) {
	// Drags only exist in desktop mode.
	m.drag.End()
	logging.Info(subsystem, "Viewport mode changed from %s to %s", from, to)
}

// apply runs one mutation, re-projects the launchers and applies the error
// policy.
func (m *Manager) apply(op string, fn func() error) error {
	err := fn()
	m.refresh()
	return m.check(op, err)
}

func (m *Manager) check(op string, err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, ErrNoActiveWindow):
		return nil
	case errors.Is(err, ErrUnknownWindow), errors.Is(err, ErrUnknownLauncher):
		if m.opts.Strict {
			logging.Error(subsystem, err, "%s failed", op)
			return err
		}
		logging.Warn(subsystem, "%s ignored: %v", op, err)
		return nil
	default:
		return err
	}
}

func (m *Manager) refresh() {
	m.sink.Launchers(m.launchers.Project())
}

// notify hands a message to the notification sink. A failing sink never
// affects window state.
func (m *Manager) notify(level Level, format string, args ...interface{}) {
	n := Notification{
		Message:  fmt.Sprintf(format, args...),
		Level:    level,
		Duration: m.opts.NotifyDuration,
	}
	defer func() {
		if r := recover(); r != nil {
			logging.Warn(subsystem, "Notification sink failed for %q: %v", n.Message, r)
		}
	}()
	m.notifier.Notify(n)
}
