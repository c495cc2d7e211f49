package wm

import "fmt"

// ViewMode is the process-wide presentation mode.
type ViewMode int

const (
	// Desktop presents several overlapping windows.
	Desktop ViewMode = iota
	// Mobile presents a single fullscreen app at a time.
	Mobile
)

// String returns a string representation of the view mode.
func (m ViewMode) String() string {
	switch m {
	case Desktop:
		return "desktop"
	case Mobile:
		return "mobile"
	default:
		return "unknown"
	}
}

// MarshalText encodes the view mode by name.
func (m ViewMode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalText decodes a view mode name.
func (m *ViewMode) UnmarshalText(text []byte) error {
	switch string(text) {
	case "desktop":
		*m = Desktop
	case "mobile":
		*m = Mobile
	default:
		return fmt.Errorf("invalid view mode %q", text)
	}
	return nil
}

// DefaultMobileBreakpoint is the widest viewport, in cells, that still
// counts as mobile.
const DefaultMobileBreakpoint = 72

// DeviceHints are signals beyond the viewport size that force mobile mode.
type DeviceHints struct {
	// ForceMobile marks the device as a handheld regardless of width.
	ForceMobile bool
}

// ViewportModeController detects desktop vs. mobile presentation and owns the
// single fullscreen window of mobile mode.
type ViewportModeController struct {
	reg        *Registry
	focus      *FocusController
	breakpoint int
	hints      DeviceHints

	mode       ViewMode
	size       Size
	fullscreen string
	lastOrigin *Point

	// OnModeChange is invoked after the controller has applied its own
	// transition rules.
	OnModeChange func(from, to ViewMode)
}

// NewViewportModeController creates a controller for the initial viewport size.
func NewViewportModeController(reg *Registry, focus *FocusController, breakpoint int, hints DeviceHints, initial Size) *ViewportModeController {
	if breakpoint <= 0 {
		breakpoint = DefaultMobileBreakpoint
	}
	v := &ViewportModeController{
		reg:        reg,
		focus:      focus,
		breakpoint: breakpoint,
		hints:      hints,
		size:       initial,
	}
	v.mode = v.detect(initial)
	return v
}

func (v *ViewportModeController) detect(size Size) ViewMode {
	if v.hints.ForceMobile || size.W <= v.breakpoint {
		return Mobile
	}
	return Desktop
}

// Mode returns the current presentation mode.
func (v *ViewportModeController) Mode() ViewMode {
	return v.mode
}

// Size returns the last known viewport size.
func (v *ViewportModeController) Size() Size {
	return v.size
}

// Fullscreen returns the current fullscreen window, if any.
func (v *ViewportModeController) Fullscreen() (string, bool) {
	return v.fullscreen, v.fullscreen != ""
}

// LastOrigin returns the anchor of the most recent mobile open, used only
// for the opening animation.
func (v *ViewportModeController) LastOrigin() (Point, bool) {
	if v.lastOrigin == nil {
		return Point{}, false
	}
	return *v.lastOrigin, true
}

// Resize records a new viewport size and recomputes the mode. It reports
// whether the mode changed.
func (v *ViewportModeController) Resize(size Size) (bool, error) {
	v.size = size
	return v.recompute()
}

// OrientationChange recomputes the mode from the last known size and the
// device hints.
func (v *ViewportModeController) OrientationChange() (bool, error) {
	return v.recompute()
}

func (v *ViewportModeController) recompute() (bool, error) {
	next := v.detect(v.size)
	if next == v.mode {
		return false, nil
	}
	prev := v.mode
	v.mode = next
	if err := v.onModeChange(prev, next); err != nil {
		return true, err
	}
	if v.OnModeChange != nil {
		v.OnModeChange(prev, next)
	}
	return true, nil
}

func (v *ViewportModeController) onModeChange(from, to ViewMode) error {
	if from != Mobile || to != Desktop {
		// Fullscreen is entered lazily on the next open.
		return nil
	}
	for _, w := range v.reg.All() {
		if w.Mode == MobileFullscreen {
			if err := v.reg.SetMode(w.ID, Normal); err != nil {
				return err
			}
		}
	}
	v.fullscreen = ""
	v.lastOrigin = nil
	return nil
}

// OpenInCurrentMode shows id according to the presentation mode. On desktop
// the window becomes visible (keeping Maximized if it was) and focused. On
// mobile any other fullscreen window is closed first, then id becomes the
// fullscreen window. origin is only an animation anchor.
func (v *ViewportModeController) OpenInCurrentMode(id string, origin *Point) error {
	w, err := v.reg.lookup(id)
	if err != nil {
		return fmt.Errorf("open: %w", err)
	}

	if v.mode == Desktop {
		if err := v.reg.SetVisibility(id, Visible); err != nil {
			return err
		}
		if w.Mode != Maximized {
			if err := v.reg.SetMode(id, Normal); err != nil {
				return err
			}
		}
		return v.focus.Focus(id)
	}

	if v.fullscreen != "" && v.fullscreen != id {
		if err := v.CloseFullscreen(v.fullscreen); err != nil {
			return err
		}
	}
	if err := v.reg.SetVisibility(id, Visible); err != nil {
		return err
	}
	if err := v.reg.SetMode(id, MobileFullscreen); err != nil {
		return err
	}
	v.fullscreen = id
	if origin != nil {
		anchor := *origin
		v.lastOrigin = &anchor
	}
	return v.focus.Focus(id)
}

// CloseFullscreen closes id if it is the current fullscreen window. On any
// other window it is a no-op.
func (v *ViewportModeController) CloseFullscreen(id string) error {
	return v.leaveFullscreen(id, Hidden)
}

// leaveFullscreen returns the fullscreen window to Normal with the given
// visibility (Hidden for close, Minimized for minimize).
func (v *ViewportModeController) leaveFullscreen(id string, to Visibility) error {
	if _, err := v.reg.lookup(id); err != nil {
		return fmt.Errorf("close fullscreen: %w", err)
	}
	if v.fullscreen != id {
		return nil
	}

	if err := v.reg.SetMode(id, Normal); err != nil {
		return err
	}
	if err := v.reg.SetVisibility(id, to); err != nil {
		return err
	}
	v.focus.Clear(id)
	v.fullscreen = ""
	return nil
}
