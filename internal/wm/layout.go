package wm

import "sort"

// TargetKind identifies what an input event landed on.
type TargetKind int

const (
	TargetNone TargetKind = iota
	// TargetHeader is a window's title bar, the drag handle.
	TargetHeader
	// TargetBody is anywhere else inside a window.
	TargetBody
	// TargetControl is one of the title bar buttons.
	TargetControl
	// TargetLauncher is a taskbar or home-screen icon.
	TargetLauncher
)

// Control is a title bar button.
type Control int

const (
	ControlMinimize Control = iota
	ControlMaximize
	ControlClose
)

// String returns the control's action name.
func (c Control) String() string {
	switch c {
	case ControlMinimize:
		return "minimize"
	case ControlMaximize:
		return "maximize"
	case ControlClose:
		return "close"
	default:
		return "unknown"
	}
}

// Target is the element an input event was delivered to.
type Target struct {
	Kind     TargetKind
	Window   string
	Control  Control
	Launcher string
}

// Layout turns window state into on-screen frames. Frames include the
// one-cell border; the title bar is the first row inside the border.
type Layout struct {
	Viewport Size
	// MinTop is the height of the status bar at the top of the screen.
	MinTop int
	// BottomReserve is the height of the taskbar at the bottom.
	BottomReserve int
}

// Frame returns the rectangle a window occupies under its current mode.
func (l Layout) Frame(w Window) Rect {
	switch w.Mode {
	case Maximized:
		return Rect{
			X: l.Viewport.W * 25 / 1000,
			Y: l.MinTop,
			W: l.Viewport.W * 95 / 100,
			H: l.Viewport.H * 85 / 100,
		}
	case MobileFullscreen:
		return Rect{
			X: 0,
			Y: l.MinTop,
			W: l.Viewport.W,
			H: max(0, l.Viewport.H-l.MinTop-l.BottomReserve),
		}
	default:
		return Rect{X: w.Geometry.X, Y: w.Geometry.Y, W: w.Size.W, H: w.Size.H}
	}
}

// TitleRow returns the y coordinate of the title bar.
func TitleRow(frame Rect) int {
	return frame.Y + 1
}

// ControlColumn returns the x coordinate of a title bar button. Buttons sit
// right-aligned in the title bar, two cells apart: minimize, maximize, close.
func ControlColumn(frame Rect, c Control) int {
	right := frame.X + frame.W - 3
	switch c {
	case ControlMinimize:
		return right - 4
	case ControlMaximize:
		return right - 2
	default:
		return right
	}
}

// controlAt returns the button under p, if any.
func controlAt(frame Rect, p Point) (Control, bool) {
	if p.Y != TitleRow(frame) {
		return 0, false
	}
	for _, c := range []Control{ControlMinimize, ControlMaximize, ControlClose} {
		if ControlColumn(frame, c) == p.X {
			return c, true
		}
	}
	return 0, false
}

// Stacking returns the windows to draw, back to front. In mobile mode only
// the fullscreen window is drawn.
func Stacking(windows []Window, mode ViewMode, fullscreen string) []Window {
	var out []Window
	for _, w := range windows {
		if w.Visibility != Visible {
			continue
		}
		if mode == Mobile && w.ID != fullscreen {
			continue
		}
		out = append(out, w)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Z < out[j].Z
	})
	return out
}

// HitTest returns the target under p, front-most window first.
func HitTest(l Layout, stack []Window, p Point) Target {
	for i := len(stack) - 1; i >= 0; i-- {
		w := stack[i]
		frame := l.Frame(w)
		if !frame.Contains(p) {
			continue
		}
		if c, ok := controlAt(frame, p); ok {
			return Target{Kind: TargetControl, Window: w.ID, Control: c}
		}
		if p.Y <= TitleRow(frame) {
			return Target{Kind: TargetHeader, Window: w.ID}
		}
		return Target{Kind: TargetBody, Window: w.ID}
	}
	return Target{Kind: TargetNone}
}
