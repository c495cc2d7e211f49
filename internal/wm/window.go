package wm

import "fmt"

// Visibility governs whether a window is rendered at all.
type Visibility int

const (
	// Hidden windows are closed and not rendered.
	Hidden Visibility = iota
	// Visible windows are rendered on the desktop.
	Visible
	// Minimized windows are parked in the taskbar.
	Minimized
)

var visibilityNames = map[Visibility]string{
	Hidden:    "hidden",
	Visible:   "visible",
	Minimized: "minimized",
}

// String returns a string representation of the visibility.
func (v Visibility) String() string {
	if name, ok := visibilityNames[v]; ok {
		return name
	}
	return "unknown"
}

// MarshalText encodes the visibility by name.
func (v Visibility) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

// UnmarshalText decodes a visibility name.
func (v *Visibility) UnmarshalText(text []byte) error {
	for value, name := range visibilityNames {
		if name == string(text) {
			*v = value
			return nil
		}
	}
	return fmt.Errorf("invalid visibility %q", text)
}

// Mode governs the geometry policy of a window. Modes are mutually exclusive.
type Mode int

const (
	// Normal windows use their own geometry and size.
	Normal Mode = iota
	// Maximized windows cover most of the desktop.
	Maximized
	// MobileFullscreen windows cover the whole viewport in mobile mode.
	MobileFullscreen
)

var modeNames = map[Mode]string{
	Normal:           "normal",
	Maximized:        "maximized",
	MobileFullscreen: "mobile-fullscreen",
}

// String returns a string representation of the mode.
func (m Mode) String() string {
	if name, ok := modeNames[m]; ok {
		return name
	}
	return "unknown"
}

// MarshalText encodes the mode by name.
func (m Mode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalText decodes a mode name.
func (m *Mode) UnmarshalText(text []byte) error {
	for value, name := range modeNames {
		if name == string(text) {
			*m = value
			return nil
		}
	}
	return fmt.Errorf("invalid mode %q", text)
}

// Point is a position in desktop cell coordinates.
type Point struct {
	X int `json:"x" yaml:"x"`
	Y int `json:"y" yaml:"y"`
}

// Sub returns p - q.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Size is a width/height pair in cells.
type Size struct {
	W int `json:"width" yaml:"width"`
	H int `json:"height" yaml:"height"`
}

// Rect is a positioned size.
type Rect struct {
	X int `json:"x"`
	Y int `json:"y"`
	W int `json:"width"`
	H int `json:"height"`
}

// Contains reports whether p lies inside the rectangle.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.X+r.W && p.Y >= r.Y && p.Y < r.Y+r.H
}

// Definition describes a window known at startup.
type Definition struct {
	ID       string
	Title    string
	Geometry Point
	Size     Size
}

// Window is the canonical state of one window entity.
type Window struct {
	ID         string     `json:"id"`
	Title      string     `json:"title"`
	Visibility Visibility `json:"visibility"`
	Mode       Mode       `json:"mode"`
	Geometry   Point      `json:"geometry"`
	Original   Point      `json:"original"`
	Size       Size       `json:"size"`
	Z          int        `json:"z"`
}

// Shown reports whether the window is currently rendered.
func (w Window) Shown() bool {
	return w.Visibility == Visible
}
