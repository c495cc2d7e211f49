package wm

import (
	"fmt"
	"strings"
)

// Event is a discrete input event delivered by the input source.
type Event interface {
	isEvent()
}

// PointerDown is a button press on a target.
type PointerDown struct {
	Target   Target
	Position Point
}

// PointerMove is pointer motion anywhere on the desktop.
type PointerMove struct {
	Position Point
}

// PointerUp is a button release anywhere on the desktop.
type PointerUp struct{}

// Click is a completed press/release on a target. Origin is the on-screen
// anchor of the clicked element, used for open animations.
type Click struct {
	Target Target
	Origin *Point
}

// KeyDown is a key press with modifiers.
type KeyDown struct {
	Key  string
	Mods Modifiers
}

// Resize reports new viewport dimensions.
type Resize struct {
	Width  int
	Height int
}

// OrientationChange reports a device orientation flip.
type OrientationChange struct{}

func (PointerDown) isEvent()       {}
func (PointerMove) isEvent()       {}
func (PointerUp) isEvent()         {}
func (Click) isEvent()             {}
func (KeyDown) isEvent()           {}
func (Resize) isEvent()            {}
func (OrientationChange) isEvent() {}

// Modifiers is a set of held modifier keys.
type Modifiers uint8

const (
	ModCtrl Modifiers = 1 << iota
	ModAlt
	ModShift
)

// ParseKey parses a combination such as "ctrl+m" or "alt+tab".
func ParseKey(combo string) (KeyDown, error) {
	parts := strings.Split(strings.ToLower(strings.TrimSpace(combo)), "+")
	var k KeyDown
	for i, part := range parts {
		if i == len(parts)-1 {
			k.Key = part
			break
		}
		switch part {
		case "ctrl", "control":
			k.Mods |= ModCtrl
		case "alt", "meta", "option":
			k.Mods |= ModAlt
		case "shift":
			k.Mods |= ModShift
		default:
			return KeyDown{}, fmt.Errorf("invalid modifier %q in %q", part, combo)
		}
	}
	if k.Key == "" {
		return KeyDown{}, fmt.Errorf("missing key in %q", combo)
	}
	return k, nil
}

// String renders the key in the canonical "ctrl+alt+shift+key" form.
func (k KeyDown) String() string {
	var b strings.Builder
	if k.Mods&ModCtrl != 0 {
		b.WriteString("ctrl+")
	}
	if k.Mods&ModAlt != 0 {
		b.WriteString("alt+")
	}
	if k.Mods&ModShift != 0 {
		b.WriteString("shift+")
	}
	b.WriteString(k.Key)
	return b.String()
}

// Shortcuts are the key combinations consumed by the window manager.
type Shortcuts struct {
	Cycle    []KeyDown
	Minimize []KeyDown
}

// DefaultShortcuts returns alt+tab/f6 for cycling and ctrl+m/f9 for
// minimizing the active window.
func DefaultShortcuts() Shortcuts {
	return Shortcuts{
		Cycle:    []KeyDown{{Key: "tab", Mods: ModAlt}, {Key: "f6"}},
		Minimize: []KeyDown{{Key: "m", Mods: ModCtrl}, {Key: "f9"}},
	}
}

// ParseShortcuts builds Shortcuts from combination strings.
func ParseShortcuts(cycle, minimize []string) (Shortcuts, error) {
	var s Shortcuts
	for _, combo := range cycle {
		k, err := ParseKey(combo)
		if err != nil {
			return Shortcuts{}, fmt.Errorf("cycle shortcut: %w", err)
		}
		s.Cycle = append(s.Cycle, k)
	}
	for _, combo := range minimize {
		k, err := ParseKey(combo)
		if err != nil {
			return Shortcuts{}, fmt.Errorf("minimize shortcut: %w", err)
		}
		s.Minimize = append(s.Minimize, k)
	}
	return s, nil
}

func matches(keys []KeyDown, k KeyDown) bool {
	for _, candidate := range keys {
		if candidate == k {
			return true
		}
	}
	return false
}
