package script

import (
	"fmt"
	"strings"

	"marios/internal/wm"
)

// Expectation is a partial description of the desktop state. Unset fields
// are not checked.
type Expectation struct {
	// Active is the focused window; an empty string expects none.
	Active *string `yaml:"active,omitempty"`
	// Mode is "desktop" or "mobile".
	Mode string `yaml:"mode,omitempty"`
	// Fullscreen is the mobile fullscreen window; an empty string expects none.
	Fullscreen *string             `yaml:"fullscreen,omitempty"`
	Visible    []string            `yaml:"visible,omitempty"`
	Hidden     []string            `yaml:"hidden,omitempty"`
	Minimized  []string            `yaml:"minimized,omitempty"`
	Maximized  []string            `yaml:"maximized,omitempty"`
	Positions  map[string]wm.Point `yaml:"positions,omitempty"`
	// Front is the window drawn on top.
	Front string `yaml:"front,omitempty"`
	// Dragging is the window being dragged; an empty string expects none.
	Dragging *string `yaml:"dragging,omitempty"`
}

// Check compares the expectation against a snapshot and returns every
// mismatch in one error.
func (e Expectation) Check(s wm.Snapshot) error {
	var problems []string
	fail := func(format string, args ...interface{}) {
		problems = append(problems, fmt.Sprintf(format, args...))
	}

	if e.Active != nil && *e.Active != s.Active {
		fail("active window is %q, want %q", s.Active, *e.Active)
	}
	if e.Mode != "" && e.Mode != s.Mode.String() {
		fail("mode is %s, want %s", s.Mode, e.Mode)
	}
	if e.Fullscreen != nil && *e.Fullscreen != s.Fullscreen {
		fail("fullscreen window is %q, want %q", s.Fullscreen, *e.Fullscreen)
	}
	if e.Dragging != nil && *e.Dragging != s.Dragging {
		fail("dragging %q, want %q", s.Dragging, *e.Dragging)
	}

	checkVisibility := func(ids []string, want wm.Visibility) {
		for _, id := range ids {
			w, ok := s.Window(id)
			if !ok {
				fail("window %q does not exist", id)
				continue
			}
			if w.Visibility != want {
				fail("window %q is %s, want %s", id, w.Visibility, want)
			}
		}
	}
	checkVisibility(e.Visible, wm.Visible)
	checkVisibility(e.Hidden, wm.Hidden)
	checkVisibility(e.Minimized, wm.Minimized)

	for _, id := range e.Maximized {
		if w, ok := s.Window(id); !ok || w.Mode != wm.Maximized {
			fail("window %q is not maximized", id)
		}
	}
	for id, want := range e.Positions {
		w, ok := s.Window(id)
		if !ok {
			fail("window %q does not exist", id)
			continue
		}
		if w.Geometry != want {
			fail("window %q is at %d,%d, want %d,%d", id, w.Geometry.X, w.Geometry.Y, want.X, want.Y)
		}
	}
	if e.Front != "" {
		stack := s.Stack()
		if len(stack) == 0 || stack[len(stack)-1].ID != e.Front {
			fail("front window is not %q", e.Front)
		}
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrExpectationFailed, strings.Join(problems, "; "))
	}
	return nil
}
