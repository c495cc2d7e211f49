package wm

import "fmt"

// FocusController decides which window is active and keeps z-order in
// most-recent-focus order.
//
// At most one window is active; the marker lives in a single field.
type FocusController struct {
	reg    *Registry
	active string
}

// NewFocusController creates a focus controller over reg with no active window.
func NewFocusController(reg *Registry) *FocusController {
	return &FocusController{reg: reg}
}

// Focus makes id the active window and brings it to the front. The new
// z-order is one above the highest z-order of every other window, so values
// grow over a session but never collide.
func (f *FocusController) Focus(id string) error {
	w, err := f.reg.lookup(id)
	if err != nil {
		return fmt.Errorf("focus: %w", err)
	}
	if w.Visibility != Visible {
		return fmt.Errorf("focus %q (%s): %w", id, w.Visibility, ErrWindowNotVisible)
	}

	f.active = id
	return f.reg.SetZ(id, f.reg.maxZ(id)+1)
}

// Cycle focuses the visible window that follows the active one in
// registration order, wrapping around. It does nothing when at most one
// window is eligible.
func (f *FocusController) Cycle() error {
	eligible := f.reg.AllVisible()
	if len(eligible) <= 1 {
		return nil
	}

	current := -1
	for i, w := range eligible {
		if w.ID == f.active {
			current = i
			break
		}
	}
	next := eligible[(current+1)%len(eligible)]
	return f.Focus(next.ID)
}

// Active returns the id of the active window.
func (f *FocusController) Active() (string, error) {
	if f.active == "" {
		return "", ErrNoActiveWindow
	}
	return f.active, nil
}

// IsActive reports whether id is the active window.
func (f *FocusController) IsActive(id string) bool {
	return id != "" && f.active == id
}

// Clear drops the active marker if id holds it. Called whenever a window
// stops being visible.
func (f *FocusController) Clear(id string) {
	if f.active == id {
		f.active = ""
	}
}
