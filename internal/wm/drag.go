package wm

import (
	"fmt"

	"marios/pkg/logging"
)

// DragPhase is the state of the drag gesture state machine.
type DragPhase int

const (
	// DragIdle means no gesture is in progress.
	DragIdle DragPhase = iota
	// DragDragging means a window follows the pointer.
	DragDragging
)

// String returns the string representation of the phase
func (p DragPhase) String() string {
	switch p {
	case DragIdle:
		return "idle"
	case DragDragging:
		return "dragging"
	default:
		return "unknown"
	}
}

// DragBounds reports the current viewport size and the height of the fixed
// status bar windows may not be dragged under. It is read on every move, so
// a resize during a drag applies on the next move.
type DragBounds func() (viewport Size, minTop int)

// DragController tracks one pointer drag gesture and moves the dragged
// window live, clamped to the viewport.
type DragController struct {
	reg     *Registry
	focus   *FocusController
	capture *PointerCapture
	bounds  DragBounds

	phase     DragPhase
	target    string
	offset    Point
	abandoned bool
	release   func()
}

// NewDragController creates an idle drag controller.
func NewDragController(reg *Registry, focus *FocusController, capture *PointerCapture, bounds DragBounds) *DragController {
	return &DragController{
		reg:     reg,
		focus:   focus,
		capture: capture,
		bounds:  bounds,
	}
}

// Begin starts dragging id from the given pointer position. Dragging implies
// focus. Only visible windows in Normal mode can be dragged; for any other
// window Begin only focuses.
func (d *DragController) Begin(id string, pointer Point) error {
	w, err := d.reg.Get(id)
	if err != nil {
		return fmt.Errorf("drag: %w", err)
	}

	// A stale gesture (pointer-up lost outside the terminal) ends here.
	d.End()

	if err := d.focus.Focus(id); err != nil {
		return fmt.Errorf("drag: %w", err)
	}
	if w.Mode != Normal {
		return nil
	}

	d.phase = DragDragging
	d.target = id
	d.offset = pointer.Sub(w.Geometry)
	d.abandoned = false
	d.release = d.capture.Add(PointerListener{
		Move: d.move,
		Up:   d.End,
	})
	return nil
}

func (d *DragController) move(pointer Point) {
	if d.phase != DragDragging || d.abandoned {
		return
	}
	if !d.focus.IsActive(d.target) {
		// Focus moved elsewhere mid-gesture; drop moves until pointer-up.
		d.abandoned = true
		return
	}

	w, err := d.reg.Get(d.target)
	if err != nil || w.Visibility != Visible || w.Mode != Normal {
		d.End()
		return
	}

	viewport, minTop := d.bounds()
	if err := d.reg.SetGeometry(d.target, ClampPosition(pointer.Sub(d.offset), w.Size, viewport, minTop)); err != nil {
		logging.Debug(subsystem, "Drag of %s stopped: %v", d.target, err)
		d.End()
	}
}

// End returns to Idle and releases the captured pointer listeners. Ending a
// drag that never started is a no-op.
func (d *DragController) End() {
	if d.release != nil {
		d.release()
	}
	d.phase = DragIdle
	d.target = ""
	d.offset = Point{}
	d.abandoned = false
	d.release = nil
}

// Cancel ends the gesture immediately if id is being dragged. Used when the
// drag target is closed, hidden or minimized.
func (d *DragController) Cancel(id string) {
	if d.phase == DragDragging && d.target == id {
		d.End()
	}
}

// Phase returns the current phase.
func (d *DragController) Phase() DragPhase {
	return d.phase
}

// Target returns the window being dragged, if any.
func (d *DragController) Target() (string, bool) {
	return d.target, d.phase == DragDragging
}

// ClampPosition constrains a window's top-left so the window stays inside
// the viewport and below minTop. When the window is larger than the
// viewport the lower bound wins.
func ClampPosition(pos Point, size Size, viewport Size, minTop int) Point {
	maxX := viewport.W - size.W
	maxY := viewport.H - size.H
	return Point{
		X: max(0, min(pos.X, maxX)),
		Y: max(minTop, min(pos.Y, maxY)),
	}
}
