package wm

import "sort"

// PointerListener receives pointer events captured for the whole desktop,
// the equivalent of document-level mousemove/mouseup handlers.
type PointerListener struct {
	Move func(p Point)
	Up   func()
}

// PointerCapture holds the desktop-wide pointer listeners. Listeners are
// registered by gestures that outlive a single event (drags) and must be
// released when the gesture ends.
type PointerCapture struct {
	next      int
	listeners map[int]PointerListener
}

// NewPointerCapture creates an empty capture.
func NewPointerCapture() *PointerCapture {
	return &PointerCapture{listeners: make(map[int]PointerListener)}
}

// Add registers l and returns a release function. Calling release more than
// once is safe.
func (c *PointerCapture) Add(l PointerListener) (release func()) {
	id := c.next
	c.next++
	c.listeners[id] = l
	return func() {
		delete(c.listeners, id)
	}
}

// Move delivers a pointer-move to every listener in registration order.
func (c *PointerCapture) Move(p Point) {
	for _, l := range c.snapshot() {
		if l.Move != nil {
			l.Move(p)
		}
	}
}

// Up delivers a pointer-up to every listener in registration order.
func (c *PointerCapture) Up() {
	for _, l := range c.snapshot() {
		if l.Up != nil {
			l.Up()
		}
	}
}

// Len returns the number of live listeners.
func (c *PointerCapture) Len() int {
	return len(c.listeners)
}

// snapshot copies the listeners so handlers may release themselves while
// being delivered to.
func (c *PointerCapture) snapshot() []PointerListener {
	ids := make([]int, 0, len(c.listeners))
	for id := range c.listeners {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	out := make([]PointerListener, 0, len(ids))
	for _, id := range ids {
		out = append(out, c.listeners[id])
	}
	return out
}
