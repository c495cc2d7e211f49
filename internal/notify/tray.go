package notify

import "time"

// DefaultTrayCapacity is how many toasts are shown at once.
const DefaultTrayCapacity = 4

// Tray holds the toasts currently on screen. It is owned by the UI loop and
// is not safe for concurrent use.
type Tray struct {
	capacity int
	items    []Notification
}

// NewTray creates a tray showing at most capacity toasts.
func NewTray(capacity int) *Tray {
	if capacity <= 0 {
		capacity = DefaultTrayCapacity
	}
	return &Tray{capacity: capacity}
}

// Push adds a toast, evicting the oldest one when the tray is full.
func (t *Tray) Push(n Notification) {
	t.items = append(t.items, n)
	if over := len(t.items) - t.capacity; over > 0 {
		t.items = append([]Notification(nil), t.items[over:]...)
	}
}

// Expire drops every toast whose duration has elapsed at now. It reports
// whether anything was removed.
func (t *Tray) Expire(now time.Time) bool {
	kept := t.items[:0]
	for _, n := range t.items {
		if now.Before(n.Expires()) {
			kept = append(kept, n)
		}
	}
	removed := len(kept) != len(t.items)
	t.items = kept
	return removed
}

// Items returns the toasts oldest first.
func (t *Tray) Items() []Notification {
	out := make([]Notification, len(t.items))
	copy(out, t.items)
	return out
}

// Len returns the number of toasts on screen.
func (t *Tray) Len() int {
	return len(t.items)
}

// NextExpiry returns the earliest expiry among the toasts.
func (t *Tray) NextExpiry() (time.Time, bool) {
	if len(t.items) == 0 {
		return time.Time{}, false
	}
	next := t.items[0].Expires()
	for _, n := range t.items[1:] {
		if e := n.Expires(); e.Before(next) {
			next = e
		}
	}
	return next, true
}
