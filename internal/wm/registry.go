package wm

import "fmt"

// DefaultZBaseline is the z-order every window starts with.
const DefaultZBaseline = 50

// Registry owns the canonical state of every window. It performs no
// cross-window invariant checks; FocusController owns z-order and focus,
// ViewportModeController owns fullscreen exclusivity.
type Registry struct {
	windows  map[string]*Window
	order    []string
	baseline int
	renderer Renderer
}

// NewRegistry creates an empty registry. A nil renderer is replaced by a no-op.
func NewRegistry(baseline int, renderer Renderer) *Registry {
	if renderer == nil {
		renderer = nopRenderer{}
	}
	return &Registry{
		windows:  make(map[string]*Window),
		baseline: baseline,
		renderer: renderer,
	}
}

// Register adds a window entity in Normal mode at the baseline z-order.
// Windows start Hidden unless visible is set (the designated default window
// on desktop).
func (r *Registry) Register(def Definition, visible bool) error {
	if def.ID == "" {
		return fmt.Errorf("register: empty window id")
	}
	if _, exists := r.windows[def.ID]; exists {
		return fmt.Errorf("register %q: %w", def.ID, ErrDuplicateWindow)
	}

	w := &Window{
		ID:         def.ID,
		Title:      def.Title,
		Visibility: Hidden,
		Mode:       Normal,
		Geometry:   def.Geometry,
		Original:   def.Geometry,
		Size:       def.Size,
		Z:          r.baseline,
	}
	if visible {
		w.Visibility = Visible
	}
	if w.Title == "" {
		w.Title = def.ID
	}

	r.windows[def.ID] = w
	r.order = append(r.order, def.ID)
	r.renderer.Render(*w)
	return nil
}

func (r *Registry) lookup(id string) (*Window, error) {
	w, ok := r.windows[id]
	if !ok {
		return nil, fmt.Errorf("window %q: %w", id, ErrUnknownWindow)
	}
	return w, nil
}

// Get returns a copy of the window with the given id.
func (r *Registry) Get(id string) (Window, error) {
	w, err := r.lookup(id)
	if err != nil {
		return Window{}, err
	}
	return *w, nil
}

// Has reports whether id is registered.
func (r *Registry) Has(id string) bool {
	_, ok := r.windows[id]
	return ok
}

// SetVisibility changes a window's visibility.
func (r *Registry) SetVisibility(id string, v Visibility) error {
	w, err := r.lookup(id)
	if err != nil {
		return err
	}
	if w.Visibility != v {
		w.Visibility = v
		r.renderer.Render(*w)
	}
	return nil
}

// SetMode changes a window's geometry policy.
func (r *Registry) SetMode(id string, m Mode) error {
	w, err := r.lookup(id)
	if err != nil {
		return err
	}
	if w.Mode != m {
		w.Mode = m
		r.renderer.Render(*w)
	}
	return nil
}

// SetGeometry moves a window's top-left corner.
func (r *Registry) SetGeometry(id string, pos Point) error {
	w, err := r.lookup(id)
	if err != nil {
		return err
	}
	if w.Geometry != pos {
		w.Geometry = pos
		r.renderer.Render(*w)
	}
	return nil
}

// SetZ assigns a window's z-order.
func (r *Registry) SetZ(id string, z int) error {
	w, err := r.lookup(id)
	if err != nil {
		return err
	}
	if w.Z != z {
		w.Z = z
		r.renderer.Render(*w)
	}
	return nil
}

// AllVisible returns the visible windows in registration order.
func (r *Registry) AllVisible() []Window {
	var visible []Window
	for _, id := range r.order {
		if w := r.windows[id]; w.Visibility == Visible {
			visible = append(visible, *w)
		}
	}
	return visible
}

// All returns every window in registration order.
func (r *Registry) All() []Window {
	all := make([]Window, 0, len(r.order))
	for _, id := range r.order {
		all = append(all, *r.windows[id])
	}
	return all
}

// IDs returns the registered ids in registration order.
func (r *Registry) IDs() []string {
	ids := make([]string, len(r.order))
	copy(ids, r.order)
	return ids
}

// Len returns the number of registered windows.
func (r *Registry) Len() int {
	return len(r.order)
}

// maxZ returns the highest z-order held by any window other than exclude,
// never lower than the baseline.
func (r *Registry) maxZ(exclude string) int {
	highest := r.baseline
	for id, w := range r.windows {
		if id != exclude && w.Z > highest {
			highest = w.Z
		}
	}
	return highest
}
