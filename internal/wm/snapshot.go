package wm

// WindowView is a window plus the state derived for presentation.
type WindowView struct {
	Window
	Active     bool `json:"active"`
	Fullscreen bool `json:"fullscreen"`
	Frame      Rect `json:"frame"`
}

// Snapshot is an immutable copy of the window manager state.
type Snapshot struct {
	Mode       ViewMode        `json:"mode"`
	Viewport   Size            `json:"viewport"`
	Active     string          `json:"active,omitempty"`
	Fullscreen string          `json:"fullscreen,omitempty"`
	Dragging   string          `json:"dragging,omitempty"`
	Windows    []WindowView    `json:"windows"`
	Launchers  []LauncherState `json:"launchers"`
}

// Snapshot captures the current state.
func (m *Manager) Snapshot() Snapshot {
	layout := m.Layout()
	fullscreen, _ := m.viewport.Fullscreen()
	dragging, _ := m.drag.Target()
	active, _ := m.focus.Active()

	s := Snapshot{
		Mode:       m.viewport.Mode(),
		Viewport:   m.viewport.Size(),
		Active:     active,
		Fullscreen: fullscreen,
		Dragging:   dragging,
		Launchers:  m.launchers.Project(),
	}
	for _, w := range m.reg.All() {
		s.Windows = append(s.Windows, WindowView{
			Window:     w,
			Active:     m.focus.IsActive(w.ID),
			Fullscreen: fullscreen == w.ID,
			Frame:      layout.Frame(w),
		})
	}
	return s
}

// Window returns the view of one window.
func (s Snapshot) Window(id string) (WindowView, bool) {
	for _, w := range s.Windows {
		if w.ID == id {
			return w, true
		}
	}
	return WindowView{}, false
}

// Stack returns the drawable windows, back to front.
func (s Snapshot) Stack() []WindowView {
	windows := make([]Window, len(s.Windows))
	for i, w := range s.Windows {
		windows[i] = w.Window
	}
	var out []WindowView
	for _, w := range Stacking(windows, s.Mode, s.Fullscreen) {
		if view, ok := s.Window(w.ID); ok {
			out = append(out, view)
		}
	}
	return out
}

// Launcher returns the projected state of one launcher.
func (s Snapshot) Launcher(id string) (LauncherState, bool) {
	for _, l := range s.Launchers {
		if l.Launcher == id {
			return l, true
		}
	}
	return LauncherState{}, false
}
