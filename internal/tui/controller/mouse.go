package controller

import (
	tea "github.com/charmbracelet/bubbletea"

	"marios/internal/tui/model"
	"marios/internal/tui/view"
	"marios/internal/wm"
)

// handleMouseMsg turns terminal mouse events into window manager input.
// Hit regions come from the same layout functions the view draws with.
func handleMouseMsg(m *model.Model, msg tea.MouseMsg) (*model.Model, tea.Cmd) {
	if m.CurrentAppMode == model.ModeLogOverlay {
		var cmd tea.Cmd
		m.LogViewport, cmd = m.LogViewport.Update(msg)
		return m, cmd
	}
	if m.CurrentAppMode != model.ModeDesktop {
		return m, nil
	}

	p := wm.Point{X: msg.X, Y: msg.Y}
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		return handleMousePress(m, p)

	case tea.MouseActionMotion:
		_, err := m.WM.Dispatch(wm.PointerMove{Position: p})
		reportWM(m, "drag", err)

	case tea.MouseActionRelease:
		_, err := m.WM.Dispatch(wm.PointerUp{})
		reportWM(m, "drag", err)
	}
	return m, nil
}

func handleMousePress(m *model.Model, p wm.Point) (*model.Model, tea.Cmd) {
	// The taskbar and the home screen are drawn above any window.
	if slot, ok := view.LauncherAt(m, p); ok {
		origin := wm.Point{X: slot.Rect.X + slot.Rect.W/2, Y: slot.Rect.Y}
		target := wm.Target{Kind: wm.TargetLauncher, Launcher: slot.State.Launcher}
		_, err := m.WM.Dispatch(wm.Click{Target: target, Origin: &origin})
		reportWM(m, "launch "+slot.State.Launcher, err)
		return m, nil
	}
	if m.WM.Mode() == wm.Desktop && view.TrayToggle(m).Contains(p) {
		m.Monitor.Toggle()
		return m, nil
	}

	target := m.WM.HitTest(p)
	switch target.Kind {
	case wm.TargetControl:
		_, err := m.WM.Dispatch(wm.Click{Target: target})
		reportWM(m, target.Control.String(), err)
		return m, nil

	case wm.TargetHeader, wm.TargetBody:
		_, err := m.WM.Dispatch(wm.PointerDown{Target: target, Position: p})
		reportWM(m, "focus", err)
		return m, nil
	}

	if panel, ok := view.MonitorPanel(m); ok && view.MonitorCollapseButton(panel).Contains(p) {
		m.Monitor.ToggleCollapsed()
	}
	return m, nil
}
