package view

import (
	"fmt"

	"github.com/mattn/go-runewidth"

	"marios/internal/tui/model"
	"marios/internal/wm"
)

const (
	monitorWidth         = 32
	monitorExpandedRows  = 11
	monitorCollapsedRows = 3
	trayToggleLabel      = "[SYS]"
	homeIconWidth        = 14
	homeIconHeight       = 4
)

// LauncherSlot is the on-screen region of one launcher.
type LauncherSlot struct {
	State wm.LauncherState
	Rect  wm.Rect
	Label string
	// Home marks an icon of the mobile home screen rather than the taskbar.
	Home bool
}

func statusBarHeight(m *model.Model) int {
	return max(1, m.Config.Desktop.StatusBarHeight)
}

func taskbarRow(m *model.Model) int {
	return m.Height - 1
}

func launcherTitle(m *model.Model, s wm.LauncherState) (icon, title string) {
	def, ok := m.Definition(s.Window)
	if !ok {
		return "[?]", s.Launcher
	}
	title = def.Title
	if title == "" {
		title = def.ID
	}
	icon = def.Icon
	if icon == "" {
		icon = "[*]"
	}
	return icon, title
}

// TaskbarSlots lays the launchers out left to right on the bottom row. On a
// narrow screen only the icons are shown.
func TaskbarSlots(m *model.Model) []LauncherSlot {
	mobile := m.WM.Mode() == wm.Mobile
	limit := TrayToggle(m).X - 1
	x := 1
	var slots []LauncherSlot
	for i, s := range m.Launchers {
		icon, title := launcherTitle(m, s)
		label := fmt.Sprintf(" %d %s %s ", i+1, icon, title)
		if mobile {
			label = fmt.Sprintf(" %s ", icon)
		}
		w := runewidth.StringWidth(label)
		if x+w > limit {
			break
		}
		slots = append(slots, LauncherSlot{
			State: s,
			Rect:  wm.Rect{X: x, Y: taskbarRow(m), W: w, H: 1},
			Label: label,
		})
		x += w + 1
	}
	return slots
}

// HomeSlots lays the launchers out as a grid of icons on the mobile home
// screen. It is empty unless the home screen is showing.
func HomeSlots(m *model.Model) []LauncherSlot {
	if !HomeScreenVisible(m) {
		return nil
	}
	top := statusBarHeight(m) + 3
	cols := max(1, (m.Width-2)/homeIconWidth)
	left := (m.Width - cols*homeIconWidth) / 2
	var slots []LauncherSlot
	for i, s := range m.Launchers {
		icon, title := launcherTitle(m, s)
		rect := wm.Rect{
			X: left + (i%cols)*homeIconWidth,
			Y: top + (i/cols)*homeIconHeight,
			W: homeIconWidth - 2,
			H: homeIconHeight - 1,
		}
		if rect.Y+rect.H > taskbarRow(m) {
			break
		}
		slots = append(slots, LauncherSlot{State: s, Rect: rect, Label: icon + " " + title, Home: true})
	}
	return slots
}

// HomeScreenVisible reports whether the mobile home screen is showing, which
// is the case in mobile mode while no window is fullscreen.
func HomeScreenVisible(m *model.Model) bool {
	if m.WM.Mode() != wm.Mobile {
		return false
	}
	_, ok := m.WM.Viewport().Fullscreen()
	return !ok
}

// LauncherAt returns the launcher slot under p.
func LauncherAt(m *model.Model, p wm.Point) (LauncherSlot, bool) {
	slots := append(TaskbarSlots(m), HomeSlots(m)...)
	for _, s := range slots {
		if s.Rect.Contains(p) {
			return s, true
		}
	}
	return LauncherSlot{}, false
}

// TrayToggle is the system monitor button at the right of the taskbar.
func TrayToggle(m *model.Model) wm.Rect {
	w := len(trayToggleLabel)
	return wm.Rect{X: max(0, m.Width-w-1), Y: taskbarRow(m), W: w, H: 1}
}

// MonitorPanel is the rectangle of the system monitor in the top right
// corner. It is only shown on the desktop.
func MonitorPanel(m *model.Model) (wm.Rect, bool) {
	if !m.Monitor.Visible() || m.WM.Mode() != wm.Desktop {
		return wm.Rect{}, false
	}
	h := monitorExpandedRows
	if m.Monitor.Collapsed() {
		h = monitorCollapsedRows
	}
	w := min(monitorWidth, m.Width)
	return wm.Rect{X: m.Width - w, Y: statusBarHeight(m), W: w, H: h}, true
}

// MonitorCollapseButton is the "[-]"/"[+]" button in the monitor header.
func MonitorCollapseButton(panel wm.Rect) wm.Rect {
	return wm.Rect{X: panel.X + panel.W - 5, Y: panel.Y + 1, W: 3, H: 1}
}

// BodyRect is the content area inside a window frame, below the title bar
// and its separator.
func BodyRect(frame wm.Rect) wm.Rect {
	return wm.Rect{X: frame.X + 2, Y: frame.Y + 3, W: max(0, frame.W-4), H: max(0, frame.H-4)}
}
