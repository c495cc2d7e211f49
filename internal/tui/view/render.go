package view

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"marios/internal/ambient"
	"marios/internal/tui/design"
	"marios/internal/tui/model"
	"marios/internal/wm"
)

// Render is the main view function.
func Render(m *model.Model) string {
	if m.Width < design.MinWidth || m.Height < design.MinHeight {
		return lipgloss.Place(m.Width, m.Height, lipgloss.Center, lipgloss.Center,
			design.TextStyle.Render(fmt.Sprintf("terminal too small (%dx%d)", m.Width, m.Height)))
	}

	switch m.CurrentAppMode {
	case model.ModeQuitting:
		return design.StatusBarStyle.Render(m.QuittingMessage)
	case model.ModeBooting:
		return renderBoot(m)
	case model.ModeHelpOverlay:
		return renderHelpOverlay(m)
	case model.ModeLogOverlay:
		return renderLogOverlay(m)
	default:
		return Desktop(m).String()
	}
}

// Desktop paints the desktop: status bar, windows back to front, taskbar,
// system monitor and toasts.
func Desktop(m *model.Model) *Canvas {
	c := NewCanvas(m.Width, m.Height)
	snap := m.Snapshot()

	if snap.Mode == wm.Desktop {
		drawRain(c, m)
	}
	drawStatusBar(c, m, snap)
	if HomeScreenVisible(m) {
		drawHomeScreen(c, m)
	}
	if panel, ok := MonitorPanel(m); ok {
		drawMonitor(c, m, panel)
	}
	for _, v := range snap.Stack() {
		drawWindow(c, m, v)
	}
	drawTaskbar(c, m)
	drawToasts(c, m)
	if m.DebugMode {
		drawDebug(c, m, snap)
	}
	return c
}

// drawRain scatters falling digits over the desktop background. The phase
// advances with the clock.
func drawRain(c *Canvas, m *model.Model) {
	glyphs := []rune("01")
	phase := int(m.Now().Unix())
	for x := 3; x < c.W; x += 9 {
		for y := 1; y < c.H-1; y++ {
			if k := ((y-phase*(1+x%3)+x*7)%13 + 13) % 13; k > 2 {
				continue
			}
			c.Set(x, y, glyphs[(x+y)%len(glyphs)], design.RoleRain)
		}
	}
}

func drawStatusBar(c *Canvas, m *model.Model, snap wm.Snapshot) {
	c.Fill(wm.Rect{X: 0, Y: 0, W: c.W, H: statusBarHeight(m)}, ' ', design.RoleStatusBar)
	x := 1 + c.Text(1, 0, "◉ mar.iOS", design.RoleStatusAccent, c.W)

	if id, ok := m.ActiveWindow(); ok {
		if v, ok := snap.Window(id); ok {
			c.Text(x+1, 0, "│ "+v.Title, design.RoleStatusBar, c.W/2-x)
		}
	}

	now := m.Now()
	right := ambient.FormatClock(now)
	if snap.Mode == wm.Desktop {
		stats := m.Monitor.Stats()
		right = fmt.Sprintf("CPU %d%% │ RAM %d%% │ %s %s", stats.CPU, stats.RAM, ambient.FormatDate(now), right)
	}
	w := lipgloss.Width(right)
	c.Text(c.W-w-1, 0, right, design.RoleStatusBar, w)
}

func drawTaskbar(c *Canvas, m *model.Model) {
	row := taskbarRow(m)
	c.Fill(wm.Rect{X: 0, Y: row, W: c.W, H: 1}, ' ', design.RoleTaskbar)
	for _, s := range TaskbarSlots(m) {
		c.Text(s.Rect.X, s.Rect.Y, s.Label, launcherRole(s.State), s.Rect.W)
	}
	if m.WM.Mode() == wm.Desktop {
		t := TrayToggle(m)
		role := design.RoleLauncherDimmed
		if m.Monitor.Visible() {
			role = design.RoleLauncherActive
		}
		c.Text(t.X, t.Y, trayToggleLabel, role, t.W)
	}
}

func launcherRole(s wm.LauncherState) design.Role {
	switch {
	case s.Active:
		return design.RoleLauncherActive
	case s.Dimmed:
		return design.RoleLauncherDimmed
	default:
		return design.RoleLauncher
	}
}

func drawHomeScreen(c *Canvas, m *model.Model) {
	top := statusBarHeight(m)
	c.Fill(wm.Rect{X: 0, Y: top, W: c.W, H: taskbarRow(m) - top}, ' ', design.RoleHome)
	title := "mar.iOS"
	c.Text((c.W-len(title))/2, top+1, title, design.RoleHomeTitle, c.W)
	for _, s := range HomeSlots(m) {
		c.Box(s.Rect, launcherRole(s.State), design.RoleHome)
		label := s.Label
		room := s.Rect.W - 2
		offset := max(0, (room-lipgloss.Width(label))/2)
		c.Text(s.Rect.X+1+offset, s.Rect.Y+1, label, launcherRole(s.State), room)
	}
}

func drawMonitor(c *Canvas, m *model.Model, panel wm.Rect) {
	c.Box(panel, design.RolePanel, design.RolePanel)
	c.Text(panel.X+2, panel.Y+1, "SYSTEM MONITOR", design.RolePanelTitle, panel.W-8)
	btn := MonitorCollapseButton(panel)
	glyph := "[-]"
	if m.Monitor.Collapsed() {
		glyph = "[+]"
	}
	c.Text(btn.X, btn.Y, glyph, design.RolePanelTitle, btn.W)
	if m.Monitor.Collapsed() {
		return
	}

	inner := panel.W - 4
	stats := m.Monitor.Stats()
	c.HLine(panel, panel.Y+2, design.RolePanel)
	c.Text(panel.X+2, panel.Y+3, gauge("CPU", stats.CPU, inner), design.RoleGauge, inner)
	c.Text(panel.X+2, panel.Y+4, gauge("RAM", stats.RAM, inner), design.RoleGauge, inner)
	c.Text(panel.X+2, panel.Y+5, "Uptime "+ambient.Uptime(m.StartedAt, m.Now()), design.RolePanel, inner)
	y := panel.Y + 6
	for _, p := range m.Monitor.Processes() {
		if y >= panel.Y+panel.H-1 {
			break
		}
		c.Text(panel.X+2, y, fmt.Sprintf("%-18s %s", p.Name, p.Status), design.RolePanel, inner)
		y++
	}
}

// gauge renders "CPU [█████·····] 45%" to fit width.
func gauge(label string, pct, width int) string {
	suffix := fmt.Sprintf(" %3d%%", pct)
	bar := max(1, width-len(label)-len(suffix)-3)
	filled := min(bar, pct*bar/100)
	out := label + " ["
	for i := 0; i < bar; i++ {
		if i < filled {
			out += "█"
		} else {
			out += "·"
		}
	}
	return out + "]" + suffix
}

var toastRoles = map[wm.Level]design.Role{
	wm.LevelInfo:    design.RoleToastInfo,
	wm.LevelSuccess: design.RoleToastSuccess,
	wm.LevelWarning: design.RoleToastWarning,
	wm.LevelError:   design.RoleToastError,
}

// drawToasts stacks the toasts newest first below the status bar, right
// aligned and above everything else.
func drawToasts(c *Canvas, m *model.Model) {
	items := m.Toasts.Items()
	y := statusBarHeight(m)
	if panel, ok := MonitorPanel(m); ok {
		y = panel.Y + panel.H
	}
	maxWidth := min(48, c.W-2)
	for i := len(items) - 1; i >= 0; i-- {
		n := items[i]
		text := " " + n.Message + " "
		w := min(maxWidth, lipgloss.Width(text))
		role, ok := toastRoles[n.Level]
		if !ok {
			role = design.RoleToastInfo
		}
		c.Text(c.W-w-1, y, text, role, w)
		y++
		if y >= taskbarRow(m) {
			break
		}
	}
}

func drawDebug(c *Canvas, m *model.Model, snap wm.Snapshot) {
	info := fmt.Sprintf(" %dx%d %s active=%s drag=%s ", m.Width, m.Height, snap.Mode, snap.Active, snap.Dragging)
	c.Text(0, taskbarRow(m)-1, info, design.RoleWindowBodyMuted, c.W)
}
