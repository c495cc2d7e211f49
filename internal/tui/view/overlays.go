package view

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"marios/internal/tui/design"
	"marios/internal/tui/model"
)

func renderHelpOverlay(m *model.Model) string {
	titleView := design.HelpTitleStyle.Render("KEYBOARD SHORTCUTS")

	cycle := strings.Join(m.Config.Keys.Cycle, " / ")
	minimize := strings.Join(m.Config.Keys.Minimize, " / ")

	var helpLines []string
	helpLines = append(helpLines, "")
	helpLines = append(helpLines, "Windows:")
	helpLines = append(helpLines, "  1-9            Tap launcher (open / focus / close)")
	helpLines = append(helpLines, "  "+pad(cycle, 15)+"Cycle focus")
	helpLines = append(helpLines, "  "+pad(minimize, 15)+"Minimize active window")
	helpLines = append(helpLines, "  +              Maximize / restore active window")
	helpLines = append(helpLines, "  x              Close active window")
	helpLines = append(helpLines, "  ←/→            Switch tabs")
	helpLines = append(helpLines, "  mouse          Drag title bars, click _ □ × and launchers")
	helpLines = append(helpLines, "")
	helpLines = append(helpLines, "Contact:")
	helpLines = append(helpLines, "  Enter          Edit form / next field / send")
	helpLines = append(helpLines, "  Tab/Shift+Tab  Move between fields")
	helpLines = append(helpLines, "  Esc            Stop editing")
	helpLines = append(helpLines, "  y              Copy email address")
	helpLines = append(helpLines, "")
	helpLines = append(helpLines, "View Controls:")
	helpLines = append(helpLines, "  h or ?         Show/hide this help")
	helpLines = append(helpLines, "  L              Show activity log overlay")
	helpLines = append(helpLines, "  s              Show/hide system monitor")
	helpLines = append(helpLines, "  D              Toggle dark mode")
	helpLines = append(helpLines, "  z              Toggle debug mode")
	helpLines = append(helpLines, "  q              Quit")

	container := design.CenteredOverlayContainerStyle.Render(titleView + "\n" + strings.Join(helpLines, "\n"))
	return lipgloss.Place(m.Width, m.Height, lipgloss.Center, lipgloss.Center, container)
}

func pad(s string, width int) string {
	if w := lipgloss.Width(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s + " "
}

func renderLogOverlay(m *model.Model) string {
	titleView := design.LogPanelTitleStyle.Render("Activity Log  (↑/↓ scroll  •  y copy  •  Esc close)")
	titleHeight := lipgloss.Height(titleView)

	overlayTotalWidth := int(float64(m.Width) * 0.8)
	overlayTotalHeight := int(float64(m.Height) * 0.7)

	newViewportWidth := max(0, overlayTotalWidth-design.LogOverlayStyle.GetHorizontalFrameSize())
	newViewportHeight := max(0, overlayTotalHeight-design.LogOverlayStyle.GetVerticalFrameSize()-titleHeight)

	dimensionsChanged := m.LogViewport.Width != newViewportWidth || m.LogViewport.Height != newViewportHeight
	m.LogViewport.Width = newViewportWidth
	m.LogViewport.Height = newViewportHeight
	if m.ActivityLogDirty || dimensionsChanged {
		m.LogViewport.SetContent(PrepareLogContent(m.ActivityLog))
		m.LogViewport.GotoBottom()
		m.ActivityLogDirty = false
	}

	content := lipgloss.JoinVertical(lipgloss.Left, titleView, m.LogViewport.View())
	overlay := design.LogOverlayStyle.
		Width(overlayTotalWidth - design.LogOverlayStyle.GetHorizontalFrameSize()).
		Height(overlayTotalHeight - design.LogOverlayStyle.GetVerticalFrameSize()).
		Render(content)
	return lipgloss.Place(m.Width, m.Height, lipgloss.Center, lipgloss.Center, overlay)
}

// PrepareLogContent applies color styles based on log level markers.
func PrepareLogContent(lines []string) string {
	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = styleLogLine(l)
	}
	return strings.Join(out, "\n")
}

func styleLogLine(l string) string {
	switch {
	case strings.Contains(l, "[ERROR]"):
		return design.TextErrorStyle.Render(l)
	case strings.Contains(l, "[WARN]"):
		return design.TextWarningStyle.Render(l)
	case strings.Contains(l, "[DEBUG]"):
		return design.TextSecondaryStyle.Render(l)
	default:
		return design.TextStyle.Render(l)
	}
}
