package controller

import (
	tea "github.com/charmbracelet/bubbletea"

	"marios/internal/tui/model"
	"marios/internal/wm"
)

// handleWindowSizeMsg records the terminal size and feeds it to the window
// manager, which may switch between desktop and mobile presentation.
func handleWindowSizeMsg(m *model.Model, msg tea.WindowSizeMsg) (*model.Model, tea.Cmd) {
	m.Width = msg.Width
	m.Height = msg.Height

	before := m.WM.Mode()
	_, err := m.WM.Dispatch(wm.Resize{Width: msg.Width, Height: msg.Height})
	reportWM(m, "resize", err)
	if after := m.WM.Mode(); after != before {
		LogInfo(tuiSubsystem, "Switched to %s layout at %dx%d", after, msg.Width, msg.Height)
	}
	return m, nil
}
