package controller

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"marios/internal/tui/model"
	"marios/internal/wm"
)

const toastDuration = 2 * time.Second

// clipboardWrite is replaced in tests.
var clipboardWrite = clipboard.WriteAll

// handleKeyMsgGlobal routes a key press: quit, boot skip, overlays, the
// contact form, window manager shortcuts and finally the desktop bindings.
func handleKeyMsgGlobal(m *model.Model, keyMsg tea.KeyMsg) (*model.Model, tea.Cmd) {
	editing := m.Form != nil && m.Form.Editing && m.CurrentAppMode == model.ModeDesktop

	if keyMsg.String() == "ctrl+c" || (!editing && key.Matches(keyMsg, m.Keys.Quit)) {
		m.CurrentAppMode = model.ModeQuitting
		m.QuittingMessage = "Shutting down mar.iOS..."
		return m, tea.Quit
	}

	switch m.CurrentAppMode {
	case model.ModeBooting:
		switch keyMsg.String() {
		case "esc", "enter", " ":
			return m, model.BootDoneCmd(0)
		}
		return m, nil

	case model.ModeLogOverlay:
		switch {
		case key.Matches(keyMsg, m.Keys.ToggleLog), key.Matches(keyMsg, m.Keys.Esc):
			m.CurrentAppMode = model.ModeDesktop
			return m, nil
		case key.Matches(keyMsg, m.Keys.Copy):
			if err := clipboardWrite(strings.Join(m.ActivityLog, "\n")); err != nil {
				LogError(tuiSubsystem, err, "Failed to copy logs")
				m.Publish(wm.LevelError, "Copy logs failed", toastDuration)
				return m, nil
			}
			m.Publish(wm.LevelSuccess, "Logs copied to clipboard", toastDuration)
			return m, nil
		case key.Matches(keyMsg, m.Keys.ScrollUp), key.Matches(keyMsg, m.Keys.ScrollDown):
			var vpCmd tea.Cmd
			m.LogViewport, vpCmd = m.LogViewport.Update(keyMsg)
			return m, vpCmd
		}
		return m, nil

	case model.ModeHelpOverlay:
		if key.Matches(keyMsg, m.Keys.Esc) || key.Matches(keyMsg, m.Keys.Help) {
			m.CurrentAppMode = model.ModeDesktop
		}
		return m, nil

	case model.ModeQuitting:
		return m, nil
	}

	if editing {
		return handleKeyMsgFormInput(m, keyMsg)
	}

	// Window manager shortcuts take precedence over the desktop bindings.
	if kd, err := wm.ParseKey(keyMsg.String()); err == nil {
		handled, err := m.WM.Dispatch(kd)
		if handled {
			reportWM(m, "shortcut", err)
			return m, nil
		}
	}

	switch {
	case key.Matches(keyMsg, m.Keys.Launch):
		return handleLaunchKey(m, keyMsg.String())

	case key.Matches(keyMsg, m.Keys.CloseWindow):
		if id, ok := m.ActiveWindow(); ok {
			reportWM(m, "close", m.WM.Close(id))
		}
		return m, nil

	case key.Matches(keyMsg, m.Keys.Maximize):
		if id, ok := m.ActiveWindow(); ok {
			reportWM(m, "maximize", m.WM.ToggleMaximize(id))
		}
		return m, nil

	case key.Matches(keyMsg, m.Keys.NextTab):
		return switchTab(m, 1)

	case key.Matches(keyMsg, m.Keys.PrevTab):
		return switchTab(m, -1)

	case key.Matches(keyMsg, m.Keys.Enter):
		if id, ok := m.ActiveWindow(); ok && m.Form != nil && m.Form.WindowID == id && !m.Form.Sending {
			return m, m.Form.StartEditing()
		}
		return m, nil

	case key.Matches(keyMsg, m.Keys.Copy):
		return copyEmail(m)

	case key.Matches(keyMsg, m.Keys.ToggleMonitor):
		m.Monitor.Toggle()
		return m, nil

	case key.Matches(keyMsg, m.Keys.Help):
		m.LastAppMode = m.CurrentAppMode
		m.CurrentAppMode = model.ModeHelpOverlay
		return m, nil

	case key.Matches(keyMsg, m.Keys.ToggleLog):
		m.LastAppMode = m.CurrentAppMode
		m.CurrentAppMode = model.ModeLogOverlay
		m.ActivityLogDirty = true
		return m, nil

	case key.Matches(keyMsg, m.Keys.ToggleDark):
		currentIsDark := lipgloss.HasDarkBackground()
		lipgloss.SetHasDarkBackground(!currentIsDark)
		colorProfile := lipgloss.ColorProfile().String()
		m.ColorMode = fmt.Sprintf("%s (Dark: %v)", colorProfile, !currentIsDark)
		return m, nil

	case key.Matches(keyMsg, m.Keys.ToggleDebug):
		m.DebugMode = !m.DebugMode
		return m, nil
	}

	return m, nil
}

// handleLaunchKey taps the launcher at the digit's taskbar position.
func handleLaunchKey(m *model.Model, digit string) (*model.Model, tea.Cmd) {
	n, err := strconv.Atoi(digit)
	if err != nil || n < 1 || n > len(m.Launchers) {
		return m, nil
	}
	launcher := m.Launchers[n-1].Launcher
	reportWM(m, "launch "+launcher, m.WM.Tap(launcher, nil))
	return m, nil
}

func switchTab(m *model.Model, delta int) (*model.Model, tea.Cmd) {
	id, ok := m.ActiveWindow()
	if !ok {
		return m, nil
	}
	if name, ok := m.SwitchTab(id, delta); ok {
		m.Publish(wm.LevelInfo, "Switched to "+name, time.Second)
	}
	return m, nil
}

func copyEmail(m *model.Model) (*model.Model, tea.Cmd) {
	email := m.Config.Contact.Email
	if email == "" {
		return m, nil
	}
	if err := clipboardWrite(email); err != nil {
		LogError(tuiSubsystem, err, "Failed to copy email address")
		m.Publish(wm.LevelError, "Copy failed", toastDuration)
		return m, nil
	}
	m.Publish(wm.LevelSuccess, "Email copied to clipboard", toastDuration)
	return m, nil
}

// handleKeyMsgFormInput drives the contact form while it is being edited.
func handleKeyMsgFormInput(m *model.Model, keyMsg tea.KeyMsg) (*model.Model, tea.Cmd) {
	f := m.Form

	switch {
	case key.Matches(keyMsg, m.Keys.Esc):
		f.StopEditing()
		return m, nil

	case key.Matches(keyMsg, m.Keys.NextField):
		return m, f.Move(1)

	case key.Matches(keyMsg, m.Keys.PrevField):
		return m, f.Move(-1)

	case key.Matches(keyMsg, m.Keys.Enter):
		if !f.OnLastField() {
			return m, f.Move(1)
		}
		return submitContact(m)
	}

	return m, f.Update(keyMsg)
}

func submitContact(m *model.Model) (*model.Model, tea.Cmd) {
	f := m.Form
	msg := f.Message()
	if err := msg.Validate(); err != nil {
		m.Publish(wm.LevelWarning, strings.TrimPrefix(err.Error(), "invalid message: "), toastDuration)
		return m, nil
	}
	if m.Contact == nil {
		LogWarn(tuiSubsystem, "Cannot send message: no contact client")
		m.Publish(wm.LevelError, "Contact form is not configured", toastDuration)
		return m, nil
	}
	f.StopEditing()
	f.Sending = true
	LogInfo(tuiSubsystem, "Submitting contact form from %s", msg.Email)
	return m, model.SubmitContactCmd(m.Contact, msg)
}
