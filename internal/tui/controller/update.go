package controller

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"marios/internal/ambient"
	"marios/internal/tui/model"
	"marios/internal/wm"
	"marios/pkg/logging"
)

const controllerDispatchSubsystem = "ControllerDispatch"

// mainControllerDispatch is the central message routing function of the
// desktop. Window manager state only changes through input messages and
// ExecMsg; the timers only touch cosmetic state.
func mainControllerDispatch(m *model.Model, msg tea.Msg) (*model.Model, tea.Cmd) {
	switch msg.(type) {
	case spinner.TickMsg, tea.MouseMsg, model.NewLogEntryMsg, model.ClockTickMsg, model.KeystrokeTickMsg:
	default:
		LogDebug(m, controllerDispatchSubsystem, "Received msg: %T", msg)
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		return handleKeyMsgGlobal(m, msg)

	case tea.MouseMsg:
		return handleMouseMsg(m, msg)

	case tea.WindowSizeMsg:
		return handleWindowSizeMsg(m, msg)

	case model.ExecMsg:
		return handleExecMsg(m, msg)

	case model.NewLogEntryMsg:
		m = handleNewLogEntry(m, msg)
		return m, model.ListenForLogEntriesCmd(m.LogChannel)

	case model.NotificationMsg:
		return handleNotification(m, msg)

	case model.ToastExpiryMsg:
		m.Toasts.Expire(time.Time(msg))
		return m, scheduleToastExpiry(m, time.Time(msg))

	case model.ContactResultMsg:
		return handleContactResult(m, msg)

	case model.BootTickMsg:
		if m.CurrentAppMode != model.ModeBooting {
			return m, nil
		}
		return m, model.BootTickCmd()

	case model.BootDoneMsg:
		return handleBootDone(m)

	case model.WelcomeFollowUpMsg:
		ambient.WelcomeFollowUp(m.Bus)
		return m, nil

	case model.ClockTickMsg:
		return m, model.ClockTickCmd()

	case model.StatsTickMsg:
		m.Monitor.Tick()
		return m, model.StatsTickCmd()

	case model.EventTickMsg:
		m.Events.Tick()
		return m, model.EventTickCmd()

	case model.TypingTickMsg:
		cmds := []tea.Cmd{model.TypingTickCmd()}
		if m.Typist.Tick() {
			cmds = append(cmds, model.KeystrokeTickCmd())
		}
		return m, tea.Batch(cmds...)

	case model.KeystrokeTickMsg:
		if m.Typist.Keystroke() {
			return m, model.KeystrokeTickCmd()
		}
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.Spinner, cmd = m.Spinner.Update(msg)
		return m, cmd

	default:
		var cmd tea.Cmd
		if m.CurrentAppMode == model.ModeLogOverlay {
			m.LogViewport, cmd = m.LogViewport.Update(msg)
		} else if m.Form != nil && m.Form.Editing {
			cmd = m.Form.Update(msg)
		}
		return m, cmd
	}
}

// handleExecMsg runs remote work on the UI loop so the window manager is
// only ever touched from here.
func handleExecMsg(m *model.Model, msg model.ExecMsg) (*model.Model, tea.Cmd) {
	err := func() (err error) {
		defer func() {
			if r := recover(); r != nil {
				err = fmt.Errorf("window manager operation panicked: %v", r)
			}
		}()
		return msg.Fn(m.WM)
	}()
	if err != nil {
		LogDebug(m, controllerDispatchSubsystem, "Remote operation failed: %v", err)
	}
	if msg.Result != nil {
		msg.Result <- err
	}
	return m, nil
}

func handleNotification(m *model.Model, msg model.NotificationMsg) (*model.Model, tea.Cmd) {
	n := msg.Notification
	m.Toasts.Push(n)
	LogDebug(m, controllerDispatchSubsystem, "Notification [%s] %s", n.Level, n.Message)
	return m, tea.Batch(
		model.ListenForNotificationsCmd(m.Notifications),
		model.ToastExpiryCmd(n.Expires(), time.Now()),
	)
}

// scheduleToastExpiry arms a timer for the next toast to run out.
func scheduleToastExpiry(m *model.Model, now time.Time) tea.Cmd {
	next, ok := m.Toasts.NextExpiry()
	if !ok {
		return nil
	}
	return model.ToastExpiryCmd(next, now)
}

func handleBootDone(m *model.Model) (*model.Model, tea.Cmd) {
	if m.CurrentAppMode == model.ModeBooting {
		m.CurrentAppMode = model.ModeDesktop
	}
	LogInfo(tuiSubsystem, "Desktop ready in %s mode", m.WM.Mode())
	ambient.Welcome(m.Bus)
	return m, model.WelcomeFollowUpCmd()
}

func handleContactResult(m *model.Model, msg model.ContactResultMsg) (*model.Model, tea.Cmd) {
	if m.Form == nil {
		return m, nil
	}
	m.Form.Sending = false
	if msg.Err != nil {
		LogError(tuiSubsystem, msg.Err, "Contact form submission failed")
		return m, nil
	}
	m.Form.Reset()
	return m, nil
}

// reportWM logs a failed window manager operation and shows it as a toast.
func reportWM(m *model.Model, op string, err error) {
	if err == nil {
		return
	}
	LogWarn(tuiSubsystem, "%s failed: %v", op, err)
	m.Publish(wm.LevelWarning, fmt.Sprintf("%s: %v", op, err), 2*time.Second)
}

func handleNewLogEntry(m *model.Model, msg model.NewLogEntryMsg) *model.Model {
	entry := msg.Entry

	// Debug entries only reach the activity log in debug mode.
	if entry.Level >= logging.LevelInfo || m.DebugMode {
		logLine := fmt.Sprintf("%s [%s] [%s] %s",
			entry.Timestamp.Format("15:04:05.000"),
			entry.Level.String(),
			entry.Subsystem,
			entry.Message)

		if entry.Err != nil {
			logLine = fmt.Sprintf("%s -- Error: %v", logLine, entry.Err)
		}
		model.AddRawLineToActivityLog(m, logLine)
	}
	return m
}
