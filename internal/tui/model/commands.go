package model

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"marios/internal/ambient"
	"marios/internal/contact"
	"marios/internal/notify"
	"marios/pkg/logging"
)

const (
	bootTickInterval = 150 * time.Millisecond
	contactTimeout   = 30 * time.Second
)

// ListenForLogEntriesCmd waits for the next log entry.
func ListenForLogEntriesCmd(ch <-chan logging.LogEntry) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		entry, ok := <-ch
		if !ok {
			return nil
		}
		return NewLogEntryMsg{Entry: entry}
	}
}

// ListenForNotificationsCmd waits for the next notification on sub.
func ListenForNotificationsCmd(sub *notify.Subscription) tea.Cmd {
	if sub == nil || sub.Channel == nil {
		return nil
	}
	return func() tea.Msg {
		n, ok := <-sub.Channel
		if !ok {
			return nil
		}
		return NotificationMsg{Notification: n}
	}
}

// ToastExpiryCmd fires at the given time.
func ToastExpiryCmd(at, now time.Time) tea.Cmd {
	d := at.Sub(now)
	if d < time.Millisecond {
		d = time.Millisecond
	}
	return tea.Tick(d, func(t time.Time) tea.Msg { return ToastExpiryMsg(t) })
}

func BootTickCmd() tea.Cmd {
	return tea.Tick(bootTickInterval, func(t time.Time) tea.Msg { return BootTickMsg(t) })
}

// BootDoneCmd ends the boot screen after d.
func BootDoneCmd(d time.Duration) tea.Cmd {
	if d <= 0 {
		return func() tea.Msg { return BootDoneMsg{} }
	}
	return tea.Tick(d, func(time.Time) tea.Msg { return BootDoneMsg{} })
}

func WelcomeFollowUpCmd() tea.Cmd {
	return tea.Tick(time.Second, func(time.Time) tea.Msg { return WelcomeFollowUpMsg{} })
}

func ClockTickCmd() tea.Cmd {
	return tea.Tick(ambient.ClockInterval, func(t time.Time) tea.Msg { return ClockTickMsg(t) })
}

func StatsTickCmd() tea.Cmd {
	return tea.Tick(ambient.StatsInterval, func(t time.Time) tea.Msg { return StatsTickMsg(t) })
}

func EventTickCmd() tea.Cmd {
	return tea.Tick(ambient.EventInterval, func(t time.Time) tea.Msg { return EventTickMsg(t) })
}

func TypingTickCmd() tea.Cmd {
	return tea.Tick(ambient.TypingInterval, func(t time.Time) tea.Msg { return TypingTickMsg(t) })
}

func KeystrokeTickCmd() tea.Cmd {
	return tea.Tick(ambient.KeystrokeInterval, func(t time.Time) tea.Msg { return KeystrokeTickMsg(t) })
}

// SubmitContactCmd sends the message in the background. The client reports
// progress on the notification bus itself.
func SubmitContactCmd(c ContactSubmitter, msg contact.Message) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), contactTimeout)
		defer cancel()
		return ContactResultMsg{Err: c.Submit(ctx, msg)}
	}
}
