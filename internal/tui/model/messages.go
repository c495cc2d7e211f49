package model

import (
	"time"

	"marios/internal/notify"
	"marios/internal/wm"
	"marios/pkg/logging"
)

// ---- Logging and notifications ----

type NewLogEntryMsg struct {
	Entry logging.LogEntry
}

type NotificationMsg struct {
	Notification notify.Notification
}

// ToastExpiryMsg fires when the oldest toast may have run out.
type ToastExpiryMsg time.Time

// ---- Remote control ----

// ExecMsg carries work submitted from another goroutine. It runs on the UI
// loop and the result is sent back on Result.
type ExecMsg struct {
	Fn     func(m *wm.Manager) error
	Result chan<- error
}

// ---- Contact form ----

type ContactResultMsg struct {
	Err error
}

// ---- Boot sequence ----

type BootTickMsg time.Time

type BootDoneMsg struct{}

type WelcomeFollowUpMsg struct{}

// ---- Ambient timers ----

type ClockTickMsg time.Time

type StatsTickMsg time.Time

type EventTickMsg time.Time

type TypingTickMsg time.Time

type KeystrokeTickMsg time.Time
