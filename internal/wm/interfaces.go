package wm

import "time"

// Renderer translates window state into pixels (or cells). The registry calls
// Render every time a window's visibility, mode, z-order or geometry changes.
type Renderer interface {
	Render(w Window)
}

// RendererFunc adapts a function to the Renderer interface.
type RendererFunc func(w Window)

// Render calls f(w).
func (f RendererFunc) Render(w Window) { f(w) }

// Level is the severity of an advisory notification.
type Level string

const (
	LevelInfo    Level = "info"
	LevelSuccess Level = "success"
	LevelWarning Level = "warning"
	LevelError   Level = "error"
)

// Notification is a fire-and-forget advisory message, e.g. "about opened".
type Notification struct {
	Message  string
	Level    Level
	Duration time.Duration
}

// Notifier receives advisory notifications. Implementations must not call
// back into the Manager.
type Notifier interface {
	Notify(n Notification)
}

// NotifierFunc adapts a function to the Notifier interface.
type NotifierFunc func(n Notification)

// Notify calls f(n).
func (f NotifierFunc) Notify(n Notification) { f(n) }

// LauncherSink receives the launcher projection after every mutation.
type LauncherSink interface {
	Launchers(states []LauncherState)
}

// LauncherSinkFunc adapts a function to the LauncherSink interface.
type LauncherSinkFunc func(states []LauncherState)

// Launchers calls f(states).
func (f LauncherSinkFunc) Launchers(states []LauncherState) { f(states) }

type nopRenderer struct{}

func (nopRenderer) Render(Window) {}

type nopNotifier struct{}

func (nopNotifier) Notify(Notification) {}

type nopLauncherSink struct{}

func (nopLauncherSink) Launchers([]LauncherState) {}
