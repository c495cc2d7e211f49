package wm

import "errors"

// Common errors for window manager operations
var (
	// ErrUnknownWindow is returned when an operation references an id that was
	// never registered. The window set is fixed at startup, so this is a
	// programming error.
	ErrUnknownWindow = errors.New("unknown window")

	// ErrDuplicateWindow is returned when the same id is registered twice.
	ErrDuplicateWindow = errors.New("window already registered")

	// ErrUnknownLauncher is returned when a launcher id has no binding.
	ErrUnknownLauncher = errors.New("unknown launcher")

	// ErrDuplicateLauncher is returned when a launcher id is bound twice.
	ErrDuplicateLauncher = errors.New("launcher already bound")

	// ErrNoActiveWindow is reported when no window holds focus. Shortcut
	// handlers treat it as a silent no-op.
	ErrNoActiveWindow = errors.New("no active window")

	// ErrWindowNotVisible is returned when focusing a hidden or minimized window.
	ErrWindowNotVisible = errors.New("window is not visible")
)
