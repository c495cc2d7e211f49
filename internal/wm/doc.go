/*
Package wm implements the window manager behind the marios desktop.

It manages a small, fixed set of windows discovered at startup: their
visibility, geometry mode, z-order and position, pointer dragging, and the
switch between the multi-window desktop presentation and the single
fullscreen app presentation used on narrow (mobile) viewports.

The package is split into the same components the desktop is built from:

  - Registry holds the canonical window records.
  - FocusController owns the active window, z-order and cycling.
  - DragController runs the pointer drag state machine.
  - ViewportModeController detects desktop vs. mobile and owns the
    fullscreen window.
  - LauncherBinding maps launcher icons to windows and projects their
    active/dimmed state.

Manager ties them together and consumes input events:

	mgr, err := wm.NewManager(wm.Options{
		Viewport:        wm.Size{W: 120, H: 40},
		StatusBarHeight: 1,
		DefaultWindow:   "terminal-main",
	}, specs)
	if err != nil {
		// handle error
	}
	_, err = mgr.Dispatch(wm.Click{Target: wm.Target{Kind: wm.TargetLauncher, Launcher: "about"}})

Everything here runs on a single thread. Callers on other goroutines must
hand work to the UI loop rather than touch a Manager directly.
*/
package wm
