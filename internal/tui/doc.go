// Package tui provides the terminal desktop of marios.
//
// The desktop is a Bubble Tea program that draws the windows of a
// wm.Manager, a status bar, a taskbar of launchers, a system monitor panel
// and notification toasts. Terminal input is translated into window manager
// events; the window manager never sees Bubble Tea types.
//
// # Architecture
//
// The TUI follows a Model-View-Controller (MVC) pattern:
//
//   - Model: desktop state around the window manager (cosmetic timers,
//     contact form, toasts, activity log)
//   - View: paints the desktop onto a cell canvas, back to front
//   - Controller: routes key, mouse and resize messages and owns the
//     Bubble Tea program
//
// # Core Components
//
// Model (internal/tui/model/):
//   - Creates the wm.Manager with the model as its Renderer and LauncherSink
//   - Caches wrapped window bodies until the window manager reports a change
//   - Holds the cosmetic state: clock, fake system stats, typing prompt
//
// View (internal/tui/view/):
//   - Canvas composes windows by z-order with wide rune support
//   - Layout functions compute the taskbar, home screen, tray and monitor
//     regions; the controller hit tests with the same functions
//   - Overlays for help and the activity log
//
// Controller (internal/tui/controller/):
//   - Key handling: launcher digits, window shortcuts, tabs, contact form
//   - Mouse handling: launchers, title bar buttons, dragging
//   - Program runs functions against the window manager on the UI loop, so
//     the MCP server can drive a running desktop
//
// # Message Flow
//
//  1. Input arrives as tea.KeyMsg, tea.MouseMsg or tea.WindowSizeMsg
//  2. The controller dispatches wm events to the Manager
//  3. The Manager calls Render for every changed window and publishes
//     notifications on the bus
//  4. The bus is drained into toasts; the view repaints from a Snapshot
//
// Timers (clock, stats, events, typing) only touch cosmetic state.
//
// # Keyboard Navigation
//
//   - 1-9: Tap the launcher at that taskbar position
//   - Alt+Tab / F6: Cycle focus
//   - Ctrl+M / F9: Minimize the active window
//   - x, +: Close or maximize the active window
//   - Left/Right: Switch tabs
//   - Enter: Edit the contact form
//   - y: Copy the contact email
//   - s, ?, L: Monitor, help and log overlays
//   - q/Ctrl+C: Quit
//
// # Usage Example
//
//	m, err := model.InitializeModel(model.Config{Desktop: cfg, Options: opts})
//	if err != nil {
//	    return err
//	}
//	p := controller.NewProgram(m)
//	if err := p.Run(ctx); err != nil {
//	    return err
//	}
package tui
