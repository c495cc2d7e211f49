package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"marios/internal/script"
	"marios/internal/wm"
)

// Tools returns every tool the server registers.
func (s *Server) Tools() []server.ServerTool {
	windowArg := mcp.WithString("id",
		mcp.Required(),
		mcp.Description("Window id, e.g. terminal-main"),
	)

	return []server.ServerTool{
		{
			Tool: mcp.NewTool("get_state",
				mcp.WithDescription("Get the full desktop state: mode, active window, windows and launchers"),
			),
			Handler: s.handleGetState,
		},
		{
			Tool: mcp.NewTool("list_windows",
				mcp.WithDescription("List every window with its visibility, mode, z-order and frame"),
			),
			Handler: s.handleListWindows,
		},
		{
			Tool:    mcp.NewTool("open_window", mcp.WithDescription("Open a window"), windowArg),
			Handler: s.windowHandler(func(m *wm.Manager, id string) error { return m.Open(id, nil) }),
		},
		{
			Tool:    mcp.NewTool("close_window", mcp.WithDescription("Close a window"), windowArg),
			Handler: s.windowHandler(func(m *wm.Manager, id string) error { return m.Close(id) }),
		},
		{
			Tool:    mcp.NewTool("focus_window", mcp.WithDescription("Focus a visible window and bring it to the front"), windowArg),
			Handler: s.windowHandler(func(m *wm.Manager, id string) error { return m.Focus(id) }),
		},
		{
			Tool:    mcp.NewTool("minimize_window", mcp.WithDescription("Minimize a visible window to the taskbar"), windowArg),
			Handler: s.windowHandler(func(m *wm.Manager, id string) error { return m.Minimize(id) }),
		},
		{
			Tool:    mcp.NewTool("toggle_maximize", mcp.WithDescription("Maximize a window, or restore it if already maximized"), windowArg),
			Handler: s.windowHandler(func(m *wm.Manager, id string) error { return m.ToggleMaximize(id) }),
		},
		{
			Tool: mcp.NewTool("cycle_windows",
				mcp.WithDescription("Focus the next visible window"),
			),
			Handler: s.managerHandler(func(m *wm.Manager) error { return m.Cycle() }),
		},
		{
			Tool: mcp.NewTool("tap_launcher",
				mcp.WithDescription("Tap a taskbar or home screen launcher"),
				mcp.WithString("launcher",
					mcp.Required(),
					mcp.Description("Launcher id, e.g. terminal"),
				),
			),
			Handler: s.handleTapLauncher,
		},
		{
			Tool: mcp.NewTool("press_key",
				mcp.WithDescription("Press a key combination such as alt+tab"),
				mcp.WithString("key",
					mcp.Required(),
					mcp.Description("Key combination"),
				),
			),
			Handler: s.handlePressKey,
		},
		{
			Tool: mcp.NewTool("resize_viewport",
				mcp.WithDescription("Resize the viewport, switching between desktop and mobile mode when the breakpoint is crossed"),
				mcp.WithNumber("width", mcp.Required(), mcp.Description("Width in cells")),
				mcp.WithNumber("height", mcp.Required(), mcp.Description("Height in cells")),
			),
			Handler: s.handleResize,
		},
		{
			Tool: mcp.NewTool("run_script",
				mcp.WithDescription("Replay a YAML input script against the live desktop and return the final state"),
				mcp.WithString("script",
					mcp.Required(),
					mcp.Description("Script source with a steps list"),
				),
			),
			Handler: s.handleRunScript,
		},
	}
}

func (s *Server) handleGetState(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return s.managerHandler(nil)(ctx, request)
}

func (s *Server) handleListWindows(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var windows []wm.WindowView
	err := s.exec.Do(ctx, func(m *wm.Manager) error {
		snap := m.Snapshot()
		windows = snap.Windows
		return nil
	})
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to list windows: %v", err)), nil
	}
	return jsonResult(windows)
}

func (s *Server) handleTapLauncher(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	launcher, err := request.RequireString("launcher")
	if err != nil {
		return mcp.NewToolResultError("launcher parameter is required"), nil
	}
	return s.managerHandler(func(m *wm.Manager) error { return m.Tap(launcher, nil) })(ctx, request)
}

func (s *Server) handlePressKey(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	combo, err := request.RequireString("key")
	if err != nil {
		return mcp.NewToolResultError("key parameter is required"), nil
	}
	key, err := wm.ParseKey(combo)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return s.managerHandler(func(m *wm.Manager) error {
		_, err := m.Dispatch(key)
		return err
	})(ctx, request)
}

func (s *Server) handleResize(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.GetArguments()
	width, ok := intArg(args, "width")
	if !ok || width <= 0 {
		return mcp.NewToolResultError("width must be a positive number"), nil
	}
	height, ok := intArg(args, "height")
	if !ok || height <= 0 {
		return mcp.NewToolResultError("height must be a positive number"), nil
	}
	return s.managerHandler(func(m *wm.Manager) error {
		_, err := m.Dispatch(wm.Resize{Width: width, Height: height})
		return err
	})(ctx, request)
}

// handleRunScript replays the script steps only; viewport and device
// overrides in the script header apply when a desktop is created and are
// ignored here.
func (s *Server) handleRunScript(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	source, err := request.RequireString("script")
	if err != nil {
		return mcp.NewToolResultError("script parameter is required"), nil
	}
	sc, err := script.Parse([]byte(source))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	var snap wm.Snapshot
	err = s.exec.Do(ctx, func(m *wm.Manager) error {
		var runErr error
		snap, runErr = script.NewPlayer(m, nil).Run(ctx, sc)
		return runErr
	})
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Script failed: %v", err)), nil
	}
	return jsonResult(snap)
}

// windowHandler builds a handler for an operation on the window named by
// the id argument.
func (s *Server) windowHandler(op func(m *wm.Manager, id string) error) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id, err := request.RequireString("id")
		if err != nil {
			return mcp.NewToolResultError("id parameter is required"), nil
		}
		return s.managerHandler(func(m *wm.Manager) error { return op(m, id) })(ctx, request)
	}
}

// managerHandler builds a handler that applies op, which may be nil, and
// returns the resulting state.
func (s *Server) managerHandler(op func(m *wm.Manager) error) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var snap wm.Snapshot
		err := s.exec.Do(ctx, func(m *wm.Manager) error {
			if op != nil {
				if err := op(m); err != nil {
					return err
				}
			}
			snap = m.Snapshot()
			return nil
		})
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("%s failed: %v", request.Params.Name, err)), nil
		}
		return jsonResult(snap)
	}
}

func jsonResult(v interface{}) (*mcp.CallToolResult, error) {
	jsonData, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to format result: %v", err)), nil
	}
	return mcp.NewToolResultText(string(jsonData)), nil
}

func intArg(args map[string]interface{}, name string) (int, bool) {
	switch v := args[name].(type) {
	case float64:
		return int(v), true
	case int:
		return v, true
	case json.Number:
		n, err := v.Int64()
		return int(n), err == nil
	}
	return 0, false
}
