package mcpserver

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"marios/internal/config"
	"marios/internal/wm"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	m, err := wm.NewManager(wm.Options{
		Viewport:        wm.Size{W: 120, H: 40},
		StatusBarHeight: 1,
		TaskbarHeight:   1,
		DefaultWindow:   "terminal-main",
	}, []wm.WindowSpec{
		{Definition: wm.Definition{ID: "terminal-main", Geometry: wm.Point{X: 10, Y: 3}, Size: wm.Size{W: 60, H: 20}}, Launcher: "terminal"},
		{Definition: wm.Definition{ID: "about", Geometry: wm.Point{X: 20, Y: 5}, Size: wm.Size{W: 50, H: 16}}},
	})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	loop := NewLoop(m)
	go loop.Run(ctx)
	t.Cleanup(cancel)

	return NewServer(loop, config.MCPSettings{}, "test")
}

func call(t *testing.T, s *Server, name string, args map[string]interface{}) *mcp.CallToolResult {
	t.Helper()
	var tool *server.ServerTool
	for _, candidate := range s.Tools() {
		if candidate.Tool.Name == name {
			c := candidate
			tool = &c
		}
	}
	require.NotNil(t, tool, "tool %s not registered", name)

	result, err := tool.Handler(context.Background(), mcp.CallToolRequest{
		Params: mcp.CallToolParams{Name: name, Arguments: args},
	})
	require.NoError(t, err)
	require.NotNil(t, result)
	return result
}

func snapshotOf(t *testing.T, result *mcp.CallToolResult) wm.Snapshot {
	t.Helper()
	require.False(t, result.IsError, ResultText(result))
	var raw struct {
		Mode       string `json:"mode"`
		Active     string `json:"active"`
		Fullscreen string `json:"fullscreen"`
		Windows    []struct {
			ID         string `json:"id"`
			Visibility string `json:"visibility"`
			Mode       string `json:"mode"`
		} `json:"windows"`
	}
	require.NoError(t, json.Unmarshal([]byte(ResultText(result)), &raw))

	snap := wm.Snapshot{Active: raw.Active, Fullscreen: raw.Fullscreen}
	if raw.Mode == "mobile" {
		snap.Mode = wm.Mobile
	}
	for _, w := range raw.Windows {
		var view wm.WindowView
		view.ID = w.ID
		require.NoError(t, view.Visibility.UnmarshalText([]byte(w.Visibility)))
		require.NoError(t, view.Mode.UnmarshalText([]byte(w.Mode)))
		snap.Windows = append(snap.Windows, view)
	}
	return snap
}

func TestTools_Registered(t *testing.T) {
	s := newTestServer(t)
	var names []string
	for _, tool := range s.Tools() {
		names = append(names, tool.Tool.Name)
	}
	assert.ElementsMatch(t, []string{
		"get_state", "list_windows", "open_window", "close_window", "focus_window",
		"minimize_window", "toggle_maximize", "cycle_windows", "tap_launcher",
		"press_key", "resize_viewport", "run_script",
	}, names)
}

func TestTools_OpenFocusCycle(t *testing.T) {
	s := newTestServer(t)

	snap := snapshotOf(t, call(t, s, "open_window", map[string]interface{}{"id": "about"}))
	assert.Equal(t, "about", snap.Active)

	snap = snapshotOf(t, call(t, s, "cycle_windows", nil))
	assert.Equal(t, "terminal-main", snap.Active)

	snap = snapshotOf(t, call(t, s, "focus_window", map[string]interface{}{"id": "about"}))
	assert.Equal(t, "about", snap.Active)

	snap = snapshotOf(t, call(t, s, "minimize_window", map[string]interface{}{"id": "about"}))
	w, _ := snap.Window("about")
	assert.Equal(t, wm.Minimized, w.Visibility)
	assert.Equal(t, "", snap.Active)
}

func TestTools_FocusHiddenWindowFails(t *testing.T) {
	s := newTestServer(t)
	result := call(t, s, "focus_window", map[string]interface{}{"id": "about"})
	assert.True(t, result.IsError)
	assert.Contains(t, ResultText(result), "not visible")
}

func TestTools_MissingArgument(t *testing.T) {
	s := newTestServer(t)
	for _, name := range []string{"open_window", "close_window", "tap_launcher", "press_key", "run_script"} {
		result := call(t, s, name, map[string]interface{}{})
		assert.True(t, result.IsError, name)
	}
}

func TestTools_TapAndMaximize(t *testing.T) {
	s := newTestServer(t)

	snap := snapshotOf(t, call(t, s, "toggle_maximize", map[string]interface{}{"id": "terminal-main"}))
	w, _ := snap.Window("terminal-main")
	assert.Equal(t, wm.Maximized, w.Mode)

	snap = snapshotOf(t, call(t, s, "tap_launcher", map[string]interface{}{"launcher": "terminal"}))
	w, _ = snap.Window("terminal-main")
	assert.Equal(t, wm.Hidden, w.Visibility)
}

func TestTools_PressKey(t *testing.T) {
	s := newTestServer(t)

	snap := snapshotOf(t, call(t, s, "press_key", map[string]interface{}{"key": "f9"}))
	w, _ := snap.Window("terminal-main")
	assert.Equal(t, wm.Minimized, w.Visibility)

	result := call(t, s, "press_key", map[string]interface{}{"key": "hyper+x"})
	assert.True(t, result.IsError)
}

func TestTools_ResizeToMobile(t *testing.T) {
	s := newTestServer(t)

	snap := snapshotOf(t, call(t, s, "resize_viewport", map[string]interface{}{"width": float64(60), "height": float64(30)}))
	assert.Equal(t, wm.Mobile, snap.Mode)

	snap = snapshotOf(t, call(t, s, "tap_launcher", map[string]interface{}{"launcher": "about"}))
	assert.Equal(t, "about", snap.Fullscreen)

	result := call(t, s, "resize_viewport", map[string]interface{}{"width": "wide", "height": 30})
	assert.True(t, result.IsError)
}

func TestTools_ListWindows(t *testing.T) {
	s := newTestServer(t)
	result := call(t, s, "list_windows", nil)
	require.False(t, result.IsError)

	var windows []map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(ResultText(result)), &windows))
	require.Len(t, windows, 2)
	assert.Equal(t, "terminal-main", windows[0]["id"])
	assert.Equal(t, "visible", windows[0]["visibility"])
	assert.Equal(t, "hidden", windows[1]["visibility"])
}

func TestTools_RunScript(t *testing.T) {
	s := newTestServer(t)

	snap := snapshotOf(t, call(t, s, "run_script", map[string]interface{}{
		"script": "steps:\n  - click: about\n  - key: alt+tab\n  - expect: {active: terminal-main}\n",
	}))
	assert.Equal(t, "terminal-main", snap.Active)

	result := call(t, s, "run_script", map[string]interface{}{
		"script": "steps:\n  - expect: {active: about}\n",
	})
	assert.True(t, result.IsError)
	assert.Contains(t, ResultText(result), "expectation failed")
}

func TestLoop_DoAfterStop(t *testing.T) {
	m, err := wm.NewManager(wm.Options{Viewport: wm.Size{W: 120, H: 40}}, nil)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	loop := NewLoop(m)
	stopped := make(chan struct{})
	go func() {
		loop.Run(ctx)
		close(stopped)
	}()

	require.NoError(t, loop.Do(context.Background(), func(*wm.Manager) error { return nil }))
	cancel()
	<-stopped

	err = loop.Do(context.Background(), func(*wm.Manager) error { return nil })
	assert.ErrorIs(t, err, ErrLoopStopped)
}

func TestLoop_ErrorsAndPanics(t *testing.T) {
	m, err := wm.NewManager(wm.Options{Viewport: wm.Size{W: 120, H: 40}}, nil)
	require.NoError(t, err)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	loop := NewLoop(m)
	go loop.Run(ctx)

	boom := errors.New("boom")
	assert.ErrorIs(t, loop.Do(ctx, func(*wm.Manager) error { return boom }), boom)

	err = loop.Do(ctx, func(*wm.Manager) error { panic("oops") })
	require.Error(t, err)
	assert.Contains(t, err.Error(), "panicked")

	timeout, cancelTimeout := context.WithTimeout(ctx, 10*time.Millisecond)
	defer cancelTimeout()
	err = loop.Do(timeout, func(*wm.Manager) error {
		time.Sleep(50 * time.Millisecond)
		return nil
	})
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestServer_Defaults(t *testing.T) {
	s := NewServer(nil, config.MCPSettings{}, "")
	assert.Equal(t, "localhost:8090", s.Address())
	assert.Equal(t, "http://localhost:8090/sse", s.Endpoint())
	assert.Error(t, s.Stop(context.Background()))
}

func TestParseArgs(t *testing.T) {
	args, err := ParseArgs([]string{"id=about", "width=80", "name=0x1"})
	require.NoError(t, err)
	assert.Equal(t, "about", args["id"])
	assert.Equal(t, 80, args["width"])
	assert.Equal(t, "0x1", args["name"])

	_, err = ParseArgs([]string{"novalue"})
	assert.Error(t, err)
}
