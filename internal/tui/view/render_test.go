package view

import (
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"marios/internal/config"
	"marios/internal/notify"
	"marios/internal/tui/model"
	"marios/internal/wm"
)

var fixedNow = time.Date(2024, 3, 4, 12, 30, 0, 0, time.UTC)

func newTestModel(t *testing.T) *model.Model {
	t.Helper()
	cfg := config.GetDefaultConfig()
	cfg.Boot.Skip = config.Bool(true)
	opts, err := cfg.ManagerOptions()
	require.NoError(t, err)
	opts.Viewport = wm.Size{W: 120, H: 40}

	m, err := model.InitializeModel(model.Config{
		Desktop: cfg,
		Options: opts,
		Rand:    rand.New(rand.NewSource(1)),
		Now:     func() time.Time { return fixedNow },
	})
	require.NoError(t, err)
	return m
}

func resize(t *testing.T, m *model.Model, w, h int) {
	t.Helper()
	m.Width, m.Height = w, h
	_, err := m.WM.Dispatch(wm.Resize{Width: w, Height: h})
	require.NoError(t, err)
}

func notifyAt(msg string) notify.Notification {
	return notify.New(notify.SourceDesktop, wm.LevelInfo, msg, time.Hour)
}

func runeAt(line string, x int) rune {
	r := []rune(line)
	if x < 0 || x >= len(r) {
		return 0
	}
	return r[x]
}

func TestCanvas_TextClipsAndReportsWidth(t *testing.T) {
	c := NewCanvas(10, 2)
	n := c.Text(2, 0, "hello world", 0, 5)
	assert.Equal(t, 5, n)
	assert.Equal(t, "  hello   ", c.Plain()[0])

	// Painting outside the canvas is ignored.
	c.Text(-3, 5, "nope", 0, 10)
	assert.Equal(t, strings.Repeat(" ", 10), c.Plain()[1])
}

func TestCanvas_WideRunesOccupyTwoCells(t *testing.T) {
	c := NewCanvas(6, 1)
	n := c.Text(0, 0, "日本", 0, 6)
	assert.Equal(t, 4, n)
	assert.Equal(t, "日本  ", c.Plain()[0])

	// Overwriting half of a wide rune blanks the rest of it.
	c.Set(1, 0, 'x', 0)
	assert.Equal(t, " x本  ", c.Plain()[0])
}

func TestCanvas_Box(t *testing.T) {
	c := NewCanvas(4, 3)
	c.Box(wm.Rect{X: 0, Y: 0, W: 4, H: 3}, 0, 0)
	assert.Equal(t, []string{"┌──┐", "│  │", "└──┘"}, c.Plain())
}

func TestDesktop_DrawsFocusedWindowWithControls(t *testing.T) {
	m := newTestModel(t)
	snap := m.Snapshot()
	v, ok := snap.Window("terminal-main")
	require.True(t, ok)
	require.True(t, v.Active)

	lines := Desktop(m).Plain()
	require.Len(t, lines, 40)

	titleRow := lines[wm.TitleRow(v.Frame)]
	assert.Contains(t, titleRow, "mari@terminal: ~")
	assert.Equal(t, '×', runeAt(titleRow, wm.ControlColumn(v.Frame, wm.ControlClose)))
	assert.Equal(t, '□', runeAt(titleRow, wm.ControlColumn(v.Frame, wm.ControlMaximize)))
	assert.Equal(t, '_', runeAt(titleRow, wm.ControlColumn(v.Frame, wm.ControlMinimize)))

	body := BodyRect(v.Frame)
	var prompt bool
	for _, l := range lines[body.Y : body.Y+body.H] {
		prompt = prompt || strings.Contains(l, "mari@marios:~$ █")
	}
	assert.True(t, prompt, "prompt line with cursor")

	assert.Contains(t, lines[0], "mar.iOS")
	assert.Contains(t, lines[0], "12:30:00")
}

func TestDesktop_TaskbarMatchesLauncherRegions(t *testing.T) {
	m := newTestModel(t)
	lines := Desktop(m).Plain()
	taskbar := lines[len(lines)-1]

	slots := TaskbarSlots(m)
	require.Len(t, slots, 5)
	for i, s := range slots {
		got := string([]rune(taskbar)[s.Rect.X : s.Rect.X+s.Rect.W])
		assert.Equal(t, s.Label, got, "slot %d", i)

		hit, ok := LauncherAt(m, wm.Point{X: s.Rect.X + 1, Y: s.Rect.Y})
		require.True(t, ok)
		assert.Equal(t, s.State.Launcher, hit.State.Launcher)
	}
	assert.Equal(t, "terminal", slots[0].State.Launcher)
	assert.True(t, slots[0].State.Active)
	assert.True(t, slots[1].State.Dimmed)

	_, ok := LauncherAt(m, wm.Point{X: 0, Y: 10})
	assert.False(t, ok)
	assert.Contains(t, taskbar, trayToggleLabel)
}

func TestDesktop_MonitorPanel(t *testing.T) {
	m := newTestModel(t)
	panel, ok := MonitorPanel(m)
	require.True(t, ok)
	assert.Equal(t, 120-monitorWidth, panel.X)

	lines := Desktop(m).Plain()
	assert.Contains(t, lines[panel.Y+1], "SYSTEM MONITOR")
	assert.Contains(t, lines[panel.Y+3], "CPU [")

	m.Monitor.ToggleCollapsed()
	panel, ok = MonitorPanel(m)
	require.True(t, ok)
	assert.Equal(t, monitorCollapsedRows, panel.H)

	m.Monitor.Toggle()
	_, ok = MonitorPanel(m)
	assert.False(t, ok)
}

func TestDesktop_ToastsStackNewestFirst(t *testing.T) {
	m := newTestModel(t)
	m.Monitor.Toggle()
	m.Toasts.Push(notifyAt("first"))
	m.Toasts.Push(notifyAt("second"))

	lines := Desktop(m).Plain()
	assert.Contains(t, lines[1], "second")
	assert.Contains(t, lines[2], "first")
}

func TestDesktop_MobileHomeScreenAndFullscreen(t *testing.T) {
	m := newTestModel(t)
	resize(t, m, 60, 30)
	require.Equal(t, wm.Mobile, m.WM.Mode())

	// Desktop to mobile leaves windows alone, but only the fullscreen window
	// is drawn, so the home screen shows.
	require.True(t, HomeScreenVisible(m))
	homes := HomeSlots(m)
	require.NotEmpty(t, homes)
	lines := Desktop(m).Plain()
	assert.Contains(t, lines[2], "mar.iOS")
	hit, ok := LauncherAt(m, wm.Point{X: homes[1].Rect.X + 1, Y: homes[1].Rect.Y + 1})
	require.True(t, ok)
	assert.Equal(t, "about", hit.State.Launcher)

	require.NoError(t, m.WM.Tap("about", nil))
	assert.False(t, HomeScreenVisible(m))
	assert.Empty(t, HomeSlots(m))

	lines = Desktop(m).Plain()
	assert.Contains(t, lines[2], "about.txt")
	assert.Equal(t, '┌', runeAt(lines[1], 0))
	_, ok = MonitorPanel(m)
	assert.False(t, ok)
}

func TestWindowBody_TabsAndCache(t *testing.T) {
	m := newTestModel(t)
	body := WindowBody(m, "projects", 40)
	require.GreaterOrEqual(t, len(body), 3)
	assert.Contains(t, body[0].Text, "[marios]")
	assert.Contains(t, body[2].Text, "hacker OS")

	name, ok := m.SwitchTab("projects", 1)
	require.True(t, ok)
	assert.Equal(t, "netwatch", name)
	body = WindowBody(m, "projects", 40)
	assert.Contains(t, body[0].Text, "[netwatch]")
	assert.Contains(t, body[2].Text, "Network telemetry")

	_, ok = m.CachedBody("projects", 40)
	assert.True(t, ok)
	m.Render(wm.Window{ID: "projects"})
	_, ok = m.CachedBody("projects", 40)
	assert.False(t, ok)
}

func TestWindowBody_Wraps(t *testing.T) {
	m := newTestModel(t)
	for _, l := range WindowBody(m, "about", 20) {
		assert.LessOrEqual(t, len([]rune(l.Text)), 20, l.Text)
	}
	assert.Nil(t, WindowBody(m, "unknown", 20))
}

func TestWindowBody_ContactForm(t *testing.T) {
	m := newTestModel(t)
	require.NotNil(t, m.Form)
	text := func() string {
		var b strings.Builder
		for _, l := range WindowBody(m, "contact", 50) {
			b.WriteString(l.Text + "\n")
		}
		return b.String()
	}

	out := text()
	assert.Contains(t, out, "NAME")
	assert.Contains(t, out, "Agent name")
	assert.Contains(t, out, "contact@example.com")
	assert.Contains(t, out, "enter: edit")

	m.Form.StartEditing()
	m.Form.Inputs[model.FieldName].SetValue("neo")
	out = text()
	assert.Contains(t, out, "neo█")
	assert.Contains(t, out, "enter: next")
}

func TestRender_Modes(t *testing.T) {
	m := newTestModel(t)

	m.CurrentAppMode = model.ModeBooting
	assert.Contains(t, Render(m), "mar.iOS")

	m.CurrentAppMode = model.ModeHelpOverlay
	assert.Contains(t, Render(m), "KEYBOARD SHORTCUTS")

	m.CurrentAppMode = model.ModeLogOverlay
	model.AddRawLineToActivityLog(m, "12:00:00.000 [INFO] [WM] opened about")
	assert.Contains(t, Render(m), "opened about")
	assert.False(t, m.ActivityLogDirty)

	m.CurrentAppMode = model.ModeQuitting
	m.QuittingMessage = "Shutting down..."
	assert.Contains(t, Render(m), "Shutting down...")

	m.CurrentAppMode = model.ModeDesktop
	m.Width, m.Height = 20, 5
	assert.Contains(t, Render(m), "terminal too small")
}
