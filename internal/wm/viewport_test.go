package wm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type viewportFixture struct {
	reg      *Registry
	focus    *FocusController
	viewport *ViewportModeController
	// maxFullscreen is the highest number of simultaneously visible
	// fullscreen windows observed at any render.
	maxFullscreen int
}

func newViewportFixture(t *testing.T, size Size, hints DeviceHints) *viewportFixture {
	t.Helper()
	f := &viewportFixture{}
	f.reg = NewRegistry(DefaultZBaseline, RendererFunc(func(Window) {
		count := 0
		for _, w := range f.reg.All() {
			if w.Visibility == Visible && w.Mode == MobileFullscreen {
				count++
			}
		}
		f.maxFullscreen = max(f.maxFullscreen, count)
	}))
	for _, id := range []string{"terminal-main", "about", "projects"} {
		require.NoError(t, f.reg.Register(Definition{ID: id, Size: Size{W: 40, H: 12}}, false))
	}
	f.focus = NewFocusController(f.reg)
	f.viewport = NewViewportModeController(f.reg, f.focus, 0, hints, size)
	return f
}

func TestViewport_Detect(t *testing.T) {
	tests := []struct {
		name  string
		size  Size
		hints DeviceHints
		want  ViewMode
	}{
		{"wide", Size{W: 120, H: 40}, DeviceHints{}, Desktop},
		{"at breakpoint", Size{W: DefaultMobileBreakpoint, H: 40}, DeviceHints{}, Mobile},
		{"just above breakpoint", Size{W: DefaultMobileBreakpoint + 1, H: 40}, DeviceHints{}, Desktop},
		{"forced", Size{W: 200, H: 60}, DeviceHints{ForceMobile: true}, Mobile},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newViewportFixture(t, tt.size, tt.hints)
			assert.Equal(t, tt.want, f.viewport.Mode())
		})
	}
}

func TestViewport_MobileOpenSwitchesFullscreen(t *testing.T) {
	f := newViewportFixture(t, Size{W: 60, H: 30}, DeviceHints{})
	require.Equal(t, Mobile, f.viewport.Mode())

	require.NoError(t, f.viewport.OpenInCurrentMode("terminal-main", &Point{X: 3, Y: 28}))
	require.NoError(t, f.viewport.OpenInCurrentMode("about", nil))

	assert.LessOrEqual(t, f.maxFullscreen, 1, "two fullscreen windows were visible at once")

	fullscreen, ok := f.viewport.Fullscreen()
	assert.True(t, ok)
	assert.Equal(t, "about", fullscreen)

	term, _ := f.reg.Get("terminal-main")
	assert.Equal(t, Hidden, term.Visibility)
	assert.Equal(t, Normal, term.Mode)

	about, _ := f.reg.Get("about")
	assert.Equal(t, Visible, about.Visibility)
	assert.Equal(t, MobileFullscreen, about.Mode)
	assert.True(t, f.focus.IsActive("about"))

	origin, ok := f.viewport.LastOrigin()
	assert.True(t, ok)
	assert.Equal(t, Point{X: 3, Y: 28}, origin, "a nil origin keeps the previous anchor")
}

func TestViewport_CloseFullscreen(t *testing.T) {
	f := newViewportFixture(t, Size{W: 60, H: 30}, DeviceHints{})
	require.NoError(t, f.viewport.OpenInCurrentMode("about", nil))

	// Not the fullscreen window: nothing happens.
	require.NoError(t, f.viewport.CloseFullscreen("projects"))
	_, ok := f.viewport.Fullscreen()
	assert.True(t, ok)

	require.NoError(t, f.viewport.CloseFullscreen("about"))
	_, ok = f.viewport.Fullscreen()
	assert.False(t, ok)

	about, _ := f.reg.Get("about")
	assert.Equal(t, Hidden, about.Visibility)
	assert.Equal(t, Normal, about.Mode)
	_, err := f.focus.Active()
	assert.ErrorIs(t, err, ErrNoActiveWindow)

	assert.ErrorIs(t, f.viewport.CloseFullscreen("ghost"), ErrUnknownWindow)
}

func TestViewport_MobileToDesktopClearsFullscreen(t *testing.T) {
	f := newViewportFixture(t, Size{W: 60, H: 30}, DeviceHints{})
	var transitions []string
	f.viewport.OnModeChange = func(from, to ViewMode) {
		transitions = append(transitions, from.String()+"->"+to.String())
	}
	require.NoError(t, f.viewport.OpenInCurrentMode("projects", &Point{X: 1, Y: 1}))

	changed, err := f.viewport.Resize(Size{W: 120, H: 40})
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, Desktop, f.viewport.Mode())
	assert.Equal(t, []string{"mobile->desktop"}, transitions)

	_, ok := f.viewport.Fullscreen()
	assert.False(t, ok)
	_, ok = f.viewport.LastOrigin()
	assert.False(t, ok)
	for _, w := range f.reg.All() {
		assert.NotEqual(t, MobileFullscreen, w.Mode, w.ID)
	}

	changed, err = f.viewport.Resize(Size{W: 130, H: 40})
	require.NoError(t, err)
	assert.False(t, changed)
	assert.Len(t, transitions, 1)
}

func TestViewport_DesktopToMobileLeavesWindows(t *testing.T) {
	f := newViewportFixture(t, Size{W: 120, H: 40}, DeviceHints{})
	require.NoError(t, f.viewport.OpenInCurrentMode("about", nil))

	changed, err := f.viewport.Resize(Size{W: 50, H: 40})
	require.NoError(t, err)
	assert.True(t, changed)

	about, _ := f.reg.Get("about")
	assert.Equal(t, Visible, about.Visibility)
	assert.Equal(t, Normal, about.Mode)
	_, ok := f.viewport.Fullscreen()
	assert.False(t, ok)
}

func TestViewport_OrientationChangeUsesHints(t *testing.T) {
	f := newViewportFixture(t, Size{W: 70, H: 100}, DeviceHints{})
	require.Equal(t, Mobile, f.viewport.Mode())

	changed, err := f.viewport.OrientationChange()
	require.NoError(t, err)
	assert.False(t, changed, "same size, same mode")
	assert.Equal(t, Size{W: 70, H: 100}, f.viewport.Size())
}

func TestViewport_DesktopOpenKeepsMaximized(t *testing.T) {
	f := newViewportFixture(t, Size{W: 120, H: 40}, DeviceHints{})
	require.NoError(t, f.reg.SetMode("about", Maximized))

	require.NoError(t, f.viewport.OpenInCurrentMode("about", nil))
	about, _ := f.reg.Get("about")
	assert.Equal(t, Visible, about.Visibility)
	assert.Equal(t, Maximized, about.Mode)
	assert.True(t, f.focus.IsActive("about"))

	assert.ErrorIs(t, f.viewport.OpenInCurrentMode("ghost", nil), ErrUnknownWindow)
}
