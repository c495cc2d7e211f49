package wm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLayout_Frame(t *testing.T) {
	l := Layout{Viewport: Size{W: 120, H: 40}, MinTop: 1, BottomReserve: 1}
	w := Window{ID: "about", Geometry: Point{X: 20, Y: 5}, Size: Size{W: 50, H: 16}}

	assert.Equal(t, Rect{X: 20, Y: 5, W: 50, H: 16}, l.Frame(w))

	w.Mode = Maximized
	assert.Equal(t, Rect{X: 3, Y: 1, W: 114, H: 34}, l.Frame(w))

	w.Mode = MobileFullscreen
	assert.Equal(t, Rect{X: 0, Y: 1, W: 120, H: 38}, l.Frame(w))
}

func TestLayout_FrameNeverNegative(t *testing.T) {
	l := Layout{Viewport: Size{W: 10, H: 1}, MinTop: 1, BottomReserve: 1}
	frame := l.Frame(Window{Mode: MobileFullscreen})
	assert.Equal(t, 0, frame.H)
}

func TestRect_Contains(t *testing.T) {
	r := Rect{X: 2, Y: 2, W: 3, H: 2}
	assert.True(t, r.Contains(Point{X: 2, Y: 2}))
	assert.True(t, r.Contains(Point{X: 4, Y: 3}))
	assert.False(t, r.Contains(Point{X: 5, Y: 3}))
	assert.False(t, r.Contains(Point{X: 4, Y: 4}))
	assert.False(t, r.Contains(Point{X: 1, Y: 2}))
}

func TestStacking(t *testing.T) {
	windows := []Window{
		{ID: "a", Visibility: Visible, Z: 53},
		{ID: "b", Visibility: Hidden, Z: 60},
		{ID: "c", Visibility: Visible, Z: 51},
		{ID: "d", Visibility: Minimized, Z: 70},
	}

	var ids []string
	for _, w := range Stacking(windows, Desktop, "") {
		ids = append(ids, w.ID)
	}
	assert.Equal(t, []string{"c", "a"}, ids)

	mobile := Stacking(windows, Mobile, "a")
	if assert.Len(t, mobile, 1) {
		assert.Equal(t, "a", mobile[0].ID)
	}
	assert.Empty(t, Stacking(windows, Mobile, ""))
}

func TestHitTest(t *testing.T) {
	l := Layout{Viewport: Size{W: 120, H: 40}, MinTop: 1}
	back := Window{ID: "back", Visibility: Visible, Geometry: Point{X: 0, Y: 1}, Size: Size{W: 40, H: 20}, Z: 51}
	front := Window{ID: "front", Visibility: Visible, Geometry: Point{X: 20, Y: 5}, Size: Size{W: 40, H: 20}, Z: 52}
	stack := []Window{back, front}

	tests := []struct {
		name string
		p    Point
		want Target
	}{
		{"outside", Point{X: 100, Y: 30}, Target{Kind: TargetNone}},
		{"back header", Point{X: 5, Y: 2}, Target{Kind: TargetHeader, Window: "back"}},
		{"back body", Point{X: 5, Y: 10}, Target{Kind: TargetBody, Window: "back"}},
		{"overlap goes to front", Point{X: 25, Y: 10}, Target{Kind: TargetBody, Window: "front"}},
		{"front header over back body", Point{X: 25, Y: 6}, Target{Kind: TargetHeader, Window: "front"}},
		{"front border row", Point{X: 25, Y: 5}, Target{Kind: TargetHeader, Window: "front"}},
		{"close button", Point{X: 57, Y: 6}, Target{Kind: TargetControl, Window: "front", Control: ControlClose}},
		{"maximize button", Point{X: 55, Y: 6}, Target{Kind: TargetControl, Window: "front", Control: ControlMaximize}},
		{"minimize button", Point{X: 53, Y: 6}, Target{Kind: TargetControl, Window: "front", Control: ControlMinimize}},
		{"between buttons", Point{X: 54, Y: 6}, Target{Kind: TargetHeader, Window: "front"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HitTest(l, stack, tt.p))
		})
	}
}

func TestControl_String(t *testing.T) {
	assert.Equal(t, "minimize", ControlMinimize.String())
	assert.Equal(t, "maximize", ControlMaximize.String())
	assert.Equal(t, "close", ControlClose.String())
	assert.Equal(t, "unknown", Control(9).String())
}
