package wm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFocusFixture(t *testing.T, visible ...string) (*Registry, *FocusController) {
	t.Helper()
	reg := NewRegistry(DefaultZBaseline, nil)
	shown := make(map[string]bool)
	for _, id := range visible {
		shown[id] = true
	}
	for _, id := range []string{"terminal-main", "about", "projects"} {
		require.NoError(t, reg.Register(Definition{ID: id}, shown[id]))
	}
	return reg, NewFocusController(reg)
}

func TestFocus_BringsToFront(t *testing.T) {
	reg, focus := newFocusFixture(t, "terminal-main", "about")

	require.NoError(t, focus.Focus("about"))
	about, _ := reg.Get("about")
	assert.Equal(t, DefaultZBaseline+1, about.Z)

	require.NoError(t, focus.Focus("terminal-main"))
	term, _ := reg.Get("terminal-main")
	assert.Equal(t, DefaultZBaseline+2, term.Z)

	active, err := focus.Active()
	require.NoError(t, err)
	assert.Equal(t, "terminal-main", active)
	assert.True(t, focus.IsActive("terminal-main"))
	assert.False(t, focus.IsActive("about"))
}

func TestFocus_ActiveWindowHasHighestZ(t *testing.T) {
	reg, focus := newFocusFixture(t, "terminal-main", "about", "projects")

	sequence := []string{"about", "projects", "about", "terminal-main", "terminal-main", "projects", "about"}
	for _, id := range sequence {
		require.NoError(t, focus.Focus(id))

		active, err := focus.Active()
		require.NoError(t, err)
		front, _ := reg.Get(active)
		for _, w := range reg.All() {
			if w.ID != active {
				assert.Less(t, w.Z, front.Z, "after focusing %s", id)
			}
		}
	}

	seen := make(map[int]string)
	for _, w := range reg.AllVisible() {
		other, dup := seen[w.Z]
		assert.False(t, dup, "%s and %s share z %d", w.ID, other, w.Z)
		seen[w.Z] = w.ID
	}
}

func TestFocus_Errors(t *testing.T) {
	_, focus := newFocusFixture(t, "terminal-main")

	assert.ErrorIs(t, focus.Focus("ghost"), ErrUnknownWindow)
	assert.ErrorIs(t, focus.Focus("about"), ErrWindowNotVisible)

	_, err := focus.Active()
	assert.ErrorIs(t, err, ErrNoActiveWindow)
	assert.False(t, focus.IsActive(""))
}

func TestFocus_Cycle(t *testing.T) {
	_, focus := newFocusFixture(t, "terminal-main", "about", "projects")
	require.NoError(t, focus.Focus("terminal-main"))

	var order []string
	for i := 0; i < 4; i++ {
		require.NoError(t, focus.Cycle())
		active, _ := focus.Active()
		order = append(order, active)
	}
	assert.Equal(t, []string{"about", "projects", "terminal-main", "about"}, order)
}

func TestFocus_CycleSkipsHiddenWindows(t *testing.T) {
	reg, focus := newFocusFixture(t, "terminal-main", "projects")
	require.NoError(t, reg.SetVisibility("about", Minimized))
	require.NoError(t, focus.Focus("projects"))

	require.NoError(t, focus.Cycle())
	active, _ := focus.Active()
	assert.Equal(t, "terminal-main", active)
}

func TestFocus_CycleWithoutActiveFocusesFirst(t *testing.T) {
	_, focus := newFocusFixture(t, "about", "projects")

	require.NoError(t, focus.Cycle())
	active, err := focus.Active()
	require.NoError(t, err)
	assert.Equal(t, "about", active)
}

func TestFocus_CycleSingleWindowIsNoop(t *testing.T) {
	reg, focus := newFocusFixture(t, "about")
	require.NoError(t, focus.Focus("about"))
	before, _ := reg.Get("about")

	require.NoError(t, focus.Cycle())
	after, _ := reg.Get("about")
	assert.Equal(t, before.Z, after.Z)
}

func TestFocus_Clear(t *testing.T) {
	_, focus := newFocusFixture(t, "about", "projects")
	require.NoError(t, focus.Focus("about"))

	focus.Clear("projects")
	assert.True(t, focus.IsActive("about"))

	focus.Clear("about")
	_, err := focus.Active()
	assert.ErrorIs(t, err, ErrNoActiveWindow)
}
