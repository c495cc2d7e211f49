package wm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseKey(t *testing.T) {
	tests := []struct {
		combo   string
		want    KeyDown
		wantErr bool
	}{
		{combo: "alt+tab", want: KeyDown{Key: "tab", Mods: ModAlt}},
		{combo: "Ctrl+M", want: KeyDown{Key: "m", Mods: ModCtrl}},
		{combo: "control+shift+x", want: KeyDown{Key: "x", Mods: ModCtrl | ModShift}},
		{combo: "meta+tab", want: KeyDown{Key: "tab", Mods: ModAlt}},
		{combo: " f6 ", want: KeyDown{Key: "f6"}},
		{combo: "hyper+x", wantErr: true},
		{combo: "ctrl+", wantErr: true},
		{combo: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.combo, func(t *testing.T) {
			got, err := ParseKey(tt.combo)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestKeyDown_String(t *testing.T) {
	assert.Equal(t, "ctrl+alt+shift+x", KeyDown{Key: "x", Mods: ModShift | ModAlt | ModCtrl}.String())
	assert.Equal(t, "f9", KeyDown{Key: "f9"}.String())

	k, err := ParseKey(KeyDown{Key: "tab", Mods: ModAlt}.String())
	require.NoError(t, err)
	assert.Equal(t, KeyDown{Key: "tab", Mods: ModAlt}, k)
}

func TestParseShortcuts(t *testing.T) {
	s, err := ParseShortcuts([]string{"alt+tab"}, []string{"ctrl+m", "f9"})
	require.NoError(t, err)
	assert.True(t, matches(s.Cycle, KeyDown{Key: "tab", Mods: ModAlt}))
	assert.False(t, matches(s.Cycle, KeyDown{Key: "tab"}))
	assert.True(t, matches(s.Minimize, KeyDown{Key: "f9"}))

	_, err = ParseShortcuts([]string{"bogus+tab"}, nil)
	assert.ErrorContains(t, err, "cycle shortcut")

	_, err = ParseShortcuts(nil, []string{"+"})
	assert.ErrorContains(t, err, "minimize shortcut")
}

func TestDefaultShortcuts(t *testing.T) {
	s := DefaultShortcuts()
	assert.True(t, matches(s.Cycle, KeyDown{Key: "tab", Mods: ModAlt}))
	assert.True(t, matches(s.Minimize, KeyDown{Key: "m", Mods: ModCtrl}))
}
