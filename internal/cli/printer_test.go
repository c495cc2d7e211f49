package cli

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"marios/internal/config"
	"marios/internal/wm"
)

func testSnapshot(t *testing.T) wm.Snapshot {
	t.Helper()
	cfg := config.GetDefaultConfig()
	opts, err := cfg.ManagerOptions()
	require.NoError(t, err)
	opts.Viewport = wm.Size{W: 120, H: 40}
	m, err := wm.NewManager(opts, cfg.WindowSpecs())
	require.NoError(t, err)
	require.NoError(t, m.Open("about", nil))
	require.NoError(t, m.Minimize("about"))
	require.NoError(t, m.Focus("terminal-main"))
	return m.Snapshot()
}

func TestParseOutputFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    OutputFormat
		wantErr bool
	}{
		{in: "table", want: OutputFormatTable},
		{in: "JSON", want: OutputFormatJSON},
		{in: "yaml", want: OutputFormatYAML},
		{in: "xml", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseOutputFormat(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPrintSnapshot_Table(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, PrinterOptions{NoColor: true})
	require.NoError(t, p.PrintSnapshot(testSnapshot(t)))

	out := buf.String()
	assert.Contains(t, out, "MODE")
	assert.Contains(t, out, "desktop")
	assert.Contains(t, out, "terminal-main ●")
	assert.Contains(t, out, "minimized")
	assert.Contains(t, out, "LAUNCHER")
	assert.Contains(t, out, "dimmed")
}

func TestPrintSnapshot_NoActiveWindow(t *testing.T) {
	cfg := config.GetDefaultConfig()
	opts, err := cfg.ManagerOptions()
	require.NoError(t, err)
	opts.Viewport = wm.Size{W: 120, H: 40}
	m, err := wm.NewManager(opts, cfg.WindowSpecs())
	require.NoError(t, err)
	require.NoError(t, m.Minimize("terminal-main"))
	snap := m.Snapshot()
	assert.Empty(t, snap.Active)

	var buf bytes.Buffer
	require.NoError(t, NewPrinter(&buf, PrinterOptions{NoColor: true}).PrintSnapshot(snap))
	assert.NotContains(t, buf.String(), "●")

	buf.Reset()
	require.NoError(t, NewPrinter(&buf, PrinterOptions{Format: OutputFormatJSON}).PrintSnapshot(snap))
	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Empty(t, decoded["active"])
}

func TestPrintSnapshot_JSONAndYAML(t *testing.T) {
	snap := testSnapshot(t)

	var buf bytes.Buffer
	require.NoError(t, NewPrinter(&buf, PrinterOptions{Format: OutputFormatJSON}).PrintSnapshot(snap))
	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "terminal-main", decoded["active"])

	buf.Reset()
	require.NoError(t, NewPrinter(&buf, PrinterOptions{Format: OutputFormatYAML}).PrintSnapshot(snap))
	decoded = nil
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "desktop", decoded["mode"])
}

func TestPrintDefinitions(t *testing.T) {
	cfg := config.GetDefaultConfig()
	var buf bytes.Buffer
	p := NewPrinter(&buf, PrinterOptions{NoColor: true})
	require.NoError(t, p.PrintDefinitions(cfg.Windows, cfg.Desktop.DefaultWindow))

	out := buf.String()
	assert.Contains(t, out, "terminal-main *")
	assert.Contains(t, out, "contact form")
	assert.Contains(t, out, "3 tabs")

	buf.Reset()
	require.NoError(t, p.PrintDefinitions(nil, ""))
	assert.Contains(t, buf.String(), "No windows configured")
}

func TestPrintToolResult(t *testing.T) {
	snap := testSnapshot(t)
	state, err := json.Marshal(snap)
	require.NoError(t, err)
	windows, err := json.Marshal(snap.Windows)
	require.NoError(t, err)

	tests := []struct {
		name   string
		result string
		want   string
	}{
		{name: "state", result: string(state), want: "LAUNCHER"},
		{name: "window list", result: string(windows), want: "VISIBILITY"},
		{name: "plain text", result: "Replayed 3 steps", want: "Replayed 3 steps"},
		{name: "empty", result: "  ", want: "No results"},
		{name: "other object", result: `{"steps": 3}`, want: "steps"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			p := NewPrinter(&buf, PrinterOptions{NoColor: true})
			require.NoError(t, p.PrintToolResult(tt.result))
			assert.Contains(t, buf.String(), tt.want)
		})
	}
}
