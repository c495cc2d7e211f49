package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"gopkg.in/yaml.v3"

	"marios/internal/config"
	"marios/internal/wm"
)

// OutputFormat represents the output format for CLI commands
type OutputFormat string

const (
	OutputFormatTable OutputFormat = "table"
	OutputFormatJSON  OutputFormat = "json"
	OutputFormatYAML  OutputFormat = "yaml"
)

// ParseOutputFormat validates a --output flag value.
func ParseOutputFormat(s string) (OutputFormat, error) {
	switch f := OutputFormat(strings.ToLower(s)); f {
	case OutputFormatTable, OutputFormatJSON, OutputFormatYAML:
		return f, nil
	}
	return "", fmt.Errorf("unsupported output format: %s", s)
}

// PrinterOptions contains options for printing
type PrinterOptions struct {
	Format  OutputFormat
	NoColor bool
}

// Printer writes window manager state for humans or scripts.
type Printer struct {
	out     io.Writer
	options PrinterOptions
}

// NewPrinter creates a printer writing to out. The format defaults to table.
func NewPrinter(out io.Writer, options PrinterOptions) *Printer {
	if options.Format == "" {
		options.Format = OutputFormatTable
	}
	return &Printer{out: out, options: options}
}

// PrintSnapshot prints the whole desktop state.
func (p *Printer) PrintSnapshot(snap wm.Snapshot) error {
	if p.options.Format != OutputFormatTable {
		return p.encode(snap)
	}

	t := p.newTable()
	t.AppendHeader(table.Row{p.header("PROPERTY"), p.header("VALUE")})
	t.AppendRow(table.Row{p.key("mode"), snap.Mode.String()})
	t.AppendRow(table.Row{p.key("viewport"), fmt.Sprintf("%dx%d", snap.Viewport.W, snap.Viewport.H)})
	t.AppendRow(table.Row{p.key("active"), orNone(snap.Active)})
	if snap.Mode == wm.Mobile {
		t.AppendRow(table.Row{p.key("fullscreen"), orNone(snap.Fullscreen)})
	}
	if snap.Dragging != "" {
		t.AppendRow(table.Row{p.key("dragging"), snap.Dragging})
	}
	t.Render()

	if err := p.printWindowTable(snap.Windows); err != nil {
		return err
	}
	return p.printLauncherTable(snap.Launchers)
}

// PrintWindows prints the window list of a snapshot.
func (p *Printer) PrintWindows(windows []wm.WindowView) error {
	if p.options.Format != OutputFormatTable {
		return p.encode(windows)
	}
	return p.printWindowTable(windows)
}

// PrintDefinitions prints the configured window set.
func (p *Printer) PrintDefinitions(defs []config.WindowDefinition, defaultWindow string) error {
	if p.options.Format != OutputFormatTable {
		return p.encode(defs)
	}
	if len(defs) == 0 {
		fmt.Fprintln(p.out, p.paint(text.FgYellow, "No windows configured"))
		return nil
	}

	t := p.newTable()
	t.AppendHeader(p.headers("id", "title", "launcher", "position", "size", "content"))
	for _, d := range defs {
		id := d.ID
		if id == defaultWindow {
			id += " *"
		}
		t.AppendRow(table.Row{
			id,
			d.Title,
			p.paint(text.FgCyan, d.Icon+" "+d.LauncherID()),
			fmt.Sprintf("%d,%d", d.X, d.Y),
			fmt.Sprintf("%dx%d", d.Width, d.Height),
			contentKind(d),
		})
	}
	t.Render()
	return nil
}

// PrintToolResult prints the text returned by a control tool. State and
// window lists are shown as tables; anything else is printed as is.
func (p *Printer) PrintToolResult(result string) error {
	trimmed := strings.TrimSpace(result)
	if trimmed == "" {
		fmt.Fprintln(p.out, "No results")
		return nil
	}
	if !json.Valid([]byte(trimmed)) {
		fmt.Fprintln(p.out, trimmed)
		return nil
	}

	switch p.options.Format {
	case OutputFormatJSON:
		fmt.Fprintln(p.out, trimmed)
		return nil
	case OutputFormatYAML:
		return p.outputYAML(trimmed)
	}

	switch trimmed[0] {
	case '{':
		var snap wm.Snapshot
		if err := json.Unmarshal([]byte(trimmed), &snap); err == nil && snap.Windows != nil {
			return p.PrintSnapshot(snap)
		}
		return p.outputKeyValue(trimmed)
	case '[':
		var windows []wm.WindowView
		if err := json.Unmarshal([]byte(trimmed), &windows); err == nil {
			return p.printWindowTable(windows)
		}
	}
	fmt.Fprintln(p.out, trimmed)
	return nil
}

func (p *Printer) printWindowTable(windows []wm.WindowView) error {
	if len(windows) == 0 {
		fmt.Fprintln(p.out, p.paint(text.FgYellow, "No windows found"))
		return nil
	}

	t := p.newTable()
	t.AppendHeader(p.headers("id", "title", "visibility", "mode", "position", "size", "z"))
	for _, w := range windows {
		id := w.ID
		if w.Active {
			id = p.paint(text.FgHiGreen, id+" ●")
		}
		t.AppendRow(table.Row{
			id,
			w.Title,
			p.formatVisibility(w.Visibility),
			p.formatMode(w.Mode),
			fmt.Sprintf("%d,%d", w.Frame.X, w.Frame.Y),
			fmt.Sprintf("%dx%d", w.Frame.W, w.Frame.H),
			strconv.Itoa(w.Z),
		})
	}
	t.Render()
	return nil
}

func (p *Printer) printLauncherTable(launchers []wm.LauncherState) error {
	if len(launchers) == 0 {
		return nil
	}
	t := p.newTable()
	t.AppendHeader(p.headers("launcher", "window", "state"))
	for _, l := range launchers {
		state := "idle"
		switch {
		case l.Active:
			state = p.paint(text.FgGreen, "active")
		case l.Dimmed:
			state = p.paint(text.FgHiBlack, "dimmed")
		}
		t.AppendRow(table.Row{l.Launcher, l.Window, state})
	}
	t.Render()
	return nil
}

// outputKeyValue formats an object as key-value pairs
func (p *Printer) outputKeyValue(jsonData string) error {
	var data map[string]interface{}
	if err := json.Unmarshal([]byte(jsonData), &data); err != nil {
		return fmt.Errorf("failed to parse JSON: %w", err)
	}
	keys := make([]string, 0, len(data))
	for key := range data {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	t := p.newTable()
	t.AppendHeader(table.Row{p.header("PROPERTY"), p.header("VALUE")})
	for _, key := range keys {
		t.AppendRow(table.Row{p.key(key), fmt.Sprint(data[key])})
	}
	t.Render()
	return nil
}

// outputYAML converts JSON to YAML and prints it
func (p *Printer) outputYAML(jsonData string) error {
	var data interface{}
	if err := json.Unmarshal([]byte(jsonData), &data); err != nil {
		return fmt.Errorf("failed to parse JSON: %w", err)
	}
	return p.encode(data)
}

func (p *Printer) encode(v interface{}) error {
	switch p.options.Format {
	case OutputFormatJSON:
		enc := json.NewEncoder(p.out)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case OutputFormatYAML:
		// Round trip through JSON so the yaml output uses the json field names.
		data, err := json.Marshal(v)
		if err != nil {
			return err
		}
		var generic interface{}
		if err := json.Unmarshal(data, &generic); err != nil {
			return err
		}
		yamlData, err := yaml.Marshal(generic)
		if err != nil {
			return fmt.Errorf("failed to convert to YAML: %w", err)
		}
		_, err = p.out.Write(yamlData)
		return err
	}
	return fmt.Errorf("unsupported output format: %s", p.options.Format)
}

func (p *Printer) newTable() table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(p.out)
	t.SetStyle(table.StyleRounded)
	return t
}

func (p *Printer) headers(cols ...string) table.Row {
	row := make(table.Row, len(cols))
	for i, col := range cols {
		row[i] = p.header(strings.ToUpper(col))
	}
	return row
}

func (p *Printer) header(s string) string { return p.paint(text.FgHiCyan, s) }

func (p *Printer) key(s string) string { return p.paint(text.FgYellow, s) }

func (p *Printer) formatVisibility(v wm.Visibility) string {
	switch v {
	case wm.Visible:
		return p.paint(text.FgGreen, v.String())
	case wm.Minimized:
		return p.paint(text.FgYellow, v.String())
	default:
		return p.paint(text.FgHiBlack, v.String())
	}
}

func (p *Printer) formatMode(m wm.Mode) string {
	if m == wm.Normal {
		return m.String()
	}
	return p.paint(text.FgMagenta, m.String())
}

func (p *Printer) paint(c text.Color, s string) string {
	if p.options.NoColor {
		return s
	}
	return c.Sprint(s)
}

func contentKind(d config.WindowDefinition) string {
	switch {
	case d.Form:
		return "contact form"
	case len(d.Tabs) > 0:
		return fmt.Sprintf("%d tabs", len(d.Tabs))
	case d.Prompt != "":
		return "terminal"
	}
	return "text"
}

func orNone(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
