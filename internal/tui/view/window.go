package view

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/x/ansi"

	"marios/internal/config"
	"marios/internal/tui/design"
	"marios/internal/tui/model"
	"marios/internal/wm"
)

// BodyLine is one row of window content.
type BodyLine struct {
	Text string
	Role design.Role
}

var controlGlyphs = map[wm.Control]rune{
	wm.ControlMinimize: '_',
	wm.ControlMaximize: '□',
	wm.ControlClose:    '×',
}

func drawWindow(c *Canvas, m *model.Model, v wm.WindowView) {
	frame := v.Frame
	border, title := design.RoleWindowBorder, design.RoleWindowTitle
	if v.Active {
		border, title = design.RoleWindowBorderFocus, design.RoleWindowTitleFocus
	}
	c.Box(frame, border, design.RoleWindowBody)
	if frame.H < 4 || frame.W < 10 {
		return
	}

	row := wm.TitleRow(frame)
	c.Fill(wm.Rect{X: frame.X + 1, Y: row, W: frame.W - 2, H: 1}, ' ', title)
	titleWidth := wm.ControlColumn(frame, wm.ControlMinimize) - frame.X - 3
	c.Text(frame.X+2, row, v.Title, title, titleWidth)
	for _, ctl := range []wm.Control{wm.ControlMinimize, wm.ControlMaximize, wm.ControlClose} {
		glyph := controlGlyphs[ctl]
		if ctl == wm.ControlMaximize && v.Mode == wm.Maximized {
			glyph = '▣'
		}
		c.Set(wm.ControlColumn(frame, ctl), row, glyph, design.RoleWindowControl)
	}
	c.HLine(frame, frame.Y+2, border)

	body := BodyRect(frame)
	lines := WindowBody(m, v.ID, body.W)
	if len(lines) > body.H {
		// Keep the bottom of the terminal in view, the top of everything else.
		if def, ok := m.Definition(v.ID); ok && def.Prompt != "" {
			lines = lines[len(lines)-body.H:]
		} else {
			lines = lines[:body.H]
		}
	}
	for i, l := range lines {
		c.Text(body.X, body.Y+i, l.Text, l.Role, body.W)
	}
}

// WindowBody lays out the content of a window for the given width. Static
// text is cached on the model until the window changes; the tab bar, the form
// and the prompt are rebuilt every frame.
func WindowBody(m *model.Model, id string, width int) []BodyLine {
	def, ok := m.Definition(id)
	if !ok || width <= 0 {
		return nil
	}

	var out []BodyLine
	if len(def.Tabs) > 0 {
		out = append(out, tabBar(def, m.SelectedTab(id)), BodyLine{Text: strings.Repeat("─", width), Role: design.RoleWindowBodyMuted})
	}

	text, ok := m.CachedBody(id, width)
	if !ok {
		text = wrap(staticContent(def, m.SelectedTab(id)), width)
		m.StoreBody(id, width, text)
	}
	for _, l := range text {
		out = append(out, BodyLine{Text: l, Role: design.RoleWindowBody})
	}

	if def.Form && m.Form != nil && m.Form.WindowID == id {
		out = append(out, formLines(m, width)...)
	}
	if def.Prompt != "" {
		out = append(out, BodyLine{}, promptLine(m, def))
	}
	return out
}

func staticContent(def config.WindowDefinition, tab int) string {
	if len(def.Tabs) > 0 {
		if tab < 0 || tab >= len(def.Tabs) {
			tab = 0
		}
		return def.Tabs[tab].Content
	}
	return def.Content
}

func wrap(s string, width int) []string {
	s = strings.TrimRight(s, "\n")
	if s == "" {
		return nil
	}
	return strings.Split(ansi.Wrap(s, width, ""), "\n")
}

func tabBar(def config.WindowDefinition, selected int) BodyLine {
	var b strings.Builder
	for i, t := range def.Tabs {
		if i > 0 {
			b.WriteString(" ")
		}
		if i == selected {
			fmt.Fprintf(&b, "[%s]", t.Name)
		} else {
			fmt.Fprintf(&b, " %s ", t.Name)
		}
	}
	return BodyLine{Text: b.String(), Role: design.RoleTabActive}
}

func formLines(m *model.Model, width int) []BodyLine {
	f := m.Form
	out := []BodyLine{{}}
	if email := m.Config.Contact.Email; email != "" {
		out = append(out, BodyLine{Text: "EMAIL: " + email + "  (y to copy)", Role: design.RoleWindowBodyMuted}, BodyLine{})
	}
	for i := range f.Inputs {
		role := design.RoleInput
		value := f.Inputs[i].Value()
		if value == "" {
			value = f.Inputs[i].Placeholder
		}
		if f.Editing && f.Focus == i {
			role = design.RoleInputFocus
			value = f.Inputs[i].Value() + "█"
		}
		label := fmt.Sprintf("%-8s ", model.Label(i))
		// Long values scroll so the cursor end stays visible.
		room := max(1, width-len(label)-2)
		value = tail(value, room)
		out = append(out, BodyLine{Text: label + "> " + value, Role: role})
	}

	status := "[ enter: edit ]"
	switch {
	case f.Sending:
		status = "transmitting..."
	case f.Editing && f.OnLastField():
		status = "[ enter: send ]  esc: cancel"
	case f.Editing:
		status = "[ enter: next ]  esc: cancel"
	}
	return append(out, BodyLine{}, BodyLine{Text: status, Role: design.RoleWindowBodyMuted})
}

func promptLine(m *model.Model, def config.WindowDefinition) BodyLine {
	line := def.Prompt + " "
	if m.Typist.Typing() {
		line += m.Typist.Line()
	}
	return BodyLine{Text: line + "█", Role: design.RoleWindowBody}
}

// tail keeps the last n cells of s.
func tail(s string, n int) string {
	w := ansi.StringWidth(s)
	if w <= n {
		return s
	}
	return ansi.TruncateLeft(s, w-n, "")
}
