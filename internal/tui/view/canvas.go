package view

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"marios/internal/tui/design"
	"marios/internal/wm"
)

// wideTail marks the second cell of a double-width rune.
const wideTail = 0

type cell struct {
	r    rune
	role design.Role
}

// Canvas is a grid of cells that windows and widgets are painted onto back
// to front. Later paints cover earlier ones.
type Canvas struct {
	W, H  int
	cells [][]cell
}

// NewCanvas creates a canvas filled with blank desktop cells.
func NewCanvas(w, h int) *Canvas {
	c := &Canvas{W: max(0, w), H: max(0, h)}
	c.cells = make([][]cell, c.H)
	for y := range c.cells {
		c.cells[y] = make([]cell, c.W)
		for x := range c.cells[y] {
			c.cells[y][x] = cell{r: ' ', role: design.RoleDesktop}
		}
	}
	return c
}

// Set paints one cell. Points outside the canvas are ignored.
func (c *Canvas) Set(x, y int, r rune, role design.Role) {
	if !c.inside(x, y) {
		return
	}
	// Painting over half of a wide rune blanks the other half.
	if c.cells[y][x].r == wideTail && x > 0 {
		c.cells[y][x-1] = cell{r: ' ', role: c.cells[y][x-1].role}
	}
	if x+1 < c.W && c.cells[y][x+1].r == wideTail {
		c.cells[y][x+1] = cell{r: ' ', role: c.cells[y][x+1].role}
	}
	c.cells[y][x] = cell{r: r, role: role}
}

// Text paints s starting at x,y and clips it to at most maxWidth cells. It
// returns the number of cells used.
func (c *Canvas) Text(x, y int, s string, role design.Role, maxWidth int) int {
	used := 0
	for _, r := range s {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		if used+w > maxWidth {
			break
		}
		px := x + used
		if w == 2 {
			c.Set(px+1, y, ' ', role)
			c.Set(px, y, r, role)
			if c.inside(px, y) && c.inside(px+1, y) {
				c.cells[y][px+1].r = wideTail
			} else {
				c.Set(px, y, ' ', role)
			}
		} else {
			c.Set(px, y, r, role)
		}
		used += w
	}
	return used
}

func (c *Canvas) inside(x, y int) bool {
	return x >= 0 && y >= 0 && x < c.W && y < c.H
}

// Fill paints every cell of r.
func (c *Canvas) Fill(r wm.Rect, ch rune, role design.Role) {
	for y := r.Y; y < r.Y+r.H; y++ {
		for x := r.X; x < r.X+r.W; x++ {
			c.Set(x, y, ch, role)
		}
	}
}

// Box paints a single-line border around r and fills its inside.
func (c *Canvas) Box(r wm.Rect, border, fill design.Role) {
	if r.W < 2 || r.H < 2 {
		return
	}
	c.Fill(wm.Rect{X: r.X + 1, Y: r.Y + 1, W: r.W - 2, H: r.H - 2}, ' ', fill)
	right, bottom := r.X+r.W-1, r.Y+r.H-1
	for x := r.X + 1; x < right; x++ {
		c.Set(x, r.Y, '─', border)
		c.Set(x, bottom, '─', border)
	}
	for y := r.Y + 1; y < bottom; y++ {
		c.Set(r.X, y, '│', border)
		c.Set(right, y, '│', border)
	}
	c.Set(r.X, r.Y, '┌', border)
	c.Set(right, r.Y, '┐', border)
	c.Set(r.X, bottom, '└', border)
	c.Set(right, bottom, '┘', border)
}

// HLine paints a horizontal rule across a box at row y, joined to its sides.
func (c *Canvas) HLine(r wm.Rect, y int, role design.Role) {
	right := r.X + r.W - 1
	for x := r.X + 1; x < right; x++ {
		c.Set(x, y, '─', role)
	}
	c.Set(r.X, y, '├', role)
	c.Set(right, y, '┤', role)
}

// Plain returns the canvas as unstyled text, one line per row.
func (c *Canvas) Plain() []string {
	lines := make([]string, c.H)
	for y, row := range c.cells {
		var b strings.Builder
		for _, cl := range row {
			if cl.r != wideTail {
				b.WriteRune(cl.r)
			}
		}
		lines[y] = b.String()
	}
	return lines
}

// String renders the canvas, styling each run of equal roles once.
func (c *Canvas) String() string {
	var out strings.Builder
	for y, row := range c.cells {
		if y > 0 {
			out.WriteByte('\n')
		}
		var run strings.Builder
		role := design.Role(0)
		flush := func() {
			if run.Len() > 0 {
				out.WriteString(design.Style(role).Render(run.String()))
				run.Reset()
			}
		}
		for x, cl := range row {
			if cl.r == wideTail {
				continue
			}
			if x == 0 || cl.role != role {
				flush()
				role = cl.role
			}
			run.WriteRune(cl.r)
		}
		flush()
	}
	return out.String()
}
