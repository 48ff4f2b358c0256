package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// cell is one terminal cell on a canvas.
type cell struct {
	ch string
	fg lipgloss.Color
	bg lipgloss.Color
}

// canvas is a fixed grid of cells that layers are painted onto back to
// front. Later writes win.
type canvas struct {
	w, h  int
	cells []cell
}

func newCanvas(w, h int, bg lipgloss.Color) *canvas {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	c := &canvas{w: w, h: h, cells: make([]cell, w*h)}
	for i := range c.cells {
		c.cells[i] = cell{ch: " ", bg: bg}
	}
	return c
}

// set writes a single-column glyph at (x, y). Wide or empty glyphs are
// replaced with a space so the grid stays aligned. Out-of-range writes are
// dropped, which is how layers clip at the bar edges.
func (c *canvas) set(x, y int, ch string, fg, bg lipgloss.Color) {
	if x < 0 || y < 0 || x >= c.w || y >= c.h {
		return
	}
	if runewidth.StringWidth(ch) != 1 {
		ch = " "
	}
	c.cells[y*c.w+x] = cell{ch: ch, fg: fg, bg: bg}
}

func (c *canvas) at(x, y int) cell {
	return c.cells[y*c.w+x]
}

// renderRange serialises columns [from, to) of every row, merging runs of
// identically styled cells into a single lipgloss render.
func (c *canvas) renderRange(from, to int) string {
	if from < 0 {
		from = 0
	}
	if to > c.w {
		to = c.w
	}
	rows := make([]string, c.h)
	for y := 0; y < c.h; y++ {
		var (
			b   strings.Builder
			run strings.Builder
			cur cell
		)
		flush := func() {
			if run.Len() == 0 {
				return
			}
			st := lipgloss.NewStyle()
			if cur.fg != "" {
				st = st.Foreground(cur.fg)
			}
			if cur.bg != "" {
				st = st.Background(cur.bg)
			}
			b.WriteString(st.Render(run.String()))
			run.Reset()
		}
		for x := from; x < to; x++ {
			cl := c.at(x, y)
			if run.Len() > 0 && (cl.fg != cur.fg || cl.bg != cur.bg) {
				flush()
			}
			cur = cl
			run.WriteString(cl.ch)
		}
		flush()
		rows[y] = b.String()
	}
	return strings.Join(rows, "\n")
}
