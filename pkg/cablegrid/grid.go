// Package cablegrid provides a styled character grid and orthogonal
// cable routing for rendering patch cables in a terminal.
//
// Cells carry an integer StyleKey so the grid stays decoupled from a
// concrete color scheme; the caller supplies the StyleKey→lipgloss
// mapping at render time. All runes are assumed single-width.
package cablegrid

import (
	"image"
	"strings"

	"charm.land/lipgloss/v2"
)

// StyleKey identifies a visual style, mapped to a lipgloss.Style by
// the caller at render time.
type StyleKey int

// Cell is one styled character.
type Cell struct {
	Ch    rune
	Style StyleKey
}

// Grid is a 2D grid of styled cells.
type Grid struct {
	W, H  int
	cells []Cell // row-major
}

// New creates a grid filled with spaces in the given style.
func New(w, h int, fill StyleKey) *Grid {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	g := &Grid{W: w, H: h, cells: make([]Cell, w*h)}
	for i := range g.cells {
		g.cells[i] = Cell{Ch: ' ', Style: fill}
	}
	return g
}

// InBounds reports whether (x, y) lies inside the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.W && y >= 0 && y < g.H
}

// At returns the cell at (x, y); the zero Cell when out of bounds.
func (g *Grid) At(x, y int) Cell {
	if !g.InBounds(x, y) {
		return Cell{}
	}
	return g.cells[y*g.W+x]
}

// Set writes one cell. Out-of-bounds writes are silently ignored.
func (g *Grid) Set(x, y int, ch rune, style StyleKey) {
	if g.InBounds(x, y) {
		g.cells[y*g.W+x] = Cell{Ch: ch, Style: style}
	}
}

// SetString writes a string left to right starting at (x, y).
func (g *Grid) SetString(x, y int, s string, style StyleKey) {
	for i, ch := range []rune(s) {
		g.Set(x+i, y, ch, style)
	}
}

// Render converts the grid to a styled string, merging same-style runs
// into single Style.Render calls. Rows are joined with "\n"; an empty
// grid renders as "".
func (g *Grid) Render(styles map[StyleKey]lipgloss.Style) string {
	if g.W == 0 || g.H == 0 {
		return ""
	}
	lines := make([]string, g.H)
	for y := 0; y < g.H; y++ {
		var sb strings.Builder
		row := g.cells[y*g.W : (y+1)*g.W]
		start := 0
		for x := 1; x <= len(row); x++ {
			if x < len(row) && row[x].Style == row[start].Style {
				continue
			}
			chunk := make([]rune, x-start)
			for i := start; i < x; i++ {
				chunk[i-start] = row[i].Ch
			}
			if s, ok := styles[row[start].Style]; ok {
				sb.WriteString(s.Render(string(chunk)))
			} else {
				sb.WriteString(string(chunk))
			}
			start = x
		}
		lines[y] = sb.String()
	}
	return strings.Join(lines, "\n")
}

// ── Cable routing ──

// DrawCable routes an orthogonal cable from one socket to the other:
// a horizontal run to the midpoint column, a vertical run, and a
// horizontal run into the target. Sockets are drawn as ● at both
// endpoints.
func (g *Grid) DrawCable(from, to image.Point, style StyleKey) {
	if from == to {
		g.Set(from.X, from.Y, '●', style)
		return
	}
	midX := (from.X + to.X) / 2

	g.hline(from.X, midX, from.Y, style)
	g.vline(from.Y, to.Y, midX, style)
	g.hline(midX, to.X, to.Y, style)

	if from.Y != to.Y {
		vy := sign(to.Y - from.Y)
		g.Set(midX, from.Y, corner(sign(midX-from.X), vy, true), style)
		g.Set(midX, to.Y, corner(sign(to.X-midX), vy, false), style)
	}

	g.Set(from.X, from.Y, '●', style)
	g.Set(to.X, to.Y, '●', style)
}

func (g *Grid) hline(x0, x1, y int, style StyleKey) {
	if x0 > x1 {
		x0, x1 = x1, x0
	}
	for x := x0; x <= x1; x++ {
		g.Set(x, y, '─', style)
	}
}

func (g *Grid) vline(y0, y1, x int, style StyleKey) {
	if y0 > y1 {
		y0, y1 = y1, y0
	}
	for y := y0; y <= y1; y++ {
		g.Set(x, y, '│', style)
	}
}

// corner picks the box-drawing elbow for a turn. horizFirst selects
// the horizontal→vertical turn; otherwise vertical→horizontal. hx and
// vy are the signs of the horizontal and vertical travel directions.
func corner(hx, vy int, horizFirst bool) rune {
	if hx == 0 {
		return '│'
	}
	if vy == 0 {
		return '─'
	}
	if horizFirst {
		switch {
		case hx > 0 && vy > 0:
			return '╮'
		case hx > 0:
			return '╯'
		case vy > 0:
			return '╭'
		default:
			return '╰'
		}
	}
	switch {
	case vy > 0 && hx > 0:
		return '╰'
	case vy > 0:
		return '╯'
	case hx > 0:
		return '╭'
	default:
		return '╮'
	}
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}
