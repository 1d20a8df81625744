package patchui

import (
	"image"
	"strings"

	"charm.land/lipgloss/v2"
)

const consoleWidth = 32

// canvasRect computes the canvas region for coordinate transforms.
// Must match the layout in View: toolbar(1) + footer(1) + console
// panel on the right.
func (m Model) canvasRect() image.Rectangle {
	w := m.Width - consoleWidth
	if w < 0 {
		w = 0
	}
	h := m.Height - 1
	if h < 1 {
		h = 1
	}
	return image.Rect(0, 1, w, h)
}

// consoleRect is the right-hand console panel region.
func (m Model) consoleRect() image.Rectangle {
	x := m.Width - consoleWidth
	if x < 0 {
		x = 0
	}
	h := m.Height - 1
	if h < 1 {
		h = 1
	}
	return image.Rect(x, 1, m.Width, h)
}

// fillLayer creates a background layer covering a rectangle.
func fillLayer(r image.Rectangle, style lipgloss.Style, id string, z int) *lipgloss.Layer {
	w, h := r.Dx(), r.Dy()
	if w <= 0 || h <= 0 {
		return lipgloss.NewLayer("").X(r.Min.X).Y(r.Min.Y).Z(z).ID(id)
	}
	line := strings.Repeat(" ", w)
	lines := make([]string, h)
	for i := range lines {
		lines[i] = line
	}
	return lipgloss.NewLayer(style.Render(strings.Join(lines, "\n"))).
		X(r.Min.X).Y(r.Min.Y).Z(z).ID(id)
}

// barLayer renders a full-width single-row bar at y.
func barLayer(content string, width, y int, style lipgloss.Style, id string) *lipgloss.Layer {
	return lipgloss.NewLayer(style.Width(width).Render(content)).
		X(0).Y(y).Z(0).ID(id)
}

// modalLayer centers a high-Z overlay on the terminal.
func modalLayer(content string, termW, termH int, boxStyle lipgloss.Style) *lipgloss.Layer {
	rendered := boxStyle.Render(content)
	cx := (termW - lipgloss.Width(rendered)) / 2
	cy := (termH - lipgloss.Height(rendered)) / 2
	if cx < 0 {
		cx = 0
	}
	if cy < 0 {
		cy = 0
	}
	return lipgloss.NewLayer(rendered).X(cx).Y(cy).Z(100).ID("modal")
}
