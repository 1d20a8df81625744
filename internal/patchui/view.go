package patchui

import (
	"fmt"
	"image"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
)

// View implements tea.Model.
func (m Model) View() tea.View {
	if m.Width == 0 || m.Height == 0 {
		return tea.NewView("")
	}

	canvas := m.canvasRect()
	console := m.consoleRect()

	var layers []*lipgloss.Layer

	// Backgrounds
	layers = append(layers,
		fillLayer(image.Rect(0, 0, m.Width, 1), tbStyle, "toolbar-bg", 0),
		fillLayer(canvas, bgStyle, "canvas-bg", 0),
		fillLayer(console, bgStyle, "console-bg", 0),
		fillLayer(image.Rect(0, m.Height-1, m.Width, m.Height), ftStyle, "footer-bg", 0),
	)

	// Toolbar
	mode := "PATCH"
	if drag := m.Workspace.Drag(); drag != nil {
		mode = fmt.Sprintf("DRAGGING %s cable", drag.Role)
	}
	tb := fmt.Sprintf(
		" PATCHBAY  │  drag sockets to patch  │  %s  │  [r]ename [d]elete  ←↑↓→ pan  [q]uit",
		mode,
	)
	layers = append(layers, barLayer(tb, m.Width, 0, tbStyle, "toolbar"))

	// Footer
	sel := "none"
	if w := m.Workspace.Window(m.SelectedID); w != nil {
		sel = w.Title()
	}
	ft := fmt.Sprintf(
		" Mouse: (%d,%d)  Cam: (%d,%d)  Sel: %s  Windows: %d  %s",
		m.MouseX, m.MouseY, m.CamX, m.CamY, sel,
		len(m.Workspace.Windows()), m.Sink.flash,
	)
	layers = append(layers, barLayer(ft, m.Width, m.Height-1, ftStyle, "footer"))

	// Cables (Z=0), windows (Z=1..3)
	layers = append(layers, buildCableLayer(m, canvas))
	layers = append(layers, buildWindowLayers(m, canvas)...)

	// Console panel
	layers = append(layers, buildConsoleLayer(m, console))

	// Rename modal
	if m.RenameOpen {
		layers = append(layers, m.buildRenameModal())
	}

	// Compose
	comp := lipgloss.NewCompositor(layers...)
	cv := lipgloss.NewCanvas(m.Width, m.Height)
	cv.Compose(comp)

	v := tea.NewView(cv.Render())
	v.AltScreen = true
	v.MouseMode = tea.MouseModeAllMotion
	return v
}
