package patchui

import (
	"fmt"
	"image"
	"image/color"

	"charm.land/lipgloss/v2"

	"github.com/wesen/patchbay/pkg/cablegrid"
	"github.com/wesen/patchbay/pkg/patchgraph"
	"github.com/wesen/patchbay/pkg/workspace"
)

// cablegrid style keys for the cable background layer.
const (
	styleBG cablegrid.StyleKey = iota
	styleCable
	stylePreview
)

var gridStyles = map[cablegrid.StyleKey]lipgloss.Style{
	styleBG:      lipgloss.NewStyle().Background(colorBG),
	styleCable:   lipgloss.NewStyle().Foreground(cableColor).Background(colorBG),
	stylePreview: lipgloss.NewStyle().Foreground(previewColor).Background(colorBG),
}

// buildCableLayer renders every patch cable, plus the live drag
// preview, into one background layer at Z=0.
func buildCableLayer(m Model, viewport image.Rectangle) *lipgloss.Layer {
	w, h := viewport.Dx(), viewport.Dy()
	if w <= 0 || h <= 0 {
		return lipgloss.NewLayer("").X(viewport.Min.X).Y(viewport.Min.Y).Z(0)
	}
	grid := cablegrid.New(w, h, styleBG)
	toBuf := func(p image.Point) image.Point {
		return image.Pt(p.X-m.CamX, p.Y-m.CamY)
	}

	ws := m.Workspace
	for _, out := range ws.Graph().Containers() {
		from, ok := socketPos(ws, out, patchgraph.RoleOutput)
		if !ok {
			continue
		}
		for _, inID := range out.OutputIDs() {
			in := ws.Graph().Container(inID)
			if in == nil {
				continue
			}
			to, ok := socketPos(ws, in, patchgraph.RoleInput)
			if !ok {
				continue
			}
			grid.DrawCable(toBuf(from), toBuf(to), styleCable)
		}
	}

	if ws.Drag() != nil {
		mouseWorld := image.Pt(
			m.MouseX-viewport.Min.X+m.CamX,
			m.MouseY-viewport.Min.Y+m.CamY,
		)
		grid.DrawCable(toBuf(m.CableFrom), toBuf(mouseWorld), stylePreview)
	}

	return lipgloss.NewLayer(grid.Render(gridStyles)).
		X(viewport.Min.X).Y(viewport.Min.Y).Z(0).ID("cables")
}

// buildWindowLayers creates layers for every visible window: group
// surfaces at Z=1, module boxes at Z=2, titles and connector glyphs
// at Z=3.
func buildWindowLayers(m Model, viewport image.Rectangle) []*lipgloss.Layer {
	var layers []*lipgloss.Layer

	for _, win := range m.Workspace.Windows() {
		sx := win.Pos().X - m.CamX + viewport.Min.X
		sy := win.Pos().Y - m.CamY + viewport.Min.Y
		rect := image.Rect(sx, sy, sx+win.Size().X, sy+win.Size().Y)
		if !rect.Overlaps(viewport) {
			continue
		}

		if mod, ok := win.(*workspace.ModuleWindow); ok {
			layers = append(layers, buildModuleLayers(m, mod, sx, sy)...)
			continue
		}
		layers = append(layers, buildGroupLayers(m, win, sx, sy)...)
	}

	return layers
}

func buildModuleLayers(m Model, win *workspace.ModuleWindow, sx, sy int) []*lipgloss.Layer {
	bc := moduleBorder
	if win.ID() == m.SelectedID {
		bc = selBorder
	}

	lines := ""
	for i, slot := range win.Slots {
		text := lipgloss.NewStyle().
			Foreground(kindColor(slot.Kind)).
			Background(colorBG).
			Width(win.W - 2).
			AlignHorizontal(lipgloss.Center).
			Render(slot.Name)
		if i > 0 {
			lines += "\n"
		}
		lines += text
	}

	box := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(bc).
		Background(colorBG).
		Render(lines)

	layers := []*lipgloss.Layer{
		lipgloss.NewLayer(box).X(sx).Y(sy).Z(2).ID("win-" + win.ID()),
		titleLayer(win.Title(), moduleTitle, sx, sy, win.ID()),
	}

	for i, slot := range win.Slots {
		if slot.HasInput {
			layers = append(layers,
				socketLayer(m, slot, patchgraph.RoleInput, sx, sy+slotRowPad+i))
		}
		if slot.HasOutput {
			layers = append(layers,
				socketLayer(m, slot, patchgraph.RoleOutput, sx+win.W-1, sy+slotRowPad+i))
		}
	}
	return layers
}

func buildGroupLayers(m Model, win workspace.Window, sx, sy int) []*lipgloss.Layer {
	bc := groupBorder
	if win.ID() == m.SelectedID {
		bc = selBorder
	}
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(bc).
		Width(win.Size().X - 2).
		Height(win.Size().Y - 2).
		Render("")
	return []*lipgloss.Layer{
		lipgloss.NewLayer(box).X(sx).Y(sy).Z(1).ID("win-" + win.ID()),
		titleLayer(win.Title(), groupTitle, sx, sy, win.ID()),
	}
}

// titleLayer overlays the window title on the top border.
func titleLayer(title string, fg color.Color, sx, sy int, id string) *lipgloss.Layer {
	rendered := lipgloss.NewStyle().
		Foreground(fg).
		Background(colorBG).
		Render(" " + title + " ")
	return lipgloss.NewLayer(rendered).X(sx + 2).Y(sy).Z(3).ID("title-" + id)
}

// socketLayer renders one connector glyph.
func socketLayer(m Model, slot *patchgraph.Container, role patchgraph.Role, x, y int) *lipgloss.Layer {
	glyph := "○"
	fg := socketIdle
	if slot.ConnectorState(role) == patchgraph.ConnectorLinked {
		glyph = "●"
		fg = socketLinked
	}
	if slot.ID == m.HoverID && role == m.HoverRole {
		glyph = "◆"
		fg = socketHover
	}
	rendered := lipgloss.NewStyle().Foreground(fg).Background(colorBG).Render(glyph)
	return lipgloss.NewLayer(rendered).X(x).Y(y).Z(3).
		ID(fmt.Sprintf("sock-%s-%s", slot.ID, role))
}

// truncateLine cuts a line to at most max runes. Console lines carry
// multi-byte glyphs, so byte slicing would split them.
func truncateLine(s string, max int) string {
	if max <= 0 {
		return ""
	}
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max])
}

// buildConsoleLayer shows the most recent graph events.
func buildConsoleLayer(m Model, r image.Rectangle) *lipgloss.Layer {
	w, h := r.Dx(), r.Dy()
	if w <= 2 || h <= 1 {
		return lipgloss.NewLayer("").X(r.Min.X).Y(r.Min.Y).Z(1)
	}

	lines := m.Sink.lines
	max := h - 1
	if len(lines) > max {
		lines = lines[len(lines)-max:]
	}

	content := lipgloss.NewStyle().
		Foreground(moduleTitle).
		Background(colorBG).
		Bold(true).
		Render(" PATCH LOG")
	for _, line := range lines {
		content += "\n" + consoleStyle.Render(" "+truncateLine(line, w-2))
	}

	return lipgloss.NewLayer(content).X(r.Min.X).Y(r.Min.Y).Z(1).ID("console")
}
