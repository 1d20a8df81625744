package patchui

import (
	"image"

	tea "charm.land/bubbletea/v2"

	"github.com/wesen/patchbay/pkg/patchgraph"
	"github.com/wesen/patchbay/pkg/workspace"
)

// handleMouse processes mouse events and returns updated model + command.
func handleMouse(m Model, msg tea.MouseMsg, canvasRect image.Rectangle) (Model, tea.Cmd) {
	mouse := msg.Mouse()
	m.MouseX = mouse.X
	m.MouseY = mouse.Y

	if !image.Pt(mouse.X, mouse.Y).In(canvasRect) {
		return m, nil
	}

	// World coordinates from screen position
	world := image.Pt(
		mouse.X-canvasRect.Min.X+m.CamX,
		mouse.Y-canvasRect.Min.Y+m.CamY,
	)

	switch msg.(type) {
	case tea.MouseMotionMsg:
		m = trackHover(m, world)
		if m.MovingID != "" {
			if w := m.Workspace.Window(m.MovingID); w != nil {
				moveWindow(w, image.Pt(world.X-m.MoveOffX, world.Y-m.MoveOffY))
			}
		}

	case tea.MouseClickMsg:
		if mouse.Button == tea.MouseLeft {
			m.Sink.flash = ""
			m = handleLeftPress(m, world)
		}

	case tea.MouseReleaseMsg:
		return handleRelease(m, world)
	}

	return m, nil
}

// trackHover feeds connector enter/exit notifications to the hover
// tracker as the pointer moves.
func trackHover(m Model, world image.Point) Model {
	c, role, ok := connectorAt(m.Workspace, world)
	if ok && c.ID == m.HoverID && role == m.HoverRole {
		return m
	}
	if m.HoverID != "" {
		m.Workspace.SetConnectorHover(m.HoverID, m.HoverRole, false)
		m.HoverID = ""
	}
	if ok {
		m.Workspace.SetConnectorHover(c.ID, role, true)
		m.HoverID = c.ID
		m.HoverRole = role
	}
	return m
}

// handleLeftPress grabs a connector (cable drag) or a window body
// (move drag), topmost first.
func handleLeftPress(m Model, world image.Point) Model {
	if c, role, ok := connectorAt(m.Workspace, world); ok {
		m.Workspace.BeginDrag(c.ID, role)
		m.CableFrom = world
		return m
	}

	if w := m.Workspace.WindowAt(world); w != nil {
		m.SelectedID = w.ID()
		m.Workspace.Raise(w.ID())
		m.MovingID = w.ID()
		m.MoveOffX = world.X - w.Pos().X
		m.MoveOffY = world.Y - w.Pos().Y
	} else {
		m.SelectedID = ""
	}
	return m
}

// handleRelease finishes a window move or resolves a cable drop. A
// release on an exact connector takes the precise path; anywhere else
// falls back to workspace drop resolution. Either way the staged
// connection is committed on the next cycle via commitMsg.
func handleRelease(m Model, world image.Point) (Model, tea.Cmd) {
	m.MovingID = ""

	drag := m.Workspace.Drag()
	if drag == nil {
		return m, nil
	}

	if c, role, ok := connectorAt(m.Workspace, world); ok {
		m.Workspace.CancelDrag()
		source := m.Workspace.Graph().Container(drag.SourceID)
		if source == nil || role == drag.Role || !workspace.CanPatch(source, c, drag.Role) {
			return m, nil
		}
		var p *patchgraph.Pending
		if drag.Role == patchgraph.RoleOutput {
			p = m.Workspace.Graph().Stage(source.ID, c.ID)
		} else {
			p = m.Workspace.Graph().Stage(c.ID, source.ID)
		}
		return m, commitCmd(p)
	}

	return m, commitCmd(m.Workspace.Drop(world))
}
