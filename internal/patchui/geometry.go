package patchui

import (
	"image"

	"github.com/wesen/patchbay/pkg/patchgraph"
	"github.com/wesen/patchbay/pkg/workspace"
)

// slotRow returns the world row of slot i in a module window.
func slotRow(win *workspace.ModuleWindow, i int) int {
	return win.Y + slotRowPad + i
}

// inputSocketPos returns the world position of a slot's input
// connector (left border column).
func inputSocketPos(win *workspace.ModuleWindow, i int) image.Point {
	return image.Pt(win.X, slotRow(win, i))
}

// outputSocketPos returns the world position of a slot's output
// connector (right border column).
func outputSocketPos(win *workspace.ModuleWindow, i int) image.Point {
	return image.Pt(win.X+win.W-1, slotRow(win, i))
}

// socketPos returns the connector position for a container side, or
// false when the workspace does not know the container.
func socketPos(ws *workspace.Workspace, c *patchgraph.Container, role patchgraph.Role) (image.Point, bool) {
	owner, ok := ws.Owner(c.ID).(*workspace.ModuleWindow)
	if !ok {
		return image.Point{}, false
	}
	for i, slot := range owner.Slots {
		if slot.ID != c.ID {
			continue
		}
		if role == patchgraph.RoleInput {
			return inputSocketPos(owner, i), true
		}
		return outputSocketPos(owner, i), true
	}
	return image.Point{}, false
}

// connectorAt hit-tests connector controls across all leaf windows,
// topmost first. Group overlays are transparent to connector controls,
// so modules covered by a group stay patchable with precise clicks.
func connectorAt(ws *workspace.Workspace, pt image.Point) (*patchgraph.Container, patchgraph.Role, bool) {
	wins := ws.Windows()
	for i := len(wins) - 1; i >= 0; i-- {
		win, ok := wins[i].(*workspace.ModuleWindow)
		if !ok {
			continue
		}
		for j, slot := range win.Slots {
			if slot.HasInput && pt == inputSocketPos(win, j) {
				return slot, patchgraph.RoleInput, true
			}
			if slot.HasOutput && pt == outputSocketPos(win, j) {
				return slot, patchgraph.RoleOutput, true
			}
		}
	}
	return nil, patchgraph.RoleOutput, false
}

// moveWindow updates a window's position. Only the surface moves;
// enclosed windows keep their own coordinates.
func moveWindow(w workspace.Window, pos image.Point) {
	switch win := w.(type) {
	case *workspace.ModuleWindow:
		win.X, win.Y = pos.X, pos.Y
	case *workspace.GroupWindow:
		win.X, win.Y = pos.X, pos.Y
	}
}
