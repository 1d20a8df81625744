package workspace

import "github.com/wesen/patchbay/pkg/patchgraph"

// hoverKey identifies one connector control: a container side.
type hoverKey struct {
	containerID string
	role        patchgraph.Role
}

// SetConnectorHover records an enter (true) or exit (false)
// notification for a connector control. Fed by the UI layer.
func (ws *Workspace) SetConnectorHover(containerID string, role patchgraph.Role, hovering bool) {
	k := hoverKey{containerID, role}
	if hovering {
		ws.hover[k] = true
	} else {
		delete(ws.hover, k)
	}
}

// IsHoveringConnector reports whether the pointer is over any
// connector control of the given window. The drop pipeline skips
// auto-resolution for such windows, ceding control to the precise
// per-connector handler.
func (ws *Workspace) IsHoveringConnector(w Window) bool {
	holder, ok := w.(ContainerHolder)
	if !ok {
		return false
	}
	for _, c := range holder.Containers() {
		if ws.hover[hoverKey{c.ID, patchgraph.RoleOutput}] ||
			ws.hover[hoverKey{c.ID, patchgraph.RoleInput}] {
			return true
		}
	}
	return false
}

// HoveredConnector returns the container and side currently hovered
// inside the given window, or (nil, RoleOutput, false).
func (ws *Workspace) HoveredConnector(w Window) (*patchgraph.Container, patchgraph.Role, bool) {
	holder, ok := w.(ContainerHolder)
	if !ok {
		return nil, patchgraph.RoleOutput, false
	}
	for _, c := range holder.Containers() {
		if ws.hover[hoverKey{c.ID, patchgraph.RoleOutput}] {
			return c, patchgraph.RoleOutput, true
		}
		if ws.hover[hoverKey{c.ID, patchgraph.RoleInput}] {
			return c, patchgraph.RoleInput, true
		}
	}
	return nil, patchgraph.RoleOutput, false
}
