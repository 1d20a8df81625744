package workspace

import (
	"image"

	"github.com/wesen/patchbay/pkg/patchgraph"
)

// DragState is the transient state of a live cable drag. It exists
// only between BeginDrag and Drop.
type DragState struct {
	SourceID string
	Role     patchgraph.Role
}

// BeginDrag marks a cable drag starting from the given container side.
func (ws *Workspace) BeginDrag(sourceID string, role patchgraph.Role) {
	ws.drag = &DragState{SourceID: sourceID, Role: role}
}

// Drag returns the live drag state, or nil when idle.
func (ws *Workspace) Drag() *DragState {
	return ws.drag
}

// CancelDrag returns the workspace to idle without resolving.
func (ws *Workspace) CancelDrag() {
	ws.drag = nil
}

// Drop resolves a loose cable end released at pt and stages the
// resulting connection. The drag state is cleared unconditionally,
// whatever the outcome. Every failure mode returns nil: the drag ends
// idle and nothing changes.
//
// Pipeline: locate the window under pt; descend through groups;
// reject the source's own window; cede to the precise per-connector
// handler when the pointer is over a connector control of the
// resolved window; scan the window's containers for the first
// compatible slot; stage the edge. For input-initiated drags the
// staged edge is (candidate output → source input), so the inbound
// edge replaced by Connect is the source's own.
func (ws *Workspace) Drop(pt image.Point) *patchgraph.Pending {
	drag := ws.drag
	ws.drag = nil
	if drag == nil {
		return nil
	}

	source := ws.graph.Container(drag.SourceID)
	if source == nil {
		return nil
	}
	sourceWin := ws.Owner(source.ID)

	target := ws.WindowAt(pt)
	if target == nil {
		return nil
	}
	if IsGroup(target) {
		target = ws.resolveInsideGroup(target, sourceWin, pt)
		if target == nil {
			return nil
		}
	}
	if sourceWin != nil && target.ID() == sourceWin.ID() {
		return nil
	}
	if ws.IsHoveringConnector(target) {
		return nil // connector-precise completion owns this drop
	}

	holder, ok := target.(ContainerHolder)
	if !ok {
		return nil
	}
	candidate := findTarget(source, drag.Role, holder)
	if candidate == nil {
		return nil
	}

	if drag.Role == patchgraph.RoleOutput {
		return ws.graph.Stage(source.ID, candidate.ID)
	}
	return ws.graph.Stage(candidate.ID, source.ID)
}
