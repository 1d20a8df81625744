package workspace

import "github.com/wesen/patchbay/pkg/patchgraph"

// CanPatch reports whether a drag from source (in the given role)
// may complete on candidate. Connector-precise completion handlers
// use this; the drop pipeline applies the same check per slot.
func CanPatch(source, candidate *patchgraph.Container, role patchgraph.Role) bool {
	return canConnect(source, candidate, role)
}

// findTarget scans a leaf window's containers in list order and
// returns the first one compatible with the drag source, or nil.
func findTarget(source *patchgraph.Container, role patchgraph.Role, holder ContainerHolder) *patchgraph.Container {
	for _, candidate := range holder.Containers() {
		if canConnect(source, candidate, role) {
			return candidate
		}
	}
	return nil
}

// canConnect checks directional and capability compatibility between
// the drag source and a candidate. An existing inbound edge on the
// input side does not disqualify it; Connect supersedes it later. The
// domain predicate is consulted on the output-side container.
func canConnect(source, candidate *patchgraph.Container, role patchgraph.Role) bool {
	if candidate.ID == source.ID {
		return false
	}

	if role == patchgraph.RoleOutput {
		if !source.HasOutput || !candidate.HasInput {
			return false
		}
		if source.ConnectorState(patchgraph.RoleOutput) == patchgraph.ConnectorNone ||
			candidate.ConnectorState(patchgraph.RoleInput) == patchgraph.ConnectorNone {
			return false
		}
		return source.Admits(candidate)
	}

	if !source.HasInput || !candidate.HasOutput {
		return false
	}
	if source.ConnectorState(patchgraph.RoleInput) == patchgraph.ConnectorNone ||
		candidate.ConnectorState(patchgraph.RoleOutput) == patchgraph.ConnectorNone {
		return false
	}
	return candidate.Admits(source)
}
