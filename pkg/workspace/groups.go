package workspace

import "image"

// resolveInsideGroup finds the innermost, topmost, non-group window
// under pt among the top-level windows fully enclosed by group's
// rectangle. The group itself and the drag's source window are
// excluded; nested groups recurse, and their winners compete on the
// nested window's own stacking index. Never returns a group.
func (ws *Workspace) resolveInsideGroup(group, source Window, pt image.Point) Window {
	return ws.resolveInGroup(group, source, pt, map[string]bool{group.ID(): true})
}

// resolveInGroup carries the set of group ids already descended into.
// Rectangle enclosure accepts equality, so two same-rect groups each
// enclose the other; without the guard that geometry recurses forever.
func (ws *Workspace) resolveInGroup(group, source Window, pt image.Point, seen map[string]bool) Window {
	groupBounds := Bounds(group)

	var best Window
	bestIdx := -1

	for idx, w := range ws.windows {
		if w.ID() == group.ID() {
			continue
		}
		if source != nil && w.ID() == source.ID() {
			continue
		}
		if !Bounds(w).In(groupBounds) {
			continue
		}
		if !pt.In(Bounds(w)) {
			continue
		}

		if IsGroup(w) {
			if seen[w.ID()] {
				continue
			}
			seen[w.ID()] = true
			inner := ws.resolveInGroup(w, source, pt, seen)
			if inner == nil {
				continue
			}
			// Compare by the nested window's own index, not the group's.
			innerIdx := ws.StackIndex(inner.ID())
			if innerIdx > bestIdx {
				best, bestIdx = inner, innerIdx
			}
			continue
		}

		holder, ok := w.(ContainerHolder)
		if !ok || len(holder.Containers()) == 0 {
			continue
		}
		if idx > bestIdx {
			best, bestIdx = w, idx
		}
	}

	return best
}
