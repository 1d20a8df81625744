package workspace

import (
	"image"

	"github.com/wesen/patchbay/pkg/patchgraph"
)

// Workspace owns the ordered top-level window list (later = topmost)
// and the container-owner index. Window and container registration is
// synchronous: the registries can never be observed out of sync with
// the window tree.
type Workspace struct {
	graph   *patchgraph.Graph
	windows []Window          // stacking order, last is topmost
	byID    map[string]Window // window id → window
	owner   map[string]string // container id → window id
	hover   map[hoverKey]bool
	drag    *DragState
}

// New creates an empty workspace over the given graph.
func New(g *patchgraph.Graph) *Workspace {
	return &Workspace{
		graph: g,
		byID:  make(map[string]Window),
		owner: make(map[string]string),
		hover: make(map[hoverKey]bool),
	}
}

// Graph returns the underlying connection graph.
func (ws *Workspace) Graph() *patchgraph.Graph { return ws.graph }

// ── Window registry ──

// Add appends a window on top of the stack and registers its
// containers with the graph and the owner index. Duplicate window ids
// are ignored.
func (ws *Workspace) Add(w Window) {
	if w == nil || w.ID() == "" {
		return
	}
	if _, ok := ws.byID[w.ID()]; ok {
		return
	}
	ws.windows = append(ws.windows, w)
	ws.byID[w.ID()] = w
	if holder, ok := w.(ContainerHolder); ok {
		for _, c := range holder.Containers() {
			ws.graph.Register(c)
			ws.owner[c.ID] = w.ID()
		}
	}
}

// Remove drops a window, unregistering its containers (which retracts
// their edges) and clearing their hover flags.
func (ws *Workspace) Remove(id string) {
	w, ok := ws.byID[id]
	if !ok {
		return
	}
	delete(ws.byID, id)
	for i, win := range ws.windows {
		if win.ID() == id {
			ws.windows = append(ws.windows[:i], ws.windows[i+1:]...)
			break
		}
	}
	if holder, ok := w.(ContainerHolder); ok {
		for _, c := range holder.Containers() {
			ws.graph.Unregister(c.ID)
			delete(ws.owner, c.ID)
			delete(ws.hover, hoverKey{c.ID, patchgraph.RoleOutput})
			delete(ws.hover, hoverKey{c.ID, patchgraph.RoleInput})
		}
	}
}

// Window returns the window with the given id, or nil.
func (ws *Workspace) Window(id string) Window {
	return ws.byID[id]
}

// Windows returns the top-level windows in stacking order.
func (ws *Workspace) Windows() []Window {
	result := make([]Window, len(ws.windows))
	copy(result, ws.windows)
	return result
}

// Raise moves a window to the top of the stack.
func (ws *Workspace) Raise(id string) {
	for i, w := range ws.windows {
		if w.ID() == id {
			ws.windows = append(ws.windows[:i], ws.windows[i+1:]...)
			ws.windows = append(ws.windows, w)
			return
		}
	}
}

// StackIndex returns the position of a window in the top-level list,
// or -1. Higher means closer to the top.
func (ws *Workspace) StackIndex(id string) int {
	for i, w := range ws.windows {
		if w.ID() == id {
			return i
		}
	}
	return -1
}

// Owner returns the window owning the given container, or nil.
func (ws *Workspace) Owner(containerID string) Window {
	return ws.byID[ws.owner[containerID]]
}

// ── Spatial index ──

// WindowAt returns the topmost window whose rectangle contains pt, or
// nil when nothing matches or the workspace is empty.
func (ws *Workspace) WindowAt(pt image.Point) Window {
	for i := len(ws.windows) - 1; i >= 0; i-- {
		if pt.In(Bounds(ws.windows[i])) {
			return ws.windows[i]
		}
	}
	return nil
}
