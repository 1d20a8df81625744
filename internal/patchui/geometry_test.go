package patchui

import (
	"image"
	"testing"

	"github.com/wesen/patchbay/pkg/patchgraph"
	"github.com/wesen/patchbay/pkg/workspace"
)

func testSlot(id, kind string, out, in bool) *patchgraph.Container {
	c := &patchgraph.Container{ID: id, Kind: kind, HasOutput: out, HasInput: in}
	if out {
		c.OutState = patchgraph.ConnectorIdle
	}
	if in {
		c.InState = patchgraph.ConnectorIdle
	}
	return c
}

func testModule(id string, x, y int, slots ...*patchgraph.Container) *workspace.ModuleWindow {
	return &workspace.ModuleWindow{
		WindowID: id, Name: id, X: x, Y: y,
		W: moduleWidth, H: moduleHeight(len(slots)), Slots: slots,
	}
}

func TestSocketPositions(t *testing.T) {
	a := testSlot("a", "audio", true, true)
	win := testModule("W", 10, 5, a)
	ws := workspace.New(patchgraph.New())
	ws.Add(win)

	in, ok := socketPos(ws, a, patchgraph.RoleInput)
	if !ok || in != image.Pt(10, 6) {
		t.Errorf("input socket: got %v/%v", in, ok)
	}
	out, ok := socketPos(ws, a, patchgraph.RoleOutput)
	if !ok || out != image.Pt(10+moduleWidth-1, 6) {
		t.Errorf("output socket: got %v/%v", out, ok)
	}
}

func TestConnectorAtExactCellOnly(t *testing.T) {
	a := testSlot("a", "audio", true, false)
	win := testModule("W", 0, 0, a)
	ws := workspace.New(patchgraph.New())
	ws.Add(win)

	c, role, ok := connectorAt(ws, image.Pt(moduleWidth-1, 1))
	if !ok || c.ID != "a" || role != patchgraph.RoleOutput {
		t.Errorf("expected output connector of a, got %v/%v/%v", c, role, ok)
	}
	if _, _, ok := connectorAt(ws, image.Pt(moduleWidth-2, 1)); ok {
		t.Error("one cell off the socket must not hit")
	}
	// No input capability: the left border cell is not a connector.
	if _, _, ok := connectorAt(ws, image.Pt(0, 1)); ok {
		t.Error("output-only slot has no input connector")
	}
}

func TestConnectorAtSeesThroughGroups(t *testing.T) {
	a := testSlot("a", "audio", true, false)
	win := testModule("W", 4, 4, a)
	ws := workspace.New(patchgraph.New())
	ws.Add(win)
	ws.Add(workspace.NewGroupWindow("G", 0, 0, 40, 20)) // covers the module

	if _, _, ok := connectorAt(ws, image.Pt(4+moduleWidth-1, 5)); !ok {
		t.Error("connector controls must stay reachable under a group overlay")
	}
}

func TestTrackHoverEnterExit(t *testing.T) {
	a := testSlot("a", "audio", true, false)
	win := testModule("W", 0, 0, a)
	ws := workspace.New(patchgraph.New())
	ws.Add(win)
	m := NewModel(ws)

	m = trackHover(m, image.Pt(moduleWidth-1, 1))
	if !ws.IsHoveringConnector(win) {
		t.Fatal("hover enter not forwarded to the workspace")
	}
	m = trackHover(m, image.Pt(50, 50))
	if ws.IsHoveringConnector(win) {
		t.Error("hover exit not forwarded to the workspace")
	}
	if m.HoverID != "" {
		t.Error("model hover bookkeeping not cleared")
	}
}

func TestHandleReleasePreciseConnector(t *testing.T) {
	src := testSlot("src", "audio", true, false)
	dst := testSlot("dst", "audio", false, true)
	a := testModule("A", 0, 0, src)
	b := testModule("B", 40, 0, dst)
	ws := workspace.New(patchgraph.New())
	ws.Add(a)
	ws.Add(b)
	m := NewModel(ws)

	ws.BeginDrag("src", patchgraph.RoleOutput)
	m2, cmd := handleRelease(m, image.Pt(40, 1)) // exact input socket of dst
	if cmd == nil {
		t.Fatal("precise release should stage a connection")
	}
	msg, ok := cmd().(commitMsg)
	if !ok {
		t.Fatal("expected a commitMsg")
	}
	msg.pending.Commit()
	if !ws.Graph().Edge("src", "dst") {
		t.Error("edge missing after precise release + commit")
	}
	if m2.Workspace.Drag() != nil {
		t.Error("drag must end idle")
	}
}

func TestHandleReleaseFallbackDrop(t *testing.T) {
	src := testSlot("src", "audio", true, false)
	dst := testSlot("dst", "audio", false, true)
	a := testModule("A", 0, 0, src)
	b := testModule("B", 40, 0, dst)
	ws := workspace.New(patchgraph.New())
	ws.Add(a)
	ws.Add(b)
	m := NewModel(ws)

	ws.BeginDrag("src", patchgraph.RoleOutput)
	_, cmd := handleRelease(m, image.Pt(50, 1)) // inside B, not on a socket
	if cmd == nil {
		t.Fatal("fallback release should stage a connection")
	}
	cmd().(commitMsg).pending.Commit()
	if !ws.Graph().Edge("src", "dst") {
		t.Error("edge missing after fallback drop + commit")
	}
}

func TestDemoRackWiring(t *testing.T) {
	ws := MakeDemoRack(nil)
	if len(ws.Windows()) != 7 {
		t.Fatalf("expected 7 windows, got %d", len(ws.Windows()))
	}
	groups := 0
	for _, w := range ws.Windows() {
		if workspace.IsGroup(w) {
			groups++
		}
	}
	if groups != 1 {
		t.Errorf("expected exactly 1 group window, got %d", groups)
	}
}
