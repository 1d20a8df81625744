package patchgraph

import "testing"

// recorder captures emitted events in order.
type recorder struct {
	events []string
}

func (r *recorder) ConnectionCreated(out, in string) {
	r.events = append(r.events, "create "+out+"->"+in)
}

func (r *recorder) ConnectionDeleted(out, in string) {
	r.events = append(r.events, "delete "+out+"->"+in)
}

func output(id string) *Container {
	return &Container{ID: id, HasOutput: true, OutState: ConnectorIdle}
}

func input(id string) *Container {
	return &Container{ID: id, HasInput: true, InState: ConnectorIdle}
}

func duplex(id string) *Container {
	return &Container{
		ID: id, HasOutput: true, HasInput: true,
		OutState: ConnectorIdle, InState: ConnectorIdle,
	}
}

func newGraph(cs ...*Container) (*Graph, *recorder) {
	g := New()
	rec := &recorder{}
	g.Notify = rec
	for _, c := range cs {
		g.Register(c)
	}
	return g, rec
}

// ── Registry ──

func TestRegisterAndLookup(t *testing.T) {
	g, _ := newGraph(output("a"), input("b"))
	if g.Container("a") == nil || g.Container("b") == nil {
		t.Fatal("registered containers not found")
	}
	if g.Container("missing") != nil {
		t.Error("expected nil for unknown id")
	}
}

func TestRegisterDuplicateIsNoop(t *testing.T) {
	g, _ := newGraph(output("a"))
	g.Register(output("a"))
	if len(g.Containers()) != 1 {
		t.Error("duplicate registration should be ignored")
	}
}

func TestContainersRegistrationOrder(t *testing.T) {
	g, _ := newGraph(output("z"), input("a"), duplex("m"))
	cs := g.Containers()
	if len(cs) != 3 || cs[0].ID != "z" || cs[1].ID != "a" || cs[2].ID != "m" {
		t.Errorf("Containers() not in registration order: %v", cs)
	}
}

func TestUnregisterRetractsEdges(t *testing.T) {
	g, rec := newGraph(output("a"), duplex("b"), input("c"))
	g.Connect("a", "b")
	g.Connect("b", "c")

	rec.events = nil
	g.Unregister("b")

	want := []string{"delete a->b", "delete b->c"}
	if len(rec.events) != 2 || rec.events[0] != want[0] || rec.events[1] != want[1] {
		t.Errorf("expected %v, got %v", want, rec.events)
	}
	if g.Container("b") != nil {
		t.Error("container should be gone")
	}
	if g.Container("c").InputID() != "" {
		t.Error("c should have no inbound edge left")
	}
}

// ── Connect ──

func TestConnectCreatesEdge(t *testing.T) {
	g, rec := newGraph(output("a"), input("b"))
	if !g.Connect("a", "b") {
		t.Fatal("Connect should succeed")
	}
	if !g.Edge("a", "b") {
		t.Error("edge not registered")
	}
	if g.Container("b").InputID() != "a" {
		t.Errorf("b.InputID: expected a, got %q", g.Container("b").InputID())
	}
	if len(rec.events) != 1 || rec.events[0] != "create a->b" {
		t.Errorf("events: %v", rec.events)
	}
}

func TestConnectSelfLoop(t *testing.T) {
	g, rec := newGraph(duplex("a"))
	if g.Connect("a", "a") {
		t.Error("self-loop must be rejected")
	}
	if len(rec.events) != 0 {
		t.Errorf("no events expected, got %v", rec.events)
	}
}

func TestConnectUnknownIDs(t *testing.T) {
	g, rec := newGraph(output("a"))
	if g.Connect("a", "ghost") || g.Connect("ghost", "a") {
		t.Error("unknown ids must be a no-op")
	}
	if len(rec.events) != 0 {
		t.Errorf("no events expected, got %v", rec.events)
	}
}

func TestConnectMissingCapability(t *testing.T) {
	g, _ := newGraph(input("a"), input("b"))
	if g.Connect("a", "b") {
		t.Error("source without output capability must be rejected")
	}
	g2, _ := newGraph(output("a"), output("b"))
	if g2.Connect("a", "b") {
		t.Error("target without input capability must be rejected")
	}
}

func TestConnectDisabledConnectorVeto(t *testing.T) {
	a := output("a")
	a.OutState = ConnectorNone
	g, _ := newGraph(a, input("b"))
	if g.Connect("a", "b") {
		t.Error("disabled output connector must veto")
	}

	c := input("d")
	c.InState = ConnectorNone
	g2, _ := newGraph(output("c"), c)
	if g2.Connect("c", "d") {
		t.Error("disabled input connector must veto")
	}
}

func TestConnectReplacesStaleInbound(t *testing.T) {
	g, rec := newGraph(output("c1"), output("c3"), input("c2"))
	g.Connect("c3", "c2")
	rec.events = nil

	if !g.Connect("c1", "c2") {
		t.Fatal("Connect should succeed")
	}
	want := []string{"delete c3->c2", "create c1->c2"}
	if len(rec.events) != 2 || rec.events[0] != want[0] || rec.events[1] != want[1] {
		t.Errorf("expected %v, got %v", want, rec.events)
	}
	if g.Edge("c3", "c2") {
		t.Error("stale edge still present")
	}
	if g.Container("c2").InputID() != "c1" {
		t.Error("inbound edge not replaced")
	}
}

func TestConnectIdempotent(t *testing.T) {
	g, rec := newGraph(output("c1"), input("c2"))
	g.Connect("c1", "c2")
	rec.events = nil

	if g.Connect("c1", "c2") {
		t.Error("re-creating the current inbound edge must be a no-op")
	}
	if len(rec.events) != 0 {
		t.Errorf("no events expected, got %v", rec.events)
	}
}

func TestConnectAckFires(t *testing.T) {
	g, _ := newGraph(output("a"), input("b"))
	acks := 0
	g.Ack = func() { acks++ }
	g.Connect("a", "b")
	g.Connect("a", "b") // idempotent, no second ack
	if acks != 1 {
		t.Errorf("expected 1 ack, got %d", acks)
	}
}

func TestConnectLogLine(t *testing.T) {
	g, _ := newGraph(output("a"), input("b"))
	var lines []string
	g.Logf = func(format string, args ...any) {
		lines = append(lines, format)
	}
	g.Connect("a", "b")
	g.Disconnect("a", "b")
	if len(lines) != 2 || lines[0] != "Connected: %s -> %s" || lines[1] != "Deleted: %s -> %s" {
		t.Errorf("unexpected log lines: %v", lines)
	}
}

// ── Disconnect ──

func TestDisconnectValidatesEdge(t *testing.T) {
	g, rec := newGraph(output("a"), input("b"))
	if g.Disconnect("a", "b") {
		t.Error("retracting a non-existent edge must be a no-op")
	}
	if g.Disconnect("ghost", "b") {
		t.Error("retracting from an unknown container must be a no-op")
	}
	if len(rec.events) != 0 {
		t.Errorf("no events expected, got %v", rec.events)
	}
}

func TestDisconnectClearsBothSides(t *testing.T) {
	g, _ := newGraph(output("a"), input("b"))
	g.Connect("a", "b")
	if !g.Disconnect("a", "b") {
		t.Fatal("Disconnect should succeed")
	}
	if g.Edge("a", "b") {
		t.Error("edge still present")
	}
	if g.Container("b").InputID() != "" {
		t.Error("inbound edge not cleared")
	}
	if g.Container("a").ConnectorState(RoleOutput) != ConnectorIdle {
		t.Error("output connector should return to idle")
	}
}

// ── Single-inbound invariant ──

func TestSingleInboundInvariant(t *testing.T) {
	g, _ := newGraph(output("a"), output("b"), output("c"), input("x"))
	g.Connect("a", "x")
	g.Connect("b", "x")
	g.Connect("c", "x")

	if g.Container("x").InputID() != "c" {
		t.Errorf("expected inbound c, got %q", g.Container("x").InputID())
	}
	inbound := 0
	for _, src := range []string{"a", "b", "c"} {
		if g.Edge(src, "x") {
			inbound++
		}
	}
	if inbound != 1 {
		t.Errorf("expected exactly 1 inbound edge, got %d", inbound)
	}
}

// ── Fan-out ──

func TestOutputFansOut(t *testing.T) {
	g, _ := newGraph(output("a"), input("x"), input("y"))
	g.Connect("a", "x")
	g.Connect("a", "y")
	outs := g.Container("a").OutputIDs()
	if len(outs) != 2 || outs[0] != "x" || outs[1] != "y" {
		t.Errorf("expected [x y], got %v", outs)
	}
}
