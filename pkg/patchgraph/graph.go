package patchgraph

// Events receives notifications after the graph mutates. All methods
// are called synchronously from Connect/Disconnect.
type Events interface {
	ConnectionCreated(outputID, inputID string)
	ConnectionDeleted(outputID, inputID string)
}

// Graph is the container registry plus the edge mutator. It is not
// safe for concurrent use; the patchbay runs single-threaded on the
// UI event loop.
type Graph struct {
	containers map[string]*Container
	order      []string // insertion order for deterministic iteration

	Notify Events                         // optional mutation sink
	Ack    func()                         // optional acknowledgment hook (sound)
	Logf   func(format string, args ...any) // optional, nil = silent
}

// New creates an empty graph.
func New() *Graph {
	return &Graph{containers: make(map[string]*Container)}
}

// ── Registry ──

// Register adds a container. Registration is synchronous and
// authoritative; a duplicate id is a no-op.
func (g *Graph) Register(c *Container) {
	if c == nil || c.ID == "" {
		return
	}
	if _, ok := g.containers[c.ID]; ok {
		return
	}
	g.containers[c.ID] = c
	g.order = append(g.order, c.ID)
}

// Unregister retracts every edge touching the container, then removes
// it from the registry. Unknown ids are a no-op.
func (g *Graph) Unregister(id string) {
	c, ok := g.containers[id]
	if !ok {
		return
	}
	if c.inputID != "" {
		g.Disconnect(c.inputID, id)
	}
	for _, in := range c.OutputIDs() {
		g.Disconnect(id, in)
	}
	delete(g.containers, id)
	for i, oid := range g.order {
		if oid == id {
			g.order = append(g.order[:i], g.order[i+1:]...)
			break
		}
	}
}

// Container returns the container with the given id, or nil.
func (g *Graph) Container(id string) *Container {
	return g.containers[id]
}

// Containers returns all containers in registration order.
func (g *Graph) Containers() []*Container {
	result := make([]*Container, 0, len(g.order))
	for _, id := range g.order {
		if c, ok := g.containers[id]; ok {
			result = append(result, c)
		}
	}
	return result
}

// ── Mutation ──

// Connect creates the edge outID→inID and reports whether anything
// changed. Failure modes are silent no-ops: unknown or equal ids,
// missing capabilities, a ConnectorNone side, or a duplicate edge.
// Re-connecting the target's current inbound source is idempotent and
// emits nothing. If the target holds a differing inbound edge, that
// stale edge is retracted first.
func (g *Graph) Connect(outID, inID string) bool {
	if outID == inID {
		return false
	}
	out := g.containers[outID]
	in := g.containers[inID]
	if out == nil || in == nil {
		return false
	}
	if !out.HasOutput || !in.HasInput {
		return false
	}
	if out.OutState == ConnectorNone || in.InState == ConnectorNone {
		return false
	}
	if in.inputID == outID {
		return false // already wired to this source
	}
	if out.feeds(inID) {
		return false
	}
	if in.inputID != "" {
		g.Disconnect(in.inputID, inID)
	}

	out.outputIDs = append(out.outputIDs, inID)
	out.OutState = ConnectorLinked
	in.inputID = outID
	in.InState = ConnectorLinked

	if g.Notify != nil {
		g.Notify.ConnectionCreated(outID, inID)
	}
	if g.Ack != nil {
		g.Ack()
	}
	if g.Logf != nil {
		g.Logf("Connected: %s -> %s", outID, inID)
	}
	return true
}

// Disconnect retracts the edge outID→inID and reports whether anything
// changed. The retract validates the output container still exists and
// actually feeds the target; otherwise it is a silent no-op.
func (g *Graph) Disconnect(outID, inID string) bool {
	out := g.containers[outID]
	if out == nil || !out.feeds(inID) {
		return false
	}
	out.dropOutput(inID)
	if len(out.outputIDs) == 0 && out.OutState == ConnectorLinked {
		out.OutState = ConnectorIdle
	}
	if in := g.containers[inID]; in != nil && in.inputID == outID {
		in.inputID = ""
		if in.InState == ConnectorLinked {
			in.InState = ConnectorIdle
		}
	}

	if g.Notify != nil {
		g.Notify.ConnectionDeleted(outID, inID)
	}
	if g.Logf != nil {
		g.Logf("Deleted: %s -> %s", outID, inID)
	}
	return true
}

// Edge reports whether the edge outID→inID currently exists.
func (g *Graph) Edge(outID, inID string) bool {
	out := g.containers[outID]
	return out != nil && out.feeds(inID)
}
