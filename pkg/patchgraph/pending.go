package patchgraph

// Pending is a staged connection waiting for the current input-event
// cycle to finish. Drop resolution stages a mutation instead of
// applying it immediately so that a connector-precise completion
// handled elsewhere in the same cycle is not pre-empted or duplicated
// by the fallback path. Commit re-validates both endpoints, so a
// container freed between staging and commit degrades to a no-op.
type Pending struct {
	g         *Graph
	OutputID  string
	InputID   string
	cancelled bool
	committed bool
}

// Stage records a connection to be applied at the next cycle boundary.
func (g *Graph) Stage(outID, inID string) *Pending {
	return &Pending{g: g, OutputID: outID, InputID: inID}
}

// Cancel makes a later Commit a no-op.
func (p *Pending) Cancel() {
	if p != nil {
		p.cancelled = true
	}
}

// Commit applies the staged connection, re-validating endpoints and
// capabilities. It is single-shot: repeated calls are no-ops. Reports
// whether the graph changed.
func (p *Pending) Commit() bool {
	if p == nil || p.cancelled || p.committed {
		return false
	}
	p.committed = true
	return p.g.Connect(p.OutputID, p.InputID)
}
