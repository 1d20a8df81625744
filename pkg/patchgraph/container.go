// Package patchgraph maintains the connection graph of a patchbay:
// endpoint containers with input/output capabilities, directed cable
// edges between them, and the mutation rules that keep the graph
// consistent (at most one inbound edge per container, no self-loops,
// no duplicate edges).
package patchgraph

import "github.com/google/uuid"

// Role identifies which side of an eventual edge a drag started from.
type Role int

const (
	RoleOutput Role = iota
	RoleInput
)

// String returns "output" or "input".
func (r Role) String() string {
	if r == RoleInput {
		return "input"
	}
	return "output"
}

// ConnectorState is the visual/logical state of one side of a container.
// ConnectorNone means the side exposes no usable connector and
// unconditionally vetoes connection on that side.
type ConnectorState int

const (
	ConnectorNone ConnectorState = iota
	ConnectorIdle
	ConnectorLinked
)

// Rules is the external domain-compatibility predicate. It is always
// consulted on the output-side container, with the input side as `to`.
type Rules interface {
	CanConnect(from, to *Container) bool
}

// Container is one endpoint container in the patch graph. A container
// exposes at most one input and any number of outputs; the edge state
// (inputID, outputIDs) is owned by the Graph and mutated only through
// Connect/Disconnect.
type Container struct {
	ID        string
	Name      string // display label, opaque to the graph
	Kind      string // domain tag, opaque to the graph; visible to Rules
	HasOutput bool
	HasInput  bool
	OutState  ConnectorState
	InState   ConnectorState
	Rules     Rules // nil means unrestricted

	inputID   string   // at most one inbound edge, "" when unconnected
	outputIDs []string // outgoing edge targets in creation order
}

// NewContainer creates a container with a fresh uuid. Sides that are
// enabled start in ConnectorIdle; disabled sides stay ConnectorNone.
func NewContainer(name, kind string, hasOutput, hasInput bool) *Container {
	c := &Container{
		ID:        uuid.NewString(),
		Name:      name,
		Kind:      kind,
		HasOutput: hasOutput,
		HasInput:  hasInput,
	}
	if hasOutput {
		c.OutState = ConnectorIdle
	}
	if hasInput {
		c.InState = ConnectorIdle
	}
	return c
}

// InputID returns the id of the container feeding this one, or "".
func (c *Container) InputID() string {
	return c.inputID
}

// OutputIDs returns the ids this container feeds, in creation order.
func (c *Container) OutputIDs() []string {
	out := make([]string, len(c.outputIDs))
	copy(out, c.outputIDs)
	return out
}

// ConnectorState returns the connector state for the given side.
func (c *Container) ConnectorState(r Role) ConnectorState {
	if r == RoleInput {
		return c.InState
	}
	return c.OutState
}

// Admits reports whether this container's rules allow feeding `in`.
// A nil rule set admits everything.
func (c *Container) Admits(in *Container) bool {
	if c.Rules == nil {
		return true
	}
	return c.Rules.CanConnect(c, in)
}

func (c *Container) feeds(id string) bool {
	for _, out := range c.outputIDs {
		if out == id {
			return true
		}
	}
	return false
}

func (c *Container) dropOutput(id string) {
	for i, out := range c.outputIDs {
		if out == id {
			c.outputIDs = append(c.outputIDs[:i], c.outputIDs[i+1:]...)
			return
		}
	}
}
