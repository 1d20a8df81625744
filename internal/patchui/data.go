package patchui

import (
	"github.com/wesen/patchbay/pkg/patchgraph"
	"github.com/wesen/patchbay/pkg/workspace"
)

// Module geometry: slots start one row below the top border; input
// connectors sit on the left border column, outputs on the right.
const (
	moduleWidth = 22
	slotRowPad  = 1
)

// moduleHeight returns the box height for n slots.
func moduleHeight(n int) int {
	return n + 2*slotRowPad
}

// moduleFor builds a leaf window with the given slots, sized to fit.
func moduleFor(name string, x, y int, slots ...*patchgraph.Container) *workspace.ModuleWindow {
	return workspace.NewModuleWindow(name, x, y, moduleWidth, moduleHeight(len(slots)), slots...)
}

// MakeDemoRack assembles the demo workspace: an oscillator feeding a
// filter, a control LFO, an output sink, and a grouped drum section.
func MakeDemoRack(rules patchgraph.Rules) *workspace.Workspace {
	ws := workspace.New(patchgraph.New())

	slot := func(name, kind string, out, in bool) *patchgraph.Container {
		c := patchgraph.NewContainer(name, kind, out, in)
		c.Rules = rules
		return c
	}

	osc := moduleFor("OSC", 4, 2,
		slot("saw", "audio", true, false),
		slot("pitch", "ctl", false, true),
	)
	lfo := moduleFor("LFO", 4, 10,
		slot("sine", "ctl", true, false),
	)
	filter := moduleFor("FILTER", 34, 2,
		slot("in", "audio", false, true),
		slot("cutoff", "ctl", false, true),
		slot("out", "audio", true, false),
	)
	master := moduleFor("MASTER", 64, 2,
		slot("mix", "audio", false, true),
	)

	kick := moduleFor("KICK", 36, 14, slot("hit", "audio", true, false))
	snare := moduleFor("SNARE", 36, 20, slot("hit", "audio", true, false))
	drums := workspace.NewGroupWindow("DRUMS", 34, 12, 28, 12)

	ws.Add(osc)
	ws.Add(lfo)
	ws.Add(filter)
	ws.Add(master)
	ws.Add(kick)
	ws.Add(snare)
	ws.Add(drums) // group on top so drops inside it hit the group first

	ws.Graph().Connect(osc.Slots[0].ID, filter.Slots[0].ID)
	return ws
}
