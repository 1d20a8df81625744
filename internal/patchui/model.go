// Package patchui is the Bubbletea frontend of the patchbay: it
// renders the workspace as stacked lipgloss layers, drives cable
// drags with the mouse, and commits staged connections one event
// cycle after the drop that produced them.
package patchui

import (
	"image"

	tea "charm.land/bubbletea/v2"
	"charm.land/bubbles/v2/textinput"

	"github.com/wesen/patchbay/pkg/patchgraph"
	"github.com/wesen/patchbay/pkg/workspace"
)

// consoleSink receives graph events and keeps the console backlog.
// It is shared by pointer so Model copies see the same log.
type consoleSink struct {
	lines []string
	flash string // footer acknowledgment, cleared on next press
}

func (s *consoleSink) ConnectionCreated(out, in string) {
	s.lines = append(s.lines, "＋ "+out+" → "+in)
}

func (s *consoleSink) ConnectionDeleted(out, in string) {
	s.lines = append(s.lines, "－ "+out+" → "+in)
}

// Model is the main application state.
type Model struct {
	Width, Height  int
	MouseX, MouseY int
	CamX, CamY     int

	Workspace *workspace.Workspace
	Sink      *consoleSink

	SelectedID string // selected window, "" for none

	// Window-body drag
	MovingID         string
	MoveOffX, MoveOffY int

	// Cable drag preview (world coords of the grabbed socket)
	CableFrom image.Point

	// Connector hover bookkeeping (to emit exit notifications)
	HoverID   string
	HoverRole patchgraph.Role

	// Rename modal
	RenameOpen  bool
	RenameID    string
	RenameInput textinput.Model
}

// commitMsg carries a staged connection into the next Update cycle,
// the deferred-apply boundary of the drop pipeline.
type commitMsg struct {
	pending *patchgraph.Pending
}

// commitCmd schedules a Pending for the next cycle.
func commitCmd(p *patchgraph.Pending) tea.Cmd {
	if p == nil {
		return nil
	}
	return func() tea.Msg { return commitMsg{pending: p} }
}

// NewModel creates the initial model over the given workspace.
func NewModel(ws *workspace.Workspace) Model {
	sink := &consoleSink{}
	g := ws.Graph()
	g.Notify = sink
	g.Ack = func() { sink.flash = "♪ patched" }
	return Model{Workspace: ws, Sink: sink}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}
