package patchui

import (
	tea "charm.land/bubbletea/v2"
)

const panStep = 3

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height

	case commitMsg:
		// Deferred-apply boundary: the staged connection re-validates
		// itself here, one cycle after the drop that produced it.
		msg.pending.Commit()

	case tea.KeyMsg:
		if m.RenameOpen {
			return m.handleRenameKeys(msg)
		}
		return m.handleKeys(msg)

	case tea.MouseMsg:
		return handleMouse(m, msg, m.canvasRect())
	}

	return m, nil
}

// handleKeys processes keyboard input.
func (m Model) handleKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	m.Sink.flash = ""

	switch key {
	case "q", "ctrl+c":
		return m, tea.Quit

	// Camera panning
	case "up":
		m.CamY -= panStep
	case "down":
		m.CamY += panStep
	case "left":
		m.CamX -= panStep
	case "right":
		m.CamX += panStep

	// Rename selected window
	case "r":
		return m.openRenameModal()

	// Delete selected window (retracts its cables)
	case "d", "delete", "backspace":
		if m.SelectedID != "" {
			m.Workspace.Remove(m.SelectedID)
			m.SelectedID = ""
		}

	// Escape — cancel current operation
	case "esc", "escape":
		m.Workspace.CancelDrag()
		m.SelectedID = ""
	}

	return m, nil
}
