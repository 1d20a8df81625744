package patchui

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/bubbles/v2/textinput"
	"charm.land/lipgloss/v2"

	"github.com/wesen/patchbay/pkg/workspace"
)

// openRenameModal opens the rename modal for the selected window.
func (m Model) openRenameModal() (tea.Model, tea.Cmd) {
	if m.SelectedID == "" {
		return m, nil
	}
	w := m.Workspace.Window(m.SelectedID)
	if w == nil {
		return m, nil
	}

	m.RenameOpen = true
	m.RenameID = m.SelectedID

	m.RenameInput = textinput.New()
	m.RenameInput.Prompt = ""
	m.RenameInput.CharLimit = 24
	m.RenameInput.SetValue(w.Title())

	cmd := m.RenameInput.Focus()
	return m, cmd
}

// handleRenameKeys processes keys while the rename modal is open.
func (m Model) handleRenameKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "escape":
		m.RenameOpen = false
		return m, nil

	case "enter":
		name := strings.ToUpper(strings.TrimSpace(m.RenameInput.Value()))
		if name != "" {
			switch w := m.Workspace.Window(m.RenameID).(type) {
			case *workspace.ModuleWindow:
				w.Name = name
			case *workspace.GroupWindow:
				w.Name = name
			}
		}
		m.RenameOpen = false
		return m, nil

	default:
		var cmd tea.Cmd
		m.RenameInput, cmd = m.RenameInput.Update(msg)
		return m, cmd
	}
}

// buildRenameModal renders the rename modal layer.
func (m Model) buildRenameModal() *lipgloss.Layer {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(selBorder).
		Background(colorBG).
		Padding(0, 1)

	label := lipgloss.NewStyle().
		Foreground(moduleTitle).
		Background(colorBG).
		Bold(true).
		Render("RENAME WINDOW")

	content := label + "\n" + m.RenameInput.View() + "\n" +
		ftStyle.Render("enter save · esc cancel")
	return modalLayer(content, m.Width, m.Height, boxStyle)
}
