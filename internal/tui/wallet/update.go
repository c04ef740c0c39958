package wallet

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/vaultkit/internal/tui/overlay"
	"github.com/alexisbeaulieu97/vaultkit/internal/tui/router"
	"github.com/alexisbeaulieu97/vaultkit/internal/ui/lifecycle"
)

// Update handles Bubbletea messages and updates model state.
func (m *Model) Update(msg tea.Msg) (router.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case overlay.ClosedMsg:
		if m.discard {
			m.discard = false
			return m, m.leave()
		}
		return m, nil
	case tea.WindowSizeMsg:
		m.size = lifecycle.Size{Width: msg.Width, Height: msg.Height}
		return m, nil
	case tea.KeyMsg:
		return m, m.handleKeyPress(msg)
	}

	if m.step == StepCreate || m.step == StepImport {
		return m, m.updateFocusedInput(msg)
	}
	return m, nil
}

func (m *Model) handleKeyPress(msg tea.KeyMsg) tea.Cmd {
	switch m.step {
	case StepChoose:
		return m.handleChooseKey(msg)
	case StepCreate, StepImport:
		return m.handleFormKey(msg)
	case StepReview:
		switch msg.String() {
		case "enter":
			m.step = StepDone
			m.env.Log.WithFields(map[string]any{"vault": m.vault.ID, "imported": m.vault.Imported}).Info("vault set up")
		case "esc":
			if m.vault.Imported {
				m.step = StepImport
			} else {
				m.step = StepCreate
			}
			return m.setFocus(0)
		}
	case StepDone:
		switch msg.String() {
		case "enter", "q":
			return tea.Quit
		}
	}
	return nil
}

func (m *Model) handleChooseKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "up", "k":
		m.kind.Prev()
	case "down", "j":
		m.kind.Next()
	case " ":
		m.kind.SelectCursor()
	case "enter":
		m.kind.SelectCursor()
		if m.kind.Value() == kindImport {
			return m.startForm(StepImport)
		}
		return m.startForm(StepCreate)
	case "esc":
		return m.confirmDiscard()
	}
	return nil
}

func (m *Model) handleFormKey(msg tea.KeyMsg) tea.Cmd {
	onAck := m.ack != nil && m.focus == len(m.inputs)

	switch msg.String() {
	case "esc":
		m.step = StepChoose
		m.issues = map[string]string{}
		return nil
	case "tab", "down":
		return m.setFocus(m.focus + 1)
	case "shift+tab", "up":
		return m.setFocus(m.focus - 1)
	case "enter":
		if m.focus < m.focusCount()-1 {
			return m.setFocus(m.focus + 1)
		}
		m.submit()
		return nil
	case " ":
		if onAck {
			m.ack.Toggle()
			return nil
		}
	}

	if onAck {
		return nil
	}
	return m.updateFocusedInput(msg)
}

func (m *Model) updateFocusedInput(msg tea.Msg) tea.Cmd {
	if m.focus >= len(m.inputs) {
		return nil
	}
	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return cmd
}
