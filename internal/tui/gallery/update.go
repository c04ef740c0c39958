package gallery

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/vaultkit/internal/tui/router"
	"github.com/alexisbeaulieu97/vaultkit/internal/ui/animation"
	"github.com/alexisbeaulieu97/vaultkit/internal/ui/components"
	"github.com/alexisbeaulieu97/vaultkit/internal/ui/lifecycle"
)

// Update handles Bubbletea messages and updates model state.
func (m *Model) Update(msg tea.Msg) (router.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case animation.FrameMsg:
		cmds := make([]tea.Cmd, 0, len(m.charts))
		for _, c := range m.charts {
			cmds = append(cmds, c.chart.Update(msg))
		}
		return m, tea.Batch(cmds...)
	case tea.WindowSizeMsg:
		m.size = lifecycle.Size{Width: msg.Width, Height: msg.Height}
		return m, m.resizeCharts()
	case tea.KeyMsg:
		return m, m.handleKeyPress(msg)
	}
	return m, nil
}

func (m *Model) handleKeyPress(msg tea.KeyMsg) tea.Cmd {
	// An open combobox owns the keyboard until it closes.
	if m.section == SectionControls && m.control == ControlCombobox && m.combobox.Phase() != components.ComboboxClosed {
		return m.combobox.Update(msg)
	}

	switch msg.String() {
	case "t":
		m.toggleMode()
		return nil
	case "tab":
		return m.showSection(m.section + 1)
	case "shift+tab":
		return m.showSection(m.section - 1)
	case "q", "esc":
		if m.env.Router != nil && m.env.Router.CanGoBack() {
			return m.env.Router.Back()
		}
		return tea.Quit
	}

	switch m.section {
	case SectionControls:
		return m.handleControlsKey(msg)
	case SectionCharts:
		return m.handleChartsKey(msg)
	default:
		return m.handleComponentsKey(msg)
	}
}

func (m *Model) handleComponentsKey(msg tea.KeyMsg) tea.Cmd {
	if !m.layoutCatalogue() {
		return nil
	}
	return m.scroll.Update(msg)
}

func (m *Model) toggleMode() {
	if m.env.Mode == nil {
		return
	}
	mode := m.env.Mode.Toggle()
	m.env.Log.WithFields(map[string]any{"mode": mode.String()}).Debug("gallery toggled appearance")
}

func (m *Model) showSection(s Section) tea.Cmd {
	m.section = (s%sectionCount + sectionCount) % sectionCount
	if m.section == SectionCharts {
		return m.charts[m.current].chart.Animate()
	}
	return nil
}

func (m *Model) focusControl(c Control) {
	m.control = (c%controlCount + controlCount) % controlCount
	m.combobox.WithFocused(m.control == ControlCombobox)
}

func (m *Model) handleControlsKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "right", "l":
		m.focusControl(m.control + 1)
		return nil
	case "left", "h":
		m.focusControl(m.control - 1)
		return nil
	}

	switch m.control {
	case ControlCombobox:
		return m.combobox.Update(msg)
	case ControlAccordion:
		switch msg.String() {
		case "up", "k":
			m.accordion.Prev()
		case "down", "j":
			m.accordion.Next()
		case "enter", " ":
			m.accordion.ToggleCursor()
		}
	case ControlSwitch:
		switch msg.String() {
		case "enter", " ":
			m.toggle.Toggle()
		}
	}
	return nil
}

func (m *Model) handleChartsKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "right", "l":
		m.current = (m.current + 1) % len(m.charts)
		return m.charts[m.current].chart.Animate()
	case "left", "h":
		m.current = (m.current - 1 + len(m.charts)) % len(m.charts)
		return m.charts[m.current].chart.Animate()
	case "r":
		return m.charts[m.current].chart.Animate()
	}
	return nil
}
