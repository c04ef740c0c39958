package onboarding

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/vaultkit/internal/tui/router"
	"github.com/alexisbeaulieu97/vaultkit/internal/ui/animation"
	"github.com/alexisbeaulieu97/vaultkit/internal/ui/lifecycle"
)

// Update handles Bubbletea messages and updates model state.
func (m *Model) Update(msg tea.Msg) (router.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case animation.FrameMsg:
		return m, m.handleFrame(msg)
	case tea.WindowSizeMsg:
		m.size = lifecycle.Size{Width: msg.Width, Height: msg.Height}
		return m, nil
	case tea.KeyMsg:
		return m, m.handleKeyPress(msg)
	}
	return m, nil
}

func (m *Model) handleFrame(msg animation.FrameMsg) tea.Cmd {
	cmds := []tea.Cmd{m.autoplay.Update(msg), m.transition.Update(msg)}
	if m.observeAutoplay() {
		cmds = append(cmds, m.goTo(m.index+1, false))
	}
	return tea.Batch(cmds...)
}

func (m *Model) handleKeyPress(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "right", "l", "n", "tab":
		if m.Last() {
			return nil
		}
		return m.goTo(m.index+1, true)
	case "left", "h", "p", "shift+tab":
		if m.index == 0 {
			return nil
		}
		return m.goTo(m.index-1, true)
	case "enter", " ":
		if m.Last() {
			return m.getStarted()
		}
		return m.goTo(m.index+1, true)
	case "s", "esc":
		return m.getStarted()
	}
	return nil
}
