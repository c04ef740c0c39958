package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/vaultkit/internal/tui/onboarding"
	"github.com/alexisbeaulieu97/vaultkit/internal/tui/overlay"
	"github.com/alexisbeaulieu97/vaultkit/internal/tui/wallet"
)

// run feeds msg to m and then every message its command chain produces,
// skipping batches and quits.
func run(m Model, msg tea.Msg) (Model, tea.Msg) {
	var last tea.Msg
	for msg != nil {
		updated, cmd := m.Update(msg)
		m = updated.(Model)
		msg = nil
		if cmd == nil {
			break
		}
		next := cmd()
		switch next.(type) {
		case tea.BatchMsg, tea.QuitMsg:
			last = next
		default:
			msg = next
			last = next
		}
	}
	return m, last
}

func TestCtrlCQuits(t *testing.T) {
	t.Parallel()

	m := newTestModel(t, wallet.Name)
	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	m = updated.(Model)

	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.True(t, m.Quitting())
	assert.Empty(t, m.View())
}

func TestSkipOnboardingReplacesWithWallet(t *testing.T) {
	t.Parallel()

	m := newTestModel(t, onboarding.Name)
	m, _ = run(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("s")})

	assert.Equal(t, wallet.Name, m.Current())
	assert.Equal(t, 1, m.stack.Depth(), "onboarding is replaced, not stacked")
}

func TestDialogCapturesKeys(t *testing.T) {
	t.Parallel()

	m := newTestModel(t, wallet.Name)
	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = updated.(Model)
	require.True(t, m.Overlay().Active())

	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m = updated.(Model)
	assert.True(t, m.Overlay().Active(), "keys go to the dialog, not the screen")

	// Focus starts on Discard.
	m, last := run(m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.False(t, m.Overlay().Active())
	assert.IsType(t, tea.QuitMsg{}, last, "discarding at the root leaves the program")
}

func TestDialogCancelKeepsScreen(t *testing.T) {
	t.Parallel()

	m := newTestModel(t, wallet.Name)
	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = updated.(Model)

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = updated.(Model)
	require.NotNil(t, cmd)
	closed, ok := cmd().(overlay.ClosedMsg)
	require.True(t, ok)
	assert.Equal(t, 0, closed.Index)

	m, last := run(m, closed)
	assert.Nil(t, last)
	assert.Equal(t, wallet.Name, m.Current())
}

func TestWindowSizeReachesOverlay(t *testing.T) {
	t.Parallel()

	m := newTestModel(t, wallet.Name)
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 90, Height: 30})
	m = updated.(Model)
	assert.Equal(t, 90, m.width)
	assert.Equal(t, 30, m.height)

	m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.Contains(t, m.View(), "Discard setup?")
}
