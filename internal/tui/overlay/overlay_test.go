package overlay

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/vaultkit/internal/logger"
	"github.com/alexisbeaulieu97/vaultkit/internal/ui/components"
)

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestOverlayPressFocusedButton(t *testing.T) {
	t.Parallel()

	o := New(logger.Nop())
	confirmed := false
	components.ShowDialog(o, "Discard setup?", "Your progress will be lost.",
		components.DialogButton{Label: "Cancel", Role: components.DialogButtonCancel},
		components.DialogButton{Label: "Discard", Role: components.DialogButtonDestructive, OnPress: func() { confirmed = true }},
	)
	require.True(t, o.Active())

	cmd := o.Update(key("enter"))
	require.NotNil(t, cmd)
	assert.True(t, confirmed, "focus starts on the last button")
	assert.False(t, o.Active())

	closed, ok := cmd().(ClosedMsg)
	require.True(t, ok)
	assert.Equal(t, 1, closed.Index)
	assert.Equal(t, "Discard setup?", closed.Dialog.Title)
}

func TestOverlayEscPressesCancel(t *testing.T) {
	t.Parallel()

	o := New(logger.Nop())
	confirmed := false
	o.Present(components.ConfirmDialog("Delete?", "", "Delete", func() { confirmed = true }))

	cmd := o.Update(key("esc"))
	require.NotNil(t, cmd)
	assert.False(t, confirmed)
	assert.Equal(t, 0, cmd().(ClosedMsg).Index)
}

func TestOverlayEscWithoutCancelIsIgnored(t *testing.T) {
	t.Parallel()

	o := New(logger.Nop())
	o.Present(components.NewDialog("Saved", "Vault created."))

	assert.Nil(t, o.Update(key("esc")))
	assert.True(t, o.Active())
}

func TestOverlayFocusMoves(t *testing.T) {
	t.Parallel()

	o := New(logger.Nop())
	var pressed []string
	o.Present(components.NewDialog("Pick", "",
		components.DialogButton{Label: "A", OnPress: func() { pressed = append(pressed, "A") }},
		components.DialogButton{Label: "B", OnPress: func() { pressed = append(pressed, "B") }},
		components.DialogButton{Label: "C", OnPress: func() { pressed = append(pressed, "C") }},
	))

	o.Update(key("left"))
	o.Update(key("left"))
	o.Update(key("enter"))
	assert.Equal(t, []string{"A"}, pressed)
}

func TestOverlayQueuesDialogs(t *testing.T) {
	t.Parallel()

	o := New(logger.Nop())
	o.Present(components.NewDialog("First", ""))
	o.Present(components.NewDialog("Second", ""))
	assert.Equal(t, 1, o.Pending())

	current, ok := o.Current()
	require.True(t, ok)
	assert.Equal(t, "First", current.Title)

	o.Update(key("enter"))
	current, ok = o.Current()
	require.True(t, ok)
	assert.Equal(t, "Second", current.Title)

	o.Update(key("enter"))
	_, ok = o.Current()
	assert.False(t, ok)
}

func TestOverlayIgnoresMessagesWhenIdle(t *testing.T) {
	t.Parallel()

	o := New(logger.Nop())
	assert.Nil(t, o.Update(key("enter")))
	assert.Nil(t, o.Update(tea.WindowSizeMsg{Width: 10}))
	assert.Empty(t, o.View(components.DefaultContext()))
}

func TestOverlayViewCentersDialog(t *testing.T) {
	t.Parallel()

	o := New(logger.Nop())
	o.Present(components.NewDialog("Vault locked", "Unlock to continue."))
	o.SetSize(80, 20)

	view := o.View(components.DefaultContext())
	assert.Contains(t, view, "Vault locked")
	assert.Contains(t, view, "OK")
	assert.Len(t, strings.Split(view, "\n"), 20)
}

func TestOverlayHandlerMayPresentAgain(t *testing.T) {
	t.Parallel()

	o := New(logger.Nop())
	o.Present(components.ConfirmDialog("Reset?", "", "Reset", func() {
		o.Present(components.NewDialog("Reset complete", ""))
	}))

	o.Update(key("enter"))
	current, ok := o.Current()
	require.True(t, ok)
	assert.Equal(t, "Reset complete", current.Title)
}
