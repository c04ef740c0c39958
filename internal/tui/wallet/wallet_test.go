package wallet

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/vaultkit/internal/logger"
	"github.com/alexisbeaulieu97/vaultkit/internal/tui/overlay"
	"github.com/alexisbeaulieu97/vaultkit/internal/tui/router"
	"github.com/alexisbeaulieu97/vaultkit/internal/ui/components"
	"github.com/alexisbeaulieu97/vaultkit/internal/ui/lifecycle"
)

type fakeRouter struct {
	depth int
	backs int
}

func (r *fakeRouter) Navigate(string) tea.Cmd { return nil }
func (r *fakeRouter) Replace(string) tea.Cmd  { return nil }
func (r *fakeRouter) CanGoBack() bool         { return r.depth > 1 }

func (r *fakeRouter) Back() tea.Cmd {
	r.backs++
	return func() tea.Msg { return router.BackMsg{} }
}

func newTestModel(t *testing.T, depth int) (*Model, *fakeRouter, *[]components.Dialog) {
	t.Helper()
	r := &fakeRouter{depth: depth}
	var shown []components.Dialog
	env := router.Env{
		Router:  r,
		Scope:   lifecycle.NewScope(),
		Sizes:   lifecycle.NewEmitter[lifecycle.Size](),
		Dialogs: components.DialogPresenterFunc(func(d components.Dialog) { shown = append(shown, d) }),
		Log:     logger.Nop(),
	}
	m := NewModel(env)
	m.newID = func() string { return "vault-1" }
	return m, r, &shown
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune(" ")}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func send(m *Model, keys ...string) tea.Cmd {
	var cmd tea.Cmd
	for _, k := range keys {
		_, cmd = m.Update(keyMsg(k))
	}
	return cmd
}

func typeText(m *Model, text string) {
	for _, r := range text {
		if r == ' ' {
			send(m, " ")
			continue
		}
		send(m, string(r))
	}
}

func TestCreateFlow(t *testing.T) {
	t.Parallel()

	m, _, _ := newTestModel(t, 1)
	assert.Equal(t, StepChoose, m.Step())
	assert.Equal(t, 1, m.StepNumber())

	send(m, "enter")
	require.Equal(t, StepCreate, m.Step())
	assert.Equal(t, 2, m.StepNumber())

	typeText(m, "Savings")
	send(m, "tab")
	typeText(m, "hunter22")
	send(m, "tab")
	typeText(m, "hunter22")
	send(m, "tab", " ")
	require.True(t, m.ack.Checked())

	send(m, "enter")
	require.Equal(t, StepReview, m.Step(), "issues: %v", m.Issues())
	assert.Equal(t, Vault{ID: "vault-1", Name: "Savings", Words: 24}, m.Vault())
	assert.Contains(t, m.View(), "Review your vault")
	assert.Contains(t, m.View(), "vault-1")

	send(m, "enter")
	assert.Equal(t, StepDone, m.Step())
	assert.Equal(t, 4, m.StepNumber())
	assert.Contains(t, m.View(), "All set")

	cmd := send(m, "enter")
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestCreateFlowRejectsInvalidForm(t *testing.T) {
	t.Parallel()

	m, _, _ := newTestModel(t, 1)
	send(m, "enter")
	typeText(m, "ab")
	send(m, "tab")
	typeText(m, "short")
	send(m, "tab")
	typeText(m, "other")
	send(m, "tab", "enter")

	assert.Equal(t, StepCreate, m.Step())
	assert.Equal(t, "Passwords do not match", m.Issues()["Confirm"])
	assert.Contains(t, m.Issues(), "Acknowledged")
	assert.Contains(t, m.View(), "Vault name must be at least 3 characters")
}

func TestImportFlow(t *testing.T) {
	t.Parallel()

	m, _, _ := newTestModel(t, 1)
	send(m, "down", "enter")
	require.Equal(t, StepImport, m.Step())

	typeText(m, "Cold")
	send(m, "tab")
	typeText(m, "legal winner thank year wave sausage worth useful legal winner thank yellow")
	send(m, "enter")

	require.Equal(t, StepReview, m.Step(), "issues: %v", m.Issues())
	assert.True(t, m.Vault().Imported)
	assert.Equal(t, 12, m.Vault().Words)
	assert.Contains(t, m.View(), "Imported phrase")

	send(m, "esc")
	assert.Equal(t, StepImport, m.Step(), "esc on review returns to the form")
	assert.Equal(t, "Cold", m.value("Name"), "form values survive going back")
}

func TestImportFlowRejectsShortPhrase(t *testing.T) {
	t.Parallel()

	m, _, _ := newTestModel(t, 1)
	send(m, "down", "enter")
	typeText(m, "Cold")
	send(m, "tab")
	typeText(m, "legal winner thank")
	send(m, "enter")

	assert.Equal(t, StepImport, m.Step())
	assert.Equal(t, "Recovery phrase must be 12 or 24 lowercase words", m.Issues()["Phrase"])
}

func TestFormFocusWraps(t *testing.T) {
	t.Parallel()

	m, _, _ := newTestModel(t, 1)
	send(m, "enter")
	assert.Equal(t, 0, m.focus)

	send(m, "up")
	assert.Equal(t, 3, m.focus, "focus wraps to the acknowledgement")
	send(m, "down")
	assert.Equal(t, 0, m.focus)
}

func TestEscOnFormReturnsToChoose(t *testing.T) {
	t.Parallel()

	m, _, shown := newTestModel(t, 1)
	send(m, "enter", "esc")
	assert.Equal(t, StepChoose, m.Step())
	assert.Empty(t, *shown)
}

func TestDiscardDialog(t *testing.T) {
	t.Parallel()

	t.Run("confirm at root quits", func(t *testing.T) {
		t.Parallel()
		m, r, shown := newTestModel(t, 1)
		send(m, "esc")
		require.Len(t, *shown, 1)
		d := (*shown)[0]
		assert.Equal(t, "Discard setup?", d.Title)
		assert.Equal(t, 0, d.CancelIndex())

		d.Press(1)
		_, cmd := m.Update(overlay.ClosedMsg{Dialog: d, Index: 1})
		require.NotNil(t, cmd)
		assert.IsType(t, tea.QuitMsg{}, cmd())
		assert.Zero(t, r.backs)
	})

	t.Run("confirm with history goes back", func(t *testing.T) {
		t.Parallel()
		m, r, shown := newTestModel(t, 2)
		send(m, "esc")
		d := (*shown)[0]
		d.Press(1)
		_, cmd := m.Update(overlay.ClosedMsg{Dialog: d, Index: 1})
		require.NotNil(t, cmd)
		assert.Equal(t, router.BackMsg{}, cmd())
		assert.Equal(t, 1, r.backs)
	})

	t.Run("cancel stays", func(t *testing.T) {
		t.Parallel()
		m, r, shown := newTestModel(t, 2)
		send(m, "esc")
		d := (*shown)[0]
		d.Press(0)
		_, cmd := m.Update(overlay.ClosedMsg{Dialog: d, Index: 0})
		assert.Nil(t, cmd)
		assert.Zero(t, r.backs)
		assert.Equal(t, StepChoose, m.Step())
	})
}

func TestViewShowsProgress(t *testing.T) {
	t.Parallel()

	m, _, _ := newTestModel(t, 1)
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	view := m.View()
	assert.Contains(t, view, "Set up your vault")
	assert.Contains(t, view, "Step 1 of 4")
	assert.Contains(t, view, "Create a new vault")
	assert.Contains(t, view, "Import a recovery phrase")
}
