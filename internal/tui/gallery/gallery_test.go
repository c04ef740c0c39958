package gallery

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/vaultkit/internal/logger"
	"github.com/alexisbeaulieu97/vaultkit/internal/tui/router"
	"github.com/alexisbeaulieu97/vaultkit/internal/ui/chart"
	"github.com/alexisbeaulieu97/vaultkit/internal/ui/components"
	"github.com/alexisbeaulieu97/vaultkit/internal/ui/lifecycle"
	uitheme "github.com/alexisbeaulieu97/vaultkit/internal/ui/theme"
)

func newTestModel(t *testing.T) (*Model, router.Env) {
	t.Helper()
	opts := chart.DefaultOptions()
	opts.Duration = 0
	return newTestModelWith(t, opts)
}

func newTestModelWith(t *testing.T, opts chart.Options) (*Model, router.Env) {
	t.Helper()
	mode := uitheme.NewModeController(uitheme.NewStaticAppearance(uitheme.SchemeLight), uitheme.ModeLight, logger.Nop())
	resolver := uitheme.NewResolver(uitheme.DefaultPalettes(), mode)

	env := router.Env{
		Scope: lifecycle.NewScope(),
		Sizes: lifecycle.NewEmitter[lifecycle.Size](),
		Mode:  mode,
		Theme: func() components.Theme { return components.ThemeFromResolver(resolver) },
		Log:   logger.Nop(),
	}
	return NewModel(env, Options{Charts: opts}), env
}

func key(s string) tea.KeyMsg {
	switch s {
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		return tea.KeyMsg{Type: tea.KeyShiftTab}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "pgdown":
		return tea.KeyMsg{Type: tea.KeyPgDown}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func send(m *Model, keys ...string) tea.Cmd {
	var cmd tea.Cmd
	for _, k := range keys {
		_, cmd = m.Update(key(k))
	}
	return cmd
}

func TestToggleCyclesAppearanceMode(t *testing.T) {
	t.Parallel()

	m, env := newTestModel(t)
	require.Equal(t, uitheme.SchemeLight, m.Scheme())

	send(m, "t")
	assert.Equal(t, uitheme.ModeDark, env.Mode.Mode())
	assert.Equal(t, uitheme.SchemeDark, m.Scheme(), "the subscription reports the new scheme")

	send(m, "t")
	assert.Equal(t, uitheme.ModeSystem, env.Mode.Mode())
	assert.Equal(t, uitheme.SchemeLight, m.Scheme())
}

func TestSchemeSubscriptionReleasedOnUnmount(t *testing.T) {
	t.Parallel()

	m, env := newTestModel(t)
	env.Scope.Close()
	env.Mode.SetMode(uitheme.ModeDark)
	assert.Equal(t, uitheme.SchemeLight, m.Scheme())
}

func TestSectionsWrap(t *testing.T) {
	t.Parallel()

	m, _ := newTestModel(t)
	send(m, "tab")
	assert.Equal(t, SectionControls, m.Section())
	send(m, "tab", "tab")
	assert.Equal(t, SectionComponents, m.Section())
	send(m, "shift+tab")
	assert.Equal(t, SectionCharts, m.Section())
}

func TestComboboxOwnsKeysWhileOpen(t *testing.T) {
	t.Parallel()

	m, env := newTestModel(t)
	send(m, "tab")
	require.Equal(t, ControlCombobox, m.Control())

	send(m, "enter")
	require.NotEqual(t, components.ComboboxClosed, m.combobox.Phase())

	send(m, "t")
	assert.Equal(t, uitheme.ModeLight, env.Mode.Mode(), "t is typed into the query while open")
	assert.Equal(t, components.ComboboxOpenFiltered, m.combobox.Phase())

	send(m, "esc")
	assert.Equal(t, components.ComboboxClosed, m.combobox.Phase())
	assert.Equal(t, SectionControls, m.Section(), "esc closes the list without leaving")
}

func TestComboboxSelection(t *testing.T) {
	t.Parallel()

	m, _ := newTestModel(t)
	send(m, "tab", "enter")
	for _, r := range "ether" {
		send(m, string(r))
	}
	send(m, "enter")
	assert.Equal(t, []string{"eth"}, m.combobox.Values())
	assert.NotEqual(t, components.ComboboxClosed, m.combobox.Phase(), "multiple select stays open")
	send(m, "esc")
	assert.Contains(t, m.View(), "Selected: eth")
}

func TestAccordionAndSwitchControls(t *testing.T) {
	t.Parallel()

	m, _ := newTestModel(t)
	send(m, "tab", "right")
	require.Equal(t, ControlAccordion, m.Control())
	assert.True(t, m.accordion.IsOpen("backup"))

	send(m, "down", "enter")
	assert.True(t, m.accordion.IsOpen("lost"))
	assert.False(t, m.accordion.IsOpen("backup"), "single accordions keep one item open")

	send(m, "right", " ")
	assert.Equal(t, ControlSwitch, m.Control())
	assert.True(t, m.toggle.On())

	send(m, "right")
	assert.Equal(t, ControlCombobox, m.Control(), "focus wraps")
}

func TestChartsRespondToSize(t *testing.T) {
	t.Parallel()

	m, _ := newTestModel(t)
	send(m, "shift+tab")
	require.Equal(t, SectionCharts, m.Section())
	assert.NotContains(t, m.View(), "Monthly balance", "charts render nothing before measurement")

	m.Update(tea.WindowSizeMsg{Width: 70, Height: 30})
	assert.Contains(t, m.View(), "Monthly balance")
	assert.Contains(t, m.View(), "1/10 bar")

	send(m, "right")
	assert.Equal(t, "line", m.ChartName())
	send(m, "left", "left")
	assert.Equal(t, "bubble", m.ChartName())
}

func TestUnmountStopsChartEntrances(t *testing.T) {
	t.Parallel()

	m, env := newTestModelWith(t, chart.DefaultOptions())
	m.Update(tea.WindowSizeMsg{Width: 70, Height: 30})
	bar, ok := m.charts[0].chart.(*chart.BarChart)
	require.True(t, ok)
	require.True(t, bar.Timeline().Running())

	env.Scope.Close()
	assert.False(t, bar.Timeline().Running())
}

func TestQuitAtRoot(t *testing.T) {
	t.Parallel()

	m, _ := newTestModel(t)
	cmd := send(m, "q")
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestCatalogueView(t *testing.T) {
	t.Parallel()

	m, _ := newTestModel(t)
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 90})
	view := m.View()
	for _, want := range []string{"Components", "Send", "Synced", "Savings", "Emphasis", "Heads up", "light"} {
		assert.Contains(t, view, want)
	}
	assert.NotContains(t, view, "scroll", "everything fits")
}

func TestCatalogueScrolls(t *testing.T) {
	t.Parallel()

	m, _ := newTestModel(t)
	send(m, "down")
	assert.Zero(t, m.ScrollOffset(), "nothing scrolls before measurement")

	m.Update(tea.WindowSizeMsg{Width: 100, Height: 18})
	view := m.View()
	assert.Contains(t, view, "Buttons")
	assert.NotContains(t, view, "Heads up")
	assert.Contains(t, view, "↑/↓ scroll")

	send(m, "down")
	assert.Equal(t, 1, m.ScrollOffset())

	for i := 0; i < 20; i++ {
		send(m, "pgdown")
	}
	assert.Contains(t, m.View(), "Heads up")
	assert.NotContains(t, m.View(), "Buttons")
}
