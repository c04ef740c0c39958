package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/vaultkit/internal/logger"
	"github.com/alexisbeaulieu97/vaultkit/internal/tui/gallery"
	"github.com/alexisbeaulieu97/vaultkit/internal/tui/onboarding"
	"github.com/alexisbeaulieu97/vaultkit/internal/tui/wallet"
	"github.com/alexisbeaulieu97/vaultkit/internal/ui/chart"
	uitheme "github.com/alexisbeaulieu97/vaultkit/internal/ui/theme"
)

func newTestModel(t *testing.T, start string) Model {
	t.Helper()
	charts := chart.DefaultOptions()
	charts.Duration = 0
	m := NewModel(Options{
		Start:      start,
		Mode:       uitheme.NewModeController(uitheme.NewStaticAppearance(uitheme.SchemeLight), uitheme.ModeLight, logger.Nop()),
		Onboarding: onboarding.DefaultOptions(),
		Charts:     charts,
		Log:        logger.Nop(),
	})
	m.Init()
	t.Cleanup(m.Close)
	return m
}

func TestNewModelDefaults(t *testing.T) {
	t.Parallel()

	m := NewModel(Options{Log: logger.Nop()})
	m.Init()
	defer m.Close()

	assert.Equal(t, onboarding.Name, m.Current())
	assert.Equal(t, uitheme.ModeSystem, m.mode.Mode())
	assert.False(t, m.Quitting())
}

func TestInitFallsBackForUnknownStart(t *testing.T) {
	t.Parallel()

	m := newTestModel(t, "settings")
	assert.Equal(t, onboarding.Name, m.Current())
}

func TestInitMountsEachScreen(t *testing.T) {
	t.Parallel()

	for _, name := range []string{onboarding.Name, wallet.Name, gallery.Name} {
		name := name
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			m := newTestModel(t, name)
			assert.Equal(t, name, m.Current())
		})
	}
}

func TestThemeFollowsMode(t *testing.T) {
	t.Parallel()

	m := newTestModel(t, gallery.Name)
	require.Equal(t, uitheme.SchemeLight, m.Theme().Scheme)

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("t")})
	m = updated.(Model)
	require.Equal(t, uitheme.ModeDark, m.mode.Mode())

	assert.Equal(t, uitheme.SchemeDark, m.Theme().Scheme)
}
