package components

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func countryItems() []ComboboxItem {
	return []ComboboxItem{
		{Value: "us", Label: "United States", Search: "USA United States"},
		{Value: "ca", Label: "Canada"},
		{Value: "de", Label: "Germany", Search: "Deutschland Germany"},
	}
}

func TestFilterItems(t *testing.T) {
	t.Parallel()

	items := countryItems()
	tests := []struct {
		query string
		want  []string
	}{
		{query: "usa", want: []string{"us"}},
		{query: "  USA ", want: []string{"us"}},
		{query: "", want: []string{"us", "ca", "de"}},
		{query: "   ", want: []string{"us", "ca", "de"}},
		{query: "deutsch", want: []string{"de"}},
		{query: "zzz", want: []string{}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.query, func(t *testing.T) {
			t.Parallel()

			got := []string{}
			for _, item := range FilterItems(items, tt.query) {
				got = append(got, item.Value)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSelectionToggleKeepsInsertionOrder(t *testing.T) {
	t.Parallel()

	s := NewSelection("a", "a", "b")
	assert.Equal(t, []string{"a", "b"}, s.Values())

	s = s.Toggle("c").Toggle("a")
	assert.Equal(t, []string{"b", "c"}, s.Values())
	assert.False(t, s.Contains("a"))
}

func TestComboboxMachinePhases(t *testing.T) {
	t.Parallel()

	var m ComboboxMachine
	assert.Equal(t, ComboboxClosed, m.Phase())
	assert.False(t, m.SetQuery("x"), "closed machines ignore queries")

	require.True(t, m.Trigger())
	assert.Equal(t, ComboboxOpenUnfiltered, m.Phase())

	m.SetQuery("  ")
	assert.Equal(t, ComboboxOpenUnfiltered, m.Phase(), "whitespace does not filter")

	m.SetQuery("ca")
	assert.Equal(t, ComboboxOpenFiltered, m.Phase())
	assert.Equal(t, "open-filtered", m.Phase().String())

	m.Trigger()
	assert.Equal(t, ComboboxClosed, m.Phase())
	assert.Empty(t, m.Query(), "closing resets the query")
}

func TestComboboxMachineSingleSelect(t *testing.T) {
	t.Parallel()

	var m ComboboxMachine
	m.Trigger()
	m.Select("a")
	m.Trigger()
	m.Select("b")

	assert.Equal(t, []string{"b"}, m.Selection().Values())
	assert.Equal(t, ComboboxClosed, m.Phase())
}

func TestComboboxMachineMultipleSelect(t *testing.T) {
	t.Parallel()

	m := ComboboxMachine{Multiple: true}
	m.Trigger()
	m.Select("a")
	m.Select("b")
	m.Select("a")

	assert.Equal(t, []string{"b"}, m.Selection().Values())
	assert.Equal(t, ComboboxOpenUnfiltered, m.Phase(), "multiple select stays open")
}

func TestComboboxMachineMultipleSelectWhileClosedOpens(t *testing.T) {
	t.Parallel()

	m := ComboboxMachine{Multiple: true}
	require.Equal(t, ComboboxClosed, m.Phase())

	assert.True(t, m.Select("a"))
	assert.Equal(t, []string{"a"}, m.Selection().Values())
	assert.Equal(t, ComboboxOpenUnfiltered, m.Phase())
}

func TestComboboxMachineDisabledIsFrozen(t *testing.T) {
	t.Parallel()

	m := ComboboxMachine{Multiple: true}
	m.SetSelection(NewSelection("a", "b"))
	m.Disabled = true

	assert.False(t, m.Trigger())
	assert.False(t, m.Select("a"), "removal is blocked too")
	assert.Equal(t, ComboboxClosed, m.Phase())
	assert.Equal(t, []string{"a", "b"}, m.Selection().Values())
}

func TestComboboxSetSelectionTrimsSingle(t *testing.T) {
	t.Parallel()

	var m ComboboxMachine
	m.SetSelection(NewSelection("a", "b"))
	assert.Equal(t, []string{"a"}, m.Selection().Values())
}

func TestComboboxSelectNotifies(t *testing.T) {
	t.Parallel()

	var changes [][]string
	box := NewCombobox(countryItems()...).
		WithMultiple(true).
		OnChange(func(v []string) { changes = append(changes, v) })

	box.Trigger()
	box.Select("us")
	box.Select("de")
	box.Select("us")

	assert.Equal(t, []string{"de"}, box.Values())
	assert.Equal(t, [][]string{{"us"}, {"us", "de"}, {"de"}}, changes)
}

func TestComboboxControlledSelection(t *testing.T) {
	t.Parallel()

	external := []string{"ca"}
	box := NewCombobox(countryItems()...).
		WithValues("us").
		WithSource(Controlled(
			func() []string { return external },
			func(v []string) { external = v },
		))

	assert.Equal(t, []string{"ca"}, box.Values())
	box.Trigger()
	assert.True(t, box.Select("de"))
	assert.Equal(t, []string{"de"}, external)
	assert.Equal(t, ComboboxClosed, box.Phase())
}

func TestComboboxEmptyState(t *testing.T) {
	t.Parallel()

	box := NewCombobox(countryItems()...)
	box.Trigger()
	box.SetQuery("zzz")

	assert.Empty(t, box.Visible())
	assert.Contains(t, box.View(), "No results found.")

	box.SetQuery("")
	assert.Len(t, box.Visible(), 3)
	assert.Equal(t, ComboboxOpenUnfiltered, box.Phase())
}

func TestComboboxDisabledKeepsSelectionVisible(t *testing.T) {
	t.Parallel()

	box := NewCombobox(countryItems()...).
		WithMultiple(true).
		WithValues("us", "ca").
		WithDisabled(true)

	assert.Nil(t, box.Trigger())
	assert.False(t, box.Select("us"))
	assert.Equal(t, []string{"us", "ca"}, box.Values())
	assert.Nil(t, box.Update(tea.KeyMsg{Type: tea.KeyEnter}))
	assert.Equal(t, ComboboxClosed, box.Phase())
	assert.Contains(t, box.WithWidth(60).View(), "Canada")
}

func TestComboboxKeyboardFlow(t *testing.T) {
	t.Parallel()

	box := NewCombobox(countryItems()...).WithFocused(true)

	box.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(t, ComboboxOpenUnfiltered, box.Phase())

	box.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("germ")})
	assert.Equal(t, ComboboxOpenFiltered, box.Phase())
	require.Len(t, box.Visible(), 1)

	box.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, []string{"de"}, box.Values())
	assert.Equal(t, ComboboxClosed, box.Phase())
	assert.Contains(t, box.View(), "Germany")
}

func TestComboboxKeyboardNavigation(t *testing.T) {
	t.Parallel()

	box := NewCombobox(countryItems()...)
	box.Trigger()

	box.Update(tea.KeyMsg{Type: tea.KeyDown})
	box.Update(tea.KeyMsg{Type: tea.KeyDown})
	box.Update(tea.KeyMsg{Type: tea.KeyDown})
	box.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, []string{"de"}, box.Values(), "highlight stops at the last row")

	box.Trigger()
	box.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, ComboboxClosed, box.Phase())
	assert.Equal(t, []string{"de"}, box.Values())
}
