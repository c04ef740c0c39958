package components

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vkerrors "github.com/alexisbeaulieu97/vaultkit/pkg/errors"
)

func TestAccordionStateSingle(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		collapsible bool
		presses     []string
		want        []string
	}{
		{name: "open one", collapsible: true, presses: []string{"a"}, want: []string{"a"}},
		{name: "collapsible closes", collapsible: true, presses: []string{"a", "a"}, want: []string{}},
		{name: "opening another replaces", collapsible: true, presses: []string{"a", "b"}, want: []string{"b"}},
		{name: "non collapsible keeps open", presses: []string{"a", "a"}, want: []string{"a"}},
		{name: "non collapsible still switches", presses: []string{"a", "b"}, want: []string{"b"}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			state := NewAccordionState(AccordionSingle, tt.collapsible)
			for _, key := range tt.presses {
				state = state.Toggle(key)
			}
			assert.Equal(t, tt.want, state.OpenKeys())
		})
	}
}

func TestAccordionRepressingOpenItemIsSilent(t *testing.T) {
	t.Parallel()

	changes, sets := 0, 0
	state := NewAccordionState(AccordionSingle, false, "a")
	acc := NewAccordion(AccordionSingle, false).
		WithSource(Controlled(func() AccordionState { return state }, func(s AccordionState) {
			sets++
			state = s
		})).
		OnChange(func([]string) { changes++ })
	item := acc.Item("a", "A", nil)

	assert.True(t, item.Press())
	assert.Equal(t, []string{"a"}, acc.State().OpenKeys())
	assert.Zero(t, changes)
	assert.Zero(t, sets)
}

func TestAccordionStateMultipleIsIndependent(t *testing.T) {
	t.Parallel()

	state := NewAccordionState(AccordionMultiple, false)
	state = state.Toggle("a").Toggle("b").Toggle("c")
	assert.Equal(t, []string{"a", "b", "c"}, state.OpenKeys())

	state = state.Toggle("b")
	assert.Equal(t, []string{"a", "c"}, state.OpenKeys())
	assert.False(t, state.IsOpen("b"))
}

func TestAccordionStateToggleIsPure(t *testing.T) {
	t.Parallel()

	before := NewAccordionState(AccordionMultiple, true, "a")
	after := before.Toggle("b")

	assert.Equal(t, []string{"a"}, before.OpenKeys())
	assert.Equal(t, []string{"a", "b"}, after.OpenKeys())
}

func TestNewAccordionStateSingleKeepsFirstKey(t *testing.T) {
	t.Parallel()

	state := NewAccordionState(AccordionSingle, true, "x", "y")
	assert.Equal(t, []string{"x"}, state.OpenKeys())
}

func TestAccordionItemsShareState(t *testing.T) {
	t.Parallel()

	var changes [][]string
	acc := NewAccordion(AccordionSingle, true).OnChange(func(keys []string) { changes = append(changes, keys) })
	fees := acc.Item("fees", "Network fees", NewText("Paid to validators"))
	backup := acc.Item("backup", "Backups", NewText("Write down your phrase"))

	assert.True(t, fees.Press())
	assert.True(t, fees.Open())
	assert.True(t, backup.Press())
	assert.False(t, fees.Open())
	assert.True(t, backup.Open())
	assert.Equal(t, [][]string{{"fees"}, {"backup"}}, changes)

	view := acc.View()
	assert.Contains(t, view, "Write down your phrase")
	assert.NotContains(t, view, "Paid to validators")
}

func TestAccordionCursor(t *testing.T) {
	t.Parallel()

	acc := NewAccordion(AccordionMultiple, true)
	acc.Item("a", "A", nil)
	acc.Item("b", "B", nil)

	acc.Next()
	assert.True(t, acc.ToggleCursor())
	assert.Equal(t, []string{"b"}, acc.State().OpenKeys())

	acc.Next()
	assert.True(t, acc.ToggleCursor())
	assert.Equal(t, []string{"b", "a"}, acc.State().OpenKeys(), "cursor wraps to the first item")
}

func TestAccordionDisabled(t *testing.T) {
	t.Parallel()

	acc := NewAccordion(AccordionSingle, true).WithOpen("a").WithDisabled(true)
	item := acc.Item("a", "A", nil)

	assert.False(t, item.Press())
	assert.True(t, item.Open())

	other := NewAccordion(AccordionSingle, true)
	locked := other.Item("x", "X", nil).WithDisabled(true)
	assert.False(t, locked.Press())
	assert.Empty(t, other.State().OpenKeys())
}

func TestAccordionControlledState(t *testing.T) {
	t.Parallel()

	external := NewAccordionState(AccordionMultiple, true, "a")
	acc := NewAccordion(AccordionSingle, true).WithSource(Controlled(
		func() AccordionState { return external },
		func(s AccordionState) { external = s },
	))
	item := acc.Item("b", "B", nil)

	assert.True(t, item.Press())
	assert.Equal(t, []string{"a", "b"}, external.OpenKeys(), "the bound state decides the mode")
}

func TestAccordionItemWithoutAccordionPanics(t *testing.T) {
	t.Parallel()

	var recovered any
	func() {
		defer func() { recovered = recover() }()
		NewAccordionItem(nil, "a", "A", nil)
	}()

	require.NotNil(t, recovered)
	err, ok := recovered.(error)
	require.True(t, ok, "panic value should be an error")

	var misuse *vkerrors.MisuseError
	require.True(t, errors.As(err, &misuse))
	assert.Equal(t, "AccordionItem", misuse.Component)
	assert.Equal(t, "Accordion", misuse.Requires)
}
