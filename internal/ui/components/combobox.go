package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"

	uitheme "github.com/alexisbeaulieu97/vaultkit/internal/ui/theme"
)

// ComboboxItem is one selectable entry. Search, when set, replaces the
// label for filtering.
type ComboboxItem struct {
	Value  string
	Label  string
	Search string
}

func (i ComboboxItem) haystack() string {
	if i.Search != "" {
		return normalizeQuery(i.Search)
	}
	return normalizeQuery(i.Label)
}

func normalizeQuery(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// FilterItems returns the items whose search text contains query. Matching
// is case-insensitive and ignores surrounding whitespace; an empty query
// matches everything. Order is preserved.
func FilterItems(items []ComboboxItem, query string) []ComboboxItem {
	q := normalizeQuery(query)
	out := make([]ComboboxItem, 0, len(items))
	for _, item := range items {
		if q == "" || strings.Contains(item.haystack(), q) {
			out = append(out, item)
		}
	}
	return out
}

// Selection is an insertion-ordered set of values.
type Selection struct {
	values []string
}

// NewSelection builds a selection, dropping duplicates.
func NewSelection(values ...string) Selection {
	var s Selection
	for _, v := range values {
		if !s.Contains(v) {
			s.values = append(s.values, v)
		}
	}
	return s
}

// Contains reports membership.
func (s Selection) Contains(value string) bool {
	for _, v := range s.values {
		if v == value {
			return true
		}
	}
	return false
}

// Toggle adds value at the end when absent and removes it when present.
func (s Selection) Toggle(value string) Selection {
	if !s.Contains(value) {
		next := make([]string, len(s.values), len(s.values)+1)
		copy(next, s.values)
		return Selection{values: append(next, value)}
	}
	next := make([]string, 0, len(s.values))
	for _, v := range s.values {
		if v != value {
			next = append(next, v)
		}
	}
	return Selection{values: next}
}

// Values returns the selected values in insertion order.
func (s Selection) Values() []string {
	out := make([]string, len(s.values))
	copy(out, s.values)
	return out
}

// Len returns the number of selected values.
func (s Selection) Len() int {
	return len(s.values)
}

// ComboboxPhase is the visible state of a combobox.
type ComboboxPhase int

const (
	ComboboxClosed ComboboxPhase = iota
	ComboboxOpenUnfiltered
	ComboboxOpenFiltered
)

func (p ComboboxPhase) String() string {
	switch p {
	case ComboboxOpenUnfiltered:
		return "open-unfiltered"
	case ComboboxOpenFiltered:
		return "open-filtered"
	default:
		return "closed"
	}
}

// ComboboxMachine holds query, open flag and selection. A disabled machine
// ignores every transition, including removal of existing selections.
type ComboboxMachine struct {
	Multiple  bool
	Disabled  bool
	open      bool
	query     string
	selection Selection
}

// Phase derives the visible phase.
func (m *ComboboxMachine) Phase() ComboboxPhase {
	switch {
	case !m.open:
		return ComboboxClosed
	case normalizeQuery(m.query) == "":
		return ComboboxOpenUnfiltered
	default:
		return ComboboxOpenFiltered
	}
}

// Trigger opens a closed combobox and closes an open one.
func (m *ComboboxMachine) Trigger() bool {
	if m.Disabled {
		return false
	}
	if m.open {
		m.Close()
		return true
	}
	m.open = true
	return true
}

// SetQuery updates the filter text while open.
func (m *ComboboxMachine) SetQuery(query string) bool {
	if m.Disabled || !m.open {
		return false
	}
	m.query = query
	return true
}

// Select applies an item choice from any phase. Single mode replaces the
// selection and closes; multiple mode toggles membership and leaves the
// list open, opening it if it was closed.
func (m *ComboboxMachine) Select(value string) bool {
	if m.Disabled {
		return false
	}
	if m.Multiple {
		m.selection = m.selection.Toggle(value)
		m.open = true
		return true
	}
	m.selection = NewSelection(value)
	m.Close()
	return true
}

// Close closes the list and resets the query.
func (m *ComboboxMachine) Close() {
	m.open = false
	m.query = ""
}

// Query returns the current filter text.
func (m *ComboboxMachine) Query() string {
	return m.query
}

// Selection returns the current selection.
func (m *ComboboxMachine) Selection() Selection {
	return m.selection
}

// SetSelection replaces the selection, trimming to one value in single mode.
func (m *ComboboxMachine) SetSelection(s Selection) {
	if !m.Multiple && s.Len() > 1 {
		s = NewSelection(s.values[0])
	}
	m.selection = s
}

// ComboboxKeyMap defines the combobox key bindings.
type ComboboxKeyMap struct {
	Open   key.Binding
	Close  key.Binding
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
}

// DefaultComboboxKeyMap returns the default bindings.
func DefaultComboboxKeyMap() ComboboxKeyMap {
	return ComboboxKeyMap{
		Open:   key.NewBinding(key.WithKeys("enter", " ", "down"), key.WithHelp("enter", "open")),
		Close:  key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close")),
		Up:     key.NewBinding(key.WithKeys("up", "ctrl+p"), key.WithHelp("↑", "previous")),
		Down:   key.NewBinding(key.WithKeys("down", "ctrl+n"), key.WithHelp("↓", "next")),
		Select: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select")),
	}
}

const (
	defaultComboboxWidth   = 32
	defaultComboboxVisible = 6
)

// Combobox is a searchable single or multiple select.
type Combobox struct {
	BaseComponent
	machine     ComboboxMachine
	items       []ComboboxItem
	placeholder string
	emptyText   string
	width       int
	visible     int
	highlight   int
	focused     bool
	input       textinput.Model
	keys        ComboboxKeyMap
	selection   sourceSlot[[]string]
	onChange    func([]string)
}

// NewCombobox creates a single-select combobox over items.
func NewCombobox(items ...ComboboxItem) *Combobox {
	input := textinput.New()
	input.Prompt = "⌕ "
	input.Placeholder = "Search..."

	return &Combobox{
		BaseComponent: NewBaseComponent(),
		items:         items,
		placeholder:   "Select...",
		emptyText:     "No results found.",
		width:         defaultComboboxWidth,
		visible:       defaultComboboxVisible,
		input:         input,
		keys:          DefaultComboboxKeyMap(),
	}
}

func (c *Combobox) sync() {
	c.machine.SetSelection(NewSelection(c.selection.get()...))
}

func (c *Combobox) commit(before Selection) {
	after := c.machine.Selection()
	if equalValues(before.values, after.values) {
		return
	}
	values := after.Values()
	c.selection.set(values)
	if c.onChange != nil {
		c.onChange(values)
	}
}

func equalValues(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// Trigger presses the trigger. The returned command focuses the query input.
func (c *Combobox) Trigger() tea.Cmd {
	if !c.machine.Trigger() {
		return nil
	}
	c.highlight = 0
	if c.machine.Phase() == ComboboxClosed {
		c.input.SetValue("")
		c.input.Blur()
		return nil
	}
	return c.input.Focus()
}

// SetQuery sets the filter text.
func (c *Combobox) SetQuery(query string) {
	if c.machine.SetQuery(query) {
		c.input.SetValue(query)
		c.highlight = 0
	}
}

// Select chooses value as if its row were pressed.
func (c *Combobox) Select(value string) bool {
	c.sync()
	before := c.machine.Selection()
	if !c.machine.Select(value) {
		return false
	}
	if c.machine.Phase() == ComboboxClosed {
		c.input.SetValue("")
		c.input.Blur()
	}
	c.commit(before)
	return true
}

// Close dismisses the list.
func (c *Combobox) Close() {
	c.machine.Close()
	c.input.SetValue("")
	c.input.Blur()
}

// Phase returns the current phase.
func (c *Combobox) Phase() ComboboxPhase {
	return c.machine.Phase()
}

// Values returns the selected values in order.
func (c *Combobox) Values() []string {
	c.sync()
	return c.machine.Selection().Values()
}

// Visible returns the items matching the current query.
func (c *Combobox) Visible() []ComboboxItem {
	return FilterItems(c.items, c.machine.Query())
}

// Update routes key messages while the combobox is focused.
func (c *Combobox) Update(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || c.machine.Disabled {
		return nil
	}

	if c.machine.Phase() == ComboboxClosed {
		if key.Matches(keyMsg, c.keys.Open) {
			return c.Trigger()
		}
		return nil
	}

	visible := c.Visible()
	switch {
	case key.Matches(keyMsg, c.keys.Close):
		c.Close()
		return nil
	case key.Matches(keyMsg, c.keys.Up):
		if c.highlight > 0 {
			c.highlight--
		}
		return nil
	case key.Matches(keyMsg, c.keys.Down):
		if c.highlight < len(visible)-1 {
			c.highlight++
		}
		return nil
	case key.Matches(keyMsg, c.keys.Select):
		if c.highlight < len(visible) {
			c.Select(visible[c.highlight].Value)
		}
		return nil
	}

	var cmd tea.Cmd
	c.input, cmd = c.input.Update(msg)
	if c.input.Value() != c.machine.Query() {
		c.machine.SetQuery(c.input.Value())
		c.highlight = 0
	}
	return cmd
}

// View renders the combobox.
func (c *Combobox) View() string {
	return c.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the trigger and, when open, the filtered list.
func (c *Combobox) ViewWithContext(ctx RenderContext) string {
	c.sync()
	theme := ctx.Theme

	state := InputStateDefault
	if c.focused || c.machine.Phase() != ComboboxClosed {
		state = InputStateFocus
	}
	trigger := c.ComposeStyle(theme, InputStyle(theme, state).Width(c.width))
	if c.machine.Disabled {
		trigger = trigger.Faint(true)
	}

	inner := c.width - 4
	if inner < 4 {
		inner = 4
	}
	rows := []string{trigger.Render(c.triggerLabel(theme, inner) + " ▾")}

	if c.machine.Phase() == ComboboxClosed {
		return lipgloss.JoinVertical(lipgloss.Left, rows...)
	}

	list := []string{c.input.View()}
	visible := c.Visible()
	if len(visible) == 0 {
		list = append(list, TypographyStyle(theme, TypographyVariantMuted).Render(c.emptyText))
	} else {
		start := 0
		if c.highlight >= c.visible {
			start = c.highlight - c.visible + 1
		}
		end := start + c.visible
		if end > len(visible) {
			end = len(visible)
		}
		for i := start; i < end; i++ {
			list = append(list, c.itemRow(theme, visible[i], i == c.highlight, inner))
		}
	}

	popover := NewCompositeStrategy(PopoverBaseStyle()...).Apply(lipgloss.NewStyle().Width(c.width), theme)
	rows = append(rows, popover.Render(lipgloss.JoinVertical(lipgloss.Left, list...)))
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (c *Combobox) triggerLabel(theme Theme, width int) string {
	selected := c.machine.Selection()
	if selected.Len() == 0 {
		return TypographyStyle(theme, TypographyVariantMuted).Render(truncate.StringWithTail(c.placeholder, uint(width), "…"))
	}

	if !c.machine.Multiple {
		return truncate.StringWithTail(c.labelFor(selected.values[0]), uint(width), "…")
	}

	chips := make([]string, 0, selected.Len())
	for _, v := range selected.values {
		chips = append(chips, SecondaryBadge(c.labelFor(v)).ViewWithContext(NewRenderContext(theme)))
	}
	return truncate.StringWithTail(strings.Join(chips, " "), uint(width), "…")
}

func (c *Combobox) itemRow(theme Theme, item ComboboxItem, highlighted bool, width int) string {
	mark := "  "
	if c.machine.Selection().Contains(item.Value) {
		mark = "✓ "
	}
	style := lipgloss.NewStyle().Foreground(theme.Color(uitheme.TokenPopoverForeground))
	if highlighted {
		style = style.
			Background(theme.Color(uitheme.TokenAccent)).
			Foreground(theme.Color(uitheme.TokenAccentForeground))
	}
	return style.Render(truncate.StringWithTail(mark+item.Label, uint(width), "…"))
}

func (c *Combobox) labelFor(value string) string {
	for _, item := range c.items {
		if item.Value == value {
			return item.Label
		}
	}
	return value
}

// WithMultiple switches to multiple selection.
func (c *Combobox) WithMultiple(multiple bool) *Combobox {
	c.machine.Multiple = multiple
	return c
}

// WithDisabled sets the disabled state. Existing selections stay visible
// but cannot be changed.
func (c *Combobox) WithDisabled(disabled bool) *Combobox {
	c.machine.Disabled = disabled
	if disabled {
		c.Close()
	}
	return c
}

// WithValues seeds the internal selection.
func (c *Combobox) WithValues(values ...string) *Combobox {
	c.selection.seed(values)
	return c
}

// WithSource binds caller-owned selection state.
func (c *Combobox) WithSource(source ValueSource[[]string]) *Combobox {
	c.selection.bind(source)
	return c
}

// OnChange sets the callback receiving the selection after each change.
func (c *Combobox) OnChange(fn func([]string)) *Combobox {
	c.onChange = fn
	return c
}

// WithPlaceholder sets the trigger text shown with no selection.
func (c *Combobox) WithPlaceholder(text string) *Combobox {
	c.placeholder = text
	return c
}

// WithEmptyText sets the content rendered when nothing matches.
func (c *Combobox) WithEmptyText(text string) *Combobox {
	c.emptyText = text
	return c
}

// WithWidth sets the trigger and list width.
func (c *Combobox) WithWidth(width int) *Combobox {
	if width > 0 {
		c.width = width
	}
	return c
}

// WithKeyMap replaces the key bindings.
func (c *Combobox) WithKeyMap(keys ComboboxKeyMap) *Combobox {
	c.keys = keys
	return c
}

// WithFocused marks the combobox as the keyboard focus.
func (c *Combobox) WithFocused(focused bool) *Combobox {
	c.focused = focused
	return c
}

// WithStyle sets the override style applied to the trigger.
func (c *Combobox) WithStyle(style lipgloss.Style) *Combobox {
	c.SetStyle(style)
	return c
}

// WithAppliers applies theme-based style modifiers to the trigger.
func (c *Combobox) WithAppliers(appliers ...StyleFunc) *Combobox {
	c.AddAppliers(appliers...)
	return c
}
