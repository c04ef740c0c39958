package components

import (
	"slices"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/vaultkit/internal/ui"
	uitheme "github.com/alexisbeaulieu97/vaultkit/internal/ui/theme"
	vkerrors "github.com/alexisbeaulieu97/vaultkit/pkg/errors"
)

// AccordionType selects single or multiple expansion.
type AccordionType int

const (
	AccordionSingle AccordionType = iota
	AccordionMultiple
)

// AccordionState is the open-key state of an accordion. Toggle returns a
// new state; the receiver is never modified.
type AccordionState struct {
	Type        AccordionType
	Collapsible bool
	open        []string
}

// NewAccordionState creates a state with the given keys open. Single mode
// keeps only the first key.
func NewAccordionState(kind AccordionType, collapsible bool, open ...string) AccordionState {
	s := AccordionState{Type: kind, Collapsible: collapsible}
	for _, key := range open {
		if s.IsOpen(key) {
			continue
		}
		s.open = append(s.open, key)
		if kind == AccordionSingle {
			break
		}
	}
	return s
}

// Toggle returns the state after the trigger for key is activated.
func (s AccordionState) Toggle(key string) AccordionState {
	next := AccordionState{Type: s.Type, Collapsible: s.Collapsible}

	if s.Type == AccordionMultiple {
		removed := false
		for _, k := range s.open {
			if k == key {
				removed = true
				continue
			}
			next.open = append(next.open, k)
		}
		if !removed {
			next.open = append(next.open, key)
		}
		return next
	}

	if s.IsOpen(key) {
		if !s.Collapsible {
			next.open = append(next.open, s.open...)
		}
		return next
	}
	next.open = []string{key}
	return next
}

// IsOpen reports whether key is expanded.
func (s AccordionState) IsOpen(key string) bool {
	for _, k := range s.open {
		if k == key {
			return true
		}
	}
	return false
}

// OpenKeys returns the expanded keys in the order they were opened.
func (s AccordionState) OpenKeys() []string {
	out := make([]string, len(s.open))
	copy(out, s.open)
	return out
}

// AccordionHandle is what an Accordion hands to its items.
type AccordionHandle interface {
	IsOpen(key string) bool
	Toggle(key string) bool
	Disabled() bool
}

// Accordion owns the expansion state and renders its items in order.
type Accordion struct {
	BaseComponent
	state    sourceSlot[AccordionState]
	items    []*AccordionItem
	cursor   int
	disabled bool
	onChange func([]string)
}

// NewAccordion creates an accordion with nothing open.
func NewAccordion(kind AccordionType, collapsible bool) *Accordion {
	a := &Accordion{BaseComponent: NewBaseComponent()}
	a.state.seed(NewAccordionState(kind, collapsible))
	return a
}

// Item appends an item bound to this accordion.
func (a *Accordion) Item(key, title string, content ui.Renderable) *AccordionItem {
	item := NewAccordionItem(a, key, title, content)
	a.items = append(a.items, item)
	return item
}

// IsOpen implements AccordionHandle.
func (a *Accordion) IsOpen(key string) bool {
	return a.state.get().IsOpen(key)
}

// Toggle implements AccordionHandle. It reports false when disabled. A
// toggle that leaves the open keys unchanged neither writes the state nor
// calls the change callback.
func (a *Accordion) Toggle(key string) bool {
	if a.disabled {
		return false
	}
	prev := a.state.get()
	next := prev.Toggle(key)
	if slices.Equal(prev.OpenKeys(), next.OpenKeys()) {
		return true
	}
	a.state.set(next)
	if a.onChange != nil {
		a.onChange(next.OpenKeys())
	}
	return true
}

// Disabled implements AccordionHandle.
func (a *Accordion) Disabled() bool {
	return a.disabled
}

// State returns the current state.
func (a *Accordion) State() AccordionState {
	return a.state.get()
}

// Next moves the focus cursor to the next item.
func (a *Accordion) Next() {
	if len(a.items) > 0 {
		a.cursor = (a.cursor + 1) % len(a.items)
	}
}

// Prev moves the focus cursor to the previous item.
func (a *Accordion) Prev() {
	if len(a.items) > 0 {
		a.cursor = (a.cursor - 1 + len(a.items)) % len(a.items)
	}
}

// ToggleCursor toggles the focused item.
func (a *Accordion) ToggleCursor() bool {
	if a.cursor < 0 || a.cursor >= len(a.items) {
		return false
	}
	return a.items[a.cursor].Press()
}

// WithOpen seeds the internal state with open keys.
func (a *Accordion) WithOpen(keys ...string) *Accordion {
	current := a.state.initial
	a.state.seed(NewAccordionState(current.Type, current.Collapsible, keys...))
	return a
}

// WithSource binds caller-owned state.
func (a *Accordion) WithSource(source ValueSource[AccordionState]) *Accordion {
	a.state.bind(source)
	return a
}

// OnChange sets the callback receiving the open keys after each toggle.
func (a *Accordion) OnChange(fn func([]string)) *Accordion {
	a.onChange = fn
	return a
}

// WithDisabled sets the disabled state.
func (a *Accordion) WithDisabled(disabled bool) *Accordion {
	a.disabled = disabled
	return a
}

// WithStyle sets the override style.
func (a *Accordion) WithStyle(style lipgloss.Style) *Accordion {
	a.SetStyle(style)
	return a
}

// View renders the accordion.
func (a *Accordion) View() string {
	return a.ViewWithContext(DefaultContext())
}

// ViewWithContext renders every item, separated by border-colored rules.
func (a *Accordion) ViewWithContext(ctx RenderContext) string {
	views := make([]string, 0, len(a.items))
	for i, item := range a.items {
		item.focused = i == a.cursor
		views = append(views, item.ViewWithContext(ctx))
	}
	return a.ComputeStyle(ctx.Theme).Render(lipgloss.JoinVertical(lipgloss.Left, views...))
}

// AccordionItem is one trigger plus collapsible content.
type AccordionItem struct {
	BaseComponent
	handle   AccordionHandle
	key      string
	title    string
	content  ui.Renderable
	disabled bool
	focused  bool
}

// NewAccordionItem binds an item to handle. Items only make sense inside an
// accordion, so a nil handle panics with a *errors.MisuseError.
func NewAccordionItem(handle AccordionHandle, key, title string, content ui.Renderable) *AccordionItem {
	if handle == nil {
		panic(vkerrors.NewMisuseError("AccordionItem", "Accordion"))
	}
	return &AccordionItem{
		BaseComponent: NewBaseComponent(),
		handle:        handle,
		key:           key,
		title:         title,
		content:       content,
	}
}

// Key returns the item key.
func (i *AccordionItem) Key() string {
	return i.key
}

// Open reports whether the item is expanded.
func (i *AccordionItem) Open() bool {
	return i.handle.IsOpen(i.key)
}

// Press activates the trigger.
func (i *AccordionItem) Press() bool {
	if i.disabled || i.handle.Disabled() {
		return false
	}
	return i.handle.Toggle(i.key)
}

// WithDisabled disables this item only.
func (i *AccordionItem) WithDisabled(disabled bool) *AccordionItem {
	i.disabled = disabled
	return i
}

// WithStyle sets the override style.
func (i *AccordionItem) WithStyle(style lipgloss.Style) *AccordionItem {
	i.SetStyle(style)
	return i
}

// View renders the item.
func (i *AccordionItem) View() string {
	return i.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the trigger row and, when open, the content.
func (i *AccordionItem) ViewWithContext(ctx RenderContext) string {
	theme := ctx.Theme
	open := i.Open()

	chevron := "▸"
	if open {
		chevron = "▾"
	}
	trigger := lipgloss.NewStyle().Foreground(theme.Color(uitheme.TokenForeground))
	if i.focused {
		trigger = trigger.Bold(true)
	}
	if i.disabled || i.handle.Disabled() {
		trigger = trigger.Faint(true)
	}

	rows := []string{trigger.Render(chevron + " " + i.title)}
	if open && i.content != nil {
		rows = append(rows, lipgloss.NewStyle().PaddingLeft(2).Render(renderChild(i.content, ctx)))
	}
	rule := lipgloss.NewStyle().
		BorderStyle(theme.Borders.Normal).
		BorderBottom(true).
		BorderForeground(theme.Color(uitheme.TokenBorder))
	return i.ComposeStyle(theme, rule).Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

// renderChild renders child with ctx when it accepts one.
func renderChild(child ui.Renderable, ctx RenderContext) string {
	if child == nil {
		return ""
	}
	if contextual, ok := child.(ContextualRenderable); ok {
		return contextual.ViewWithContext(ctx)
	}
	return child.View()
}
