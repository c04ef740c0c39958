package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/vaultkit/internal/ui"
	uitheme "github.com/alexisbeaulieu97/vaultkit/internal/ui/theme"
)

// Collapsible shows or hides its content behind a single trigger.
type Collapsible struct {
	BaseComponent
	title    string
	content  ui.Renderable
	disabled bool
	open     sourceSlot[bool]
	onChange func(bool)
}

// NewCollapsible creates a closed collapsible.
func NewCollapsible(title string, content ui.Renderable) *Collapsible {
	return &Collapsible{
		BaseComponent: NewBaseComponent(),
		title:         title,
		content:       content,
	}
}

// Toggle opens or closes the content. Disabled collapsibles report false.
func (c *Collapsible) Toggle() bool {
	if c.disabled {
		return false
	}
	next := !c.open.get()
	c.open.set(next)
	if c.onChange != nil {
		c.onChange(next)
	}
	return true
}

// Open reports whether the content is shown.
func (c *Collapsible) Open() bool {
	return c.open.get()
}

// WithOpen seeds the internal state.
func (c *Collapsible) WithOpen(open bool) *Collapsible {
	c.open.seed(open)
	return c
}

// WithSource binds caller-owned state.
func (c *Collapsible) WithSource(source ValueSource[bool]) *Collapsible {
	c.open.bind(source)
	return c
}

// OnChange sets the change callback.
func (c *Collapsible) OnChange(fn func(bool)) *Collapsible {
	c.onChange = fn
	return c
}

// WithDisabled sets the disabled state.
func (c *Collapsible) WithDisabled(disabled bool) *Collapsible {
	c.disabled = disabled
	return c
}

// WithStyle sets the override style.
func (c *Collapsible) WithStyle(style lipgloss.Style) *Collapsible {
	c.SetStyle(style)
	return c
}

// View renders the collapsible.
func (c *Collapsible) View() string {
	return c.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the trigger and, when open, the content.
func (c *Collapsible) ViewWithContext(ctx RenderContext) string {
	theme := ctx.Theme
	marker := "+"
	if c.Open() {
		marker = "-"
	}
	trigger := lipgloss.NewStyle().Foreground(theme.Color(uitheme.TokenForeground)).Bold(true)
	if c.disabled {
		trigger = trigger.Faint(true)
	}

	rows := []string{trigger.Render(marker + " " + c.title)}
	if c.Open() {
		rows = append(rows, lipgloss.NewStyle().PaddingLeft(2).Render(renderChild(c.content, ctx)))
	}
	return c.ComputeStyle(theme).Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}
