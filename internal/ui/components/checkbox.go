package components

import (
	"github.com/charmbracelet/lipgloss"

	uitheme "github.com/alexisbeaulieu97/vaultkit/internal/ui/theme"
)

// Checkbox is a labelled boolean control.
type Checkbox struct {
	BaseComponent
	label    string
	variant  CheckboxVariant
	disabled bool
	focused  bool
	errMsg   string
	checked  sourceSlot[bool]
	onChange func(bool)
}

// NewCheckbox creates an unchecked checkbox.
func NewCheckbox(label string) *Checkbox {
	return &Checkbox{
		BaseComponent: NewBaseComponent(),
		label:         label,
	}
}

// View renders the checkbox.
func (c *Checkbox) View() string {
	return c.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the checkbox with the given theme context.
func (c *Checkbox) ViewWithContext(ctx RenderContext) string {
	theme := ctx.Theme
	indicator, label := toggleStyles(theme, c.variant, CheckboxVariantDefault, c.errMsg, c.disabled)

	mark := "[ ]"
	if c.checked.get() {
		mark = "[x]"
	}
	if c.focused {
		label = label.Underline(true)
	}

	row := lipgloss.JoinHorizontal(lipgloss.Top,
		indicator.Render(mark), " ", label.Render(c.label))
	return c.ComposeStyle(theme, lipgloss.NewStyle()).Render(withError(theme, row, c.errMsg))
}

// Toggle flips the value. Disabled checkboxes ignore it and report false.
func (c *Checkbox) Toggle() bool {
	if c.disabled {
		return false
	}
	next := !c.checked.get()
	c.checked.set(next)
	if c.onChange != nil {
		c.onChange(next)
	}
	return true
}

// Checked reports the current value.
func (c *Checkbox) Checked() bool {
	return c.checked.get()
}

// WithChecked seeds the internal value. It has no effect on a bound source.
func (c *Checkbox) WithChecked(checked bool) *Checkbox {
	c.checked.seed(checked)
	return c
}

// WithSource binds caller-owned state.
func (c *Checkbox) WithSource(source ValueSource[bool]) *Checkbox {
	c.checked.bind(source)
	return c
}

// OnChange sets the change callback.
func (c *Checkbox) OnChange(fn func(bool)) *Checkbox {
	c.onChange = fn
	return c
}

// WithVariant sets the checkbox variant.
func (c *Checkbox) WithVariant(variant CheckboxVariant) *Checkbox {
	c.variant = variant
	return c
}

// WithDisabled sets the disabled state.
func (c *Checkbox) WithDisabled(disabled bool) *Checkbox {
	c.disabled = disabled
	return c
}

// WithError sets a validation message; a non-empty message recolors the
// control with the destructive token.
func (c *Checkbox) WithError(msg string) *Checkbox {
	c.errMsg = msg
	return c
}

// WithFocused marks the checkbox as the keyboard focus.
func (c *Checkbox) WithFocused(focused bool) *Checkbox {
	c.focused = focused
	return c
}

// WithStyle sets the override style.
func (c *Checkbox) WithStyle(style lipgloss.Style) *Checkbox {
	c.SetStyle(style)
	return c
}

// WithAppliers applies theme-based style modifiers.
func (c *Checkbox) WithAppliers(appliers ...StyleFunc) *Checkbox {
	c.AddAppliers(appliers...)
	return c
}

// IsDisabled reports the disabled state.
func (c *Checkbox) IsDisabled() bool {
	return c.disabled
}

// toggleStyles returns indicator and label styles for a toggle control. An
// error message takes precedence over the variant color.
func toggleStyles(theme Theme, variant, fallback any, errMsg string, disabled bool) (lipgloss.Style, lipgloss.Style) {
	indicator := theme.Variants.Resolve(variant, fallback).Apply(lipgloss.NewStyle(), theme)
	label := lipgloss.NewStyle().Foreground(theme.Color(uitheme.TokenForeground))

	if errMsg != "" {
		danger := theme.Color(uitheme.TokenDestructive)
		indicator = indicator.Foreground(danger)
		label = label.Foreground(danger)
	}
	if disabled {
		indicator = indicator.Faint(true)
		label = label.Faint(true)
	}
	return indicator, label
}

func withError(theme Theme, row, errMsg string) string {
	if errMsg == "" {
		return row
	}
	msg := lipgloss.NewStyle().Foreground(theme.Color(uitheme.TokenDestructive)).Render(errMsg)
	return lipgloss.JoinVertical(lipgloss.Left, row, msg)
}
