package components

import (
	"github.com/charmbracelet/lipgloss"

	uitheme "github.com/alexisbeaulieu97/vaultkit/internal/ui/theme"
)

// Switch is an on/off toggle rendered as a small track.
type Switch struct {
	BaseComponent
	label    string
	variant  SwitchVariant
	disabled bool
	errMsg   string
	on       sourceSlot[bool]
	onChange func(bool)
}

// NewSwitch creates a switch in the off position.
func NewSwitch(label string) *Switch {
	return &Switch{
		BaseComponent: NewBaseComponent(),
		label:         label,
	}
}

// View renders the switch.
func (s *Switch) View() string {
	return s.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the switch with the given theme context.
func (s *Switch) ViewWithContext(ctx RenderContext) string {
	theme := ctx.Theme
	indicator, label := toggleStyles(theme, s.variant, SwitchVariantDefault, s.errMsg, s.disabled)

	track := "━━●"
	if !s.on.get() {
		track = "●━━"
		if s.errMsg == "" {
			indicator = indicator.Foreground(theme.Color(uitheme.TokenInput))
		}
	}

	row := indicator.Render(track)
	if s.label != "" {
		row = lipgloss.JoinHorizontal(lipgloss.Top, row, " ", label.Render(s.label))
	}
	return s.ComposeStyle(theme, lipgloss.NewStyle()).Render(withError(theme, row, s.errMsg))
}

// Toggle flips the switch. Disabled switches ignore it and report false.
func (s *Switch) Toggle() bool {
	if s.disabled {
		return false
	}
	next := !s.on.get()
	s.on.set(next)
	if s.onChange != nil {
		s.onChange(next)
	}
	return true
}

// On reports the current value.
func (s *Switch) On() bool {
	return s.on.get()
}

// WithOn seeds the internal value.
func (s *Switch) WithOn(on bool) *Switch {
	s.on.seed(on)
	return s
}

// WithSource binds caller-owned state.
func (s *Switch) WithSource(source ValueSource[bool]) *Switch {
	s.on.bind(source)
	return s
}

// OnChange sets the change callback.
func (s *Switch) OnChange(fn func(bool)) *Switch {
	s.onChange = fn
	return s
}

// WithVariant sets the switch variant.
func (s *Switch) WithVariant(variant SwitchVariant) *Switch {
	s.variant = variant
	return s
}

// WithDisabled sets the disabled state.
func (s *Switch) WithDisabled(disabled bool) *Switch {
	s.disabled = disabled
	return s
}

// WithError sets a validation message.
func (s *Switch) WithError(msg string) *Switch {
	s.errMsg = msg
	return s
}

// WithStyle sets the override style.
func (s *Switch) WithStyle(style lipgloss.Style) *Switch {
	s.SetStyle(style)
	return s
}

// WithAppliers applies theme-based style modifiers.
func (s *Switch) WithAppliers(appliers ...StyleFunc) *Switch {
	s.AddAppliers(appliers...)
	return s
}
