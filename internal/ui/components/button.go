package components

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Button is a pressable control. Press reports whether OnPress fired.
type Button struct {
	BaseComponent
	label    string
	icon     string
	variant  ButtonVariant
	size     ButtonSize
	disabled bool
	loading  bool
	active   bool
	onPress  func()
	spinner  spinner.Model
}

// NewButton creates a new button with the given label.
func NewButton(label string) *Button {
	return &Button{
		BaseComponent: NewBaseComponent(),
		label:         label,
		variant:       ButtonVariantDefault,
		size:          ButtonSizeDefault,
		spinner:       spinner.New(spinner.WithSpinner(spinner.MiniDot)),
	}
}

// View renders the button.
func (b *Button) View() string {
	return b.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the button with the given theme context.
func (b *Button) ViewWithContext(ctx RenderContext) string {
	style := b.computeStyle(ctx.Theme)
	return style.Render(b.content())
}

func (b *Button) content() string {
	if b.size == ButtonSizeIcon && b.icon != "" {
		if b.loading {
			return b.spinner.View()
		}
		return b.icon
	}

	label := b.label
	if b.icon != "" {
		label = b.icon + " " + label
	}
	if b.loading {
		label = b.spinner.View() + " " + label
	}
	return label
}

func (b *Button) computeStyle(theme Theme) lipgloss.Style {
	style := theme.Variants.
		Resolve(b.variant, ButtonVariantDefault).
		Apply(lipgloss.NewStyle(), theme)

	style = buttonSizeStyle(style, b.size, theme)

	if b.disabled || b.loading {
		style = style.Faint(true)
	}
	if b.active {
		style = style.Bold(true)
	}

	return b.ComposeStyle(theme, style)
}

func buttonSizeStyle(style lipgloss.Style, size ButtonSize, theme Theme) lipgloss.Style {
	switch size {
	case ButtonSizeSmall:
		return PaddingX(SpacingSizeExtraSmall)(style, theme)
	case ButtonSizeLarge:
		return PaddingX(SpacingSizeLarge)(style, theme).Bold(true)
	case ButtonSizeIcon:
		return style.Padding(0, 1)
	default:
		return PaddingX(SpacingSizeMedium)(style, theme)
	}
}

// Press invokes the press handler unless the button is disabled or loading.
func (b *Button) Press() bool {
	if b.disabled || b.loading || b.onPress == nil {
		return false
	}
	b.onPress()
	return true
}

// SetLoading toggles the loading state and returns the command that starts
// the spinner.
func (b *Button) SetLoading(loading bool) tea.Cmd {
	b.loading = loading
	if !loading {
		return nil
	}
	return b.spinner.Tick
}

// Update advances the loading spinner.
func (b *Button) Update(msg tea.Msg) tea.Cmd {
	if !b.loading {
		return nil
	}
	var cmd tea.Cmd
	b.spinner, cmd = b.spinner.Update(msg)
	return cmd
}

// WithVariant sets the button variant.
func (b *Button) WithVariant(variant ButtonVariant) *Button {
	b.variant = variant
	return b
}

// WithSize sets the button size.
func (b *Button) WithSize(size ButtonSize) *Button {
	b.size = size
	return b
}

// WithIcon sets a glyph rendered before the label, or alone for icon buttons.
func (b *Button) WithIcon(icon string) *Button {
	b.icon = icon
	return b
}

// WithDisabled sets the disabled state.
func (b *Button) WithDisabled(disabled bool) *Button {
	b.disabled = disabled
	return b
}

// WithActive sets the active/focused state.
func (b *Button) WithActive(active bool) *Button {
	b.active = active
	return b
}

// OnPress sets the press handler.
func (b *Button) OnPress(fn func()) *Button {
	b.onPress = fn
	return b
}

// WithStyle sets the override style.
func (b *Button) WithStyle(style lipgloss.Style) *Button {
	b.SetStyle(style)
	return b
}

// WithAppliers applies theme-based style modifiers.
func (b *Button) WithAppliers(appliers ...StyleFunc) *Button {
	b.AddAppliers(appliers...)
	return b
}

// Label returns the button label.
func (b *Button) Label() string {
	return b.label
}

// SetLabel updates the button label.
func (b *Button) SetLabel(label string) *Button {
	b.label = label
	return b
}

// Variant returns the active variant.
func (b *Button) Variant() ButtonVariant {
	return b.variant
}

// IsDisabled returns true if the button is disabled.
func (b *Button) IsDisabled() bool {
	return b.disabled
}

// IsLoading reports whether the spinner is showing.
func (b *Button) IsLoading() bool {
	return b.loading
}

// IsActive returns true if the button is active.
func (b *Button) IsActive() bool {
	return b.active
}

// Convenience constructors for different button variants

// DestructiveButton creates a destructive button.
func DestructiveButton(label string) *Button {
	return NewButton(label).WithVariant(ButtonVariantDestructive)
}

// OutlineButton creates an outlined button.
func OutlineButton(label string) *Button {
	return NewButton(label).WithVariant(ButtonVariantOutline)
}

// SecondaryButton creates a secondary button.
func SecondaryButton(label string) *Button {
	return NewButton(label).WithVariant(ButtonVariantSecondary)
}

// GhostButton creates a borderless, fill-less button.
func GhostButton(label string) *Button {
	return NewButton(label).WithVariant(ButtonVariantGhost)
}

// LinkButton creates a button styled as a link.
func LinkButton(label string) *Button {
	return NewButton(label).WithVariant(ButtonVariantLink)
}
