package components

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"
)

const defaultAlertWidth = 60

// Alert is a composite component for displaying notifications and messages.
type Alert struct {
	BaseComponent
	title       string
	description string
	icon        string
	variant     AlertVariant
	width       int
}

// NewAlert creates a new alert with the given description.
func NewAlert(description string) *Alert {
	return &Alert{
		BaseComponent: NewBaseComponent(),
		description:   description,
		variant:       AlertVariantDefault,
	}
}

// View renders the alert.
func (a *Alert) View() string {
	return a.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the alert with the provided render context.
func (a *Alert) ViewWithContext(ctx RenderContext) string {
	theme := ctx.Theme
	style := a.ComposeStyle(theme, theme.Variants.
		Resolve(a.variant, AlertVariantDefault).
		Apply(lipgloss.NewStyle(), theme))

	width := a.contentWidth(ctx) - style.GetHorizontalFrameSize()
	if width < 8 {
		width = 8
	}

	icon := a.icon
	if icon == "" {
		icon = alertIcon(a.variant)
	}

	lines := make([]string, 0, 2)
	if a.title != "" {
		lines = append(lines, lipgloss.NewStyle().Bold(true).Render(wordwrap.String(icon+" "+a.title, width)))
		if a.description != "" {
			lines = append(lines, wordwrap.String(a.description, width))
		}
	} else {
		lines = append(lines, wordwrap.String(icon+" "+a.description, width))
	}

	return style.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

func (a *Alert) contentWidth(ctx RenderContext) int {
	switch {
	case a.width > 0:
		return a.width
	case ctx.Constraints.MaxWidth > 0:
		return ctx.Constraints.MaxWidth
	case ctx.ParentWidth > 0:
		return ctx.ParentWidth
	default:
		return defaultAlertWidth
	}
}

func alertIcon(variant AlertVariant) string {
	switch variant {
	case AlertVariantDestructive:
		return "✗"
	case AlertVariantSuccess:
		return "✓"
	case AlertVariantWarning:
		return "!"
	default:
		return "ℹ"
	}
}

// WithVariant sets the alert variant.
func (a *Alert) WithVariant(variant AlertVariant) *Alert {
	a.variant = variant
	return a
}

// WithTitle sets the alert title.
func (a *Alert) WithTitle(title string) *Alert {
	a.title = title
	return a
}

// WithIcon replaces the variant icon.
func (a *Alert) WithIcon(icon string) *Alert {
	a.icon = icon
	return a
}

// WithWidth fixes the outer width used for wrapping.
func (a *Alert) WithWidth(width int) *Alert {
	a.width = width
	return a
}

// WithStyle sets the alert style.
func (a *Alert) WithStyle(style lipgloss.Style) *Alert {
	a.SetStyle(style)
	return a
}

// WithAppliers applies theme-based style modifiers.
func (a *Alert) WithAppliers(appliers ...StyleFunc) *Alert {
	a.AddAppliers(appliers...)
	return a
}

// Title returns the alert title.
func (a *Alert) Title() string {
	return a.title
}

// Description returns the alert description.
func (a *Alert) Description() string {
	return a.description
}

// Convenience constructors for different alert variants

// SuccessAlert creates a success alert.
func SuccessAlert(description string) *Alert {
	return NewAlert(description).WithVariant(AlertVariantSuccess)
}

// WarningAlert creates a warning alert.
func WarningAlert(description string) *Alert {
	return NewAlert(description).WithVariant(AlertVariantWarning)
}

// DestructiveAlert creates a destructive alert.
func DestructiveAlert(description string) *Alert {
	return NewAlert(description).WithVariant(AlertVariantDestructive)
}

// InfoAlert creates an info alert.
func InfoAlert(description string) *Alert {
	return NewAlert(description).WithVariant(AlertVariantInfo)
}
