package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	uitheme "github.com/alexisbeaulieu97/vaultkit/internal/ui/theme"
)

const defaultDividerWidth = 40

// Divider renders a rule in the border color, optionally with a centered
// label such as "or".
type Divider struct {
	BaseComponent
	char      string
	label     string
	width     int
	direction Direction
}

// NewDivider creates a horizontal divider that fills the available width.
func NewDivider() *Divider {
	return &Divider{
		BaseComponent: NewBaseComponent(),
		char:          "─",
		direction:     DirectionHorizontal,
	}
}

// HorizontalDivider creates a horizontal divider (convenience constructor).
func HorizontalDivider() *Divider {
	return NewDivider()
}

// VerticalDivider creates a vertical divider.
func VerticalDivider() *Divider {
	return NewDivider().WithChar("│").WithDirection(DirectionVertical)
}

// LabeledDivider creates a horizontal divider with a centered label.
func LabeledDivider(label string) *Divider {
	return NewDivider().WithLabel(label)
}

// View renders the divider.
func (d *Divider) View() string {
	return d.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the divider with layout context.
func (d *Divider) ViewWithContext(ctx RenderContext) string {
	length := d.length(ctx)
	base := lipgloss.NewStyle().Foreground(ctx.Theme.Color(uitheme.TokenBorder))
	style := d.ComposeStyle(ctx.Theme, base)

	if d.direction == DirectionVertical {
		return style.Render(strings.TrimSuffix(strings.Repeat(d.char+"\n", length), "\n"))
	}

	if d.label == "" {
		return style.Render(strings.Repeat(d.char, length))
	}

	label := " " + d.label + " "
	rest := length - lipgloss.Width(label)
	if rest < 2 {
		return TypographyStyle(ctx.Theme, TypographyVariantMuted).Render(d.label)
	}
	left := rest / 2
	return lipgloss.JoinHorizontal(lipgloss.Top,
		style.Render(strings.Repeat(d.char, left)),
		TypographyStyle(ctx.Theme, TypographyVariantMuted).Render(label),
		style.Render(strings.Repeat(d.char, rest-left)),
	)
}

func (d *Divider) length(ctx RenderContext) int {
	switch {
	case d.width > 0:
		return d.width
	case ctx.Constraints.MaxWidth > 0:
		return ctx.Constraints.MaxWidth
	case ctx.Constraints.MinWidth > 0:
		return ctx.Constraints.MinWidth
	case ctx.ParentWidth > 0:
		return ctx.ParentWidth
	default:
		return defaultDividerWidth
	}
}

// WithChar sets the character used for the divider.
func (d *Divider) WithChar(char string) *Divider {
	if char != "" {
		d.char = char
	}
	return d
}

// WithLabel sets the centered label.
func (d *Divider) WithLabel(label string) *Divider {
	d.label = label
	return d
}

// WithWidth sets an explicit length for the divider.
func (d *Divider) WithWidth(width int) *Divider {
	d.width = width
	return d
}

// WithDirection sets the divider direction.
func (d *Divider) WithDirection(dir Direction) *Divider {
	d.direction = dir
	return d
}

// WithStyle sets the divider style.
func (d *Divider) WithStyle(style lipgloss.Style) *Divider {
	d.SetStyle(style)
	return d
}

// WithAppliers applies theme-based style modifiers.
func (d *Divider) WithAppliers(appliers ...StyleFunc) *Divider {
	d.SetAppliers(appliers...)
	return d
}

// Width returns the explicit divider length, or 0 when it fills.
func (d *Divider) Width() int {
	return d.width
}

// DashedDivider creates a dashed divider.
func DashedDivider() *Divider {
	return NewDivider().WithChar("╌")
}

// ThickDivider creates a thick divider.
func ThickDivider() *Divider {
	return NewDivider().WithChar("━")
}
