package components

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"github.com/alexisbeaulieu97/vaultkit/internal/ui"
)

// Card groups a header, body content and an optional footer inside a
// variant-styled frame.
type Card struct {
	*Container
	variant     CardVariant
	title       string
	description string
	footer      ui.Renderable
	width       int
}

// NewCard creates a new card around children.
func NewCard(children ...ui.Renderable) *Card {
	return &Card{
		Container: NewContainer(children...),
		variant:   CardVariantDefault,
	}
}

// WithVariant sets the card variant.
func (c *Card) WithVariant(variant CardVariant) *Card {
	c.variant = variant
	return c
}

// WithTitle sets the header title.
func (c *Card) WithTitle(title string) *Card {
	c.title = title
	return c
}

// WithDescription sets the muted line under the title.
func (c *Card) WithDescription(description string) *Card {
	c.description = description
	return c
}

// WithFooter sets content rendered under a divider.
func (c *Card) WithFooter(footer ui.Renderable) *Card {
	c.footer = footer
	return c
}

// WithWidth fixes the outer width.
func (c *Card) WithWidth(width int) *Card {
	c.width = width
	return c
}

// WithStyle sets the override style.
func (c *Card) WithStyle(style lipgloss.Style) *Card {
	c.SetStyle(style)
	return c
}

// WithAppliers applies theme-based style modifiers.
func (c *Card) WithAppliers(appliers ...StyleFunc) *Card {
	c.AddAppliers(appliers...)
	return c
}

// Title returns the card title.
func (c *Card) Title() string {
	return c.title
}

// View renders the card.
func (c *Card) View() string {
	return c.ViewWithContext(DefaultContext())
}

// ViewWithContext renders header, body and footer inside the variant frame.
func (c *Card) ViewWithContext(ctx RenderContext) string {
	theme := ctx.Theme
	frame := c.ComposeStyle(theme, theme.Variants.
		Resolve(c.variant, CardVariantDefault).
		Apply(lipgloss.NewStyle(), theme))

	width := c.width
	if width <= 0 && ctx.Constraints.MaxWidth > 0 {
		width = ctx.Constraints.MaxWidth
	}
	inner := 0
	if width > 0 {
		inner = width - frame.GetHorizontalFrameSize()
		frame = frame.Width(inner + frame.GetHorizontalPadding())
	}
	childCtx := ctx.WithParentWidth(inner)
	if inner > 0 {
		childCtx = childCtx.WithConstraints(WithMaxWidth(inner))
	}

	var rows []string
	if c.title != "" {
		rows = append(rows, TypographyStyle(theme, TypographyVariantTitle).Render(c.title))
	}
	if c.description != "" {
		desc := c.description
		if inner > 0 {
			desc = wordwrap.String(desc, inner)
		}
		rows = append(rows, TypographyStyle(theme, TypographyVariantMuted).Render(desc))
	}
	if len(c.Children()) > 0 {
		if len(rows) > 0 {
			rows = append(rows, "")
		}
		rows = append(rows, c.Layout().ViewWithContext(childCtx))
	}
	if c.footer != nil {
		rows = append(rows, HorizontalDivider().ViewWithContext(childCtx), renderChild(c.footer, childCtx))
	}

	return frame.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}
