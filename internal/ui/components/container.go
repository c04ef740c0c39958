package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/vaultkit/internal/ui"
	uitheme "github.com/alexisbeaulieu97/vaultkit/internal/ui/theme"
)

// Container frames a stack of children with an optional border, padding
// and margin. Card and Panel build on it.
type Container struct {
	BaseComponent
	body        *Stack
	border      lipgloss.Border
	borderToken uitheme.ColorToken
	padding     Spacing
	margin      Spacing
	width       int
}

// NewContainer creates an unframed container over a vertical stack.
func NewContainer(children ...ui.Renderable) *Container {
	return &Container{
		BaseComponent: NewBaseComponent(),
		body:          VStack(children...),
		borderToken:   uitheme.TokenBorder,
	}
}

// View renders the container.
func (c *Container) View() string {
	return c.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the children inside the frame. An empty
// container still draws its frame.
func (c *Container) ViewWithContext(ctx RenderContext) string {
	style, inner := c.frame(ctx)
	var content string
	if len(c.body.Children()) > 0 {
		content = c.body.ViewWithContext(inner)
	}
	return style.Render(content)
}

// frame resolves the outer style and the context children render in. A
// fixed width is clamped to the available width. When the outer width is
// known, children are constrained to what is left inside the border and
// padding.
func (c *Container) frame(ctx RenderContext) (lipgloss.Style, RenderContext) {
	style := c.ComputeStyle(ctx.Theme)
	if c.border.Top != "" {
		style = style.BorderStyle(c.border).BorderForeground(ctx.Theme.Color(c.borderToken))
	}
	if !c.padding.IsZero() {
		style = style.Padding(c.padding.Top, c.padding.Right, c.padding.Bottom, c.padding.Left)
	}
	if !c.margin.IsZero() {
		style = style.Margin(c.margin.Top, c.margin.Right, c.margin.Bottom, c.margin.Left)
	}

	outer := c.width
	switch {
	case outer <= 0:
		outer = ctx.Constraints.MaxWidth
	case ctx.Constraints.MaxWidth > 0:
		outer, _ = ctx.Constraints.Constrain(outer, 0)
	}
	if outer <= 0 {
		return style, ctx
	}
	inner := max(outer-style.GetHorizontalFrameSize(), 0)
	style = style.Width(inner + style.GetHorizontalPadding())
	return style, ctx.WithParentWidth(inner).WithConstraints(WithMaxWidth(inner))
}

// WithBorder sets the border style.
func (c *Container) WithBorder(border lipgloss.Border) *Container {
	c.border = border
	return c
}

// WithBorderColor sets the token coloring the border.
func (c *Container) WithBorderColor(token uitheme.ColorToken) *Container {
	if token != "" {
		c.borderToken = token
	}
	return c
}

// WithPadding sets the padding inside the border.
func (c *Container) WithPadding(padding Spacing) *Container {
	c.padding = padding
	return c
}

// WithMargin sets the margin outside the border.
func (c *Container) WithMargin(margin Spacing) *Container {
	c.margin = margin
	return c
}

// WithWidth fixes the outer width, border and margin excluded.
func (c *Container) WithWidth(width int) *Container {
	c.width = width
	return c
}

// WithStyle sets the override style.
func (c *Container) WithStyle(style lipgloss.Style) *Container {
	c.SetStyle(style)
	return c
}

// WithAppliers replaces the theme-based style modifiers.
func (c *Container) WithAppliers(appliers ...StyleFunc) *Container {
	c.SetAppliers(appliers...)
	return c
}

// WithDirection lays the children out in a row or a column.
func (c *Container) WithDirection(dir Direction) *Container {
	c.body.WithDirection(dir)
	return c
}

// WithGap sets the cells between children.
func (c *Container) WithGap(gap int) *Container {
	c.body.WithGap(gap)
	return c
}

// WithCrossAlign sets the cross-axis alignment of the children.
func (c *Container) WithCrossAlign(align CrossAxisAlignment) *Container {
	c.body.WithCrossAlign(align)
	return c
}

// Add appends children.
func (c *Container) Add(children ...ui.Renderable) *Container {
	c.body.Add(children...)
	return c
}

// Children returns the body children.
func (c *Container) Children() []ui.Renderable {
	return c.body.Children()
}

// Layout returns the stack the children are arranged in.
func (c *Container) Layout() *Stack {
	return c.body
}
