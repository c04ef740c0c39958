package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/vaultkit/internal/ui"
	uitheme "github.com/alexisbeaulieu97/vaultkit/internal/ui/theme"
)

// Panel groups content under an optional header and footer, each set off
// by a divider. It is quieter than Card and meant for layout sections.
type Panel struct {
	*Container
	header ui.Renderable
	footer ui.Renderable
}

// NewPanel creates a panel framed in the border color.
func NewPanel(children ...ui.Renderable) *Panel {
	c := NewContainer(children...).
		WithPadding(HorizontalSpacing(1)).
		WithBorder(lipgloss.RoundedBorder()).
		WithAppliers(ForegroundToken(uitheme.TokenCardForeground))
	return &Panel{Container: c}
}

// WithHeader replaces the header.
func (p *Panel) WithHeader(header ui.Renderable) *Panel {
	p.header = header
	return p
}

// WithTitle sets a level 3 header.
func (p *Panel) WithTitle(title string) *Panel {
	return p.WithHeader(NewHeader(title).WithLevel(3))
}

// WithFooter replaces the footer.
func (p *Panel) WithFooter(footer ui.Renderable) *Panel {
	p.footer = footer
	return p
}

// WithBorder replaces the border.
func (p *Panel) WithBorder(border lipgloss.Border) *Panel {
	p.Container.WithBorder(border)
	return p
}

// WithAccent colors the border with token, e.g. the ring color for focus.
func (p *Panel) WithAccent(token uitheme.ColorToken) *Panel {
	p.Container.WithBorderColor(token)
	return p
}

// Sections returns how many of header, body and footer will render.
func (p *Panel) Sections() int {
	n := 0
	if p.header != nil {
		n++
	}
	if len(p.Children()) > 0 {
		n++
	}
	if p.footer != nil {
		n++
	}
	return n
}

// View renders the panel.
func (p *Panel) View() string {
	return p.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the sections separated by dividers as wide as
// the panel content.
func (p *Panel) ViewWithContext(ctx RenderContext) string {
	style, inner := p.frame(ctx)

	var sections []string
	if p.header != nil {
		sections = append(sections, renderChild(p.header, inner))
	}
	if len(p.Children()) > 0 {
		sections = append(sections, p.Layout().ViewWithContext(inner))
	}
	if p.footer != nil {
		sections = append(sections, renderChild(p.footer, inner))
	}
	if len(sections) == 0 {
		return style.Render("")
	}

	width := inner.Constraints.MaxWidth
	if width <= 0 {
		for _, s := range sections {
			width = max(width, lipgloss.Width(s))
		}
	}
	divider := HorizontalDivider().WithWidth(width).ViewWithContext(inner)

	rows := make([]string, 0, len(sections)*2-1)
	for i, s := range sections {
		if i > 0 {
			rows = append(rows, divider)
		}
		rows = append(rows, s)
	}
	return style.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}
