package components

import (
	"github.com/charmbracelet/lipgloss"

	uitheme "github.com/alexisbeaulieu97/vaultkit/internal/ui/theme"
)

// Spacer renders a blank block, optionally filled with a theme color so
// gaps inside a colored View do not show the terminal background.
type Spacer struct {
	BaseComponent
	width  int
	height int
	fill   uitheme.ColorToken
}

// NewSpacer creates a width by height spacer. Negative sizes count as 0.
func NewSpacer(width, height int) *Spacer {
	return &Spacer{
		BaseComponent: NewBaseComponent(),
		width:         max(width, 0),
		height:        max(height, 0),
	}
}

// HorizontalSpacer is one row of width columns.
func HorizontalSpacer(width int) *Spacer {
	return NewSpacer(width, 1)
}

// VerticalSpacer is height empty rows.
func VerticalSpacer(height int) *Spacer {
	return NewSpacer(0, height)
}

// View renders the spacer with the default theme.
func (s *Spacer) View() string {
	return s.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the blank block, "" when both sides are 0.
func (s *Spacer) ViewWithContext(ctx RenderContext) string {
	if s.width == 0 && s.height == 0 {
		return ""
	}
	style := lipgloss.NewStyle().Height(max(s.height, 1))
	if s.width > 0 {
		style = style.Width(s.width)
	}
	if s.fill != "" {
		style = style.Background(ctx.Theme.Color(s.fill))
	}
	return s.ComposeStyle(ctx.Theme, style).Render("")
}

// Size returns the spacer's width and height.
func (s *Spacer) Size() (int, int) {
	return s.width, s.height
}

// WithFill paints the block with token.
func (s *Spacer) WithFill(token uitheme.ColorToken) *Spacer {
	s.fill = token
	return s
}

// WithWidth sets the spacer width.
func (s *Spacer) WithWidth(width int) *Spacer {
	s.width = max(width, 0)
	return s
}

// WithHeight sets the spacer height.
func (s *Spacer) WithHeight(height int) *Spacer {
	s.height = max(height, 0)
	return s
}
