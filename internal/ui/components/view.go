package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/vaultkit/internal/ui"
	"github.com/alexisbeaulieu97/vaultkit/internal/ui/lifecycle"
	uitheme "github.com/alexisbeaulieu97/vaultkit/internal/ui/theme"
)

// View is a themed box around a vertical stack of children. Its background
// comes from a token, defaulting to the page background.
type View struct {
	BaseComponent
	children   []ui.Renderable
	background uitheme.ColorToken
	overrides  uitheme.Overrides
	gap        int
}

// NewView creates a view over children.
func NewView(children ...ui.Renderable) *View {
	return &View{
		BaseComponent: NewBaseComponent(),
		children:      children,
		background:    uitheme.TokenBackground,
	}
}

// View renders the view.
func (v *View) View() string {
	return v.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the children on the themed background.
func (v *View) ViewWithContext(ctx RenderContext) string {
	base := lipgloss.NewStyle().Background(ctx.Theme.Color(v.background, v.overrides))
	style := v.ComposeStyle(ctx.Theme, base)
	content := VStack(v.children...).WithGap(v.gap).ViewWithContext(ctx)
	return style.Render(content)
}

// WithBackground sets the background token and optional overrides.
func (v *View) WithBackground(token uitheme.ColorToken, overrides ...uitheme.Overrides) *View {
	v.background = token
	if len(overrides) > 0 {
		v.overrides = overrides[0]
	}
	return v
}

// WithGap sets the rows between children.
func (v *View) WithGap(gap int) *View {
	v.gap = gap
	return v
}

// Add appends children.
func (v *View) Add(children ...ui.Renderable) *View {
	v.children = append(v.children, children...)
	return v
}

// WithStyle sets the override style.
func (v *View) WithStyle(style lipgloss.Style) *View {
	v.SetStyle(style)
	return v
}

// WithAppliers applies theme-based style modifiers.
func (v *View) WithAppliers(appliers ...StyleFunc) *View {
	v.AddAppliers(appliers...)
	return v
}

// Screen fills the measured terminal area with the page background and
// keeps content inside a safe padding.
type Screen struct {
	BaseComponent
	content ui.Renderable
	size    lifecycle.Size
	safe    Spacing
	align   lipgloss.Position
}

// NewScreen creates a screen around content.
func NewScreen(content ui.Renderable) *Screen {
	return &Screen{
		BaseComponent: NewBaseComponent(),
		content:       content,
		safe:          SymmetricSpacing(1, 2),
		align:         lipgloss.Left,
	}
}

// SetSize records the measured area. A zero size renders content unboxed.
func (s *Screen) SetSize(size lifecycle.Size) {
	s.size = size
}

// Size returns the last measured area.
func (s *Screen) Size() lifecycle.Size {
	return s.size
}

// ContentWidth is the width left inside the safe padding.
func (s *Screen) ContentWidth() int {
	w := s.size.Width - s.safe.Horizontal()
	if w < 0 {
		return 0
	}
	return w
}

// WithSafeArea replaces the safe padding.
func (s *Screen) WithSafeArea(safe Spacing) *Screen {
	s.safe = safe
	return s
}

// WithAlign sets horizontal placement of the content.
func (s *Screen) WithAlign(pos lipgloss.Position) *Screen {
	s.align = pos
	return s
}

// WithContent replaces the content.
func (s *Screen) WithContent(content ui.Renderable) *Screen {
	s.content = content
	return s
}

// WithStyle sets the override style.
func (s *Screen) WithStyle(style lipgloss.Style) *Screen {
	s.SetStyle(style)
	return s
}

// View renders the screen.
func (s *Screen) View() string {
	return s.ViewWithContext(DefaultContext())
}

// ViewWithContext renders content padded and sized to the measured area.
func (s *Screen) ViewWithContext(ctx RenderContext) string {
	theme := ctx.Theme
	base := lipgloss.NewStyle().
		Foreground(theme.Color(uitheme.TokenForeground)).
		Background(theme.Color(uitheme.TokenBackground)).
		Padding(s.safe.Top, s.safe.Right, s.safe.Bottom, s.safe.Left)

	if s.size.Width > 0 {
		base = base.Width(s.size.Width)
		ctx = ctx.WithParentWidth(s.ContentWidth()).WithConstraints(WithMaxWidth(s.ContentWidth()))
	}
	if s.size.Height > 0 {
		base = base.Height(s.size.Height)
	}

	content := renderChild(s.content, ctx)
	if s.size.Width > 0 {
		content = lipgloss.PlaceHorizontal(s.ContentWidth(), s.align, content)
	}
	return s.ComposeStyle(theme, base).Render(content)
}
