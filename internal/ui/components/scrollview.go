package components

import (
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/vaultkit/internal/ui"
	"github.com/alexisbeaulieu97/vaultkit/internal/ui/lifecycle"
)

// ScrollView clips a renderable to a fixed area and scrolls it with the
// viewport key map.
type ScrollView struct {
	BaseComponent
	content  ui.Renderable
	viewport viewport.Model
}

// NewScrollView creates a scroll view of the given size.
func NewScrollView(content ui.Renderable, width, height int) *ScrollView {
	return &ScrollView{
		BaseComponent: NewBaseComponent(),
		content:       content,
		viewport:      viewport.New(width, height),
	}
}

// SetSize resizes the visible area.
func (s *ScrollView) SetSize(size lifecycle.Size) {
	s.viewport.Width = size.Width
	s.viewport.Height = size.Height
}

// SetContent replaces the content, keeping the scroll offset where possible.
func (s *ScrollView) SetContent(content ui.Renderable) {
	s.content = content
}

// Update handles scrolling keys and mouse wheel messages.
func (s *ScrollView) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	s.viewport, cmd = s.viewport.Update(msg)
	return cmd
}

// ScrollTo sets the top visible line.
func (s *ScrollView) ScrollTo(line int) {
	s.viewport.SetYOffset(line)
}

// Offset returns the top visible line.
func (s *ScrollView) Offset() int {
	return s.viewport.YOffset
}

// ScrollPercent reports how far down the content is scrolled.
func (s *ScrollView) ScrollPercent() float64 {
	return s.viewport.ScrollPercent()
}

// WithStyle sets the override style.
func (s *ScrollView) WithStyle(style lipgloss.Style) *ScrollView {
	s.SetStyle(style)
	return s
}

// View renders the scroll view.
func (s *ScrollView) View() string {
	return s.ViewWithContext(DefaultContext())
}

// Refresh renders the content into the viewport so scrolling knows its
// bounds before the next frame is drawn.
func (s *ScrollView) Refresh(ctx RenderContext) {
	offset := s.viewport.YOffset
	s.viewport.SetContent(renderChild(s.content, ctx.WithParentWidth(s.viewport.Width)))
	s.viewport.SetYOffset(offset)
}

// AtBottom reports whether the last line of the content is visible.
func (s *ScrollView) AtBottom() bool {
	return s.viewport.AtBottom()
}

// ViewWithContext renders the visible window of the content.
func (s *ScrollView) ViewWithContext(ctx RenderContext) string {
	s.Refresh(ctx)
	return s.ComputeStyle(ctx.Theme).Render(s.viewport.View())
}
