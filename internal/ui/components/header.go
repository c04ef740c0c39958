package components

import (
	"github.com/charmbracelet/lipgloss"

	uitheme "github.com/alexisbeaulieu97/vaultkit/internal/ui/theme"
)

// Header is a heading with an optional muted subtitle. Level 1 is the most
// prominent; levels beyond 3 render as plain bold text.
type Header struct {
	BaseComponent
	title    string
	subtitle string
	level    int
}

// NewHeader creates a new header with the given title.
func NewHeader(title string) *Header {
	return &Header{
		BaseComponent: NewBaseComponent(),
		title:         title,
		level:         1,
	}
}

// View renders the header.
func (h *Header) View() string {
	return h.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the header with the given theme context.
func (h *Header) ViewWithContext(ctx RenderContext) string {
	theme := ctx.Theme
	style := h.ComposeStyle(theme, headerStyle(theme, h.level))

	if h.subtitle == "" {
		return style.Render(h.title)
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		style.Render(h.title),
		TypographyStyle(theme, TypographyVariantSubtitle).Render(h.subtitle),
	)
}

func headerStyle(theme Theme, level int) lipgloss.Style {
	style := TypographyStyle(theme, TypographyVariantTitle)
	switch level {
	case 1:
		return style.Foreground(theme.Color(uitheme.TokenPrimary)).Underline(true)
	case 2:
		return style.Foreground(theme.Color(uitheme.TokenPrimary))
	default:
		return style
	}
}

// WithStyle sets the header style.
func (h *Header) WithStyle(style lipgloss.Style) *Header {
	h.SetStyle(style)
	return h
}

// WithAppliers applies theme-based style modifiers.
func (h *Header) WithAppliers(appliers ...StyleFunc) *Header {
	h.SetAppliers(appliers...)
	return h
}

// WithSubtitle adds a subtitle to the header.
func (h *Header) WithSubtitle(subtitle string) *Header {
	h.subtitle = subtitle
	return h
}

// WithLevel sets the header level, clamped to 1..6.
func (h *Header) WithLevel(level int) *Header {
	h.level = min(max(level, 1), 6)
	return h
}

// Title returns the header title.
func (h *Header) Title() string {
	return h.title
}

// Subtitle returns the header subtitle.
func (h *Header) Subtitle() string {
	return h.subtitle
}

// Level returns the header level.
func (h *Header) Level() int {
	return h.level
}
