package components

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	uitheme "github.com/alexisbeaulieu97/vaultkit/internal/ui/theme"
)

// Text is a primitive component for rendering styled text content. It
// defaults to the text token; callers may pick another token and pass
// per-scheme overrides.
type Text struct {
	BaseComponent
	content   string
	token     uitheme.ColorToken
	overrides uitheme.Overrides
	wrap      int
}

// NewText creates a new text component with the given content.
func NewText(content string) *Text {
	return &Text{
		BaseComponent: NewBaseComponent(),
		content:       content,
		token:         uitheme.TokenText,
	}
}

// View renders the text with its styling.
func (t *Text) View() string {
	return t.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the text with the given theme context.
func (t *Text) ViewWithContext(ctx RenderContext) string {
	base := lipgloss.NewStyle().Foreground(ctx.Theme.Color(t.token, t.overrides))
	content := t.content
	if t.wrap > 0 {
		content = wordwrap.String(content, t.wrap)
	}
	return t.ComposeStyle(ctx.Theme, base).Render(content)
}

// Content returns the text content.
func (t *Text) Content() string {
	return t.content
}

// SetContent updates the text content.
func (t *Text) SetContent(content string) *Text {
	t.content = content
	return t
}

// WithToken sets the color token and optional light/dark overrides.
func (t *Text) WithToken(token uitheme.ColorToken, overrides ...uitheme.Overrides) *Text {
	t.token = token
	if len(overrides) > 0 {
		t.overrides = overrides[0]
	}
	return t
}

// WithWrap word-wraps the content at width cells.
func (t *Text) WithWrap(width int) *Text {
	t.wrap = width
	return t
}

// WithStyle sets the lipgloss style directly.
func (t *Text) WithStyle(style lipgloss.Style) *Text {
	t.SetStyle(style)
	return t
}

// WithAppliers applies theme-based style modifiers.
func (t *Text) WithAppliers(appliers ...StyleFunc) *Text {
	t.SetAppliers(appliers...)
	return t
}

// WithStrategy sets a custom styling strategy.
func (t *Text) WithStrategy(strategy StyleStrategy) *Text {
	t.SetStrategy(strategy)
	return t
}

// Theme-aware text constructor helpers

// BoldText creates bold text.
func BoldText(content string) *Text {
	return NewText(content).WithAppliers(Bold(true))
}

// EmphasisText creates emphasized text using theme typography.
func EmphasisText(content string) *Text {
	return NewText(content).WithAppliers(Typography(TypographyVariantEmphasis))
}

// CodeText creates code-styled text using theme typography.
func CodeText(content string) *Text {
	return NewText(content).WithAppliers(Typography(TypographyVariantCode))
}

// TitleText creates title text using theme typography.
func TitleText(content string) *Text {
	return NewText(content).WithAppliers(Typography(TypographyVariantTitle))
}

// SubtitleText creates subtitle text in the muted foreground.
func SubtitleText(content string) *Text {
	return NewText(content).WithToken(uitheme.TokenMutedForeground)
}

// MutedText creates caption-sized muted text.
func MutedText(content string) *Text {
	return NewText(content).WithToken(uitheme.TokenMutedForeground).WithAppliers(Faint(true))
}
