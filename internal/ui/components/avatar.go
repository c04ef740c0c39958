package components

import (
	"strings"
	"unicode"

	"github.com/charmbracelet/lipgloss"

	uitheme "github.com/alexisbeaulieu97/vaultkit/internal/ui/theme"
)

type AvatarSize int

const (
	AvatarSizeDefault AvatarSize = iota
	AvatarSizeSmall
	AvatarSizeLarge
)

// Avatar shows an image, falling back to the name's initials when there is
// no image or it fails to load.
type Avatar struct {
	BaseComponent
	name  string
	image *Image
	size  AvatarSize
}

// NewAvatar creates an initials-only avatar for name.
func NewAvatar(name string) *Avatar {
	return &Avatar{
		BaseComponent: NewBaseComponent(),
		name:          name,
	}
}

// WithImage sets the image source.
func (a *Avatar) WithImage(source string, loader ImageLoader) *Avatar {
	a.image = NewImage(source, loader).WithAlt(Initials(a.name))
	return a
}

// WithSize sets the avatar size.
func (a *Avatar) WithSize(size AvatarSize) *Avatar {
	a.size = size
	return a
}

// WithStyle sets the override style.
func (a *Avatar) WithStyle(style lipgloss.Style) *Avatar {
	a.SetStyle(style)
	return a
}

// View renders the avatar.
func (a *Avatar) View() string {
	return a.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the image when it loads, else the initials.
func (a *Avatar) ViewWithContext(ctx RenderContext) string {
	theme := ctx.Theme
	w, h := avatarCells(a.size)

	if a.image != nil {
		a.image.WithSize(w, h)
		if a.image.Load() == nil {
			return a.ComputeStyle(theme).Render(a.image.ViewWithContext(ctx))
		}
	}

	base := lipgloss.NewStyle().
		Width(w).
		Height(h).
		Align(lipgloss.Center, lipgloss.Center).
		Background(theme.Color(uitheme.TokenMuted)).
		Foreground(theme.Color(uitheme.TokenMutedForeground)).
		Bold(true)
	return a.ComposeStyle(theme, base).Render(Initials(a.name))
}

func avatarCells(size AvatarSize) (int, int) {
	switch size {
	case AvatarSizeSmall:
		return 4, 1
	case AvatarSizeLarge:
		return 8, 3
	default:
		return 6, 1
	}
}

// Initials returns up to two uppercase initials from name.
func Initials(name string) string {
	fields := strings.FieldsFunc(name, func(r rune) bool {
		return unicode.IsSpace(r) || r == '-' || r == '_' || r == '.'
	})
	initials := make([]rune, 0, 2)
	for _, f := range fields {
		initials = append(initials, unicode.ToUpper([]rune(f)[0]))
		if len(initials) == 2 {
			break
		}
	}
	if len(initials) == 0 {
		return "?"
	}
	return string(initials)
}
