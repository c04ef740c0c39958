package components

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/vaultkit/internal/logger"
	uitheme "github.com/alexisbeaulieu97/vaultkit/internal/ui/theme"
	vkerrors "github.com/alexisbeaulieu97/vaultkit/pkg/errors"
)

// ImageLoader turns a source reference into renderable cell art.
type ImageLoader interface {
	Load(source string) (string, error)
}

// ImageLoaderFunc adapts a function to ImageLoader.
type ImageLoaderFunc func(string) (string, error)

// Load calls f(source).
func (f ImageLoaderFunc) Load(source string) (string, error) {
	return f(source)
}

// FileImageLoader reads text or ANSI art from files under Root.
type FileImageLoader struct {
	Root string
}

// Load reads source relative to Root.
func (l FileImageLoader) Load(source string) (string, error) {
	if source == "" {
		return "", vkerrors.NewResourceError(source, fmt.Errorf("empty source"))
	}
	path := source
	if l.Root != "" && !filepath.IsAbs(source) {
		path = filepath.Join(l.Root, source)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", vkerrors.NewResourceError(source, err)
	}
	return strings.TrimRight(string(data), "\n"), nil
}

type imageState int

const (
	imagePending imageState = iota
	imageLoaded
	imageFailed
)

// Image renders loaded art, or a fallback placeholder plus optional caption
// when loading fails. Loading is attempted once per image.
type Image struct {
	BaseComponent
	source   string
	loader   ImageLoader
	alt      string
	caption  string
	width    int
	height   int
	state    imageState
	art      string
	loadErr  error
	log      *logger.Logger
	fallback func(Theme, int, int) string
}

// NewImage creates an image for source loaded through loader.
func NewImage(source string, loader ImageLoader) *Image {
	return &Image{
		BaseComponent: NewBaseComponent(),
		source:        source,
		loader:        loader,
		width:         12,
		height:        4,
	}
}

// Load performs the single load attempt. Later calls return the first
// outcome.
func (i *Image) Load() error {
	if i.state != imagePending {
		return i.loadErr
	}
	if i.loader == nil {
		i.loadErr = vkerrors.NewResourceError(i.source, fmt.Errorf("no loader configured"))
	} else {
		i.art, i.loadErr = i.loader.Load(i.source)
	}
	if i.loadErr != nil {
		i.state = imageFailed
		i.log.WithFields(map[string]any{"source": i.source, "error": i.loadErr.Error()}).Debug("image load failed, using fallback")
		return i.loadErr
	}
	i.state = imageLoaded
	return nil
}

// Failed reports whether the load attempt failed.
func (i *Image) Failed() bool {
	return i.state == imageFailed
}

// Err returns the load failure, if any.
func (i *Image) Err() error {
	return i.loadErr
}

// WithAlt sets the text shown inside the placeholder.
func (i *Image) WithAlt(alt string) *Image {
	i.alt = alt
	return i
}

// WithCaption sets a caption shown under the placeholder.
func (i *Image) WithCaption(caption string) *Image {
	i.caption = caption
	return i
}

// WithSize sets the placeholder size in cells and clips loaded art to it.
func (i *Image) WithSize(width, height int) *Image {
	i.width, i.height = width, height
	return i
}

// WithLogger sets the logger receiving fallback events.
func (i *Image) WithLogger(log *logger.Logger) *Image {
	i.log = log
	return i
}

// WithFallback replaces the placeholder renderer.
func (i *Image) WithFallback(fn func(theme Theme, width, height int) string) *Image {
	i.fallback = fn
	return i
}

// WithStyle sets the override style.
func (i *Image) WithStyle(style lipgloss.Style) *Image {
	i.SetStyle(style)
	return i
}

// View renders the image.
func (i *Image) View() string {
	return i.ViewWithContext(DefaultContext())
}

// ViewWithContext loads on first render and draws art or the fallback.
func (i *Image) ViewWithContext(ctx RenderContext) string {
	_ = i.Load()
	theme := ctx.Theme
	style := i.ComputeStyle(theme)

	if i.state == imageLoaded {
		return style.Render(lipgloss.NewStyle().MaxWidth(i.width).MaxHeight(i.height).Render(i.art))
	}

	placeholder := i.placeholder(theme)
	if i.caption == "" {
		return style.Render(placeholder)
	}
	caption := TypographyStyle(theme, TypographyVariantCaption).Render(i.caption)
	return style.Render(lipgloss.JoinVertical(lipgloss.Center, placeholder, caption))
}

func (i *Image) placeholder(theme Theme) string {
	if i.fallback != nil {
		return i.fallback(theme, i.width, i.height)
	}
	label := i.alt
	if label == "" {
		label = "image"
	}
	return lipgloss.NewStyle().
		Width(i.width).
		Height(i.height).
		Align(lipgloss.Center, lipgloss.Center).
		Background(theme.Color(uitheme.TokenMuted)).
		Foreground(theme.Color(uitheme.TokenMutedForeground)).
		Render(label)
}
