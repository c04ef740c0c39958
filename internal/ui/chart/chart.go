// Package chart maps numeric data to terminal geometry. The chart types are
// thin adapters over one shared model: extents and linear scales place the
// data, a single animation timeline scales the animated dimension, and a
// Canvas rasterises the result.
package chart

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"

	"github.com/alexisbeaulieu97/vaultkit/internal/ui/animation"
	"github.com/alexisbeaulieu97/vaultkit/internal/ui/components"
	uitheme "github.com/alexisbeaulieu97/vaultkit/internal/ui/theme"
)

const (
	defaultHeight   = 10
	defaultPadding  = 1
	defaultDuration = 600 * time.Millisecond
)

// Options configures the shared chart behavior.
type Options struct {
	Title    string
	Legend   bool
	Height   int
	Padding  int
	Duration time.Duration
	Easing   animation.Easing
}

// DefaultOptions returns a 10 row chart with a linear 600ms entrance.
func DefaultOptions() Options {
	return Options{
		Legend:   true,
		Height:   defaultHeight,
		Padding:  defaultPadding,
		Duration: defaultDuration,
		Easing:   animation.EasingLinear,
	}
}

func (o Options) normalize() Options {
	if o.Height <= 0 {
		o.Height = defaultHeight
	}
	if o.Padding < 0 {
		o.Padding = 0
	}
	if o.Duration < 0 {
		o.Duration = 0
	}
	return o
}

// Series is one named run of values. Labels name the categories or axes
// the values belong to. An empty Token picks a chart color by position.
type Series struct {
	Name   string
	Labels []string
	Values []float64
	Token  uitheme.ColorToken
}

// Label returns the label of value i, or "".
func (s Series) Label(i int) string {
	if i < 0 || i >= len(s.Labels) {
		return ""
	}
	return s.Labels[i]
}

func (s Series) tokenAt(i int) uitheme.ColorToken {
	if s.Token != "" {
		return s.Token
	}
	return paletteToken(i)
}

func paletteToken(i int) uitheme.ColorToken {
	tokens := uitheme.ChartTokens()
	return tokens[i%len(tokens)]
}

// geometer is implemented by every chart type.
type geometer interface {
	Geometry(progress float64) Geometry
}

// Chart holds what every chart type shares: the measured width, the options
// and the entrance timeline. The width starts at 0 and nothing is drawn
// until SetWidth reports the real size.
type Chart struct {
	components.BaseComponent
	opts     Options
	width    int
	timeline *animation.Timeline
	now      func() time.Time
}

func newChart(opts Options) Chart {
	opts = opts.normalize()
	return Chart{
		BaseComponent: components.NewBaseComponent(),
		opts:          opts,
		timeline:      animation.NewTimeline(opts.Duration, opts.Easing),
		now:           time.Now,
	}
}

// Options returns the chart options.
func (c *Chart) Options() Options {
	return c.opts
}

// SetWidth records the measured width. The first real measurement starts
// the entrance animation.
func (c *Chart) SetWidth(width int) tea.Cmd {
	width = max(width, 0)
	if width == c.width {
		return nil
	}
	first := c.width == 0
	c.width = width
	if first && width > 0 {
		return c.Animate()
	}
	return nil
}

// Width returns the measured width, 0 until measured.
func (c *Chart) Width() int {
	return c.width
}

// Measured reports whether a real width has been set.
func (c *Chart) Measured() bool {
	return c.width > 0
}

// Layout returns the current drawing area.
func (c *Chart) Layout() Layout {
	return Layout{Width: c.width, Height: c.opts.Height, Padding: c.opts.Padding}
}

// Progress returns the entrance progress in [0,1].
func (c *Chart) Progress() float64 {
	return c.timeline.Value()
}

// Timeline exposes the entrance timeline.
func (c *Chart) Timeline() *animation.Timeline {
	return c.timeline
}

// Animate restarts the entrance from 0.
func (c *Chart) Animate() tea.Cmd {
	return c.timeline.Restart(c.now())
}

// Stop halts the entrance animation.
func (c *Chart) Stop() {
	c.timeline.Stop()
}

// Update consumes animation frames.
func (c *Chart) Update(msg tea.Msg) tea.Cmd {
	return c.timeline.Update(msg)
}

func (c *Chart) render(g geometer, ctx components.RenderContext) string {
	if !c.Measured() {
		return ""
	}
	geo := g.Geometry(c.Progress())
	if geo.Empty() {
		return ""
	}

	theme := ctx.Theme
	layout := c.Layout()
	canvas := NewCanvas(layout.Width, layout.Height)
	canvas.DrawGeometry(geo)

	var rows []string
	if c.opts.Title != "" {
		rows = append(rows, components.TypographyStyle(theme, components.TypographyVariantTitle).Render(c.opts.Title))
	}
	rows = append(rows, canvas.Render(ThemeColors(theme)))
	if c.opts.Legend && len(geo.Legend) > 0 {
		rows = append(rows, legend(theme, geo.Legend, layout.Width))
	}
	return c.ComposeStyle(theme, lipgloss.NewStyle()).Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

// ThemeColors resolves chart tokens through theme.
func ThemeColors(theme components.Theme) ColorFunc {
	return func(token uitheme.ColorToken) lipgloss.TerminalColor {
		return theme.Color(token)
	}
}

func legend(theme components.Theme, entries []LegendEntry, width int) string {
	parts := make([]string, 0, len(entries))
	text := lipgloss.NewStyle().Foreground(theme.Color(uitheme.TokenMutedForeground))
	for _, e := range entries {
		swatch := lipgloss.NewStyle().Foreground(theme.Color(e.Token)).Render("■")
		parts = append(parts, swatch+" "+text.Render(e.Label))
	}
	return truncate.StringWithTail(strings.Join(parts, "  "), uint(max(width, 1)), "…")
}
