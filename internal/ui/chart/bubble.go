package chart

import (
	"math"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/vaultkit/internal/ui/components"
)

const bubbleOpacity = 0.75

// BubblePoint is a point whose Size sets the bubble radius.
type BubblePoint struct {
	Label string
	X     float64
	Y     float64
	Size  float64
}

func (p BubblePoint) valid() bool {
	return finite(p.X) && finite(p.Y) && finite(p.Size)
}

// BubbleChart scatters sized circles. The entrance grows each radius.
type BubbleChart struct {
	Chart
	points []BubblePoint
}

// NewBubbleChart creates a bubble chart.
func NewBubbleChart(opts Options, points ...BubblePoint) *BubbleChart {
	return &BubbleChart{Chart: newChart(opts), points: points}
}

// SetPoints replaces the data and restarts the entrance.
func (b *BubbleChart) SetPoints(points ...BubblePoint) tea.Cmd {
	b.points = points
	return b.Animate()
}

// Geometry returns one circle per valid point.
func (b *BubbleChart) Geometry(progress float64) Geometry {
	var g Geometry
	inner := b.Layout().Inner()
	if inner.Empty() {
		return g
	}

	var xs, ys, sizes []float64
	for _, p := range b.points {
		if p.valid() {
			xs, ys, sizes = append(xs, p.X), append(ys, p.Y), append(sizes, p.Size)
		}
	}
	if len(xs) == 0 {
		return g
	}

	maxR := math.Max(math.Min(inner.W, inner.H*CellAspect)/8, 1)
	minR := maxR / 4
	xScale := Scale{Domain: NewExtent(xs...), From: inner.X + maxR, To: inner.Right() - maxR}
	yScale := Scale{Domain: NewExtent(ys...), From: inner.Bottom() - maxR/CellAspect, To: inner.Y + maxR/CellAspect}
	sizeScale := Scale{Domain: NewExtent(sizes...), From: minR, To: maxR}

	i := 0
	for _, p := range b.points {
		if !p.valid() {
			continue
		}
		token := paletteToken(i)
		i++
		g.add(Shape{
			Kind: ShapeSector,
			Sector: Sector{
				Center: Point{X: xScale.Map(p.X), Y: yScale.Map(p.Y)},
				Outer:  sizeScale.Map(p.Size) * progress,
				End:    2 * math.Pi,
			},
			Token:   token,
			Opacity: bubbleOpacity,
		})
		if p.Label != "" {
			g.Legend = append(g.Legend, LegendEntry{Label: p.Label, Token: token})
		}
	}
	return g
}

// View renders with the default theme.
func (b *BubbleChart) View() string {
	return b.ViewWithContext(components.DefaultContext())
}

// ViewWithContext renders the chart, or "" before the width is measured.
func (b *BubbleChart) ViewWithContext(ctx components.RenderContext) string {
	return b.render(b, ctx)
}
