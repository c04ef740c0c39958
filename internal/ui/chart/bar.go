package chart

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/vaultkit/internal/ui/components"
	uitheme "github.com/alexisbeaulieu97/vaultkit/internal/ui/theme"
)

// BarChart draws grouped vertical bars growing from the zero line.
type BarChart struct {
	Chart
	series []Series
}

// NewBarChart creates a bar chart. Each series contributes one bar per
// category.
func NewBarChart(opts Options, series ...Series) *BarChart {
	return &BarChart{Chart: newChart(opts), series: series}
}

// SetSeries replaces the data and restarts the entrance.
func (b *BarChart) SetSeries(series ...Series) tea.Cmd {
	b.series = series
	return b.Animate()
}

// Geometry returns bars with heights scaled by progress.
func (b *BarChart) Geometry(progress float64) Geometry {
	var g Geometry
	inner := b.Layout().Inner()
	categories := categoryCount(b.series)
	if categories == 0 || inner.Empty() {
		return g
	}

	labels := hasLabels(b.series)
	if labels {
		inner.H--
		if inner.Empty() {
			return g
		}
	}

	extent := NewExtent(0)
	for _, s := range b.series {
		for _, v := range s.Values {
			extent = extent.Include(v)
		}
	}
	scale := Scale{Domain: extent, From: inner.Bottom(), To: inner.Y}
	base := scale.Map(0)

	groupW := inner.W / float64(categories)
	gap := 0.0
	if groupW >= 3 {
		gap = 1
	}
	barW := (groupW - gap) / float64(len(b.series))

	for i := 0; i < categories; i++ {
		x := inner.X + float64(i)*groupW + gap/2
		for j, s := range b.series {
			if i >= len(s.Values) || !finite(s.Values[i]) {
				continue
			}
			h := (base - scale.Map(s.Values[i])) * progress
			rect := Rect{X: x + float64(j)*barW, Y: base - h, W: barW, H: h}
			if h < 0 {
				rect.Y, rect.H = base, -h
			}
			g.add(Shape{Kind: ShapeRect, Rect: rect, Token: s.tokenAt(j), Opacity: 1})
		}
		if labels {
			g.label(Point{X: x + (groupW-gap)/2, Y: inner.Bottom()}, firstLabel(b.series, i), uitheme.TokenMutedForeground)
		}
	}

	for j, s := range b.series {
		if s.Name != "" {
			g.Legend = append(g.Legend, LegendEntry{Label: s.Name, Token: s.tokenAt(j)})
		}
	}
	return g
}

// View renders with the default theme.
func (b *BarChart) View() string {
	return b.ViewWithContext(components.DefaultContext())
}

// ViewWithContext renders the chart, or "" before the width is measured.
func (b *BarChart) ViewWithContext(ctx components.RenderContext) string {
	return b.render(b, ctx)
}

func categoryCount(series []Series) int {
	n := 0
	for _, s := range series {
		n = max(n, len(s.Values))
	}
	return n
}

func hasLabels(series []Series) bool {
	for _, s := range series {
		if len(s.Labels) > 0 {
			return true
		}
	}
	return false
}

func firstLabel(series []Series, i int) string {
	for _, s := range series {
		if l := s.Label(i); l != "" {
			return l
		}
	}
	return ""
}
