package chart

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/vaultkit/internal/ui/components"
)

const areaOpacity = 0.2

// LineChart draws one polyline per series, optionally filling the area
// under it. The entrance draws the stroke from left to right.
type LineChart struct {
	Chart
	series []Series
	area   bool
}

// NewLineChart creates a line chart.
func NewLineChart(opts Options, series ...Series) *LineChart {
	return &LineChart{Chart: newChart(opts), series: series}
}

// NewAreaChart creates a line chart with filled areas.
func NewAreaChart(opts Options, series ...Series) *LineChart {
	return NewLineChart(opts, series...).WithArea(true)
}

// WithArea toggles the area fill.
func (l *LineChart) WithArea(area bool) *LineChart {
	l.area = area
	return l
}

// SetSeries replaces the data and restarts the entrance.
func (l *LineChart) SetSeries(series ...Series) tea.Cmd {
	l.series = series
	return l.Animate()
}

// Geometry returns the stroked series trimmed to progress.
func (l *LineChart) Geometry(progress float64) Geometry {
	var g Geometry
	inner := l.Layout().Inner()
	n := categoryCount(l.series)
	if n == 0 || inner.Empty() {
		return g
	}

	var all []float64
	for _, s := range l.series {
		all = append(all, s.Values...)
	}
	xs := Scale{Domain: NewExtent(0, float64(n-1)), From: inner.X, To: inner.Right() - 1}
	ys := Scale{Domain: NewExtent(all...), From: inner.Bottom() - 1, To: inner.Y}

	for j, s := range l.series {
		var pts []Point
		for i, v := range s.Values {
			if !finite(v) {
				continue
			}
			pts = append(pts, Point{X: xs.Map(float64(i)), Y: ys.Map(v)})
		}
		if len(pts) == 0 {
			continue
		}

		token := s.tokenAt(j)
		if l.area && len(pts) > 1 {
			area := Path{}.MoveTo(pts[0])
			for _, p := range pts[1:] {
				area = area.LineTo(p)
			}
			area = area.
				LineTo(Point{X: pts[len(pts)-1].X + 1, Y: inner.Bottom()}).
				LineTo(Point{X: pts[0].X, Y: inner.Bottom()}).
				Close()
			g.add(Shape{Kind: ShapePolygon, Path: area, Token: token, Opacity: areaOpacity * progress})
		}

		line := Path{}.MoveTo(pts[0])
		for _, p := range pts[1:] {
			line = line.LineTo(p)
		}
		if trimmed := line.Trim(progress); !trimmed.Empty() {
			g.add(Shape{Kind: ShapePolyline, Path: trimmed, Token: token, Opacity: 1})
		}
		if s.Name != "" {
			g.Legend = append(g.Legend, LegendEntry{Label: s.Name, Token: token})
		}
	}
	return g
}

// View renders with the default theme.
func (l *LineChart) View() string {
	return l.ViewWithContext(components.DefaultContext())
}

// ViewWithContext renders the chart, or "" before the width is measured.
func (l *LineChart) ViewWithContext(ctx components.RenderContext) string {
	return l.render(l, ctx)
}
