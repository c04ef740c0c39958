package chart

import (
	"math"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/vaultkit/internal/ui/components"
	uitheme "github.com/alexisbeaulieu97/vaultkit/internal/ui/theme"
)

const (
	minRadarAxes   = 3
	radarFill      = 0.3
	radarLabelRoom = 0.8
)

// RadarChart draws each series as a polygon over shared axes. Axis names
// come from the first series with labels. The entrance grows the radius.
type RadarChart struct {
	Chart
	series []Series
}

// NewRadarChart creates a radar chart.
func NewRadarChart(opts Options, series ...Series) *RadarChart {
	return &RadarChart{Chart: newChart(opts), series: series}
}

// SetSeries replaces the data and restarts the entrance.
func (r *RadarChart) SetSeries(series ...Series) tea.Cmd {
	r.series = series
	return r.Animate()
}

// Geometry returns the outer web, one filled polygon per series and the
// axis labels. Fewer than three axes draw nothing.
func (r *RadarChart) Geometry(progress float64) Geometry {
	var g Geometry
	inner := r.Layout().Inner()
	axes := categoryCount(r.series)
	if axes < minRadarAxes || inner.Empty() {
		return g
	}

	extent := NewExtent(0)
	for _, s := range r.series {
		for _, v := range s.Values {
			extent = extent.Include(v)
		}
	}
	outer := radius(inner) * radarLabelRoom
	scale := Scale{Domain: extent, From: 0, To: outer}
	center := inner.Center()
	angle := func(i int) float64 { return 2 * math.Pi * float64(i) / float64(axes) }

	web := Path{}
	for i := 0; i < axes; i++ {
		pt := Polar(center, outer, angle(i))
		if i == 0 {
			web = web.MoveTo(pt)
		} else {
			web = web.LineTo(pt)
		}
	}
	g.add(Shape{Kind: ShapePolyline, Path: web.Close(), Token: uitheme.TokenBorder, Opacity: 1})

	for j, s := range r.series {
		if len(s.Values) == 0 {
			continue
		}
		token := s.tokenAt(j)
		poly := Path{}
		for i := 0; i < axes; i++ {
			v := 0.0
			if i < len(s.Values) && finite(s.Values[i]) {
				v = math.Max(s.Values[i], 0)
			}
			pt := Polar(center, scale.Map(v)*progress, angle(i))
			if i == 0 {
				poly = poly.MoveTo(pt)
			} else {
				poly = poly.LineTo(pt)
			}
		}
		poly = poly.Close()
		g.add(Shape{Kind: ShapePolygon, Path: poly, Token: token, Opacity: radarFill})
		g.add(Shape{Kind: ShapePolyline, Path: poly, Token: token, Opacity: 1})
		if s.Name != "" {
			g.Legend = append(g.Legend, LegendEntry{Label: s.Name, Token: token})
		}
	}

	for i := 0; i < axes; i++ {
		at := Polar(center, outer+1, angle(i))
		g.label(at, firstLabel(r.series, i), uitheme.TokenMutedForeground)
	}
	return g
}

// View renders with the default theme.
func (r *RadarChart) View() string {
	return r.ViewWithContext(components.DefaultContext())
}

// ViewWithContext renders the chart, or "" before the width is measured.
func (r *RadarChart) ViewWithContext(ctx components.RenderContext) string {
	return r.render(r, ctx)
}
