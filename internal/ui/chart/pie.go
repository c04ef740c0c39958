package chart

import (
	"fmt"
	"math"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/vaultkit/internal/ui/animation"
	"github.com/alexisbeaulieu97/vaultkit/internal/ui/components"
	uitheme "github.com/alexisbeaulieu97/vaultkit/internal/ui/theme"
)

const (
	doughnutRatio = 0.55
	trackOpacity  = 0.25
)

// radius returns the largest circle radius, in columns, that fits inner.
func radius(inner Rect) float64 {
	return math.Max(math.Min(inner.W/2, inner.H*CellAspect/2), 0)
}

// PieChart draws the first series as slices. A non-zero inner ratio turns
// it into a doughnut. The entrance grows the radius.
type PieChart struct {
	Chart
	series Series
	inner  float64
}

// NewPieChart creates a pie chart.
func NewPieChart(opts Options, series Series) *PieChart {
	return &PieChart{Chart: newChart(opts), series: series}
}

// NewDoughnutChart creates a pie chart with a hollow center.
func NewDoughnutChart(opts Options, series Series) *PieChart {
	return NewPieChart(opts, series).WithInnerRatio(doughnutRatio)
}

// WithInnerRatio sets the hole radius as a fraction of the outer radius.
func (p *PieChart) WithInnerRatio(ratio float64) *PieChart {
	p.inner = animation.Clamp(ratio)
	return p
}

// SetSeries replaces the data and restarts the entrance.
func (p *PieChart) SetSeries(series Series) tea.Cmd {
	p.series = series
	return p.Animate()
}

// Geometry returns one sector per positive value.
func (p *PieChart) Geometry(progress float64) Geometry {
	var g Geometry
	inner := p.Layout().Inner()
	total := 0.0
	for _, v := range p.series.Values {
		if finite(v) && v > 0 {
			total += v
		}
	}
	if total <= 0 || inner.Empty() {
		return g
	}

	outer := radius(inner) * progress
	start := 0.0
	for i, v := range p.series.Values {
		if !finite(v) || v <= 0 {
			continue
		}
		sweep := v / total * 2 * math.Pi
		token := p.series.tokenAt(i)
		g.add(Shape{
			Kind: ShapeSector,
			Sector: Sector{
				Center: inner.Center(),
				Inner:  outer * p.inner,
				Outer:  outer,
				Start:  start,
				End:    start + sweep,
			},
			Token:   token,
			Opacity: 1,
		})
		start += sweep

		label := p.series.Label(i)
		if label == "" {
			label = fmt.Sprintf("#%d", i+1)
		}
		g.Legend = append(g.Legend, LegendEntry{
			Label: fmt.Sprintf("%s %.0f%%", label, v/total*100),
			Token: token,
		})
	}
	return g
}

// View renders with the default theme.
func (p *PieChart) View() string {
	return p.ViewWithContext(components.DefaultContext())
}

// ViewWithContext renders the chart, or "" before the width is measured.
func (p *PieChart) ViewWithContext(ctx components.RenderContext) string {
	return p.render(p, ctx)
}

// RadialBarChart draws each value as a concentric ring filled relative to
// the largest value. The entrance sweeps the rings open.
type RadialBarChart struct {
	Chart
	series Series
	max    float64
}

// NewRadialBarChart creates a radial bar chart.
func NewRadialBarChart(opts Options, series Series) *RadialBarChart {
	return &RadialBarChart{Chart: newChart(opts), series: series}
}

// WithMax fixes the value that fills a whole ring. By default the largest
// value does.
func (r *RadialBarChart) WithMax(v float64) *RadialBarChart {
	r.max = v
	return r
}

// SetSeries replaces the data and restarts the entrance.
func (r *RadialBarChart) SetSeries(series Series) tea.Cmd {
	r.series = series
	return r.Animate()
}

// Geometry returns a muted track and a value arc per ring.
func (r *RadialBarChart) Geometry(progress float64) Geometry {
	var g Geometry
	inner := r.Layout().Inner()
	n := len(r.series.Values)
	if n == 0 || inner.Empty() {
		return g
	}

	limit := r.max
	if limit <= 0 {
		limit = NewExtent(r.series.Values...).Max
	}
	if limit <= 0 || !finite(limit) {
		limit = 1
	}

	outer := radius(inner)
	ring := math.Max(outer/(float64(n)*1.5), 1)
	center := inner.Center()
	for i, v := range r.series.Values {
		o := outer - float64(i)*ring*1.5
		in := o - ring
		if in < 0 {
			break
		}
		token := r.series.tokenAt(i)
		g.add(Shape{
			Kind:    ShapeSector,
			Sector:  Sector{Center: center, Inner: in, Outer: o, End: 2 * math.Pi},
			Token:   uitheme.TokenMuted,
			Opacity: trackOpacity,
		})
		if finite(v) && v > 0 {
			g.add(Shape{
				Kind:    ShapeSector,
				Sector:  Sector{Center: center, Inner: in, Outer: o, End: 2 * math.Pi * animation.Clamp(v/limit) * progress},
				Token:   token,
				Opacity: 1,
			})
		}
		if label := r.series.Label(i); label != "" {
			g.Legend = append(g.Legend, LegendEntry{Label: label, Token: token})
		}
	}
	return g
}

// View renders with the default theme.
func (r *RadialBarChart) View() string {
	return r.ViewWithContext(components.DefaultContext())
}

// ViewWithContext renders the chart, or "" before the width is measured.
func (r *RadialBarChart) ViewWithContext(ctx components.RenderContext) string {
	return r.render(r, ctx)
}

// ProgressRing shows a single fraction as a ring with the percentage in
// the middle.
type ProgressRing struct {
	Chart
	value float64
	token uitheme.ColorToken
}

// NewProgressRing creates a ring for value in [0,1].
func NewProgressRing(opts Options, value float64) *ProgressRing {
	opts.Legend = false
	return &ProgressRing{Chart: newChart(opts), value: animation.Clamp(value), token: uitheme.TokenPrimary}
}

// WithToken sets the ring color.
func (p *ProgressRing) WithToken(token uitheme.ColorToken) *ProgressRing {
	p.token = token
	return p
}

// SetValue changes the fraction and restarts the entrance.
func (p *ProgressRing) SetValue(value float64) tea.Cmd {
	p.value = animation.Clamp(value)
	return p.Animate()
}

// Value returns the fraction shown.
func (p *ProgressRing) Value() float64 {
	return p.value
}

// Geometry returns the track, the value arc and the percentage label.
func (p *ProgressRing) Geometry(progress float64) Geometry {
	var g Geometry
	inner := p.Layout().Inner()
	outer := radius(inner)
	if outer <= 0 {
		return g
	}
	center := inner.Center()
	thickness := math.Max(outer*0.3, 1)

	g.add(Shape{
		Kind:    ShapeSector,
		Sector:  Sector{Center: center, Inner: outer - thickness, Outer: outer, End: 2 * math.Pi},
		Token:   uitheme.TokenMuted,
		Opacity: trackOpacity,
	})
	if p.value > 0 {
		g.add(Shape{
			Kind:    ShapeSector,
			Sector:  Sector{Center: center, Inner: outer - thickness, Outer: outer, End: 2 * math.Pi * p.value * progress},
			Token:   p.token,
			Opacity: 1,
		})
	}
	g.label(center, fmt.Sprintf("%.0f%%", p.value*progress*100), uitheme.TokenForeground)
	return g
}

// View renders with the default theme.
func (p *ProgressRing) View() string {
	return p.ViewWithContext(components.DefaultContext())
}

// ViewWithContext renders the ring, or "" before the width is measured.
func (p *ProgressRing) ViewWithContext(ctx components.RenderContext) string {
	return p.render(p, ctx)
}
