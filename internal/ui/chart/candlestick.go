package chart

import (
	"math"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/vaultkit/internal/ui/components"
	uitheme "github.com/alexisbeaulieu97/vaultkit/internal/ui/theme"
)

// Candle is one open/high/low/close period.
type Candle struct {
	Label string
	Open  float64
	High  float64
	Low   float64
	Close float64
}

// Rising reports whether the period closed at or above its open.
func (c Candle) Rising() bool {
	return c.Close >= c.Open
}

func (c Candle) valid() bool {
	return finite(c.Open) && finite(c.High) && finite(c.Low) && finite(c.Close)
}

// CandlestickChart draws price candles. The entrance fades them in.
type CandlestickChart struct {
	Chart
	candles []Candle
}

// NewCandlestickChart creates a candlestick chart.
func NewCandlestickChart(opts Options, candles ...Candle) *CandlestickChart {
	opts.Legend = false
	return &CandlestickChart{Chart: newChart(opts), candles: candles}
}

// SetCandles replaces the data and restarts the entrance.
func (c *CandlestickChart) SetCandles(candles ...Candle) tea.Cmd {
	c.candles = candles
	return c.Animate()
}

// Geometry returns a wick and a body per valid candle.
func (c *CandlestickChart) Geometry(progress float64) Geometry {
	var g Geometry
	inner := c.Layout().Inner()
	if len(c.candles) == 0 || inner.Empty() || progress <= 0 {
		return g
	}

	var extent Extent
	found := false
	for _, cd := range c.candles {
		if !cd.valid() {
			continue
		}
		if !found {
			extent, found = NewExtent(cd.Low, cd.High, cd.Open, cd.Close), true
			continue
		}
		extent = extent.Include(cd.Low).Include(cd.High).Include(cd.Open).Include(cd.Close)
	}
	if !found {
		return g
	}

	scale := Scale{Domain: extent, From: inner.Bottom() - 1, To: inner.Y}
	slot := inner.W / float64(len(c.candles))
	body := math.Max(slot-1, 1)

	for i, cd := range c.candles {
		if !cd.valid() {
			continue
		}
		token := uitheme.TokenSuccess
		if !cd.Rising() {
			token = uitheme.TokenDestructive
		}
		x := inner.X + float64(i)*slot
		mid := x + body/2

		wick := Path{}.
			MoveTo(Point{X: mid, Y: scale.Map(cd.High)}).
			LineTo(Point{X: mid, Y: scale.Map(cd.Low)})
		g.add(Shape{Kind: ShapePolyline, Path: wick, Token: token, Opacity: progress})

		top := math.Min(scale.Map(cd.Open), scale.Map(cd.Close))
		bottom := math.Max(scale.Map(cd.Open), scale.Map(cd.Close))
		g.add(Shape{
			Kind:    ShapeRect,
			Rect:    Rect{X: x, Y: top, W: body, H: math.Max(bottom-top, 1)},
			Token:   token,
			Opacity: progress,
		})
	}
	return g
}

// View renders with the default theme.
func (c *CandlestickChart) View() string {
	return c.ViewWithContext(components.DefaultContext())
}

// ViewWithContext renders the chart, or "" before the width is measured.
func (c *CandlestickChart) ViewWithContext(ctx components.RenderContext) string {
	return c.render(c, ctx)
}
