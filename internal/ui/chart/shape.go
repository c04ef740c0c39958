package chart

import (
	uitheme "github.com/alexisbeaulieu97/vaultkit/internal/ui/theme"
)

// ShapeKind selects how a Shape is drawn.
type ShapeKind int

const (
	// ShapeRect fills Rect.
	ShapeRect ShapeKind = iota
	// ShapePolyline strokes Path.
	ShapePolyline
	// ShapePolygon fills the area enclosed by Path.
	ShapePolygon
	// ShapeSector fills Sector.
	ShapeSector
)

// Shape is one drawable primitive with its color role and opacity.
type Shape struct {
	Kind    ShapeKind
	Rect    Rect
	Path    Path
	Sector  Sector
	Token   uitheme.ColorToken
	Opacity float64
}

// Outline returns the shape as a path, for SVG export.
func (s Shape) Outline() Path {
	switch s.Kind {
	case ShapeRect:
		r := s.Rect
		return Path{}.
			MoveTo(Point{X: r.X, Y: r.Y}).
			LineTo(Point{X: r.Right(), Y: r.Y}).
			LineTo(Point{X: r.Right(), Y: r.Bottom()}).
			LineTo(Point{X: r.X, Y: r.Bottom()}).
			Close()
	case ShapeSector:
		return s.Sector.Path()
	default:
		return s.Path
	}
}

// Label is text placed on the canvas.
type Label struct {
	At    Point
	Text  string
	Token uitheme.ColorToken
}

// LegendEntry names one colored series or slice.
type LegendEntry struct {
	Label string
	Token uitheme.ColorToken
}

// Geometry is everything a chart draws for one progress value.
type Geometry struct {
	Shapes []Shape
	Labels []Label
	Legend []LegendEntry
}

// Empty reports whether there is nothing to draw.
func (g Geometry) Empty() bool {
	return len(g.Shapes) == 0 && len(g.Labels) == 0
}

func (g *Geometry) add(s Shape) {
	g.Shapes = append(g.Shapes, s)
}

func (g *Geometry) label(at Point, text string, token uitheme.ColorToken) {
	if text == "" {
		return
	}
	g.Labels = append(g.Labels, Label{At: at, Text: text, Token: token})
}
