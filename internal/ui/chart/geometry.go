package chart

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// CellAspect is how many times taller a terminal cell is than it is wide.
// Radii are measured in columns; vertical offsets are divided by CellAspect.
const CellAspect = 2.0

// Extent is the closed value range of one dimension.
type Extent struct {
	Min, Max float64
}

// NewExtent returns the range covering values. NaN and infinite values are
// ignored; with nothing left the extent is {0, 0}.
func NewExtent(values ...float64) Extent {
	var (
		e     Extent
		found bool
	)
	for _, v := range values {
		if !finite(v) {
			continue
		}
		if !found {
			e = Extent{Min: v, Max: v}
			found = true
			continue
		}
		e = e.Include(v)
	}
	return e
}

// Include widens the extent to cover v.
func (e Extent) Include(v float64) Extent {
	if !finite(v) {
		return e
	}
	return Extent{Min: math.Min(e.Min, v), Max: math.Max(e.Max, v)}
}

// Span is Max-Min, or 1 when the range has collapsed.
func (e Extent) Span() float64 {
	span := e.Max - e.Min
	if span == 0 || !finite(span) {
		return 1
	}
	return span
}

// Normalize maps v into [0,1] for values inside the extent.
func (e Extent) Normalize(v float64) float64 {
	if !finite(v) {
		return 0
	}
	return (v - e.Min) / e.Span()
}

// Scale maps a domain linearly onto the range From..To.
type Scale struct {
	Domain Extent
	From   float64
	To     float64
}

// Map converts a data value into a coordinate.
func (s Scale) Map(v float64) float64 {
	return s.From + s.Domain.Normalize(v)*(s.To-s.From)
}

// Point is a canvas coordinate in cells.
type Point struct {
	X, Y float64
}

// Polar returns the point at radius r and angle theta from center. Angles
// are radians clockwise from twelve o'clock.
func Polar(center Point, r, theta float64) Point {
	return Point{
		X: center.X + r*math.Sin(theta),
		Y: center.Y - r*math.Cos(theta)/CellAspect,
	}
}

// Rect is an axis-aligned rectangle.
type Rect struct {
	X, Y, W, H float64
}

// Empty reports whether the rectangle has no area.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Right is the x coordinate of the right edge.
func (r Rect) Right() float64 { return r.X + r.W }

// Bottom is the y coordinate of the bottom edge.
func (r Rect) Bottom() float64 { return r.Y + r.H }

// Center is the midpoint of the rectangle.
func (r Rect) Center() Point {
	return Point{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// Layout is the measured size of a chart plus its padding.
type Layout struct {
	Width   int
	Height  int
	Padding int
}

// Inner returns the drawable area.
func (l Layout) Inner() Rect {
	w := l.Width - 2*l.Padding
	h := l.Height - 2*l.Padding
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return Rect{X: float64(l.Padding), Y: float64(l.Padding), W: float64(w), H: float64(h)}
}

// PathOp is one path command.
type PathOp int

const (
	OpMove PathOp = iota
	OpLine
	OpArc
	OpClose
)

// Command is a single path step. Radius, Large and Sweep are used by OpArc.
type Command struct {
	Op     PathOp
	To     Point
	Radius float64
	Large  bool
	Sweep  bool
}

// Path is a sequence of drawing commands.
type Path struct {
	cmds []Command
}

// MoveTo starts a new subpath.
func (p Path) MoveTo(pt Point) Path {
	return p.push(Command{Op: OpMove, To: pt})
}

// LineTo draws a straight segment.
func (p Path) LineTo(pt Point) Path {
	return p.push(Command{Op: OpLine, To: pt})
}

// ArcTo draws an elliptical arc with horizontal radius r.
func (p Path) ArcTo(r float64, large, sweep bool, pt Point) Path {
	return p.push(Command{Op: OpArc, To: pt, Radius: r, Large: large, Sweep: sweep})
}

// Close closes the current subpath.
func (p Path) Close() Path {
	return p.push(Command{Op: OpClose})
}

func (p Path) push(c Command) Path {
	cmds := make([]Command, len(p.cmds), len(p.cmds)+1)
	copy(cmds, p.cmds)
	return Path{cmds: append(cmds, c)}
}

// Commands returns a copy of the commands.
func (p Path) Commands() []Command {
	out := make([]Command, len(p.cmds))
	copy(out, p.cmds)
	return out
}

// Empty reports whether the path has no commands.
func (p Path) Empty() bool {
	return len(p.cmds) == 0
}

// Points returns the end point of every move, line and arc command.
func (p Path) Points() []Point {
	pts := make([]Point, 0, len(p.cmds))
	for _, c := range p.cmds {
		if c.Op != OpClose {
			pts = append(pts, c.To)
		}
	}
	return pts
}

// Length sums the straight distance between consecutive points. Arcs count
// as their chord.
func (p Path) Length() float64 {
	total := 0.0
	pts := p.Points()
	for i := 1; i < len(pts); i++ {
		total += distance(pts[i-1], pts[i])
	}
	return total
}

// Trim keeps the leading fraction of a polyline, cutting the last segment
// where the length runs out. It animates a stroke being drawn.
func (p Path) Trim(fraction float64) Path {
	pts := p.Points()
	if len(pts) == 0 || fraction <= 0 {
		return Path{}
	}
	if fraction >= 1 {
		return p
	}

	remaining := p.Length() * fraction
	out := Path{}.MoveTo(pts[0])
	for i := 1; i < len(pts); i++ {
		seg := distance(pts[i-1], pts[i])
		if seg >= remaining {
			if seg > 0 {
				t := remaining / seg
				out = out.LineTo(Point{
					X: pts[i-1].X + (pts[i].X-pts[i-1].X)*t,
					Y: pts[i-1].Y + (pts[i].Y-pts[i-1].Y)*t,
				})
			}
			return out
		}
		remaining -= seg
		out = out.LineTo(pts[i])
	}
	return out
}

// String renders the path as an SVG path data attribute.
func (p Path) String() string {
	var b strings.Builder
	for i, c := range p.cmds {
		if i > 0 {
			b.WriteByte(' ')
		}
		switch c.Op {
		case OpMove:
			fmt.Fprintf(&b, "M%s %s", num(c.To.X), num(c.To.Y))
		case OpLine:
			fmt.Fprintf(&b, "L%s %s", num(c.To.X), num(c.To.Y))
		case OpArc:
			fmt.Fprintf(&b, "A%s %s 0 %d %d %s %s",
				num(c.Radius), num(c.Radius/CellAspect), flag(c.Large), flag(c.Sweep), num(c.To.X), num(c.To.Y))
		case OpClose:
			b.WriteByte('Z')
		}
	}
	return b.String()
}

// Sector is a ring segment. A zero Inner radius is a pie slice; a sweep of
// a full turn is a circle or ring.
type Sector struct {
	Center Point
	Inner  float64
	Outer  float64
	Start  float64
	End    float64
}

// Sweep returns the covered angle clamped to one full turn.
func (s Sector) Sweep() float64 {
	return math.Min(math.Max(s.End-s.Start, 0), 2*math.Pi)
}

// Contains reports whether a canvas point lies inside the sector.
func (s Sector) Contains(pt Point) bool {
	dx := pt.X - s.Center.X
	dy := (pt.Y - s.Center.Y) * CellAspect
	r := math.Hypot(dx, dy)
	if r > s.Outer || r < s.Inner {
		return false
	}
	sweep := s.Sweep()
	if sweep >= 2*math.Pi {
		return true
	}
	angle := math.Atan2(dx, -dy)
	if angle < 0 {
		angle += 2 * math.Pi
	}
	start := math.Mod(s.Start, 2*math.Pi)
	if start < 0 {
		start += 2 * math.Pi
	}
	rel := angle - start
	if rel < 0 {
		rel += 2 * math.Pi
	}
	return rel <= sweep
}

// Path returns the outline of the sector.
func (s Sector) Path() Path {
	sweep := s.Sweep()
	if sweep <= 0 || s.Outer <= 0 {
		return Path{}
	}
	if sweep >= 2*math.Pi {
		// An SVG arc cannot start and end on the same point, so full turns
		// are drawn as two halves.
		top, bottom := Polar(s.Center, s.Outer, 0), Polar(s.Center, s.Outer, math.Pi)
		p := Path{}.MoveTo(top).ArcTo(s.Outer, false, true, bottom).ArcTo(s.Outer, false, true, top).Close()
		if s.Inner > 0 {
			itop, ibottom := Polar(s.Center, s.Inner, 0), Polar(s.Center, s.Inner, math.Pi)
			p = p.MoveTo(itop).ArcTo(s.Inner, false, false, ibottom).ArcTo(s.Inner, false, false, itop).Close()
		}
		return p
	}

	end := s.Start + sweep
	large := sweep > math.Pi
	p := Path{}.
		MoveTo(Polar(s.Center, s.Outer, s.Start)).
		ArcTo(s.Outer, large, true, Polar(s.Center, s.Outer, end))
	if s.Inner > 0 {
		p = p.LineTo(Polar(s.Center, s.Inner, end)).
			ArcTo(s.Inner, large, false, Polar(s.Center, s.Inner, s.Start))
	} else {
		p = p.LineTo(s.Center)
	}
	return p.Close()
}

func distance(a, b Point) float64 {
	return math.Hypot(b.X-a.X, b.Y-a.Y)
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func num(v float64) string {
	return strconv.FormatFloat(math.Round(v*100)/100, 'f', -1, 64)
}

func flag(b bool) int {
	if b {
		return 1
	}
	return 0
}
