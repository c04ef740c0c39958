package chart

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	uitheme "github.com/alexisbeaulieu97/vaultkit/internal/ui/theme"
)

// ColorFunc resolves a token to a terminal color.
type ColorFunc func(uitheme.ColorToken) lipgloss.TerminalColor

type cell struct {
	r     rune
	token uitheme.ColorToken
	// wide marks the trailing half of a double-width rune.
	wide bool
}

// Canvas rasterises geometry onto a grid of terminal cells.
type Canvas struct {
	width  int
	height int
	cells  [][]cell
}

// NewCanvas creates a blank canvas. Negative sizes are treated as zero.
func NewCanvas(width, height int) *Canvas {
	width, height = max(width, 0), max(height, 0)
	cells := make([][]cell, height)
	for y := range cells {
		cells[y] = make([]cell, width)
	}
	return &Canvas{width: width, height: height, cells: cells}
}

// Width returns the canvas width in cells.
func (c *Canvas) Width() int { return c.width }

// Height returns the canvas height in cells.
func (c *Canvas) Height() int { return c.height }

// Set writes r at (x, y). Out-of-bounds writes are dropped.
func (c *Canvas) Set(x, y int, r rune, token uitheme.ColorToken) {
	if x < 0 || y < 0 || x >= c.width || y >= c.height {
		return
	}
	c.cells[y][x] = cell{r: r, token: token}
}

// At returns the rune at (x, y), or 0 for blank and out-of-bounds cells.
func (c *Canvas) At(x, y int) rune {
	if x < 0 || y < 0 || x >= c.width || y >= c.height {
		return 0
	}
	return c.cells[y][x].r
}

// Text writes s starting at (x, y). Wide runes take two cells and text
// past the right edge is cut.
func (c *Canvas) Text(x, y int, s string, token uitheme.ColorToken) {
	if y < 0 || y >= c.height {
		return
	}
	for _, r := range s {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		if x+w > c.width {
			return
		}
		if x >= 0 {
			c.cells[y][x] = cell{r: r, token: token}
			if w == 2 {
				c.cells[y][x+1] = cell{token: token, wide: true}
			}
		}
		x += w
	}
}

// Draw rasterises one shape.
func (c *Canvas) Draw(s Shape) {
	fill := shade(s.Opacity)
	if fill == 0 {
		return
	}
	switch s.Kind {
	case ShapeRect:
		c.fillRect(s.Rect, fill, s.Token)
	case ShapePolygon:
		c.fillPolygon(s.Path.Points(), fill, s.Token)
	case ShapeSector:
		c.fillSector(s.Sector, fill, s.Token)
	case ShapePolyline:
		c.stroke(s.Path, s.Token)
	}
}

// DrawGeometry rasterises shapes in order, then labels on top.
func (c *Canvas) DrawGeometry(g Geometry) {
	for _, s := range g.Shapes {
		c.Draw(s)
	}
	for _, l := range g.Labels {
		x := int(math.Round(l.At.X - float64(runewidth.StringWidth(l.Text))/2))
		c.Text(x, int(math.Floor(l.At.Y)), l.Text, l.Token)
	}
}

// Render returns the canvas as styled lines. Runs of cells sharing a token
// are styled together.
func (c *Canvas) Render(color ColorFunc) string {
	lines := make([]string, c.height)
	for y, row := range c.cells {
		var (
			b     strings.Builder
			run   strings.Builder
			token uitheme.ColorToken
		)
		flush := func() {
			if run.Len() == 0 {
				return
			}
			if token == "" || color == nil {
				b.WriteString(run.String())
			} else {
				b.WriteString(lipgloss.NewStyle().Foreground(color(token)).Render(run.String()))
			}
			run.Reset()
		}
		for _, cl := range row {
			if cl.wide {
				continue
			}
			r, t := cl.r, cl.token
			if r == 0 {
				r, t = ' ', ""
			}
			if t != token {
				flush()
				token = t
			}
			run.WriteRune(r)
		}
		flush()
		lines[y] = b.String()
	}
	return strings.Join(lines, "\n")
}

func shade(opacity float64) rune {
	switch {
	case opacity >= 0.75:
		return '█'
	case opacity >= 0.5:
		return '▓'
	case opacity >= 0.25:
		return '▒'
	case opacity > 0:
		return '░'
	default:
		return 0
	}
}

func (c *Canvas) fillRect(r Rect, fill rune, token uitheme.ColorToken) {
	if r.Empty() {
		return
	}
	x0, x1 := int(math.Round(r.X)), int(math.Round(r.Right()))
	y0, y1 := int(math.Round(r.Y)), int(math.Round(r.Bottom()))
	if x1 == x0 {
		x1 = x0 + 1
	}
	if y1 == y0 {
		y1 = y0 + 1
	}
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			c.Set(x, y, fill, token)
		}
	}
}

func (c *Canvas) fillSector(s Sector, fill rune, token uitheme.ColorToken) {
	if s.Outer <= 0 || s.Sweep() <= 0 {
		return
	}
	x0 := int(math.Floor(s.Center.X - s.Outer))
	x1 := int(math.Ceil(s.Center.X + s.Outer))
	y0 := int(math.Floor(s.Center.Y - s.Outer/CellAspect))
	y1 := int(math.Ceil(s.Center.Y + s.Outer/CellAspect))
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			if s.Contains(Point{X: float64(x) + 0.5, Y: float64(y) + 0.5}) {
				c.Set(x, y, fill, token)
			}
		}
	}
}

func (c *Canvas) fillPolygon(pts []Point, fill rune, token uitheme.ColorToken) {
	if len(pts) < 3 {
		return
	}
	minY, maxY := pts[0].Y, pts[0].Y
	minX, maxX := pts[0].X, pts[0].X
	for _, p := range pts[1:] {
		minX, maxX = math.Min(minX, p.X), math.Max(maxX, p.X)
		minY, maxY = math.Min(minY, p.Y), math.Max(maxY, p.Y)
	}
	for y := int(math.Floor(minY)); y <= int(math.Ceil(maxY)); y++ {
		for x := int(math.Floor(minX)); x <= int(math.Ceil(maxX)); x++ {
			if insidePolygon(pts, Point{X: float64(x) + 0.5, Y: float64(y) + 0.5}) {
				c.Set(x, y, fill, token)
			}
		}
	}
}

// insidePolygon is the even-odd ray casting test.
func insidePolygon(pts []Point, p Point) bool {
	inside := false
	j := len(pts) - 1
	for i := range pts {
		a, b := pts[i], pts[j]
		if (a.Y > p.Y) != (b.Y > p.Y) && p.X < (b.X-a.X)*(p.Y-a.Y)/(b.Y-a.Y)+a.X {
			inside = !inside
		}
		j = i
	}
	return inside
}

func (c *Canvas) stroke(p Path, token uitheme.ColorToken) {
	var (
		last  Point
		start Point
		have  bool
	)
	for _, cmd := range p.Commands() {
		switch cmd.Op {
		case OpMove:
			last, start, have = cmd.To, cmd.To, true
			c.Set(int(math.Floor(last.X)), int(math.Floor(last.Y)), '•', token)
		case OpLine, OpArc:
			if have {
				c.line(last, cmd.To, token)
			}
			last, have = cmd.To, true
		case OpClose:
			if have {
				c.line(last, start, token)
				last = start
			}
		}
	}
}

// line draws a segment with Bresenham's algorithm, picking a glyph from the
// segment direction.
func (c *Canvas) line(a, b Point, token uitheme.ColorToken) {
	x0, y0 := int(math.Floor(a.X)), int(math.Floor(a.Y))
	x1, y1 := int(math.Floor(b.X)), int(math.Floor(b.Y))

	glyph := '•'
	switch {
	case x0 == x1:
		glyph = '│'
	case y0 == y1:
		glyph = '─'
	}

	dx, dy := abs(x1-x0), -abs(y1-y0)
	sx, sy := sign(x1-x0), sign(y1-y0)
	err := dx + dy
	for {
		c.Set(x0, y0, glyph, token)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func sign(v int) int {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	default:
		return 0
	}
}
