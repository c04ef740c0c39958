package chart

import (
	"fmt"
	"html"
	"strings"

	uitheme "github.com/alexisbeaulieu97/vaultkit/internal/ui/theme"
)

// SVG writes geometry as a standalone SVG document in cell units. fill maps
// tokens to CSS colors.
func SVG(g Geometry, layout Layout, fill func(uitheme.ColorToken) string) string {
	var b strings.Builder
	fmt.Fprintf(&b, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %d %d">`, layout.Width, layout.Height)
	b.WriteByte('\n')

	for _, s := range g.Shapes {
		outline := s.Outline()
		if outline.Empty() || s.Opacity <= 0 {
			continue
		}
		color := fill(s.Token)
		if s.Kind == ShapePolyline {
			fmt.Fprintf(&b, `  <path d="%s" fill="none" stroke="%s" stroke-width="0.25" stroke-opacity="%s"/>`,
				outline, html.EscapeString(color), num(s.Opacity))
		} else {
			fmt.Fprintf(&b, `  <path d="%s" fill="%s" fill-opacity="%s" fill-rule="evenodd"/>`,
				outline, html.EscapeString(color), num(s.Opacity))
		}
		b.WriteByte('\n')
	}
	for _, l := range g.Labels {
		fmt.Fprintf(&b, `  <text x="%s" y="%s" fill="%s" font-size="1" text-anchor="middle">%s</text>`,
			num(l.At.X), num(l.At.Y), html.EscapeString(fill(l.Token)), html.EscapeString(l.Text))
		b.WriteByte('\n')
	}
	b.WriteString("</svg>\n")
	return b.String()
}
