// Package export renders scenes and traces as standalone SVG documents.
package export

import (
	"fmt"
	"math"
	"strings"

	"github.com/san-kum/sandbox2d/internal/analysis"
	"github.com/san-kum/sandbox2d/internal/body"
	"github.com/san-kum/sandbox2d/internal/physics"
	"github.com/san-kum/sandbox2d/internal/viz"
)

const background = "#0a0a0a"

// pointRadius is the drawn size of shapeless bodies.
const pointRadius = 2.0

func header(sb *strings.Builder, width, height float64) {
	fmt.Fprintf(sb, `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" fill="%s"/>
`, width, height, width, height, background)
}

// SceneToSVG draws bodies in scene coordinates. Debug lines are drawn
// beneath them with the same opacity ramp as the window renderer.
func SceneToSVG(bodies []*body.Body, lines []physics.DebugLine, width, height float64) string {
	var sb strings.Builder
	header(&sb, width, height)

	if len(lines) > 0 {
		sb.WriteString(`<g stroke="#ffffff" stroke-width="1">` + "\n")
		for _, l := range lines {
			a := LineOpacity(l.Force)
			if a == 0 {
				continue
			}
			fmt.Fprintf(&sb, `<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke-opacity="%.3f"/>`+"\n",
				l.A.X, l.A.Y, l.B.X, l.B.Y, a)
		}
		sb.WriteString("</g>\n")
	}

	for _, b := range bodies {
		fill := string(viz.GroupColor(b.Color))
		switch s := b.Shape.(type) {
		case body.Circle:
			fmt.Fprintf(&sb, `<circle cx="%.1f" cy="%.1f" r="%.1f" fill="%s"/>`+"\n",
				b.X(), b.Y(), s.Radius, fill)
		case body.Polygon:
			pts := make([]string, 0, len(s.Vertices))
			for _, v := range s.World(b.Position) {
				pts = append(pts, fmt.Sprintf("%.1f,%.1f", v.X, v.Y))
			}
			fmt.Fprintf(&sb, `<polygon points="%s" fill="%s"/>`+"\n", strings.Join(pts, " "), fill)
		default:
			fmt.Fprintf(&sb, `<circle cx="%.1f" cy="%.1f" r="%.1f" fill="%s"/>`+"\n",
				b.X(), b.Y(), pointRadius, fill)
		}
	}

	sb.WriteString("</svg>")
	return sb.String()
}

// TraceToSVG draws a trace as a single path in scene coordinates.
func TraceToSVG(tr *analysis.Trace, width, height float64, stroke string) string {
	if tr == nil || len(tr.Points) < 2 {
		return ""
	}

	var sb strings.Builder
	header(&sb, width, height)
	fmt.Fprintf(&sb, `<path fill="none" stroke="%s" stroke-width="1.5" d="M`, stroke)
	for i, p := range tr.Points {
		if i == 0 {
			fmt.Fprintf(&sb, "%.1f,%.1f", p.X, p.Y)
		} else {
			fmt.Fprintf(&sb, " L%.1f,%.1f", p.X, p.Y)
		}
	}
	sb.WriteString(`"/>
</svg>`)
	return sb.String()
}

// LineOpacity maps a force magnitude to log10(|F|)/3 clamped to [0, 1].
func LineOpacity(force float64) float64 {
	f := math.Abs(force)
	if f == 0 || math.IsNaN(f) {
		return 0
	}
	return math.Max(0, math.Min(1, math.Log10(f)/3))
}
