package gui

import (
	"fmt"
	"math"
	"strings"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/san-kum/sandbox2d/internal/body"
	"github.com/san-kum/sandbox2d/internal/metrics"
	"github.com/san-kum/sandbox2d/internal/vec"
)

var namedColors = map[string]rl.Color{
	"red":     rl.NewColor(230, 60, 60, 255),
	"green":   rl.NewColor(60, 200, 60, 255),
	"blue":    rl.NewColor(70, 120, 240, 255),
	"yellow":  rl.NewColor(240, 210, 40, 255),
	"white":   rl.White,
	"black":   rl.NewColor(40, 40, 40, 255),
	"orange":  rl.Orange,
	"purple":  rl.Purple,
	"cyan":    rl.NewColor(0, 220, 220, 255),
	"magenta": rl.Magenta,
}

// bodyColor resolves a colour name. Unknown and empty names use the
// accent colour.
func bodyColor(name string) rl.Color {
	if c, ok := namedColors[strings.ToLower(strings.TrimSpace(name))]; ok {
		return c
	}
	return ColAccent
}

// debugAlpha maps a force magnitude to line opacity: log10(|F|)/3,
// clamped to [0, 1].
func debugAlpha(force float64) float32 {
	a := math.Log10(math.Abs(force)) / 3
	if math.IsNaN(a) || a < 0 {
		return 0
	}
	return float32(math.Min(1, a))
}

func v2(x, y float64) rl.Vector2 {
	return rl.NewVector2(float32(x), float32(y))
}

func (a *App) drawBodies() {
	for _, b := range a.Exp.Scene().Bodies() {
		col := bodyColor(b.Color)
		switch s := b.Shape.(type) {
		case body.Circle:
			rl.DrawCircleV(v2(b.X(), b.Y()), float32(s.Radius), col)
		case body.Polygon:
			drawPolygon(s.World(b.Position), col)
		default:
			rl.DrawPixelV(v2(b.X(), b.Y()), col)
		}
	}
}

// drawPolygon fills a convex polygon as a triangle fan. raylib culls
// triangles that are not counter-clockwise on screen.
func drawPolygon(world []vec.Vec2, col rl.Color) {
	if len(world) < 3 {
		return
	}
	area := 0.0
	for i := range world {
		j := (i + 1) % len(world)
		area += world[i].X*world[j].Y - world[j].X*world[i].Y
	}
	for i := 1; i+1 < len(world); i++ {
		p0, p1, p2 := v2(world[0].X, world[0].Y), v2(world[i].X, world[i].Y), v2(world[i+1].X, world[i+1].Y)
		if area > 0 {
			p1, p2 = p2, p1
		}
		rl.DrawTriangle(p0, p1, p2, col)
	}
}

func (a *App) drawDebug() {
	scene := a.Exp.Scene()
	for _, l := range scene.DebugLines() {
		rl.DrawLineV(v2(l.A.X, l.A.Y), v2(l.B.X, l.B.Y), rl.Fade(ColSelect, debugAlpha(l.Force)))
	}
	for _, b := range scene.Bodies() {
		x, y := int32(b.X())+6, int32(b.Y())
		rl.DrawText(fmt.Sprintf("(%.3g, %.3g)", b.X(), b.Y()), x, y, 10, ColDebug)
		rl.DrawText(fmt.Sprintf("(%.3g, %.3g)", b.VX(), b.VY()), x, y+10, 10, ColDebug)
	}
}

func (a *App) kinetic() float64 {
	return metrics.Kinetic(a.Exp.Scene().Bodies())
}

// DrawTelemetry plots recent kinetic energy in the bottom-left corner.
func (a *App) DrawTelemetry() {
	if len(a.Telemetry) < 2 {
		return
	}

	scene := a.Exp.Scene()
	rectX, rectY := float32(10), float32(scene.Height)-90
	width, height := float32(200), float32(50)

	minVal, maxVal := a.Telemetry[0], a.Telemetry[0]
	for _, v := range a.Telemetry {
		minVal, maxVal = math.Min(minVal, v), math.Max(maxVal, v)
	}
	if maxVal == minVal {
		maxVal = minVal + 1
	}

	points := make([]rl.Vector2, len(a.Telemetry))
	for i, val := range a.Telemetry {
		px := rectX + float32(i)/float32(len(a.Telemetry))*width
		norm := (val - minVal) / (maxVal - minVal)
		points[i] = rl.NewVector2(px, rectY+height-float32(norm)*height)
	}

	rl.DrawLineStrip(points, ColAccent)
	rl.DrawText(fmt.Sprintf("E: %.2e", a.Telemetry[len(a.Telemetry)-1]), int32(rectX+width+10), int32(rectY+height-10), 12, ColText)
}
