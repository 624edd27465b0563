package export

import (
	"math"
	"strings"
	"testing"

	"github.com/san-kum/sandbox2d/internal/analysis"
	"github.com/san-kum/sandbox2d/internal/body"
	"github.com/san-kum/sandbox2d/internal/physics"
	"github.com/san-kum/sandbox2d/internal/vec"
)

func TestSceneToSVG(t *testing.T) {
	c := body.NewCircle(100, 200, 20)
	c.Color = "red"
	tri := body.Triangle(300, 300, 40, 40)
	p := body.New(vec.Vec2{X: 5, Y: 5}, vec.Vec2{})

	lines := []physics.DebugLine{
		{A: vec.Vec2{X: 0, Y: 0}, B: vec.Vec2{X: 10, Y: 10}, Force: 1000},
		{A: vec.Vec2{X: 0, Y: 0}, B: vec.Vec2{X: 10, Y: 10}, Force: 0.5},
	}

	svg := SceneToSVG([]*body.Body{c, tri, p}, lines, 800, 600)

	if !strings.HasPrefix(svg, "<?xml") || !strings.HasSuffix(svg, "</svg>") {
		t.Fatal("not a complete svg document")
	}
	if !strings.Contains(svg, `width="800" height="600"`) {
		t.Error("missing scene size")
	}
	if !strings.Contains(svg, `<circle cx="100.0" cy="200.0" r="20.0" fill="#ff4444"/>`) {
		t.Error("missing red circle")
	}
	if strings.Count(svg, "<polygon") != 1 {
		t.Error("expected one polygon")
	}
	if strings.Count(svg, "<line") != 1 {
		t.Errorf("expected weak line to be skipped, got %d lines", strings.Count(svg, "<line"))
	}
}

func TestTraceToSVG(t *testing.T) {
	if TraceToSVG(nil, 10, 10, "red") != "" {
		t.Error("nil trace should give empty output")
	}
	tr := &analysis.Trace{Points: []vec.Vec2{{X: 1, Y: 2}, {X: 3, Y: 4}}}
	svg := TraceToSVG(tr, 10, 10, "red")
	if !strings.Contains(svg, `d="M1.0,2.0 L3.0,4.0"`) {
		t.Errorf("unexpected path: %s", svg)
	}
}

func TestLineOpacity(t *testing.T) {
	tests := []struct {
		force, want float64
	}{
		{0, 0},
		{1, 0},
		{0.01, 0},
		{10, 1.0 / 3},
		{1000, 1},
		{1e6, 1},
		{-1000, 1},
		{math.NaN(), 0},
	}
	for _, tt := range tests {
		if got := LineOpacity(tt.force); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("LineOpacity(%v) = %v, want %v", tt.force, got, tt.want)
		}
	}
}
