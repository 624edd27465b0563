package body

import "github.com/san-kum/sandbox2d/internal/vec"

// NewCircle builds a circle body centred at (cx, cy).
func NewCircle(cx, cy, r float64) *Body {
	b := New(vec.New(cx, cy), vec.Zero())
	b.Shape = Circle{Radius: r}
	return b
}

// Rectangle builds an axis-aligned w×h box centred at (cx, cy).
func Rectangle(cx, cy, w, h float64) *Body {
	hw, hh := w/2, h/2
	b := New(vec.New(cx, cy), vec.Zero())
	b.Shape = Polygon{Vertices: []vec.Vec2{
		{X: -hw, Y: -hh},
		{X: hw, Y: -hh},
		{X: hw, Y: hh},
		{X: -hw, Y: hh},
	}}
	return b
}

// Triangle builds an isoceles triangle centred at (cx, cy), apex up.
// Screen coordinates grow downward, so the apex has the smaller y.
func Triangle(cx, cy, w, h float64) *Body {
	hw, hh := w/2, h/2
	b := New(vec.New(cx, cy), vec.Zero())
	b.Shape = Polygon{Vertices: []vec.Vec2{
		{X: 0, Y: -hh},
		{X: hw, Y: hh},
		{X: -hw, Y: hh},
	}}
	return b
}
