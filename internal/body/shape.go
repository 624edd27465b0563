package body

import (
	"math"

	"github.com/san-kum/sandbox2d/internal/vec"
)

type Axis int

const (
	AxisX Axis = iota
	AxisY
)

// Shape gives a body its extent for boundary clamping. The engine never
// rotates or collides shapes.
type Shape interface {
	Extent(axis Axis) float64
	Kind() string
}

type Point struct{}

func (Point) Extent(Axis) float64 { return 0 }
func (Point) Kind() string        { return "point" }

type Circle struct {
	Radius float64
}

func (c Circle) Extent(Axis) float64 { return c.Radius }
func (c Circle) Kind() string        { return "circle" }

// Polygon vertices are in local space, relative to the body position.
type Polygon struct {
	Vertices []vec.Vec2
}

func (p Polygon) Kind() string { return "polygon" }

// Extent is half the bounding-box size of the vertices along axis.
func (p Polygon) Extent(axis Axis) float64 {
	if len(p.Vertices) == 0 {
		return 0
	}
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, v := range p.Vertices {
		c := v.X
		if axis == AxisY {
			c = v.Y
		}
		lo = math.Min(lo, c)
		hi = math.Max(hi, c)
	}
	return (hi - lo) / 2
}

// World returns the vertices translated to pos.
func (p Polygon) World(pos vec.Vec2) []vec.Vec2 {
	out := make([]vec.Vec2, len(p.Vertices))
	for i, v := range p.Vertices {
		out[i] = v.Plus(pos)
	}
	return out
}
