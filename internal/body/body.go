package body

import (
	"fmt"

	"github.com/san-kum/sandbox2d/internal/vec"
)

const (
	DefaultMass       = 100.0
	DefaultElasticity = 0.5
)

// Body is a point mass. Shape only feeds extent queries and rendering.
type Body struct {
	Position   vec.Vec2
	Velocity   vec.Vec2
	Mass       float64
	Elasticity float64
	Shape      Shape
	Group      string
	Color      string
}

func New(pos, vel vec.Vec2) *Body {
	return &Body{
		Position:   pos,
		Velocity:   vel,
		Mass:       DefaultMass,
		Elasticity: DefaultElasticity,
		Shape:      Point{},
	}
}

func (b *Body) X() float64  { return b.Position.X }
func (b *Body) Y() float64  { return b.Position.Y }
func (b *Body) VX() float64 { return b.Velocity.X }
func (b *Body) VY() float64 { return b.Velocity.Y }

func (b *Body) SetX(x float64)   { b.Position.X = x }
func (b *Body) SetY(y float64)   { b.Position.Y = y }
func (b *Body) SetVX(vx float64) { b.Velocity.X = vx }
func (b *Body) SetVY(vy float64) { b.Velocity.Y = vy }

// Extent returns the shape half-size along axis, 0 for shapeless bodies.
func (b *Body) Extent(axis Axis) float64 {
	if b.Shape == nil {
		return 0
	}
	return b.Shape.Extent(axis)
}

func (b *Body) Validate() error {
	if !(b.Mass > 0) {
		return fmt.Errorf("%w: mass must be positive, got %v", ErrInvalidBody, b.Mass)
	}
	if b.Elasticity < 0 || b.Elasticity > 1 {
		return fmt.Errorf("%w: elasticity must be in [0,1], got %v", ErrInvalidBody, b.Elasticity)
	}
	return nil
}

// Clone returns a deep copy, including polygon vertices.
func (b *Body) Clone() *Body {
	c := *b
	if p, ok := b.Shape.(Polygon); ok {
		verts := make([]vec.Vec2, len(p.Vertices))
		copy(verts, p.Vertices)
		c.Shape = Polygon{Vertices: verts}
	}
	return &c
}

func (b *Body) Kind() string {
	if b.Shape == nil {
		return Point{}.Kind()
	}
	return b.Shape.Kind()
}
