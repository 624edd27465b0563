package vec

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r2"
)

type Vec2 struct {
	X, Y float64
}

func New(x, y float64) Vec2 { return Vec2{X: x, Y: y} }

func Zero() Vec2 { return Vec2{} }

func (v Vec2) r2() r2.Vec { return r2.Vec{X: v.X, Y: v.Y} }

func fromR2(p r2.Vec) Vec2 { return Vec2{X: p.X, Y: p.Y} }

func (v Vec2) Magnitude() float64 { return r2.Norm(v.r2()) }

func (v Vec2) MagnitudeSquared() float64 { return r2.Norm2(v.r2()) }

func (v Vec2) IsZero() bool { return v.X == 0 && v.Y == 0 }

func (v Vec2) Clone() Vec2 { return v }

func (v Vec2) DistanceTo(o Vec2) float64 { return r2.Norm(r2.Sub(v.r2(), o.r2())) }

func (v Vec2) DistanceToSquared(o Vec2) float64 { return r2.Norm2(r2.Sub(v.r2(), o.r2())) }

// Add adds o to v in place.
func (v *Vec2) Add(o Vec2) *Vec2 {
	*v = fromR2(r2.Add(v.r2(), o.r2()))
	return v
}

// Sub subtracts o from v in place.
func (v *Vec2) Sub(o Vec2) *Vec2 {
	*v = fromR2(r2.Sub(v.r2(), o.r2()))
	return v
}

// Scale multiplies both components by s in place.
func (v *Vec2) Scale(s float64) *Vec2 {
	*v = fromR2(r2.Scale(s, v.r2()))
	return v
}

func (v *Vec2) InvertX() *Vec2 {
	v.X = -v.X
	return v
}

func (v *Vec2) InvertY() *Vec2 {
	v.Y = -v.Y
	return v
}

func (v *Vec2) Invert() *Vec2 {
	v.X, v.Y = -v.X, -v.Y
	return v
}

// Normalize scales v to unit length. The zero vector is left unchanged.
func (v *Vec2) Normalize() *Vec2 {
	m := v.Magnitude()
	if m == 0 {
		return v
	}
	v.X /= m
	v.Y /= m
	return v
}

func (v *Vec2) Copy(o Vec2) *Vec2 {
	*v = o
	return v
}

func (v *Vec2) CopyX(o Vec2) *Vec2 {
	v.X = o.X
	return v
}

func (v *Vec2) CopyY(o Vec2) *Vec2 {
	v.Y = o.Y
	return v
}

func (v Vec2) Plus(o Vec2) Vec2 { return *v.Add(o) }

func (v Vec2) Minus(o Vec2) Vec2 { return *v.Sub(o) }

func (v Vec2) Scaled(s float64) Vec2 { return *v.Scale(s) }

func (v Vec2) InvertedX() Vec2 { return *v.InvertX() }

func (v Vec2) InvertedY() Vec2 { return *v.InvertY() }

func (v Vec2) Inverted() Vec2 { return *v.Invert() }

func (v Vec2) Normalized() Vec2 { return *v.Normalize() }

func (v Vec2) String() string {
	return fmt.Sprintf("(%.3g, %.3g)", v.X, v.Y)
}
