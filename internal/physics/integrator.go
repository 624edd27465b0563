package physics

import (
	"github.com/san-kum/sandbox2d/internal/body"
)

type Bounds int

const (
	// BoundsExtent keeps the whole shape inside the scene.
	BoundsExtent Bounds = iota
	// BoundsPoint keeps only the body centre inside the scene.
	BoundsPoint
)

// Integrator advances positions by v·dt and bounces bodies off the
// scene walls.
type Integrator struct {
	Bounds Bounds
}

// Advance moves every body and resolves wall contacts.
func (in Integrator) Advance(dt float64, bodies []*body.Body, ctx Context) {
	for _, b := range bodies {
		in.Move(b, dt, ctx)
	}
}

// Move computes the tentative position from the current velocity, then
// clamps each axis independently. Both tentative coordinates are taken
// before either axis bounces. It reports which axes hit a wall.
func (in Integrator) Move(b *body.Body, dt float64, ctx Context) (hitX, hitY bool) {
	nextX := b.Position.X + b.Velocity.X*dt
	nextY := b.Position.Y + b.Velocity.Y*dt

	loX, hiX := in.limits(b, body.AxisX, ctx.Width)
	loY, hiY := in.limits(b, body.AxisY, ctx.Height)

	hitX = clampAxis(b, body.AxisX, nextX, loX, hiX)
	hitY = clampAxis(b, body.AxisY, nextY, loY, hiY)
	return hitX, hitY
}

func (in Integrator) limits(b *body.Body, axis body.Axis, dim float64) (lo, hi float64) {
	if in.Bounds == BoundsPoint {
		return 0, dim
	}
	e := b.Extent(axis)
	return e, dim - e
}

// clampAxis commits next on axis, or pins the body to the crossed wall
// and reflects its velocity scaled by the body's elasticity. The scale
// applies to the whole velocity vector.
func clampAxis(b *body.Body, axis body.Axis, next, lo, hi float64) bool {
	var bound float64
	switch {
	case next > hi:
		bound = hi
	case next < lo:
		bound = lo
	default:
		setCoord(b, axis, next)
		return false
	}

	setCoord(b, axis, bound)
	if axis == body.AxisX {
		b.Velocity.InvertX().Scale(b.Elasticity)
	} else {
		b.Velocity.InvertY().Scale(b.Elasticity)
	}
	return true
}

func setCoord(b *body.Body, axis body.Axis, v float64) {
	if axis == body.AxisX {
		b.SetX(v)
	} else {
		b.SetY(v)
	}
}
