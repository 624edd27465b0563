package physics

import "github.com/san-kum/sandbox2d/internal/body"

// DefaultGravity is 9.8 scaled so that falls are visible at pixel scale.
const DefaultGravity = 9.8 * 200

// UniformField pulls every body down with constant acceleration and
// keeps each shape's extent inside the scene.
type UniformField struct {
	Gravity float64

	// DetectOverlap reports overlapping bodies through Context.OnOverlap.
	// No collision response exists; overlapping bodies pass through.
	DetectOverlap bool

	integ Integrator
}

func NewUniformField() *UniformField {
	return &UniformField{
		Gravity: DefaultGravity,
		integ:   Integrator{Bounds: BoundsExtent},
	}
}

func (u *UniformField) Name() string { return string(ModeEarth) }

func (u *UniformField) Apply(dt float64, bodies []*body.Body, ctx Context) {
	for i, b := range bodies {
		b.Velocity.Y += u.Gravity * dt

		if u.DetectOverlap && ctx.OnOverlap != nil {
			u.reportOverlaps(i, bodies, ctx)
		}

		u.integ.Move(b, dt, ctx)
	}
}

func (u *UniformField) reportOverlaps(i int, bodies []*body.Body, ctx Context) {
	a := bodies[i]
	for j, b := range bodies {
		if j == i {
			continue
		}
		reach := a.Extent(body.AxisX) + b.Extent(body.AxisX)
		if a.Position.DistanceTo(b.Position) <= reach {
			ctx.OnOverlap(i, j)
		}
	}
}
