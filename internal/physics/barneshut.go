package physics

import (
	"math"

	"gonum.org/v1/gonum/spatial/barneshut"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/san-kum/sandbox2d/internal/body"
)

const DefaultTheta = 0.5

// ApproxGravity is PairwiseGravity evaluated with a Barnes–Hut quadtree.
// Forces are aggregated per body, so no debug lines are emitted and
// momentum is conserved only approximately.
type ApproxGravity struct {
	G         float64
	Softening float64
	Theta     float64

	integ Integrator
	exact *PairwiseGravity
}

func NewApproxGravity() *ApproxGravity {
	return &ApproxGravity{
		G:         GravitationalConstant,
		Softening: SpaceSoftening,
		Theta:     DefaultTheta,
		integ:     Integrator{Bounds: BoundsPoint},
	}
}

func (a *ApproxGravity) Name() string { return string(ModeSpaceBH) }

type particle struct{ b *body.Body }

func (p particle) Coord2() r2.Vec { return r2.Vec{X: p.b.Position.X, Y: p.b.Position.Y} }
func (p particle) Mass() float64  { return p.b.Mass }

func (a *ApproxGravity) Apply(dt float64, bodies []*body.Body, ctx Context) {
	if len(bodies) < 2 {
		a.integ.Advance(dt, bodies, ctx)
		return
	}

	ps := make([]barneshut.Particle2, len(bodies))
	for i, b := range bodies {
		ps[i] = particle{b}
	}

	plane, err := barneshut.NewPlane(ps)
	if err != nil {
		// Coordinates too spread out for the tree; fall back to direct sum.
		ctx.Debug = false
		a.fallback().Apply(dt, bodies, ctx)
		return
	}

	forces := make([]r2.Vec, len(ps))
	for i, p := range ps {
		forces[i] = plane.ForceOn(p, a.Theta, a.force)
	}

	for i, b := range bodies {
		b.Velocity.X += forces[i].X / b.Mass * dt
		b.Velocity.Y += forces[i].Y / b.Mass * dt
	}
	a.integ.Advance(dt, bodies, ctx)
}

// force is the softened gravity between p1 and p2, acting on p1 along v.
func (a *ApproxGravity) force(_, _ barneshut.Particle2, m1, m2 float64, v r2.Vec) r2.Vec {
	d2 := r2.Norm2(v)
	if d2 == 0 {
		return r2.Vec{}
	}
	soft := d2 + a.Softening*a.Softening
	f := a.G * m1 * m2 / soft
	return r2.Scale(f/math.Sqrt(d2), v)
}

func (a *ApproxGravity) fallback() *PairwiseGravity {
	if a.exact == nil {
		a.exact = NewPairwiseGravity()
	}
	a.exact.G, a.exact.Softening = a.G, a.Softening
	return a.exact
}
