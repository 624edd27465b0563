package physics

import "github.com/san-kum/sandbox2d/internal/body"

const (
	// GravitationalConstant is the SI value. Scene units are pixels, so
	// motion is only visible with very large masses.
	GravitationalConstant = 6.6743e-11
	SpaceSoftening        = 5.0
)

// PairwiseGravity is direct-summation Newtonian gravity with Plummer
// softening. Walls treat bodies as points.
type PairwiseGravity struct {
	G         float64
	Softening float64

	integ Integrator
}

func NewPairwiseGravity() *PairwiseGravity {
	return &PairwiseGravity{
		G:         GravitationalConstant,
		Softening: SpaceSoftening,
		integ:     Integrator{Bounds: BoundsPoint},
	}
}

func (p *PairwiseGravity) Name() string { return string(ModeSpace) }

func (p *PairwiseGravity) Apply(dt float64, bodies []*body.Body, ctx Context) {
	g := p.G
	k := pairKernel{
		softening: p.Softening,
		coeff:     func(_, _ *body.Body) float64 { return g },
	}
	k.applyPairs(dt, bodies, ctx)
	p.integ.Advance(dt, bodies, ctx)
}
