package physics

import "github.com/san-kum/sandbox2d/internal/body"

const (
	ParticleSoftening = 10.0
	// InteractionRadius bounds the grouped model; pairs further apart
	// than this do not interact.
	InteractionRadius = 250.0
)

// GroupedAttraction applies per-group attraction rules. The coefficient
// for a pair is looked up with the first body's group as the row, so
// a→b and b→a may differ.
type GroupedAttraction struct {
	Table     *AttractionTable
	Softening float64
	Radius    float64

	integ Integrator
}

func NewGroupedAttraction(table *AttractionTable) *GroupedAttraction {
	if table == nil {
		table = NewAttractionTable()
	}
	return &GroupedAttraction{
		Table:     table,
		Softening: ParticleSoftening,
		Radius:    InteractionRadius,
		integ:     Integrator{Bounds: BoundsPoint},
	}
}

func (g *GroupedAttraction) Name() string { return string(ModeParticle) }

func (g *GroupedAttraction) Apply(dt float64, bodies []*body.Body, ctx Context) {
	table := g.Table
	k := pairKernel{
		softening: g.Softening,
		maxDistSq: g.Radius * g.Radius,
		coeff: func(a, b *body.Body) float64 {
			return table.Get(a.Group, b.Group)
		},
	}
	k.applyPairs(dt, bodies, ctx)
	g.integ.Advance(dt, bodies, ctx)
}
