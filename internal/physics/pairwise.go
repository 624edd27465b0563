package physics

import (
	"math"

	"github.com/san-kum/sandbox2d/internal/body"
)

// pairKernel describes one softened inverse-square interaction.
type pairKernel struct {
	softening float64
	// maxDistSq skips pairs further apart than this; 0 disables the cutoff.
	maxDistSq float64
	coeff     func(a, b *body.Body) float64
}

// applyPairs walks every unordered pair i<j and applies equal and
// opposite impulses. Coincident pairs are skipped.
func (k pairKernel) applyPairs(dt float64, bodies []*body.Body, ctx Context) {
	soft2 := k.softening * k.softening
	n := len(bodies)

	for i := 0; i < n; i++ {
		b1 := bodies[i]
		for j := i + 1; j < n; j++ {
			b2 := bodies[j]

			d := b2.Position.Minus(b1.Position)
			distSq := d.MagnitudeSquared()
			if distSq == 0 {
				continue
			}
			if k.maxDistSq > 0 && distSq > k.maxDistSq {
				continue
			}
			dir := d.Normalized()

			dist := math.Sqrt(distSq + soft2)
			force := k.coeff(b1, b2) * (b1.Mass * b2.Mass) / (dist * dist)
			fx := force * dir.X
			fy := force * dir.Y

			ctx.emit(b1.Position, b2.Position, force)

			b1.Velocity.X += fx / b1.Mass * dt
			b1.Velocity.Y += fy / b1.Mass * dt
			b2.Velocity.X -= fx / b2.Mass * dt
			b2.Velocity.Y -= fy / b2.Mass * dt
		}
	}
}
