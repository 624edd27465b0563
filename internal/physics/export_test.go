package physics

import (
	"github.com/san-kum/sandbox2d/internal/body"
	"github.com/san-kum/sandbox2d/internal/vec"
)

func pointAt(x, y, mass float64) *body.Body {
	b := body.New(vec.New(x, y), vec.Zero())
	b.Mass = mass
	return b
}

func particleAt(x, y float64, group string) *body.Body {
	b := pointAt(x, y, body.DefaultMass)
	b.Group = group
	return b
}

func scene(w, h float64) Context {
	return Context{Width: w, Height: h}
}

// Helpers shared with the physics_test property suite.
var (
	PointAt    = pointAt
	ParticleAt = particleAt
	SceneOf    = scene
)
