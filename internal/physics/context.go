package physics

import "github.com/san-kum/sandbox2d/internal/vec"

// DebugLine records one evaluated pair: both positions and the scalar
// force between them.
type DebugLine struct {
	A, B  vec.Vec2
	Force float64
}

type DebugSink func(DebugLine)

// Context is supplied by the driver on every step.
type Context struct {
	Width, Height float64
	Debug         bool
	Sink          DebugSink

	// OnOverlap, if set, is told about overlapping body pairs found by
	// models that detect overlap. Nothing else happens to such pairs.
	OnOverlap func(i, j int)
}

func (c Context) emit(a, b vec.Vec2, force float64) {
	if c.Debug && c.Sink != nil {
		c.Sink(DebugLine{A: a, B: b, Force: force})
	}
}

// Collect returns a sink that appends into *lines.
func Collect(lines *[]DebugLine) DebugSink {
	return func(l DebugLine) {
		*lines = append(*lines, l)
	}
}
