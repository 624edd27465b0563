package sim

import (
	"github.com/san-kum/sandbox2d/internal/body"
	"github.com/san-kum/sandbox2d/internal/physics"
)

// Scene owns the bodies of one sandbox and drives the engine once per
// frame. It is not safe for concurrent use.
type Scene struct {
	Width, Height float64
	Debug         bool

	bodies []*body.Body
	engine *physics.Engine
	lines  []physics.DebugLine
	frames []float64
}

func NewScene(engine *physics.Engine, width, height float64) *Scene {
	return &Scene{
		Width:  width,
		Height: height,
		engine: engine,
		bodies: make([]*body.Body, 0),
	}
}

func (s *Scene) Engine() *physics.Engine { return s.engine }

func (s *Scene) AddBody(b *body.Body) {
	s.bodies = append(s.bodies, b)
}

// RemoveBody drops the body at index i, keeping the order of the rest.
func (s *Scene) RemoveBody(i int) bool {
	if i < 0 || i >= len(s.bodies) {
		return false
	}
	s.bodies = append(s.bodies[:i], s.bodies[i+1:]...)
	return true
}

func (s *Scene) Bodies() []*body.Body { return s.bodies }
func (s *Scene) Len() int             { return len(s.bodies) }

// Tick advances the scene by dt. Debug lines from the previous tick are
// discarded first.
func (s *Scene) Tick(dt float64) {
	s.lines = s.lines[:0]
	s.engine.Step(dt, s.bodies, physics.Context{
		Width:  s.Width,
		Height: s.Height,
		Debug:  s.Debug,
		Sink:   physics.Collect(&s.lines),
	})
}

// DebugLines returns the lines recorded by the latest tick, in
// evaluation order. The slice is reused by the next tick.
func (s *Scene) DebugLines() []physics.DebugLine { return s.lines }

func (s *Scene) Resize(width, height float64) {
	s.Width = width
	s.Height = height
}

// RecordFrame notes a rendered frame at time ts (seconds) and forgets
// frames older than one second.
func (s *Scene) RecordFrame(ts float64) {
	s.frames = append(s.frames, ts)
	cut := 0
	for cut < len(s.frames) && s.frames[cut] <= ts-1 {
		cut++
	}
	s.frames = s.frames[cut:]
}

// FPS is the number of frames recorded within the last second.
func (s *Scene) FPS() int { return len(s.frames) }

func (s *Scene) Clear() {
	s.bodies = s.bodies[:0]
	s.lines = s.lines[:0]
}
