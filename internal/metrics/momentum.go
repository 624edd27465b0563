package metrics

import (
	"math"

	"github.com/san-kum/sandbox2d/internal/body"
	"github.com/san-kum/sandbox2d/internal/vec"
)

func LinearMomentum(bodies []*body.Body) vec.Vec2 {
	var p vec.Vec2
	for _, b := range bodies {
		p.Add(b.Velocity.Scaled(b.Mass))
	}
	return p
}

// Momentum reports |Σ m·v| at the latest observation.
type Momentum struct {
	name    string
	current float64
}

func NewMomentum() *Momentum {
	return &Momentum{name: "momentum"}
}

func (m *Momentum) Name() string { return m.name }

func (m *Momentum) Observe(bodies []*body.Body, t float64) {
	m.current = LinearMomentum(bodies).Magnitude()
}

func (m *Momentum) Value() float64 { return m.current }
func (m *Momentum) Reset()         { m.current = 0 }

// MaxSpeed is the fastest body speed seen since the last reset.
type MaxSpeed struct {
	name string
	max  float64
}

func NewMaxSpeed() *MaxSpeed {
	return &MaxSpeed{name: "max_speed"}
}

func (m *MaxSpeed) Name() string { return m.name }

func (m *MaxSpeed) Observe(bodies []*body.Body, t float64) {
	for _, b := range bodies {
		m.max = math.Max(m.max, b.Velocity.Magnitude())
	}
}

func (m *MaxSpeed) Value() float64 { return m.max }
func (m *MaxSpeed) Reset()         { m.max = 0 }
