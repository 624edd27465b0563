package metrics

import (
	"math"

	"github.com/san-kum/sandbox2d/internal/body"
)

// Kinetic returns Σ ½·m·|v|².
func Kinetic(bodies []*body.Body) float64 {
	e := 0.0
	for _, b := range bodies {
		e += 0.5 * b.Mass * b.Velocity.MagnitudeSquared()
	}
	return e
}

// KineticEnergy reports the kinetic energy at the latest observation.
type KineticEnergy struct {
	name    string
	current float64
	samples int
}

func NewKineticEnergy() *KineticEnergy {
	return &KineticEnergy{name: "kinetic_energy"}
}

func (e *KineticEnergy) Name() string { return e.name }

func (e *KineticEnergy) Observe(bodies []*body.Body, t float64) {
	e.current = Kinetic(bodies)
	e.samples++
}

func (e *KineticEnergy) Value() float64 { return e.current }

func (e *KineticEnergy) Reset() {
	e.current = 0
	e.samples = 0
}

// EnergyDrift tracks the largest relative change of kinetic energy from
// the first observation. Walls remove energy, so drift is expected in
// every mode with elasticity below one.
type EnergyDrift struct {
	name     string
	initial  float64
	maxDrift float64
	samples  int
}

func NewEnergyDrift() *EnergyDrift {
	return &EnergyDrift{name: "energy_drift"}
}

func (e *EnergyDrift) Name() string { return e.name }

func (e *EnergyDrift) Observe(bodies []*body.Body, t float64) {
	energy := Kinetic(bodies)
	if e.samples == 0 {
		e.initial = energy
	}
	e.samples++

	if e.initial != 0 {
		drift := math.Abs(energy-e.initial) / math.Abs(e.initial)
		e.maxDrift = math.Max(e.maxDrift, drift)
	}
}

func (e *EnergyDrift) Value() float64 { return e.maxDrift }

func (e *EnergyDrift) Reset() {
	e.initial = 0
	e.maxDrift = 0
	e.samples = 0
}
