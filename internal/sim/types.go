package sim

import (
	"errors"
	"fmt"
	"math"

	"github.com/san-kum/sandbox2d/internal/body"
	"github.com/san-kum/sandbox2d/internal/vec"
)

var ErrInvalidRunConfig = errors.New("invalid run config")

type Metric interface {
	Name() string
	Observe(bodies []*body.Body, t float64)
	Value() float64
	Reset()
}

type Observer interface {
	OnStep(bodies []*body.Body, t float64)
}

// ObserverFunc adapts a plain function to Observer.
type ObserverFunc func(bodies []*body.Body, t float64)

func (f ObserverFunc) OnStep(bodies []*body.Body, t float64) { f(bodies, t) }

type Config struct {
	Dt       float64
	Duration float64

	// Record keeps a Snapshot of every step in Result.Snapshots.
	Record bool
}

func DefaultConfig() Config {
	return Config{
		Dt:       1.0 / 60,
		Duration: 10,
	}
}

type Snapshot struct {
	Time       float64
	Positions  []vec.Vec2
	Velocities []vec.Vec2
}

func takeSnapshot(bodies []*body.Body, t float64) Snapshot {
	s := Snapshot{
		Time:       t,
		Positions:  make([]vec.Vec2, len(bodies)),
		Velocities: make([]vec.Vec2, len(bodies)),
	}
	for i, b := range bodies {
		s.Positions[i] = b.Position
		s.Velocities[i] = b.Velocity
	}
	return s
}

type Result struct {
	Times      []float64
	Metrics    map[string][]float64
	Final      map[string]float64
	Snapshots  []Snapshot
	StepsTaken int
	Errors     []error
}

// Series returns the per-step values of the named metric, or nil.
func (r *Result) Series(name string) []float64 {
	return r.Metrics[name]
}

type SimError struct {
	Time    float64
	Step    int
	Message string
}

func (e SimError) Error() string {
	return fmt.Sprintf("step %d (t=%.4f): %s", e.Step, e.Time, e.Message)
}

// firstInvalid returns the index of the first body whose position or
// velocity holds a NaN or infinity, or -1.
func firstInvalid(bodies []*body.Body) int {
	for i, b := range bodies {
		for _, f := range [...]float64{b.X(), b.Y(), b.VX(), b.VY()} {
			if math.IsNaN(f) || math.IsInf(f, 0) {
				return i
			}
		}
	}
	return -1
}
