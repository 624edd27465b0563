package experiment

import (
	"errors"
	"fmt"
	"sort"

	"github.com/san-kum/sandbox2d/internal/config"
	"github.com/san-kum/sandbox2d/internal/metrics"
	"github.com/san-kum/sandbox2d/internal/physics"
	"github.com/san-kum/sandbox2d/internal/sim"
)

var ErrUnknownModel = errors.New("unknown model")

// ModelFactory builds a force model with the config's overrides applied.
// table is the shared attraction table and may be ignored.
type ModelFactory func(p config.PhysicsConfig, table *physics.AttractionTable) physics.ForceModel

type Registry struct {
	models map[physics.Mode]ModelFactory
}

func NewRegistry() *Registry {
	r := &Registry{models: make(map[physics.Mode]ModelFactory)}

	r.models[physics.ModeEarth] = func(p config.PhysicsConfig, _ *physics.AttractionTable) physics.ForceModel {
		m := physics.NewUniformField()
		if p.Gravity != 0 {
			m.Gravity = p.Gravity
		}
		return m
	}
	r.models[physics.ModeSpace] = func(p config.PhysicsConfig, _ *physics.AttractionTable) physics.ForceModel {
		m := physics.NewPairwiseGravity()
		if p.G != 0 {
			m.G = p.G
		}
		if p.Softening != 0 {
			m.Softening = p.Softening
		}
		return m
	}
	r.models[physics.ModeParticle] = func(p config.PhysicsConfig, table *physics.AttractionTable) physics.ForceModel {
		m := physics.NewGroupedAttraction(table)
		if p.Softening != 0 {
			m.Softening = p.Softening
		}
		return m
	}
	r.models[physics.ModeSpaceBH] = func(p config.PhysicsConfig, _ *physics.AttractionTable) physics.ForceModel {
		m := physics.NewApproxGravity()
		if p.G != 0 {
			m.G = p.G
		}
		if p.Softening != 0 {
			m.Softening = p.Softening
		}
		if p.Theta != 0 {
			m.Theta = p.Theta
		}
		return m
	}

	return r
}

// Register adds or replaces the factory for mode.
func (r *Registry) Register(mode physics.Mode, f ModelFactory) {
	r.models[mode] = f
}

func (r *Registry) GetModel(mode physics.Mode, p config.PhysicsConfig, table *physics.AttractionTable) (physics.ForceModel, error) {
	fn, ok := r.models[mode]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownModel, mode)
	}
	return fn(p, table), nil
}

func (r *Registry) ListModels() []string {
	names := make([]string, 0, len(r.models))
	for mode := range r.models {
		names = append(names, string(mode))
	}
	sort.Strings(names)
	return names
}

// DefaultMetrics returns fresh metric instances for a scene of mode.
func (r *Registry) DefaultMetrics(mode physics.Mode, width, height float64) []sim.Metric {
	return []sim.Metric{
		metrics.NewKineticEnergy(),
		metrics.NewEnergyDrift(),
		metrics.NewMomentum(),
		metrics.NewMaxSpeed(),
		metrics.NewBoundaryContacts(width, height, mode == physics.ModeEarth),
	}
}
