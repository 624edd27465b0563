// Package particles manages the groups of the grouped-attraction scene:
// their display settings, the shared attraction table and particle
// spawning.
package particles

import (
	"math/rand"

	"github.com/san-kum/sandbox2d/internal/body"
	"github.com/san-kum/sandbox2d/internal/physics"
	"github.com/san-kum/sandbox2d/internal/vec"
)

const (
	DefaultMass      = 100.0
	DefaultRandomMin = -1000.0
	DefaultRandomMax = 1000.0
)

type Group struct {
	Name   string
	Color  string
	Radius float64
}

type Registry struct {
	Table *physics.AttractionTable
	Mass  float64

	groups map[string]Group
	order  []string
	rng    *rand.Rand
}

func NewRegistry(seed int64) *Registry {
	return &Registry{
		Table:  physics.NewAttractionTable(),
		Mass:   DefaultMass,
		groups: make(map[string]Group),
		rng:    rand.New(rand.NewSource(seed)),
	}
}

// RegisterGroup adds a group and its attraction rows. Existing names are
// left untouched, including their display settings.
func (r *Registry) RegisterGroup(name, color string, radius float64) bool {
	if _, ok := r.groups[name]; ok {
		return false
	}
	r.groups[name] = Group{Name: name, Color: color, Radius: radius}
	r.order = append(r.order, name)
	r.Table.Register(name)
	return true
}

func (r *Registry) Group(name string) (Group, bool) {
	g, ok := r.groups[name]
	return g, ok
}

func (r *Registry) Groups() []Group {
	out := make([]Group, 0, len(r.order))
	for _, n := range r.order {
		out = append(out, r.groups[n])
	}
	return out
}

// Spawn creates a particle of group at a uniformly random position in
// the scene. It returns false for unknown groups.
func (r *Registry) Spawn(group string, width, height float64) (*body.Body, bool) {
	g, ok := r.groups[group]
	if !ok {
		return nil, false
	}
	pos := vec.New(r.rng.Float64()*width, r.rng.Float64()*height)
	b := body.New(pos, vec.Zero())
	b.Mass = r.Mass
	b.Shape = body.Circle{Radius: g.Radius}
	b.Group = g.Name
	b.Color = g.Color
	return b, true
}

// Populate spawns n particles of group.
func (r *Registry) Populate(group string, n int, width, height float64) []*body.Body {
	out := make([]*body.Body, 0, n)
	for i := 0; i < n; i++ {
		b, ok := r.Spawn(group, width, height)
		if !ok {
			return nil
		}
		out = append(out, b)
	}
	return out
}

// SpawnRandom spawns a particle of a randomly chosen group.
func (r *Registry) SpawnRandom(width, height float64) (*body.Body, bool) {
	if len(r.order) == 0 {
		return nil, false
	}
	return r.Spawn(r.order[r.rng.Intn(len(r.order))], width, height)
}

func (r *Registry) RandomizeAttraction(min, max float64) {
	r.Table.Randomize(r.rng, min, max)
}

// Format renders every rule as "from -> to: value", one per line.
func (r *Registry) Format() []string {
	rules := r.Table.Rules()
	out := make([]string, len(rules))
	for i, rule := range rules {
		out[i] = rule.String()
	}
	return out
}

// RandomPoint returns a uniformly random point inside the scene, drawn
// from the registry's seeded source.
func (r *Registry) RandomPoint(width, height float64) vec.Vec2 {
	return vec.New(r.rng.Float64()*width, r.rng.Float64()*height)
}
