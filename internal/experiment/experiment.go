package experiment

import (
	"context"
	"fmt"

	"github.com/san-kum/sandbox2d/internal/body"
	"github.com/san-kum/sandbox2d/internal/config"
	"github.com/san-kum/sandbox2d/internal/particles"
	"github.com/san-kum/sandbox2d/internal/physics"
	"github.com/san-kum/sandbox2d/internal/sim"
)

var defaultRegistry = NewRegistry()

// Build creates a populated scene from cfg: explicit bodies first, then
// the spawned members of each group. The returned particle registry owns
// the attraction table used by the particle model.
func Build(cfg *config.Config) (*sim.Scene, *particles.Registry, error) {
	return defaultRegistry.Build(cfg)
}

func (r *Registry) Build(cfg *config.Config) (*sim.Scene, *particles.Registry, error) {
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}
	mode, _ := cfg.ParsedMode()

	reg := particles.NewRegistry(cfg.Seed)
	model, err := r.GetModel(mode, cfg.Physics, reg.Table)
	if err != nil {
		return nil, nil, err
	}

	scene := sim.NewScene(physics.NewEngine(model), cfg.Width, cfg.Height)
	scene.Debug = cfg.Debug

	for i, bc := range cfg.Bodies {
		b := newBody(bc)
		if err := b.Validate(); err != nil {
			return nil, nil, fmt.Errorf("%w: body %d: %w", config.ErrInvalidConfig, i, err)
		}
		if b.Group != "" {
			reg.RegisterGroup(b.Group, b.Color, bc.Radius)
		}
		scene.AddBody(b)
	}

	for _, g := range cfg.Groups {
		reg.RegisterGroup(g.Name, g.Color, g.Radius)
	}
	for _, g := range cfg.Groups {
		for _, b := range reg.Populate(g.Name, g.Count, cfg.Width, cfg.Height) {
			scene.AddBody(b)
		}
	}

	if cfg.Attraction.Randomize {
		reg.RandomizeAttraction(cfg.Attraction.Min, cfg.Attraction.Max)
	}
	for _, rule := range cfg.Attraction.Rules {
		if err := reg.Table.Set(rule.From, rule.To, rule.Value); err != nil {
			return nil, nil, fmt.Errorf("%w: %w", config.ErrInvalidConfig, err)
		}
	}

	return scene, reg, nil
}

func newBody(bc config.BodyConfig) *body.Body {
	pos := bc.Position.Vec()
	var b *body.Body
	switch bc.ShapeName() {
	case config.ShapeRectangle:
		b = body.Rectangle(pos.X, pos.Y, orDefault(bc.Width, 2*config.DefaultRadius), orDefault(bc.Height, 2*config.DefaultRadius))
	case config.ShapeTriangle:
		b = body.Triangle(pos.X, pos.Y, orDefault(bc.Width, 2*config.DefaultRadius), orDefault(bc.Height, 2*config.DefaultRadius))
	case config.ShapePoint:
		b = body.New(pos, bc.Velocity.Vec())
	default:
		b = body.NewCircle(pos.X, pos.Y, orDefault(bc.Radius, config.DefaultRadius))
	}

	b.Velocity = bc.Velocity.Vec()
	if bc.Mass > 0 {
		b.Mass = bc.Mass
	}
	if bc.Elasticity != nil {
		b.Elasticity = *bc.Elasticity
	}
	b.Group = bc.Group
	b.Color = bc.Color
	return b
}

func orDefault(v, def float64) float64 {
	if v > 0 {
		return v
	}
	return def
}

// Experiment bundles a built scene with a headless simulator carrying
// the mode's default metrics.
type Experiment struct {
	cfg       *config.Config
	registry  *Registry
	scene     *sim.Scene
	particles *particles.Registry
	simulator *sim.Simulator
}

func New(cfg *config.Config) (*Experiment, error) {
	e := &Experiment{cfg: cfg, registry: defaultRegistry}
	if err := e.Reset(); err != nil {
		return nil, err
	}
	return e, nil
}

// Reset rebuilds the scene from the config, discarding all state.
func (e *Experiment) Reset() error {
	scene, reg, err := e.registry.Build(e.cfg)
	if err != nil {
		return err
	}
	mode, _ := e.cfg.ParsedMode()

	e.scene = scene
	e.particles = reg
	e.simulator = sim.New(scene)
	for _, m := range e.registry.DefaultMetrics(mode, e.cfg.Width, e.cfg.Height) {
		e.simulator.AddMetric(m)
	}
	return nil
}

func (e *Experiment) Run(ctx context.Context) (*sim.Result, error) {
	return e.simulator.Run(ctx, e.RunConfig())
}

func (e *Experiment) RunConfig() sim.Config {
	return sim.Config{Dt: e.cfg.Dt, Duration: e.cfg.Duration}
}

func (e *Experiment) Config() *config.Config         { return e.cfg }
func (e *Experiment) Scene() *sim.Scene              { return e.scene }
func (e *Experiment) Particles() *particles.Registry { return e.particles }
func (e *Experiment) Simulator() *sim.Simulator      { return e.simulator }

func (e *Experiment) Mode() physics.Mode {
	mode, _ := e.cfg.ParsedMode()
	return mode
}

// Ensemble runs the experiment under numRuns consecutive seeds starting
// at the config's seed.
func (e *Experiment) Ensemble(ctx context.Context, numRuns int) ([]*sim.Result, error) {
	build := func(seed int64) (*sim.Simulator, error) {
		cfg := e.cfg.Clone()
		cfg.Seed = seed
		run, err := New(cfg)
		if err != nil {
			return nil, err
		}
		return run.Simulator(), nil
	}
	return sim.NewEnsemble(build, numRuns, e.cfg.Seed).Run(ctx, e.RunConfig())
}
