package experiment

import (
	"context"
	"errors"
	"testing"

	"github.com/san-kum/sandbox2d/internal/body"
	"github.com/san-kum/sandbox2d/internal/config"
	"github.com/san-kum/sandbox2d/internal/physics"
)

func TestBuildBodies(t *testing.T) {
	cfg := config.GetPreset("earth", "drop")

	scene, _, err := Build(cfg)
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}
	if scene.Len() != 3 {
		t.Fatalf("expected 3 bodies, got %d", scene.Len())
	}

	kinds := []string{"circle", "polygon", "polygon"}
	for i, b := range scene.Bodies() {
		if b.Kind() != kinds[i] {
			t.Errorf("body %d: expected %s, got %s", i, kinds[i], b.Kind())
		}
		if b.Mass != body.DefaultMass {
			t.Errorf("body %d: expected default mass, got %f", i, b.Mass)
		}
	}
	if scene.Bodies()[2].Elasticity != 0.8 {
		t.Errorf("expected elasticity 0.8, got %f", scene.Bodies()[2].Elasticity)
	}
	if scene.Engine().Mode() != physics.ModeEarth {
		t.Errorf("expected earth engine, got %s", scene.Engine().Mode())
	}
}

func TestBuildGroups(t *testing.T) {
	cfg := config.GetPreset("particle", "chase")

	scene, reg, err := Build(cfg)
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}
	if scene.Len() != 300 {
		t.Fatalf("expected 300 particles, got %d", scene.Len())
	}
	if got := reg.Table.Get("red", "blue"); got != 800 {
		t.Errorf("expected rule red->blue 800, got %f", got)
	}
	if got := reg.Table.Get("blue", "red"); got != -600 {
		t.Errorf("expected rule blue->red -600, got %f", got)
	}

	model, ok := scene.Engine().Model().(*physics.GroupedAttraction)
	if !ok {
		t.Fatalf("expected grouped attraction, got %T", scene.Engine().Model())
	}
	if model.Table != reg.Table {
		t.Error("model and registry should share one table")
	}

	for _, b := range scene.Bodies() {
		if b.X() < 0 || b.X() >= cfg.Width || b.Y() < 0 || b.Y() >= cfg.Height {
			t.Fatalf("particle spawned outside scene: %v", b.Position)
		}
	}
}

func TestBuildDeterministicSeed(t *testing.T) {
	a, _, err := Build(config.GetPreset("particle", "life"))
	if err != nil {
		t.Fatal(err)
	}
	b, _, err := Build(config.GetPreset("particle", "life"))
	if err != nil {
		t.Fatal(err)
	}
	for i := range a.Bodies() {
		if a.Bodies()[i].Position != b.Bodies()[i].Position {
			t.Fatalf("body %d differs between builds with equal seeds", i)
		}
	}
}

func TestBuildPhysicsOverrides(t *testing.T) {
	cfg := config.GetPreset("space-bh", "galaxy")
	cfg.Physics.Theta = 0.9
	cfg.Groups[0].Count = 10

	scene, _, err := Build(cfg)
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}
	model := scene.Engine().Model().(*physics.ApproxGravity)
	if model.G != 1000 || model.Theta != 0.9 || model.Softening != physics.SpaceSoftening {
		t.Errorf("unexpected model constants: %+v", model)
	}
}

func TestBuildRejectsUnknownRuleGroup(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Mode = "particle"
	cfg.Attraction.Rules = []config.RuleConfig{{From: "ghost", To: "ghost", Value: 1}}

	_, _, err := Build(cfg)
	if !errors.Is(err, config.ErrInvalidConfig) || !errors.Is(err, physics.ErrUnknownGroup) {
		t.Errorf("expected invalid config wrapping unknown group, got %v", err)
	}
}

func TestBuildRejectsElasticityAboveOne(t *testing.T) {
	e := 1.5
	cfg := config.DefaultConfig()
	cfg.Bodies = []config.BodyConfig{{
		Shape:      config.ShapePoint,
		Position:   config.Vector{X: 50, Y: 50},
		Velocity:   config.Vector{X: -400},
		Elasticity: &e,
	}}

	if _, _, err := Build(cfg); !errors.Is(err, config.ErrInvalidConfig) {
		t.Errorf("expected ErrInvalidConfig, got %v", err)
	}
}

func TestBuildWallBounceKeepsSpeed(t *testing.T) {
	e := 1.0
	cfg := config.DefaultConfig()
	cfg.Bodies = []config.BodyConfig{{
		Shape:      config.ShapePoint,
		Position:   config.Vector{X: 50, Y: 50},
		Velocity:   config.Vector{X: -400},
		Elasticity: &e,
	}}

	scene, _, err := Build(cfg)
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}
	scene.Tick(1)

	b := scene.Bodies()[0]
	if b.VX() != 400 {
		t.Errorf("expected vx 400 after wall hit, got %v", b.VX())
	}
}

func TestRegistry(t *testing.T) {
	r := NewRegistry()

	if got := r.ListModels(); len(got) != 4 || got[0] != "earth" {
		t.Errorf("unexpected models %v", got)
	}
	if _, err := r.GetModel("moon", config.PhysicsConfig{}, nil); !errors.Is(err, ErrUnknownModel) {
		t.Errorf("expected ErrUnknownModel, got %v", err)
	}

	m, err := r.GetModel(physics.ModeEarth, config.PhysicsConfig{Gravity: 10}, nil)
	if err != nil {
		t.Fatal(err)
	}
	if m.(*physics.UniformField).Gravity != 10 {
		t.Error("gravity override not applied")
	}

	if len(r.DefaultMetrics(physics.ModeSpace, 800, 600)) != 5 {
		t.Error("expected 5 default metrics")
	}
}

func TestExperimentRunAndReset(t *testing.T) {
	cfg := config.GetPreset("earth", "throw")
	cfg.Duration = 1

	e, err := New(cfg)
	if err != nil {
		t.Fatalf("new failed: %v", err)
	}

	result, err := e.Run(context.Background())
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if result.StepsTaken == 0 {
		t.Error("expected steps to be taken")
	}
	if _, ok := result.Final["kinetic_energy"]; !ok {
		t.Error("kinetic energy metric missing")
	}

	moved := e.Scene().Bodies()[0].Position
	if err := e.Reset(); err != nil {
		t.Fatal(err)
	}
	if e.Scene().Bodies()[0].Position == moved {
		t.Error("reset should restore the initial position")
	}
}

func TestExperimentEnsemble(t *testing.T) {
	cfg := config.GetPreset("space", "cluster")
	cfg.Duration = 0.1
	cfg.Groups[0].Count = 20

	e, err := New(cfg)
	if err != nil {
		t.Fatal(err)
	}
	results, err := e.Ensemble(context.Background(), 3)
	if err != nil {
		t.Fatalf("ensemble failed: %v", err)
	}
	if len(results) != 3 {
		t.Errorf("expected 3 results, got %d", len(results))
	}
}
