package particles

import (
	"testing"

	"github.com/san-kum/sandbox2d/internal/body"
	"github.com/san-kum/sandbox2d/internal/physics"
)

func TestRegisterGroupIdempotent(t *testing.T) {
	r := NewRegistry(1)
	if !r.RegisterGroup("red", "red", 3) {
		t.Fatal("first registration should succeed")
	}
	r.RegisterGroup("blue", "blue", 3)
	r.Table.Set("red", "blue", 42)

	before := r.Table.Rules()
	if r.RegisterGroup("red", "magenta", 9) {
		t.Error("second registration should be a no-op")
	}
	after := r.Table.Rules()

	if len(before) != len(after) {
		t.Fatalf("rule count changed: %d -> %d", len(before), len(after))
	}
	for i := range before {
		if before[i] != after[i] {
			t.Errorf("rule %d changed: %v -> %v", i, before[i], after[i])
		}
	}
	if g, _ := r.Group("red"); g.Color != "red" || g.Radius != 3 {
		t.Errorf("display settings overwritten: %+v", g)
	}
}

func TestRegisterGroupDefaults(t *testing.T) {
	r := NewRegistry(1)
	r.RegisterGroup("a", "a", 1)
	r.RegisterGroup("b", "b", 1)

	for _, rule := range r.Table.Rules() {
		if rule.Value != physics.DefaultAttraction {
			t.Errorf("%s, want default", rule)
		}
	}
	if len(r.Format()) != 4 {
		t.Errorf("expected 4 formatted rules, got %d", len(r.Format()))
	}
}

func TestSpawn(t *testing.T) {
	r := NewRegistry(3)
	if _, ok := r.Spawn("ghost", 100, 100); ok {
		t.Error("spawn of unknown group should fail")
	}

	r.RegisterGroup("green", "#00ff00", 3)
	for i := 0; i < 50; i++ {
		b, ok := r.Spawn("green", 800, 600)
		if !ok {
			t.Fatal("spawn failed")
		}
		if b.X() < 0 || b.X() > 800 || b.Y() < 0 || b.Y() > 600 {
			t.Errorf("spawned outside scene: %v", b.Position)
		}
		if b.Mass != DefaultMass || b.Group != "green" || b.Color != "#00ff00" {
			t.Errorf("unexpected particle: %+v", b)
		}
		if b.Extent(body.AxisX) != 3 {
			t.Errorf("radius = %v, want 3", b.Extent(body.AxisX))
		}
	}
}

func TestPopulate(t *testing.T) {
	r := NewRegistry(3)
	r.RegisterGroup("yellow", "yellow", 3)

	if got := r.Populate("yellow", 200, 800, 600); len(got) != 200 {
		t.Errorf("Populate = %d bodies, want 200", len(got))
	}
	if got := r.Populate("nope", 5, 800, 600); got != nil {
		t.Errorf("Populate unknown = %v, want nil", got)
	}
}

func TestRandomizeAttractionDeterministic(t *testing.T) {
	build := func() *Registry {
		r := NewRegistry(99)
		for _, g := range []string{"blue", "red", "green", "yellow"} {
			r.RegisterGroup(g, g, 3)
		}
		r.RandomizeAttraction(DefaultRandomMin, DefaultRandomMax)
		return r
	}

	a, b := build().Table.Rules(), build().Table.Rules()
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("same seed produced different rules at %d: %v vs %v", i, a[i], b[i])
		}
		if a[i].Value < DefaultRandomMin || a[i].Value >= DefaultRandomMax {
			t.Errorf("%s out of range", a[i])
		}
	}
}

func TestSpawnRandom(t *testing.T) {
	r := NewRegistry(5)
	if _, ok := r.SpawnRandom(10, 10); ok {
		t.Error("SpawnRandom with no groups should fail")
	}
	r.RegisterGroup("red", "red", 2)
	b, ok := r.SpawnRandom(10, 10)
	if !ok || b.Group != "red" {
		t.Errorf("SpawnRandom = %+v, %v", b, ok)
	}
}
