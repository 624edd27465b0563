package body

import (
	"errors"
	"math"
	"testing"

	"github.com/san-kum/sandbox2d/internal/vec"
)

func TestShapeExtent(t *testing.T) {
	tests := []struct {
		name  string
		shape Shape
		x, y  float64
	}{
		{"point", Point{}, 0, 0},
		{"circle", Circle{Radius: 20}, 20, 20},
		{"rectangle", Rectangle(0, 0, 40, 10).Shape, 20, 5},
		{"triangle", Triangle(0, 0, 30, 12).Shape, 15, 6},
		{"empty polygon", Polygon{}, 0, 0},
		{"offset polygon", Polygon{Vertices: []vec.Vec2{{X: 2, Y: 1}, {X: 8, Y: 5}}}, 3, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.shape.Extent(AxisX); math.Abs(got-tt.x) > 1e-12 {
				t.Errorf("Extent(X) = %v, want %v", got, tt.x)
			}
			if got := tt.shape.Extent(AxisY); math.Abs(got-tt.y) > 1e-12 {
				t.Errorf("Extent(Y) = %v, want %v", got, tt.y)
			}
		})
	}
}

func TestBodyAccessorsAlias(t *testing.T) {
	b := New(vec.New(1, 2), vec.New(3, 4))
	b.SetX(10)
	b.SetVY(-7)

	if b.Position.X != 10 || b.X() != 10 || b.Y() != 2 {
		t.Errorf("position alias broken: %v", b.Position)
	}
	if b.Velocity.Y != -7 || b.VY() != -7 || b.VX() != 3 {
		t.Errorf("velocity alias broken: %v", b.Velocity)
	}
}

func TestBodyDefaults(t *testing.T) {
	b := NewCircle(5, 6, 20)
	if b.Mass != DefaultMass || b.Elasticity != DefaultElasticity {
		t.Errorf("unexpected defaults: mass=%v elasticity=%v", b.Mass, b.Elasticity)
	}
	if b.Kind() != "circle" || b.Extent(AxisX) != 20 {
		t.Errorf("unexpected shape: %s extent %v", b.Kind(), b.Extent(AxisX))
	}
	if (&Body{}).Extent(AxisY) != 0 {
		t.Error("nil shape should have zero extent")
	}
}

func TestBodyValidate(t *testing.T) {
	tests := []struct {
		name       string
		mass, elas float64
		valid      bool
	}{
		{"ok", 1, 0.5, true},
		{"zero mass", 0, 0.5, false},
		{"negative mass", -1, 0.5, false},
		{"nan mass", math.NaN(), 0.5, false},
		{"elasticity above one", 1, 1.5, false},
		{"elasticity below zero", 1, -0.1, false},
		{"bounds inclusive", 1, 1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := &Body{Mass: tt.mass, Elasticity: tt.elas}
			err := b.Validate()
			if tt.valid && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
			if !tt.valid && !errors.Is(err, ErrInvalidBody) {
				t.Errorf("expected ErrInvalidBody, got %v", err)
			}
		})
	}
}

func TestPolygonWorldAndClone(t *testing.T) {
	b := Rectangle(100, 50, 20, 10)
	world := b.Shape.(Polygon).World(b.Position)
	if world[0] != (vec.Vec2{X: 90, Y: 45}) || world[2] != (vec.Vec2{X: 110, Y: 55}) {
		t.Errorf("World = %v", world)
	}

	c := b.Clone()
	c.Shape.(Polygon).Vertices[0].X = 999
	if b.Shape.(Polygon).Vertices[0].X == 999 {
		t.Error("Clone shares polygon vertices")
	}
}
