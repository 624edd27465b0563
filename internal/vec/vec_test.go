package vec

import (
	"errors"
	"math"
	"testing"
)

func TestVec2_Magnitude(t *testing.T) {
	tests := []struct {
		v        Vec2
		expected float64
	}{
		{Vec2{3, 4}, 5.0},
		{Vec2{0, 0}, 0.0},
		{Vec2{-3, -4}, 5.0},
		{Vec2{1, 0}, 1.0},
	}

	for _, tt := range tests {
		if got := tt.v.Magnitude(); math.Abs(got-tt.expected) > 1e-12 {
			t.Errorf("Magnitude(%v) = %v, want %v", tt.v, got, tt.expected)
		}
		if got := tt.v.MagnitudeSquared(); math.Abs(got-tt.expected*tt.expected) > 1e-12 {
			t.Errorf("MagnitudeSquared(%v) = %v, want %v", tt.v, got, tt.expected*tt.expected)
		}
	}
}

func TestVec2_NormalizeZero(t *testing.T) {
	v := Vec2{}
	v.Normalize()
	if v.X != 0 || v.Y != 0 || math.IsNaN(v.X) || math.IsNaN(v.Y) {
		t.Errorf("Normalize of zero = %v, want (0,0)", v)
	}

	n := Vec2{}.Normalized()
	if n != (Vec2{}) {
		t.Errorf("Normalized of zero = %v, want (0,0)", n)
	}
}

func TestVec2_Normalize(t *testing.T) {
	v := Vec2{3, 4}
	n := v.Normalized()
	if math.Abs(n.X-0.6) > 1e-12 || math.Abs(n.Y-0.8) > 1e-12 {
		t.Errorf("Normalized = %v, want (0.6, 0.8)", n)
	}
	if v != (Vec2{3, 4}) {
		t.Errorf("Normalized mutated receiver: %v", v)
	}

	v.Normalize()
	if math.Abs(v.Magnitude()-1) > 1e-12 {
		t.Errorf("Normalize magnitude = %v, want 1", v.Magnitude())
	}
}

func TestVec2_InPlace(t *testing.T) {
	v := Vec2{1, 2}
	v.Add(Vec2{3, 4}).Scale(2)
	if v != (Vec2{8, 12}) {
		t.Errorf("Add+Scale = %v, want (8, 12)", v)
	}

	v.Sub(Vec2{8, 2})
	if v != (Vec2{0, 10}) {
		t.Errorf("Sub = %v, want (0, 10)", v)
	}

	v = Vec2{2, -3}
	v.InvertX()
	if v != (Vec2{-2, -3}) {
		t.Errorf("InvertX = %v", v)
	}
	v.InvertY()
	if v != (Vec2{-2, 3}) {
		t.Errorf("InvertY = %v", v)
	}
	v.Invert()
	if v != (Vec2{2, -3}) {
		t.Errorf("Invert = %v", v)
	}

	v.CopyX(Vec2{7, 9})
	if v != (Vec2{7, -3}) {
		t.Errorf("CopyX = %v", v)
	}
	v.CopyY(Vec2{7, 9})
	if v != (Vec2{7, 9}) {
		t.Errorf("CopyY = %v", v)
	}
	v.Copy(Vec2{})
	if !v.IsZero() {
		t.Errorf("Copy = %v", v)
	}
}

func TestVec2_ValueFormsDoNotMutate(t *testing.T) {
	a := Vec2{1, 2}
	b := Vec2{3, 5}

	sum := a.Plus(b)
	diff := b.Minus(a)
	scaled := a.Scaled(3)
	inv := a.Inverted()
	invX := a.InvertedX()
	invY := a.InvertedY()

	if sum != (Vec2{4, 7}) || diff != (Vec2{2, 3}) || scaled != (Vec2{3, 6}) {
		t.Errorf("arithmetic failed: %v %v %v", sum, diff, scaled)
	}
	if inv != (Vec2{-1, -2}) || invX != (Vec2{-1, 2}) || invY != (Vec2{1, -2}) {
		t.Errorf("inversion failed: %v %v %v", inv, invX, invY)
	}
	if a != (Vec2{1, 2}) || b != (Vec2{3, 5}) {
		t.Errorf("value forms mutated inputs: a=%v b=%v", a, b)
	}
}

func TestVec2_Distance(t *testing.T) {
	a := Vec2{1, 1}
	b := Vec2{4, 5}
	if got := a.DistanceTo(b); math.Abs(got-5) > 1e-12 {
		t.Errorf("DistanceTo = %v, want 5", got)
	}
	if got := b.DistanceToSquared(a); math.Abs(got-25) > 1e-12 {
		t.Errorf("DistanceToSquared = %v, want 25", got)
	}
}

func TestFromSlice(t *testing.T) {
	tests := []struct {
		name    string
		in      []any
		want    Vec2
		wantErr bool
	}{
		{"floats", []any{1.5, -2.0}, Vec2{1.5, -2}, false},
		{"ints", []any{3, 4}, Vec2{3, 4}, false},
		{"numeric strings", []any{"10", " 2.5 "}, Vec2{10, 2.5}, false},
		{"bool coerces", []any{true, false}, Vec2{1, 0}, false},
		{"missing element", []any{1.0}, Vec2{}, true},
		{"empty", nil, Vec2{}, true},
		{"non numeric", []any{"abc", 1}, Vec2{}, true},
		{"nan string", []any{"NaN", 1}, Vec2{}, true},
		{"nan float", []any{1, math.NaN()}, Vec2{}, true},
		{"nil component", []any{nil, 1}, Vec2{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FromSlice(tt.in)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidVector) {
					t.Fatalf("expected ErrInvalidVector, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("FromSlice = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFromMap(t *testing.T) {
	tests := []struct {
		name    string
		in      map[string]any
		want    Vec2
		wantErr bool
	}{
		{"floats", map[string]any{"x": 1.0, "y": 2.0}, Vec2{1, 2}, false},
		{"strings", map[string]any{"x": "7", "y": 8}, Vec2{7, 8}, false},
		{"missing y", map[string]any{"x": 1.0}, Vec2{}, true},
		{"nan", map[string]any{"x": "nope", "y": 1}, Vec2{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FromMap(tt.in)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidVector) {
					t.Fatalf("expected ErrInvalidVector, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("FromMap = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParse(t *testing.T) {
	if v, err := Parse([]any{1, 2}); err != nil || v != (Vec2{1, 2}) {
		t.Errorf("Parse slice = %v, %v", v, err)
	}
	if v, err := Parse(map[string]any{"x": 3, "y": 4}); err != nil || v != (Vec2{3, 4}) {
		t.Errorf("Parse map = %v, %v", v, err)
	}
	if _, err := Parse("1,2"); !errors.Is(err, ErrInvalidVector) {
		t.Errorf("Parse string: expected ErrInvalidVector, got %v", err)
	}
	if _, err := Parse(nil); !errors.Is(err, ErrInvalidVector) {
		t.Errorf("Parse nil: expected ErrInvalidVector, got %v", err)
	}
}
