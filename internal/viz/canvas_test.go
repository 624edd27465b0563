package viz

import (
	"strings"
	"testing"
)

func TestCanvasSetUnset(t *testing.T) {
	c := NewCanvas(4, 2)

	c.Set(3, 5)
	if !c.IsSet(3, 5) {
		t.Fatal("expected dot to be set")
	}
	if c.Grid[1][1] != 0x2800|0x10 {
		t.Errorf("unexpected cell rune %U", c.Grid[1][1])
	}

	c.Unset(3, 5)
	if c.IsSet(3, 5) || c.Grid[1][1] != 0x2800 {
		t.Error("expected dot to be cleared")
	}

	c.Set(-1, 0)
	c.Set(100, 100)
	if c.IsSet(-1, 0) || c.IsSet(100, 100) {
		t.Error("out of range dots must be ignored")
	}
}

func TestCanvasDrawLine(t *testing.T) {
	c := NewCanvas(10, 3)
	c.DrawLine(0, 0, 19, 0)

	w, _ := c.Dots()
	for x := 0; x < w; x++ {
		if !c.IsSet(x, 0) {
			t.Fatalf("dot %d on the line is not set", x)
		}
	}
	if c.IsSet(0, 1) {
		t.Error("dot below the line should be clear")
	}
}

func TestCanvasDrawCircle(t *testing.T) {
	c := NewCanvas(20, 10)
	c.DrawCircle(20, 20, 8)

	for _, p := range [][2]int{{28, 20}, {12, 20}, {20, 28}, {20, 12}} {
		if !c.IsSet(p[0], p[1]) {
			t.Errorf("expected %v on the circle", p)
		}
	}
	if c.IsSet(20, 20) {
		t.Error("centre should not be drawn for an outlined circle")
	}

	c.Clear()
	c.DrawCircle(5, 5, 0)
	if !c.IsSet(5, 5) {
		t.Error("sub-dot circle should light its centre")
	}
}

func TestCanvasString(t *testing.T) {
	c := NewCanvas(3, 2)
	lines := strings.Split(strings.TrimRight(c.String(), "\n"), "\n")
	if len(lines) != 2 || len([]rune(lines[0])) != 3 {
		t.Errorf("unexpected canvas shape: %q", c.String())
	}
}
