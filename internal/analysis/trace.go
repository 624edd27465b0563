package analysis

import (
	"strings"

	"github.com/san-kum/sandbox2d/internal/body"
	"github.com/san-kum/sandbox2d/internal/sim"
	"github.com/san-kum/sandbox2d/internal/vec"
)

// Trace is a sequence of 2D points taken from a recorded run.
type Trace struct {
	Points []vec.Vec2
}

// PositionTrace follows body idx through snapshots.
func PositionTrace(snapshots []sim.Snapshot, idx int) *Trace {
	tr := &Trace{Points: make([]vec.Vec2, 0, len(snapshots))}
	for _, s := range snapshots {
		if idx < 0 || idx >= len(s.Positions) {
			return nil
		}
		tr.Points = append(tr.Points, s.Positions[idx])
	}
	return tr
}

// PhaseTrace pairs the coordinate of body idx on axis with its velocity
// on the same axis.
func PhaseTrace(snapshots []sim.Snapshot, idx int, axis body.Axis) *Trace {
	tr := &Trace{Points: make([]vec.Vec2, 0, len(snapshots))}
	for _, s := range snapshots {
		if idx < 0 || idx >= len(s.Positions) {
			return nil
		}
		p, v := s.Positions[idx], s.Velocities[idx]
		if axis == body.AxisX {
			tr.Points = append(tr.Points, vec.New(p.X, v.X))
		} else {
			tr.Points = append(tr.Points, vec.New(p.Y, v.Y))
		}
	}
	return tr
}

// TraceToASCII plots tr into a width×height grid. With screenY set, y
// grows downward as in scene coordinates.
func TraceToASCII(tr *Trace, width, height int, screenY bool) string {
	if tr == nil || len(tr.Points) == 0 || width < 2 || height < 2 {
		return ""
	}

	minX, maxX := tr.Points[0].X, tr.Points[0].X
	minY, maxY := tr.Points[0].Y, tr.Points[0].Y
	for _, p := range tr.Points {
		minX, maxX = min(minX, p.X), max(maxX, p.X)
		minY, maxY = min(minY, p.Y), max(maxY, p.Y)
	}

	rangeX := maxX - minX
	rangeY := maxY - minY
	if rangeX == 0 {
		rangeX = 1
	}
	if rangeY == 0 {
		rangeY = 1
	}
	minX -= rangeX * 0.1
	minY -= rangeY * 0.1
	rangeX *= 1.2
	rangeY *= 1.2

	grid := make([][]rune, height)
	for i := range grid {
		grid[i] = []rune(strings.Repeat(" ", width))
	}

	for _, p := range tr.Points {
		col := int((p.X - minX) / rangeX * float64(width-1))
		row := int((p.Y - minY) / rangeY * float64(height-1))
		if !screenY {
			row = height - 1 - row
		}
		if row >= 0 && row < height && col >= 0 && col < width {
			grid[row][col] = '•'
		}
	}

	if !screenY && minY <= 0 && minY+rangeY >= 0 {
		row := height - 1 - int((0-minY)/rangeY*float64(height-1))
		for col := 0; col < width; col++ {
			if row >= 0 && row < height && grid[row][col] == ' ' {
				grid[row][col] = '─'
			}
		}
	}

	var sb strings.Builder
	for _, row := range grid {
		sb.WriteString(string(row))
		sb.WriteRune('\n')
	}
	return sb.String()
}
