package metrics

import "github.com/san-kum/sandbox2d/internal/body"

// BoundaryContacts counts bodies resting on a scene wall at the latest
// observation.
type BoundaryContacts struct {
	name          string
	width, height float64
	useExtent     bool
	current       float64
}

// NewBoundaryContacts measures against [extent, dim-extent] when useExtent
// is set, otherwise against [0, dim].
func NewBoundaryContacts(width, height float64, useExtent bool) *BoundaryContacts {
	return &BoundaryContacts{name: "boundary_contacts", width: width, height: height, useExtent: useExtent}
}

func (w *BoundaryContacts) Name() string { return w.name }

func (w *BoundaryContacts) Observe(bodies []*body.Body, t float64) {
	n := 0
	for _, b := range bodies {
		ex, ey := 0.0, 0.0
		if w.useExtent {
			ex, ey = b.Extent(body.AxisX), b.Extent(body.AxisY)
		}
		if b.X() <= ex || b.X() >= w.width-ex || b.Y() <= ey || b.Y() >= w.height-ey {
			n++
		}
	}
	w.current = float64(n)
}

func (w *BoundaryContacts) Value() float64 { return w.current }
func (w *BoundaryContacts) Reset()         { w.current = 0 }
