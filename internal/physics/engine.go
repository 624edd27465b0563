package physics

import (
	"math"

	"github.com/san-kum/sandbox2d/internal/body"
)

// Engine runs one force model per tick. The model is fixed for the
// lifetime of the engine.
type Engine struct {
	model ForceModel
}

func NewEngine(model ForceModel) *Engine {
	return &Engine{model: model}
}

// New builds an engine with the default model for mode.
func New(mode Mode, table *AttractionTable) (*Engine, error) {
	m, err := NewModel(mode, table)
	if err != nil {
		return nil, err
	}
	return NewEngine(m), nil
}

func (e *Engine) Model() ForceModel { return e.model }

func (e *Engine) Mode() Mode { return Mode(e.model.Name()) }

// Step advances bodies by dt seconds in place. A negative, NaN or
// infinite dt is treated as zero. Bodies are never added, removed or
// reordered.
func (e *Engine) Step(dt float64, bodies []*body.Body, ctx Context) {
	if math.IsNaN(dt) || math.IsInf(dt, 0) || dt < 0 {
		dt = 0
	}
	e.model.Apply(dt, bodies, ctx)
}
