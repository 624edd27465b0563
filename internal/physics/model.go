package physics

import (
	"fmt"
	"strings"

	"github.com/san-kum/sandbox2d/internal/body"
)

// ForceModel applies one tick of forces, integration and wall handling.
type ForceModel interface {
	Name() string
	Apply(dt float64, bodies []*body.Body, ctx Context)
}

type Mode string

const (
	ModeEarth    Mode = "earth"
	ModeSpace    Mode = "space"
	ModeParticle Mode = "particle"
	ModeSpaceBH  Mode = "space-bh"
)

func Modes() []Mode {
	return []Mode{ModeEarth, ModeSpace, ModeParticle, ModeSpaceBH}
}

func ParseMode(s string) (Mode, error) {
	m := Mode(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Modes() {
		if m == known {
			return m, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownMode, s)
}

// NewModel returns the default force model for mode. table is only used
// by ModeParticle and may be nil.
func NewModel(mode Mode, table *AttractionTable) (ForceModel, error) {
	switch mode {
	case ModeEarth:
		return NewUniformField(), nil
	case ModeSpace:
		return NewPairwiseGravity(), nil
	case ModeParticle:
		return NewGroupedAttraction(table), nil
	case ModeSpaceBH:
		return NewApproxGravity(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownMode, string(mode))
	}
}
