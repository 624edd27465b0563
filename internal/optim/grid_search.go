// Package optim sweeps scene parameters over a grid and keeps the
// combination that minimises a metric.
package optim

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/san-kum/sandbox2d/internal/config"
	"github.com/san-kum/sandbox2d/internal/experiment"
)

var (
	ErrUnknownParam = errors.New("unknown parameter")
	ErrNoRuns       = errors.New("no run completed")
)

// Params lists the config fields a sweep may vary.
var Params = map[string]func(c *config.Config, v float64){
	"gravity":   func(c *config.Config, v float64) { c.Physics.Gravity = v },
	"g":         func(c *config.Config, v float64) { c.Physics.G = v },
	"softening": func(c *config.Config, v float64) { c.Physics.Softening = v },
	"theta":     func(c *config.Config, v float64) { c.Physics.Theta = v },
	"dt":        func(c *config.Config, v float64) { c.Dt = v },
	"seed":      func(c *config.Config, v float64) { c.Seed = int64(v) },
}

type GridSearch struct {
	paramNames []string
	ranges     [][]float64
}

func NewGridSearch(params []string, ranges [][]float64) (*GridSearch, error) {
	if len(params) != len(ranges) {
		return nil, fmt.Errorf("%d parameters but %d ranges", len(params), len(ranges))
	}
	for _, p := range params {
		if _, ok := Params[p]; !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnknownParam, p)
		}
	}
	return &GridSearch{paramNames: params, ranges: ranges}, nil
}

// ParseParam reads "name=v1,v2,...".
func ParseParam(s string) (string, []float64, error) {
	name, list, ok := strings.Cut(s, "=")
	if !ok {
		return "", nil, fmt.Errorf("expected name=v1,v2: %q", s)
	}
	name = strings.ToLower(strings.TrimSpace(name))
	var vals []float64
	for _, f := range strings.Split(list, ",") {
		var v float64
		if _, err := fmt.Sscanf(strings.TrimSpace(f), "%g", &v); err != nil {
			return "", nil, fmt.Errorf("bad value %q for %s", f, name)
		}
		vals = append(vals, v)
	}
	return name, vals, nil
}

// Search runs every combination on a copy of base and returns the one
// with the smallest final value of metricName. Combinations that fail
// to build or run are skipped.
func (g *GridSearch) Search(ctx context.Context, base *config.Config, metricName string) (map[string]float64, float64, error) {
	best := math.Inf(1)
	var bestParams map[string]float64

	g.searchRecursive(ctx, 0, make(map[string]float64), base, metricName, &best, &bestParams)

	if err := ctx.Err(); err != nil {
		return bestParams, best, err
	}
	if bestParams == nil {
		return nil, best, ErrNoRuns
	}
	return bestParams, best, nil
}

func (g *GridSearch) searchRecursive(
	ctx context.Context,
	depth int,
	current map[string]float64,
	base *config.Config,
	metricName string,
	best *float64,
	bestParams *map[string]float64,
) {
	if ctx.Err() != nil {
		return
	}
	if depth == len(g.paramNames) {
		cfg := base.Clone()
		for k, v := range current {
			Params[k](cfg, v)
		}

		exp, err := experiment.New(cfg)
		if err != nil {
			return
		}

		result, err := exp.Run(ctx)
		if err != nil || len(result.Errors) > 0 {
			return
		}

		val, ok := result.Final[metricName]
		if ok && val < *best {
			*best = val
			*bestParams = make(map[string]float64)
			for k, v := range current {
				(*bestParams)[k] = v
			}
		}
		return
	}

	paramName := g.paramNames[depth]
	for _, val := range g.ranges[depth] {
		newParams := make(map[string]float64)
		for k, v := range current {
			newParams[k] = v
		}
		newParams[paramName] = val

		g.searchRecursive(ctx, depth+1, newParams, base, metricName, best, bestParams)
	}
}
