package sim

import (
	"context"
	"fmt"
)

// Simulator steps a Scene at a fixed dt without a display, feeding
// metrics and observers after every step.
type Simulator struct {
	scene     *Scene
	metrics   []Metric
	observers []Observer
}

func New(scene *Scene) *Simulator {
	return &Simulator{
		scene:     scene,
		metrics:   make([]Metric, 0),
		observers: make([]Observer, 0),
	}
}

func (s *Simulator) Scene() *Scene { return s.scene }

func (s *Simulator) AddMetric(m Metric)     { s.metrics = append(s.metrics, m) }
func (s *Simulator) AddObserver(o Observer) { s.observers = append(s.observers, o) }

func (s *Simulator) Run(ctx context.Context, cfg Config) (*Result, error) {
	if err := s.validateConfig(cfg); err != nil {
		return nil, err
	}

	steps := int(cfg.Duration / cfg.Dt)
	result := &Result{
		Times:   make([]float64, 0, steps+1),
		Metrics: make(map[string][]float64),
		Final:   make(map[string]float64),
		Errors:  make([]error, 0),
	}

	for _, m := range s.metrics {
		m.Reset()
	}

	t := 0.0
	s.observe(result, cfg, t)

	for i := 0; i < steps; i++ {
		select {
		case <-ctx.Done():
			s.finish(result)
			return result, ctx.Err()
		default:
		}

		s.scene.Tick(cfg.Dt)
		t += cfg.Dt

		if idx := firstInvalid(s.scene.Bodies()); idx >= 0 {
			err := SimError{Time: t, Step: i, Message: fmt.Sprintf("body %d has NaN/Inf state", idx)}
			result.Errors = append(result.Errors, err)
			break
		}

		result.StepsTaken++
		s.observe(result, cfg, t)
	}

	s.finish(result)
	return result, nil
}

func (s *Simulator) observe(result *Result, cfg Config, t float64) {
	bodies := s.scene.Bodies()
	result.Times = append(result.Times, t)
	for _, m := range s.metrics {
		m.Observe(bodies, t)
		result.Metrics[m.Name()] = append(result.Metrics[m.Name()], m.Value())
	}
	for _, obs := range s.observers {
		obs.OnStep(bodies, t)
	}
	if cfg.Record {
		result.Snapshots = append(result.Snapshots, takeSnapshot(bodies, t))
	}
}

func (s *Simulator) finish(result *Result) {
	for _, m := range s.metrics {
		result.Final[m.Name()] = m.Value()
	}
}

func (s *Simulator) validateConfig(cfg Config) error {
	if cfg.Dt <= 0 {
		return fmt.Errorf("%w: dt must be positive, got %f", ErrInvalidRunConfig, cfg.Dt)
	}
	if cfg.Duration <= 0 {
		return fmt.Errorf("%w: duration must be positive, got %f", ErrInvalidRunConfig, cfg.Duration)
	}
	return nil
}

// RunWithCallback steps until the duration elapses, the context is
// cancelled or callback returns false. The callback sees the time of
// the state it is shown.
func (s *Simulator) RunWithCallback(ctx context.Context, cfg Config, callback func(t float64) bool) error {
	if err := s.validateConfig(cfg); err != nil {
		return err
	}

	t := 0.0
	for step := 0; t < cfg.Duration; step++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if !callback(t) {
			return nil
		}

		s.scene.Tick(cfg.Dt)
		t += cfg.Dt

		if idx := firstInvalid(s.scene.Bodies()); idx >= 0 {
			return SimError{Time: t, Step: step, Message: fmt.Sprintf("body %d has NaN/Inf state", idx)}
		}
	}

	return nil
}
