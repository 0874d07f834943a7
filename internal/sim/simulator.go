package sim

import (
	"context"
	"math"

	"k8s.io/klog/v2"

	"github.com/san-kum/spacesim/internal/physics"
	"github.com/san-kum/spacesim/internal/vec"
)

type Simulator struct {
	metrics   []Metric
	observers []Observer
}

type Option func(*Simulator)

func WithMetric(m Metric) Option     { return func(s *Simulator) { s.AddMetric(m) } }
func WithObserver(o Observer) Option { return func(s *Simulator) { s.AddObserver(o) } }

func New(opts ...Option) *Simulator {
	s := &Simulator{
		metrics:   make([]Metric, 0),
		observers: make([]Observer, 0),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Simulator) AddMetric(m Metric)     { s.metrics = append(s.metrics, m) }
func (s *Simulator) AddObserver(o Observer) { s.observers = append(s.observers, o) }

// Run simulates a copy of pop0 and returns the sampled frames. The caller's
// slice is left untouched. On cancellation the partial result is returned
// together with ctx.Err().
func (s *Simulator) Run(ctx context.Context, pop0 []physics.Entity, cfg Config) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := Validate(pop0); err != nil {
		return nil, err
	}

	steps := cfg.Steps()
	result := &Result{
		Frames:  make([]Frame, 0, steps/cfg.SampleEvery+2),
		Metrics: make(map[string]float64),
		Errors:  make([]error, 0),
	}

	for _, m := range s.metrics {
		m.Reset()
	}

	pop := physics.Clone(pop0)
	t := 0.0
	g := cfg.Physics.EnergyG()

	result.Frames = append(result.Frames, Frame{Step: 0, Time: t, Entities: physics.Clone(pop)})

	initialEnergy := physics.TotalEnergy(pop, g)
	initialMomentum := physics.TotalMomentum(pop)

	klog.V(2).Infof("sim: running %d entities for %d steps (dt=%g)", len(pop), steps, cfg.Dt)

	aborted := false
	for i := 1; i <= steps; i++ {
		select {
		case <-ctx.Done():
			return result, ctx.Err()
		default:
		}

		stats := cfg.Physics.Step(pop, cfg.Dt)
		t += cfg.Dt
		result.Collisions += stats.Collisions
		result.WallHits += stats.WallHits

		if cfg.ValidateState {
			if idx := physics.FirstNonFinite(pop); idx >= 0 {
				err := &SimError{Step: i, Time: t, Index: idx, Message: "non-finite state", Wrapped: ErrInvalidState}
				klog.Warningf("sim: %v", err)
				result.Errors = append(result.Errors, err)
				aborted = true
				break
			}
		}
		result.StepsTaken = i

		for _, m := range s.metrics {
			m.Observe(pop, t)
		}
		for _, obs := range s.observers {
			obs.OnStep(pop, stats, t)
		}

		if i%cfg.SampleEvery == 0 || i == steps {
			result.Frames = append(result.Frames, Frame{Step: i, Time: t, Entities: physics.Clone(pop)})
		}
		if klog.V(4).Enabled() && stats.Collisions > 0 {
			klog.Infof("sim: step %d resolved %d collisions", i, stats.Collisions)
		}
	}

	// An aborted run is measured at its last recorded frame, which passed
	// validation.
	final := pop
	if aborted {
		final = result.Frames[len(result.Frames)-1].Entities
	}
	result.EnergyDrift = energyDrift(initialEnergy, physics.TotalEnergy(final, g))
	result.MomentumDrift = momentumDrift(initialMomentum, physics.TotalMomentum(final))

	for _, m := range s.metrics {
		v := m.Value()
		if !isFinite(v) {
			klog.Warningf("sim: dropping non-finite metric %s=%v", m.Name(), v)
			continue
		}
		result.Metrics[m.Name()] = v
	}

	klog.V(2).Infof("sim: done after %d steps, %d collisions, %d wall hits", result.StepsTaken, result.Collisions, result.WallHits)
	return result, nil
}

// RunWithCallback steps pop in place, calling fn before each step and once
// after the last. Returning false from fn stops the run early.
func (s *Simulator) RunWithCallback(ctx context.Context, pop []physics.Entity, cfg Config, fn func([]physics.Entity, float64) bool) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	if err := Validate(pop); err != nil {
		return err
	}

	t := 0.0
	for i := 1; i <= cfg.Steps(); i++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if !fn(pop, t) {
			return nil
		}

		stats := cfg.Physics.Step(pop, cfg.Dt)
		t += cfg.Dt

		if cfg.ValidateState {
			if idx := physics.FirstNonFinite(pop); idx >= 0 {
				return &SimError{Step: i, Time: t, Index: idx, Message: "non-finite state", Wrapped: ErrInvalidState}
			}
		}
		for _, obs := range s.observers {
			obs.OnStep(pop, stats, t)
		}
	}
	fn(pop, t)
	return nil
}

// energyDrift is |e1-e0|/|e0|, or zero when it is undefined.
func energyDrift(e0, e1 float64) float64 {
	if e0 == 0 || !isFinite(e0) || !isFinite(e1) {
		return 0
	}
	return math.Abs(e1-e0) / math.Abs(e0)
}

func momentumDrift(p0, p1 physics.Vec) float64 {
	d := vec.Length(p1.Sub(p0))
	if n := vec.Length(p0); n > 0 {
		d /= n
	}
	if !isFinite(d) {
		return 0
	}
	return d
}

func isFinite(f float64) bool { return !math.IsNaN(f) && !math.IsInf(f, 0) }
