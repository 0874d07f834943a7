package sim

import (
	"fmt"
	"math"

	"github.com/san-kum/spacesim/internal/physics"
)

type Metric interface {
	Name() string
	Observe(pop []physics.Entity, t float64)
	Value() float64
	Reset()
}

type Observer interface {
	OnStep(pop []physics.Entity, stats physics.StepStats, t float64)
}

type Config struct {
	Dt            float64
	Duration      float64
	SampleEvery   int
	Seed          int64
	ValidateState bool
	Physics       physics.Options
}

func DefaultConfig() Config {
	return Config{
		Dt:            10.0 / 3.0,
		Duration:      1000.0,
		SampleEvery:   10,
		ValidateState: true,
		Physics:       physics.DefaultOptions(),
	}
}

// Steps is the number of whole steps that fit in Duration.
func (c Config) Steps() int {
	return int(c.Duration / c.Dt)
}

func (c Config) Validate() error {
	if c.Dt <= 0 || math.IsNaN(c.Dt) || math.IsInf(c.Dt, 0) {
		return fmt.Errorf("%w: dt must be positive, got %f", ErrInvalidConfig, c.Dt)
	}
	if c.Duration <= 0 {
		return fmt.Errorf("%w: duration must be positive, got %f", ErrInvalidConfig, c.Duration)
	}
	if c.SampleEvery < 1 {
		return fmt.Errorf("%w: sample_every must be at least 1, got %d", ErrInvalidConfig, c.SampleEvery)
	}
	return nil
}

// Frame is a sampled copy of the population.
type Frame struct {
	Step     int
	Time     float64
	Entities []physics.Entity
}

type Result struct {
	Frames        []Frame
	Metrics       map[string]float64
	EnergyDrift   float64
	MomentumDrift float64
	StepsTaken    int
	Collisions    int
	WallHits      int
	Errors        []error
}

// Final returns the last recorded frame.
func (r *Result) Final() Frame {
	if len(r.Frames) == 0 {
		return Frame{}
	}
	return r.Frames[len(r.Frames)-1]
}

// Series maps every frame to a scalar, e.g. physics.KineticEnergy.
func Series(frames []Frame, fn func([]physics.Entity) float64) []float64 {
	out := make([]float64, len(frames))
	for i, f := range frames {
		out[i] = fn(f.Entities)
	}
	return out
}

// Validate checks the construction invariants the physics step relies on.
func Validate(pop []physics.Entity) error {
	if len(pop) == 0 {
		return ErrEmptyPopulation
	}
	for i := range pop {
		e := &pop[i]
		switch {
		case !e.IsFinite():
			return fmt.Errorf("%w: entity %d has non-finite state", ErrInvalidEntity, i)
		case e.Mass <= 0:
			return fmt.Errorf("%w: entity %d has mass %g", ErrInvalidEntity, i, e.Mass)
		case e.Radius < 0:
			return fmt.Errorf("%w: entity %d has radius %g", ErrInvalidEntity, i, e.Radius)
		}
	}
	return nil
}
