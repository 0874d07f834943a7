// Package population builds initial planet populations for the unit square.
package population

import (
	"errors"
	"fmt"
	"math"
	"math/rand"

	"github.com/san-kum/spacesim/internal/physics"
	"github.com/san-kum/spacesim/internal/vec"
)

type Layout string

const (
	// Scatter places planets uniformly at random, at rest unless Speed is set.
	Scatter Layout = "scatter"
	// Ring places planets on a circle about the centre moving tangentially.
	Ring Layout = "ring"
	// Grid places planets on a lattice with random headings.
	Grid Layout = "grid"
	// Pair is a single overlapping head-on pair.
	Pair Layout = "pair"
)

var ErrInvalidSpec = errors.New("population: invalid spec")

var layouts = []Layout{Scatter, Ring, Grid, Pair}

func Layouts() []string {
	names := make([]string, len(layouts))
	for i, l := range layouts {
		names[i] = string(l)
	}
	return names
}

// Spec describes a population. Each planet's radius is drawn from
// [MinRadius, MaxRadius) and its mass is (radius*MassScale)².
type Spec struct {
	Layout    Layout
	Count     int
	MinRadius float64
	MaxRadius float64
	MassScale float64
	Speed     float64
}

// DefaultSpec is fifty resting planets with radii between 0.001 and 0.01.
func DefaultSpec() Spec {
	return Spec{
		Layout:    Scatter,
		Count:     50,
		MinRadius: 0.001,
		MaxRadius: 0.01,
		MassScale: 1000,
	}
}

func (s Spec) Validate() error {
	known := false
	for _, l := range layouts {
		if s.Layout == l {
			known = true
			break
		}
	}
	switch {
	case !known:
		return fmt.Errorf("%w: unknown layout %q (available: %v)", ErrInvalidSpec, s.Layout, Layouts())
	case s.Count <= 0:
		return fmt.Errorf("%w: count must be positive, got %d", ErrInvalidSpec, s.Count)
	case s.MinRadius < 0 || s.MaxRadius < s.MinRadius:
		return fmt.Errorf("%w: radius range [%g, %g) is empty or negative", ErrInvalidSpec, s.MinRadius, s.MaxRadius)
	case s.MaxRadius >= 0.5:
		return fmt.Errorf("%w: radius %g does not fit the unit square", ErrInvalidSpec, s.MaxRadius)
	case s.MassScale <= 0 || (s.MinRadius == 0 && s.MaxRadius == 0):
		return fmt.Errorf("%w: planets would be massless", ErrInvalidSpec)
	case s.Speed < 0:
		return fmt.Errorf("%w: speed must not be negative, got %g", ErrInvalidSpec, s.Speed)
	}
	return nil
}

// Generate builds a population from spec using rng.
func Generate(rng *rand.Rand, spec Spec) ([]physics.Entity, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}

	switch spec.Layout {
	case Ring:
		return ring(rng, spec), nil
	case Grid:
		return grid(rng, spec), nil
	case Pair:
		return pair(spec), nil
	default:
		return scatter(rng, spec), nil
	}
}

func (s Spec) planet(rng *rand.Rand, pos, vel physics.Vec) physics.Entity {
	r := s.MinRadius + rng.Float64()*(s.MaxRadius-s.MinRadius)
	if r == 0 {
		r = s.MaxRadius
	}
	return physics.New(pos, vel, math.Pow(r*s.MassScale, 2), r)
}

func heading(rng *rand.Rand, speed float64) physics.Vec {
	if speed == 0 {
		return physics.Vec{}
	}
	angle := rng.Float64() * 2 * math.Pi
	mag := rng.Float64() * speed
	return vec.New(math.Cos(angle), math.Sin(angle)).Scale(mag)
}

func scatter(rng *rand.Rand, s Spec) []physics.Entity {
	pop := make([]physics.Entity, s.Count)
	for i := range pop {
		pos := vec.New(rng.Float64(), rng.Float64())
		pop[i] = s.planet(rng, pos, heading(rng, s.Speed))
	}
	return pop
}

func ring(rng *rand.Rand, s Spec) []physics.Entity {
	const orbit = 0.3
	centre := vec.New(0.5, 0.5)
	pop := make([]physics.Entity, s.Count)
	for i := range pop {
		angle := float64(i) * 2 * math.Pi / float64(s.Count)
		radial := vec.New(math.Cos(angle), math.Sin(angle))
		tangent := vec.New(-radial.Y, radial.X)
		pop[i] = s.planet(rng, centre.Add(radial.Scale(orbit)), tangent.Scale(s.Speed))
	}
	return pop
}

func grid(rng *rand.Rand, s Spec) []physics.Entity {
	cols := int(math.Ceil(math.Sqrt(float64(s.Count))))
	gap := 1.0 / float64(cols+1)
	pop := make([]physics.Entity, s.Count)
	for i := range pop {
		row, col := i/cols, i%cols
		pos := vec.New(float64(col+1)*gap, float64(row+1)*gap)
		pop[i] = s.planet(rng, pos, heading(rng, s.Speed))
	}
	return pop
}

// pair ignores Count and MinRadius.
func pair(s Spec) []physics.Entity {
	r := s.MaxRadius
	m := math.Pow(r*s.MassScale, 2)
	return []physics.Entity{
		physics.New(vec.New(0.3, 0.5), vec.New(s.Speed, 0), m, r),
		physics.New(vec.New(0.35, 0.5), vec.New(-s.Speed, 0), m, r),
	}
}
