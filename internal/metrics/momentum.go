package metrics

import (
	"math"

	"github.com/san-kum/spacesim/internal/physics"
	"github.com/san-kum/spacesim/internal/vec"
)

// MomentumDrift is the largest |P-P0| seen, relative to |P0| when the
// initial momentum is non-zero.
type MomentumDrift struct {
	name     string
	initial  physics.Vec
	maxDrift float64
	samples  int
}

func NewMomentumDrift() *MomentumDrift {
	return &MomentumDrift{name: "momentum_drift"}
}

func (m *MomentumDrift) Name() string { return m.name }

func (m *MomentumDrift) Observe(pop []physics.Entity, t float64) {
	p := physics.TotalMomentum(pop)
	if m.samples == 0 {
		m.initial = p
	}
	m.samples++

	drift := vec.Length(p.Sub(m.initial))
	if n := vec.Length(m.initial); n > 0 {
		drift /= n
	}
	m.maxDrift = math.Max(m.maxDrift, drift)
}

func (m *MomentumDrift) Value() float64 { return m.maxDrift }

func (m *MomentumDrift) Reset() {
	m.initial = physics.Vec{}
	m.maxDrift = 0
	m.samples = 0
}

// Speed is the fastest entity speed seen.
type Speed struct {
	name string
	max  float64
}

func NewSpeed() *Speed {
	return &Speed{name: "max_speed"}
}

func (s *Speed) Name() string { return s.name }

func (s *Speed) Observe(pop []physics.Entity, t float64) {
	for i := range pop {
		s.max = math.Max(s.max, vec.Length(pop[i].Velocity))
	}
}

func (s *Speed) Value() float64 { return s.max }
func (s *Speed) Reset()         { s.max = 0 }
