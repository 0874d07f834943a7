package metrics

import (
	"github.com/san-kum/spacesim/internal/physics"
)

// Containment is the fraction of samples in which every entity lies fully
// inside the unit square. Walls keep it at 1; without them it decays as
// planets escape.
type Containment struct {
	name       string
	violations int
	samples    int
}

func NewContainment() *Containment {
	return &Containment{name: "containment"}
}

func (c *Containment) Name() string {
	return c.name
}

func (c *Containment) Observe(pop []physics.Entity, t float64) {
	c.samples++
	for i := range pop {
		if !inside(&pop[i]) {
			c.violations++
			break
		}
	}
}

func (c *Containment) Value() float64 {
	if c.samples == 0 {
		return 1.0
	}
	return 1.0 - float64(c.violations)/float64(c.samples)
}

func (c *Containment) Reset() {
	c.violations = 0
	c.samples = 0
}

func inside(e *physics.Entity) bool {
	p, r := e.Position, e.Radius
	return p.X-r >= 0 && p.X+r <= 1 && p.Y-r >= 0 && p.Y+r <= 1
}
