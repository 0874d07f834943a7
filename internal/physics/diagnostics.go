package physics

import "math"

func TotalMomentum(pop []Entity) Vec {
	var p Vec
	for i := range pop {
		p = p.Add(pop[i].Momentum())
	}
	return p
}

func KineticEnergy(pop []Entity) float64 {
	ke := 0.0
	for i := range pop {
		ke += pop[i].KineticEnergy()
	}
	return ke
}

// PotentialEnergy sums -g*m1*m2/r over all pairs. Coincident pairs are
// skipped, matching the force computation.
func PotentialEnergy(pop []Entity, g float64) float64 {
	pe := 0.0
	for i := range pop {
		for j := i + 1; j < len(pop); j++ {
			r2 := pop[i].Position.Sub(pop[j].Position).Length2()
			if r2 == 0 {
				continue
			}
			pe -= g * pop[i].Mass * pop[j].Mass / math.Sqrt(r2)
		}
	}
	return pe
}

func TotalEnergy(pop []Entity, g float64) float64 {
	return KineticEnergy(pop) + PotentialEnergy(pop, g)
}

func CenterOfMass(pop []Entity) Vec {
	var c Vec
	m := 0.0
	for i := range pop {
		c = c.Add(pop[i].Position.Scale(pop[i].Mass))
		m += pop[i].Mass
	}
	if m == 0 {
		return Vec{}
	}
	return c.Div(m)
}

// FirstNonFinite returns the index of the first entity holding a NaN or
// Inf, or -1 when the whole population is finite.
func FirstNonFinite(pop []Entity) int {
	for i := range pop {
		if !pop[i].IsFinite() {
			return i
		}
	}
	return -1
}

// Clone returns an independent copy of pop.
func Clone(pop []Entity) []Entity {
	c := make([]Entity, len(pop))
	copy(c, pop)
	return c
}
