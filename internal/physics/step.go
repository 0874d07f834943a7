package physics

// Options selects which interactions a step applies and with what strength.
type Options struct {
	G          float64
	Gravity    bool
	Collisions bool
	Walls      bool
}

func DefaultOptions() Options {
	return Options{
		G:          G,
		Gravity:    true,
		Collisions: true,
		Walls:      true,
	}
}

// EnergyG is the constant for potential energy: G, or zero when gravity
// is off.
func (o Options) EnergyG() float64 {
	if !o.Gravity {
		return 0
	}
	return o.G
}

// StepStats counts the contacts resolved during one step.
type StepStats struct {
	Collisions int
	WallHits   int
}

func (s *StepStats) Add(o StepStats) {
	s.Collisions += o.Collisions
	s.WallHits += o.WallHits
}

// Step advances the population by dt with the default options.
func Step(pop []Entity, dt float64) {
	DefaultOptions().Step(pop, dt)
}

// Step advances every entity of pop by dt, in index order. Entity i is
// integrated, reflected off the walls, then resolved against collisions
// and gravity with every entity after it, so each pair is seen once.
// Forces applied to later entities take effect when they integrate in the
// same step.
func (o Options) Step(pop []Entity, dt float64) StepStats {
	var stats StepStats
	for i := range pop {
		e := &pop[i]
		e.Integrate(dt)
		if o.Walls {
			stats.WallHits += e.reflectWalls()
		}
		rest := pop[i+1:]
		if o.Collisions {
			for j := range rest {
				if e.collide(&rest[j]) {
					stats.Collisions++
				}
			}
		}
		if o.Gravity {
			for j := range rest {
				e.attract(&rest[j], o.G)
			}
		}
	}
	return stats
}
