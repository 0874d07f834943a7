package physics

import "math"

// G is the gravitational constant. In the unit square it acts as a tuning
// knob rather than a physical value; see Options.G.
const G = 6.67384e-11

// ApplyGravity adds the mutual attraction between e and other to both force
// accumulators, equal in size and opposite in direction.
func (e *Entity) ApplyGravity(other *Entity) *Entity {
	e.attract(other, G)
	return e
}

func (e *Entity) ApplyGravityMulti(others []Entity) *Entity {
	for i := range others {
		e.attract(&others[i], G)
	}
	return e
}

// attract applies F = g*m1*m2/r² along the centre line. Coincident entities
// are skipped.
func (e *Entity) attract(other *Entity, g float64) {
	delta := e.Position.Sub(other.Position)
	r2 := delta.Length2()
	if r2 == 0 {
		return
	}
	dir := delta.Div(math.Sqrt(r2))
	f := g * e.Mass * other.Mass / r2
	e.ApplyForce(dir.Scale(-f))
	other.ApplyForce(dir.Scale(f))
}
