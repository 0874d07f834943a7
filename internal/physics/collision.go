package physics

// Collides reports whether the two bounding circles overlap. Touching
// exactly at the rim does not count.
func (e *Entity) Collides(other *Entity) bool {
	r := e.Radius + other.Radius
	return e.Position.Sub(other.Position).Length2() < r*r
}

// StateAfterCollision returns e with the velocity it has after an elastic
// collision with other.
//
// The one-dimensional two-body solution is applied to the full velocity
// vectors rather than to their components along the contact normal. This is
// inexact for oblique impacts but it conserves momentum, and it is the
// behaviour the simulation is tuned for.
func (e Entity) StateAfterCollision(other Entity) Entity {
	num := e.Velocity.Scale(e.Mass - other.Mass).Add(other.Velocity.Scale(2 * other.Mass))
	e.Velocity = num.Div(e.Mass + other.Mass)
	return e
}

// HandleCollision resolves a collision between e and other if they overlap.
// Both new states are computed from the pre-collision pair.
func (e *Entity) HandleCollision(other *Entity) *Entity {
	e.collide(other)
	return e
}

// HandleCollisions resolves e against each entity of others in order. The
// contacts are resolved pairwise, one after another.
func (e *Entity) HandleCollisions(others []Entity) *Entity {
	for i := range others {
		e.collide(&others[i])
	}
	return e
}

func (e *Entity) collide(other *Entity) bool {
	if !e.Collides(other) {
		return false
	}
	a, b := *e, *other
	*e, *other = a.StateAfterCollision(b), b.StateAfterCollision(a)
	return true
}
