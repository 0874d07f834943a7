package physics

// HandleWallCollisions reflects the entity off the walls of the unit square.
// Each axis is checked on its own, so a corner contact flips both components.
func (e *Entity) HandleWallCollisions() *Entity {
	e.reflectWalls()
	return e
}

// reflectWalls returns the number of axes that were reflected.
func (e *Entity) reflectWalls() int {
	hits := 0
	if e.Position.X-e.Radius < 0 {
		e.Velocity.X = -e.Velocity.X
		e.Position.X = e.Radius
		hits++
	} else if e.Position.X+e.Radius > 1 {
		e.Velocity.X = -e.Velocity.X
		e.Position.X = 1 - e.Radius
		hits++
	}
	if e.Position.Y-e.Radius < 0 {
		e.Velocity.Y = -e.Velocity.Y
		e.Position.Y = e.Radius
		hits++
	} else if e.Position.Y+e.Radius > 1 {
		e.Velocity.Y = -e.Velocity.Y
		e.Position.Y = 1 - e.Radius
		hits++
	}
	return hits
}
