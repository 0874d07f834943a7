// Package physics implements point-mass dynamics in the unit square.
//
// An [Entity] carries position, velocity, a per-step acceleration and force
// accumulator, mass and radius. Its methods return the receiver so that a
// frame reads as a single chain:
//
//	e.Integrate(dt).HandleWallCollisions().HandleCollisions(rest).ApplyGravityMulti(rest)
//
// [Step] applies that chain to every entity of a population in index order,
// where rest is always the tail after the entity. Each unordered pair is
// therefore visited exactly once per step.
//
// # Integration
//
// Integration is semi-implicit: position advances with the velocity from
// before the step, then velocity absorbs acceleration and force/mass. Both
// accumulators are cleared afterwards.
//
// # Degenerate inputs
//
// Mass is never checked here; zero mass yields non-finite velocities.
// Two gravitating entities at exactly the same position exert no force on
// each other instead of producing NaN.
package physics
