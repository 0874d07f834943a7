package physics

import (
	"math"

	"github.com/san-kum/spacesim/internal/vec"
)

// Vec is the concrete vector type used by the engine.
type Vec = vec.Vec2[float64]

type Entity struct {
	Position     Vec
	Velocity     Vec
	Acceleration Vec
	Force        Vec
	Mass         float64
	Radius       float64
}

// New returns an entity at rest with respect to its accumulators.
func New(position, velocity Vec, mass, radius float64) Entity {
	return Entity{
		Position: position,
		Velocity: velocity,
		Mass:     mass,
		Radius:   radius,
	}
}

func (e *Entity) Momentum() Vec {
	return e.Velocity.Scale(e.Mass)
}

func (e *Entity) KineticEnergy() float64 {
	return 0.5 * e.Mass * e.Velocity.Length2()
}

func (e *Entity) SetAcceleration(a Vec) *Entity {
	e.Acceleration = a
	return e
}

// ApplyForce adds f to the force accumulator.
func (e *Entity) ApplyForce(f Vec) *Entity {
	e.Force = e.Force.Add(f)
	return e
}

func (e *Entity) SetForce(f Vec) *Entity {
	e.Force = f
	return e
}

func (e *Entity) IntegratePosition(dt float64) *Entity {
	e.Position = e.Position.Add(e.Velocity.Scale(dt))
	return e
}

func (e *Entity) IntegrateVelocity(dt float64) *Entity {
	e.Velocity = e.Velocity.Add(e.Acceleration.Add(e.Force.Div(e.Mass)).Scale(dt))
	return e
}

// Integrate advances the entity by dt and clears both accumulators.
// Position is updated before velocity.
func (e *Entity) Integrate(dt float64) *Entity {
	return e.IntegratePosition(dt).
		IntegrateVelocity(dt).
		SetAcceleration(Vec{}).
		SetForce(Vec{})
}

// IsFinite reports whether every field of e is free of NaN and Inf.
func (e *Entity) IsFinite() bool {
	return vec.IsFinite(e.Position) &&
		vec.IsFinite(e.Velocity) &&
		vec.IsFinite(e.Acceleration) &&
		vec.IsFinite(e.Force) &&
		!math.IsNaN(e.Mass) && !math.IsInf(e.Mass, 0) &&
		!math.IsNaN(e.Radius) && !math.IsInf(e.Radius, 0)
}
