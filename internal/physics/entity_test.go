package physics_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/spacesim/internal/physics"
	"github.com/san-kum/spacesim/internal/vec"
)

var _ = Describe("Entity", func() {
	var e physics.Entity

	BeforeEach(func() {
		e = physics.New(vec.New(0.0, 0.0), vec.New(1.0, 0.0), 1.0, 0.05)
	})

	Describe("accumulators", func() {
		It("accumulates applied forces", func() {
			e.ApplyForce(vec.New(1.0, 2.0)).ApplyForce(vec.New(0.5, -1.0))
			Expect(e.Force).To(Equal(vec.New(1.5, 1.0)))
		})

		It("overwrites force and acceleration", func() {
			e.ApplyForce(vec.New(3.0, 3.0)).SetForce(vec.New(0.0, 1.0))
			e.SetAcceleration(vec.New(2.0, 2.0))
			Expect(e.Force).To(Equal(vec.New(0.0, 1.0)))
			Expect(e.Acceleration).To(Equal(vec.New(2.0, 2.0)))
		})
	})

	Describe("Integrate", func() {
		It("moves a free entity and resets its accumulators", func() {
			e.Integrate(1.0)
			Expect(e.Position).To(Equal(vec.New(1.0, 0.0)))
			Expect(e.Velocity).To(Equal(vec.New(1.0, 0.0)))
			Expect(e.Acceleration).To(Equal(vec.Zero[float64]()))
			Expect(e.Force).To(Equal(vec.Zero[float64]()))
		})

		It("uses the pre-step velocity for the position update", func() {
			e.Mass = 2.0
			e.SetAcceleration(vec.New(0.0, 1.0)).ApplyForce(vec.New(4.0, 0.0))
			e.Integrate(0.5)

			// position from v=(1,0); velocity gains (a + F/m)*dt = (2,1)*0.5
			Expect(e.Position).To(Equal(vec.New(0.5, 0.0)))
			Expect(e.Velocity).To(Equal(vec.New(2.0, 0.5)))
		})

		It("propagates non-finite velocity when mass is zero", func() {
			e.Mass = 0
			e.ApplyForce(vec.New(1.0, 0.0)).Integrate(1.0)
			Expect(math.IsInf(e.Velocity.X, 1)).To(BeTrue())
			Expect(e.IsFinite()).To(BeFalse())
		})
	})

	Describe("HandleWallCollisions", func() {
		It("reflects and clamps at the low x wall", func() {
			e.Position = vec.New(0.02, 0.5)
			e.Velocity = vec.New(-1.0, 0.0)
			e.HandleWallCollisions()
			Expect(e.Position.X).To(Equal(0.05))
			Expect(e.Velocity.X).To(Equal(1.0))
		})

		It("reflects and clamps at the high y wall", func() {
			e.Position = vec.New(0.5, 0.99)
			e.Velocity = vec.New(0.3, 2.0)
			e.HandleWallCollisions()
			Expect(e.Position).To(Equal(vec.New(0.5, 1-e.Radius)))
			Expect(e.Velocity).To(Equal(vec.New(0.3, -2.0)))
		})

		It("bounces off both walls in a corner", func() {
			e.Position = vec.New(1.2, -0.1)
			e.Velocity = vec.New(1.0, -1.0)
			e.HandleWallCollisions()
			Expect(e.Position).To(Equal(vec.New(1-e.Radius, e.Radius)))
			Expect(e.Velocity).To(Equal(vec.New(-1.0, 1.0)))
		})

		It("leaves an interior entity alone", func() {
			e.Position = vec.New(0.5, 0.5)
			before := e
			e.HandleWallCollisions()
			Expect(e).To(Equal(before))
		})
	})

	It("reports momentum as velocity times mass", func() {
		e.Mass = 3
		e.Velocity = vec.New(1.0, -2.0)
		Expect(e.Momentum()).To(Equal(vec.New(3.0, -6.0)))
		Expect(e.KineticEnergy()).To(Equal(7.5))
	})
})
