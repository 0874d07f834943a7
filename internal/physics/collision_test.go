package physics_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/spacesim/internal/physics"
	"github.com/san-kum/spacesim/internal/vec"
)

var _ = Describe("Collisions", func() {
	Describe("Collides", func() {
		It("does not count exact tangency", func() {
			a := physics.New(vec.New(0.25, 0.5), vec.Vec2[float64]{}, 1, 0.125)
			b := physics.New(vec.New(0.75, 0.5), vec.Vec2[float64]{}, 1, 0.375)
			Expect(a.Collides(&b)).To(BeFalse())
			Expect(b.Collides(&a)).To(BeFalse())
		})

		It("counts a slight overlap", func() {
			a := physics.New(vec.New(0.25, 0.5), vec.Vec2[float64]{}, 1, 0.125)
			b := physics.New(vec.New(0.75-1e-9, 0.5), vec.Vec2[float64]{}, 1, 0.375)
			Expect(a.Collides(&b)).To(BeTrue())
		})

		It("does not let zero-radius points at one position collide", func() {
			a := physics.New(vec.New(0.5, 0.5), vec.Vec2[float64]{}, 1, 0)
			b := a
			Expect(a.Collides(&b)).To(BeFalse())
		})
	})

	Describe("HandleCollision", func() {
		DescribeTable("conserves momentum",
			func(m1, m2 float64, v1, v2 physics.Vec) {
				a := physics.New(vec.New(0.4, 0.5), v1, m1, 0.1)
				b := physics.New(vec.New(0.45, 0.52), v2, m2, 0.1)
				before := a.Momentum().Add(b.Momentum())

				a.HandleCollision(&b)

				after := a.Momentum().Add(b.Momentum())
				Expect(after.X).To(BeNumerically("~", before.X, 1e-12))
				Expect(after.Y).To(BeNumerically("~", before.Y, 1e-12))
			},
			Entry("equal masses", 1.0, 1.0, vec.New(1.0, 0.0), vec.New(-1.0, 0.0)),
			Entry("heavy on light", 10.0, 0.5, vec.New(0.3, -0.2), vec.New(-1.0, 0.7)),
			Entry("light on heavy", 0.01, 100.0, vec.New(2.0, 2.0), vec.New(0.0, 0.0)),
			Entry("oblique", 2.0, 3.0, vec.New(0.0, 1.5), vec.New(-0.4, 0.0)),
		)

		It("swaps velocities of equal masses", func() {
			a := physics.New(vec.New(0.3, 0.5), vec.New(1.0, 0.25), 2, 0.1)
			b := physics.New(vec.New(0.35, 0.5), vec.New(-1.0, 0.5), 2, 0.1)
			a.HandleCollision(&b)
			Expect(a.Velocity).To(Equal(vec.New(-1.0, 0.5)))
			Expect(b.Velocity).To(Equal(vec.New(1.0, 0.25)))
		})

		It("computes both states from the pre-collision pair", func() {
			a := physics.New(vec.New(0.3, 0.5), vec.New(1.0, 0.0), 1, 0.1)
			b := physics.New(vec.New(0.35, 0.5), vec.New(0.0, 0.0), 3, 0.1)
			wantA := a.StateAfterCollision(b).Velocity
			wantB := b.StateAfterCollision(a).Velocity

			a.HandleCollision(&b)

			Expect(a.Velocity).To(Equal(wantA))
			Expect(b.Velocity).To(Equal(wantB))
			Expect(a.Velocity).To(Equal(vec.New(-0.5, 0.0)))
			Expect(b.Velocity).To(Equal(vec.New(0.5, 0.0)))
		})

		It("changes nothing when the pair is apart", func() {
			a := physics.New(vec.New(0.1, 0.1), vec.New(1.0, 0.0), 1, 0.01)
			b := physics.New(vec.New(0.9, 0.9), vec.New(-1.0, 0.0), 1, 0.01)
			ca, cb := a, b
			a.HandleCollision(&b)
			Expect(a).To(Equal(ca))
			Expect(b).To(Equal(cb))
		})

		It("only touches velocity", func() {
			a := physics.New(vec.New(0.3, 0.5), vec.New(1.0, 0.0), 1, 0.1)
			b := physics.New(vec.New(0.35, 0.5), vec.New(-1.0, 0.0), 1, 0.1)
			a.ApplyForce(vec.New(0.5, 0.5))
			a.HandleCollision(&b)
			Expect(a.Position).To(Equal(vec.New(0.3, 0.5)))
			Expect(a.Force).To(Equal(vec.New(0.5, 0.5)))
		})
	})

	Describe("HandleCollisions", func() {
		It("resolves against each other entity in order", func() {
			a := physics.New(vec.New(0.5, 0.5), vec.New(1.0, 0.0), 1, 0.1)
			others := []physics.Entity{
				physics.New(vec.New(0.55, 0.5), vec.New(0.0, 0.0), 1, 0.1),
				physics.New(vec.New(0.9, 0.9), vec.New(0.0, 0.0), 1, 0.01),
			}
			a.HandleCollisions(others)
			Expect(a.Velocity).To(Equal(vec.New(0.0, 0.0)))
			Expect(others[0].Velocity).To(Equal(vec.New(1.0, 0.0)))
			Expect(others[1].Velocity).To(Equal(vec.New(0.0, 0.0)))
		})
	})

	It("swaps the head-on pair with a zero-length step", func() {
		pop := []physics.Entity{
			physics.New(vec.New(0.3, 0.5), vec.New(1.0, 0.0), 1.0, 0.1),
			physics.New(vec.New(0.35, 0.5), vec.New(-1.0, 0.0), 1.0, 0.1),
		}
		pop[0].Integrate(0).HandleCollision(&pop[1])

		Expect(pop[0].Velocity).To(Equal(vec.New(-1.0, 0.0)))
		Expect(pop[1].Velocity).To(Equal(vec.New(1.0, 0.0)))
	})
})
