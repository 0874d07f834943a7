package physics_test

import (
	"math/rand"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/spacesim/internal/physics"
	"github.com/san-kum/spacesim/internal/population"
	"github.com/san-kum/spacesim/internal/vec"
)

var _ = Describe("Step", func() {
	It("swaps an overlapping head-on pair and counts the collision", func() {
		pop := []physics.Entity{
			physics.New(vec.New(0.3, 0.5), vec.New(1.0, 0.0), 1.0, 0.1),
			physics.New(vec.New(0.35, 0.5), vec.New(-1.0, 0.0), 1.0, 0.1),
		}
		opts := physics.DefaultOptions()
		opts.Gravity = false

		stats := opts.Step(pop, 0)

		Expect(stats.Collisions).To(Equal(1))
		Expect(stats.WallHits).To(BeZero())
		Expect(pop[0].Velocity).To(Equal(vec.New(-1.0, 0.0)))
		Expect(pop[1].Velocity).To(Equal(vec.New(1.0, 0.0)))
	})

	It("applies gravity from earlier entities within the same step", func() {
		pop := []physics.Entity{
			physics.New(vec.New(0.25, 0.5), vec.Vec2[float64]{}, 1, 0.01),
			physics.New(vec.New(0.75, 0.5), vec.Vec2[float64]{}, 1, 0.01),
		}
		opts := physics.Options{G: 1, Gravity: true}
		opts.Step(pop, 0.1)

		// entity 1 integrates after the pair force was applied, entity 0
		// carries its share into the next step
		Expect(pop[1].Velocity.X).To(BeNumerically("<", 0))
		Expect(pop[1].Force).To(Equal(vec.Zero[float64]()))
		Expect(pop[0].Velocity).To(Equal(vec.Zero[float64]()))
		Expect(pop[0].Force.X).To(BeNumerically(">", 0))
	})

	It("counts wall hits", func() {
		pop := []physics.Entity{
			physics.New(vec.New(0.02, 0.5), vec.New(-1.0, 0.0), 1, 0.05),
			physics.New(vec.New(0.98, 0.98), vec.New(1.0, 1.0), 1, 0.05),
		}
		stats := physics.Options{Walls: true}.Step(pop, 0)
		Expect(stats.WallHits).To(Equal(3))
		Expect(pop[0].Velocity.X).To(Equal(1.0))
	})

	It("matches the default options", func() {
		rng := rand.New(rand.NewSource(7))
		pop, err := population.Generate(rng, population.DefaultSpec())
		Expect(err).NotTo(HaveOccurred())
		other := physics.Clone(pop)

		for i := 0; i < 20; i++ {
			physics.Step(pop, 0.01)
			physics.DefaultOptions().Step(other, 0.01)
		}
		Expect(pop).To(Equal(other))
	})

	It("conserves momentum through collisions", func() {
		rng := rand.New(rand.NewSource(42))
		spec := population.DefaultSpec()
		spec.Count = 40
		spec.MinRadius, spec.MaxRadius = 0.04, 0.08
		spec.MassScale = 10
		spec.Speed = 0.5
		pop, err := population.Generate(rng, spec)
		Expect(err).NotTo(HaveOccurred())

		opts := physics.Options{Collisions: true}
		before := physics.TotalMomentum(pop)
		var stats physics.StepStats
		for i := 0; i < 50; i++ {
			stats.Add(opts.Step(pop, 0.001))
		}
		after := physics.TotalMomentum(pop)

		Expect(stats.Collisions).To(BeNumerically(">", 0))
		Expect(after.X).To(BeNumerically("~", before.X, 1e-9))
		Expect(after.Y).To(BeNumerically("~", before.Y, 1e-9))
	})

	It("keeps a generated population finite and inside the walls", func() {
		rng := rand.New(rand.NewSource(1))
		pop, err := population.Generate(rng, population.DefaultSpec())
		Expect(err).NotTo(HaveOccurred())

		for i := 0; i < 100; i++ {
			physics.Step(pop, 10.0/3.0)
		}
		Expect(physics.FirstNonFinite(pop)).To(Equal(-1))
		for _, e := range pop {
			Expect(e.Position.X).To(BeNumerically(">=", e.Radius))
			Expect(e.Position.X).To(BeNumerically("<=", 1-e.Radius))
		}
	})

	DescribeTable("EnergyG",
		func(opts physics.Options, want float64) {
			Expect(opts.EnergyG()).To(Equal(want))
		},
		Entry("gravity on", physics.Options{G: 2, Gravity: true}, 2.0),
		Entry("gravity off", physics.Options{G: 2}, 0.0),
	)

	Describe("diagnostics", func() {
		It("finds the centre of mass", func() {
			pop := []physics.Entity{
				physics.New(vec.New(0.0, 0.0), vec.Vec2[float64]{}, 1, 0.01),
				physics.New(vec.New(1.0, 1.0), vec.Vec2[float64]{}, 3, 0.01),
			}
			Expect(physics.CenterOfMass(pop)).To(Equal(vec.New(0.75, 0.75)))
			Expect(physics.CenterOfMass(nil)).To(Equal(vec.Zero[float64]()))
		})

		It("locates the first non-finite entity", func() {
			pop := []physics.Entity{
				physics.New(vec.New(0.5, 0.5), vec.Vec2[float64]{}, 1, 0.01),
				physics.New(vec.New(0.5, 0.5), vec.Vec2[float64]{}, 1, 0.01),
			}
			Expect(physics.FirstNonFinite(pop)).To(Equal(-1))
			pop[1].Velocity.Y = 1.0 / zero()
			Expect(physics.FirstNonFinite(pop)).To(Equal(1))
		})
	})
})

func zero() float64 { return 0 }
