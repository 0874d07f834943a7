package population_test

import (
	"math"
	"math/rand"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/spacesim/internal/population"
	"github.com/san-kum/spacesim/internal/vec"
)

var _ = Describe("Generate", func() {
	var rng *rand.Rand

	BeforeEach(func() {
		rng = rand.New(rand.NewSource(99))
	})

	It("scatters resting planets with mass tied to radius", func() {
		pop, err := population.Generate(rng, population.DefaultSpec())
		Expect(err).NotTo(HaveOccurred())
		Expect(pop).To(HaveLen(50))

		for _, e := range pop {
			Expect(e.Radius).To(BeNumerically(">=", 0.001))
			Expect(e.Radius).To(BeNumerically("<", 0.01))
			Expect(e.Mass).To(BeNumerically("~", math.Pow(e.Radius*1000, 2), 1e-9))
			Expect(e.Position.X).To(BeNumerically(">=", 0))
			Expect(e.Position.X).To(BeNumerically("<", 1))
			Expect(e.Velocity).To(Equal(vec.Zero[float64]()))
			Expect(e.Force).To(Equal(vec.Zero[float64]()))
		}
	})

	It("is deterministic for a seed", func() {
		a, _ := population.Generate(rand.New(rand.NewSource(5)), population.DefaultSpec())
		b, _ := population.Generate(rand.New(rand.NewSource(5)), population.DefaultSpec())
		Expect(a).To(Equal(b))
	})

	It("caps scatter speeds", func() {
		spec := population.DefaultSpec()
		spec.Speed = 0.2
		pop, err := population.Generate(rng, spec)
		Expect(err).NotTo(HaveOccurred())
		for _, e := range pop {
			Expect(vec.Length(e.Velocity)).To(BeNumerically("<=", 0.2+1e-12))
		}
	})

	It("puts ring planets on a circle moving tangentially", func() {
		spec := population.DefaultSpec()
		spec.Layout = population.Ring
		spec.Count = 8
		spec.Speed = 0.1
		pop, err := population.Generate(rng, spec)
		Expect(err).NotTo(HaveOccurred())

		centre := vec.New(0.5, 0.5)
		for _, e := range pop {
			radial := e.Position.Sub(centre)
			Expect(vec.Length(radial)).To(BeNumerically("~", 0.3, 1e-12))
			Expect(radial.Dot(e.Velocity)).To(BeNumerically("~", 0, 1e-12))
			Expect(vec.Length(e.Velocity)).To(BeNumerically("~", 0.1, 1e-12))
		}
	})

	It("lays a grid inside the unit square", func() {
		spec := population.DefaultSpec()
		spec.Layout = population.Grid
		spec.Count = 10
		pop, err := population.Generate(rng, spec)
		Expect(err).NotTo(HaveOccurred())
		Expect(pop).To(HaveLen(10))
		for _, e := range pop {
			Expect(e.Position.X).To(BeNumerically(">", 0))
			Expect(e.Position.Y).To(BeNumerically("<", 1))
		}
		Expect(pop[0].Position).To(Equal(vec.New(0.2, 0.2)))
	})

	It("builds the head-on pair", func() {
		spec := population.Spec{Layout: population.Pair, Count: 2, MaxRadius: 0.1, MassScale: 10, Speed: 1}
		pop, err := population.Generate(rng, spec)
		Expect(err).NotTo(HaveOccurred())
		Expect(pop).To(HaveLen(2))
		Expect(pop[0].Position).To(Equal(vec.New(0.3, 0.5)))
		Expect(pop[1].Velocity).To(Equal(vec.New(-1.0, 0.0)))
		Expect(pop[0].Mass).To(BeNumerically("~", 1.0, 1e-12))
		Expect(pop[0].Collides(&pop[1])).To(BeTrue())
	})

	DescribeTable("rejects bad specs",
		func(mutate func(*population.Spec)) {
			spec := population.DefaultSpec()
			mutate(&spec)
			_, err := population.Generate(rng, spec)
			Expect(err).To(MatchError(population.ErrInvalidSpec))
		},
		Entry("unknown layout", func(s *population.Spec) { s.Layout = "spiral" }),
		Entry("no planets", func(s *population.Spec) { s.Count = 0 }),
		Entry("inverted radii", func(s *population.Spec) { s.MinRadius = 0.02 }),
		Entry("oversized radius", func(s *population.Spec) { s.MaxRadius = 0.6 }),
		Entry("massless", func(s *population.Spec) { s.MassScale = 0 }),
		Entry("negative speed", func(s *population.Spec) { s.Speed = -1 }),
	)

	It("lists its layouts", func() {
		Expect(population.Layouts()).To(ConsistOf("scatter", "ring", "grid", "pair"))
	})
})
