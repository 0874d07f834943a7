package vec_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/spacesim/internal/vec"
)

var _ = Describe("Vec2", func() {
	a := vec.New(3.0, -2.0)
	b := vec.New(0.5, 4.0)

	Describe("arithmetic", func() {
		It("adds and subtracts componentwise", func() {
			Expect(a.Add(b)).To(Equal(vec.New(3.5, 2.0)))
			Expect(a.Sub(b)).To(Equal(vec.New(2.5, -6.0)))
		})

		It("keeps add, sub and neg consistent", func() {
			zero := vec.Zero[float64]()
			Expect(a.Add(zero.Sub(b))).To(Equal(a.Sub(b)))
			Expect(zero.Sub(b)).To(Equal(b.Neg()))
			Expect(a.Add(a.Neg())).To(Equal(zero))
		})

		It("distinguishes Hadamard and scalar products", func() {
			Expect(a.Mul(b)).To(Equal(vec.New(1.5, -8.0)))
			Expect(a.Scale(2)).To(Equal(vec.New(6.0, -4.0)))
		})

		It("computes the dot product", func() {
			Expect(a.Dot(b)).To(Equal(1.5 - 8.0))
		})

		It("divides by a scalar", func() {
			Expect(a.Div(2)).To(Equal(vec.New(1.5, -1.0)))
		})

		It("follows IEEE rules when dividing floats by zero", func() {
			v := vec.New(1.0, 0.0).Div(0)
			Expect(math.IsInf(v.X, 1)).To(BeTrue())
			Expect(math.IsNaN(v.Y)).To(BeTrue())
			Expect(vec.IsFinite(v)).To(BeFalse())
		})

		It("works over integer components", func() {
			p := vec.New(3, 4)
			Expect(p.Add(vec.New(1, 1))).To(Equal(vec.New(4, 5)))
			Expect(p.Length2()).To(Equal(25))
			Expect(p.Neg()).To(Equal(vec.New(-3, -4)))
		})
	})

	Describe("length", func() {
		DescribeTable("length is the square root of length2",
			func(x, y float64) {
				v := vec.New(x, y)
				Expect(v.Length2()).To(BeNumerically(">=", 0))
				Expect(vec.Length(v)).To(Equal(math.Sqrt(v.Length2())))
			},
			Entry("3-4-5", 3.0, 4.0),
			Entry("zero", 0.0, 0.0),
			Entry("negative components", -1.5, -2.5),
			Entry("tiny", 1e-12, -3e-12),
		)

		It("works for float32", func() {
			Expect(vec.Length(vec.New[float32](3, 4))).To(Equal(float32(5)))
		})
	})

	Describe("equality", func() {
		It("is exact with no tolerance", func() {
			Expect(vec.New(0.1, 0.2).Equal(vec.New(0.1, 0.2))).To(BeTrue())
			Expect(vec.New(0.1+0.2, 0.0).Equal(vec.New(0.3, 0.0))).To(BeFalse())
		})
	})

	Describe("partial order", func() {
		DescribeTable("strict dominance",
			func(a, b vec.Vec2[float64], want vec.Ordering) {
				Expect(a.Compare(b)).To(Equal(want))
			},
			Entry("both greater", vec.New(2.0, 2.0), vec.New(1.0, 1.0), vec.Greater),
			Entry("both less", vec.New(1.0, 1.0), vec.New(2.0, 2.0), vec.Less),
			Entry("components disagree", vec.New(1.0, 2.0), vec.New(2.0, 1.0), vec.Incomparable),
			Entry("one component equal", vec.New(2.0, 1.0), vec.New(1.0, 1.0), vec.Incomparable),
			Entry("NaN component", vec.New(math.NaN(), 2.0), vec.New(1.0, 1.0), vec.Incomparable),
		)

		It("treats equal vectors as incomparable, not equal", func() {
			v := vec.New(0.5, 0.5)
			Expect(v.Compare(v)).To(Equal(vec.Incomparable))
			Expect(v.Dominates(v)).To(BeFalse())
		})

		It("names its results", func() {
			Expect(vec.Greater.String()).To(Equal("greater"))
			Expect(vec.Less.String()).To(Equal("less"))
			Expect(vec.Incomparable.String()).To(Equal("incomparable"))
		})
	})
})
