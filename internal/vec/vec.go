// Package vec provides a small generic 2D vector value type.
//
// Every operation returns a new value; nothing mutates its receiver.
// Length is only defined for floating-point component types:
//
//	v := vec.New(3.0, 4.0)
//	l := vec.Length(v) // 5
//
// # Ordering
//
// [Vec2.Compare] implements strict dominance: a vector is Greater only when
// both of its components are greater. Equal vectors are Incomparable.
package vec

import (
	"fmt"
	"math"

	"golang.org/x/exp/constraints"
)

// Number is the set of component types a Vec2 may carry. Unsigned integers
// are excluded so that Neg is always meaningful.
type Number interface {
	constraints.Signed | constraints.Float
}

type Vec2[N Number] struct {
	X, Y N
}

func New[N Number](x, y N) Vec2[N] {
	return Vec2[N]{X: x, Y: y}
}

func Zero[N Number]() Vec2[N] {
	return Vec2[N]{}
}

func (v Vec2[N]) Add(o Vec2[N]) Vec2[N] {
	return Vec2[N]{X: v.X + o.X, Y: v.Y + o.Y}
}

func (v Vec2[N]) Sub(o Vec2[N]) Vec2[N] {
	return Vec2[N]{X: v.X - o.X, Y: v.Y - o.Y}
}

// Mul is the componentwise (Hadamard) product. Use Scale for scalars.
func (v Vec2[N]) Mul(o Vec2[N]) Vec2[N] {
	return Vec2[N]{X: v.X * o.X, Y: v.Y * o.Y}
}

func (v Vec2[N]) Scale(s N) Vec2[N] {
	return Vec2[N]{X: v.X * s, Y: v.Y * s}
}

// Div divides both components by s. For float components a zero divisor
// follows IEEE rules (±Inf or NaN); integer components panic.
func (v Vec2[N]) Div(s N) Vec2[N] {
	return Vec2[N]{X: v.X / s, Y: v.Y / s}
}

func (v Vec2[N]) Neg() Vec2[N] {
	return Vec2[N]{X: -v.X, Y: -v.Y}
}

func (v Vec2[N]) Dot(o Vec2[N]) N {
	return v.X*o.X + v.Y*o.Y
}

// Length2 is the squared Euclidean length.
func (v Vec2[N]) Length2() N {
	return v.X*v.X + v.Y*v.Y
}

// Equal reports exact componentwise equality. There is no tolerance.
func (v Vec2[N]) Equal(o Vec2[N]) bool {
	return v.X == o.X && v.Y == o.Y
}

func (v Vec2[N]) String() string {
	return fmt.Sprintf("(%v, %v)", v.X, v.Y)
}

// Length is the Euclidean length of v.
func Length[F constraints.Float](v Vec2[F]) F {
	return F(math.Sqrt(float64(v.Length2())))
}

// IsFinite reports whether neither component is NaN or infinite.
func IsFinite[F constraints.Float](v Vec2[F]) bool {
	x, y := float64(v.X), float64(v.Y)
	return !math.IsNaN(x) && !math.IsNaN(y) && !math.IsInf(x, 0) && !math.IsInf(y, 0)
}
