package vec

// Ordering is the result of a partial comparison between two vectors.
type Ordering int

const (
	Incomparable Ordering = iota
	Less
	Greater
)

func (o Ordering) String() string {
	switch o {
	case Less:
		return "less"
	case Greater:
		return "greater"
	default:
		return "incomparable"
	}
}

// Compare orders v against o by strict dominance. v is Greater when both
// components are strictly greater, Less when both are strictly less, and
// Incomparable otherwise, including when v equals o.
func (v Vec2[N]) Compare(o Vec2[N]) Ordering {
	switch {
	case v.X > o.X && v.Y > o.Y:
		return Greater
	case v.X < o.X && v.Y < o.Y:
		return Less
	}
	return Incomparable
}

// Dominates is shorthand for Compare(o) == Greater.
func (v Vec2[N]) Dominates(o Vec2[N]) bool {
	return v.Compare(o) == Greater
}
