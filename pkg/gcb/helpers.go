package gcb

// BetterPoint is a position of one of the position kinds:
// AbsolutePos, RelativePos or HardwareAbsolutePos.
// Keeping the kind in the type stops a relative move from being passed where a hardware position is expected.
type BetterPoint[T ~float64] struct {
	X, Y T
}

func BetterPt[T ~float64](x, y T) BetterPoint[T] {
	return BetterPoint[T]{x, y}
}

func (b BetterPoint[T]) Add(other BetterPoint[T]) BetterPoint[T] {
	return b.Offset(other.X, other.Y)
}

// Sub returns the vector from other to b.
func (b BetterPoint[T]) Sub(other BetterPoint[T]) BetterPoint[T] {
	return b.Offset(-other.X, -other.Y)
}

func (b BetterPoint[T]) Offset(dx, dy T) BetterPoint[T] {
	return BetterPoint[T]{b.X + dx, b.Y + dy}
}

// Redefine changes the kind of a point; values stay unchanged.
func Redefine[T2, T1 ~float64](a BetterPoint[T1]) BetterPoint[T2] {
	return BetterPoint[T2]{T2(a.X), T2(a.Y)}
}
