package srx

import "golang.org/x/exp/constraints"

// Multiply derives a source emitting v * factor for every upstream v.
// Exactly one downstream value per upstream value; overflow wraps with the
// usual integer semantics.
func Multiply[T constraints.Integer](source SourceFunc[T], factor T) SourceFunc[T] {
	return Lift(source, func(down Observer[T], v T) {
		down(v * factor)
	})
}

// IgnoreEven derives a source that forwards only odd upstream values,
// preserving their relative order. The parity test is v%2 != 0 rather than
// v%2 == 1 so that negative odds survive Go's truncated division.
func IgnoreEven[T constraints.Integer](source SourceFunc[T]) SourceFunc[T] {
	return Lift(source, func(down Observer[T], v T) {
		if v%2 == 0 {
			return
		}
		down(v)
	})
}
