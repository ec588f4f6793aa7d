package srx

import "golang.org/x/exp/constraints"

// Just builds an Observable that emits the given values in order,
// synchronously, every time it is subscribed to.
func Just[T constraints.Integer](values ...T) Observable[T] {
	return Create(func(next Observer[T]) {
		for _, v := range values {
			next(v)
		}
	})
}
