package srx

import "golang.org/x/exp/constraints"

// FromChan adapts a receive channel into an Observable. Each Subscribe
// starts a goroutine that forwards received values to the observer until
// the channel is closed, then stops silently.
//
// The channel is the producer's externally visible state: concurrent
// subscriptions compete for its values rather than each seeing the full
// sequence.
func FromChan[T constraints.Integer](source <-chan T) Observable[T] {
	return Create(func(next Observer[T]) {
		go func() {
			for v := range source {
				next(v)
			}
		}()
	})
}
