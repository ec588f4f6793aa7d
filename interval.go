package srx

import "time"

// Interval builds an Observable that counts up from zero, emitting one
// value per period from a deferred timer callback. The ticker and the
// counter are created inside the subscription procedure, so every Subscribe
// gets its own timeline starting at zero.
//
// The stream never stops: there is no way to detach an observer, and the
// ticker runs for the life of the process.
func Interval(period time.Duration) Observable[int64] {
	return Create(func(next Observer[int64]) {
		tick := time.NewTicker(period)
		go func() {
			var n int64
			for range tick.C {
				next(n)
				n++
			}
		}()
	})
}
