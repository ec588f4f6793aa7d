package srx

// Lift applies an operator to a source such that subscriptions to the
// resulting source flow through the operator. The returned SourceFunc, when
// invoked, builds an internal observer scoped to that one invocation and
// subscribes it to the upstream source; every value the external observer
// sees traces back to exactly one upstream emission.
//
// Lift itself performs no work: nothing runs until the returned SourceFunc
// is invoked, and each invocation re-subscribes upstream from scratch.
func Lift[T, U any](source SourceFunc[T], op Operator[T, U]) SourceFunc[U] {
	return func(out Observer[U]) {
		source(func(v T) {
			op(out, v)
		})
	}
}
