package srx

// Observer receives one value per invocation. Its return value, had it one,
// would be ignored; the same function may be attached to any number of
// observables.
type Observer[T any] func(T)

// SourceFunc is what fundamentally defines an observable: a subscription
// procedure that, given an observer, begins producing values to it. It may
// call the observer synchronously before returning, from a deferred callback
// after returning, or both. Any state it needs must live in the closure of a
// single invocation, never shared across invocations.
type SourceFunc[T any] func(Observer[T])

// Operator is a per-value policy: for each upstream value v it calls down
// zero or more times with derived values. Operators must hold no state
// shared across subscriptions; one Operator is reused by every subscription
// to the observables lifted through it.
type Operator[T, U any] func(down Observer[U], v T)
