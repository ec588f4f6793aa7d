package srx

import "golang.org/x/exp/constraints"

// Observable is the chainable surface over a single subscription procedure.
// It is immutable: every operator method returns a new Observable and the
// receiver is never changed. The wrapper adds nothing beyond method-chaining
// ergonomics; a chain built with it is semantically identical to nesting the
// bare operator functions.
//
// The type parameter is integral because the reference operators do integer
// arithmetic; fully generic pipelines are built directly on [SourceFunc] and
// [Lift].
type Observable[T constraints.Integer] struct {
	onSub SourceFunc[T]
}

// Create wraps a subscription procedure in an Observable. Construction emits
// nothing; onSub runs once per Subscribe call.
func Create[T constraints.Integer](onSub SourceFunc[T]) Observable[T] {
	return Observable[T]{onSub: onSub}
}

// Subscribe invokes the wrapped subscription procedure with observer.
// Values emitted synchronously arrive before Subscribe returns; deferred
// values arrive later from whatever context the source's deferred mechanism
// uses. There is no handle to return: once subscribed, the chain runs until
// the source naturally stops.
func (o Observable[T]) Subscribe(observer Observer[T]) {
	o.onSub(observer)
}

// Lift derives a new Observable whose subscriptions flow through op.
func (o Observable[T]) Lift(op Operator[T, T]) Observable[T] {
	return Observable[T]{onSub: Lift(o.onSub, op)}
}

// Multiply derives an Observable emitting each upstream value times factor.
func (o Observable[T]) Multiply(factor T) Observable[T] {
	return Observable[T]{onSub: Multiply(o.onSub, factor)}
}

// IgnoreEven derives an Observable that drops even upstream values.
func (o Observable[T]) IgnoreEven() Observable[T] {
	return Observable[T]{onSub: IgnoreEven(o.onSub)}
}
