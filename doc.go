// Package srx is a minimal push-based reactive stream core.
//
// An observable is nothing more than a subscription procedure: a function
// that, given an observer, produces values to it. Operators derive new
// observables by lifting a per-value policy over an existing one, and the
// [Observable] wrapper exposes the same machinery through a fluent,
// chainable surface.
//
// Streams are cold: every Subscribe call re-runs the full chain from the
// source, with no state shared between subscriptions. There is no
// unsubscription, no error channel and no completion signal; a source emits
// until it naturally stops, which may be never.
package srx
