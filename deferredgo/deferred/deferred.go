package deferred

import (
	"slices"

	"github.com/krew-solutions/deferred-go/deferredgo/outcome"
)

// Noop is a handler that ignores its argument. Useful as an explicit
// placeholder where a handler is expected.
func Noop[T any](_ T) {}

// DeferredImp wraps an asynchronous operation together with ordered lists of
// handlers to run against its outcome.
//
// The operation is set once at construction and never reassigned. Handlers
// are appended via the On*Do registration calls and dispatched on Invoke.
// Invoke does not memoize: every call re-runs the operation from scratch and
// re-fires all registered handlers, so an operation with side effects will
// repeat them on each trigger.
//
// No locking is provided; concurrent registration or triggering from
// multiple goroutines must be serialized by the caller.
type DeferredImp[V, F any] struct {
	operation Operation[V, F]
	onSuccess []func(V)
	onFailure []func(F)
	onOutcome []func(outcome.Outcome[V, F])
}

// New creates a Deferred wrapping the given operation. This is the primitive
// construction form; all other constructors delegate to it. The operation may
// complete synchronously, later, from another goroutine, or never.
func New[V, F any](operation Operation[V, F]) *DeferredImp[V, F] {
	return &DeferredImp[V, F]{operation: operation}
}

// FromOutcome creates a Deferred whose operation synchronously completes
// with the given outcome.
func FromOutcome[V, F any](o outcome.Outcome[V, F]) *DeferredImp[V, F] {
	return New(func(complete func(outcome.Outcome[V, F])) {
		complete(o)
	})
}

// FromValue creates a Deferred that synchronously succeeds with the given value.
func FromValue[V, F any](value V) *DeferredImp[V, F] {
	return FromOutcome(outcome.Success[V, F](value))
}

// FromFailure creates a Deferred that synchronously fails with the given failure.
func FromFailure[V, F any](failure F) *DeferredImp[V, F] {
	return FromOutcome(outcome.Failure[V, F](failure))
}

// OnSuccessDo appends a handler to run with the value of each successful
// trigger. Registration never triggers execution.
func (d *DeferredImp[V, F]) OnSuccessDo(handler func(V)) Deferred[V, F] {
	d.onSuccess = append(d.onSuccess, handler)
	return d
}

// OnFailureDo appends a handler to run with the failure of each failed
// trigger. Registration never triggers execution.
func (d *DeferredImp[V, F]) OnFailureDo(handler func(F)) Deferred[V, F] {
	d.onFailure = append(d.onFailure, handler)
	return d
}

// OnOutcomeDo appends a handler to run with the outcome of each trigger,
// success or failure, after the success/failure handlers.
func (d *DeferredImp[V, F]) OnOutcomeDo(handler func(outcome.Outcome[V, F])) Deferred[V, F] {
	d.onOutcome = append(d.onOutcome, handler)
	return d
}

// Invoke runs the wrapped operation once and dispatches its outcome to the
// registered handlers: success or failure handlers first, in registration
// order, then outcome handlers in registration order.
//
// Handler lists are snapshotted at call time, so a handler that registers
// further handlers does not affect the dispatch already in flight. A handler
// that panics propagates to Invoke's caller and terminates the remaining
// dispatch for that trigger.
func (d *DeferredImp[V, F]) Invoke() Deferred[V, F] {
	onSuccess := slices.Clone(d.onSuccess)
	onFailure := slices.Clone(d.onFailure)
	onOutcome := slices.Clone(d.onOutcome)

	d.operation(func(o outcome.Outcome[V, F]) {
		if o.IsSuccess() {
			value := o.Unwrap()
			for _, handler := range onSuccess {
				handler(value)
			}
		} else {
			failure := o.UnwrapFailure()
			for _, handler := range onFailure {
				handler(failure)
			}
		}
		for _, handler := range onOutcome {
			handler(o)
		}
	})
	return d
}

// Run invokes the wrapped operation once, forwarding its outcome directly to
// onOutcome. Registered handler lists are ignored.
func (d *DeferredImp[V, F]) Run(onOutcome func(outcome.Outcome[V, F])) {
	d.operation(onOutcome)
}

// RunWith invokes the wrapped operation once, destructuring its outcome: the
// value goes to onSuccess, the failure to onFailure if supplied. Omitting
// onFailure silently discards a failure; this is deliberate — use Run or
// supply a failure handler when failures matter. Registered handler lists
// are ignored.
func (d *DeferredImp[V, F]) RunWith(onSuccess func(V), onFailure ...func(F)) {
	d.operation(func(o outcome.Outcome[V, F]) {
		if o.IsSuccess() {
			onSuccess(o.Unwrap())
			return
		}
		if len(onFailure) > 0 {
			onFailure[0](o.UnwrapFailure())
		}
	})
}

// Then sequences two fallible asynchronous steps: it returns a Deferred
// whose operation runs d's operation and, on success, feeds the value to
// next, then runs the resulting Deferred's operation and forwards its
// outcome. A failure of the first step short-circuits — next is never called
// and the failure becomes the final outcome.
//
// This is the bind / flat-map combinator. It is a free function (not a
// method) because Go does not support type parameters on methods; this keeps
// V2 a concrete type through the chain.
//
// The composition is lazy: nothing runs until the returned Deferred is
// itself triggered, and the receivers' registered handler lists play no part
// in the chain.
func Then[V, V2, F any](d Deferred[V, F], next func(V) Deferred[V2, F]) Deferred[V2, F] {
	return New(func(complete func(outcome.Outcome[V2, F])) {
		d.Run(func(o outcome.Outcome[V, F]) {
			if o.IsFailure() {
				complete(outcome.Failure[V2, F](o.UnwrapFailure()))
				return
			}
			next(o.Unwrap()).Run(complete)
		})
	})
}

// Defer invokes a zero-argument producer and returns the Deferred it yields.
// Thin sugar for call sites that read better with the production step named.
func Defer[V, F any](producer func() Deferred[V, F]) Deferred[V, F] {
	return producer()
}
