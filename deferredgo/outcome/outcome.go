package outcome

import "fmt"

// Outcome represents the discriminated result of a fallible operation:
// every Outcome is either Success (carries a value of type V) or Failure
// (carries a failure of type F).
//
// F is deliberately unconstrained. Callers that model failures as Go errors
// instantiate it with error (or a concrete error type); callers with richer
// failure taxonomies use whatever type fits.
type Outcome[V, F any] struct {
	value   V
	failure F
	success bool
}

// Success creates an Outcome carrying the given value.
func Success[V, F any](value V) Outcome[V, F] {
	return Outcome[V, F]{value: value, success: true}
}

// Failure creates an Outcome carrying the given failure.
func Failure[V, F any](failure F) Outcome[V, F] {
	return Outcome[V, F]{failure: failure}
}

// IsSuccess returns true if the Outcome carries a value.
func (o Outcome[V, F]) IsSuccess() bool {
	return o.success
}

// IsFailure returns true if the Outcome carries a failure.
func (o Outcome[V, F]) IsFailure() bool {
	return !o.success
}

// Unwrap returns the carried value.
// Panics if the Outcome is a Failure.
func (o Outcome[V, F]) Unwrap() V {
	if !o.success {
		panic("called Unwrap on a Failure Outcome")
	}
	return o.value
}

// UnwrapFailure returns the carried failure.
// Panics if the Outcome is a Success.
func (o Outcome[V, F]) UnwrapFailure() F {
	if o.success {
		panic("called UnwrapFailure on a Success Outcome")
	}
	return o.failure
}

// UnwrapOr returns the carried value or the provided default.
func (o Outcome[V, F]) UnwrapOr(def V) V {
	if o.success {
		return o.value
	}
	return def
}

// UnwrapOrElse returns the carried value or computes one from the failure.
func (o Outcome[V, F]) UnwrapOrElse(f func(F) V) V {
	if o.success {
		return o.value
	}
	return f(o.failure)
}

// Map applies a function to the carried value (if Success), or forwards the
// failure unchanged (if Failure).
func Map[V, U, F any](o Outcome[V, F], f func(V) U) Outcome[U, F] {
	if o.success {
		return Success[U, F](f(o.value))
	}
	return Failure[U, F](o.failure)
}

// MapFailure applies a function to the carried failure (if Failure), or
// forwards the value unchanged (if Success).
func MapFailure[V, F, G any](o Outcome[V, F], f func(F) G) Outcome[V, G] {
	if o.success {
		return Success[V, G](o.value)
	}
	return Failure[V, G](f(o.failure))
}

// String implements fmt.Stringer.
func (o Outcome[V, F]) String() string {
	if o.success {
		return fmt.Sprintf("Success(%v)", o.value)
	}
	return fmt.Sprintf("Failure(%v)", o.failure)
}
