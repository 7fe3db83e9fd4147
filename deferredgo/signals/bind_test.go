package signals

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/krew-solutions/deferred-go/deferredgo/deferred"
	"github.com/krew-solutions/deferred-go/deferredgo/outcome"
)

func TestBindSuccess(t *testing.T) {
	t.Run("observers receive the success value", func(t *testing.T) {
		s := NewSignal[int]()
		var first, second []int
		s.Attach(func(v int) { first = append(first, v) }, "first")
		s.Attach(func(v int) { second = append(second, v) }, "second")

		BindSuccess[int, error](s, deferred.FromValue[int, error](42)).Invoke()

		assert.Equal(t, []int{42}, first)
		assert.Equal(t, []int{42}, second)
	})

	t.Run("detached observers miss later triggers", func(t *testing.T) {
		s := NewSignal[int]()
		var calls []int
		d := s.Attach(func(v int) { calls = append(calls, v) }, "obs")

		bound := BindSuccess[int, error](s, deferred.FromValue[int, error](1))
		bound.Invoke()
		d.Dispose()
		bound.Invoke()

		assert.Equal(t, []int{1}, calls)
	})
}

func TestBindFailure(t *testing.T) {
	s := NewSignal[error]()
	var calls []error
	s.Attach(func(f error) { calls = append(calls, f) }, "obs")

	testError := errors.New("boom")
	BindFailure[int](s, deferred.FromFailure[int](testError)).Invoke()

	assert.Equal(t, []error{testError}, calls)
}

func TestBindOutcome(t *testing.T) {
	t.Run("fires for success and failure alike", func(t *testing.T) {
		s := NewSignal[outcome.Outcome[int, error]]()
		var calls []outcome.Outcome[int, error]
		s.Attach(func(o outcome.Outcome[int, error]) { calls = append(calls, o) }, "obs")

		BindOutcome[int, error](s, deferred.FromValue[int, error](42)).Invoke()
		BindOutcome[int, error](s, deferred.FromFailure[int](errors.New("boom"))).Invoke()

		assert.Len(t, calls, 2)
		assert.True(t, calls[0].IsSuccess())
		assert.True(t, calls[1].IsFailure())
	})

	t.Run("fires after the deferred's own success handlers", func(t *testing.T) {
		s := NewSignal[outcome.Outcome[int, error]]()
		var order []string
		s.Attach(func(outcome.Outcome[int, error]) { order = append(order, "signal") }, "obs")

		d := deferred.FromValue[int, error](42).
			OnSuccessDo(func(int) { order = append(order, "success") })
		BindOutcome[int, error](s, d).Invoke()

		assert.Equal(t, []string{"success", "signal"}, order)
	})
}
