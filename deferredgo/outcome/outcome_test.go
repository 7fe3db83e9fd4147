package outcome

import (
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSuccess(t *testing.T) {
	t.Run("int", func(t *testing.T) {
		o := Success[int, error](42)
		assert.True(t, o.IsSuccess())
		assert.False(t, o.IsFailure())
		assert.Equal(t, 42, o.Unwrap())
	})

	t.Run("string", func(t *testing.T) {
		o := Success[string, error]("hello")
		assert.True(t, o.IsSuccess())
		assert.Equal(t, "hello", o.Unwrap())
	})

	t.Run("zero value is a valid success", func(t *testing.T) {
		o := Success[int, error](0)
		assert.True(t, o.IsSuccess())
		assert.Equal(t, 0, o.Unwrap())
	})
}

func TestFailure(t *testing.T) {
	t.Run("error failure", func(t *testing.T) {
		testError := errors.New("boom")
		o := Failure[int, error](testError)
		assert.True(t, o.IsFailure())
		assert.False(t, o.IsSuccess())
		assert.Equal(t, testError, o.UnwrapFailure())
	})

	t.Run("non-error failure type", func(t *testing.T) {
		o := Failure[int, string]("not found")
		assert.True(t, o.IsFailure())
		assert.Equal(t, "not found", o.UnwrapFailure())
	})
}

func TestUnwrap(t *testing.T) {
	t.Run("success returns value", func(t *testing.T) {
		assert.Equal(t, 42, Success[int, error](42).Unwrap())
	})

	t.Run("failure panics", func(t *testing.T) {
		assert.PanicsWithValue(t, "called Unwrap on a Failure Outcome", func() {
			Failure[int, error](errors.New("boom")).Unwrap()
		})
	})
}

func TestUnwrapFailure(t *testing.T) {
	t.Run("failure returns failure", func(t *testing.T) {
		testError := errors.New("boom")
		assert.Equal(t, testError, Failure[int, error](testError).UnwrapFailure())
	})

	t.Run("success panics", func(t *testing.T) {
		assert.PanicsWithValue(t, "called UnwrapFailure on a Success Outcome", func() {
			Success[int, error](42).UnwrapFailure()
		})
	})
}

func TestUnwrapOr(t *testing.T) {
	t.Run("success returns value", func(t *testing.T) {
		assert.Equal(t, 42, Success[int, error](42).UnwrapOr(0))
	})

	t.Run("failure returns default", func(t *testing.T) {
		assert.Equal(t, 99, Failure[int, error](errors.New("boom")).UnwrapOr(99))
	})
}

func TestUnwrapOrElse(t *testing.T) {
	t.Run("success does not call closure", func(t *testing.T) {
		called := false
		result := Success[int, error](42).UnwrapOrElse(func(error) int {
			called = true
			return 99
		})
		assert.Equal(t, 42, result)
		assert.False(t, called)
	})

	t.Run("failure computes from failure", func(t *testing.T) {
		result := Failure[int, string]("nope").UnwrapOrElse(func(f string) int {
			return len(f)
		})
		assert.Equal(t, 4, result)
	})
}

func TestMap(t *testing.T) {
	t.Run("success is transformed", func(t *testing.T) {
		o := Map(Success[int, error](42), strconv.Itoa)
		assert.True(t, o.IsSuccess())
		assert.Equal(t, "42", o.Unwrap())
	})

	t.Run("failure is forwarded without calling f", func(t *testing.T) {
		testError := errors.New("boom")
		called := false
		o := Map(Failure[int, error](testError), func(v int) string {
			called = true
			return strconv.Itoa(v)
		})
		assert.True(t, o.IsFailure())
		assert.Equal(t, testError, o.UnwrapFailure())
		assert.False(t, called)
	})
}

func TestMapFailure(t *testing.T) {
	t.Run("failure is transformed", func(t *testing.T) {
		o := MapFailure(Failure[int, string]("not found"), errors.New)
		assert.True(t, o.IsFailure())
		assert.EqualError(t, o.UnwrapFailure(), "not found")
	})

	t.Run("success is forwarded without calling f", func(t *testing.T) {
		called := false
		o := MapFailure(Success[int, string](42), func(f string) error {
			called = true
			return errors.New(f)
		})
		assert.True(t, o.IsSuccess())
		assert.Equal(t, 42, o.Unwrap())
		assert.False(t, called)
	})
}

func TestString(t *testing.T) {
	assert.Equal(t, "Success(42)", Success[int, error](42).String())
	assert.Equal(t, "Failure(boom)", Failure[int, error](errors.New("boom")).String())
}
