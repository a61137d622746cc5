package fieldkit_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/fieldkit"
)

func TestErrors(t *testing.T) {
	t.Parallel()

	t.Run("empty collection means success", func(t *testing.T) {
		var errs fieldkit.Errors
		assert.True(t, errs.IsEmpty())
		assert.False(t, errs.Has("price"))
		assert.Nil(t, errs.ByField())
	})

	t.Run("add preserves order", func(t *testing.T) {
		var errs fieldkit.Errors
		errs.Add("price", fieldkit.CodeMinValue, "too small")
		errs.Add("email", fieldkit.CodeInvalidEmail, "bad address")
		errs.Add("price", fieldkit.CodeNotNumeric, "not a number")

		assert.Equal(t, []string{"price", "email"}, errs.Fields())
		assert.Equal(t, []string{"too small", "not a number"}, errs.Messages("price"))
		assert.True(t, errs.HasCode("price", fieldkit.CodeMinValue))
		assert.False(t, errs.HasCode("email", fieldkit.CodeMinValue))
	})

	t.Run("ByField flattens to messages map", func(t *testing.T) {
		var errs fieldkit.Errors
		errs.Add("a", fieldkit.CodeRequired, "A is required")
		errs.Add("a", fieldkit.CodeMinLength, "A is too short")
		errs.Add("b", fieldkit.CodeRequired, "B is required")

		assert.Equal(t, map[string][]string{
			"a": {"A is required", "A is too short"},
			"b": {"B is required"},
		}, errs.ByField())
	})

	t.Run("implements error", func(t *testing.T) {
		var errs fieldkit.Errors
		errs.Add("a", fieldkit.CodeRequired, "A is required")

		var err error = errs
		assert.Contains(t, err.Error(), "a: A is required")

		wrapped := fmt.Errorf("submit: %w", err)
		got, ok := fieldkit.AsErrors(wrapped)
		assert.True(t, ok)
		assert.Equal(t, errs, got)
	})

	t.Run("AsErrors on nil and foreign errors", func(t *testing.T) {
		_, ok := fieldkit.AsErrors(nil)
		assert.False(t, ok)

		_, ok = fieldkit.AsErrors(assert.AnError)
		assert.False(t, ok)
	})

	t.Run("merge concatenates", func(t *testing.T) {
		var a, b fieldkit.Errors
		a.Add("x", fieldkit.CodeRequired, "X is required")
		b.Add("y", fieldkit.CodeRequired, "Y is required")

		a.Merge(b)
		assert.Equal(t, []string{"x", "y"}, a.Fields())
	})
}

func TestIsEmpty(t *testing.T) {
	t.Parallel()

	assert.True(t, fieldkit.IsEmpty(nil))
	assert.True(t, fieldkit.IsEmpty(""))
	assert.True(t, fieldkit.IsEmpty("   "))
	assert.True(t, fieldkit.IsEmpty(false))
	assert.True(t, fieldkit.IsEmpty([]string{}))
	assert.True(t, fieldkit.IsEmpty([]int64{}))

	assert.False(t, fieldkit.IsEmpty("x"))
	assert.False(t, fieldkit.IsEmpty(true))
	assert.False(t, fieldkit.IsEmpty(0.0), "numeric zero is a real value")
	assert.False(t, fieldkit.IsEmpty([]string{"a"}))
}
