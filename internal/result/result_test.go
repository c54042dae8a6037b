package result_test

import (
	"errors"
	"strconv"
	"testing"

	"bennypowers.dev/cssvalues/internal/result"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResult(t *testing.T) {
	t.Run("Ok carries a value", func(t *testing.T) {
		r := result.Ok(42)
		assert.True(t, r.IsOK())
		assert.Equal(t, 42, r.Value())
		assert.NoError(t, r.Err())
	})

	t.Run("Err carries an error", func(t *testing.T) {
		r := result.Errorf[int]("bad value %q", "x")
		assert.False(t, r.IsOK())
		assert.EqualError(t, r.Err(), `bad value "x"`)
		assert.Equal(t, 0, r.Value())
	})

	t.Run("From converts value and error pairs", func(t *testing.T) {
		n, err := strconv.Atoi("12")
		assert.Equal(t, 12, result.Unwrap(result.From(n, err)))

		_, err = strconv.Atoi("nope")
		assert.False(t, result.From(0, err).IsOK())
	})
}

func TestMapAndThen(t *testing.T) {
	double := func(n int) int { return n * 2 }

	t.Run("Map transforms Ok", func(t *testing.T) {
		assert.Equal(t, 8, result.Map(result.Ok(4), double).Value())
	})

	t.Run("Map short-circuits Err", func(t *testing.T) {
		called := false
		r := result.Map(result.Err[int](errors.New("boom")), func(n int) int {
			called = true
			return n
		})
		assert.False(t, called)
		assert.EqualError(t, r.Err(), "boom")
	})

	t.Run("AndThen chains fallible steps", func(t *testing.T) {
		parse := func(s string) result.Result[int] {
			n, err := strconv.Atoi(s)
			return result.From(n, err)
		}
		assert.Equal(t, 7, result.AndThen(result.Ok("7"), parse).Value())
		assert.False(t, result.AndThen(result.Ok("x"), parse).IsOK())
	})

	t.Run("AndThen short-circuits Err", func(t *testing.T) {
		called := false
		r := result.AndThen(result.Err[string](errors.New("first")), func(string) result.Result[int] {
			called = true
			return result.Ok(1)
		})
		assert.False(t, called)
		assert.EqualError(t, r.Err(), "first")
	})
}

func TestUnwrap(t *testing.T) {
	assert.Equal(t, "v", result.Unwrap(result.Ok("v")))
	assert.Equal(t, "fallback", result.UnwrapOr(result.Err[string](errors.New("x")), "fallback"))

	defer func() {
		rec := recover()
		require.NotNil(t, rec)
		err, ok := rec.(error)
		require.True(t, ok)
		assert.ErrorIs(t, err, result.ErrUnwrap)
		assert.Contains(t, err.Error(), "Invalid color keyword: foo")
	}()
	result.Unwrap(result.Errorf[int]("Invalid color keyword: foo"))
}

func TestGenerateResult(t *testing.T) {
	t.Run("Generated is ok with no error issues", func(t *testing.T) {
		g := result.Generated("red")
		assert.True(t, g.OK)
		assert.Equal(t, "red", g.Value)
		assert.Empty(t, g.Issues)
		assert.NoError(t, g.Err())
	})

	t.Run("warnings do not fail generation", func(t *testing.T) {
		g := result.Generated("red", result.InvalidIR("odd"))
		assert.True(t, g.OK)
		require.Len(t, g.Issues, 1)
		assert.Equal(t, result.SeverityWarning, g.Issues[0].Severity)
	})

	t.Run("FromIssues fails on error issues", func(t *testing.T) {
		called := false
		g := result.FromIssues([]result.Issue{result.MissingField("h")}, func() string {
			called = true
			return ""
		})
		assert.False(t, called)
		assert.False(t, g.OK)
		require.Len(t, g.Errors(), 1)
		assert.Equal(t, result.CodeMissingRequiredField, g.Errors()[0].Code)

		var genErr *result.GenerateError
		require.ErrorAs(t, g.Err(), &genErr)
		assert.Contains(t, genErr.Error(), `missing required field "h"`)
	})

	t.Run("issue helpers carry codes", func(t *testing.T) {
		assert.Equal(t, result.CodeUnsupportedKind, result.UnsupportedKind("cmyk").Code)
		issue := result.OutOfRange("x1", 2, "0", "1").WithPath("cubic-bezier")
		assert.Equal(t, result.CodeOutOfRange, issue.Code)
		assert.Equal(t, "cubic-bezier: x1 must be between 0 and 1, got 2", issue.Message)
		assert.NotEmpty(t, issue.Suggestion)
	})
}
