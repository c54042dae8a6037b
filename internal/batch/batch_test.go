package batch_test

import (
	"context"
	"sort"
	"strings"
	"sync/atomic"
	"testing"

	"bennypowers.dev/cssvalues/codec"
	"bennypowers.dev/cssvalues/internal/batch"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunPreservesOrder(t *testing.T) {
	items := make([]int, 100)
	for i := range items {
		items[i] = i
	}

	for _, workers := range []int{-1, 0, 1, 3, 200} {
		out, err := batch.Run(context.Background(), items, workers, func(_ context.Context, n int) int {
			return n * n
		})
		require.NoError(t, err)
		require.Len(t, out, len(items))
		for i, v := range out {
			assert.Equal(t, i*i, v)
		}
	}
}

func TestRunEmpty(t *testing.T) {
	out, err := batch.Run(context.Background(), []string{}, 4, func(_ context.Context, s string) string { return s })
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestRunCancelledBeforeStart(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var calls atomic.Int32
	out, err := batch.Run(ctx, []int{1, 2, 3}, 2, func(context.Context, int) int {
		calls.Add(1)
		return 1
	})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, int32(0), calls.Load())
	assert.Equal(t, []int{0, 0, 0}, out)
}

func TestRunCancelStopsDispatch(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	items := make([]int, 1000)
	var calls atomic.Int32
	_, err := batch.Run(ctx, items, 1, func(context.Context, int) int {
		if calls.Add(1) == 5 {
			cancel()
		}
		return 0
	})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Less(t, calls.Load(), int32(len(items)))
}

func TestRunCanonicalizesValues(t *testing.T) {
	c := codec.Default()
	inputs := []string{"RED", "hwb(450 150% -30%)", "nope", "rgba(0,0,0,.5)"}

	out, err := batch.Run(context.Background(), inputs, 2, func(_ context.Context, css string) string {
		r := c.Canonicalize(codec.GrammarColor, css)
		if !r.IsOK() {
			return "error"
		}
		return r.Value()
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"red", "hwb(90 100% 0%)", "error", "rgb(0 0 0 / 0.5)"}, out)
}

func TestStream(t *testing.T) {
	items := []string{"a", "b", "c", "d"}
	var got []string
	for r := range batch.Stream(context.Background(), items, 2, func(_ context.Context, s string) string {
		return strings.ToUpper(s)
	}) {
		assert.Equal(t, strings.ToUpper(items[r.Index]), r.Value)
		got = append(got, r.Value)
	}
	sort.Strings(got)
	assert.Equal(t, []string{"A", "B", "C", "D"}, got)
}
