package utils

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParallelMap_PreservesOrder(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}

	results, errs := ParallelMap(context.Background(), items, 3, func(_ context.Context, n int) (int, error) {
		return n * 10, nil
	})

	require.Len(t, results, 5)
	assert.Equal(t, []int{10, 20, 30, 40, 50}, results)
	assert.Nil(t, FirstError(errs))
}

func TestParallelMap_CollectsPerItemErrors(t *testing.T) {
	items := []int{1, 2, 3}
	boom := errors.New("boom")

	results, errs := ParallelMap(context.Background(), items, 2, func(_ context.Context, n int) (int, error) {
		if n == 2 {
			return 0, boom
		}
		return n, nil
	})

	assert.Equal(t, 1, results[0])
	assert.Equal(t, 3, results[2])
	assert.NoError(t, errs[0])
	assert.ErrorIs(t, errs[1], boom)
	assert.ErrorIs(t, FirstError(errs), boom)
}

func TestParallelMap_EmptyInput(t *testing.T) {
	results, errs := ParallelMap(context.Background(), nil, 4, func(_ context.Context, n int) (int, error) {
		return n, nil
	})

	assert.Empty(t, results)
	assert.Empty(t, errs)
}

func TestParallelMap_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	items := make([]int, 100)
	results, _ := ParallelMap(ctx, items, 4, func(_ context.Context, n int) (int, error) {
		return 1, nil
	})

	// Partial or no results, but never a hang or panic.
	assert.Len(t, results, 100)
}

func TestCollectErrors(t *testing.T) {
	errA := errors.New("a")
	errB := errors.New("b")

	collected := CollectErrors([]error{nil, errA, nil, errB})

	assert.Equal(t, []error{errA, errB}, collected)
}
