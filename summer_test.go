package parsum_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/okunev/parsum"
)

func TestSummerBasic(t *testing.T) {
	s, err := parsum.NewSummer[int64](context.Background(), 4)
	require.NoError(t, err)
	defer s.Close()

	got, err := s.Sum([]int64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10})
	require.NoError(t, err)
	assert.Equal(t, int64(55), got)
}

func TestSummerReuse(t *testing.T) {
	s, err := parsum.NewSummer[int64](context.Background(), 3)
	require.NoError(t, err)

	xs := randomInts(777)
	want := sequentialSum(xs)

	// Same pool across many calls; results must stay identical.
	for i := 0; i < 25; i++ {
		got, err := s.Sum(xs)
		require.NoError(t, err)
		require.Equal(t, want, got)
	}

	// Close drains the workers, so the counters below are final.
	require.NoError(t, s.Close())

	stats := s.Stats()
	assert.Equal(t, 3, stats.Workers)
	assert.Greater(t, stats.Submitted, int64(0))
	assert.Equal(t, stats.Submitted, stats.Completed, "no task should be left in flight")
}

func TestSummerEmptyInput(t *testing.T) {
	s, err := parsum.NewSummer[int](context.Background(), 2)
	require.NoError(t, err)
	defer s.Close()

	got, err := s.Sum(nil)
	require.NoError(t, err)
	assert.Equal(t, 0, got)
}

func TestSummerInvalidWorkerCount(t *testing.T) {
	_, err := parsum.NewSummer[int](context.Background(), 0)
	assert.ErrorIs(t, err, parsum.ErrInvalidWorkers)
}

func TestSummerAfterClose(t *testing.T) {
	s, err := parsum.NewSummer[int](context.Background(), 2)
	require.NoError(t, err)
	require.NoError(t, s.Close())

	_, err = s.Sum([]int{1, 2, 3})
	assert.ErrorIs(t, err, parsum.ErrPoolClosed)
}

func TestSummerConcurrentCallers(t *testing.T) {
	s, err := parsum.NewSummer[int64](context.Background(), 4)
	require.NoError(t, err)
	defer s.Close()

	xs := randomInts(200)
	want := sequentialSum(xs)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got, err := s.Sum(xs)
			assert.NoError(t, err)
			assert.Equal(t, want, got)
		}()
	}
	wg.Wait()
}
