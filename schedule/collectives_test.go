package schedule_test

import (
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vlathgraph/chromatic/schedule"
)

func TestMaxReduceInt(t *testing.T) {
	require.Equal(t, 5, schedule.MaxReduceInt([]int{2, 5, 1, 0}))
	require.Equal(t, 0, schedule.MaxReduceInt(nil))
}

func TestMaxReduceIntVector_OwningWorkerWins(t *testing.T) {
	out := schedule.MaxReduceIntVector([][]int{
		{0, -1, -1},
		{-1, 1, -1},
		{-1, -1, 2},
	})
	require.Equal(t, []int{0, 1, 2}, out)
}

func TestMaxReduceIntVector_Empty(t *testing.T) {
	require.Nil(t, schedule.MaxReduceIntVector(nil))
}

func TestMinWithSource_PicksLowestRankOnTie(t *testing.T) {
	value, source := schedule.MinWithSource([]int{3, 2, 2, 5})
	require.Equal(t, 2, value)
	require.Equal(t, 1, source)
}

func TestMinWithSource_SingleValue(t *testing.T) {
	value, source := schedule.MinWithSource([]int{7})
	require.Equal(t, 7, value)
	require.Equal(t, 0, source)
}

func TestBroadcast_ReturnsIndependentCopy(t *testing.T) {
	original := []int{1, 2, 3}
	copied := schedule.Broadcast(original)
	copied[0] = 99
	require.Equal(t, 1, original[0])
}

func TestBarrier_ReleasesAfterAllDone(t *testing.T) {
	const n = 5
	b := schedule.NewBarrier(n)
	var released atomic.Bool

	done := make(chan struct{})
	go func() {
		b.Wait()
		released.Store(true)
		close(done)
	}()

	for i := 0; i < n; i++ {
		require.False(t, released.Load())
		b.Done()
	}
	<-done
	require.True(t, released.Load())
}
