package runctx_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/vlathgraph/chromatic/runctx"
	"go.uber.org/zap"
)

func TestNew_Defaults(t *testing.T) {
	c := runctx.New(5)
	require.Equal(t, 1, c.Workers)
	require.Equal(t, 1, c.Threads)
	require.Equal(t, 2, c.DecompDepth)
	require.Equal(t, 30, c.MinVerticesForTask)
	require.Equal(t, 4, c.MaxTaskDepth)
	require.True(t, c.Deadline.IsZero())
	require.False(t, c.DeadlineExceeded())
	require.True(t, c.Completed.Load())
	require.Equal(t, 6, c.Best.NumColors())
	require.NotNil(t, c.Pool)
}

func TestNew_AppliesOptions(t *testing.T) {
	logger := zap.NewNop()
	c := runctx.New(3,
		runctx.WithWorkers(4),
		runctx.WithThreads(2),
		runctx.WithDecompDepth(3),
		runctx.WithMinVerticesForTask(10),
		runctx.WithMaxTaskDepth(6),
		runctx.WithLogger(logger),
		runctx.WithTimeLimit(time.Hour),
	)
	require.Equal(t, 4, c.Workers)
	require.Equal(t, 2, c.Threads)
	require.Equal(t, 3, c.DecompDepth)
	require.Equal(t, 10, c.MinVerticesForTask)
	require.Equal(t, 6, c.MaxTaskDepth)
	require.Same(t, logger, c.Logger)
	require.False(t, c.Deadline.IsZero())
	require.False(t, c.DeadlineExceeded())
}

func TestNew_ExpiredDeadline(t *testing.T) {
	c := runctx.New(3, runctx.WithTimeLimit(time.Nanosecond))
	time.Sleep(time.Millisecond)
	require.True(t, c.DeadlineExceeded())
}

func TestMarkIncomplete_TransitionsOnce(t *testing.T) {
	c := runctx.New(3)
	require.True(t, c.Completed.Load())
	c.MarkIncomplete()
	require.False(t, c.Completed.Load())
	c.MarkIncomplete()
	require.False(t, c.Completed.Load())
}

func TestWithWorkers_PanicsOnInvalid(t *testing.T) {
	require.Panics(t, func() { runctx.WithWorkers(0) })
}

func TestWithLogger_PanicsOnNil(t *testing.T) {
	require.Panics(t, func() { runctx.WithLogger(nil) })
}
