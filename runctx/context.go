package runctx

import (
	"sync/atomic"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/semaphore"
)

// Context is the explicit replacement for the file-scope globals
// (startTime, searchCompleted, logStream) that a single-process
// translation of the original solver would otherwise carry. One
// Context is built per invocation and threaded into every B&B call;
// nothing in search, decompose, or schedule reads package-level state.
type Context struct {
	// Deadline is the wall-clock instant past which every B&B call
	// must abandon its subtree. The zero Time means no deadline.
	Deadline time.Time

	// Best is the shared incumbent, guarded by its own mutex.
	Best *Best

	// Pool bounds how many bound computations run at once: every task
	// that belongs to the same worker shares this one semaphore,
	// sized to Threads, so concurrent tasks within a worker draw from
	// a single team-sized budget rather than each getting their own.
	Pool *semaphore.Weighted

	// Completed transitions true -> false the moment any task
	// observes the deadline has passed. The race-allowed monotonic
	// write matches the source's "completed" flag contract.
	Completed atomic.Bool

	// Workers is the distributed worker count W.
	Workers int
	// Threads is the shared-memory parallelism degree T per worker.
	Threads int
	// DecompDepth is the pre-search decomposition depth D.
	DecompDepth int
	// MinVerticesForTask is the task-spawn size threshold.
	MinVerticesForTask int
	// MaxTaskDepth is the task-spawn depth threshold.
	MaxTaskDepth int

	Logger *zap.Logger

	timeLimit time.Duration
}

// New builds a Context for a graph with origN original vertices,
// applying opts over the documented defaults (Workers=1, Threads=1,
// DecompDepth=2, MinVerticesForTask=30, MaxTaskDepth=4, a no-op
// logger, no deadline).
func New(origN int, opts ...Option) *Context {
	c := &Context{
		Best:               NewBest(origN),
		Workers:            1,
		Threads:            1,
		DecompDepth:        2,
		MinVerticesForTask: 30,
		MaxTaskDepth:       4,
		Logger:             zap.NewNop(),
	}
	c.Completed.Store(true)

	start := time.Now()
	for _, opt := range opts {
		opt(c)
	}
	if c.timeLimit > 0 {
		c.Deadline = start.Add(c.timeLimit)
	}

	threads := c.Threads
	if threads < 1 {
		threads = 1
	}
	c.Pool = semaphore.NewWeighted(int64(threads))

	return c
}

// DeadlineExceeded reports whether the wall-clock deadline has
// passed. A zero Deadline never expires.
func (c *Context) DeadlineExceeded() bool {
	if c.Deadline.IsZero() {
		return false
	}
	return time.Now().After(c.Deadline)
}

// MarkIncomplete records that some task abandoned its subtree because
// the deadline elapsed. Concurrent callers may race to set this; any
// number of redundant false-to-false writes is harmless.
func (c *Context) MarkIncomplete() {
	c.Completed.Store(false)
}
