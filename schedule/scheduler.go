package schedule

import (
	"golang.org/x/sync/semaphore"

	"github.com/vlathgraph/chromatic/runctx"
)

// newSubContext builds a Context for one task's or one component's
// search, inheriting the deadline and tuning knobs from ctx but
// owning its own incumbent. Workers share no memory at this layer —
// each gets an independently allocated Context rather than a pointer
// into a shared one, so concurrent workers never touch the same
// Context fields. pool is the thread-budget semaphore every task
// belonging to the same worker must share; callers that run several
// of a worker's owned tasks concurrently pass the same pool to each
// newSubContext call so the worker's total concurrency stays capped
// at ctx.Threads instead of multiplying per task.
func newSubContext(ctx *runctx.Context, best *runctx.Best, pool *semaphore.Weighted) *runctx.Context {
	c := &runctx.Context{
		Deadline:           ctx.Deadline,
		Best:               best,
		Pool:               pool,
		Workers:            ctx.Workers,
		Threads:            ctx.Threads,
		DecompDepth:        ctx.DecompDepth,
		MinVerticesForTask: ctx.MinVerticesForTask,
		MaxTaskDepth:       ctx.MaxTaskDepth,
		Logger:             ctx.Logger,
	}
	c.Completed.Store(true)
	return c
}

// newWorkerPool builds the thread-budget semaphore one worker's tasks
// all draw from, sized to ctx.Threads.
func newWorkerPool(ctx *runctx.Context) *semaphore.Weighted {
	threads := ctx.Threads
	if threads < 1 {
		threads = 1
	}
	return semaphore.NewWeighted(int64(threads))
}

// workerCount clamps a configured worker count to at least one.
func workerCount(w int) int {
	if w < 1 {
		return 1
	}
	return w
}
