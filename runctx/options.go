package runctx

import (
	"time"

	"go.uber.org/zap"
)

// Option customizes a Context's tuning knobs. Constructors validate
// and panic on meaningless input (programmer error); they never
// validate data that only appears at runtime.
type Option func(*Context)

// WithTimeLimit sets the wall-clock deadline, measured from the
// moment New is called. A non-positive duration leaves the Context
// with no deadline.
func WithTimeLimit(d time.Duration) Option {
	return func(c *Context) {
		c.timeLimit = d
	}
}

// WithWorkers sets the distributed worker count W. Panics if w < 1.
func WithWorkers(w int) Option {
	if w < 1 {
		panic("runctx: WithWorkers(w<1)")
	}
	return func(c *Context) {
		c.Workers = w
	}
}

// WithThreads sets the shared-memory parallelism degree T per
// worker. Panics if t < 1.
func WithThreads(t int) Option {
	if t < 1 {
		panic("runctx: WithThreads(t<1)")
	}
	return func(c *Context) {
		c.Threads = t
	}
}

// WithDecompDepth sets the pre-search decomposition depth D. Panics
// if d < 0.
func WithDecompDepth(d int) Option {
	if d < 0 {
		panic("runctx: WithDecompDepth(d<0)")
	}
	return func(c *Context) {
		c.DecompDepth = d
	}
}

// WithMinVerticesForTask sets the task-spawn size threshold. Panics
// if n < 0.
func WithMinVerticesForTask(n int) Option {
	if n < 0 {
		panic("runctx: WithMinVerticesForTask(n<0)")
	}
	return func(c *Context) {
		c.MinVerticesForTask = n
	}
}

// WithMaxTaskDepth sets the task-spawn depth threshold. Panics if
// d < 0.
func WithMaxTaskDepth(d int) Option {
	if d < 0 {
		panic("runctx: WithMaxTaskDepth(d<0)")
	}
	return func(c *Context) {
		c.MaxTaskDepth = d
	}
}

// WithLogger attaches a structured log sink. Panics on nil; callers
// that want silence should omit the option (New defaults to a no-op
// logger) rather than pass a nil one.
func WithLogger(logger *zap.Logger) Option {
	if logger == nil {
		panic("runctx: WithLogger(nil)")
	}
	return func(c *Context) {
		c.Logger = logger
	}
}
