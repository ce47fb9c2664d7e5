package search

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/vlathgraph/chromatic/bound"
	"github.com/vlathgraph/chromatic/branch"
	"github.com/vlathgraph/chromatic/graphstate"
	"github.com/vlathgraph/chromatic/runctx"
)

// engine holds the one piece of state a branch-and-bound recursion
// needs beyond its call stack: the run context (deadline, incumbent,
// thresholds, logger, and the shared thread-budget pool) and the task
// group that fans children out. The two concurrency primitives are
// kept separate on purpose: tasks is never capacity-limited, so a
// frame spawning children never blocks waiting for a pool slot that's
// held by an ancestor of its own goroutine tree (that would deadlock
// the moment every slot is owned by a frame still waiting on its own
// children). ctx.Pool is acquired only around the bound computation
// itself, held for the duration of that computation and released
// immediately after, so it never sits blocked underneath a pending
// child. ctx.Pool is shared across every task a caller runs
// concurrently under the same worker (see schedule.newSubContext), so
// the actual number of bound computations in flight at once is capped
// at ctx.Threads regardless of how many tasks that worker owns.
type engine struct {
	ctx   *runctx.Context
	tasks *errgroup.Group
}

// Run explores the branch-and-bound tree rooted at g, starting at
// recursion depth depth, updating ctx.Best as it goes. depth is
// seeded to 0 for a fresh task and to ctx.DecompDepth for a task
// produced by the decomposer (see decompose.Expand).
func Run(ctx *runctx.Context, g *graphstate.Graph, depth int) {
	tasks, _ := errgroup.WithContext(context.Background())
	e := &engine{ctx: ctx, tasks: tasks}
	e.branchAndBound(g, depth)
	_ = tasks.Wait()
}

func (e *engine) branchAndBound(g *graphstate.Graph, depth int) {
	if e.ctx.DeadlineExceeded() {
		e.ctx.MarkIncomplete()
		return
	}

	_ = e.ctx.Pool.Acquire(context.Background(), 1)
	ub := bound.DSATUR(g)
	lb := bound.MaxClique(g)
	e.ctx.Pool.Release(1)

	updated := e.ctx.Best.TryUpdate(ub.NumColors, g.Mapping, ub.Coloring)

	if e.ctx.Logger != nil {
		e.ctx.Logger.Debug("bb node",
			zap.Int("depth", depth),
			zap.Int("n", g.N),
			zap.Int("lower_bound", lb.Size),
			zap.Int("upper_bound", ub.NumColors),
			zap.Bool("incumbent_updated", updated),
		)
	}

	if lb.Size == ub.NumColors {
		return
	}
	if lb.Size >= e.ctx.Best.NumColors() {
		return
	}

	v1, v2 := branch.Select(g)
	if v1 == -1 {
		return
	}

	mergeChild := mustMerge(g, v1, v2)
	addEdgeChild := mustAddEdge(g, v1, v2)

	if g.N >= e.ctx.MinVerticesForTask && depth < e.ctx.MaxTaskDepth {
		e.tasks.Go(func() error {
			e.branchAndBound(mergeChild, depth+1)
			return nil
		})
		e.tasks.Go(func() error {
			e.branchAndBound(addEdgeChild, depth+1)
			return nil
		})
		return
	}

	e.branchAndBound(mergeChild, depth+1)
	e.branchAndBound(addEdgeChild, depth+1)
}

// mustMerge and mustAddEdge assert the branch.Select contract: it
// only ever returns a non-adjacent, in-range pair, so these calls
// cannot fail. A failure here is a programmer error, not a data
// error, so it panics rather than threading an error return through
// every recursive call.
func mustMerge(g *graphstate.Graph, v1, v2 int) *graphstate.Graph {
	child, err := g.MergeVertices(v1, v2)
	if err != nil {
		panic(fmt.Sprintf("search: MergeVertices(%d,%d): %v", v1, v2, err))
	}
	return child
}

func mustAddEdge(g *graphstate.Graph, v1, v2 int) *graphstate.Graph {
	child, err := g.AddEdge(v1, v2)
	if err != nil {
		panic(fmt.Sprintf("search: AddEdge(%d,%d): %v", v1, v2, err))
	}
	return child
}
