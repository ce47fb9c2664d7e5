package schedule

import (
	"sync"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/vlathgraph/chromatic/decompose"
	"github.com/vlathgraph/chromatic/graphstate"
	"github.com/vlathgraph/chromatic/runctx"
	"github.com/vlathgraph/chromatic/search"
)

// Regime2 handles a single connected component: the root is
// decomposed to ctx.DecompDepth, the resulting tasks are distributed
// round-robin across workers, and each worker explores its owned
// tasks as cooperative parallel units against one local incumbent
// seeded from the caller's shared best, queuing every owned task at
// once and waiting on all of them together rather than working
// through them one at a time. After every task finishes, workers
// exchange their local best color count by min-reduce, and the worker
// holding the minimum (lowest rank on a tie) broadcasts its coloring
// to the others.
func Regime2(ctx *runctx.Context, root *graphstate.Graph) (numColors int, coloring []int, completed bool) {
	tasks := decompose.Expand(ctx.Best, root, ctx.DecompDepth)
	w := workerCount(ctx.Workers)

	type workerResult struct {
		numColors int
		coloring  []int
		completed bool
	}
	results := make([]workerResult, w)

	seedColors, seedColoring := ctx.Best.Snapshot()

	var wg sync.WaitGroup
	for r := 0; r < w; r++ {
		r := r
		wg.Add(1)
		go func() {
			defer wg.Done()

			localBest := runctx.NewBest(root.OrigN)
			localBest.Seed(seedColors, seedColoring)

			var localCompleted atomic.Bool
			localCompleted.Store(true)

			pool := newWorkerPool(ctx)
			var owned errgroup.Group
			for i := r; i < len(tasks); i += w {
				i := i
				owned.Go(func() error {
					subCtx := newSubContext(ctx, localBest, pool)
					search.Run(subCtx, tasks[i], ctx.DecompDepth)
					if !subCtx.Completed.Load() {
						localCompleted.Store(false)
					}
					return nil
				})
			}
			_ = owned.Wait()

			n, col := localBest.Snapshot()
			results[r] = workerResult{numColors: n, coloring: col, completed: localCompleted.Load()}
		}()
	}
	wg.Wait()

	values := make([]int, w)
	for r, res := range results {
		values[r] = res.numColors
	}
	_, source := MinWithSource(values)

	completed = true
	for _, res := range results {
		if !res.completed {
			completed = false
		}
	}

	return results[source].numColors, Broadcast(results[source].coloring), completed
}
