package schedule

import (
	"fmt"
	"sync"

	"github.com/vlathgraph/chromatic/graphstate"
	"github.com/vlathgraph/chromatic/runctx"
	"github.com/vlathgraph/chromatic/search"
)

// Regime1 handles multi-component input: components are assigned to
// workers round-robin by index (worker r owns component i when
// i mod W == r), each worker runs B&B on its own components
// sequentially, and the results are combined by element-wise max
// (colorings) and scalar max (color counts) — the chromatic number of
// a disjoint union is the maximum over its components.
func Regime1(ctx *runctx.Context, root *graphstate.Graph, components [][]int) (numColors int, coloring []int, completed bool) {
	w := workerCount(ctx.Workers)

	results := make([]regime1WorkerResult, w)

	var wg sync.WaitGroup
	for r := 0; r < w; r++ {
		r := r
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[r] = runComponentsOwnedBy(ctx, root, components, r, w)
		}()
	}
	wg.Wait()

	bestColorsList := make([]int, w)
	vectors := make([][]int, w)
	completed = true
	for r, res := range results {
		bestColorsList[r] = res.bestColors
		vectors[r] = res.coloring
		if !res.completed {
			completed = false
		}
	}

	numColors = MaxReduceInt(bestColorsList)
	coloring = MaxReduceIntVector(vectors)
	return numColors, coloring, completed
}

type regime1WorkerResult struct {
	bestColors int
	coloring   []int
	completed  bool
}

func runComponentsOwnedBy(ctx *runctx.Context, root *graphstate.Graph, components [][]int, rank, workers int) regime1WorkerResult {
	localColoring := make([]int, root.OrigN)
	for i := range localColoring {
		localColoring[i] = -1
	}

	pool := newWorkerPool(ctx)
	result := regime1WorkerResult{coloring: localColoring, completed: true}
	for i := rank; i < len(components); i += workers {
		sub, err := root.ExtractSubgraph(components[i])
		if err != nil {
			panic(fmt.Sprintf("schedule: ExtractSubgraph for component %d: %v", i, err))
		}

		subCtx := newSubContext(ctx, runctx.NewBest(root.OrigN), pool)
		search.Run(subCtx, sub, 0)

		n, col := subCtx.Best.Snapshot()
		for v, c := range col {
			if c != -1 {
				localColoring[v] = c
			}
		}
		if n > result.bestColors {
			result.bestColors = n
		}
		if !subCtx.Completed.Load() {
			result.completed = false
		}
	}
	return result
}
