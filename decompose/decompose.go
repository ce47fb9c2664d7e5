package decompose

import (
	"fmt"

	"github.com/vlathgraph/chromatic/bound"
	"github.com/vlathgraph/chromatic/branch"
	"github.com/vlathgraph/chromatic/graphstate"
	"github.com/vlathgraph/chromatic/runctx"
)

// Expand explores the branch-and-bound tree rooted at g top-down to
// maxDepth, applying the same lb==ub and lb>=U pruning tests the
// search itself would, and returns the surviving snapshots as an
// independent task list. As in the search, each node's DSATUR coloring
// is offered to best before the tests run. U is read from best once per
// node, matching the "read once under the lock" discipline the search
// engine uses for the same comparison.
//
// A branch resolved by lb==ub is not collected — that subtree's
// answer is already recorded in best and needs no further work. If
// every branch resolves this way (or is pruned by lb>=U), Expand
// returns a one-element slice holding the root itself, so callers
// always receive at least one task.
//
// Traversal order is merge-child first, then addEdge-child,
// deterministic.
func Expand(best *runctx.Best, g *graphstate.Graph, maxDepth int) []*graphstate.Graph {
	var tasks []*graphstate.Graph

	var walk func(node *graphstate.Graph, depth int)
	walk = func(node *graphstate.Graph, depth int) {
		ub := bound.DSATUR(node)
		lb := bound.MaxClique(node)
		best.TryUpdate(ub.NumColors, node.Mapping, ub.Coloring)

		if lb.Size == ub.NumColors {
			return
		}
		if lb.Size >= best.NumColors() {
			return
		}
		if depth >= maxDepth {
			tasks = append(tasks, node)
			return
		}

		v1, v2 := branch.Select(node)
		if v1 == -1 {
			tasks = append(tasks, node)
			return
		}

		walk(mustMerge(node, v1, v2), depth+1)
		walk(mustAddEdge(node, v1, v2), depth+1)
	}
	walk(g, 0)

	if len(tasks) == 0 {
		tasks = []*graphstate.Graph{g}
	}
	return tasks
}

func mustMerge(g *graphstate.Graph, v1, v2 int) *graphstate.Graph {
	child, err := g.MergeVertices(v1, v2)
	if err != nil {
		panic(fmt.Sprintf("decompose: MergeVertices(%d,%d): %v", v1, v2, err))
	}
	return child
}

func mustAddEdge(g *graphstate.Graph, v1, v2 int) *graphstate.Graph {
	child, err := g.AddEdge(v1, v2)
	if err != nil {
		panic(fmt.Sprintf("decompose: AddEdge(%d,%d): %v", v1, v2, err))
	}
	return child
}
