package component

import (
	"github.com/vlathgraph/chromatic/graphstate"
	"github.com/vlathgraph/chromatic/runctx"
	"github.com/vlathgraph/chromatic/schedule"
)

// Result is the final tuple the I/O shell writes out: the chromatic
// number found, a proper coloring indexed by original-graph vertex
// id, and whether the search proved optimality before the deadline.
type Result struct {
	NumColors int
	Coloring  []int
	Completed bool
}

// Solve runs the full pipeline on g under ctx: it partitions g into
// connected components and dispatches to Regime1 when there is more
// than one, or Regime2 for a single component. A graph with
// g.OrigN == 0 returns at once with zero colors, a nil coloring and
// Completed set. An edgeless graph on two or more vertices has every
// vertex as its own component and so takes the Regime1 path, one
// color per component.
func Solve(ctx *runctx.Context, g *graphstate.Graph) Result {
	if g.OrigN == 0 {
		return Result{NumColors: 0, Coloring: nil, Completed: true}
	}

	components := g.FindConnectedComponents()

	var numColors int
	var coloring []int
	var completed bool

	if len(components) > 1 {
		numColors, coloring, completed = schedule.Regime1(ctx, g, components)
	} else {
		numColors, coloring, completed = schedule.Regime2(ctx, g)
	}

	return Result{NumColors: numColors, Coloring: coloring, Completed: completed}
}
