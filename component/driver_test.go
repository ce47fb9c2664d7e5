package component_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/vlathgraph/chromatic/component"
	"github.com/vlathgraph/chromatic/graphstate"
	"github.com/vlathgraph/chromatic/internal/testgraphs"
	"github.com/vlathgraph/chromatic/runctx"
)

func assertValidResult(t *testing.T, g *graphstate.Graph, res component.Result) {
	t.Helper()
	require.Equal(t, res.NumColors, 1+maxInt(res.Coloring))
	for i := 0; i < g.OrigN; i++ {
		for j := i + 1; j < g.OrigN; j++ {
			if g.HasEdge(i, j) {
				require.NotEqual(t, res.Coloring[i], res.Coloring[j], "edge (%d,%d) shares a color", i, j)
			}
		}
	}
}

func maxInt(xs []int) int {
	m := -1
	for _, x := range xs {
		if x > m {
			m = x
		}
	}
	return m
}

func solve(t *testing.T, g *graphstate.Graph, opts ...runctx.Option) component.Result {
	t.Helper()
	ctx := runctx.New(g.OrigN, append([]runctx.Option{runctx.WithTimeLimit(10 * time.Second)}, opts...)...)
	res := component.Solve(ctx, g)
	assertValidResult(t, g, res)
	return res
}

func TestSolve_Triangle(t *testing.T) {
	g, err := graphstate.FromEdgeList(3, [][2]int{{0, 1}, {1, 2}, {0, 2}})
	require.NoError(t, err)
	res := solve(t, g)
	require.True(t, res.Completed)
	require.Equal(t, 3, res.NumColors)
}

func TestSolve_FourCycle(t *testing.T) {
	g, err := graphstate.FromEdgeList(4, [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 0}})
	require.NoError(t, err)
	res := solve(t, g)
	require.True(t, res.Completed)
	require.Equal(t, 2, res.NumColors)
}

func TestSolve_FiveCycle(t *testing.T) {
	g, err := graphstate.FromEdgeList(5, [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 4}, {4, 0}})
	require.NoError(t, err)
	res := solve(t, g)
	require.True(t, res.Completed)
	require.Equal(t, 3, res.NumColors)
}

func TestSolve_Petersen(t *testing.T) {
	g := testgraphs.Petersen()
	res := solve(t, g)
	require.True(t, res.Completed)
	require.Equal(t, 3, res.NumColors)
}

func TestSolve_TwoDisjointTriangles(t *testing.T) {
	g, err := graphstate.FromEdgeList(6, [][2]int{
		{0, 1}, {1, 2}, {0, 2},
		{3, 4}, {4, 5}, {3, 5},
	})
	require.NoError(t, err)
	res := solve(t, g)
	require.True(t, res.Completed)
	require.Equal(t, 3, res.NumColors)
}

func TestSolve_EdgelessFiveVertices(t *testing.T) {
	g := testgraphs.Edgeless(5)
	res := solve(t, g)
	require.True(t, res.Completed)
	require.Equal(t, 1, res.NumColors)
}

func TestSolve_EmptyGraph(t *testing.T) {
	g := graphstate.New(0)
	ctx := runctx.New(0, runctx.WithTimeLimit(time.Second))
	res := component.Solve(ctx, g)
	require.True(t, res.Completed)
	require.Equal(t, 0, res.NumColors)
	require.Nil(t, res.Coloring)
}

// bruteForceChromaticNumber tries k=1..n and backtracks a proper
// k-coloring; only used by property tests on small graphs.
func bruteForceChromaticNumber(g *graphstate.Graph) int {
	n := g.OrigN
	for k := 1; k <= n; k++ {
		coloring := make([]int, n)
		for i := range coloring {
			coloring[i] = -1
		}
		if backtrackColor(g, coloring, 0, k) {
			return k
		}
	}
	return n
}

func backtrackColor(g *graphstate.Graph, coloring []int, v, k int) bool {
	if v == len(coloring) {
		return true
	}
	for c := 0; c < k; c++ {
		ok := true
		for u := 0; u < v; u++ {
			if coloring[u] == c && g.HasEdge(u, v) {
				ok = false
				break
			}
		}
		if ok {
			coloring[v] = c
			if backtrackColor(g, coloring, v+1, k) {
				return true
			}
			coloring[v] = -1
		}
	}
	return false
}

func TestSolve_MatchesBruteForceOnSmallRandomGraphs(t *testing.T) {
	for seed := int64(1); seed <= 8; seed++ {
		g := testgraphs.RandomGNP(9, 0.35, seed)
		want := bruteForceChromaticNumber(g)

		res := solve(t, g)
		require.True(t, res.Completed)
		require.Equal(t, want, res.NumColors, "seed=%d", seed)
	}
}

func TestSolve_ParallelResultMatchesSerialResult(t *testing.T) {
	g := testgraphs.RandomGNP(10, 0.3, 42)

	serial := solve(t, g, runctx.WithWorkers(1), runctx.WithThreads(1))
	parallel := solve(t, g, runctx.WithWorkers(4), runctx.WithThreads(4), runctx.WithMinVerticesForTask(1))

	require.Equal(t, serial.NumColors, parallel.NumColors)
}

func TestSolve_IsomorphismInvarianceOfChi(t *testing.T) {
	g := testgraphs.Petersen()
	relabel := []int{9, 8, 7, 6, 5, 4, 3, 2, 1, 0}
	var relabeledEdges [][2]int
	for u := 0; u < g.N; u++ {
		for v := u + 1; v < g.N; v++ {
			if g.HasEdge(u, v) {
				relabeledEdges = append(relabeledEdges, [2]int{relabel[u], relabel[v]})
			}
		}
	}
	relabeled, err := graphstate.FromEdgeList(10, relabeledEdges)
	require.NoError(t, err)

	original := solve(t, g)
	mirrored := solve(t, relabeled)
	require.Equal(t, original.NumColors, mirrored.NumColors)
}

func TestSolve_ComponentAdditivity(t *testing.T) {
	k3 := testgraphs.Complete(3)
	c4 := testgraphs.Cycle(4)

	var edges [][2]int
	for u := 0; u < k3.N; u++ {
		for v := u + 1; v < k3.N; v++ {
			if k3.HasEdge(u, v) {
				edges = append(edges, [2]int{u, v})
			}
		}
	}
	for u := 0; u < c4.N; u++ {
		for v := u + 1; v < c4.N; v++ {
			if c4.HasEdge(u, v) {
				edges = append(edges, [2]int{u + 3, v + 3})
			}
		}
	}
	union, err := graphstate.FromEdgeList(7, edges)
	require.NoError(t, err)

	res := solve(t, union)
	require.Equal(t, 3, res.NumColors) // max(chi(K3)=3, chi(C4)=2) = 3
}

func TestSolve_SubgraphMonotonicity(t *testing.T) {
	g := testgraphs.Complete(5)
	sub, err := g.ExtractSubgraph([]int{0, 1, 2})
	require.NoError(t, err)

	full := solve(t, g)

	ctx := runctx.New(sub.OrigN, runctx.WithTimeLimit(5*time.Second))
	subRes := component.Solve(ctx, sub)
	require.LessOrEqual(t, subRes.NumColors, full.NumColors)
}
