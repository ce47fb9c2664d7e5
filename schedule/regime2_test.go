package schedule_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/vlathgraph/chromatic/graphstate"
	"github.com/vlathgraph/chromatic/runctx"
	"github.com/vlathgraph/chromatic/schedule"
)

func TestRegime2_PetersenGraph(t *testing.T) {
	edges := [][2]int{
		{0, 1}, {1, 2}, {2, 3}, {3, 4}, {4, 0},
		{0, 5}, {1, 6}, {2, 7}, {3, 8}, {4, 9},
		{5, 7}, {7, 9}, {9, 6}, {6, 8}, {8, 5},
	}
	g, err := graphstate.FromEdgeList(10, edges)
	require.NoError(t, err)

	ctx := runctx.New(10,
		runctx.WithTimeLimit(10*time.Second),
		runctx.WithWorkers(3),
		runctx.WithDecompDepth(2),
	)
	numColors, coloring, completed := schedule.Regime2(ctx, g)

	require.True(t, completed)
	require.Equal(t, 3, numColors)
	for _, e := range edges {
		require.NotEqual(t, coloring[e[0]], coloring[e[1]])
	}
}

func TestRegime2_SingleWorker(t *testing.T) {
	g, err := graphstate.FromEdgeList(4, [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 0}})
	require.NoError(t, err)

	ctx := runctx.New(4, runctx.WithTimeLimit(5*time.Second), runctx.WithWorkers(1))
	numColors, _, completed := schedule.Regime2(ctx, g)

	require.True(t, completed)
	require.Equal(t, 2, numColors)
}

func TestRegime2_TriangleWithManyWorkers(t *testing.T) {
	g, err := graphstate.FromEdgeList(3, [][2]int{{0, 1}, {1, 2}, {0, 2}})
	require.NoError(t, err)

	ctx := runctx.New(3, runctx.WithTimeLimit(5*time.Second), runctx.WithWorkers(6))
	numColors, coloring, completed := schedule.Regime2(ctx, g)

	require.True(t, completed)
	require.Equal(t, 3, numColors)
	require.NotEqual(t, coloring[0], coloring[1])
	require.NotEqual(t, coloring[1], coloring[2])
	require.NotEqual(t, coloring[0], coloring[2])
}
