package branch

import "github.com/vlathgraph/chromatic/graphstate"

// Select returns a non-adjacent pair (v1, v2), v1 < v2, maximizing the
// sum of their current-graph degrees, breaking ties by the
// lexicographically smallest pair. If g is a clique (no non-adjacent
// pair exists), it returns the sentinel (-1, -1).
//
// Complexity: O(n²).
func Select(g *graphstate.Graph) (int, int) {
	degree := make([]int, g.N)
	for i := 0; i < g.N; i++ {
		degree[i] = g.Degree(i)
	}

	v1, v2, bestScore := -1, -1, -1
	for i := 0; i < g.N; i++ {
		for j := i + 1; j < g.N; j++ {
			if g.HasEdge(i, j) {
				continue
			}
			score := degree[i] + degree[j]
			if score > bestScore {
				bestScore, v1, v2 = score, i, j
			}
		}
	}

	return v1, v2
}
