package bound

import "github.com/vlathgraph/chromatic/graphstate"

// DSATURResult holds a DSATUR coloring: NumColors is 1+max(color), and
// Coloring[v] is the assigned color for current-vertex v, for v in
// [0, g.N).
type DSATURResult struct {
	NumColors int
	Coloring  []int
}

// DSATUR computes a proper coloring of g by the degree-of-saturation
// greedy heuristic, furnishing an upper bound on chi(g).
//
// At each step the uncolored vertex with the largest saturation (number
// of distinct colors already present in its neighborhood) is selected;
// ties are broken by current-graph degree, then by smallest index. The
// chosen vertex receives the smallest color id not used by any colored
// neighbor. This tie-break policy is part of the contract — callers
// (and tests) depend on it for a deterministic result.
//
// Complexity: O(n²) per coloring pass (n ≤ a few hundred at the scales
// this search explores).
func DSATUR(g *graphstate.Graph) DSATURResult {
	n := g.N
	color := make([]int, n)
	for i := range color {
		color[i] = -1
	}
	saturation := make([]int, n)
	degree := make([]int, n)
	for v := 0; v < n; v++ {
		degree[v] = g.Degree(v)
	}

	pickNext := func() int {
		best, bestSat, bestDeg := -1, -1, -1
		for v := 0; v < n; v++ {
			if color[v] != -1 {
				continue
			}
			if saturation[v] > bestSat || (saturation[v] == bestSat && degree[v] > bestDeg) {
				best, bestSat, bestDeg = v, saturation[v], degree[v]
			}
		}
		return best
	}

	for step := 0; step < n; step++ {
		v := pickNext()
		if v == -1 {
			break
		}
		used := make(map[int]bool)
		for w := range g.Adj[v] {
			if color[w] != -1 {
				used[color[w]] = true
			}
		}
		c := 0
		for used[c] {
			c++
		}
		color[v] = c

		for w := range g.Adj[v] {
			if color[w] != -1 {
				continue
			}
			seesC := false
			for x := range g.Adj[w] {
				if x != v && color[x] == c {
					seesC = true
					break
				}
			}
			if !seesC {
				saturation[w]++
			}
		}
	}

	usedColors := 0
	for v := 0; v < n; v++ {
		if color[v]+1 > usedColors {
			usedColors = color[v] + 1
		}
	}

	return DSATURResult{NumColors: usedColors, Coloring: color}
}
