package testgraphs

import (
	"math/rand"

	"github.com/vlathgraph/chromatic/graphstate"
)

// Complete builds the complete graph K_n: n >= 1, every pair of
// distinct vertices adjacent.
func Complete(n int) *graphstate.Graph {
	var edges [][2]int
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			edges = append(edges, [2]int{i, j})
		}
	}
	g, err := graphstate.FromEdgeList(n, edges)
	if err != nil {
		panic(err)
	}
	return g
}

// Cycle builds the n-vertex simple cycle C_n: n >= 3, edges
// i -- (i+1)%n for i in [0,n).
func Cycle(n int) *graphstate.Graph {
	edges := make([][2]int, n)
	for i := 0; i < n; i++ {
		edges[i] = [2]int{i, (i + 1) % n}
	}
	g, err := graphstate.FromEdgeList(n, edges)
	if err != nil {
		panic(err)
	}
	return g
}

// Wheel builds W_n = C_(n-1) plus a hub vertex n-1 connected to every
// rim vertex: n >= 4.
func Wheel(n int) *graphstate.Graph {
	rim := n - 1
	hub := n - 1
	var edges [][2]int
	for i := 0; i < rim; i++ {
		edges = append(edges, [2]int{i, (i + 1) % rim})
		edges = append(edges, [2]int{hub, i})
	}
	g, err := graphstate.FromEdgeList(n, edges)
	if err != nil {
		panic(err)
	}
	return g
}

// CompleteBipartite builds K_{n1,n2}: the left partition is vertices
// [0,n1), the right partition [n1,n1+n2), every cross pair adjacent.
func CompleteBipartite(n1, n2 int) *graphstate.Graph {
	var edges [][2]int
	for i := 0; i < n1; i++ {
		for j := 0; j < n2; j++ {
			edges = append(edges, [2]int{i, n1 + j})
		}
	}
	g, err := graphstate.FromEdgeList(n1+n2, edges)
	if err != nil {
		panic(err)
	}
	return g
}

// Edgeless builds an n-vertex graph with no edges.
func Edgeless(n int) *graphstate.Graph {
	return graphstate.New(n)
}

// Petersen builds the standard Petersen graph: an outer 5-cycle, an
// inner 5-cycle connecting every second vertex (the pentagram), and
// five spokes joining corresponding outer/inner vertices.
func Petersen() *graphstate.Graph {
	var edges [][2]int
	for i := 0; i < 5; i++ {
		edges = append(edges, [2]int{i, (i + 1) % 5})          // outer rim
		edges = append(edges, [2]int{5 + i, 5 + (i+2)%5})      // inner pentagram
		edges = append(edges, [2]int{i, 5 + i})                // spoke
	}
	g, err := graphstate.FromEdgeList(10, edges)
	if err != nil {
		panic(err)
	}
	return g
}

// RandomGNP builds a G(n,p) Erdős–Rényi graph: each unordered pair
// {i,j}, i<j, is an edge independently with probability p. seed makes
// the draw reproducible.
func RandomGNP(n int, p float64, seed int64) *graphstate.Graph {
	rng := rand.New(rand.NewSource(seed))
	var edges [][2]int
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if rng.Float64() <= p {
				edges = append(edges, [2]int{i, j})
			}
		}
	}
	g, err := graphstate.FromEdgeList(n, edges)
	if err != nil {
		panic(err)
	}
	return g
}
