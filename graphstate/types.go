package graphstate

import "errors"

// Sentinel errors for graphstate operations.
var (
	// ErrVertexOutOfRange indicates an operator was given a vertex index
	// outside [0, N).
	ErrVertexOutOfRange = errors.New("graphstate: vertex index out of range")

	// ErrSameVertex indicates an operator received i==j where two
	// distinct vertices were required.
	ErrSameVertex = errors.New("graphstate: i and j must be distinct")

	// ErrAdjacentMerge indicates MergeVertices was called on an adjacent
	// pair; Zykov merging is only legal between non-adjacent vertices.
	ErrAdjacentMerge = errors.New("graphstate: cannot merge adjacent vertices")

	// ErrNegativeOrigN indicates a negative original vertex count was
	// supplied to a constructor.
	ErrNegativeOrigN = errors.New("graphstate: orig_n must be non-negative")

	// ErrEdgeOutOfRange indicates an edge endpoint in an edge list falls
	// outside [0, origN).
	ErrEdgeOutOfRange = errors.New("graphstate: edge endpoint out of range")

	// ErrSelfLoop indicates an edge list contained a self-loop, which is
	// not a legal simple-graph edge.
	ErrSelfLoop = errors.New("graphstate: self-loop is not allowed")
)

// Graph is an immutable sparse graph snapshot.
//
// N is the current vertex count (after zero or more Zykov merges). OrigN
// is the vertex count of the original input graph and is constant across
// every snapshot derived from the same root. Adj[i] holds the set of
// current-vertex neighbors of vertex i; it is symmetric and irreflexive.
// Mapping[i] is the non-empty, ordered list of original vertex ids that
// have been merged into current vertex i; the Mapping slices partition
// [0, OrigN).
type Graph struct {
	N       int
	OrigN   int
	Adj     []map[int]struct{}
	Mapping [][]int
}

// Degree returns the current-graph degree of vertex v.
func (g *Graph) Degree(v int) int {
	return len(g.Adj[v])
}

// HasEdge reports whether i and j are adjacent in the current snapshot.
func (g *Graph) HasEdge(i, j int) bool {
	_, ok := g.Adj[i][j]
	return ok
}

// New builds an edgeless snapshot on n vertices, each mapped to itself.
// This is the identity root onto which FromEdgeList writes a full input
// graph's edges, and the edgeless fixture used directly by tests.
func New(n int) *Graph {
	g := &Graph{
		N:       n,
		OrigN:   n,
		Adj:     make([]map[int]struct{}, n),
		Mapping: make([][]int, n),
	}
	for i := 0; i < n; i++ {
		g.Adj[i] = make(map[int]struct{})
		g.Mapping[i] = []int{i}
	}
	return g
}

// FromEdgeList builds a snapshot on origN vertices with the given
// 0-indexed edges. Duplicate edges are absorbed by set semantics;
// self-loops are rejected. Both the DIMACS reader and the synthetic
// test fixtures build graphs by calling through here.
func FromEdgeList(origN int, edges [][2]int) (*Graph, error) {
	if origN < 0 {
		return nil, ErrNegativeOrigN
	}
	g := New(origN)
	for _, e := range edges {
		u, v := e[0], e[1]
		if u < 0 || u >= origN || v < 0 || v >= origN {
			return nil, ErrEdgeOutOfRange
		}
		if u == v {
			return nil, ErrSelfLoop
		}
		g.Adj[u][v] = struct{}{}
		g.Adj[v][u] = struct{}{}
	}
	return g, nil
}

// EdgeCount returns the number of undirected edges in the current
// snapshot.
func (g *Graph) EdgeCount() int {
	total := 0
	for i := 0; i < g.N; i++ {
		total += len(g.Adj[i])
	}
	return total / 2
}

// MaxDegree returns the maximum current-graph degree, or 0 for the
// empty graph.
func (g *Graph) MaxDegree() int {
	max := 0
	for i := 0; i < g.N; i++ {
		if d := g.Degree(i); d > max {
			max = d
		}
	}
	return max
}
