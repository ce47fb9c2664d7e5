package graphstate

// MergeVertices implements the Zykov "same color" branch: it returns a
// new snapshot of size N-1 in which i and j are identified as a single
// vertex. i and j must be distinct, in range, and non-adjacent — Zykov
// merging is only legal between vertices that could share a color.
//
// The merged vertex keeps index i's slot in the surviving ordering;
// every other vertex above j shifts down by one. Its neighborhood is
// the union of i's and j's neighborhoods, and its Mapping is i's
// mapping entries followed by j's (i's first, then j's — callers that
// rely on mapping order, e.g. golden tests, depend on this).
//
// Complexity: O(n²), acceptable for the current-vertex counts (≲500)
// this search operates on.
func (g *Graph) MergeVertices(i, j int) (*Graph, error) {
	if i == j {
		return nil, ErrSameVertex
	}
	if i < 0 || i >= g.N || j < 0 || j >= g.N {
		return nil, ErrVertexOutOfRange
	}
	if g.HasEdge(i, j) {
		return nil, ErrAdjacentMerge
	}

	newN := g.N - 1
	// newIndices[a] is the old index that survives at new slot a.
	newIndices := make([]int, 0, newN)
	for k := 0; k < g.N; k++ {
		if k == j {
			continue
		}
		newIndices = append(newIndices, k)
	}

	out := &Graph{
		N:       newN,
		OrigN:   g.OrigN,
		Adj:     make([]map[int]struct{}, newN),
		Mapping: make([][]int, newN),
	}

	// oldToNew maps a surviving old index to its new slot.
	oldToNew := make(map[int]int, newN)
	for a, old := range newIndices {
		oldToNew[old] = a
	}

	for a, old := range newIndices {
		if old == i {
			merged := make([]int, 0, len(g.Mapping[i])+len(g.Mapping[j]))
			merged = append(merged, g.Mapping[i]...)
			merged = append(merged, g.Mapping[j]...)
			out.Mapping[a] = merged
		} else {
			out.Mapping[a] = append([]int(nil), g.Mapping[old]...)
		}
		out.Adj[a] = make(map[int]struct{})
	}

	for a := 0; a < newN; a++ {
		for b := a + 1; b < newN; b++ {
			oldA, oldB := newIndices[a], newIndices[b]
			connected := false
			switch {
			case oldA == i:
				connected = g.HasEdge(i, oldB) || g.HasEdge(j, oldB)
			case oldB == i:
				connected = g.HasEdge(oldA, i) || g.HasEdge(oldA, j)
			default:
				connected = g.HasEdge(oldA, oldB)
			}
			if connected {
				out.Adj[a][b] = struct{}{}
				out.Adj[b][a] = struct{}{}
			}
		}
	}

	return out, nil
}

// AddEdge implements the Zykov "different color" branch: it returns a
// fresh snapshot identical to g except that i and j are adjacent. It is
// a no-op on the edge set if the edge already existed, but a new
// snapshot is still returned (the contract every operator shares: the
// receiver is never mutated).
func (g *Graph) AddEdge(i, j int) (*Graph, error) {
	if i == j {
		return nil, ErrSameVertex
	}
	if i < 0 || i >= g.N || j < 0 || j >= g.N {
		return nil, ErrVertexOutOfRange
	}

	out := &Graph{
		N:       g.N,
		OrigN:   g.OrigN,
		Adj:     make([]map[int]struct{}, g.N),
		Mapping: make([][]int, g.N),
	}
	for k := 0; k < g.N; k++ {
		out.Adj[k] = make(map[int]struct{}, len(g.Adj[k])+1)
		for nb := range g.Adj[k] {
			out.Adj[k][nb] = struct{}{}
		}
		out.Mapping[k] = append([]int(nil), g.Mapping[k]...)
	}
	out.Adj[i][j] = struct{}{}
	out.Adj[j][i] = struct{}{}

	return out, nil
}
