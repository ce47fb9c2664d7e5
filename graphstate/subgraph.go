package graphstate

import "sort"

// ExtractSubgraph returns a snapshot whose vertex set is exactly the
// given ordered list of current-vertex indices of g, with adjacency
// restricted to the induced subgraph. Mapping[k] inherits g's mapping
// for vertices[k]; OrigN is inherited unchanged, so a coloring of the
// returned subgraph can be written directly into an original-vertex
// coloring vector at the positions named by Mapping.
func (g *Graph) ExtractSubgraph(vertices []int) (*Graph, error) {
	for _, v := range vertices {
		if v < 0 || v >= g.N {
			return nil, ErrVertexOutOfRange
		}
	}

	n := len(vertices)
	out := &Graph{
		N:       n,
		OrigN:   g.OrigN,
		Adj:     make([]map[int]struct{}, n),
		Mapping: make([][]int, n),
	}
	for k, v := range vertices {
		out.Mapping[k] = append([]int(nil), g.Mapping[v]...)
		out.Adj[k] = make(map[int]struct{})
	}
	for a := 0; a < n; a++ {
		for b := a + 1; b < n; b++ {
			if g.HasEdge(vertices[a], vertices[b]) {
				out.Adj[a][b] = struct{}{}
				out.Adj[b][a] = struct{}{}
			}
		}
	}

	return out, nil
}

// FindConnectedComponents returns the connected components of g as
// lists of current-vertex indices, in BFS discovery order within each
// component, and in first-unvisited-vertex order across components.
func (g *Graph) FindConnectedComponents() [][]int {
	visited := make([]bool, g.N)
	var components [][]int

	for start := 0; start < g.N; start++ {
		if visited[start] {
			continue
		}
		queue := []int{start}
		visited[start] = true
		comp := make([]int, 0)

		for head := 0; head < len(queue); head++ {
			v := queue[head]
			comp = append(comp, v)
			neighbors := make([]int, 0, len(g.Adj[v]))
			for w := range g.Adj[v] {
				neighbors = append(neighbors, w)
			}
			sort.Ints(neighbors)
			for _, w := range neighbors {
				if !visited[w] {
					visited[w] = true
					queue = append(queue, w)
				}
			}
		}
		components = append(components, comp)
	}

	return components
}
