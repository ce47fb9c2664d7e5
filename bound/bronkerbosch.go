package bound

import "github.com/vlathgraph/chromatic/graphstate"

// CliqueResult holds a maximum-clique witness: Size is its cardinality
// and Vertices its members (current-vertex indices, in the order they
// were added to the recursion's running clique).
type CliqueResult struct {
	Size     int
	Vertices []int
}

// MaxClique computes a maximum clique of g via Bron–Kerbosch with
// pivoting, furnishing a lower bound on chi(g): no proper coloring can
// use fewer colors than the size of any clique.
//
// At each recursive call with candidate set P and exclusion set X, a
// pivot u ∈ P ∪ X maximizing |P ∩ N(u)| is chosen (ties broken by
// smallest index); the call iterates over P \ N(u), recursing with each
// candidate added to the running clique. No time budget governs this
// recursion — the graphs this runs on, deep in the search tree, are
// small enough that full enumeration is acceptable.
func MaxClique(g *graphstate.Graph) CliqueResult {
	p := make([]int, g.N)
	for i := range p {
		p[i] = i
	}
	var x []int
	var r []int
	best := CliqueResult{}

	bronKerbosch(g, r, p, x, &best)

	return best
}

func bronKerbosch(g *graphstate.Graph, r, p, x []int, best *CliqueResult) {
	if len(p) == 0 && len(x) == 0 {
		if len(r) > best.Size {
			best.Size = len(r)
			best.Vertices = append([]int(nil), r...)
		}
		return
	}

	pivot, maxCount := -1, -1
	union := append(append([]int(nil), p...), x...)
	for _, u := range union {
		count := 0
		for _, w := range p {
			if g.HasEdge(u, w) {
				count++
			}
		}
		if count > maxCount || (count == maxCount && u < pivot) {
			maxCount, pivot = count, u
		}
	}

	var pWithoutPivot []int
	for _, v := range p {
		if !g.HasEdge(pivot, v) {
			pWithoutPivot = append(pWithoutPivot, v)
		}
	}

	for _, v := range pWithoutPivot {
		r = append(r, v)

		var newP, newX []int
		for _, w := range p {
			if g.HasEdge(v, w) {
				newP = append(newP, w)
			}
		}
		for _, w := range x {
			if g.HasEdge(v, w) {
				newX = append(newX, w)
			}
		}

		bronKerbosch(g, r, newP, newX, best)

		r = r[:len(r)-1]
		p = removeValue(p, v)
		x = append(x, v)

		if len(p) == 0 {
			break
		}
	}
}

func removeValue(s []int, v int) []int {
	out := s[:0]
	for _, x := range s {
		if x != v {
			out = append(out, x)
		}
	}
	return out
}
