// Package bound computes the two pure bound heuristics the search uses
// at every branch-and-bound node: DSATUR (an upper bound, with a
// witnessing proper coloring) and Bron–Kerbosch with pivoting (a lower
// bound, with a witnessing clique). Both are pure functions of a
// graphstate.Graph snapshot — no shared state, no time budget, safe to
// call concurrently on independent snapshots.
package bound
