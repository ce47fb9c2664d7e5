// Package branch selects the vertex pair the search branches on: a
// non-adjacent pair maximizing the sum of current-graph degrees, tied
// broken lexicographically. This is the only decision the search makes
// about where to split the tree; everything else follows from it.
package branch
