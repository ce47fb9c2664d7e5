// Package graphstate defines the immutable graph snapshot that the
// Zykov branch-and-bound search branches over, together with the
// operators that derive new snapshots from it: MergeVertices (the
// "same color" branch), AddEdge (the "different color" branch),
// ExtractSubgraph (component isolation), and FindConnectedComponents.
//
// A snapshot never changes after construction. Every operator returns
// a fresh *Graph and leaves its receiver untouched, so a parent stays
// valid while both of its children are explored — including
// concurrently, by separate goroutines.
package graphstate
