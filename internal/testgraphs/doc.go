// Package testgraphs builds the synthetic fixtures used across the
// solver's test suites: complete graphs, cycles, wheels, complete
// bipartite graphs, the Petersen graph, and seeded random G(n,p)
// graphs. Each constructor builds directly against graphstate.Graph;
// all but Edgeless (which calls graphstate.New) go through
// graphstate.FromEdgeList, the same ingestion path the DIMACS reader
// uses.
package testgraphs
