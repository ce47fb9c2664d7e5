// Package schedule implements the two-level parallel scheduler: a
// distributed worker layer (one goroutine per simulated rank,
// coordinated only through the collectives in collectives.go) wrapping
// a shared-memory task layer (search.Run's own errgroup-based fan-out).
// Regime1 handles multi-component input; Regime2 handles a single
// component via pre-search decomposition.
package schedule
