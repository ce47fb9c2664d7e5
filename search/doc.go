// Package search implements the Zykov branch-and-bound recursion:
// given a graph snapshot, compute DSATUR/Bron–Kerbosch bounds, update
// the shared incumbent, prune, and branch. The two children of a
// branch may run as independent cooperative tasks when the snapshot
// is large enough and the recursion is shallow enough, per the
// thresholds carried on runctx.Context.
package search
