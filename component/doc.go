// Package component is the top-level driver: it takes a parsed graph
// and a run context, computes connected components, selects Regime1
// or Regime2 accordingly, and returns the final (numColors, coloring,
// completed) tuple the I/O shell writes out.
package component
