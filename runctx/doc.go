// Package runctx carries the state that would otherwise be file-scope
// globals through the search: the wall-clock deadline, the completed
// flag, the shared best-so-far coloring, the task-spawn thresholds, and
// the log sink. One Context is built per solver invocation and threaded
// explicitly into every component that needs it, instead of living as
// package-level mutable state.
package runctx
