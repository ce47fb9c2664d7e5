// Package decompose performs the pre-search static task
// decomposition: it expands the branch-and-bound tree top-down to a
// fixed depth, pruning subtrees the same way the search itself would,
// and collects the surviving snapshots as an independent task list
// for the scheduler to distribute across workers.
package decompose
