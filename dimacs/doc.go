// Package dimacs is the I/O shell: it reads DIMACS .col graph files
// and writes the solver's result file. Neither function participates
// in the search itself.
package dimacs
