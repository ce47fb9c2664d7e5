package dimacs

import "errors"

// Sentinel errors for DIMACS .col parsing.
var (
	// ErrMissingProblemLine indicates a file had no "p" header line.
	ErrMissingProblemLine = errors.New("dimacs: missing problem (p) line")

	// ErrMalformedProblemLine indicates a "p" line did not have the
	// expected "p <name> n m" shape.
	ErrMalformedProblemLine = errors.New("dimacs: malformed problem line")

	// ErrMalformedEdgeLine indicates an "e" line did not have the
	// expected "e u v" shape.
	ErrMalformedEdgeLine = errors.New("dimacs: malformed edge line")
)
