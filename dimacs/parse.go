package dimacs

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/vlathgraph/chromatic/graphstate"
)

// Parse reads a DIMACS .col file from r: "c" lines are comments,
// "p <name> n m" declares the vertex count n (m is informational and
// not otherwise checked), and "e u v" lines are 1-indexed undirected
// edges, converted to the 0-indexed graphstate.Graph convention.
// Duplicate edges are absorbed by graphstate.FromEdgeList's set
// semantics; self-loops and out-of-range endpoints are rejected.
func Parse(r io.Reader) (*graphstate.Graph, error) {
	scanner := bufio.NewScanner(r)

	n := -1
	var edges [][2]int

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || line[0] == 'c' {
			continue
		}

		fields := strings.Fields(line)
		switch fields[0] {
		case "p":
			if len(fields) < 4 {
				return nil, ErrMalformedProblemLine
			}
			parsed, err := strconv.Atoi(fields[2])
			if err != nil {
				return nil, fmt.Errorf("%w: %v", ErrMalformedProblemLine, err)
			}
			n = parsed
		case "e":
			if len(fields) < 3 {
				return nil, ErrMalformedEdgeLine
			}
			u, err := strconv.Atoi(fields[1])
			if err != nil {
				return nil, fmt.Errorf("%w: %v", ErrMalformedEdgeLine, err)
			}
			v, err := strconv.Atoi(fields[2])
			if err != nil {
				return nil, fmt.Errorf("%w: %v", ErrMalformedEdgeLine, err)
			}
			edges = append(edges, [2]int{u - 1, v - 1})
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if n < 0 {
		return nil, ErrMissingProblemLine
	}

	return graphstate.FromEdgeList(n, edges)
}
