package dimacs

import (
	"bufio"
	"fmt"
	"io"
)

// SolverVersion is reported verbatim in every output file's
// solver_version field.
const SolverVersion = "v1.0.0"

// Report carries every field the output file format names; the core
// supplies all of them, the I/O shell only formats and writes.
type Report struct {
	ProblemInstanceFileName   string
	CmdLine                   string
	SolverVersion             string
	NumberOfVertices          int
	NumberOfEdges             int
	TimeLimitSec              float64
	NumberOfMPIProcesses      int
	NumberOfThreadsPerProcess int
	WallTimeSec               float64
	IsWithinTimeLimit         bool
	NumberOfColors            int
	// Coloring is indexed by original-graph vertex id, one entry per
	// vertex in [0, NumberOfVertices).
	Coloring []int
}

// WriteResult writes r to w in a fixed field order, followed by one
// "<vertex> <color>" line per vertex.
func WriteResult(w io.Writer, r Report) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "problem_instance_file_name: %s\n", r.ProblemInstanceFileName)
	fmt.Fprintf(bw, "cmd_line: %s\n", r.CmdLine)
	fmt.Fprintf(bw, "solver_version: %s\n", r.SolverVersion)
	fmt.Fprintf(bw, "number_of_vertices: %d\n", r.NumberOfVertices)
	fmt.Fprintf(bw, "number_of_edges: %d\n", r.NumberOfEdges)
	fmt.Fprintf(bw, "time_limit_sec: %g\n", r.TimeLimitSec)
	fmt.Fprintf(bw, "number_of_mpi_processes: %d\n", r.NumberOfMPIProcesses)
	fmt.Fprintf(bw, "number_of_threads_per_process: %d\n", r.NumberOfThreadsPerProcess)
	fmt.Fprintf(bw, "wall_time_sec: %g\n", r.WallTimeSec)
	fmt.Fprintf(bw, "is_within_time_limit: %t\n", r.IsWithinTimeLimit)
	fmt.Fprintf(bw, "number_of_colors: %d\n", r.NumberOfColors)

	for v, c := range r.Coloring {
		fmt.Fprintf(bw, "%d %d\n", v, c)
	}

	return bw.Flush()
}
