package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/vlathgraph/chromatic/component"
	"github.com/vlathgraph/chromatic/dimacs"
	"github.com/vlathgraph/chromatic/runctx"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "solver <input_path> <time_limit_sec>",
		Short:        "Compute the chromatic number of a DIMACS .col graph",
		Args:         cobra.ExactArgs(2),
		SilenceUsage: true,
		RunE:         run,
	}

	cmd.Flags().Int("workers", 1, "distributed worker count W")
	cmd.Flags().Int("threads", 1, "shared-memory parallelism degree T per worker")
	cmd.Flags().Int("decomp-depth", 2, "pre-search decomposition depth D")
	cmd.Flags().Int("min-vertices-for-task", 30, "task-spawn size threshold")
	cmd.Flags().Int("max-task-depth", 4, "task-spawn depth threshold")
	cmd.Flags().String("config", "", "optional config file supplying values for the flags above that are not set on the command line")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	inputPath := args[0]
	timeLimitSec, err := strconv.ParseFloat(args[1], 64)
	if err != nil || timeLimitSec <= 0 {
		return fmt.Errorf("time_limit_sec must be a positive number, got %q", args[1])
	}

	v := viper.New()
	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return err
	}
	if cfgPath, _ := cmd.Flags().GetString("config"); cfgPath != "" {
		v.SetConfigFile(cfgPath)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("reading config %s: %w", cfgPath, err)
		}
	}

	logger, err := zap.NewProduction()
	if err != nil {
		return err
	}
	defer logger.Sync()

	f, err := os.Open(inputPath)
	if err != nil {
		return fmt.Errorf("opening %s: %w", inputPath, err)
	}
	defer f.Close()

	g, err := dimacs.Parse(f)
	if err != nil {
		return fmt.Errorf("parsing %s: %w", inputPath, err)
	}

	ctx := runctx.New(g.OrigN,
		runctx.WithTimeLimit(time.Duration(timeLimitSec*float64(time.Second))),
		runctx.WithWorkers(v.GetInt("workers")),
		runctx.WithThreads(v.GetInt("threads")),
		runctx.WithDecompDepth(v.GetInt("decomp-depth")),
		runctx.WithMinVerticesForTask(v.GetInt("min-vertices-for-task")),
		runctx.WithMaxTaskDepth(v.GetInt("max-task-depth")),
		runctx.WithLogger(logger),
	)

	start := time.Now()
	res := component.Solve(ctx, g)
	wallTime := time.Since(start).Seconds()

	outPath := outputPath(inputPath, ctx.Workers)
	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return err
	}
	outFile, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("creating %s: %w", outPath, err)
	}
	defer outFile.Close()

	report := dimacs.Report{
		ProblemInstanceFileName:   filepath.Base(inputPath),
		CmdLine:                   strings.Join(os.Args, " "),
		SolverVersion:             dimacs.SolverVersion,
		NumberOfVertices:          g.OrigN,
		NumberOfEdges:             g.EdgeCount(),
		TimeLimitSec:              timeLimitSec,
		NumberOfMPIProcesses:      ctx.Workers,
		NumberOfThreadsPerProcess: ctx.Threads,
		WallTimeSec:               wallTime,
		IsWithinTimeLimit:         res.Completed,
		NumberOfColors:            res.NumColors,
		Coloring:                  res.Coloring,
	}
	if err := dimacs.WriteResult(outFile, report); err != nil {
		return fmt.Errorf("writing %s: %w", outPath, err)
	}

	logger.Info("solved",
		zap.String("output", outPath),
		zap.Int("colors", res.NumColors),
		zap.Bool("completed", res.Completed),
		zap.Float64("wall_time_sec", wallTime),
	)
	fmt.Printf("Output written to %s\n", outPath)
	return nil
}

// outputPath mirrors the source's "<baseName>_<mpiSize>.output"
// naming convention under a build/output directory relative to the
// working directory.
func outputPath(inputPath string, workers int) string {
	base := strings.TrimSuffix(filepath.Base(inputPath), filepath.Ext(inputPath))
	return filepath.Join("build", "output", fmt.Sprintf("%s_%d.output", base, workers))
}
