package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"ferricsort/bench"
)

func newBenchCommand(opts *options) *cobra.Command {
	var (
		sizes      []int
		runs       int
		out        string
		fileMode   bool
		algorithms []string
		patterns   []string
		seed       int64
	)

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Benchmark the sort engines on generated data patterns",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := setup(cmd, opts)
			if err != nil {
				return err
			}
			defer logger.Sync()

			flags := cmd.Flags()
			bc := cfg.Bench
			if flags.Changed("sizes") {
				bc.Sizes = sizes
			}
			if flags.Changed("runs") {
				bc.Runs = runs
			}
			if flags.Changed("out") {
				bc.OutputDir = out
			}
			if flags.Changed("file-mode") {
				bc.FileMode = fileMode
			}
			if flags.Changed("algorithms") {
				bc.Algorithms = algorithms
			}
			if flags.Changed("patterns") {
				bc.Patterns = patterns
			}
			if flags.Changed("seed") {
				bc.Seed = seed
			}

			results, err := bench.Run(cmd.Context(), bc, logger)
			if err != nil {
				return err
			}

			jsonPath, err := bench.WriteJSON(bc.OutputDir, results)
			if err != nil {
				return err
			}
			mdPath, err := bench.WriteMarkdown(bc.OutputDir, results)
			if err != nil {
				return err
			}
			logger.Info("benchmark finished",
				zap.Int("results", len(results)),
				zap.String("json", jsonPath),
				zap.String("markdown", mdPath))
			fmt.Fprintf(cmd.OutOrStdout(), "%s\n%s\n", jsonPath, mdPath)
			return nil
		},
	}

	defaults := bench.DefaultConfig()
	f := cmd.Flags()
	f.IntSliceVar(&sizes, "sizes", defaults.Sizes, "data sizes")
	f.IntVar(&runs, "runs", defaults.Runs, "runs per case")
	f.StringVarP(&out, "out", "o", defaults.OutputDir, "output directory for reports")
	f.BoolVar(&fileMode, "file-mode", false, "round-trip data through a file before each run")
	f.StringSliceVar(&algorithms, "algorithms", defaults.Algorithms, "engines to benchmark")
	f.StringSliceVar(&patterns, "patterns", defaults.Patterns, "data patterns")
	f.Int64Var(&seed, "seed", defaults.Seed, "random seed")
	return cmd
}
