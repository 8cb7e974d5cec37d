package main

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/huynhanx03/go-pqueue/pkg/bench"
	"github.com/huynhanx03/go-pqueue/pkg/datastructs/pqueue"
)

func newBenchCmd(a *app) *cobra.Command {
	var (
		sizes      []int
		reps       int
		seed       uint64
		parallel   int
		backends   []string
		csvPath    string
		metricsOut string
	)

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Time every queue operation across input sizes and backends",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := a.cfg.Bench
			flags := cmd.Flags()
			override(flags, "sizes", &cfg.Sizes, sizes)
			override(flags, "reps", &cfg.Repetitions, reps)
			override(flags, "seed", &cfg.Seed, seed)
			override(flags, "parallel", &cfg.Parallelism, parallel)

			kinds := make([]pqueue.Kind, 0, len(backends))
			for _, b := range backends {
				kind, err := pqueue.ParseKind(b)
				if err != nil {
					return err
				}
				kinds = append(kinds, kind)
			}

			reg := prometheus.NewRegistry()
			runner, err := bench.NewRunner(&cfg, bench.WithLogger(a.log), bench.WithRegisterer(reg))
			if err != nil {
				return err
			}

			a.log.Info("benchmark starting", zap.Ints("sizes", cfg.Sizes), zap.Int("repetitions", cfg.Repetitions))
			report, err := runner.Run(cmd.Context(), kinds...)
			if err != nil {
				return err
			}

			report.WriteTable(cmd.OutOrStdout())
			if csvPath != "" {
				if err := report.WriteCSVFile(csvPath); err != nil {
					return err
				}
				a.log.Info("csv report written", zap.String("path", csvPath))
			}
			if metricsOut != "" {
				if err := writeMetricsFile(metricsOut, reg); err != nil {
					return err
				}
				a.log.Info("metrics written", zap.String("path", metricsOut))
			}
			return nil
		},
	}

	flags := cmd.Flags()
	flags.IntSliceVar(&sizes, "sizes", nil, "input sizes (default from config)")
	flags.IntVar(&reps, "reps", 0, "repetitions per size")
	flags.Uint64Var(&seed, "seed", 0, "dataset seed")
	flags.IntVar(&parallel, "parallel", 0, "backends timed concurrently")
	flags.StringSliceVar(&backends, "backend", nil, "backends to time: heap, array (default all)")
	flags.StringVar(&csvPath, "csv", "", "write the CSV report to this file")
	flags.StringVar(&metricsOut, "metrics-out", "", "write the Prometheus histograms to this file")
	return cmd
}
