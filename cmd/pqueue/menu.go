package main

import (
	"github.com/spf13/cobra"

	"github.com/huynhanx03/go-pqueue/pkg/bench"
	"github.com/huynhanx03/go-pqueue/pkg/console"
)

func newMenuCmd(a *app) *cobra.Command {
	var (
		seed    uint64
		csvPath string
	)

	cmd := &cobra.Command{
		Use:   "menu",
		Short: "Run the interactive queue tester",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			runner, err := bench.NewRunner(&a.cfg.Bench, bench.WithLogger(a.log))
			if err != nil {
				return err
			}

			opts := []console.Option{
				console.WithLogger(a.log),
				console.WithBench(runner, csvPath),
			}
			if cmd.Flags().Changed("seed") {
				opts = append(opts, console.WithSeed(seed))
			}
			return console.New(cmd.InOrStdin(), cmd.OutOrStdout(), opts...).Run(cmd.Context())
		},
	}

	cmd.Flags().Uint64Var(&seed, "seed", 0, "seed for random queues (default: time based)")
	cmd.Flags().StringVar(&csvPath, "csv", "priority_queue_results.csv", "file the benchmark menu entry writes its CSV report to")
	return cmd
}
