package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/huynhanx03/go-pqueue/pkg/datastructs/pqueue"
	"github.com/huynhanx03/go-pqueue/pkg/generator"
	"github.com/huynhanx03/go-pqueue/pkg/pqio"
)

func newGenCmd(a *app) *cobra.Command {
	var (
		size   int
		lo, hi int
		seed   uint64
		out    string
	)

	cmd := &cobra.Command{
		Use:   "gen",
		Short: "Generate a random pair stream loadable by the tester",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			g := a.cfg.Generator
			flags := cmd.Flags()
			override(flags, "size", &g.Size, size)
			override(flags, "min", &g.MinPriority, lo)
			override(flags, "max", &g.MaxPriority, hi)
			override(flags, "seed", &g.Seed, seed)

			q := pqueue.NewArray[int](g.Size)
			if err := generator.Fill(q, g.Size, g.MinPriority, g.MaxPriority, generator.NewRand(g.Seed)); err != nil {
				return err
			}

			if out == "" || out == "-" {
				_, err := pqio.Save(cmd.OutOrStdout(), q)
				return err
			}
			n, err := pqio.SaveFile(out, q)
			if err != nil {
				return err
			}
			a.log.Info("pairs generated", zap.Int("count", n), zap.String("path", out))
			return nil
		},
	}

	flags := cmd.Flags()
	flags.IntVar(&size, "size", 0, "number of pairs (default from config)")
	flags.IntVar(&lo, "min", 0, "minimum priority")
	flags.IntVar(&hi, "max", 0, "maximum priority")
	flags.Uint64Var(&seed, "seed", 0, "generator seed")
	flags.StringVarP(&out, "out", "o", "", "output file, - or empty for stdout")
	return cmd
}
