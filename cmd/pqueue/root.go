package main

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/huynhanx03/go-pqueue/pkg/logger"
	"github.com/huynhanx03/go-pqueue/pkg/settings"
)

// app holds state shared by every subcommand once the root pre-run has loaded it.
type app struct {
	configPath string
	logLevel   string

	cfg *settings.Config
	log *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}

	cmd := &cobra.Command{
		Use:           "pqueue",
		Short:         "Heap and array priority queues with an interactive tester, benchmarks and an HTTP service",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.load()
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			if a.log != nil {
				_ = a.log.Sync()
			}
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVarP(&a.configPath, "config", "c", "", "path to a YAML config file")
	flags.StringVar(&a.logLevel, "log-level", "", "override the configured log level")

	cmd.AddCommand(
		newMenuCmd(a),
		newBenchCmd(a),
		newServeCmd(a),
		newGenCmd(a),
	)
	return cmd
}

func (a *app) load() error {
	cfg, err := settings.Load(a.configPath)
	if err != nil {
		return err
	}
	if a.logLevel != "" {
		cfg.Logger.LogLevel = a.logLevel
		if err := cfg.Validate(); err != nil {
			return errors.Wrap(err, "invalid --log-level")
		}
	}

	log, err := logger.New(&cfg.Logger)
	if err != nil {
		return err
	}

	a.cfg, a.log = cfg, log
	return nil
}

// override sets *dst to v when the named flag was given on the command line.
func override[T any](flags *pflag.FlagSet, name string, dst *T, v T) {
	if flags.Changed(name) {
		*dst = v
	}
}
