// Command prizecycle generates prize-collecting cycle instances and runs the
// local-search descents on them.
//
// Usage:
//
//	prizecycle run --config run.yaml [--metrics-out file.prom] [--verbose]
//	prizecycle solve --n 200 --method lm --start regret --seed 7
//	prizecycle methods
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// app carries state shared by the subcommands.
type app struct {
	verbose bool
	logger  *zap.Logger

	// newLogger builds the logger in PersistentPreRunE; tests replace it.
	newLogger func(verbose bool) (*zap.Logger, error)
}

func productionLogger(verbose bool) (*zap.Logger, error) {
	config := zap.NewProductionConfig()
	if verbose {
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}

	return config.Build()
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "prizecycle",
		Short: "Prize-collecting cycle selection by local search",
		Long: `prizecycle selects half of the points of an instance and orders them into a
cycle minimising tour length plus the costs of the selected points.

It builds initial cycles (random or weighted regret) and improves them with
steepest, candidate-restricted, move-list or randomized greedy descents.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logger, err := a.newLogger(a.verbose)
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			a.logger = logger
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Enable debug logging")

	root.AddCommand(newRunCmd(a), newSolveCmd(a), newMethodsCmd())

	return root
}

func main() {
	a := &app{newLogger: productionLogger}
	if err := newRootCmd(a).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
