package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/prizecycle/config"
	"github.com/katalvlaran/prizecycle/construct"
	"github.com/katalvlaran/prizecycle/localsearch"
	"github.com/katalvlaran/prizecycle/move"
)

type solveFlags struct {
	n         int
	method    string
	start     string
	startNode int
	seed      int64
	candK     int
}

func newSolveCmd(a *app) *cobra.Command {
	var f solveFlags

	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Generate one uniform instance and run a single descent on it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			method, err := localsearch.ParseMethod(f.method)
			if err != nil {
				return err
			}
			strategy, err := construct.ParseStrategy(f.start)
			if err != nil {
				return err
			}
			if f.candK < 1 {
				return fmt.Errorf("--k must be at least 1, got %d", f.candK)
			}

			ic := config.Default().Instance
			ic.Points = f.n
			ic.Seed = f.seed
			in, err := ic.Build()
			if err != nil {
				return err
			}

			rng := localsearch.NewRNG(f.seed)
			init, err := construct.Build(strategy, in, f.startNode, rng)
			if err != nil {
				return err
			}

			var stats localsearch.Stats
			out, err := localsearch.Descend(method, in, init, localsearch.DeriveRNG(rng, 0),
				localsearch.WithLogger(a.logger.Named("localsearch")),
				localsearch.WithCandidateCount(f.candK),
				localsearch.WithStats(&stats),
			)
			if err != nil {
				return err
			}
			a.logger.Debug("solve finished",
				zap.String("method", string(method)),
				zap.Int("points", in.N()),
				zap.Int("applied", stats.Applied),
			)

			return writeSolve(cmd.OutOrStdout(), solveReport{
				method:  method,
				start:   strategy,
				initial: move.Objective(in, init),
				final:   move.Objective(in, out),
				stats:   stats,
				tour:    out.Nodes(),
			})
		},
	}
	cmd.Flags().IntVar(&f.n, "n", 200, "Number of points")
	cmd.Flags().StringVarP(&f.method, "method", "m", string(localsearch.MethodLM), "Descent method (see 'prizecycle methods')")
	cmd.Flags().StringVar(&f.start, "start", string(construct.StrategyRegret), "Initial cycle: random or regret")
	cmd.Flags().IntVar(&f.startNode, "start-node", 0, "First node of the initial cycle")
	cmd.Flags().Int64Var(&f.seed, "seed", 1, "Seed of the instance and of the random streams")
	cmd.Flags().IntVar(&f.candK, "k", 10, "Candidate list length of the candidate methods")

	return cmd
}
