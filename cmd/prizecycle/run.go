package main

import (
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/prizecycle/config"
	"github.com/katalvlaran/prizecycle/runner"
)

func newRunCmd(a *app) *cobra.Command {
	var configPath, metricsOut string

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the experiment described by a YAML configuration",
		Long: `run generates the configured instance, runs every configured method the
configured number of times and prints one summary row per method.

With --metrics-out the Prometheus metrics of the run are written to a file in
the text exposition format.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			methods, err := cfg.ParsedMethods()
			if err != nil {
				return err
			}
			in, err := cfg.Instance.Build()
			if err != nil {
				return err
			}

			reg := prometheus.NewRegistry()
			metrics, err := runner.NewMetrics(reg)
			if err != nil {
				return err
			}
			r, err := runner.FromConfig(in, cfg, runner.WithLogger(a.logger), runner.WithMetrics(metrics))
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()

			results, err := r.Run(ctx, methods, cfg.Runs)
			switch {
			case errors.Is(err, runner.ErrTimeLimit):
				a.logger.Warn("time limit reached, summarizing finished runs",
					zap.Duration("time_limit", cfg.TimeLimit),
					zap.Int("completed", len(results)),
				)
			case err != nil:
				return err
			}

			if err := writeSummary(cmd.OutOrStdout(), in.N(), runner.Summarize(results)); err != nil {
				return err
			}
			if metricsOut != "" {
				if err := prometheus.WriteToTextfile(metricsOut, reg); err != nil {
					return fmt.Errorf("write metrics: %w", err)
				}
				a.logger.Info("metrics written", zap.String("path", metricsOut))
			}

			return nil
		},
	}
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Experiment configuration (YAML)")
	cmd.Flags().StringVar(&metricsOut, "metrics-out", "", "Write Prometheus metrics to this file")
	_ = cmd.MarkFlagRequired("config")

	return cmd
}
