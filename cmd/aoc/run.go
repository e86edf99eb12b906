package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/rangemap/aoc"
	"github.com/rangemap/aoc/internal/config"
	"github.com/rangemap/aoc/internal/log"
)

func runCmd() *cobra.Command {
	var (
		day        string
		envFile    string
		sampleOnly bool
		skipSample bool
		verbose    bool
	)
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run a puzzle against its sample and then the real input",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(envFile)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			if verbose {
				cfg.LogLevel = "debug"
			}
			logger, err := log.New(cfg.LogLevel)
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			p, err := aoc.Lookup(day)
			if err != nil {
				return err
			}
			logger = logger.With(zap.String("puzzle", p.Name))

			if sampleOnly {
				if p.Sample == nil {
					return fmt.Errorf("%s: %w", p.Name, aoc.ErrNoSample)
				}
				got, err := p.Run([]byte(p.Sample.Input))
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), got)
				return nil
			}

			if !skipSample {
				switch err := p.CheckSample(); {
				case errors.Is(err, aoc.ErrNoSample):
					logger.Warn("no sample")
				case err != nil:
					return err
				default:
					logger.Info("OK sample result", zap.String("want", p.Sample.Want))
				}
			}

			input, err := aoc.NewFetcher(cfg, logger).Input(cmd.Context(), p.Day)
			if err != nil {
				return fmt.Errorf("day %d input: %w", p.Day, err)
			}
			got, err := p.Run(input)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), got)
			return nil
		},
	}
	cmd.Flags().StringVarP(&day, "day", "d", "", "func name to run; empty means latest registered. If it starts with a digit, the \"day\" prefix is assumed")
	cmd.Flags().StringVar(&envFile, "env-file", ".env", "optional .env file")
	cmd.Flags().BoolVar(&sampleOnly, "sample", false, "only print the answer for the sample input")
	cmd.Flags().BoolVar(&skipSample, "skip-sample", false, "do not check the sample before running")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
	return cmd
}
