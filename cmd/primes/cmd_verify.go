package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"primefinder/internal/logging"
	"primefinder/internal/verify"
)

var (
	verifyFrom    int
	verifyTo      int
	verifyWorkers int
)

// verifyCmd cross-checks the two algorithms
var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Check that the sieve and trial division agree over a range of bounds",
	Long: `Sweeps every bound in [from, to] and checks that the sieve and trial
division produce the same ascending sequence of primes, and that the sieve
returns the same result when called twice.

Exits non-zero on the first disagreement.

Example:
  primes verify --to 5000 --workers 8`,
	Args: cobra.NoArgs,
	RunE: runVerify,
}

func runVerify(cmd *cobra.Command, args []string) error {
	opts := verify.Options{
		From:    cfg.Verify.From,
		To:      cfg.Verify.To,
		Workers: cfg.Verify.Workers,
		Logger:  logger.Get(logging.CategoryVerify),
	}
	if cmd.Flags().Changed("from") {
		opts.From = verifyFrom
	}
	if cmd.Flags().Changed("to") {
		opts.To = verifyTo
	}
	if cmd.Flags().Changed("workers") {
		opts.Workers = verifyWorkers
	}
	if err := cfg.CheckBound(opts.From); err != nil {
		return err
	}
	if err := cfg.CheckBound(opts.To); err != nil {
		return err
	}

	baseCtx := cmd.Context()
	if baseCtx == nil {
		baseCtx = context.Background()
	}
	ctx, cancel := context.WithTimeout(baseCtx, cfg.GetVerifyTimeout())
	defer cancel()

	res, err := verify.Run(ctx, opts)
	if err != nil {
		return fmt.Errorf("verification failed: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Verified bounds %d..%d: sieve and trial division agree (%d bounds, up to %d primes)\n",
		res.From, res.To, res.Checked, res.MaxPrimes)
	return nil
}
