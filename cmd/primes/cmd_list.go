package main

import (
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"primefinder/internal/logging"
	"primefinder/internal/primes"
	"primefinder/internal/report"
)

var (
	listMethod  string
	listColumns int
	listWidth   int
)

// listCmd prints the primes up to one bound
var listCmd = &cobra.Command{
	Use:   "list [bound]",
	Short: "List the primes up to a bound",
	Long: `Prints every prime in [2, bound] in rows, followed by the total count.

Example:
  primes list 1000
  primes list 200 --method trial --columns 8`,
	Args: cobra.ExactArgs(1),
	RunE: runList,
}

func runList(cmd *cobra.Command, args []string) error {
	bound, err := parseBound(args[0])
	if err != nil {
		return err
	}

	name := listMethod
	if name == "" {
		name = cfg.Method
	}
	method, err := primes.ParseMethod(name)
	if err != nil {
		return err
	}

	start := time.Now()
	seq, err := primes.Enumerate(method, bound)
	if err != nil {
		return err
	}
	logger.Get(logging.CategoryEnumerate).Info("Enumerated primes",
		zap.Int("bound", bound),
		zap.String("method", string(method)),
		zap.Int("count", len(seq)),
		zap.Duration("elapsed", time.Since(start)))

	out := cmd.OutOrStdout()
	title := headingStyle(out)(report.Title(0, report.Section{Bound: bound}))
	return report.Block(out, title, seq, formatOptions(listColumns, listWidth))
}
