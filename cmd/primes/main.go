package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"primefinder/internal/config"
	"primefinder/internal/format"
	"primefinder/internal/logging"
	"primefinder/internal/report"
)

var (
	// Global flags
	verbose    bool
	configPath string

	// Loaded in PersistentPreRunE
	cfg    *config.Config
	logger *logging.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "primes",
	Short: "Enumerate prime numbers with a sieve and trial division",
	Long: `primes lists the prime numbers up to a bound.

Run without arguments to print the primes up to 100 and up to 50, ten per
row, each followed by a count. The Sieve of Eratosthenes is used by default;
trial division is available as an independent cross-check.`,
	SilenceUsage:  true,
	SilenceErrors: true, // main prints the error

	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.Load(configPath)
		if err != nil {
			return err
		}
		if err := loaded.Validate(); err != nil {
			return err
		}
		cfg = loaded

		logger, err = logging.New(cfg.Logging, verbose)
		if err != nil {
			return err
		}
		logger.Get(logging.CategoryBoot).Debug("Config loaded",
			zap.String("path", configPath),
			zap.String("method", cfg.Method),
			zap.Int("sections", len(cfg.Sections)))
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	Args: cobra.NoArgs,
	RunE: runDemo,
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", config.DefaultPath, "Config file (missing file means defaults)")

	// list flags
	listCmd.Flags().StringVarP(&listMethod, "method", "m", "", "Enumeration method: sieve or trial (default from config)")
	listCmd.Flags().IntVar(&listColumns, "columns", 0, "Entries per row (default from config)")
	listCmd.Flags().IntVar(&listWidth, "width", 0, "Field width (default from config)")

	// verify flags
	verifyCmd.Flags().IntVar(&verifyFrom, "from", 0, "First bound to check (default from config)")
	verifyCmd.Flags().IntVar(&verifyTo, "to", 0, "Last bound to check (default from config)")
	verifyCmd.Flags().IntVar(&verifyWorkers, "workers", 0, "Parallel workers (default from config)")

	// config subcommands
	configInitCmd.Flags().BoolVar(&configForce, "force", false, "Overwrite an existing file")
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)

	// Add commands to root
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(verifyCmd)
	rootCmd.AddCommand(configCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// runDemo prints every configured section.
func runDemo(cmd *cobra.Command, args []string) error {
	method, err := cfg.GetMethod()
	if err != nil {
		return err
	}

	sections := make([]report.Section, 0, len(cfg.Sections))
	for _, s := range cfg.Sections {
		sections = append(sections, report.Section{Bound: s.Bound, Title: s.Title})
	}

	out := cmd.OutOrStdout()
	return report.Demo(out, sections, report.Options{
		Method:  method,
		Format:  formatOptions(0, 0),
		Heading: headingStyle(out),
		Logger:  logger.Get(logging.CategoryEnumerate),
	})
}

// formatOptions merges flag values over the configured layout. Zero means unset.
func formatOptions(columns, width int) format.Options {
	opts := format.Options{Columns: cfg.Format.Columns, Width: cfg.Format.Width}
	if columns > 0 {
		opts.Columns = columns
	}
	if width > 0 {
		opts.Width = width
	}
	return opts
}

// parseBound parses a bound argument and checks it against the configured limits.
func parseBound(arg string) (int, error) {
	n, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("invalid bound %q: must be a non-negative integer", arg)
	}
	if err := cfg.CheckBound(n); err != nil {
		return 0, err
	}
	return n, nil
}
