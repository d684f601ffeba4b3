package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"primefinder/internal/primes"
)

// checkCmd tests individual numbers
var checkCmd = &cobra.Command{
	Use:   "check [n...]",
	Short: "Report whether each number is prime",
	Long: `Tests each argument by trial division.

Example:
  primes check 97 91 2`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCheck,
}

func runCheck(cmd *cobra.Command, args []string) error {
	nums := make([]int, 0, len(args))
	for _, a := range args {
		n, err := strconv.Atoi(a)
		if err != nil {
			return fmt.Errorf("invalid number %q", a)
		}
		nums = append(nums, n)
	}

	out := cmd.OutOrStdout()
	for _, n := range nums {
		verdict := "is not prime"
		if primes.IsPrime(n) {
			verdict = "is prime"
		}
		fmt.Fprintf(out, "%d %s\n", n, verdict)
	}
	return nil
}
