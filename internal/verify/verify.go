// Package verify cross-checks the prime enumerators over a range of bounds.
//
// For every bound in the sweep the sieve result must equal the trial division
// result, must be strictly increasing with every element a prime no larger
// than the bound, and a second sieve call must return the same sequence.
// Bounds are split into chunks and checked by a bounded errgroup; the first
// failure cancels the rest.
package verify

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"primefinder/internal/primes"
)

// DefaultChunkSize is how many consecutive bounds one worker checks per task.
const DefaultChunkSize = 64

// Enumerator produces the primes up to a bound.
type Enumerator func(bound int) []int

// Options configures a sweep.
type Options struct {
	From      int
	To        int
	Workers   int
	ChunkSize int
	Logger    *zap.Logger

	// Sieve and Trial default to primes.Sieve and primes.TrialDivision.
	Sieve Enumerator
	Trial Enumerator
}

// Result summarises a successful sweep.
type Result struct {
	From, To  int
	Checked   int
	MaxPrimes int // length of the longest sequence seen
	Elapsed   time.Duration
}

// MismatchError reports the first bound that failed a check.
type MismatchError struct {
	Bound  int
	Reason string
	Sieve  []int
	Trial  []int
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("bound %d: %s", e.Bound, e.Reason)
}

// Run sweeps [opts.From, opts.To].
func Run(ctx context.Context, opts Options) (*Result, error) {
	if opts.From < 0 {
		opts.From = 0
	}
	if opts.To < opts.From {
		return nil, fmt.Errorf("empty range [%d, %d]", opts.From, opts.To)
	}
	if opts.Workers < 1 {
		opts.Workers = 1
	}
	if opts.ChunkSize < 1 {
		opts.ChunkSize = DefaultChunkSize
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.Sieve == nil {
		opts.Sieve = primes.Sieve
	}
	if opts.Trial == nil {
		opts.Trial = primes.TrialDivision
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	start := time.Now()
	var (
		mu        sync.Mutex
		checked   int
		maxPrimes int
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.Workers)

	for lo := opts.From; lo <= opts.To; lo += opts.ChunkSize {
		if gctx.Err() != nil {
			break
		}
		lo := lo // per-iteration copy; go directive is 1.21 (pre-1.22 loop semantics)
		hi := min(lo+opts.ChunkSize-1, opts.To)

		g.Go(func() error {
			longest := 0
			for b := lo; b <= hi; b++ {
				select {
				case <-gctx.Done():
					return gctx.Err()
				default:
				}
				n, err := checkBound(b, opts.Sieve, opts.Trial)
				if err != nil {
					return err
				}
				longest = max(longest, n)
			}

			mu.Lock()
			checked += hi - lo + 1
			maxPrimes = max(maxPrimes, longest)
			mu.Unlock()

			opts.Logger.Debug("Chunk verified", zap.Int("from", lo), zap.Int("to", hi))
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		opts.Logger.Warn("Verification failed", zap.Error(err))
		return nil, err
	}
	// The loop may have stopped early without any task failing.
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	res := &Result{
		From:      opts.From,
		To:        opts.To,
		Checked:   checked,
		MaxPrimes: maxPrimes,
		Elapsed:   time.Since(start),
	}
	opts.Logger.Info("Verification passed",
		zap.Int("from", res.From),
		zap.Int("to", res.To),
		zap.Int("checked", res.Checked),
		zap.Duration("elapsed", res.Elapsed))
	return res, nil
}

// checkBound runs every check for one bound and returns the sequence length.
func checkBound(bound int, sieve, trial Enumerator) (int, error) {
	s := sieve(bound)
	t := trial(bound)

	fail := func(reason string) error {
		return &MismatchError{Bound: bound, Reason: reason, Sieve: s, Trial: t}
	}

	if !slices.Equal(s, t) {
		return 0, fail("sieve and trial division disagree")
	}
	for i, p := range s {
		if p < 2 || p > bound {
			return 0, fail(fmt.Sprintf("%d is outside [2, %d]", p, bound))
		}
		if i > 0 && p <= s[i-1] {
			return 0, fail(fmt.Sprintf("sequence not strictly increasing at %d", p))
		}
		if !primes.IsPrime(p) {
			return 0, fail(fmt.Sprintf("%d is composite", p))
		}
	}
	if again := sieve(bound); !slices.Equal(s, again) {
		return 0, fail("sieve is not repeatable")
	}
	return len(s), nil
}
