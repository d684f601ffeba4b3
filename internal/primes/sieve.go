package primes

// Sieve returns the primes in [2, bound] in ascending order using the Sieve of
// Eratosthenes. Bounds below 2 yield an empty, non-nil slice.
//
// The marking table is allocated per call and dropped on return.
func Sieve(bound int) []int {
	if bound < 2 {
		return []int{}
	}

	marked := make([]bool, bound+1)
	for i := 2; i <= bound; i++ {
		marked[i] = true
	}

	for p := 2; p*p <= bound; p++ {
		if !marked[p] {
			continue
		}
		// Smaller multiples of p were already cleared by smaller primes.
		for m := p * p; m <= bound; m += p {
			marked[m] = false
		}
	}

	out := make([]int, 0, estimateCount(bound))
	for i := 2; i <= bound; i++ {
		if marked[i] {
			out = append(out, i)
		}
	}
	return out
}

// estimateCount gives a rough upper estimate of pi(n) for slice capacity.
func estimateCount(n int) int {
	switch {
	case n < 100:
		return 25
	case n < 100000:
		return n / 4
	default:
		return n / 10
	}
}
