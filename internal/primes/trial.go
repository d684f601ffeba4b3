package primes

// IsPrime reports whether n is prime by trial division over odd divisors up to
// floor(sqrt(n)).
func IsPrime(n int) bool {
	if n < 2 {
		return false
	}
	if n == 2 {
		return true
	}
	if n%2 == 0 {
		return false
	}
	// d <= n/d is d*d <= n without overflow.
	for d := 3; d <= n/d; d += 2 {
		if n%d == 0 {
			return false
		}
	}
	return true
}

// TrialDivision returns the primes in [2, bound] by testing every n in
// [1, bound] with IsPrime. It is slow and exists to cross-check Sieve.
func TrialDivision(bound int) []int {
	out := []int{}
	for n := 1; n <= bound; n++ {
		if IsPrime(n) {
			out = append(out, n)
		}
	}
	return out
}
