// Package primes enumerates prime numbers up to an inclusive bound.
// Two independent algorithms are provided: a Sieve of Eratosthenes for normal
// use and trial division, which serves as a correctness oracle for the sieve.
// Every function here is pure: no shared state, no I/O, defined for every int.
package primes

import (
	"errors"
	"fmt"
	"strings"
)

// Method selects an enumeration algorithm.
type Method string

const (
	MethodSieve Method = "sieve" // Sieve of Eratosthenes
	MethodTrial Method = "trial" // Trial division
)

// ErrUnknownMethod is returned when a method name is not recognised.
var ErrUnknownMethod = errors.New("unknown enumeration method")

// Methods lists all supported methods.
var Methods = []Method{MethodSieve, MethodTrial}

// ParseMethod converts a user supplied name into a Method.
func ParseMethod(name string) (Method, error) {
	switch Method(strings.ToLower(strings.TrimSpace(name))) {
	case MethodSieve:
		return MethodSieve, nil
	case MethodTrial:
		return MethodTrial, nil
	}
	return "", fmt.Errorf("%w: %q (valid: %v)", ErrUnknownMethod, name, Methods)
}

// Enumerate returns the primes in [2, bound] computed with method m.
func Enumerate(m Method, bound int) ([]int, error) {
	switch m {
	case MethodSieve:
		return Sieve(bound), nil
	case MethodTrial:
		return TrialDivision(bound), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownMethod, string(m))
}
