package primes

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// =============================================================================
// SIEVE
// =============================================================================

func TestSieve_KnownBounds(t *testing.T) {
	tests := []struct {
		name  string
		bound int
		want  []int
	}{
		{name: "negative", bound: -7, want: []int{}},
		{name: "zero", bound: 0, want: []int{}},
		{name: "one", bound: 1, want: []int{}},
		{name: "two", bound: 2, want: []int{2}},
		{name: "three", bound: 3, want: []int{2, 3}},
		{name: "ten", bound: 10, want: []int{2, 3, 5, 7}},
		{name: "twenty", bound: 20, want: []int{2, 3, 5, 7, 11, 13, 17, 19}},
		{name: "bound is a square of a prime", bound: 49, want: []int{2, 3, 5, 7, 11, 13, 17, 19, 23, 29, 31, 37, 41, 43, 47}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Sieve(tt.bound)
			require.NotNil(t, got)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Sieve(%d) mismatch (-want +got):\n%s", tt.bound, diff)
			}
		})
	}
}

func TestSieve_Counts(t *testing.T) {
	// pi(n) reference values.
	counts := map[int]int{50: 15, 100: 25, 1000: 168, 10000: 1229, 100000: 9592}
	for bound, want := range counts {
		assert.Len(t, Sieve(bound), want, "pi(%d)", bound)
	}
}

func TestSieve_Idempotent(t *testing.T) {
	first := Sieve(500)
	second := Sieve(500)
	assert.Equal(t, first, second)

	// Results are independent slices.
	second[0] = -1
	assert.Equal(t, 2, first[0])
	assert.Equal(t, 2, Sieve(500)[0])
}

func TestSieve_AscendingDistinctPrime(t *testing.T) {
	seq := Sieve(3000)
	for i, p := range seq {
		require.True(t, IsPrime(p), "%d is not prime", p)
		if i > 0 {
			require.Greater(t, p, seq[i-1])
		}
	}
}

// =============================================================================
// TRIAL DIVISION
// =============================================================================

func TestIsPrime(t *testing.T) {
	tests := []struct {
		n    int
		want bool
	}{
		{-3, false},
		{0, false},
		{1, false},
		{2, true},
		{3, true},
		{4, false},
		{5, true},
		{9, false},
		{25, false},
		{49, false},
		{97, true},
		{7919, true},
		{7921, false}, // 89*89
		{2147483647, true},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, IsPrime(tt.n), "IsPrime(%d)", tt.n)
	}
}

func TestTrialDivision_BelowTwo(t *testing.T) {
	for _, bound := range []int{-1, 0, 1} {
		got := TrialDivision(bound)
		require.NotNil(t, got)
		assert.Empty(t, got)
	}
}

func TestMethodsAgree(t *testing.T) {
	for bound := 0; bound <= 600; bound++ {
		if diff := cmp.Diff(Sieve(bound), TrialDivision(bound)); diff != "" {
			t.Fatalf("algorithms disagree at bound %d (-sieve +trial):\n%s", bound, diff)
		}
	}
}

// =============================================================================
// METHOD SELECTION
// =============================================================================

func TestParseMethod(t *testing.T) {
	tests := []struct {
		in      string
		want    Method
		wantErr bool
	}{
		{in: "sieve", want: MethodSieve},
		{in: "  Trial ", want: MethodTrial},
		{in: "SIEVE", want: MethodSieve},
		{in: "wheel", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		got, err := ParseMethod(tt.in)
		if tt.wantErr {
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrUnknownMethod))
			continue
		}
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}
}

func TestEnumerate(t *testing.T) {
	seq, err := Enumerate(MethodSieve, 30)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 3, 5, 7, 11, 13, 17, 19, 23, 29}, seq)

	seq, err = Enumerate(MethodTrial, 30)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 3, 5, 7, 11, 13, 17, 19, 23, 29}, seq)

	_, err = Enumerate(Method("atkin"), 30)
	assert.ErrorIs(t, err, ErrUnknownMethod)
}

func BenchmarkSieve(b *testing.B) {
	for i := 0; i < b.N; i++ {
		Sieve(1000000)
	}
}

func BenchmarkTrialDivision(b *testing.B) {
	for i := 0; i < b.N; i++ {
		TrialDivision(100000)
	}
}
