package format

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"primefinder/internal/primes"
)

func TestRender_PrimesToHundred(t *testing.T) {
	got := String(primes.Sieve(100), DefaultOptions())

	want := "" +
		"  2   3   5   7  11  13  17  19  23  29\n" +
		" 31  37  41  43  47  53  59  61  67  71\n" +
		" 73  79  83  89  97\n"
	assert.Equal(t, want, got)

	lines := strings.Split(strings.TrimSuffix(got, "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Len(t, strings.Fields(lines[2]), 5)
	assert.Equal(t, 3, Rows(25, DefaultOptions()))
}

func TestRender_ExactMultipleOfColumns(t *testing.T) {
	seq := []int{1, 2, 3, 4, 5, 6}
	got := String(seq, Options{Columns: 3})

	assert.Equal(t, "  1   2   3\n  4   5   6\n", got)
	assert.False(t, strings.HasSuffix(got, "\n\n"), "no extra break after a full row")
	assert.NotContains(t, got, " \n", "no dangling separator")
}

func TestRender_Layouts(t *testing.T) {
	tests := []struct {
		name string
		seq  []int
		opts Options
		want string
	}{
		{name: "empty", seq: nil, opts: DefaultOptions(), want: ""},
		{name: "single", seq: []int{2}, opts: DefaultOptions(), want: "  2\n"},
		{name: "one column", seq: []int{2, 3}, opts: Options{Columns: 1}, want: "  2\n  3\n"},
		{name: "defaults on zero", seq: []int{7, 11}, opts: Options{}, want: "  7  11\n"},
		{name: "wider field", seq: []int{101, 103}, opts: Options{Columns: 10, Width: 5}, want: "  101   103\n"},
		{name: "value wider than field", seq: []int{1009, 2}, opts: DefaultOptions(), want: "1009   2\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, String(tt.seq, tt.opts))
		})
	}
}

func TestRows(t *testing.T) {
	assert.Equal(t, 0, Rows(0, DefaultOptions()))
	assert.Equal(t, 1, Rows(10, DefaultOptions()))
	assert.Equal(t, 2, Rows(11, DefaultOptions()))
	assert.Equal(t, 2, Rows(15, DefaultOptions()))
}

type failingWriter struct{}

func (failingWriter) Write(p []byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestRender_WriterError(t *testing.T) {
	err := Render(failingWriter{}, []int{2, 3, 5}, DefaultOptions())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
}
