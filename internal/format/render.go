// Package format renders integer sequences as fixed-width, column-wrapped rows.
package format

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

const (
	// DefaultColumns is the number of entries per row.
	DefaultColumns = 10
	// DefaultWidth is the field width each entry is right-aligned in.
	DefaultWidth = 3
)

// Options controls row layout.
type Options struct {
	Columns int
	Width   int
}

// DefaultOptions returns the 10 per row, 3 wide layout.
func DefaultOptions() Options {
	return Options{Columns: DefaultColumns, Width: DefaultWidth}
}

func (o Options) normalize() Options {
	if o.Columns <= 0 {
		o.Columns = DefaultColumns
	}
	if o.Width <= 0 {
		o.Width = DefaultWidth
	}
	return o
}

// Render writes seq to w, one row per opts.Columns entries. Entries on a row
// are separated by a single space and each row ends with a line break; a
// partial last row gets its break too, so output never ends mid-row. An empty
// sequence writes nothing. The only possible error comes from w.
func Render(w io.Writer, seq []int, opts Options) error {
	opts = opts.normalize()
	bw := bufio.NewWriter(w)

	for i, n := range seq {
		fmt.Fprintf(bw, "%*d", opts.Width, n)
		if (i+1)%opts.Columns == 0 {
			bw.WriteByte('\n')
		} else if i < len(seq)-1 {
			bw.WriteByte(' ')
		}
	}
	if len(seq)%opts.Columns != 0 {
		bw.WriteByte('\n')
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("failed to write rows: %w", err)
	}
	return nil
}

// String renders seq into a string.
func String(seq []int, opts Options) string {
	var sb strings.Builder
	_ = Render(&sb, seq, opts) // strings.Builder never fails
	return sb.String()
}

// Rows returns how many rows Render emits for n entries.
func Rows(n int, opts Options) int {
	opts = opts.normalize()
	if n <= 0 {
		return 0
	}
	return (n + opts.Columns - 1) / opts.Columns
}
