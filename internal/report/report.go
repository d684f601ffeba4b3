// Package report writes the titled prime listings printed by the primes CLI.
package report

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"go.uber.org/zap"

	"primefinder/internal/format"
	"primefinder/internal/primes"
)

// ErrNoSections is returned by Demo when there is nothing to report.
var ErrNoSections = errors.New("no sections to report")

// Section is one titled block of the demo output.
type Section struct {
	Bound int
	Title string // optional; a default is derived from Bound and position
}

// DefaultSections reproduces the classic run: primes to 100, then a bonus run to 50.
func DefaultSections() []Section {
	return []Section{{Bound: 100}, {Bound: 50}}
}

// Options configures how sections are enumerated and written.
type Options struct {
	Method  primes.Method
	Format  format.Options
	Heading func(string) string // styles the header and titles; nil leaves them plain
	Logger  *zap.Logger
}

func (o Options) normalize() Options {
	if o.Method == "" {
		o.Method = primes.MethodSieve
	}
	if o.Heading == nil {
		o.Heading = func(s string) string { return s }
	}
	if o.Logger == nil {
		o.Logger = zap.NewNop()
	}
	return o
}

// Header is the opening line of the demo for a first bound.
func Header(bound int) string {
	return fmt.Sprintf("Finding all prime numbers from 1 to %d...", bound)
}

// Title returns the default title of the section at index i.
func Title(i int, s Section) string {
	if s.Title != "" {
		return s.Title
	}
	if i == 0 {
		return fmt.Sprintf("Prime numbers from 1 to %d:", s.Bound)
	}
	return fmt.Sprintf("--- Bonus: Primes from 1 to %d ---", s.Bound)
}

// CountLine is the summary printed under each block.
func CountLine(n int) string {
	return fmt.Sprintf("Total count: %d primes found", n)
}

// Demo writes the header followed by one block per section.
func Demo(w io.Writer, sections []Section, opts Options) error {
	if len(sections) == 0 {
		return ErrNoSections
	}
	opts = opts.normalize()

	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%s\n\n", opts.Heading(Header(sections[0].Bound)))

	for i, s := range sections {
		seq, err := primes.Enumerate(opts.Method, s.Bound)
		if err != nil {
			return err
		}
		opts.Logger.Debug("Enumerated section",
			zap.Int("section", i),
			zap.Int("bound", s.Bound),
			zap.String("method", string(opts.Method)),
			zap.Int("count", len(seq)))

		if i > 0 {
			bw.WriteByte('\n')
		}
		if err := Block(bw, opts.Heading(Title(i, s)), seq, opts.Format); err != nil {
			return err
		}
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}

// Block writes title, the rendered rows of seq, a blank line and the count line.
func Block(w io.Writer, title string, seq []int, fopts format.Options) error {
	if _, err := fmt.Fprintln(w, title); err != nil {
		return fmt.Errorf("failed to write title: %w", err)
	}
	if err := format.Render(w, seq, fopts); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "\n%s\n", CountLine(len(seq))); err != nil {
		return fmt.Errorf("failed to write count: %w", err)
	}
	return nil
}
