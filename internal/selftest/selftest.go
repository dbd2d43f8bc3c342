// Package selftest holds the built-in scenario suite run by the `selftest`
// command. It exercises the parser, the scoring rules, the table, the
// ranking and a few complete leagues embedded in the binary.
package selftest

import (
	"context"
	"errors"
	"fmt"
	"io"
)

// ErrFailed is returned by Run when at least one case did not pass.
var ErrFailed = errors.New("self-test failed")

// Case is a single named check. Check returns what was produced and what was
// expected; a non-nil error marks the case as failed regardless.
type Case struct {
	Name  string
	Check func(ctx context.Context) (got, want string, err error)
}

// Summary counts case outcomes.
type Summary struct {
	Passed int
	Failed int
}

// Run executes every case in order, writing a Passed/Failed block per case
// to w. It returns ErrFailed if anything failed.
func Run(ctx context.Context, w io.Writer, cases []Case) (Summary, error) {
	var sum Summary
	for _, c := range cases {
		if err := ctx.Err(); err != nil {
			return sum, err
		}

		fmt.Fprintf(w, "\n%s\n", c.Name)
		got, want, err := c.Check(ctx)
		switch {
		case err != nil:
			sum.Failed++
			fmt.Fprintf(w, "Failed\nError: %v\n", err)
		case got != want:
			sum.Failed++
			fmt.Fprintf(w, "Failed\nFound:\n%s\nExpected:\n%s\n", got, want)
		default:
			sum.Passed++
			fmt.Fprintln(w, "Passed")
		}
	}

	fmt.Fprintf(w, "\n%d passed, %d failed\n", sum.Passed, sum.Failed)
	if sum.Failed > 0 {
		return sum, fmt.Errorf("%w: %d of %d cases", ErrFailed, sum.Failed, sum.Failed+sum.Passed)
	}
	return sum, nil
}
