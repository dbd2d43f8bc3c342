package pipeline

import (
	"context"
	"fmt"
	"io"

	"golang.org/x/sync/errgroup"

	"github.com/specialistvlad/leaguerank/internal/ctxlog"
	"github.com/specialistvlad/leaguerank/internal/league"
	"github.com/specialistvlad/leaguerank/internal/linesource"
)

// lineBuffer lets the reader run a little ahead of the fold.
const lineBuffer = 64

// Issue is a recoverable problem tied to one input line. Issues never stop
// a run.
type Issue struct {
	Line int
	Text string
	Err  error
}

func (i Issue) Error() string {
	return fmt.Sprintf("line %d: %v", i.Line, i.Err)
}

func (i Issue) Unwrap() error {
	return i.Err
}

// Result is the outcome of folding a whole input.
type Result struct {
	Table  league.Table
	Issues []Issue
	Lines  int
}

// Standings ranks the final table.
func (r *Result) Standings() league.Standings {
	return league.Rank(r.Table)
}

// Run reads src line by line and folds it into a Result. A read failure
// aborts the run and no Result is returned.
func Run(ctx context.Context, src io.Reader, scoring league.Scoring) (*Result, error) {
	g, gctx := errgroup.WithContext(ctx)
	lines := make(chan linesource.Line, lineBuffer)

	g.Go(func() error {
		return linesource.Read(gctx, src, lines)
	})

	var res *Result
	g.Go(func() error {
		var err error
		res, err = Tally(gctx, lines, scoring)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return res, nil
}

// Tally consumes lines until the channel is closed and returns the
// accumulated table. It is the only writer of the table.
func Tally(ctx context.Context, lines <-chan linesource.Line, scoring league.Scoring) (*Result, error) {
	logger := ctxlog.FromContext(ctx)
	res := &Result{Table: league.NewTable()}

	for {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case line, ok := <-lines:
			if !ok {
				logger.Debug("Input exhausted.", "lines", res.Lines, "teams", len(res.Table), "issues", len(res.Issues))
				return res, nil
			}
			res.fold(ctx, line, scoring)
		}
	}
}

func (r *Result) fold(ctx context.Context, line linesource.Line, scoring league.Scoring) {
	logger := ctxlog.FromContext(ctx)
	r.Lines++

	match, err := league.ParseLine(line.Text)
	if err != nil {
		r.report(ctx, line, err)
	}
	if err := r.Table.Record(match, scoring); err != nil {
		r.report(ctx, line, err)
	}
	logger.Debug("Line applied.", "line", line.Number, "home", match.Home.Name, "away", match.Away.Name)
}

func (r *Result) report(ctx context.Context, line linesource.Line, err error) {
	issue := Issue{Line: line.Number, Text: line.Text, Err: err}
	r.Issues = append(r.Issues, issue)
	ctxlog.FromContext(ctx).Warn("Skipped part of a match line.", "line", line.Number, "text", line.Text, "error", err)
}
