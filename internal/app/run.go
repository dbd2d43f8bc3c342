package app

import (
	"context"
	"fmt"

	"github.com/specialistvlad/leaguerank/internal/ctxlog"
	"github.com/specialistvlad/leaguerank/internal/linesource"
	"github.com/specialistvlad/leaguerank/internal/pipeline"
	"github.com/specialistvlad/leaguerank/internal/report"
	"github.com/specialistvlad/leaguerank/internal/selftest"
)

// Run executes the configured command.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.", "command", a.config.Command)

	var err error
	switch a.config.Command {
	case CommandScore:
		err = a.score(ctx)
	case CommandSelfTest:
		err = a.selfTest(ctx)
	default:
		err = fmt.Errorf("unknown command %q", a.config.Command)
	}

	a.logger.Debug("App.Run method finished.", "error", err)
	return err
}

func (a *App) score(ctx context.Context) error {
	src, err := linesource.Open(a.config.ResultsPath, a.inR)
	if err != nil {
		return err
	}
	defer src.Close()

	a.logger.Info("Scoring league.", "results", a.config.ResultsPath, "league", a.league.String())
	res, err := pipeline.Run(ctx, src, a.league.Scoring)
	if err != nil {
		return fmt.Errorf("failed to score %s: %w", a.config.ResultsPath, err)
	}

	standings := res.Standings()
	if len(res.Issues) > 0 {
		a.logger.Warn("Some match lines were only partly usable.", "issues", len(res.Issues))
	}
	a.logger.Info("Ranking computed.", "lines", res.Lines, "teams", len(standings))

	return report.Render(a.outW, a.config.Format, standings, a.league.Units)
}

func (a *App) selfTest(ctx context.Context) error {
	cases := selftest.Cases()
	a.logger.Info("Running built-in scenarios.", "cases", len(cases))

	sum, err := selftest.Run(ctx, a.outW, cases)
	a.logger.Info("Scenarios finished.", "passed", sum.Passed, "failed", sum.Failed)
	return err
}
