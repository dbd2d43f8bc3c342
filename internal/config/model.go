package config

import (
	"errors"
	"fmt"

	"github.com/specialistvlad/leaguerank/internal/league"
)

// League is the unified representation of a league file.
type League struct {
	Scoring league.Scoring
	Units   league.Units
}

// Default returns the configuration used when no league file is given.
func Default() *League {
	return &League{
		Scoring: league.DefaultScoring,
		Units:   league.DefaultUnits,
	}
}

// Validate checks the model for values the pipeline cannot work with.
func (l *League) Validate() error {
	if err := l.Scoring.Validate(); err != nil {
		return err
	}
	if l.Units.Singular == "" || l.Units.Plural == "" {
		return errors.New("units must define both singular and plural labels")
	}
	return nil
}

func (l *League) String() string {
	return fmt.Sprintf("win=%d tie=%d loss=%d units=%s/%s",
		l.Scoring.Win, l.Scoring.Tie, l.Scoring.Loss, l.Units.Singular, l.Units.Plural)
}
