package app

import (
	"errors"
	"fmt"

	"github.com/specialistvlad/leaguerank/internal/report"
)

// Commands understood by App.Run.
const (
	CommandScore    = "score"
	CommandSelfTest = "selftest"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	Command     string
	ResultsPath string // results file or directory, "-" for stdin
	LeaguePath  string // optional .hcl league file
	Format      string

	LogFormat string
	LogLevel  string
	LogFile   string
}

// NewConfig validates cfg and fills in defaults.
func NewConfig(cfg Config) (*Config, error) {
	switch cfg.Command {
	case CommandScore:
		if cfg.ResultsPath == "" {
			return nil, errors.New("ResultsPath is a required configuration field and cannot be empty")
		}
	case CommandSelfTest:
	default:
		return nil, fmt.Errorf("unknown command %q", cfg.Command)
	}

	if cfg.Format == "" {
		cfg.Format = report.FormatText
	}
	if !report.IsSupported(cfg.Format) {
		return nil, fmt.Errorf("invalid format %q: must be one of %v", cfg.Format, report.Formats)
	}

	return &cfg, nil
}
