package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/specialistvlad/leaguerank/internal/app"
	"github.com/specialistvlad/leaguerank/internal/report"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

type globalFlags struct {
	logFormat string
	logLevel  string
	logFile   string
}

// Parse processes command-line arguments. It returns a populated app.Config,
// a boolean indicating if the program should exit cleanly (help was shown),
// or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")

	var (
		result *app.Config
		flags  globalFlags
	)
	root := newRootCommand(&flags)
	root.AddCommand(
		newScoreCommand(&flags, &result),
		newSelfTestCommand(&flags, &result),
	)
	// A nil slice would make cobra fall back to os.Args.
	root.SetArgs(append([]string{}, args...))
	root.SetOut(output)
	root.SetErr(output)

	if err := root.Execute(); err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	if result == nil {
		slog.Debug("No command selected, help was printed.")
		return nil, true, nil
	}

	slog.Debug("CLI parser finished successfully.", "config", result)
	return result, false, nil
}

func newRootCommand(flags *globalFlags) *cobra.Command {
	root := &cobra.Command{
		Use:   "leaguerank",
		Short: "Rank league teams from a file of match results",
		Long: `leaguerank reads match results, one per line, in the form

  <Team1> <Score1>, <Team2> <Score2>

and prints the league table: 3 points for a win, 1 for a tie, 0 for a loss.
Teams with equal points share a rank.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&flags.logFormat, "log-format", "text", "Log output format. Options: 'text' or 'json'.")
	pf.StringVar(&flags.logLevel, "log-level", "warn", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	pf.StringVar(&flags.logFile, "log-file", "", "Write logs to this file (rotated) instead of stderr.")
	return root
}

func newScoreCommand(flags *globalFlags, result **app.Config) *cobra.Command {
	var leaguePath, format string

	cmd := &cobra.Command{
		Use:   "score [flags] RESULTS_PATH",
		Short: "Compute the ranking table for a results file, a directory of .txt results, or '-' for stdin",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := buildConfig(flags, app.Config{
				Command:     app.CommandScore,
				ResultsPath: args[0],
				LeaguePath:  leaguePath,
				Format:      strings.ToLower(format),
			})
			if err != nil {
				return err
			}
			*result = cfg
			return nil
		},
	}

	cmd.Flags().StringVarP(&leaguePath, "league", "l", "", "Path to an .hcl league file overriding points and units.")
	cmd.Flags().StringVarP(&format, "format", "f", report.FormatText,
		fmt.Sprintf("Report format. Options: %s.", strings.Join(report.Formats, ", ")))
	return cmd
}

func newSelfTestCommand(flags *globalFlags, result **app.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "selftest",
		Short: "Run the built-in test scenarios",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := buildConfig(flags, app.Config{Command: app.CommandSelfTest})
			if err != nil {
				return err
			}
			*result = cfg
			return nil
		},
	}
}

// buildConfig validates the global flags and merges them into cfg.
func buildConfig(flags *globalFlags, cfg app.Config) (*app.Config, error) {
	logFormat := strings.ToLower(flags.logFormat)
	if logFormat != "text" && logFormat != "json" {
		return nil, errors.New("invalid log-format: must be 'text' or 'json'")
	}

	logLevel := strings.ToLower(flags.logLevel)
	switch logLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, errors.New("invalid log-level: must be 'debug', 'info', 'warn', or 'error'")
	}
	slog.Debug("CLI parameter validation complete.")

	cfg.LogFormat = logFormat
	cfg.LogLevel = logLevel
	cfg.LogFile = flags.logFile
	return app.NewConfig(cfg)
}
