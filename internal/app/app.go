package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/specialistvlad/leaguerank/internal/config"
	"github.com/specialistvlad/leaguerank/internal/ctxlog"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW      io.Writer
	inR       io.Reader
	logger    *slog.Logger
	logCloser io.Closer
	config    *Config
	league    *config.League
}

// NewApp is the constructor for the main application. Reports go to outW,
// logs to logW unless the config names a log file. A league file that
// cannot be loaded is a fatal startup error and panics; the entrypoint
// recovers it.
func NewApp(outW, logW io.Writer, appConfig *Config, loader config.Loader) *App {
	logDest, logCloser := logDestination(appConfig.LogFile, logW)
	logger := newLogger(appConfig.LogLevel, appConfig.LogFormat, logDest)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	leagueCfg := config.Default()
	if appConfig.LeaguePath != "" {
		if loader == nil {
			panic("a league file was given but no loader is configured")
		}
		loaded, err := loader.Load(ctx, appConfig.LeaguePath)
		if err != nil {
			if logCloser != nil {
				logCloser.Close()
			}
			panic(fmt.Errorf("failed to load league configuration: %w", err))
		}
		leagueCfg = loaded
	}
	logger.Debug("League configuration ready.", "league", leagueCfg.String())

	return &App{
		outW:      outW,
		inR:       os.Stdin,
		logger:    logger,
		logCloser: logCloser,
		config:    appConfig,
		league:    leagueCfg,
	}
}

// League returns the league configuration in effect. This is primarily for testing.
func (a *App) League() *config.League {
	return a.league
}

// Close releases the log file, if any.
func (a *App) Close() error {
	if a.logCloser == nil {
		return nil
	}
	return a.logCloser.Close()
}
