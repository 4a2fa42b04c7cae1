// Package cli wires the tilemux commands to configuration, logging and the
// pane engine.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"

	"github.com/bnema/tilemux/internal/cli/styles"
	"github.com/bnema/tilemux/internal/config"
	"github.com/bnema/tilemux/internal/domain/build"
	"github.com/bnema/tilemux/internal/logging"
)

// AppOptions selects how an App is set up.
type AppOptions struct {
	// FileLog sends logs to a per-session file instead of stderr. Commands
	// that draw on the terminal need it.
	FileLog bool
}

// App holds CLI dependencies.
type App struct {
	Config    *config.Config
	Configs   *config.Manager
	Theme     *styles.Theme
	BuildInfo build.Info

	// ConfigErr is set when the config file could not be loaded; Config then
	// holds the defaults.
	ConfigErr error

	SessionID string
	LogPath   string

	ctx        context.Context
	logCleanup func()
}

// NewApp creates a new CLI application with all dependencies.
func NewApp(opts AppOptions) (*App, error) {
	app := &App{SessionID: logging.GenerateSessionID()}

	mgr, err := config.NewManager()
	if err != nil {
		return nil, fmt.Errorf("create config manager: %w", err)
	}
	app.Configs = mgr
	if err := mgr.Load(); err != nil {
		app.ConfigErr = err
		app.Config = config.DefaultConfig()
	} else {
		app.Config = mgr.Get()
	}
	app.Theme = styles.NewTheme(app.Config)

	logCfg := logging.ApplyEnv(logging.Config{
		Level:      logging.ParseLevel(app.Config.Logging.Level),
		Format:     app.Config.Logging.Format,
		TimeFormat: "15:04:05",
	})

	var out io.Writer = os.Stderr
	if opts.FileLog {
		out = io.Discard
		if app.Config.Logging.EnableFileLog {
			rotator, err := newSessionLog(app.Config, app.SessionID)
			if err != nil {
				return nil, err
			}
			out = rotator
			app.LogPath = rotator.Path()
			app.logCleanup = func() { _ = rotator.Close() }
		}
	}
	logCfg.Output = out

	logger := logging.New(logCfg).With().Str("session_id", logging.ShortSessionID(app.SessionID)).Logger()
	mgr.SetLogger(logger)
	app.ctx = logging.WithContext(context.Background(), logger)
	if app.ConfigErr != nil {
		logger.Warn().Err(app.ConfigErr).Msg("using default configuration")
	}
	return app, nil
}

func newSessionLog(cfg *config.Config, sessionID string) (*logging.LogRotator, error) {
	logDir := cfg.Logging.LogDir
	if logDir == "" {
		dir, err := config.GetLogDir()
		if err != nil {
			return nil, fmt.Errorf("resolve log dir: %w", err)
		}
		logDir = dir
	}
	rotator, err := logging.NewLogRotator(
		logDir,
		logging.SessionFilename(sessionID),
		cfg.Logging.MaxSize,
		cfg.Logging.MaxBackups,
		cfg.Logging.MaxAge,
		cfg.Logging.Compress,
	)
	if err != nil {
		return nil, fmt.Errorf("open session log: %w", err)
	}
	return rotator, nil
}

// Close releases all resources.
func (a *App) Close() error {
	if a.logCleanup != nil {
		a.logCleanup()
	}
	return nil
}

// Ctx returns the application context with logger.
func (a *App) Ctx() context.Context {
	return a.ctx
}

// Logger returns the application logger.
func (a *App) Logger() *zerolog.Logger {
	return logging.FromContext(a.ctx)
}
