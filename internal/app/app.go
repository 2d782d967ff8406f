package app

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"

	"github.com/specialistvlad/burstmake/internal/ctxlog"
	"github.com/specialistvlad/burstmake/internal/executor"
	"github.com/specialistvlad/burstmake/internal/fsutil"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW   io.Writer
	errW   io.Writer
	logger *slog.Logger
	config *Config
	fs     fsutil.OS
	exec   executor.Executor
}

// Option customizes an App.
type Option func(*App)

// WithExecutor replaces the command executor, typically with a test double.
func WithExecutor(e executor.Executor) Option {
	return func(a *App) { a.exec = e }
}

// NewApp is the constructor for the main application. Command echo and
// command output go to outW; logs and command stderr go to errW.
func NewApp(outW, errW io.Writer, cfg *Config, opts ...Option) *App {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, errW)

	a := &App{
		outW:   outW,
		errW:   errW,
		logger: logger,
		config: cfg,
		fs:     fsutil.OS{Dir: cfg.Dir},
	}
	for _, opt := range opts {
		opt(a)
	}

	if a.exec == nil {
		if cfg.DryRun {
			a.exec = &executor.DryRun{Out: outW}
		} else {
			a.exec = executor.NewShell(cfg.Dir, outW, errW)
		}
	}

	logger.Debug("App configured.", "build_file", a.buildFile(), "dir", cfg.Dir, "dry_run", cfg.DryRun)
	return a
}

// buildFile resolves the build file against the configured working directory.
func (a *App) buildFile() string {
	if a.config.Dir == "" || filepath.IsAbs(a.config.BuildFile) {
		return a.config.BuildFile
	}
	return filepath.Join(a.config.Dir, a.config.BuildFile)
}

func (a *App) context(ctx context.Context) context.Context {
	return ctxlog.WithLogger(ctx, a.logger)
}
