package app

import (
	"context"
	"io"
	"log/slog"

	"github.com/specialistvlad/buildwire/internal/build"
	"github.com/specialistvlad/buildwire/internal/configurator"
	"github.com/specialistvlad/buildwire/internal/ctxlog"
	"github.com/specialistvlad/buildwire/internal/model"
	"github.com/specialistvlad/buildwire/internal/plugins"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW    io.Writer // build description
	logger  *slog.Logger
	config  *Config
	plugins *plugins.Registry

	workspace    *model.Workspace
	build        *build.Build
	configurator *configurator.Configurator
}

// NewApp is the constructor for the main application. It returns an App with
// its own isolated logger and plugin registry. Logs go to logW and the build
// description to outW. When no modules are given the built-in plugin modules
// are registered.
func NewApp(outW, logW io.Writer, cfg *Config, modules ...plugins.Module) *App {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, logW)
	logger.Debug("Logger configured successfully.")

	var registry *plugins.Registry
	if len(modules) == 0 {
		registry = plugins.Default()
	} else {
		registry = plugins.New(modules...)
	}
	logger.Debug("Plugins registered.", "plugins", registry.IDs())

	return &App{
		outW:    outW,
		logger:  logger,
		config:  cfg,
		plugins: registry,
	}
}

// Context returns ctx carrying the app's logger.
func (a *App) Context(ctx context.Context) context.Context {
	return ctxlog.WithLogger(ctx, a.logger)
}

// Workspace returns the loaded workspace, or nil before Load.
func (a *App) Workspace() *model.Workspace {
	return a.workspace
}

// Build returns the materialized build, or nil before Load.
func (a *App) Build() *build.Build {
	return a.build
}

// Result returns what the configuration pass has done so far.
func (a *App) Result() configurator.Result {
	if a.configurator == nil {
		return configurator.Result{}
	}
	return a.configurator.Result()
}
