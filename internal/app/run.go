package app

import (
	"context"
	"fmt"

	"github.com/specialistvlad/buildwire/internal/configurator"
	"github.com/specialistvlad/buildwire/internal/ctxlog"
	"github.com/specialistvlad/buildwire/internal/model"
	"github.com/specialistvlad/buildwire/internal/report"
)

// Load parses the workspace, materializes its build and installs the
// configuration pass on the root project. Nothing is evaluated yet.
func (a *App) Load(ctx context.Context) error {
	ctx = a.Context(ctx)
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Loading workspace...", "path", a.config.WorkspacePath)

	ws, err := model.LoadWorkspace(ctx, a.config.WorkspacePath)
	if err != nil {
		return fmt.Errorf("failed to load workspace: %w", err)
	}

	conf, err := configurator.New(ws.Options())
	if err != nil {
		return fmt.Errorf("invalid build configuration: %w", err)
	}

	b, err := ws.Materialize(ctx, a.plugins)
	if err != nil {
		return fmt.Errorf("failed to materialize workspace: %w", err)
	}
	conf.Install(b)

	a.workspace = ws
	a.build = b
	a.configurator = conf
	logger.Info("Workspace loaded.", "workspace", ws.Name, "projects", len(ws.Projects))
	return nil
}

// Run loads the workspace if needed, evaluates the build, executes the
// requested tasks and optionally describes the result.
func (a *App) Run(ctx context.Context) error {
	ctx = a.Context(ctx)
	logger := ctxlog.FromContext(ctx)
	logger.Debug("App.Run method started.")

	if a.build == nil {
		if err := a.Load(ctx); err != nil {
			return err
		}
	}

	if err := a.build.Evaluate(ctx); err != nil {
		return fmt.Errorf("build configuration failed: %w", err)
	}
	if failures := a.configurator.Result().Failures; len(failures) > 0 {
		logger.Warn("Some subprojects kept their compile options.", "count", len(failures))
	}

	for _, selector := range a.config.Tasks {
		if err := a.build.RunTask(ctx, selector); err != nil {
			return err
		}
	}

	if a.config.Describe {
		if err := report.Describe(ctx, a.build, a.outW); err != nil {
			return err
		}
	}

	logger.Info("Build finished.", "tasks", len(a.config.Tasks))
	return nil
}
