package build

import (
	"context"
	"fmt"

	"github.com/specialistvlad/buildwire/internal/ctxlog"
	"github.com/specialistvlad/buildwire/internal/graph"
	"github.com/specialistvlad/buildwire/internal/project"
)

// EvaluationDependsOn records that from must be evaluated after the project
// at path target, then evaluates target right away if it is still pending.
func (b *Build) EvaluationDependsOn(ctx context.Context, from *project.Project, target string) error {
	to, err := b.Project(target)
	if err != nil {
		return fmt.Errorf("%s cannot depend on the evaluation of %q: %w", from, target, err)
	}
	if err := b.graph.AddDependency(ctx, to.Path, from.Path); err != nil {
		return err
	}
	ctxlog.FromContext(ctx).Debug("Evaluation dependency recorded.", "project", from.Path.String(), "after", to.Path.String())

	if to.State() == project.Pending {
		return b.evaluate(ctx, to)
	}
	return nil
}

// Evaluate configures the whole build: the root project first, then every
// remaining project in graph order.
func (b *Build) Evaluate(ctx context.Context) error {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Evaluating build.", "projects", len(b.projects))

	if err := b.evaluate(ctx, b.root); err != nil {
		return err
	}

	order, err := graph.Order(ctx, b.graph)
	if err != nil {
		return err
	}
	for _, path := range order {
		if err := b.evaluate(ctx, b.projects[path.String()]); err != nil {
			return err
		}
	}

	logger.Info("Build configured.", "projects", len(b.projects))
	return nil
}

func (b *Build) evaluate(ctx context.Context, p *project.Project) error {
	switch p.State() {
	case project.Evaluated:
		return nil
	case project.Evaluating:
		return fmt.Errorf("%w: %s", ErrEvaluationCycle, p)
	}

	ctx = ctxlog.With(ctx, "project", p.Path.String())
	logger := ctxlog.FromContext(ctx)

	if err := p.BeginEvaluation(); err != nil {
		return err
	}

	deps, err := b.graph.DependenciesOf(ctx, p.Path)
	if err != nil {
		return err
	}
	for _, dep := range deps {
		if err := b.evaluate(ctx, b.projects[dep.String()]); err != nil {
			return fmt.Errorf("evaluating prerequisite of %s: %w", p, err)
		}
	}

	logger.Debug("Evaluating project.")
	if p.Script != nil {
		if err := p.Script(ctx, p); err != nil {
			return fmt.Errorf("a problem occurred evaluating %s: %w", p, err)
		}
	}
	if err := p.MarkEvaluated(ctx); err != nil {
		return fmt.Errorf("a problem occurred configuring %s: %w", p, err)
	}
	logger.Debug("Project evaluated.")
	return nil
}
