package configurator

import (
	"context"
	"fmt"
	"path/filepath"
	"slices"

	"github.com/specialistvlad/buildwire/internal/build"
	"github.com/specialistvlad/buildwire/internal/ctxlog"
	"github.com/specialistvlad/buildwire/internal/jvm"
	"github.com/specialistvlad/buildwire/internal/project"
)

// Constraint is a recorded evaluation-order requirement.
type Constraint struct {
	Project string
	After   string
}

// Failure is a subproject whose compile options could not be normalized.
type Failure struct {
	Project string
	Err     error
}

// Result summarizes a configuration pass. Failures keep accumulating while
// deferred normalization actions fire during evaluation.
type Result struct {
	OutputRoot  string
	Constraints []Constraint
	Failures    []Failure
}

// Configurator runs the configuration pass for one build.
type Configurator struct {
	opts Options

	outputRoot string
	result     Result
}

// New validates opts and returns a configurator for a single pass.
func New(opts Options) (*Configurator, error) {
	opts = opts.withDefaults()
	if err := opts.validate(); err != nil {
		return nil, err
	}
	return &Configurator{opts: opts}, nil
}

// Options returns the effective options, defaults included.
func (c *Configurator) Options() Options {
	return c.opts
}

// Result returns a snapshot of what the pass has done so far.
func (c *Configurator) Result() Result {
	return Result{
		OutputRoot:  c.result.OutputRoot,
		Constraints: slices.Clone(c.result.Constraints),
		Failures:    slices.Clone(c.result.Failures),
	}
}

// Install makes the pass part of b's root project script, after whatever the
// root script already does.
func (c *Configurator) Install(b *build.Build) {
	root := b.Root()
	prev := root.Script
	root.Script = func(ctx context.Context, p *project.Project) error {
		if prev != nil {
			if err := prev(ctx, p); err != nil {
				return err
			}
		}
		return c.Configure(ctx, b)
	}
}

// Configure runs steps (a) to (e) in order against b.
func (c *Configurator) Configure(ctx context.Context, b *build.Build) error {
	logger := ctxlog.FromContext(ctx)
	root := b.Root()
	children := b.Subprojects()

	if err := c.RegisterRepositories(ctx, b.AllProjects()); err != nil {
		return err
	}
	c.RedirectOutputs(ctx, root, children)
	if err := c.DeclareEvaluationOrder(ctx, b, children, c.opts.Primary); err != nil {
		return err
	}
	if err := c.RegisterCleanTask(ctx, root); err != nil {
		return err
	}
	if err := c.NormalizeCompilerTarget(ctx, children, c.opts.JvmTarget); err != nil {
		return err
	}

	logger.Info("Build graph configured.",
		"output_root", c.outputRoot,
		"primary", c.opts.Primary,
		"jvm_target", c.opts.JvmTarget.String(),
		"subprojects", len(children),
	)
	return nil
}

// RegisterRepositories adds the configured repositories to every project.
// Repositories a project already has are not added twice.
func (c *Configurator) RegisterRepositories(ctx context.Context, projects []*project.Project) error {
	repos := make([]project.Repository, 0, len(c.opts.Repositories))
	for _, name := range c.opts.Repositories {
		repo, ok := KnownRepositories[name]
		if !ok {
			return fmt.Errorf("%w: '%s'", ErrUnknownRepository, name)
		}
		repos = append(repos, repo)
	}
	for _, p := range projects {
		for _, repo := range repos {
			if !slices.Contains(p.Repositories, repo) {
				p.Repositories = append(p.Repositories, repo)
			}
		}
	}
	ctxlog.FromContext(ctx).Debug("Repositories registered.", "repositories", c.opts.Repositories, "projects", len(projects))
	return nil
}

// RedirectOutputs moves the root build directory to the shared output root
// and every child's build directory to <output root>/<child name>. The
// shared root is derived from the root's original build directory the first
// time and reused afterwards, so repeated calls yield the same paths.
func (c *Configurator) RedirectOutputs(ctx context.Context, root *project.Project, children []*project.Project) string {
	if c.outputRoot == "" {
		c.outputRoot = filepath.Clean(filepath.Join(root.BuildDir, c.opts.OutputRoot))
		c.result.OutputRoot = c.outputRoot
	}
	root.BuildDir = c.outputRoot
	for _, child := range children {
		child.BuildDir = filepath.Join(c.outputRoot, child.Name)
	}
	ctxlog.FromContext(ctx).Debug("Build outputs redirected.", "output_root", c.outputRoot, "subprojects", len(children))
	return c.outputRoot
}

// DeclareEvaluationOrder requires every child to be evaluated after the
// child named primaryName. The primary's constraint on itself is recorded
// and has no effect on ordering. With no children and no primary there is
// nothing to order.
func (c *Configurator) DeclareEvaluationOrder(ctx context.Context, b *build.Build, children []*project.Project, primaryName string) error {
	if primaryName == "" {
		if len(children) == 0 {
			ctxlog.FromContext(ctx).Debug("No subprojects, evaluation order unconstrained.")
			return nil
		}
		return fmt.Errorf("%w: no primary subproject configured", ErrPrimaryNotFound)
	}

	var primary *project.Project
	for _, child := range children {
		if child.Name == primaryName || child.Path.String() == primaryName {
			primary = child
			break
		}
	}
	if primary == nil {
		return fmt.Errorf("%w: no subproject named '%s'", ErrPrimaryNotFound, primaryName)
	}

	for _, child := range children {
		if err := b.EvaluationDependsOn(ctx, child, primary.Path.String()); err != nil {
			return err
		}
		c.result.Constraints = append(c.result.Constraints, Constraint{
			Project: child.Path.String(),
			After:   primary.Path.String(),
		})
	}
	return nil
}

// RegisterCleanTask registers the root `clean` task.
func (c *Configurator) RegisterCleanTask(ctx context.Context, root *project.Project) error {
	if err := root.Tasks.Register(NewCleanTask(root)); err != nil {
		return err
	}
	ctxlog.FromContext(ctx).Debug("Clean task registered.", "task", ":"+CleanTaskName)
	return nil
}

// NormalizeCompilerTarget sets source and target compatibility of every
// child exposing the capability to version, once that child is evaluated,
// and forces the JVM target of every compile task to version.
func (c *Configurator) NormalizeCompilerTarget(ctx context.Context, children []*project.Project, version jvm.Version) error {
	forceTarget := func(t jvm.CompileTask) { t.SetTargetVersion(version) }

	for _, child := range children {
		project.ConfigureEach(child.Tasks, forceTarget)
		err := child.WhenEvaluated(ctx, func(ctx context.Context) error {
			c.configureCompileOptions(ctx, child, version)
			// Project scripts may override targets while evaluating.
			for _, task := range project.WithType[jvm.CompileTask](child.Tasks) {
				forceTarget(task)
			}
			return nil
		})
		if err != nil {
			return err
		}
	}
	return nil
}

func (c *Configurator) configureCompileOptions(ctx context.Context, p *project.Project, version jvm.Version) {
	logger := ctxlog.FromContext(ctx)

	ext, ok := p.Extensions.FindByName(c.opts.Capability)
	if !ok {
		logger.Debug("No compile options capability, skipping.", "capability", c.opts.Capability)
		return
	}

	if err := setCompileOptions(c.opts.Capability, ext, version); err != nil {
		logger.Warn(fmt.Sprintf("Failed to set compileOptions for %s: %v", p.Name, err))
		c.result.Failures = append(c.result.Failures, Failure{Project: p.Path.String(), Err: err})
		return
	}
	logger.Debug("Compile options normalized.", "source", version.String(), "target", version.String())
}

func setCompileOptions(capability string, ext any, version jvm.Version) error {
	provider, ok := ext.(jvm.CompileOptionsProvider)
	if !ok {
		return fmt.Errorf("extension '%s' (%T) does not expose compile options", capability, ext)
	}
	opts, err := provider.CompileOptions()
	if err != nil {
		return err
	}
	if opts == nil {
		return fmt.Errorf("extension '%s' returned no compile options", capability)
	}
	if err := opts.SetSourceCompatibility(version); err != nil {
		return fmt.Errorf("set source compatibility: %w", err)
	}
	if err := opts.SetTargetCompatibility(version); err != nil {
		return fmt.Errorf("set target compatibility: %w", err)
	}
	return nil
}
