package build

import (
	"context"
	"errors"
	"fmt"

	"github.com/specialistvlad/buildwire/internal/ctxlog"
	"github.com/specialistvlad/buildwire/internal/graph"
	"github.com/specialistvlad/buildwire/internal/project"
	"github.com/specialistvlad/buildwire/internal/projectpath"
)

var (
	// ErrUnknownProject is returned when a path does not name a project.
	ErrUnknownProject = errors.New("project not found")
	// ErrEvaluationCycle is returned when a project's prerequisites lead back
	// to a project that is still being evaluated.
	ErrEvaluationCycle = errors.New("circular evaluation detected")
)

// Build owns one project tree and the order in which it is configured.
type Build struct {
	root     *project.Project
	graph    graph.Store
	projects map[string]*project.Project
}

// New creates a build whose root project is named rootName and lives in
// rootDir.
func New(ctx context.Context, rootName, rootDir string) (*Build, error) {
	root := project.NewRoot(rootName, rootDir)
	b := &Build{
		root:     root,
		graph:    graph.NewMemoryStore(),
		projects: map[string]*project.Project{root.Path.String(): root},
	}
	if err := b.graph.AddNode(ctx, root.Path); err != nil {
		return nil, err
	}
	return b, nil
}

// Root returns the root project.
func (b *Build) Root() *project.Project {
	return b.root
}

// AddProject declares a subproject of the root.
func (b *Build) AddProject(ctx context.Context, name string) (*project.Project, error) {
	p, err := b.root.AddChild(name)
	if err != nil {
		return nil, err
	}
	if err := b.graph.AddNode(ctx, p.Path); err != nil {
		return nil, err
	}
	b.projects[p.Path.String()] = p
	ctxlog.FromContext(ctx).Debug("Project declared.", "project", p.Path.String(), "dir", p.Dir)
	return p, nil
}

// Project looks up a project by path (":app") or bare name ("app").
func (b *Build) Project(path string) (*project.Project, error) {
	parsed, err := projectpath.Parse(path)
	if err != nil {
		return nil, err
	}
	p, ok := b.projects[parsed.String()]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownProject, parsed)
	}
	return p, nil
}

// Subprojects returns every project except the root, in declaration order.
func (b *Build) Subprojects() []*project.Project {
	return b.root.Children()
}

// AllProjects returns the root followed by its subprojects.
func (b *Build) AllProjects() []*project.Project {
	return append([]*project.Project{b.root}, b.root.Children()...)
}

// Graph exposes the evaluation-order constraints recorded so far.
func (b *Build) Graph() graph.Store {
	return b.graph
}
