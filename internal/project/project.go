package project

import (
	"context"
	"fmt"
	"path/filepath"
	"slices"

	"github.com/specialistvlad/buildwire/internal/projectpath"
)

// DefaultBuildDirName is the output directory of a project whose build
// directory has not been configured.
const DefaultBuildDirName = "build"

// Script is the configuration logic of a project. It runs once, while the
// project is being evaluated.
type Script func(ctx context.Context, p *Project) error

// Repository is a source of external artifacts.
type Repository struct {
	Name string
	URL  string
}

// Project is one node of the build tree. The root project exclusively owns
// its children.
type Project struct {
	Name     string
	Path     projectpath.Path
	Dir      string
	BuildDir string

	Extensions   *ExtensionContainer
	Tasks        *TaskContainer
	Repositories []Repository

	// Script is run by the build host during evaluation. May be nil.
	Script Script

	parent   *Project
	children []*Project
	byName   map[string]*Project
	plugins  []string

	lifecycle
}

func newProject(name string, path projectpath.Path, dir string, parent *Project) *Project {
	return &Project{
		Name:       name,
		Path:       path,
		Dir:        dir,
		BuildDir:   filepath.Join(dir, DefaultBuildDirName),
		Extensions: NewExtensionContainer(),
		Tasks:      NewTaskContainer(),
		parent:     parent,
		byName:     make(map[string]*Project),
	}
}

// NewRoot creates the root project of a build rooted at dir.
func NewRoot(name, dir string) *Project {
	return newProject(name, projectpath.Root(), dir, nil)
}

// AddChild creates a child project in the directory <p.Dir>/<name>.
func (p *Project) AddChild(name string) (*Project, error) {
	if err := projectpath.ValidateName(name); err != nil {
		return nil, err
	}
	if _, exists := p.byName[name]; exists {
		return nil, fmt.Errorf("project %q already exists in %s", name, p.Path)
	}
	child := newProject(name, p.Path.Child(name), filepath.Join(p.Dir, name), p)
	p.children = append(p.children, child)
	p.byName[name] = child
	return child, nil
}

// Child returns the direct child named name.
func (p *Project) Child(name string) (*Project, bool) {
	c, ok := p.byName[name]
	return c, ok
}

// Children returns direct children in declaration order.
func (p *Project) Children() []*Project {
	return append([]*Project(nil), p.children...)
}

// IsRoot reports whether p is the root of its build tree.
func (p *Project) IsRoot() bool {
	return p.parent == nil
}

// RecordPlugin notes that the plugin id has been applied. It returns false
// if it was already applied, in which case the caller must not apply it again.
func (p *Project) RecordPlugin(id string) bool {
	if slices.Contains(p.plugins, id) {
		return false
	}
	p.plugins = append(p.plugins, id)
	return true
}

// Plugins returns applied plugin ids in application order.
func (p *Project) Plugins() []string {
	return slices.Clone(p.plugins)
}

// String implements fmt.Stringer.
func (p *Project) String() string {
	return fmt.Sprintf("project '%s'", p.Path)
}
