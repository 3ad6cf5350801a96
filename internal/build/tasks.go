package build

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/specialistvlad/buildwire/internal/ctxlog"
	"github.com/specialistvlad/buildwire/internal/project"
	"github.com/specialistvlad/buildwire/internal/projectpath"
)

var (
	// ErrUnknownTask is returned when a selector matches no task.
	ErrUnknownTask = errors.New("task not found")
	// ErrNotExecutable is returned for tasks that only carry configuration.
	ErrNotExecutable = errors.New("task is not executable")
	// ErrNotConfigured is returned when tasks are requested before the build
	// has been evaluated.
	ErrNotConfigured = errors.New("build has not been evaluated")
)

// RunTask executes the tasks matched by selector. A qualified selector
// (":clean", ":app:clean") names exactly one task; a bare name ("clean")
// runs that task in every project that has it, root first.
func (b *Build) RunTask(ctx context.Context, selector string) error {
	tasks, err := b.resolveTasks(selector)
	if err != nil {
		return err
	}

	logger := ctxlog.FromContext(ctx)
	for _, st := range tasks {
		exec, ok := st.task.(project.Executable)
		if !ok {
			return fmt.Errorf("%w: %s (%s)", ErrNotExecutable, st.path, st.task.Kind())
		}
		logger.Info("Executing task.", "task", st.path)
		if err := exec.Execute(ctx); err != nil {
			return fmt.Errorf("execution failed for task '%s': %w", st.path, err)
		}
	}
	return nil
}

type scopedTask struct {
	path string
	task project.Task
}

func taskPath(p *project.Project, name string) string {
	if p.IsRoot() {
		return projectpath.Separator + name
	}
	return p.Path.String() + projectpath.Separator + name
}

func (b *Build) resolveTasks(selector string) ([]scopedTask, error) {
	if selector == "" {
		return nil, fmt.Errorf("%w: empty task selector", ErrUnknownTask)
	}

	candidates := b.AllProjects()
	name := selector
	if i := strings.LastIndex(selector, projectpath.Separator); i >= 0 {
		projectPart, taskName := selector[:i], selector[i+1:]
		if projectPart == "" {
			projectPart = projectpath.Separator
		}
		p, err := b.Project(projectPart)
		if err != nil {
			return nil, err
		}
		candidates = []*project.Project{p}
		name = taskName
	}

	var matched []scopedTask
	for _, p := range candidates {
		if !p.Executed() {
			return nil, fmt.Errorf("%w: %s is %s", ErrNotConfigured, p, p.State())
		}
		if t, ok := p.Tasks.Named(name); ok {
			matched = append(matched, scopedTask{path: taskPath(p, name), task: t})
		}
	}
	if len(matched) == 0 {
		return nil, fmt.Errorf("%w: '%s'", ErrUnknownTask, selector)
	}
	return matched, nil
}
