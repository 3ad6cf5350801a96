package project

import (
	"context"
	"fmt"
)

// Task is a unit of build work registered on a project.
type Task interface {
	Name() string
	Kind() string
}

// Executable is a Task that can be run by the build host. Tasks that only
// carry configuration (such as compile tasks) do not implement it.
type Executable interface {
	Task
	Execute(ctx context.Context) error
}

// TaskContainer holds a project's tasks in registration order, together with
// the configuration rules that apply to tasks registered in the future.
type TaskContainer struct {
	tasks  []Task
	byName map[string]Task
	rules  []func(Task)
}

// NewTaskContainer returns an empty container.
func NewTaskContainer() *TaskContainer {
	return &TaskContainer{byName: make(map[string]Task)}
}

// Register adds t and applies every ConfigureEach rule to it.
func (c *TaskContainer) Register(t Task) error {
	if _, exists := c.byName[t.Name()]; exists {
		return fmt.Errorf("cannot add task '%s' as a task with that name already exists", t.Name())
	}
	c.tasks = append(c.tasks, t)
	c.byName[t.Name()] = t
	for _, rule := range c.rules {
		rule(t)
	}
	return nil
}

// Named returns the task registered under name.
func (c *TaskContainer) Named(name string) (Task, bool) {
	t, ok := c.byName[name]
	return t, ok
}

// All returns every task in registration order.
func (c *TaskContainer) All() []Task {
	return append([]Task(nil), c.tasks...)
}

// ConfigureEach applies fn to every task of type T already in c and to every
// task of type T registered afterwards.
func ConfigureEach[T Task](c *TaskContainer, fn func(T)) {
	rule := func(t Task) {
		if typed, ok := t.(T); ok {
			fn(typed)
		}
	}
	for _, t := range c.tasks {
		rule(t)
	}
	c.rules = append(c.rules, rule)
}

// WithType returns the tasks of type T currently in c.
func WithType[T Task](c *TaskContainer) []T {
	var out []T
	for _, t := range c.tasks {
		if typed, ok := t.(T); ok {
			out = append(out, typed)
		}
	}
	return out
}
