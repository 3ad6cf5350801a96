package configurator

import (
	"context"
	"fmt"

	"github.com/specialistvlad/buildwire/internal/ctxlog"
	"github.com/specialistvlad/buildwire/internal/fsutil"
	"github.com/specialistvlad/buildwire/internal/project"
)

// CleanTaskName is the name of the task registered by RegisterCleanTask.
const CleanTaskName = "clean"

// CleanTask deletes a project's build directory. The directory is read when
// the task executes, not when it is registered.
type CleanTask struct {
	target *project.Project
}

// NewCleanTask returns a task deleting target's build directory.
func NewCleanTask(target *project.Project) *CleanTask {
	return &CleanTask{target: target}
}

func (t *CleanTask) Name() string { return CleanTaskName }
func (t *CleanTask) Kind() string { return "delete" }

// Execute implements project.Executable. An absent directory is up to date.
func (t *CleanTask) Execute(ctx context.Context) error {
	logger := ctxlog.FromContext(ctx)
	dir := t.target.BuildDir

	removed, err := fsutil.RemoveTree(dir)
	if err != nil {
		return fmt.Errorf("unable to delete directory '%s': %w", dir, err)
	}
	if !removed {
		logger.Info("Nothing to clean.", "dir", dir)
		return nil
	}
	logger.Info("Build directory deleted.", "dir", dir)
	return nil
}
