package testutil

import (
	"testing"

	"github.com/specialistvlad/buildwire/internal/jvm"
	"github.com/specialistvlad/buildwire/internal/plugins"
	"github.com/specialistvlad/buildwire/internal/project"
	"github.com/stretchr/testify/require"
)

// Project returns the project at path from a successful run.
func Project(t *testing.T, result *HarnessResult, path string) *project.Project {
	t.Helper()
	require.NotNil(t, result.App, "App should not be nil")
	require.NotNil(t, result.App.Build(), "Build should not be nil on successful load")
	p, err := result.App.Build().Project(path)
	require.NoError(t, err)
	return p
}

// AssertCompileOptions checks the source and target compatibility exposed by
// the project's android extension.
func AssertCompileOptions(t *testing.T, result *HarnessResult, path string, source, target jvm.Version) {
	t.Helper()
	p := Project(t, result, path)
	ext, ok := p.Extensions.FindByName(plugins.AndroidExtensionName)
	require.True(t, ok, "%s has no android extension", path)
	provider, ok := ext.(jvm.CompileOptionsProvider)
	require.True(t, ok, "%s android extension %T has no compile options", path, ext)
	opts, err := provider.CompileOptions()
	require.NoError(t, err)
	require.Equal(t, source.String(), opts.SourceCompatibility().String(), "%s source compatibility", path)
	require.Equal(t, target.String(), opts.TargetCompatibility().String(), "%s target compatibility", path)
}

// AssertKotlinTargets checks every Kotlin compile task of the project.
func AssertKotlinTargets(t *testing.T, result *HarnessResult, path string, want jvm.Version) {
	t.Helper()
	p := Project(t, result, path)
	tasks := project.WithType[*jvm.KotlinCompile](p.Tasks)
	require.NotEmpty(t, tasks, "%s has no Kotlin compile tasks", path)
	for _, task := range tasks {
		require.Equal(t, want.String(), task.JvmTarget.String(), "%s:%s jvm target", path, task.Name())
	}
}
