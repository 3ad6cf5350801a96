package build

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/specialistvlad/buildwire/internal/ctxlog"
	"github.com/specialistvlad/buildwire/internal/project"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testContext(t *testing.T) context.Context {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(&bytes.Buffer{}, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return ctxlog.WithLogger(context.Background(), logger)
}

func newBuild(t *testing.T, children ...string) *Build {
	t.Helper()
	ctx := testContext(t)
	b, err := New(ctx, "proj", t.TempDir())
	require.NoError(t, err)
	for _, name := range children {
		_, err := b.AddProject(ctx, name)
		require.NoError(t, err)
	}
	return b
}

// recordScripts installs a script on every project that appends the
// project's path to the returned slice when it runs.
func recordScripts(b *Build) *[]string {
	var order []string
	for _, p := range b.AllProjects() {
		prev := p.Script
		p.Script = func(ctx context.Context, p *project.Project) error {
			order = append(order, p.Path.String())
			if prev != nil {
				return prev(ctx, p)
			}
			return nil
		}
	}
	return &order
}

func TestProjectLookup(t *testing.T) {
	b := newBuild(t, "app", "lib")

	p, err := b.Project(":app")
	require.NoError(t, err)
	assert.Equal(t, "app", p.Name)

	p, err = b.Project("lib")
	require.NoError(t, err)
	assert.Equal(t, "lib", p.Name)

	root, err := b.Project(":")
	require.NoError(t, err)
	assert.Same(t, b.Root(), root)

	_, err = b.Project(":nope")
	assert.ErrorIs(t, err, ErrUnknownProject)

	assert.Len(t, b.Subprojects(), 2)
	assert.Len(t, b.AllProjects(), 3)
}

func TestAddProject_Duplicate(t *testing.T) {
	b := newBuild(t, "app")
	_, err := b.AddProject(testContext(t), "app")
	require.Error(t, err)
}

func TestEvaluate_RootFirstThenGraphOrder(t *testing.T) {
	ctx := testContext(t)
	b := newBuild(t, "lib", "app", "camera")
	order := recordScripts(b)

	require.NoError(t, b.Evaluate(ctx))
	assert.Equal(t, []string{":", ":app", ":camera", ":lib"}, *order)
	for _, p := range b.AllProjects() {
		assert.Equal(t, project.Evaluated, p.State(), p.Path.String())
	}
}

func TestEvaluationDependsOn_EvaluatesTargetEagerly(t *testing.T) {
	ctx := testContext(t)
	b := newBuild(t, "lib", "app")
	order := recordScripts(b)

	lib, err := b.Project(":lib")
	require.NoError(t, err)
	appState := project.Pending

	rootScript := b.Root().Script
	b.Root().Script = func(ctx context.Context, p *project.Project) error {
		if err := rootScript(ctx, p); err != nil {
			return err
		}
		if err := b.EvaluationDependsOn(ctx, lib, ":app"); err != nil {
			return err
		}
		app, _ := b.Project(":app")
		appState = app.State()
		return nil
	}

	require.NoError(t, b.Evaluate(ctx))
	assert.Equal(t, project.Evaluated, appState, "target must be evaluated by the time the call returns")
	assert.Equal(t, []string{":", ":app", ":lib"}, *order)
}

func TestEvaluationDependsOn_UnknownTarget(t *testing.T) {
	ctx := testContext(t)
	b := newBuild(t, "lib")
	lib, _ := b.Project(":lib")

	err := b.EvaluationDependsOn(ctx, lib, ":app")
	require.ErrorIs(t, err, ErrUnknownProject)
}

func TestEvaluationDependsOn_SelfIsHarmless(t *testing.T) {
	ctx := testContext(t)
	b := newBuild(t, "app")
	app, _ := b.Project(":app")

	require.NoError(t, b.EvaluationDependsOn(ctx, app, ":app"))
	assert.Equal(t, project.Evaluated, app.State())
	require.NoError(t, b.Evaluate(ctx))
}

func TestEvaluate_CycleIsFatal(t *testing.T) {
	ctx := testContext(t)
	b := newBuild(t, "a", "b")
	a, _ := b.Project(":a")
	bp, _ := b.Project(":b")
	require.NoError(t, b.Graph().AddDependency(ctx, a.Path, bp.Path))
	require.NoError(t, b.Graph().AddDependency(ctx, bp.Path, a.Path))

	err := b.Evaluate(ctx)
	require.Error(t, err)
}

func TestEvaluate_ScriptErrorIsFatal(t *testing.T) {
	ctx := testContext(t)
	b := newBuild(t, "app")
	app, _ := b.Project(":app")
	boom := errors.New("boom")
	app.Script = func(context.Context, *project.Project) error { return boom }

	err := b.Evaluate(ctx)
	require.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "a problem occurred evaluating project ':app'")
}

func TestEvaluate_AfterEvaluateHooksFire(t *testing.T) {
	ctx := testContext(t)
	b := newBuild(t, "app")
	app, _ := b.Project(":app")

	fired := 0
	require.NoError(t, app.AfterEvaluate(func(context.Context) error {
		fired++
		return nil
	}))

	require.NoError(t, b.Evaluate(ctx))
	require.NoError(t, b.Evaluate(ctx))
	assert.Equal(t, 1, fired)
}
