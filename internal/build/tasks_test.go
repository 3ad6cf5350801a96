package build

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type runTask struct {
	name string
	err  error
	runs *[]string
	id   string
}

func (t *runTask) Name() string { return t.name }
func (t *runTask) Kind() string { return "test" }
func (t *runTask) Execute(context.Context) error {
	*t.runs = append(*t.runs, t.id)
	return t.err
}

type configOnlyTask struct{ name string }

func (t *configOnlyTask) Name() string { return t.name }
func (t *configOnlyTask) Kind() string { return "kotlin_compile" }

func evaluatedBuild(t *testing.T, runs *[]string) *Build {
	t.Helper()
	b := newBuild(t, "app", "lib")
	require.NoError(t, b.Root().Tasks.Register(&runTask{name: "clean", runs: runs, id: ":clean"}))
	app, _ := b.Project(":app")
	require.NoError(t, app.Tasks.Register(&runTask{name: "clean", runs: runs, id: ":app:clean"}))
	require.NoError(t, app.Tasks.Register(&configOnlyTask{name: "compileKotlin"}))
	require.NoError(t, b.Evaluate(testContext(t)))
	return b
}

func TestRunTask_Qualified(t *testing.T) {
	var runs []string
	b := evaluatedBuild(t, &runs)

	require.NoError(t, b.RunTask(testContext(t), ":clean"))
	assert.Equal(t, []string{":clean"}, runs)

	require.NoError(t, b.RunTask(testContext(t), ":app:clean"))
	assert.Equal(t, []string{":clean", ":app:clean"}, runs)
}

func TestRunTask_BareNameRunsEverywhere(t *testing.T) {
	var runs []string
	b := evaluatedBuild(t, &runs)

	require.NoError(t, b.RunTask(testContext(t), "clean"))
	assert.Equal(t, []string{":clean", ":app:clean"}, runs)
}

func TestRunTask_Errors(t *testing.T) {
	var runs []string
	b := evaluatedBuild(t, &runs)
	ctx := testContext(t)

	assert.ErrorIs(t, b.RunTask(ctx, "assemble"), ErrUnknownTask)
	assert.ErrorIs(t, b.RunTask(ctx, ":lib:clean"), ErrUnknownTask)
	assert.ErrorIs(t, b.RunTask(ctx, ""), ErrUnknownTask)
	assert.ErrorIs(t, b.RunTask(ctx, ":nope:clean"), ErrUnknownProject)
	assert.ErrorIs(t, b.RunTask(ctx, ":app:compileKotlin"), ErrNotExecutable)
	assert.Empty(t, runs)
}

func TestRunTask_FailurePropagates(t *testing.T) {
	var runs []string
	b := newBuild(t)
	boom := errors.New("permission denied")
	require.NoError(t, b.Root().Tasks.Register(&runTask{name: "clean", runs: &runs, id: ":clean", err: boom}))
	require.NoError(t, b.Evaluate(testContext(t)))

	err := b.RunTask(testContext(t), "clean")
	require.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "execution failed for task ':clean'")
}

func TestRunTask_RequiresEvaluation(t *testing.T) {
	var runs []string
	b := newBuild(t)
	require.NoError(t, b.Root().Tasks.Register(&runTask{name: "clean", runs: &runs, id: ":clean"}))

	assert.ErrorIs(t, b.RunTask(testContext(t), "clean"), ErrNotConfigured)
}
