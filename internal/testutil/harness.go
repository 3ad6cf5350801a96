package testutil

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/specialistvlad/buildwire/internal/app"
	"github.com/specialistvlad/buildwire/internal/plugins"
	"github.com/stretchr/testify/require"
)

// HarnessResult holds the outcomes of an integration test run.
type HarnessResult struct {
	LogOutput string
	Output    string // build description
	Err       error
	App       *app.App
	// Dir is the temporary root the files were written to.
	Dir string
}

// Option adjusts the app configuration used by the harness.
type Option func(cfg *app.Config)

// WithTasks runs the given task selectors after evaluation.
func WithTasks(tasks ...string) Option {
	return func(cfg *app.Config) { cfg.Tasks = tasks }
}

// WithDescribe writes the effective configuration to the result output.
func WithDescribe() Option {
	return func(cfg *app.Config) { cfg.Describe = true }
}

// WithWorkspacePath points the app at a path relative to the temporary
// root instead of the root itself.
func WithWorkspacePath(rel string) Option {
	return func(cfg *app.Config) { cfg.WorkspacePath = rel }
}

// WriteFiles writes every file into a fresh temporary directory and returns
// it. Names are slash separated paths relative to that directory.
func WriteFiles(t *testing.T, files map[string]string) string {
	t.Helper()
	tmpDir := t.TempDir()
	for name, content := range files {
		filePath := filepath.Join(tmpDir, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(filePath), 0o755))
		require.NoError(t, os.WriteFile(filePath, []byte(content), 0o644))
	}
	return tmpDir
}

// RunIntegrationTest provides a standardized harness for running integration
// tests using a default background context and the built-in plugins.
func RunIntegrationTest(t *testing.T, files map[string]string, opts ...Option) *HarnessResult {
	t.Helper()
	return RunIntegrationTestWithContext(context.Background(), t, files, nil, opts...)
}

// RunIntegrationTestWithContext runs a full app lifecycle against files. A
// nil modules slice selects the built-in plugins.
func RunIntegrationTestWithContext(ctx context.Context, t *testing.T, files map[string]string, modules []plugins.Module, opts ...Option) *HarnessResult {
	t.Helper()

	tmpDir := WriteFiles(t, files)

	cfg := app.Config{
		WorkspacePath: tmpDir,
		LogLevel:      "debug",
		LogFormat:     "text",
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if !filepath.IsAbs(cfg.WorkspacePath) {
		cfg.WorkspacePath = filepath.Join(tmpDir, cfg.WorkspacePath)
	}
	appConfig, err := app.NewConfig(cfg)
	require.NoError(t, err)

	logBuffer, outBuffer := &SafeBuffer{}, &SafeBuffer{}
	testApp := app.NewApp(outBuffer, logBuffer, appConfig, modules...)
	runErr := testApp.Run(ctx)

	if os.Getenv("BUILDWIRE_TEST_LOGS") == "true" {
		t.Logf("--- Full Log Output for %s ---\n%s", t.Name(), logBuffer.String())
	}

	return &HarnessResult{
		LogOutput: logBuffer.String(),
		Output:    outBuffer.String(),
		Err:       runErr,
		App:       testApp,
		Dir:       tmpDir,
	}
}
