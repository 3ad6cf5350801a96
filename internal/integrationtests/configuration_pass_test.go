package integration_tests

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/specialistvlad/buildwire/internal/configurator"
	"github.com/specialistvlad/buildwire/internal/jvm"
	"github.com/specialistvlad/buildwire/internal/testutil"
	"github.com/stretchr/testify/require"
)

func TestConfigurationPass_ProjAppLib(t *testing.T) {
	files := map[string]string{
		"proj/settings.hcl": `
			workspace "proj" {
				build_dir = "proj_build"
			}
			configure {
				output_root = "."
				primary     = "app"
			}
			project "app" {}
			project "lib" {}
		`,
	}

	result := testutil.RunIntegrationTest(t, files, testutil.WithWorkspacePath("proj"))
	require.NoError(t, result.Err)

	shared := filepath.Join(result.Dir, "proj", "proj_build")
	res := result.App.Result()
	require.Equal(t, shared, res.OutputRoot)
	require.Equal(t, []configurator.Constraint{
		{Project: ":app", After: ":app"},
		{Project: ":lib", After: ":app"},
	}, res.Constraints)

	require.Equal(t, shared, testutil.Project(t, result, ":").BuildDir)
	require.Equal(t, filepath.Join(shared, "app"), testutil.Project(t, result, ":app").BuildDir)
	require.Equal(t, filepath.Join(shared, "lib"), testutil.Project(t, result, ":lib").BuildDir)
}

func TestConfigurationPass_DefaultOutputRoot(t *testing.T) {
	files := map[string]string{
		"repo/android/main.hcl": `
			workspace "android" {}
			project "app" {}
		`,
	}

	result := testutil.RunIntegrationTest(t, files, testutil.WithWorkspacePath("repo/android"))
	require.NoError(t, result.Err)

	// <root>/build/../../build
	shared := filepath.Join(result.Dir, "repo", "build")
	require.Equal(t, shared, result.App.Result().OutputRoot)
	require.Equal(t, filepath.Join(shared, "app"), testutil.Project(t, result, ":app").BuildDir)
}

func TestConfigurationPass_PrimaryEvaluatesFirst(t *testing.T) {
	files := map[string]string{
		"main.hcl": `
			workspace "proj" {}
			configure {
				primary = project.zeta
			}
			project "alpha" {}
			project "zeta" {}
			project "beta" {}
		`,
	}

	result := testutil.RunIntegrationTest(t, files)
	require.NoError(t, result.Err)

	var evaluated []string
	for _, line := range strings.Split(result.LogOutput, "\n") {
		if !strings.Contains(line, `msg="Project evaluated."`) {
			continue
		}
		// Nested evaluations carry the outer project too; the innermost is last.
		var path string
		for _, field := range strings.Fields(line) {
			if p, ok := strings.CutPrefix(field, "project="); ok {
				path = p
			}
		}
		evaluated = append(evaluated, path)
	}
	require.Equal(t, []string{":zeta", ":", ":alpha", ":beta"}, evaluated)
}

func TestConfigurationPass_NormalizesCompilerTarget(t *testing.T) {
	files := map[string]string{
		"main.hcl": `
			workspace "proj" {}
			configure {
				primary    = project.app
				jvm_target = 17
			}
			project "app" {
				plugins = ["com.android.application", "org.jetbrains.kotlin.android"]
				android {
					compile_options {
						source_compatibility = "JavaVersion.VERSION_1_8"
						target_compatibility = "JavaVersion.VERSION_1_8"
					}
				}
				kotlin {
					jvm_target = "1.8"
				}
			}
			project "feature" {
				plugins = ["com.android.library", "org.jetbrains.kotlin.android"]
				android {
					compile_options {
						source_compatibility = 11
						target_compatibility = 11
					}
				}
				kotlin {
					jvm_target = 11
				}
			}
			project "assets" {
				plugins = ["com.android.asset-pack"]
				android {
					delivery_type = "install-time"
				}
			}
			project "server" {
				plugins = ["java-library", "org.jetbrains.kotlin.jvm"]
			}
		`,
	}

	result := testutil.RunIntegrationTest(t, files)
	require.NoError(t, result.Err, "a subproject without compile options must not fail the build")

	testutil.AssertCompileOptions(t, result, ":app", jvm.Version17, jvm.Version17)
	testutil.AssertCompileOptions(t, result, ":feature", jvm.Version17, jvm.Version17)
	testutil.AssertKotlinTargets(t, result, ":app", jvm.Version17)
	testutil.AssertKotlinTargets(t, result, ":feature", jvm.Version17)
	testutil.AssertKotlinTargets(t, result, ":server", jvm.Version17)

	failures := result.App.Result().Failures
	require.Len(t, failures, 1)
	require.Equal(t, ":assets", failures[0].Project)
	require.Contains(t, result.LogOutput, "Failed to set compileOptions for assets:")
	require.Contains(t, result.LogOutput, "level=WARN")
}

func TestConfigurationPass_Describe(t *testing.T) {
	files := map[string]string{
		"main.hcl": `
			workspace "proj" {}
			project "app" {
				plugins = ["org.jetbrains.kotlin.jvm"]
			}
		`,
	}

	result := testutil.RunIntegrationTest(t, files, testutil.WithDescribe())
	require.NoError(t, result.Err)
	require.Contains(t, result.Output, `project ":app" {`)
	require.Contains(t, result.Output, `task "compileKotlin" {`)
	require.Contains(t, result.Output, `task "clean" {`)
}
