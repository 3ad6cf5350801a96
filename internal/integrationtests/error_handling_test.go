package integration_tests

import (
	"testing"

	"github.com/specialistvlad/buildwire/internal/build"
	"github.com/specialistvlad/buildwire/internal/configurator"
	"github.com/specialistvlad/buildwire/internal/plugins"
	"github.com/specialistvlad/buildwire/internal/testutil"
	"github.com/stretchr/testify/require"
)

func TestErrorHandling_LoadErrors(t *testing.T) {
	testCases := []struct {
		name    string
		files   map[string]string
		wantErr string
	}{
		{
			name: "duplicate workspace across files",
			files: map[string]string{
				"a.hcl": `workspace "one" {}`,
				"b.hcl": `workspace "two" {}`,
			},
			wantErr: `Duplicate "workspace" block`,
		},
		{
			name: "duplicate configure",
			files: map[string]string{
				"main.hcl": `
					workspace "proj" {}
					configure {}
					configure {}
				`,
			},
			wantErr: `Duplicate "configure" block`,
		},
		{
			name: "duplicate project",
			files: map[string]string{
				"main.hcl": `
					workspace "proj" {}
					project "app" {}
				`,
				"app/main.hcl": `project "app" {}`,
			},
			wantErr: `Duplicate project "app"`,
		},
		{
			name:    "missing workspace",
			files:   map[string]string{"main.hcl": `project "app" {}`},
			wantErr: "Missing workspace block",
		},
		{
			name: "invalid jvm target",
			files: map[string]string{
				"main.hcl": `
					workspace "proj" {}
					configure {
						jvm_target = "seventeen"
					}
				`,
			},
			wantErr: "Invalid Java version",
		},
		{
			name: "unknown repository",
			files: map[string]string{
				"main.hcl": `
					workspace "proj" {}
					configure {
						repositories = ["jcenter"]
					}
				`,
			},
			wantErr: `Repository "jcenter" is not known.`,
		},
		{
			name: "invalid project name",
			files: map[string]string{
				"main.hcl": `
					workspace "proj" {}
					project "a:b" {}
				`,
			},
			wantErr: "Invalid project name",
		},
		{
			name: "unsupported attribute",
			files: map[string]string{
				"main.hcl": `
					workspace "proj" {}
					project "app" {
						flavor = "free"
					}
				`,
			},
			wantErr: "Unsupported argument",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			result := testutil.RunIntegrationTest(t, tc.files)
			require.Error(t, result.Err)
			require.Contains(t, result.Err.Error(), "failed to")
			require.Contains(t, result.Err.Error(), tc.wantErr)
			require.Nil(t, result.App.Build())
		})
	}
}

func TestErrorHandling_EvaluationErrors(t *testing.T) {
	testCases := []struct {
		name     string
		hcl      string
		wantIs   error
		wantText string
	}{
		{
			name: "missing primary",
			hcl: `
				workspace "proj" {}
				configure {
					primary = project.app
				}
				project "lib" {}
			`,
			wantIs:   configurator.ErrPrimaryNotFound,
			wantText: "a problem occurred evaluating project ':'",
		},
		{
			name: "unknown plugin",
			hcl: `
				workspace "proj" {}
				project "app" {
					plugins = ["com.example.missing"]
				}
			`,
			wantIs:   plugins.ErrUnknownPlugin,
			wantText: "a problem occurred evaluating project ':app'",
		},
		{
			name: "kotlin block without kotlin plugin",
			hcl: `
				workspace "proj" {}
				project "app" {
					plugins = ["com.android.application"]
					kotlin {
						jvm_target = 17
					}
				}
			`,
			wantText: `Blocks of type "kotlin" are not expected here.`,
		},
		{
			name: "android block without android plugin",
			hcl: `
				workspace "proj" {}
				project "app" {
					plugins = ["java-library"]
					android {
						namespace = "com.example"
					}
				}
			`,
			wantText: `Blocks of type "android" are not expected here.`,
		},
		{
			name: "compile options on asset pack",
			hcl: `
				workspace "proj" {}
				project "assets" {
					plugins = ["com.android.asset-pack"]
					android {
						compile_options {
							target_compatibility = 17
						}
					}
				}
			`,
			wantText: `Blocks of type "compile_options" are not expected here.`,
		},
		{
			name: "two android plugins",
			hcl: `
				workspace "proj" {}
				project "app" {
					plugins = ["com.android.application", "com.android.library"]
				}
			`,
			wantText: "already has an Android plugin applied",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			result := testutil.RunIntegrationTest(t, map[string]string{"main.hcl": tc.hcl})
			require.Error(t, result.Err)
			require.Contains(t, result.Err.Error(), "build configuration failed")
			require.Contains(t, result.Err.Error(), tc.wantText)
			if tc.wantIs != nil {
				require.ErrorIs(t, result.Err, tc.wantIs)
			}
		})
	}
}

func TestErrorHandling_TaskErrors(t *testing.T) {
	files := map[string]string{
		"main.hcl": `
			workspace "proj" {}
			project "app" {
				plugins = ["org.jetbrains.kotlin.jvm"]
			}
		`,
	}

	result := testutil.RunIntegrationTest(t, files, testutil.WithTasks("compileKotlin"))
	require.ErrorIs(t, result.Err, build.ErrNotExecutable)

	result = testutil.RunIntegrationTest(t, files, testutil.WithTasks(":lib:clean"))
	require.ErrorIs(t, result.Err, build.ErrUnknownProject)
}
