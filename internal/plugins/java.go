package plugins

import (
	"context"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/specialistvlad/buildwire/internal/jvm"
	"github.com/specialistvlad/buildwire/internal/project"
)

// Plugin ids registered by JavaModule.
const (
	JavaLibrary = "java-library"
)

// JavaExtensionName is the name of the extension added by JavaLibrary.
const JavaExtensionName = "java"

// JavaExtension configures plain JVM library projects.
type JavaExtension struct {
	compileOptions *jvm.CompileOptions
}

// CompileOptions implements jvm.CompileOptionsProvider.
func (e *JavaExtension) CompileOptions() (*jvm.CompileOptions, error) {
	return e.compileOptions, nil
}

// Configure implements Configurable. The block takes the same versions as
// `android.compile_options`.
func (e *JavaExtension) Configure(body hcl.Body) hcl.Diagnostics {
	var cfg compileOptionsConfig
	diags := gohcl.DecodeBody(body, nil, &cfg)
	if diags.HasErrors() {
		return diags
	}
	return append(diags, cfg.applyTo(e.compileOptions)...)
}

// JavaModule registers the Java plugins.
type JavaModule struct{}

// Register implements Module.
func (m *JavaModule) Register(r *Registry) {
	r.Register(JavaLibrary, PluginFunc(func(ctx context.Context, p *project.Project) error {
		ext := &JavaExtension{compileOptions: jvm.NewCompileOptions(jvm.Version11, jvm.Version11)}
		if err := p.Extensions.Add(JavaExtensionName, ext); err != nil {
			return err
		}
		return p.Tasks.Register(jvm.NewJavaCompile("compileJava", ext.compileOptions))
	}))
}
