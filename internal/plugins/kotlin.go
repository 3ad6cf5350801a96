package plugins

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/specialistvlad/buildwire/internal/jvm"
	"github.com/specialistvlad/buildwire/internal/project"
)

// Plugin ids registered by KotlinModule.
const (
	KotlinAndroid = "org.jetbrains.kotlin.android"
	KotlinJVM     = "org.jetbrains.kotlin.jvm"
)

// KotlinExtensionName is the name of the extension added by the Kotlin plugins.
const KotlinExtensionName = "kotlin"

// defaultKotlinJvmTarget is the target Kotlin compile tasks start with.
const defaultKotlinJvmTarget = jvm.Version1_8

// KotlinExtension is the "kotlin" extension. Its settings apply to every
// Kotlin compile task the project has when it is configured.
type KotlinExtension struct {
	tasks *project.TaskContainer
}

type kotlinConfig struct {
	JvmTarget *hcl.Attribute `hcl:"jvm_target,optional"`
}

// Configure implements Configurable.
func (e *KotlinExtension) Configure(body hcl.Body) hcl.Diagnostics {
	var cfg kotlinConfig
	diags := gohcl.DecodeBody(body, nil, &cfg)
	if diags.HasErrors() {
		return diags
	}
	target, vDiags := jvm.DecodeVersion(cfg.JvmTarget)
	diags = append(diags, vDiags...)
	if vDiags.HasErrors() || !target.IsSet() {
		return diags
	}
	for _, task := range project.WithType[*jvm.KotlinCompile](e.tasks) {
		task.JvmTarget = target
	}
	return diags
}

// KotlinModule registers the Kotlin plugins.
type KotlinModule struct{}

// Register implements Module.
func (m *KotlinModule) Register(r *Registry) {
	r.Register(KotlinAndroid, PluginFunc(applyKotlinAndroid))
	r.Register(KotlinJVM, PluginFunc(func(ctx context.Context, p *project.Project) error {
		return registerKotlinCompile(p, "compileKotlin", "compileTestKotlin")
	}))
}

func applyKotlinAndroid(ctx context.Context, p *project.Project) error {
	ext, ok := p.Extensions.FindByName(AndroidExtensionName)
	if !ok {
		return fmt.Errorf("the '%s' plugin requires an Android plugin to be applied first", KotlinAndroid)
	}
	if _, isCode := ext.(*AndroidExtension); !isCode {
		return fmt.Errorf("the '%s' plugin cannot be applied to a module without code", KotlinAndroid)
	}

	names := make([]string, 0, len(androidVariants))
	for _, variant := range androidVariants {
		names = append(names, "compile"+variant+"Kotlin")
	}
	return registerKotlinCompile(p, names...)
}

func registerKotlinCompile(p *project.Project, names ...string) error {
	if _, exists := p.Extensions.FindByName(KotlinExtensionName); !exists {
		if err := p.Extensions.Add(KotlinExtensionName, &KotlinExtension{tasks: p.Tasks}); err != nil {
			return err
		}
	}
	for _, name := range names {
		if err := p.Tasks.Register(jvm.NewKotlinCompile(name, defaultKotlinJvmTarget)); err != nil {
			return err
		}
	}
	return nil
}
