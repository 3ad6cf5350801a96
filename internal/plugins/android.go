package plugins

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/specialistvlad/buildwire/internal/jvm"
	"github.com/specialistvlad/buildwire/internal/project"
)

// AndroidExtensionName is the name under which Android plugins attach their
// extension.
const AndroidExtensionName = "android"

// Plugin ids registered by AndroidModule.
const (
	AndroidApplication = "com.android.application"
	AndroidLibrary     = "com.android.library"
	AndroidAssetPack   = "com.android.asset-pack"
)

// androidVariants are the build variants every Android module gets.
var androidVariants = []string{"Debug", "Release"}

// deliveryTypes are the accepted asset pack delivery modes.
var deliveryTypes = []string{"install-time", "fast-follow", "on-demand"}

// AndroidExtension is the "android" extension of application and library
// modules.
type AndroidExtension struct {
	Namespace  string
	CompileSdk int
	Library    bool // library module rather than application

	compileOptions *jvm.CompileOptions
}

type androidConfig struct {
	Namespace      *string               `hcl:"namespace,optional"`
	CompileSdk     *int                  `hcl:"compile_sdk,optional"`
	CompileOptions *compileOptionsConfig `hcl:"compile_options,block"`
}

// CompileOptions implements jvm.CompileOptionsProvider.
func (e *AndroidExtension) CompileOptions() (*jvm.CompileOptions, error) {
	return e.compileOptions, nil
}

// Configure implements Configurable.
func (e *AndroidExtension) Configure(body hcl.Body) hcl.Diagnostics {
	var cfg androidConfig
	diags := gohcl.DecodeBody(body, nil, &cfg)
	if diags.HasErrors() {
		return diags
	}
	if cfg.Namespace != nil {
		e.Namespace = *cfg.Namespace
	}
	if cfg.CompileSdk != nil {
		e.CompileSdk = *cfg.CompileSdk
	}
	if cfg.CompileOptions != nil {
		diags = append(diags, cfg.CompileOptions.applyTo(e.compileOptions)...)
	}
	return diags
}

// AssetPackExtension is the "android" extension of asset-pack modules. Asset
// packs contain no code, so it has no compile options.
type AssetPackExtension struct {
	PackName     string
	DeliveryType string
}

type assetPackConfig struct {
	PackName     *string        `hcl:"pack_name,optional"`
	DeliveryType *hcl.Attribute `hcl:"delivery_type,optional"`
}

// Configure implements Configurable.
func (e *AssetPackExtension) Configure(body hcl.Body) hcl.Diagnostics {
	var cfg assetPackConfig
	diags := gohcl.DecodeBody(body, nil, &cfg)
	if diags.HasErrors() {
		return diags
	}
	if cfg.PackName != nil {
		e.PackName = *cfg.PackName
	}
	if attr := cfg.DeliveryType; attr != nil {
		var delivery string
		diags = append(diags, gohcl.DecodeExpression(attr.Expr, nil, &delivery)...)
		if diags.HasErrors() {
			return diags
		}
		if !slices.Contains(deliveryTypes, delivery) {
			return append(diags, &hcl.Diagnostic{
				Severity: hcl.DiagError,
				Summary:  "Invalid delivery type",
				Detail:   fmt.Sprintf("Delivery type %q is not one of %s.", delivery, strings.Join(deliveryTypes, ", ")),
				Subject:  attr.Expr.Range().Ptr(),
			})
		}
		e.DeliveryType = delivery
	}
	return diags
}

// AndroidModule registers the Android plugins.
type AndroidModule struct{}

// Register implements Module.
func (m *AndroidModule) Register(r *Registry) {
	r.Register(AndroidApplication, PluginFunc(func(ctx context.Context, p *project.Project) error {
		return applyAndroid(p, false)
	}))
	r.Register(AndroidLibrary, PluginFunc(func(ctx context.Context, p *project.Project) error {
		return applyAndroid(p, true)
	}))
	r.Register(AndroidAssetPack, PluginFunc(applyAssetPack))
}

func applyAndroid(p *project.Project, library bool) error {
	if _, exists := p.Extensions.FindByName(AndroidExtensionName); exists {
		return fmt.Errorf("%s already has an Android plugin applied", p)
	}
	ext := &AndroidExtension{
		CompileSdk:     34,
		Library:        library,
		compileOptions: jvm.NewCompileOptions(jvm.Version1_8, jvm.Version1_8),
	}
	if err := p.Extensions.Add(AndroidExtensionName, ext); err != nil {
		return err
	}
	for _, variant := range androidVariants {
		task := jvm.NewJavaCompile("compile"+variant+"JavaWithJavac", ext.compileOptions)
		if err := p.Tasks.Register(task); err != nil {
			return err
		}
	}
	return nil
}

func applyAssetPack(ctx context.Context, p *project.Project) error {
	if _, exists := p.Extensions.FindByName(AndroidExtensionName); exists {
		return fmt.Errorf("%s already has an Android plugin applied", p)
	}
	ext := &AssetPackExtension{DeliveryType: "on-demand"}
	if err := p.Extensions.Add(AndroidExtensionName, ext); err != nil {
		return err
	}
	// The pack name falls back to the project name once the project's own
	// settings are in.
	return p.AfterEvaluate(func(context.Context) error {
		if ext.PackName == "" {
			ext.PackName = p.Name
		}
		return nil
	})
}
