package report

import (
	"context"
	"fmt"
	"io"

	"github.com/hashicorp/hcl/v2/hclwrite"
	"github.com/specialistvlad/buildwire/internal/build"
	"github.com/specialistvlad/buildwire/internal/ctxlog"
	"github.com/specialistvlad/buildwire/internal/jvm"
	"github.com/specialistvlad/buildwire/internal/project"
	"github.com/zclconf/go-cty/cty"
)

// Describe writes the effective configuration of every project in b to w.
func Describe(ctx context.Context, b *build.Build, w io.Writer) error {
	f, err := Render(ctx, b)
	if err != nil {
		return err
	}
	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write build description: %w", err)
	}
	return nil
}

// Render builds the HCL document written by Describe.
func Render(ctx context.Context, b *build.Build) (*hclwrite.File, error) {
	logger := ctxlog.FromContext(ctx)
	projects := b.AllProjects()
	logger.Debug("Describing build.", "projects", len(projects))

	f := hclwrite.NewEmptyFile()
	body := f.Body()
	for i, p := range projects {
		if i > 0 {
			body.AppendNewline()
		}
		block := body.AppendNewBlock("project", []string{p.Path.String()})
		if err := describeProject(ctx, b, p, block.Body()); err != nil {
			return nil, fmt.Errorf("failed to describe %s: %w", p, err)
		}
	}
	return f, nil
}

func describeProject(ctx context.Context, b *build.Build, p *project.Project, body *hclwrite.Body) error {
	body.SetAttributeValue("name", cty.StringVal(p.Name))
	body.SetAttributeValue("build_dir", cty.StringVal(p.BuildDir))
	body.SetAttributeValue("state", cty.StringVal(p.State().String()))

	deps, err := b.Graph().DependenciesOf(ctx, p.Path)
	if err != nil {
		return err
	}
	if len(deps) > 0 {
		paths := make([]string, 0, len(deps))
		for _, dep := range deps {
			paths = append(paths, dep.String())
		}
		body.SetAttributeValue("evaluates_after", stringList(paths))
	}
	if ids := p.Plugins(); len(ids) > 0 {
		body.SetAttributeValue("plugins", stringList(ids))
	}
	if len(p.Repositories) > 0 {
		repos := make([]cty.Value, 0, len(p.Repositories))
		for _, repo := range p.Repositories {
			repos = append(repos, cty.ObjectVal(map[string]cty.Value{
				"name": cty.StringVal(repo.Name),
				"url":  cty.StringVal(repo.URL),
			}))
		}
		body.SetAttributeValue("repositories", cty.ListVal(repos))
	}

	for _, name := range p.Extensions.Names() {
		ext, _ := p.Extensions.FindByName(name)
		provider, ok := ext.(jvm.CompileOptionsProvider)
		if !ok {
			continue
		}
		opts, err := provider.CompileOptions()
		if err != nil || opts == nil {
			continue
		}
		body.AppendNewline()
		co := body.AppendNewBlock("compile_options", []string{name}).Body()
		co.SetAttributeValue("source_compatibility", cty.StringVal(opts.SourceCompatibility().String()))
		co.SetAttributeValue("target_compatibility", cty.StringVal(opts.TargetCompatibility().String()))
	}

	for _, task := range p.Tasks.All() {
		body.AppendNewline()
		tb := body.AppendNewBlock("task", []string{task.Name()}).Body()
		tb.SetAttributeValue("kind", cty.StringVal(task.Kind()))
		switch t := task.(type) {
		case *jvm.KotlinCompile:
			tb.SetAttributeValue("jvm_target", cty.StringVal(t.JvmTarget.String()))
		case *jvm.JavaCompile:
			tb.SetAttributeValue("source_compatibility", cty.StringVal(t.SourceVersion().String()))
			tb.SetAttributeValue("target_compatibility", cty.StringVal(t.TargetVersion().String()))
		}
	}
	return nil
}

func stringList(values []string) cty.Value {
	vals := make([]cty.Value, 0, len(values))
	for _, v := range values {
		vals = append(vals, cty.StringVal(v))
	}
	return cty.ListVal(vals)
}
