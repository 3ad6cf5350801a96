// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// This file turns a Workspace into a build.Build. Nothing is evaluated here:
// every declared project gets a script that runs when the build evaluates it.
package model

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/specialistvlad/buildwire/internal/build"
	"github.com/specialistvlad/buildwire/internal/hclutil"
	"github.com/specialistvlad/buildwire/internal/plugins"
	"github.com/specialistvlad/buildwire/internal/project"
)

// Materialize declares the root project and every subproject of w on a new
// build. Plugin ids are resolved against registry when a project is
// evaluated.
func (w *Workspace) Materialize(ctx context.Context, registry *plugins.Registry) (*build.Build, error) {
	b, err := build.New(ctx, w.Name, w.Dir)
	if err != nil {
		return nil, err
	}
	b.Root().BuildDir = resolveDir(w.Dir, w.BuildDir)

	for _, decl := range w.Projects {
		p, err := b.AddProject(ctx, decl.Name)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", decl.FSInformation.FilePath, err)
		}
		p.Script = decl.script(registry)
	}
	return b, nil
}

func (d *Project) script(registry *plugins.Registry) project.Script {
	return func(ctx context.Context, p *project.Project) error {
		for _, id := range d.Plugins {
			if err := registry.Apply(ctx, id, p); err != nil {
				return err
			}
		}
		if diags := d.configureExtensions(p); diags.HasErrors() {
			return fmt.Errorf("failed to configure %s: %w", p, diags)
		}
		return nil
	}
}

// configureExtensions hands every extension block of the project body to the
// extension of the same name. Only extensions added by the applied plugins
// may be configured, and each at most once.
func (d *Project) configureExtensions(p *project.Project) hcl.Diagnostics {
	if d.Config == nil {
		return nil
	}

	schema := &hcl.BodySchema{}
	configurable := map[string]plugins.Configurable{}
	for _, name := range p.Extensions.Names() {
		ext, _ := p.Extensions.FindByName(name)
		if c, ok := ext.(plugins.Configurable); ok {
			configurable[name] = c
			schema.Blocks = append(schema.Blocks, hcl.BlockHeaderSchema{Type: name})
		}
	}

	content, diags := d.Config.Content(schema)
	if content == nil {
		return diags
	}
	for _, header := range schema.Blocks {
		block, blockDiags := hclutil.FindUniqueBlock(content.Blocks, header.Type)
		diags = append(diags, blockDiags...)
		if block == nil {
			continue
		}
		diags = append(diags, configurable[header.Type].Configure(block.Body)...)
	}
	return diags
}
