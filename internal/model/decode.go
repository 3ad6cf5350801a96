// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// This file decodes the top-level blocks of a workspace into the model.
package model

import (
	"fmt"
	"maps"
	"path/filepath"
	"slices"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/specialistvlad/buildwire/internal/configurator"
	"github.com/specialistvlad/buildwire/internal/hclutil"
	"github.com/specialistvlad/buildwire/internal/jvm"
	"github.com/specialistvlad/buildwire/internal/projectpath"
)

const (
	workspaceBlock = "workspace"
	configureBlock = "configure"
	projectBlock   = "project"
)

var workspaceFileSchema = &hcl.BodySchema{
	Blocks: []hcl.BlockHeaderSchema{
		{Type: workspaceBlock, LabelNames: []string{"name"}},
		{Type: configureBlock},
		{Type: projectBlock, LabelNames: []string{"name"}},
	},
}

type hclWorkspace struct {
	BuildDir *string `hcl:"build_dir,optional"`
}

type hclConfigure struct {
	OutputRoot   *string        `hcl:"output_root,optional"`
	Primary      *hcl.Attribute `hcl:"primary,optional"`
	JvmTarget    *hcl.Attribute `hcl:"jvm_target,optional"`
	Repositories *hcl.Attribute `hcl:"repositories,optional"`
}

type hclProject struct {
	Plugins []string `hcl:"plugins,optional"`
	Config  hcl.Body `hcl:",remain"`
}

func decodeWorkspace(blocks hcl.Blocks, dir string) (*Workspace, hcl.Diagnostics) {
	wsBlock, diags := hclutil.FindUniqueBlock(blocks, workspaceBlock)
	cfgBlock, cfgDiags := hclutil.FindUniqueBlock(blocks, configureBlock)
	diags = append(diags, cfgDiags...)
	if wsBlock == nil {
		diags = append(diags, &hcl.Diagnostic{
			Severity: hcl.DiagError,
			Summary:  "Missing workspace block",
			Detail:   "Exactly one \"workspace\" block is required to name the root project.",
		})
	}
	if diags.HasErrors() {
		return nil, diags
	}

	ws := &Workspace{
		Name:          wsBlock.Labels[0],
		Dir:           dir,
		BuildDir:      DefaultBuildDir,
		FSInformation: NewFSInfo(wsBlock.DefRange.Filename),
	}
	if err := projectpath.ValidateName(ws.Name); err != nil {
		diags = append(diags, invalidNameDiag(wsBlock, err))
	}

	var parsedWs hclWorkspace
	diags = append(diags, gohcl.DecodeBody(wsBlock.Body, nil, &parsedWs)...)
	if parsedWs.BuildDir != nil {
		ws.BuildDir = *parsedWs.BuildDir
	}

	seen := map[string]*hcl.Block{}
	for _, block := range blocks {
		if block.Type != projectBlock {
			continue
		}
		name := block.Labels[0]
		if prev, exists := seen[name]; exists {
			diags = append(diags, &hcl.Diagnostic{
				Severity: hcl.DiagError,
				Summary:  fmt.Sprintf("Duplicate project %q", name),
				Detail:   fmt.Sprintf("Project %q was already declared at %s.", name, prev.DefRange),
				Subject:  block.DefRange.Ptr(),
			})
			continue
		}
		seen[name] = block

		p, projectDiags := decodeProject(block)
		diags = append(diags, projectDiags...)
		if p != nil {
			ws.Projects = append(ws.Projects, p)
		}
	}

	cfg, cfgDiags := decodeConfigure(cfgBlock, ws)
	diags = append(diags, cfgDiags...)
	ws.Configure = cfg

	return ws, diags
}

func decodeConfigure(block *hcl.Block, ws *Workspace) (*Configure, hcl.Diagnostics) {
	cfg := &Configure{
		OutputRoot:    configurator.DefaultOutputRoot,
		JvmTarget:     configurator.DefaultJvmTarget,
		Repositories:  configurator.DefaultRepositories,
		FSInformation: ws.FSInformation,
	}
	if len(ws.Projects) > 0 {
		cfg.Primary = ws.Projects[0].Name
	}
	if block == nil {
		return cfg, nil
	}
	cfg.FSInformation = NewFSInfo(block.DefRange.Filename)

	var parsed hclConfigure
	diags := gohcl.DecodeBody(block.Body, nil, &parsed)
	if diags.HasErrors() {
		return cfg, diags
	}

	if parsed.OutputRoot != nil {
		cfg.OutputRoot = *parsed.OutputRoot
	}
	if parsed.Primary != nil {
		name, refDiags := hclutil.ReferenceName(parsed.Primary.Expr, projectBlock)
		diags = append(diags, refDiags...)
		cfg.Primary = name
	}
	if parsed.JvmTarget != nil {
		v, vDiags := jvm.DecodeVersion(parsed.JvmTarget)
		diags = append(diags, vDiags...)
		cfg.JvmTarget = v
	}
	if parsed.Repositories != nil {
		repos, listDiags := hclutil.StringList(parsed.Repositories.Expr)
		diags = append(diags, listDiags...)
		for _, name := range repos {
			if _, known := configurator.KnownRepositories[name]; !known {
				diags = append(diags, &hcl.Diagnostic{
					Severity: hcl.DiagError,
					Summary:  "Unknown repository",
					Detail:   fmt.Sprintf("Repository %q is not known.", name),
					Subject:  parsed.Repositories.Expr.Range().Ptr(),
				})
			}
		}
		if repos != nil {
			cfg.Repositories = repos
		}
	}
	return cfg, diags
}

func decodeProject(block *hcl.Block) (*Project, hcl.Diagnostics) {
	var diags hcl.Diagnostics
	name := block.Labels[0]
	if err := projectpath.ValidateName(name); err != nil {
		return nil, append(diags, invalidNameDiag(block, err))
	}

	var parsed hclProject
	diags = append(diags, gohcl.DecodeBody(block.Body, nil, &parsed)...)
	if diags.HasErrors() {
		return nil, diags
	}

	// Extension blocks depend on the applied plugins and are checked at
	// evaluation; plain arguments other than plugins never are valid.
	attrs, _ := parsed.Config.JustAttributes()
	for _, attrName := range slices.Sorted(maps.Keys(attrs)) {
		diags = append(diags, &hcl.Diagnostic{
			Severity: hcl.DiagError,
			Summary:  "Unsupported argument",
			Detail:   fmt.Sprintf("An argument named %q is not expected here.", attrName),
			Subject:  attrs[attrName].NameRange.Ptr(),
		})
	}
	if diags.HasErrors() {
		return nil, diags
	}

	return &Project{
		Name:          name,
		Plugins:       parsed.Plugins,
		Config:        parsed.Config,
		FSInformation: NewFSInfo(block.DefRange.Filename),
	}, diags
}

func invalidNameDiag(block *hcl.Block, err error) *hcl.Diagnostic {
	return &hcl.Diagnostic{
		Severity: hcl.DiagError,
		Summary:  fmt.Sprintf("Invalid %s name", block.Type),
		Detail:   err.Error(),
		Subject:  block.LabelRanges[0].Ptr(),
	}
}

// resolveDir returns path relative to base unless it is already absolute.
func resolveDir(base, path string) string {
	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}
	return filepath.Join(base, path)
}
