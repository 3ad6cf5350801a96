// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// This file defines the Workspace structure, the root container for all
// configuration loaded from a user's .hcl files, and the loader that
// aggregates every file of a workspace into it.
package model

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/specialistvlad/buildwire/internal/configurator"
	"github.com/specialistvlad/buildwire/internal/ctxlog"
	"github.com/specialistvlad/buildwire/internal/fsutil"
	"github.com/specialistvlad/buildwire/internal/jvm"
)

// FileExtension is the extension of workspace files.
const FileExtension = ".hcl"

// DefaultBuildDir is the root build directory, relative to the workspace
// directory, when the workspace block does not set one.
const DefaultBuildDir = "build"

// Workspace is a root project, its subprojects and the settings of the
// configuration pass.
type Workspace struct {
	Name          string
	Dir           string
	BuildDir      string
	Configure     *Configure
	Projects      []*Project
	FSInformation *FSInfo
}

// Configure holds the settings of the configuration pass. Unset fields have
// already been defaulted by the loader.
type Configure struct {
	OutputRoot    string
	Primary       string
	JvmTarget     jvm.Version
	Repositories  []string
	FSInformation *FSInfo
}

// Project is one declared subproject. Config holds the extension blocks
// (`android`, `kotlin`, `java`); they are decoded against the extensions of
// the applied plugins when the project is evaluated.
type Project struct {
	Name          string
	Plugins       []string
	Config        hcl.Body
	FSInformation *FSInfo
}

// Options returns the configurator options described by the workspace.
func (w *Workspace) Options() configurator.Options {
	return configurator.Options{
		Repositories: w.Configure.Repositories,
		OutputRoot:   w.Configure.OutputRoot,
		Primary:      w.Configure.Primary,
		JvmTarget:    w.Configure.JvmTarget,
	}
}

// Project returns the declared project called name.
func (w *Workspace) Project(name string) (*Project, bool) {
	for _, p := range w.Projects {
		if p.Name == name {
			return p, true
		}
	}
	return nil, false
}

// LoadWorkspace finds and parses all .hcl files under path (or path itself
// when it is a file) into a Workspace. The workspace directory is path, or
// the directory containing it when path is a file.
func LoadWorkspace(ctx context.Context, path string) (*Workspace, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Loading workspace from path.", "path", path)

	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read workspace %s: %w", path, err)
	}
	dir := path
	if !info.IsDir() {
		dir = filepath.Dir(path)
	}
	dir, err = filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve workspace directory %s: %w", path, err)
	}

	files, err := fsutil.FindFilesByExtension(path, FileExtension)
	if err != nil {
		return nil, fmt.Errorf("failed to find workspace files in %s: %w", path, err)
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no %s workspace files found in %s", FileExtension, path)
	}

	parser := hclparse.NewParser()
	var blocks hcl.Blocks
	var diags hcl.Diagnostics
	for _, file := range files {
		fileBlocks, fileDiags := parseWorkspaceFile(parser, file)
		diags = append(diags, fileDiags...)
		blocks = append(blocks, fileBlocks...)
	}
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse workspace %s: %w", path, diags)
	}

	ws, wsDiags := decodeWorkspace(blocks, dir)
	if wsDiags.HasErrors() {
		return nil, fmt.Errorf("failed to decode workspace %s: %w", path, wsDiags)
	}

	logger.Debug("Workspace loaded.", "workspace", ws.Name, "files", len(files), "projects", len(ws.Projects))
	return ws, nil
}

func parseWorkspaceFile(parser *hclparse.Parser, filePath string) (hcl.Blocks, hcl.Diagnostics) {
	hclFile, diags := parser.ParseHCLFile(filePath)
	if diags.HasErrors() {
		return nil, diags
	}
	content, contentDiags := hclFile.Body.Content(workspaceFileSchema)
	diags = append(diags, contentDiags...)
	if content == nil {
		return nil, diags
	}
	return content.Blocks, diags
}
