// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// Package model provides the Go representation of a buildwire workspace. It
// parses one or more .hcl files into a strongly-typed Workspace and turns that
// Workspace into a build.Build whose project scripts apply the declared
// plugins and settings.
//
// # Core Concepts
//
//   - Workspace: the root container. It carries the root project's name and
//     build directory, the settings of the configuration pass and every
//     declared subproject. Definitions may be split across files and
//     directories; they are aggregated into a single Workspace.
//
//   - Configure: settings of the configuration pass (output root, primary
//     subproject, JVM target, repositories).
//
//   - Project: one subproject. Its plugins are applied when the project is
//     evaluated. Its extension blocks (`android`, `kotlin`, `java`) are then
//     decoded by the extensions those plugins added.
//
//   - FSInfo: metadata that links every definition back to its source file,
//     for error messages.
//
// Structural problems (duplicate blocks, invalid names, malformed versions)
// are reported as hcl.Diagnostics at load time. Problems that depend on which
// plugins are applied surface when the project is evaluated.
package model
