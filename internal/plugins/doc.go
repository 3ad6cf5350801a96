// Package plugins holds the plugins a workspace can apply to its projects.
// A plugin attaches extensions and registers tasks; the built-in set covers
// the Android, Kotlin and Java plugins a mobile multi-module build uses.
//
// Extensions that implement Configurable declare the schema of their
// project block through gohcl struct tags.
package plugins
