/*
Package projectpath provides a structured representation of project paths in
a multi-module build.

A path is a colon-separated sequence of project names anchored at the root
project, e.g. `:`, `:app` or `:libs:core`. The root project's path is a
single colon.

This package centralizes parsing and formatting so that task selectors,
evaluation-order constraints and the workspace loader all agree on the
identifier schema.
*/
package projectpath
