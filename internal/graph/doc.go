// Package graph stores the evaluation-order constraints between projects of
// a build and derives a deterministic evaluation order from them.
//
// # Why a Separate Graph
//
// The project tree says who owns whom; it says nothing about the order in
// which projects must be configured. Constraints such as "every subproject is
// evaluated after :app" live here instead, so that the build host can:
//   - evaluate a project's prerequisites on demand,
//   - compute a full order for the projects nobody asked for explicitly,
//   - report cycles before any project is half-configured.
//
// # Semantics
//
// AddDependency(from, to) records that `to` must be evaluated after `from`.
// Self edges are accepted and ignored: a project is trivially evaluated after
// itself.
package graph
