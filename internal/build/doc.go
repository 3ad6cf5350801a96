// Package build is the host of a multi-module build: it owns the project tree
// and the evaluation-order graph, evaluates projects in a valid order, and
// runs executable tasks once configuration is complete.
//
// Evaluation follows the usual two-phase shape. The root project is
// evaluated first, because its script is where cross-project configuration
// is declared. Every other project is then evaluated in graph order.
// Declaring an evaluation dependency evaluates the target immediately if it is
// still pending, so configuration that runs later in the same script can
// observe it as evaluated.
package build
