// Package project models a single node of the build tree: its identity, its
// build output directory, the named capability objects (extensions) and tasks
// that plugins attach to it, and its evaluation lifecycle.
//
// A Project moves through three states:
//
//	Pending → Evaluating → Evaluated
//
// Actions registered with AfterEvaluate or WhenEvaluated fire exactly once,
// on the transition to Evaluated, or immediately if that transition already
// happened.
package project
