// Package hclutil holds small helpers shared by the HCL-facing packages:
// block lookup, traversal rendering and value decoding with diagnostics
// attached to the offending expression.
package hclutil
