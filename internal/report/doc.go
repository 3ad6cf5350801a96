// Package report renders the effective configuration of an evaluated build
// as HCL, one `project` block per project.
package report
