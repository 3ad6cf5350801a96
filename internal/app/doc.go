// Package app contains the core application logic. It defines the main App
// struct, its configuration, and the configuration lifecycle of a workspace
// (load, evaluate, run tasks, describe), decoupled from any specific
// entrypoint like a CLI.
package app
