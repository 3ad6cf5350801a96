// Package configurator implements the cross-project configuration pass of a
// multi-module build. Running as the root project's script, it
//
//	(a) registers artifact repositories on every project,
//	(b) redirects every build directory beneath one shared output root,
//	(c) makes every subproject evaluate after a primary subproject,
//	(d) registers a root `clean` task that deletes the shared output root,
//	(e) normalizes the JVM compiler target of every subproject.
//
// Step (e) is best-effort per subproject: a subproject whose capability
// cannot be configured is logged and skipped, and the pass continues. Every
// other failure aborts the build.
package configurator
