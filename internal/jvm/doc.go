// Package jvm models the JVM compiler settings a build can normalize: language
// levels, compile options exposed by project extensions, and the compile-kind
// tasks that carry their own target version.
package jvm
