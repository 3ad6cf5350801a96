package projectpath

import (
	"slices"
	"strings"
)

// Separator divides project names inside a path.
const Separator = ":"

// Path is the absolute address of a project inside the build tree. The zero
// value is the root project.
type Path struct {
	Segments []string
}

// Root returns the path of the root project.
func Root() Path {
	return Path{}
}

// IsRoot reports whether p addresses the root project.
func (p Path) IsRoot() bool {
	return len(p.Segments) == 0
}

// Name returns the last segment, or an empty string for the root.
func (p Path) Name() string {
	if p.IsRoot() {
		return ""
	}
	return p.Segments[len(p.Segments)-1]
}

// Child returns the path of a direct child project named name.
func (p Path) Child(name string) Path {
	segments := make([]string, 0, len(p.Segments)+1)
	segments = append(segments, p.Segments...)
	return Path{Segments: append(segments, name)}
}

// Parent returns the enclosing project's path. The root is its own parent.
func (p Path) Parent() Path {
	if p.IsRoot() {
		return p
	}
	return Path{Segments: slices.Clone(p.Segments[:len(p.Segments)-1])}
}

// String renders the canonical form, e.g. ":libs:core".
func (p Path) String() string {
	if p.IsRoot() {
		return Separator
	}
	return Separator + strings.Join(p.Segments, Separator)
}

// Equal reports whether both paths address the same project.
func (p Path) Equal(other Path) bool {
	return slices.Equal(p.Segments, other.Segments)
}
