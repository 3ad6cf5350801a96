package jvm

import "errors"

// ErrUnsetVersion is returned when a setter receives the zero Version.
var ErrUnsetVersion = errors.New("java version is unset")

// CompileOptions holds the source and target compatibility of a project's
// Java compilation.
type CompileOptions struct {
	sourceCompatibility Version
	targetCompatibility Version
}

// NewCompileOptions returns options initialised to source and target.
func NewCompileOptions(source, target Version) *CompileOptions {
	return &CompileOptions{sourceCompatibility: source, targetCompatibility: target}
}

func (o *CompileOptions) SourceCompatibility() Version { return o.sourceCompatibility }
func (o *CompileOptions) TargetCompatibility() Version { return o.targetCompatibility }

func (o *CompileOptions) SetSourceCompatibility(v Version) error {
	if !v.IsSet() {
		return ErrUnsetVersion
	}
	o.sourceCompatibility = v
	return nil
}

func (o *CompileOptions) SetTargetCompatibility(v Version) error {
	if !v.IsSet() {
		return ErrUnsetVersion
	}
	o.targetCompatibility = v
	return nil
}

// CompileOptionsProvider is implemented by project extensions that expose
// Java compile options. Extensions that do not implement it have no compile
// options to normalize.
type CompileOptionsProvider interface {
	CompileOptions() (*CompileOptions, error)
}
