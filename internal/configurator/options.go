package configurator

import (
	"errors"
	"fmt"

	"github.com/specialistvlad/buildwire/internal/jvm"
	"github.com/specialistvlad/buildwire/internal/project"
)

const (
	// DefaultOutputRoot is the shared output root, relative to the root
	// project's original build directory.
	DefaultOutputRoot = "../../build"
	// DefaultCapability is the extension that exposes compile options.
	DefaultCapability = "android"
	// DefaultJvmTarget is the language level every subproject is normalized to.
	DefaultJvmTarget = jvm.Version17
)

// DefaultRepositories are registered when Options.Repositories is nil.
var DefaultRepositories = []string{"google", "maven_central"}

// KnownRepositories maps repository shorthands to their descriptors.
var KnownRepositories = map[string]project.Repository{
	"google":               {Name: "Google", URL: "https://dl.google.com/dl/android/maven2/"},
	"maven_central":        {Name: "MavenCentral", URL: "https://repo.maven.apache.org/maven2/"},
	"gradle_plugin_portal": {Name: "GradlePluginPortal", URL: "https://plugins.gradle.org/m2/"},
}

var (
	// ErrPrimaryNotFound is returned when no subproject carries the primary name.
	ErrPrimaryNotFound = errors.New("primary subproject not found")
	// ErrUnknownRepository is returned for repository names missing from
	// KnownRepositories.
	ErrUnknownRepository = errors.New("unknown repository")
)

// Options controls a configuration pass. An empty Primary is only valid for
// a build without subprojects.
type Options struct {
	Repositories []string
	OutputRoot   string
	Primary      string
	JvmTarget    jvm.Version
	Capability   string
}

func (o Options) withDefaults() Options {
	if o.Repositories == nil {
		o.Repositories = DefaultRepositories
	}
	if o.OutputRoot == "" {
		o.OutputRoot = DefaultOutputRoot
	}
	if !o.JvmTarget.IsSet() {
		o.JvmTarget = DefaultJvmTarget
	}
	if o.Capability == "" {
		o.Capability = DefaultCapability
	}
	return o
}

func (o Options) validate() error {
	for _, name := range o.Repositories {
		if _, ok := KnownRepositories[name]; !ok {
			return fmt.Errorf("%w: '%s'", ErrUnknownRepository, name)
		}
	}
	return nil
}
