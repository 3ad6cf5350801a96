package plugins

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/specialistvlad/buildwire/internal/ctxlog"
	"github.com/specialistvlad/buildwire/internal/project"
)

// ErrUnknownPlugin is returned when a plugin id has no registration.
var ErrUnknownPlugin = errors.New("plugin not found")

// Plugin configures a project it is applied to.
type Plugin interface {
	Apply(ctx context.Context, p *project.Project) error
}

// PluginFunc adapts a function to the Plugin interface.
type PluginFunc func(ctx context.Context, p *project.Project) error

// Apply implements Plugin.
func (f PluginFunc) Apply(ctx context.Context, p *project.Project) error {
	return f(ctx, p)
}

// Module groups related plugins so they can be registered together.
type Module interface {
	Register(r *Registry)
}

// Registry maps plugin ids to their implementation.
type Registry struct {
	plugins map[string]Plugin
}

// New creates a registry populated by the given modules.
func New(modules ...Module) *Registry {
	r := &Registry{plugins: make(map[string]Plugin)}
	for _, m := range modules {
		m.Register(r)
	}
	return r
}

// Default returns a registry with every built-in plugin.
func Default() *Registry {
	return New(coreModules...)
}

// Register binds id to pl. Registering an id twice is a programmer error.
func (r *Registry) Register(id string, pl Plugin) {
	if _, exists := r.plugins[id]; exists {
		panic(fmt.Sprintf("plugins: duplicate registration for %q", id))
	}
	r.plugins[id] = pl
}

// IDs returns every registered plugin id, sorted.
func (r *Registry) IDs() []string {
	ids := make([]string, 0, len(r.plugins))
	for id := range r.plugins {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Apply applies the plugin id to p. Applying a plugin a project already has
// is a no-op.
func (r *Registry) Apply(ctx context.Context, id string, p *project.Project) error {
	pl, ok := r.plugins[id]
	if !ok {
		return fmt.Errorf("%w: '%s'", ErrUnknownPlugin, id)
	}
	if !p.RecordPlugin(id) {
		return nil
	}
	ctxlog.FromContext(ctx).Debug("Applying plugin.", "plugin", id)
	if err := pl.Apply(ctx, p); err != nil {
		return fmt.Errorf("failed to apply plugin '%s': %w", id, err)
	}
	return nil
}
