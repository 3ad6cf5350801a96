package project

import "fmt"

// ExtensionContainer holds the named capability objects attached to a
// project, e.g. the "android" extension added by an Android plugin.
type ExtensionContainer struct {
	names  []string
	byName map[string]any
}

// NewExtensionContainer returns an empty container.
func NewExtensionContainer() *ExtensionContainer {
	return &ExtensionContainer{byName: make(map[string]any)}
}

// Add attaches ext under name. Names are unique per project.
func (c *ExtensionContainer) Add(name string, ext any) error {
	if ext == nil {
		return fmt.Errorf("extension %q is nil", name)
	}
	if _, exists := c.byName[name]; exists {
		return fmt.Errorf("cannot add extension with name '%s', as there is an extension already registered with that name", name)
	}
	c.names = append(c.names, name)
	c.byName[name] = ext
	return nil
}

// FindByName returns the extension registered under name, if any.
func (c *ExtensionContainer) FindByName(name string) (any, bool) {
	ext, ok := c.byName[name]
	return ext, ok
}

// Names returns extension names in registration order.
func (c *ExtensionContainer) Names() []string {
	return append([]string(nil), c.names...)
}
