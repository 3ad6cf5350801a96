package graph

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/specialistvlad/buildwire/internal/projectpath"
)

// MemoryStore implements Store using maps keyed by the canonical path.
type MemoryStore struct {
	mu    sync.RWMutex
	nodes map[string]projectpath.Path
	deps  map[string]map[string]struct{} // Key: project, Value: set of prerequisites
}

// NewMemoryStore creates a new, empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		nodes: make(map[string]projectpath.Path),
		deps:  make(map[string]map[string]struct{}),
	}
}

func (s *MemoryStore) AddNode(ctx context.Context, id projectpath.Path) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := id.String()
	if _, exists := s.nodes[key]; !exists {
		s.nodes[key] = id
	}
	return nil
}

func (s *MemoryStore) AddDependency(ctx context.Context, from, to projectpath.Path) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	fromKey := from.String()
	toKey := to.String()

	if _, exists := s.nodes[fromKey]; !exists {
		return fmt.Errorf("dependency source project '%s' not found in graph", fromKey)
	}
	if _, exists := s.nodes[toKey]; !exists {
		return fmt.Errorf("dependency target project '%s' not found in graph", toKey)
	}
	if fromKey == toKey {
		return nil
	}

	if s.deps[toKey] == nil {
		s.deps[toKey] = make(map[string]struct{})
	}
	s.deps[toKey][fromKey] = struct{}{}
	return nil
}

func (s *MemoryStore) DependenciesOf(ctx context.Context, id projectpath.Path) ([]projectpath.Path, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	key := id.String()
	if _, exists := s.nodes[key]; !exists {
		return nil, fmt.Errorf("project '%s' not found in graph", key)
	}

	keys := make([]string, 0, len(s.deps[key]))
	for depKey := range s.deps[key] {
		keys = append(keys, depKey)
	}
	sort.Strings(keys)

	deps := make([]projectpath.Path, 0, len(keys))
	for _, k := range keys {
		deps = append(deps, s.nodes[k])
	}
	return deps, nil
}

func (s *MemoryStore) AllNodes(ctx context.Context) []projectpath.Path {
	s.mu.RLock()
	defer s.mu.RUnlock()

	keys := make([]string, 0, len(s.nodes))
	for k := range s.nodes {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	nodes := make([]projectpath.Path, 0, len(keys))
	for _, k := range keys {
		nodes = append(nodes, s.nodes[k])
	}
	return nodes
}
