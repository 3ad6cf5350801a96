package graph

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/specialistvlad/buildwire/internal/projectpath"
)

// ErrCycle is returned when evaluation-order constraints form a cycle.
var ErrCycle = errors.New("evaluation order contains a cycle")

// Order returns every project in s such that each project comes after all of
// its prerequisites. Among projects that are ready at the same time, the one
// with the lexically smallest path comes first.
func Order(ctx context.Context, s Store) ([]projectpath.Path, error) {
	nodes := s.AllNodes(ctx)

	pending := make(map[string]int, len(nodes))
	dependents := make(map[string][]string, len(nodes))
	byKey := make(map[string]projectpath.Path, len(nodes))
	for _, n := range nodes {
		key := n.String()
		byKey[key] = n
		deps, err := s.DependenciesOf(ctx, n)
		if err != nil {
			return nil, err
		}
		pending[key] = len(deps)
		for _, d := range deps {
			dependents[d.String()] = append(dependents[d.String()], key)
		}
	}

	var ready []string
	for key, count := range pending {
		if count == 0 {
			ready = append(ready, key)
		}
	}
	sort.Strings(ready)

	order := make([]projectpath.Path, 0, len(nodes))
	for len(ready) > 0 {
		key := ready[0]
		ready = ready[1:]
		order = append(order, byKey[key])

		for _, dependent := range dependents[key] {
			pending[dependent]--
			if pending[dependent] == 0 {
				ready = append(ready, dependent)
			}
		}
		sort.Strings(ready)
	}

	if len(order) != len(nodes) {
		var stuck []string
		for key, count := range pending {
			if count > 0 {
				stuck = append(stuck, key)
			}
		}
		sort.Strings(stuck)
		return nil, fmt.Errorf("%w between %s", ErrCycle, strings.Join(stuck, ", "))
	}
	return order, nil
}
