package graph

import (
	"context"

	"github.com/specialistvlad/buildwire/internal/projectpath"
)

// Store is the interface for recording evaluation-order constraints.
//
// Implementations must be safe for concurrent use; the in-memory
// implementation guards its maps with a sync.RWMutex.
type Store interface {
	// AddNode registers a project. Adding the same project twice is not an
	// error.
	AddNode(ctx context.Context, id projectpath.Path) error

	// AddDependency records that `to` must be evaluated after `from`. Both
	// projects must already be registered. A self edge is ignored.
	AddDependency(ctx context.Context, from, to projectpath.Path) error

	// DependenciesOf returns the projects that must be evaluated before id,
	// sorted by path. It fails if id is unknown.
	DependenciesOf(ctx context.Context, id projectpath.Path) ([]projectpath.Path, error)

	// AllNodes returns every registered project, sorted by path.
	AllNodes(ctx context.Context) []projectpath.Path
}
