package relmap

import (
	"database/sql"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/syssam/relmap/graph"
	"github.com/syssam/relmap/mapping"
	"github.com/syssam/relmap/repo"
)

// Environment orchestrates the mapping topology: it owns the repository
// bindings, the mapper registry, the relation graph and the mapper list, and
// exposes the setup/build/finalize lifecycle.
//
// An Environment is not safe for concurrent use. Setup, Build and Finalize
// are startup-time operations intended to run once before any data access
// begins; callers driving them from multiple goroutines must serialize them
// with a single coarse lock. After Finalize succeeds the graph must be
// treated as read-only by all consumers.
type Environment struct {
	repos     map[string]*repo.Repository
	registry  *Registry
	graph     *graph.Graph
	mappers   []*Mapper
	finalized bool
}

// NewEnvironment returns a new empty environment.
func NewEnvironment() *Environment {
	return &Environment{
		repos:    make(map[string]*repo.Repository),
		registry: NewRegistry(),
		graph:    graph.New(),
	}
}

// Setup binds a repository under the given name, coercing the connection URI
// into a repository adapter. Re-binding an existing name overwrites the
// prior binding: last write wins. Extra options are not interpreted here;
// they pass through to the repository. It returns the environment for
// chaining.
func (e *Environment) Setup(name, uri string, opts ...repo.Option) (*Environment, error) {
	r, err := repo.Open(name, uri, opts...)
	if err != nil {
		return e, err
	}
	e.repos[name] = r
	return e, nil
}

// SetupDB binds a repository around an existing database handle. Like
// Setup, re-binding an existing name overwrites the prior binding.
func (e *Environment) SetupDB(name, dialect string, db *sql.DB, opts ...repo.Option) *Environment {
	e.repos[name] = repo.OpenDB(name, dialect, db, opts...)
	return e
}

// Repository returns the repository bound under the given name. It fails
// with UnknownRepositoryError if the name was never set up; callers must not
// silently proceed without a repository.
func (e *Environment) Repository(name string) (*repo.Repository, error) {
	r, ok := e.repos[name]
	if !ok {
		return nil, NewUnknownRepositoryError(name)
	}
	return r, nil
}

// Build constructs the mapper for a model from its mapping definition,
// registers it and adds its relation node to the graph. It fails with
// UnknownRepositoryError if the repository was never bound, with
// DuplicateMapperError if the model was already built, and with the graph's
// DuplicateNodeError if another mapper already claimed the relation name.
func (e *Environment) Build(model, repository string, def *mapping.Definition) (*Mapper, error) {
	r, err := e.Repository(repository)
	if err != nil {
		return nil, err
	}
	if e.registry.Has(model) {
		return nil, NewDuplicateMapperError(model)
	}
	m := newMapper(model, r, def)
	if err := e.graph.AddNode(m.Node()); err != nil {
		return nil, err
	}
	if err := e.registry.Register(model, m); err != nil {
		return nil, err
	}
	e.mappers = append(e.mappers, m)
	return m, nil
}

// Lookup returns the mapper built for the given model. It fails with
// UnknownMapperError if the model was never built.
func (e *Environment) Lookup(model string) (*Mapper, error) {
	return e.registry.Lookup(model)
}

// Join declares a structural edge between two relations by name, outside
// relationship resolution. It fails with the graph's UnknownNodeError if
// either relation was never built.
func (e *Environment) Join(source, target, name string) (*graph.Edge, error) {
	src, ok := e.graph.Node(source)
	if !ok {
		return nil, graph.NewUnknownNodeError(source)
	}
	dst, ok := e.graph.Node(target)
	if !ok {
		return nil, graph.NewUnknownNodeError(target)
	}
	return e.graph.AddEdge(src, dst, name)
}

// Finalize resolves every built mapper's relationship declarations into
// connectors on the graph. It is idempotent: once the environment is
// finalized, further calls return immediately without touching the graph.
// On failure the graph is left unchanged and the environment stays
// unfinalized, so Finalize can be re-run after the declaration is fixed.
func (e *Environment) Finalize() error {
	if e.finalized {
		return nil
	}
	f := &finalizer{registry: e.registry, graph: e.graph}
	if err := f.finalize(e.mappers); err != nil {
		return err
	}
	e.finalized = true
	slog.Debug("relmap: topology finalized",
		"mappers", len(e.mappers),
		"connectors", len(e.graph.ConnectorNames()),
	)
	return nil
}

// Finalized reports whether Finalize has completed successfully. The flag
// transitions once and never reverts.
func (e *Environment) Finalized() bool {
	return e.finalized
}

// Graph returns the shared relation graph.
func (e *Environment) Graph() *graph.Graph {
	return e.graph
}

// Mappers returns the built mappers in build order.
func (e *Environment) Mappers() []*Mapper {
	mappers := make([]*Mapper, len(e.mappers))
	copy(mappers, e.mappers)
	return mappers
}

// Snapshot returns a serializable snapshot of the current topology.
func (e *Environment) Snapshot() *graph.Snapshot {
	return e.graph.Snapshot()
}

// Close shuts down all bound repositories in parallel and returns the first
// error encountered.
func (e *Environment) Close() error {
	var g errgroup.Group
	for _, r := range e.repos {
		g.Go(r.Close)
	}
	return g.Wait()
}
