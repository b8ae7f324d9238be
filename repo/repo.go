package repo

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	// Registers the pure-Go "sqlite" driver for sqlite:// URIs.
	_ "modernc.org/sqlite"
)

// Repository is a named binding between an environment and an underlying
// storage connection. It is coerced from a connection URI: the scheme picks
// the dialect, the remainder the data source.
type Repository struct {
	name    string
	uri     string
	dialect string
	db      *sql.DB
	id      uuid.UUID
}

// Open coerces the given connection URI into a repository. The URI scheme
// selects the dialect: mysql://, postgres://, sqlite:// or mem:// (an
// in-memory repository with no database connection). Opening does not ping
// the database; connections are established lazily by the standard library.
// Options are applied to the connection pool after it is opened.
func Open(name, uri string, opts ...Option) (*Repository, error) {
	dialect, driver, dsn, err := resolve(uri)
	if err != nil {
		return nil, err
	}
	r := &Repository{
		name:    name,
		uri:     uri,
		dialect: dialect,
		id:      uuid.New(),
	}
	if dialect != Memory {
		db, err := sql.Open(driver, dsn)
		if err != nil {
			return nil, fmt.Errorf("relmap: open repository %q: %w", name, err)
		}
		r.db = db
	}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

// OpenDB wraps an existing database handle as a repository. The dialect is
// recorded as given; the URI takes the form dialect://<name>.
func OpenDB(name, dialect string, db *sql.DB, opts ...Option) *Repository {
	r := &Repository{
		name:    name,
		uri:     dialect + "://" + name,
		dialect: dialect,
		db:      db,
		id:      uuid.New(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Name returns the binding name the repository was registered under.
func (r *Repository) Name() string { return r.name }

// URI returns the connection identifier the repository was opened with.
func (r *Repository) URI() string { return r.uri }

// Dialect returns the storage dialect.
func (r *Repository) Dialect() string { return r.dialect }

// ID returns the unique instance id, used for diagnostics.
func (r *Repository) ID() uuid.UUID { return r.id }

// DB returns the underlying database handle, or nil for mem:// repositories.
func (r *Repository) DB() *sql.DB { return r.db }

// Equal reports whether both repositories share the same connection
// identifier. Two repositories opened from the same URI are equal even when
// they are distinct instances.
func (r *Repository) Equal(other *Repository) bool {
	return other != nil && r.uri == other.uri
}

// String returns a human-readable description of the repository.
func (r *Repository) String() string {
	return fmt.Sprintf("repo(%s %s)", r.name, r.dialect)
}

// Close closes the underlying database connection, if any.
func (r *Repository) Close() error {
	if r.db == nil {
		return nil
	}
	return r.db.Close()
}

// Gateway returns a queryable handle on the named relation.
func (r *Repository) Gateway(relation string) *Gateway {
	return &Gateway{repo: r, relation: relation}
}

// Gateway is a queryable relation handle: the opaque object relation nodes
// carry for downstream data access.
type Gateway struct {
	repo     *Repository
	relation string
}

// Relation returns the relation name the gateway is bound to.
func (g *Gateway) Relation() string { return g.relation }

// Repository returns the owning repository.
func (g *Gateway) Repository() *Repository { return g.repo }

// QueryContext runs a query against the underlying connection. It fails
// with ErrNoDatabase for repositories opened without one.
func (g *Gateway) QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	if g.repo.db == nil {
		return nil, ErrNoDatabase
	}
	return g.repo.db.QueryContext(ctx, query, args...)
}

// ExecContext runs a statement against the underlying connection. It fails
// with ErrNoDatabase for repositories opened without one.
func (g *Gateway) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	if g.repo.db == nil {
		return nil, ErrNoDatabase
	}
	return g.repo.db.ExecContext(ctx, query, args...)
}
