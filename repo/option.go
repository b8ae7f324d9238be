package repo

import "time"

// Option configures a repository after its connection is opened. Options are
// not interpreted by the mapping core; they pass through to the underlying
// connection pool. mem:// repositories ignore them.
type Option func(*Repository)

// WithMaxOpenConns sets the maximum number of open connections.
func WithMaxOpenConns(n int) Option {
	return func(r *Repository) {
		if r.db != nil {
			r.db.SetMaxOpenConns(n)
		}
	}
}

// WithMaxIdleConns sets the maximum number of idle connections.
func WithMaxIdleConns(n int) Option {
	return func(r *Repository) {
		if r.db != nil {
			r.db.SetMaxIdleConns(n)
		}
	}
}

// WithConnMaxLifetime sets the maximum amount of time a connection may be
// reused.
func WithConnMaxLifetime(d time.Duration) Option {
	return func(r *Repository) {
		if r.db != nil {
			r.db.SetConnMaxLifetime(d)
		}
	}
}
