package relmap

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/syssam/relmap/graph"
)

// ErrNotFinalized is returned when an operation requires a finalized
// topology but Finalize has not completed yet.
var ErrNotFinalized = errors.New("relmap: environment not finalized")

// TopologyKey is the default cache key for topology snapshots.
const TopologyKey = "relmap:topology"

// Cache is the interface for persisting finalized topology snapshots.
// Users should implement this interface with their preferred store
// (e.g. Redis, Memcached, in-memory).
type Cache interface {
	// Get retrieves a value from the cache.
	// Returns nil, nil if the key doesn't exist.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores a value in the cache with an optional TTL.
	// If ttl is 0, the value should not expire.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete removes a value from the cache.
	Delete(ctx context.Context, key string) error

	// Clear removes all values from the cache.
	Clear(ctx context.Context) error
}

// StoreTopology encodes the finalized graph's snapshot and stores it under
// TopologyKey. It fails with ErrNotFinalized if Finalize has not completed.
func (e *Environment) StoreTopology(ctx context.Context, c Cache, ttl time.Duration) error {
	if !e.finalized {
		return ErrNotFinalized
	}
	data, err := e.graph.Snapshot().MarshalBinary()
	if err != nil {
		return fmt.Errorf("relmap: encode topology snapshot: %w", err)
	}
	return c.Set(ctx, TopologyKey, data, ttl)
}

// LoadTopology retrieves and decodes the topology snapshot stored under
// TopologyKey. It returns nil, nil when no snapshot was stored.
func LoadTopology(ctx context.Context, c Cache) (*graph.Snapshot, error) {
	data, err := c.Get(ctx, TopologyKey)
	if err != nil {
		return nil, err
	}
	if data == nil {
		return nil, nil
	}
	var s graph.Snapshot
	if err := s.UnmarshalBinary(data); err != nil {
		return nil, fmt.Errorf("relmap: decode topology snapshot: %w", err)
	}
	return &s, nil
}
