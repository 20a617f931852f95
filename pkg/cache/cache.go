// Package cache stores rendered Graphviz output keyed by source content.
//
// Rendering a graph is by far the most expensive step of a pass: every call
// boots a Graphviz instance and runs a layout. Documentation trees tend to
// repeat the same diagrams across pages and across builds, so the renderer
// consults a [Cache] before laying out a graph and stores the SVG after.
//
// Three backends are provided:
//
//   - [NullCache]: never stores anything (the default)
//   - [FileCache]: one file per entry under a directory, for CLI use
//   - [RedisCache]: shared cache for parallel build machines
//
// Keys are produced by [Hash] and can be namespaced with [Scoped].
package cache

import (
	"context"
	"time"
)

// Cache is a byte store with optional expiry.
//
// Get reports a miss with (nil, false, nil); an error means the backend
// itself failed. Implementations must be safe for concurrent use.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}
