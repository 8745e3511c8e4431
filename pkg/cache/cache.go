// Package cache stores computed layouts so repeated requests for the same
// hypergraph and options skip the engine.
//
// # Backends
//
//   - [FileCache]: one JSON file per entry under a directory, for the CLI
//   - [RedisCache]: a shared Redis instance, for the HTTP server
//   - [NullCache]: stores nothing, for --no-cache and tests
//
// # Keys
//
// Keys are produced by a [Keyer]. [DefaultKeyer] hashes the canonical input
// document together with every option that affects the result, so a change
// to either yields a new key. [ScopedKeyer] adds a namespace prefix.
package cache

import (
	"context"
	"time"
)

// TTLLayout is how long computed layouts stay cached. Layouts are pure
// functions of their inputs, so this only bounds storage.
const TTLLayout = 7 * 24 * time.Hour

// Cache is a byte-oriented key/value store with expiry.
// Implementations must be safe for concurrent use.
type Cache interface {
	// Get returns the stored value and true on a hit. A miss is not an error.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A ttl of zero means no expiry.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}

// LayoutKeyOpts holds the options that change a layout result.
type LayoutKeyOpts struct {
	RadiusIncrement float64 `json:"radius_increment"`
	Seed            uint64  `json:"seed"`
	SizesHash       string  `json:"sizes_hash,omitempty"`
}

// Keyer builds cache keys.
type Keyer interface {
	// LayoutKey returns the key for a layout of the document whose canonical
	// encoding hashes to inputHash.
	LayoutKey(inputHash string, opts LayoutKeyOpts) string
}

// DefaultKeyer hashes key components with SHA-256.
type DefaultKeyer struct{}

// NewDefaultKeyer returns the default keyer.
func NewDefaultKeyer() Keyer {
	return DefaultKeyer{}
}

// LayoutKey implements Keyer.
func (DefaultKeyer) LayoutKey(inputHash string, opts LayoutKeyOpts) string {
	return hashKey("layout", inputHash, opts)
}

var _ Keyer = DefaultKeyer{}
