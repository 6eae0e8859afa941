// Package cache stores rendered artifacts (SVG, PNG, PDF bytes) keyed by a
// fingerprint of the layout document and the render options. Layouts
// themselves are never cached: computing one is microseconds, and keeping
// the engine stateless is a feature.
package cache

import (
	"context"
	"time"
)

// TTLArtifact is the default time-to-live for cached rendered artifacts.
// Rendering is deterministic, so the TTL exists only to bound disk usage.
const TTLArtifact = 7 * 24 * time.Hour

// Cache is the storage interface shared by the file, Redis and null
// backends. Get reports a miss with (nil, false, nil); errors are reserved
// for backend failures.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// ArtifactKeyOpts captures every render option that changes output bytes.
// Two renders with equal layout hash and equal opts produce identical
// artifacts, so they may share a cache entry.
type ArtifactKeyOpts struct {
	Viz    string  // "scalp" or "chain"
	Format string  // "svg", "png" or "pdf"
	Style  string  // style name for scalp diagrams
	Width  float64 // viewport width in pixels
	Grid   bool
	Labels bool
	Scale  float64 // raster scale factor for PNG
}

// Keyer generates cache keys for rendered artifacts.
type Keyer interface {
	ArtifactKey(layoutHash string, opts ArtifactKeyOpts) string
}

// DefaultKeyer hashes the layout fingerprint together with the render
// options.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the standard keyer.
func NewDefaultKeyer() Keyer { return &DefaultKeyer{} }

// ArtifactKey generates a key for a rendered artifact.
func (k *DefaultKeyer) ArtifactKey(layoutHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", layoutHash, opts)
}

// LayoutHash fingerprints a serialized layout document. Pass the canonical
// JSON encoding so equal layouts share a fingerprint.
func LayoutHash(doc []byte) string {
	return Hash(doc)
}
