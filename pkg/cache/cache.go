// Package cache stores computed frames and rendered artifacts.
//
// [Cache] is a small byte-oriented key/value interface with TTLs. Three
// backends are provided: [FileCache] for the CLI, [RedisCache] for the
// preview server when several instances share work, and [NullCache] to
// disable caching. Keys are built by a [Keyer] so callers never format
// them by hand; [ScopedKeyer] adds a namespace prefix.
package cache

import (
	"context"
	"strings"
	"time"
)

// Default TTLs per entry kind.
const (
	TTLFrame    = 24 * time.Hour
	TTLArtifact = 7 * 24 * time.Hour
)

// Cache is a byte-oriented key/value store.
type Cache interface {
	// Get returns the value for key. A miss is (nil, false, nil).
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A ttl of zero never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases resources held by the cache.
	Close() error
}

// FrameKeyOpts are the render-pass options that change a computed frame.
type FrameKeyOpts struct {
	Measurer string `json:"measurer"`
	Edit     bool   `json:"edit"`
}

// ArtifactKeyOpts are the output options that change a rendered artifact.
type ArtifactKeyOpts struct {
	Format        string  `json:"format"`
	Handles       bool    `json:"handles"`
	EmbeddedFonts bool    `json:"embedded_fonts"`
	Scale         float64 `json:"scale"`
}

// Keyer builds cache keys.
type Keyer interface {
	// FrameKey keys a frame computed from an input with the given hash.
	FrameKey(inputHash string, opts FrameKeyOpts) string

	// ArtifactKey keys an artifact rendered from a frame with the given hash.
	ArtifactKey(frameHash string, opts ArtifactKeyOpts) string
}

// DefaultKeyer hashes the source hash together with the options that
// change the cached value.
type DefaultKeyer struct{}

// NewDefaultKeyer returns the default keyer.
func NewDefaultKeyer() Keyer { return DefaultKeyer{} }

// FrameKey implements Keyer.
func (DefaultKeyer) FrameKey(inputHash string, opts FrameKeyOpts) string {
	return frameKey(inputHash, opts)
}

// ArtifactKey implements Keyer.
func (DefaultKeyer) ArtifactKey(frameHash string, opts ArtifactKeyOpts) string {
	return artifactKey(frameHash, opts)
}

// ScopedKeyer namespaces the keys of another keyer, so several strips or
// servers can share one Redis database:
//
//	keyer := NewScopedKeyer(nil, "buttonstrip:preview")
//
// A missing trailing colon is added to the prefix.
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer wraps inner, or the default keyer when inner is nil.
func NewScopedKeyer(inner Keyer, prefix string) *ScopedKeyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	if prefix != "" && !strings.HasSuffix(prefix, ":") {
		prefix += ":"
	}
	return &ScopedKeyer{inner: inner, prefix: prefix}
}

// Prefix returns the normalized scope prefix.
func (k *ScopedKeyer) Prefix() string { return k.prefix }

func (k *ScopedKeyer) FrameKey(inputHash string, opts FrameKeyOpts) string {
	return k.prefix + k.inner.FrameKey(inputHash, opts)
}

func (k *ScopedKeyer) ArtifactKey(frameHash string, opts ArtifactKeyOpts) string {
	return k.prefix + k.inner.ArtifactKey(frameHash, opts)
}

// NullCache stores nothing; every Get misses. The CLI uses it for --no-cache.
type NullCache struct{}

func NewNullCache() Cache { return &NullCache{} }

func (*NullCache) Get(context.Context, string) ([]byte, bool, error)        { return nil, false, nil }
func (*NullCache) Set(context.Context, string, []byte, time.Duration) error { return nil }
func (*NullCache) Delete(context.Context, string) error                     { return nil }
func (*NullCache) Close() error                                             { return nil }

var (
	_ Keyer = DefaultKeyer{}
	_ Keyer = (*ScopedKeyer)(nil)
	_ Cache = (*NullCache)(nil)
)
