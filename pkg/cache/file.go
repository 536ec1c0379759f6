package cache

import (
	"context"
	"encoding/json"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Entry kinds, taken from the first segment of a key.
const (
	KindFrame    = "frame"
	KindArtifact = "artifact"
	kindOther    = "other"
)

// FileCache keeps one JSON file per key under dir/<kind>/<hh>/, where hh
// is the first byte of the key hash. Frames and artifacts live in separate
// trees so either can be cleared alone.
type FileCache struct {
	dir string
	now func() time.Time
}

// NewFileCache creates dir if needed and returns a cache rooted there.
func NewFileCache(dir string) (*FileCache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &FileCache{dir: dir, now: time.Now}, nil
}

type fileEntry struct {
	Key       string    `json:"key"`
	Data      []byte    `json:"data"`
	ExpiresAt time.Time `json:"expires_at,omitzero"`
}

func (e fileEntry) expired(now time.Time) bool {
	return !e.ExpiresAt.IsZero() && now.After(e.ExpiresAt)
}

// Get returns the stored value. Unreadable and expired entries are removed
// and reported as misses.
func (c *FileCache) Get(_ context.Context, key string) ([]byte, bool, error) {
	path := c.path(key)
	raw, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	var e fileEntry
	if err := json.Unmarshal(raw, &e); err != nil || e.Key != key || e.expired(c.now()) {
		_ = os.Remove(path)
		return nil, false, nil
	}
	return e.Data, true, nil
}

// Set writes the entry to a temp file and renames it into place, so a
// concurrent Get never sees a partial entry.
func (c *FileCache) Set(_ context.Context, key string, data []byte, ttl time.Duration) error {
	e := fileEntry{Key: key, Data: data}
	if ttl > 0 {
		e.ExpiresAt = c.now().Add(ttl)
	}
	raw, err := json.Marshal(e)
	if err != nil {
		return err
	}

	path := c.path(key)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(filepath.Dir(path), ".tmp-*")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), path)
}

// Delete removes key. A missing key is not an error.
func (c *FileCache) Delete(_ context.Context, key string) error {
	if err := os.Remove(c.path(key)); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

func (c *FileCache) Close() error { return nil }

// Usage summarizes the entries of one kind, or all kinds when kind is "".
type Usage struct {
	Entries int
	Bytes   int64
}

// Usage walks the cache and counts entries and their size on disk.
func (c *FileCache) Usage(kind string) (Usage, error) {
	var u Usage
	err := c.walk(kind, func(_ string, info fs.FileInfo) {
		u.Entries++
		u.Bytes += info.Size()
	})
	return u, err
}

// Clear removes the entries of one kind, or every entry when kind is "",
// and returns how many were removed.
func (c *FileCache) Clear(kind string) (int, error) {
	removed := 0
	err := c.walk(kind, func(path string, _ fs.FileInfo) {
		if os.Remove(path) == nil {
			removed++
		}
	})
	return removed, err
}

// Dir returns the cache directory.
func (c *FileCache) Dir() string { return c.dir }

func (c *FileCache) walk(kind string, fn func(string, fs.FileInfo)) error {
	root := c.dir
	if kind != "" {
		root = filepath.Join(c.dir, kind)
	}
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || filepath.Ext(path) != ".json" {
			return nil
		}
		info, err := d.Info()
		if err != nil {
			return nil
		}
		fn(path, info)
		return nil
	})
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

func (c *FileCache) path(key string) string {
	hash := Hash([]byte(key))
	return filepath.Join(c.dir, keyKind(key), hash[:2], hash[2:]+".json")
}

// keyKind is the entry kind of a key built by [DefaultKeyer], ignoring any
// scope prefix.
func keyKind(key string) string {
	for _, kind := range []string{KindFrame, KindArtifact} {
		if strings.HasPrefix(key, kind+":") || strings.Contains(key, ":"+kind+":") {
			return kind
		}
	}
	return kindOther
}

var _ Cache = (*FileCache)(nil)
