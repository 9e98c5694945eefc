package photoview

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/adrg/xdg"
)

const cacheDirName = "slides/photos"

// DefaultMaxAge is how long an unused resized photo stays on disk.
const DefaultMaxAge = 30 * 24 * time.Hour

// Cache stores resized photos as PNG files keyed by source and cell size.
// A nil *Cache is valid and caches nothing.
type Cache struct {
	dir       string
	pruneOnce sync.Once
}

// NewCache creates the cache directory under baseDir, or under the XDG
// cache home when baseDir is empty.
func NewCache(baseDir string) (*Cache, error) {
	dir := baseDir
	if dir == "" {
		dir = filepath.Join(xdg.CacheHome, cacheDirName)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create photo cache: %w", err)
	}
	return &Cache{dir: dir}, nil
}

// Dir returns the cache directory.
func (c *Cache) Dir() string {
	if c == nil {
		return ""
	}
	return c.dir
}

func (c *Cache) cacheKey(source string, width, height int) string {
	hash := sha256.Sum256(fmt.Appendf(nil, "%s:%d:%d", source, width, height))
	return hex.EncodeToString(hash[:])
}

func (c *Cache) path(source string, width, height int) string {
	return filepath.Join(c.dir, c.cacheKey(source, width, height)+".png")
}

// Get returns the cached PNG for source at the given cell size, or nil.
// The first lookup also prunes entries older than DefaultMaxAge.
func (c *Cache) Get(source string, width, height int) []byte {
	if c == nil {
		return nil
	}
	c.pruneOnce.Do(func() { _ = c.Prune(DefaultMaxAge) }) //nolint:errcheck // best-effort

	path := c.path(source, width, height)
	data, err := os.ReadFile(path)
	if err != nil || len(data) == 0 {
		return nil
	}

	// Touch the file so frequently shown photos survive pruning
	now := time.Now()
	_ = os.Chtimes(path, now, now) //nolint:errcheck // best-effort

	return data
}

// Put stores PNG data for source at the given cell size.
func (c *Cache) Put(source string, width, height int, data []byte) error {
	if c == nil || len(data) == 0 {
		return nil
	}
	return os.WriteFile(c.path(source, width, height), data, 0o600)
}

// Clear removes every cached photo.
func (c *Cache) Clear() error {
	if c == nil {
		return nil
	}
	return c.removeWhere(func(os.FileInfo) bool { return true })
}

// Prune removes entries not used within maxAge.
func (c *Cache) Prune(maxAge time.Duration) error {
	if c == nil {
		return nil
	}
	cutoff := time.Now().Add(-maxAge)
	return c.removeWhere(func(info os.FileInfo) bool {
		return info.ModTime().Before(cutoff)
	})
}

func (c *Cache) removeWhere(match func(os.FileInfo) bool) error {
	entries, err := os.ReadDir(c.dir)
	if err != nil {
		return err
	}

	var errs []error
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".png") {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		if match(info) {
			if err := os.Remove(filepath.Join(c.dir, entry.Name())); err != nil && !errors.Is(err, os.ErrNotExist) {
				errs = append(errs, err)
			}
		}
	}
	return errors.Join(errs...)
}
