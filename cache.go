package iconlookup

import (
	"sync"

	"github.com/example/iconlookup/internal/cache"
	"github.com/example/iconlookup/internal/themegraph"
)

// Cache remembers lookup results, including misses, and parsed theme
// indices. Entries are kept apart per base directory list and fallback
// theme, so finders over different directories can share one Cache. Finders
// sharing a Cache with the same directories but different WithFS
// filesystems see each other's results. Entries never expire; call Clear
// after installing or removing themes.
type Cache struct {
	lookups *cache.Lookups
	themes  *cache.Store[cache.ThemeKey, *themegraph.Installed]
}

// CacheStats counts lookups served from and added to a Cache.
type CacheStats struct {
	Hits    int64
	Misses  int64
	Entries int
	Themes  int
}

func NewCache() *Cache {
	return &Cache{lookups: cache.NewLookups(), themes: cache.Themes()}
}

var (
	defaultCacheOnce sync.Once
	defaultCache     *Cache
)

// DefaultCache returns the process-wide cache.
func DefaultCache() *Cache {
	defaultCacheOnce.Do(func() { defaultCache = NewCache() })
	return defaultCache
}

// Clear drops every entry and resets the counters.
func (c *Cache) Clear() {
	c.lookups.Clear()
	c.themes.Clear()
}

func (c *Cache) Stats() CacheStats {
	s := c.lookups.Stats()
	return CacheStats{Hits: s.Hits, Misses: s.Misses, Entries: s.Entries, Themes: c.themes.Len()}
}
