package cache

import (
	"strconv"
	"strings"
	"sync/atomic"

	"golang.org/x/sync/singleflight"

	"github.com/example/iconlookup/internal/themegraph"
)

// Key identifies one lookup. Scope separates finders that share a cache
// but search different base directories or fall back to different themes.
type Key struct {
	Scope        string
	Name         string
	Theme        string
	Size         int
	Scale        int
	PreferRaster bool
}

func (k Key) String() string {
	var b strings.Builder
	b.WriteString(k.Scope)
	b.WriteByte(0)
	b.WriteString(k.Name)
	b.WriteByte(0)
	b.WriteString(k.Theme)
	b.WriteByte(0)
	b.WriteString(strconv.Itoa(k.Size))
	b.WriteByte('@')
	b.WriteString(strconv.Itoa(k.Scale))
	if k.PreferRaster {
		b.WriteString("r")
	}
	return b.String()
}

// Entry is a cached lookup result. Found is false for remembered misses.
type Entry struct {
	Path  string
	Found bool
}

// Stats counts cache traffic since the last Clear.
type Stats struct {
	Hits    int64
	Misses  int64
	Entries int
}

// Lookups caches resolved icon paths, including misses. Concurrent misses
// for the same key resolve once.
type Lookups struct {
	store  *Store[Key, Entry]
	group  singleflight.Group
	hits   atomic.Int64
	misses atomic.Int64
}

func NewLookups() *Lookups {
	return &Lookups{store: NewStore[Key, Entry]()}
}

// Do returns the cached result for key, calling resolve on a miss.
func (l *Lookups) Do(key Key, resolve func() (string, bool)) (string, bool) {
	if e, ok := l.store.Get(key); ok {
		l.hits.Add(1)
		return e.Path, e.Found
	}
	l.misses.Add(1)
	v, _, _ := l.group.Do(key.String(), func() (any, error) {
		if e, ok := l.store.Get(key); ok {
			return e, nil
		}
		path, found := resolve()
		e := Entry{Path: path, Found: found}
		l.store.Set(key, e)
		return e, nil
	})
	e := v.(Entry)
	return e.Path, e.Found
}

// Peek returns the cached entry for key without resolving.
func (l *Lookups) Peek(key Key) (Entry, bool) {
	return l.store.Get(key)
}

// Clear drops every cached lookup and resets the counters.
func (l *Lookups) Clear() {
	l.store.Clear()
	l.hits.Store(0)
	l.misses.Store(0)
}

func (l *Lookups) Stats() Stats {
	return Stats{Hits: l.hits.Load(), Misses: l.misses.Load(), Entries: l.store.Len()}
}

// Scope fingerprints an ordered list of parts. Paths cannot hold NUL, so
// distinct lists never collide.
func Scope(parts ...string) string {
	return strings.Join(parts, "\x00")
}

// ThemeKey identifies a parsed theme within one set of base directories.
type ThemeKey struct {
	Scope string
	Name  string
}

// Themes returns an empty store for parsed themes.
func Themes() *Store[ThemeKey, *themegraph.Installed] {
	return NewStore[ThemeKey, *themegraph.Installed]()
}

// ScopedThemes is the view of a shared theme store for one set of base
// directories.
type ScopedThemes struct {
	store *Store[ThemeKey, *themegraph.Installed]
	scope string
}

func NewScopedThemes(store *Store[ThemeKey, *themegraph.Installed], scope string) ScopedThemes {
	return ScopedThemes{store: store, scope: scope}
}

func (s ScopedThemes) Get(name string) (*themegraph.Installed, bool) {
	return s.store.Get(ThemeKey{Scope: s.scope, Name: name})
}

func (s ScopedThemes) Set(name string, in *themegraph.Installed) {
	s.store.Set(ThemeKey{Scope: s.scope, Name: name}, in)
}

var _ themegraph.Store = ScopedThemes{}
