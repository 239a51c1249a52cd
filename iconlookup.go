// Package iconlookup finds icon files by name following the freedesktop
// icon theme rules.
//
//	path, ok := iconlookup.Lookup("firefox").WithSize(48).WithTheme("Papirus").Find()
//
// Lookups walk the requested theme, its parents and hicolor, then the
// unthemed base directories. A missing icon is reported as ok == false,
// never as an error.
package iconlookup

import (
	"context"
	"path/filepath"
	"sync"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/example/iconlookup/internal/basedirs"
	"github.com/example/iconlookup/internal/cache"
	"github.com/example/iconlookup/internal/desktop"
	"github.com/example/iconlookup/internal/resolve"
	"github.com/example/iconlookup/internal/themegraph"
	"github.com/example/iconlookup/internal/themeindex"
	"github.com/example/iconlookup/internal/vfs"
)

// FS is the read-only filesystem a Finder searches.
type FS = vfs.FS

// FallbackTheme is searched after every requested theme.
const FallbackTheme = themegraph.FallbackTheme

// Finder holds the base directories, cache and logger shared by lookups.
// It is safe for concurrent use.
type Finder struct {
	fsys     vfs.FS
	baseDirs []string
	fallback string
	log      *zap.Logger
	tracer   trace.Tracer
	cache    *Cache
	scope    string

	plain  *resolve.Resolver
	cached *resolve.Resolver
}

// Option configures a Finder.
type Option func(*Finder)

// WithBaseDirs replaces the XDG base directories. Order is priority; the
// last directory is searched last for unthemed icons.
func WithBaseDirs(dirs ...string) Option {
	return func(f *Finder) {
		f.baseDirs = make([]string, 0, len(dirs))
		for _, d := range dirs {
			f.baseDirs = append(f.baseDirs, filepath.Clean(d))
		}
	}
}

// WithFS replaces the host filesystem.
func WithFS(fsys FS) Option {
	return func(f *Finder) { f.fsys = fsys }
}

func WithLogger(log *zap.Logger) Option {
	return func(f *Finder) { f.log = log }
}

// WithCache shares c between finders. Without it each finder gets its own.
// Finders with different base directories or fallback themes keep separate
// entries in c.
func WithCache(c *Cache) Option {
	return func(f *Finder) { f.cache = c }
}

func WithTracer(t trace.Tracer) Option {
	return func(f *Finder) { f.tracer = t }
}

// WithFallbackTheme replaces hicolor as the theme searched last.
func WithFallbackTheme(name string) Option {
	return func(f *Finder) { f.fallback = name }
}

// NewFinder returns a Finder. Base directories default to the ones named
// by HOME, XDG_DATA_HOME and XDG_DATA_DIRS that exist.
func NewFinder(opts ...Option) *Finder {
	f := &Finder{fallback: FallbackTheme}
	for _, opt := range opts {
		opt(f)
	}
	if f.fsys == nil {
		f.fsys = vfs.OS{}
	}
	if f.log == nil {
		f.log = zap.NewNop()
	}
	if f.cache == nil {
		f.cache = NewCache()
	}
	if f.baseDirs == nil {
		f.baseDirs = basedirs.Default(f.fsys)
	}

	dirScope := cache.Scope(f.baseDirs...)
	f.scope = cache.Scope(f.fallback, dirScope)

	parser := themeindex.Parser{Logger: f.log}
	themes := cache.NewScopedThemes(f.cache.themes, dirScope)
	f.plain = f.newResolver(&themegraph.Catalog{FS: f.fsys, BaseDirs: f.baseDirs, Parser: parser, Logger: f.log})
	f.cached = f.newResolver(&themegraph.Catalog{FS: f.fsys, BaseDirs: f.baseDirs, Parser: parser, Logger: f.log, Store: themes})
	return f
}

func (f *Finder) newResolver(c *themegraph.Catalog) *resolve.Resolver {
	return &resolve.Resolver{Catalog: c, FS: f.fsys, Fallback: f.fallback, Logger: f.log, Tracer: f.tracer}
}

var (
	defaultOnce   sync.Once
	defaultFinder *Finder
)

// Default returns the process-wide Finder. It uses the environment's base
// directories and the process-wide cache, and logs nothing.
func Default() *Finder {
	defaultOnce.Do(func() {
		defaultFinder = NewFinder(WithCache(DefaultCache()))
	})
	return defaultFinder
}

// BaseDirs returns the directories searched, highest priority first.
func (f *Finder) BaseDirs() []string {
	return append([]string(nil), f.baseDirs...)
}

// Cache returns the cache used for lookups that opt in.
func (f *Finder) Cache() *Cache { return f.cache }

// CacheStats reports the finder's cache counters.
func (f *Finder) CacheStats() CacheStats { return f.cache.Stats() }

func (f *Finder) find(ctx context.Context, req resolve.Request, useCache bool) (string, bool) {
	if !useCache {
		return f.plain.Resolve(ctx, req)
	}
	key := cache.Key{Scope: f.scope, Name: req.Name, Theme: req.Theme, Size: req.Size, Scale: req.Scale, PreferRaster: req.PreferRaster}
	return f.cache.lookups.Do(key, func() (string, bool) {
		return f.cached.Resolve(ctx, req)
	})
}

// Chain returns the ids of the themes searched for theme, in order.
func (f *Finder) Chain(theme string) []string {
	if theme == "" {
		theme = f.fallback
	}
	return themegraph.Names(f.plain.Catalog.Chain(theme, f.fallback))
}

// Installed reports whether theme has an index in any base directory.
func (f *Finder) Installed(theme string) bool {
	_, ok := f.plain.Catalog.Find(theme)
	return ok
}

// DefaultTheme asks the desktop session for its icon theme and returns it
// when it is installed.
func (f *Finder) DefaultTheme(ctx context.Context) (string, bool) {
	d := desktop.Detector{Logger: f.log, Installed: f.Installed}
	return d.Detect(ctx)
}

// DefaultTheme is Default().DefaultTheme with a background context.
func DefaultTheme() (string, bool) {
	return Default().DefaultTheme(context.Background())
}

// ClearCache empties the process-wide cache.
func ClearCache() {
	DefaultCache().Clear()
}
