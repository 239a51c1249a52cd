package iconlookup

import (
	"context"

	"github.com/example/iconlookup/internal/resolve"
)

// Defaults for a lookup built with Lookup.
const (
	DefaultSize  = 24
	DefaultScale = 1
)

// LookupBuilder is an immutable lookup request. Every With method returns a
// modified copy; only Find and FindContext touch the filesystem.
type LookupBuilder struct {
	finder       *Finder
	name         string
	theme        string
	size         int
	scale        int
	cache        bool
	preferRaster bool
}

// Lookup starts a request on the Default finder.
func Lookup(name string) LookupBuilder {
	return LookupBuilder{name: name, theme: FallbackTheme, size: DefaultSize, scale: DefaultScale}
}

// Lookup starts a request on f.
func (f *Finder) Lookup(name string) LookupBuilder {
	b := Lookup(name)
	b.finder = f
	b.theme = f.fallback
	return b
}

// WithSize sets the pixel size. Values below 1 become 1.
func (b LookupBuilder) WithSize(size int) LookupBuilder {
	b.size = max(size, 1)
	return b
}

// WithScale sets the display scale. Values below 1 become 1.
func (b LookupBuilder) WithScale(scale int) LookupBuilder {
	b.scale = max(scale, 1)
	return b
}

// WithTheme sets the theme searched first. An empty name keeps the
// fallback theme.
func (b LookupBuilder) WithTheme(theme string) LookupBuilder {
	if theme != "" {
		b.theme = theme
	}
	return b
}

// WithCache makes the lookup read and fill the finder's cache.
func (b LookupBuilder) WithCache() LookupBuilder {
	b.cache = true
	return b
}

// PreferRaster tries png before svg.
func (b LookupBuilder) PreferRaster() LookupBuilder {
	b.preferRaster = true
	return b
}

func (b LookupBuilder) Name() string  { return b.name }
func (b LookupBuilder) Theme() string { return b.theme }
func (b LookupBuilder) Size() int     { return b.size }
func (b LookupBuilder) Scale() int    { return b.scale }

// Find resolves the request.
func (b LookupBuilder) Find() (string, bool) {
	return b.FindContext(context.Background())
}

// FindContext resolves the request. ctx only carries trace parentage; a
// lookup cannot be cancelled.
func (b LookupBuilder) FindContext(ctx context.Context) (string, bool) {
	f := b.finder
	if f == nil {
		f = Default()
	}
	req := resolve.Request{
		Name:         b.name,
		Theme:        b.theme,
		Size:         b.size,
		Scale:        b.scale,
		PreferRaster: b.preferRaster,
	}
	return f.find(ctx, req, b.cache)
}
