// Package resolve finds the file for an icon name by walking a theme chain,
// matching theme directories against the requested size and scale.
package resolve

import (
	"context"
	"path/filepath"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/example/iconlookup/internal/match"
	"github.com/example/iconlookup/internal/themegraph"
	"github.com/example/iconlookup/internal/themeindex"
	"github.com/example/iconlookup/internal/vfs"
)

const tracerName = "github.com/example/iconlookup/internal/resolve"

// Extensions is the default file extension priority: scalable first, then
// raster, then legacy raster.
var Extensions = []string{"svg", "png", "xpm"}

// RasterExtensions is the priority used when raster files are preferred.
var RasterExtensions = []string{"png", "svg", "xpm"}

// Request is one lookup. Size and Scale are expected to be at least 1.
type Request struct {
	Name         string
	Theme        string
	Size         int
	Scale        int
	PreferRaster bool
}

func (r Request) extensions() []string {
	if r.PreferRaster {
		return RasterExtensions
	}
	return Extensions
}

// Resolver turns requests into file paths.
type Resolver struct {
	Catalog  *themegraph.Catalog
	FS       vfs.FS
	Fallback string
	Logger   *zap.Logger
	Tracer   trace.Tracer
}

func (r *Resolver) log() *zap.Logger {
	if r.Logger == nil {
		return zap.NewNop()
	}
	return r.Logger
}

func (r *Resolver) fsys() vfs.FS {
	if r.FS != nil {
		return r.FS
	}
	if r.Catalog != nil && r.Catalog.FS != nil {
		return r.Catalog.FS
	}
	return vfs.OS{}
}

func (r *Resolver) fallback() string {
	if r.Fallback == "" {
		return themegraph.FallbackTheme
	}
	return r.Fallback
}

func (r *Resolver) tracer() trace.Tracer {
	if r.Tracer != nil {
		return r.Tracer
	}
	return otel.Tracer(tracerName)
}

// Resolve returns the path of the best file for req, or false when no
// candidate exists. Themes in the chain are searched first, then each base
// directory root. A name holding a path separator is tried last as
// dir/stem with each extension. Unreadable paths count as missing.
func (r *Resolver) Resolve(ctx context.Context, req Request) (string, bool) {
	_, span := r.tracer().Start(ctx, "iconlookup.resolve", trace.WithAttributes(
		attribute.String("icon.name", req.Name),
		attribute.String("icon.theme", req.Theme),
		attribute.Int("icon.size", req.Size),
		attribute.Int("icon.scale", req.Scale),
	))
	defer span.End()

	path, ok := r.resolve(req)
	span.SetAttributes(attribute.Bool("icon.found", ok))
	return path, ok
}

func (r *Resolver) resolve(req Request) (string, bool) {
	if req.Name == "" {
		return "", false
	}
	log := r.log().With(zap.String("icon", req.Name))
	exts := req.extensions()

	theme := req.Theme
	if theme == "" {
		theme = r.fallback()
	}
	if r.Catalog != nil {
		for _, in := range r.Catalog.Chain(theme, r.fallback()) {
			if p, ok := r.inTheme(in, req, exts, log); ok {
				return p, true
			}
		}

		for _, base := range r.Catalog.BaseDirs {
			if p, ok := r.firstFile(base, req.Name, exts); ok {
				log.Debug("found unthemed", zap.String("path", p))
				return p, true
			}
		}
	}

	if strings.ContainsRune(req.Name, filepath.Separator) {
		dir, file := filepath.Split(req.Name)
		stem := strings.TrimSuffix(file, filepath.Ext(file))
		if p, ok := r.firstFile(filepath.Clean(dir), stem, exts); ok {
			log.Debug("found by path", zap.String("path", p))
			return p, true
		}
	}
	log.Debug("icon not found", zap.String("theme", theme))
	return "", false
}

type candidate struct {
	root string
	sub  themeindex.Subdir
	res  match.Result
}

// candidates pools the matching directories of every fragment of in, in
// base directory order and declared order within a fragment.
func candidates(in *themegraph.Installed, size, scale int) []candidate {
	var out []candidate
	for _, f := range in.Fragments {
		for _, sub := range f.Theme.Subdirs {
			res := match.Match(sub, size, scale)
			if res.Kind == match.NoMatch {
				continue
			}
			out = append(out, candidate{root: f.Root, sub: sub, res: res})
		}
	}
	return out
}

func (r *Resolver) inTheme(in *themegraph.Installed, req Request, exts []string, log *zap.Logger) (string, bool) {
	cands := candidates(in, req.Size, req.Scale)

	for _, c := range cands {
		if c.res.Kind != match.Exact {
			continue
		}
		if p, ok := r.firstFile(filepath.Join(c.root, c.sub.Path), req.Name, exts); ok {
			log.Debug("exact match", zap.String("theme", in.Name), zap.String("path", p))
			return p, true
		}
	}

	best, bestDist := "", -1
	for _, c := range cands {
		if bestDist >= 0 && c.res.Distance >= bestDist {
			continue
		}
		if p, ok := r.firstFile(filepath.Join(c.root, c.sub.Path), req.Name, exts); ok {
			best, bestDist = p, c.res.Distance
		}
	}
	if bestDist >= 0 {
		log.Debug("closest match", zap.String("theme", in.Name), zap.String("path", best), zap.Int("distance", bestDist))
		return best, true
	}
	return "", false
}

func (r *Resolver) firstFile(dir, stem string, exts []string) (string, bool) {
	fsys := r.fsys()
	for _, ext := range exts {
		p := filepath.Join(dir, stem+"."+ext)
		if vfs.IsFile(fsys, p) {
			return p, true
		}
	}
	return "", false
}
