// Package themegraph finds installed themes across the base directories and
// orders them into a fallback chain.
package themegraph

import (
	"errors"
	"io/fs"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/example/iconlookup/internal/themeindex"
	"github.com/example/iconlookup/internal/vfs"
)

// Fragment is one base/theme directory of an installed theme.
type Fragment struct {
	Root  string
	Theme *themeindex.Theme
}

// Installed is a theme found in at least one base directory. Fragments are
// in base directory order; a fragment without its own index shares the
// primary theme's descriptor.
type Installed struct {
	Name      string
	Theme     *themeindex.Theme
	Fragments []Fragment
}

// Parents returns the inherited theme ids declared by every fragment, in
// declaration order, without repeats.
func (in *Installed) Parents() []string {
	var out []string
	seen := make(map[string]bool)
	add := func(t *themeindex.Theme) {
		for _, p := range t.Inherits {
			if !seen[p] {
				seen[p] = true
				out = append(out, p)
			}
		}
	}
	add(in.Theme)
	for _, f := range in.Fragments {
		if f.Theme != in.Theme {
			add(f.Theme)
		}
	}
	return out
}

// DisplayName returns the Name= value of the primary index, or the id.
func (in *Installed) DisplayName() string {
	if in.Theme.DisplayName != "" {
		return in.Theme.DisplayName
	}
	return in.Name
}

// Store memoizes Find results. A nil *Installed records a theme that is not
// installed.
type Store interface {
	Get(name string) (*Installed, bool)
	Set(name string, in *Installed)
}

// Catalog resolves theme ids against a list of base directories.
type Catalog struct {
	FS       vfs.FS
	BaseDirs []string
	Parser   themeindex.Parser
	Store    Store
	Logger   *zap.Logger
}

func (c *Catalog) log() *zap.Logger {
	if c.Logger == nil {
		return zap.NewNop()
	}
	return c.Logger
}

func (c *Catalog) fsys() vfs.FS {
	if c.FS == nil {
		return vfs.OS{}
	}
	return c.FS
}

// Find returns the installed theme called name.
func (c *Catalog) Find(name string) (*Installed, bool) {
	if !validName(name) {
		return nil, false
	}
	if c.Store != nil {
		if in, ok := c.Store.Get(name); ok {
			return in, in != nil
		}
	}
	in := c.load(name)
	if c.Store != nil {
		c.Store.Set(name, in)
	}
	return in, in != nil
}

func (c *Catalog) load(name string) *Installed {
	fsys := c.fsys()
	in := &Installed{Name: name}
	for _, base := range c.BaseDirs {
		root := filepath.Join(base, name)
		if !vfs.IsDir(fsys, root) {
			continue
		}
		t, err := c.Parser.Load(fsys, root)
		switch {
		case err == nil:
			if in.Theme == nil {
				in.Theme = t
			}
		case errors.Is(err, themeindex.ErrIndexNotFound):
			c.log().Debug("theme fragment without index", zap.String("root", root))
		default:
			c.log().Warn("skipping theme fragment", zap.String("root", root), zap.Error(err))
			continue
		}
		in.Fragments = append(in.Fragments, Fragment{Root: root, Theme: t})
	}
	if in.Theme == nil {
		return nil
	}
	for i := range in.Fragments {
		if in.Fragments[i].Theme == nil {
			in.Fragments[i].Theme = in.Theme
		}
	}
	return in
}

// Names lists the ids of every theme with an index in any base directory,
// in first-seen order.
func (c *Catalog) Names() []string {
	fsys := c.fsys()
	seen := make(map[string]bool)
	var names []string
	for _, base := range c.BaseDirs {
		entries, err := fsys.ReadDir(base)
		if err != nil {
			c.log().Debug("unreadable base directory", zap.String("dir", base), zap.Error(err))
			continue
		}
		for _, e := range entries {
			if !e.IsDir() && e.Type()&fs.ModeSymlink == 0 {
				continue
			}
			name := e.Name()
			if seen[name] {
				continue
			}
			if vfs.IsFile(fsys, filepath.Join(base, name, themeindex.IndexFile)) {
				seen[name] = true
				names = append(names, name)
			}
		}
	}
	return names
}

func validName(name string) bool {
	if name == "" || name == "." || name == ".." {
		return false
	}
	return !strings.ContainsAny(name, `/\`)
}
