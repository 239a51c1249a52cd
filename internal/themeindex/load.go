package themeindex

import (
	"errors"
	"io/fs"
	"path/filepath"

	"github.com/example/iconlookup/internal/vfs"
)

// IndexFile is the name of the theme index inside a theme directory.
const IndexFile = "index.theme"

// Load parses dir/index.theme. The theme id is the base name of dir.
func (p Parser) Load(fsys vfs.FS, dir string) (*Theme, error) {
	path := filepath.Join(dir, IndexFile)
	f, err := fsys.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &IndexError{Path: path, Kind: ErrIndexNotFound}
		}
		return nil, &IndexError{Path: path, Kind: ErrIndexUnreadable, Err: err}
	}
	defer f.Close()

	t, err := p.Parse(f, filepath.Base(dir))
	if err != nil {
		return nil, &IndexError{Path: path, Kind: ErrIndexUnreadable, Err: err}
	}
	return t, nil
}
