// Package basedirs lists the icon base directories in search order:
// $HOME/.icons, $XDG_DATA_HOME/icons, each $XDG_DATA_DIRS/icons and
// finally the legacy pixmap directory.
package basedirs

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/caarlos0/env/v11"

	"github.com/example/iconlookup/internal/vfs"
)

// PixmapsDir holds unthemed legacy icons. It is always searched last.
const PixmapsDir = "/usr/share/pixmaps"

// DefaultDataDirs is used when XDG_DATA_DIRS is unset or empty.
var DefaultDataDirs = []string{"/usr/local/share", "/usr/share"}

// Env holds the environment variables that decide the base directories.
type Env struct {
	Home     string   `env:"HOME"`
	DataHome string   `env:"XDG_DATA_HOME"`
	DataDirs []string `env:"XDG_DATA_DIRS" envSeparator:":"`
}

// FromEnv reads Env from the process environment.
func FromEnv() (Env, error) {
	var e Env
	if err := env.Parse(&e); err != nil {
		return Env{}, fmt.Errorf("parse env: %w", err)
	}
	return e, nil
}

// Dirs returns every candidate base directory, highest priority first,
// whether or not it exists.
func (e Env) Dirs() []string {
	var dirs []string
	if e.Home != "" {
		dirs = append(dirs, filepath.Join(e.Home, ".icons"))
	}

	dataHome := e.DataHome
	if dataHome == "" && e.Home != "" {
		dataHome = filepath.Join(e.Home, ".local", "share")
	}
	if dataHome != "" {
		dirs = append(dirs, filepath.Join(dataHome, "icons"))
	}

	dataDirs := nonEmpty(e.DataDirs)
	if len(dataDirs) == 0 {
		dataDirs = DefaultDataDirs
	}
	for _, d := range dataDirs {
		dirs = append(dirs, filepath.Join(d, "icons"))
	}

	return append(dirs, PixmapsDir)
}

// Enumerate keeps the directories of dirs that exist, dropping repeats and
// preserving order.
func Enumerate(fsys vfs.FS, dirs []string) []string {
	seen := make(map[string]bool, len(dirs))
	out := make([]string, 0, len(dirs))
	for _, d := range dirs {
		d = filepath.Clean(d)
		if seen[d] {
			continue
		}
		seen[d] = true
		if vfs.IsDir(fsys, d) {
			out = append(out, d)
		}
	}
	return out
}

// Default enumerates the existing base directories for the current
// environment. An unparsable environment falls back to the built-in
// defaults.
func Default(fsys vfs.FS) []string {
	e, err := FromEnv()
	if err != nil {
		e = Env{}
	}
	return Enumerate(fsys, e.Dirs())
}

func nonEmpty(in []string) []string {
	var out []string
	for _, s := range in {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
