// Package vfs is the filesystem seam used by the lookup packages. All paths
// are absolute host paths.
package vfs

import (
	"io/fs"
	"os"
)

// FS is the read-only subset of filesystem access icon lookups need.
type FS interface {
	Stat(name string) (fs.FileInfo, error)
	Open(name string) (fs.File, error)
	ReadDir(name string) ([]fs.DirEntry, error)
}

// OS reads from the host filesystem.
type OS struct{}

func (OS) Stat(name string) (fs.FileInfo, error) { return os.Stat(name) }

func (OS) Open(name string) (fs.File, error) { return os.Open(name) }

func (OS) ReadDir(name string) ([]fs.DirEntry, error) { return os.ReadDir(name) }

// IsFile reports whether name exists and is not a directory. Any stat
// failure counts as absent.
func IsFile(fsys FS, name string) bool {
	info, err := fsys.Stat(name)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// IsDir reports whether name exists and is a directory.
func IsDir(fsys FS, name string) bool {
	info, err := fsys.Stat(name)
	if err != nil {
		return false
	}
	return info.IsDir()
}
