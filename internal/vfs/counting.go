package vfs

import (
	"io/fs"
	"sync/atomic"
)

// Counting wraps an FS and counts every call made through it.
type Counting struct {
	FS FS

	stats   atomic.Int64
	opens   atomic.Int64
	readDir atomic.Int64
}

// NewCounting wraps fsys. A nil fsys wraps OS.
func NewCounting(fsys FS) *Counting {
	if fsys == nil {
		fsys = OS{}
	}
	return &Counting{FS: fsys}
}

func (c *Counting) Stat(name string) (fs.FileInfo, error) {
	c.stats.Add(1)
	return c.FS.Stat(name)
}

func (c *Counting) Open(name string) (fs.File, error) {
	c.opens.Add(1)
	return c.FS.Open(name)
}

func (c *Counting) ReadDir(name string) ([]fs.DirEntry, error) {
	c.readDir.Add(1)
	return c.FS.ReadDir(name)
}

// Calls returns the total number of calls made so far.
func (c *Counting) Calls() int64 {
	return c.stats.Load() + c.opens.Load() + c.readDir.Load()
}

// Reset zeroes the counters.
func (c *Counting) Reset() {
	c.stats.Store(0)
	c.opens.Store(0)
	c.readDir.Store(0)
}
