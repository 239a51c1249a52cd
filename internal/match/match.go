// Package match decides how well a theme subdirectory fits a requested
// icon size and scale.
package match

import "github.com/example/iconlookup/internal/themeindex"

// Kind classifies a match.
type Kind int

const (
	// NoMatch means the directory can never serve the request.
	NoMatch Kind = iota
	// Exact means the directory's sizing policy accepts the size.
	Exact
	// Close means the directory is usable with a Distance penalty.
	Close
)

func (k Kind) String() string {
	switch k {
	case Exact:
		return "exact"
	case Close:
		return "close"
	default:
		return "none"
	}
}

// Result is the outcome of Match. Distance is zero unless Kind is Close.
type Result struct {
	Kind     Kind
	Distance int
}

// Match compares sub against a request for size pixels at scale. Scale is
// a hard filter.
func Match(sub themeindex.Subdir, size, scale int) Result {
	if sub.Scale != scale {
		return Result{Kind: NoMatch}
	}

	switch sub.Type {
	case themeindex.Fixed:
		if size == sub.Size {
			return Result{Kind: Exact}
		}
		return closeTo(abs(size - sub.Size))
	case themeindex.Scalable:
		if sub.MinSize <= size && size <= sub.MaxSize {
			return Result{Kind: Exact}
		}
		return closeTo(outside(sub, size))
	default:
		if sub.MinSize-sub.Threshold <= size && size <= sub.MaxSize+sub.Threshold {
			return Result{Kind: Exact}
		}
		return closeTo(outside(sub, size))
	}
}

// outside measures how far size lies beyond [MinSize, MaxSize].
func outside(sub themeindex.Subdir, size int) int {
	if size < sub.MinSize {
		return sub.MinSize - size
	}
	return size - sub.MaxSize
}

func closeTo(d int) Result {
	return Result{Kind: Close, Distance: d}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
